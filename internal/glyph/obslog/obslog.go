// Package obslog provides the structured logging facility for this
// module's peripheral, I/O-touching helpers (presetcfg, corpus). It is
// never imported by the pure codec packages (value, scalarenc, canon,
// tabular, lexer, parser, fingerprint, jsonbridge): those stay log-free
// and file-free by contract.
package obslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

// Config selects the minimum level and output mode for the global logger.
type Config struct {
	// Level is the minimum level to log: debug, info, warn, error.
	Level string
	// Development enables human-readable console output instead of JSON.
	Development bool
}

// Init installs the global sugared logger. Safe to call more than once;
// the most recent call wins.
func Init(cfg Config) error {
	if cfg.Level == "" {
		cfg.Level = "info"
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.Encoder(zapcore.NewJSONEncoder(encCfg))
	if cfg.Development {
		devCfg := zap.NewDevelopmentEncoderConfig()
		devCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(devCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zapLevel(cfg.Level))
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	logger = zap.New(core, opts...).Sugar()
	return nil
}

// L returns the global sugared logger, initializing it with development
// defaults on first use.
func L() *zap.SugaredLogger {
	if logger == nil {
		_ = Init(Config{Level: "info", Development: true})
	}
	return logger
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
