// Package corpus generates seeded, deterministic synthetic record lists
// for exercising the auto-tabular transform's min_rows/max_cols/
// allow_missing boundaries in tests: gofakeit-seeded healthcare-flavored
// records (drugs, diagnoses, manufacturers) with a YAML-loadable config.
package corpus

import (
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gopkg.in/yaml.v3"

	"github.com/Neumenon/glyph/internal/glyph/obslog"
	"github.com/Neumenon/glyph/internal/glyph/value"
)

// Config controls the shape of a generated record batch.
type Config struct {
	// Seed makes generation deterministic across runs.
	Seed int64 `yaml:"seed"`
	// Records is how many record maps to generate.
	Records int `yaml:"records"`
	// FieldSpread is how many distinct field names are drawn from across
	// the batch, taken as a prefix of the ten candidate names; zero, a
	// negative value or a value above ten selects all ten. A spread above
	// the active max_cols puts the union of keys over max_cols, exercising
	// the auto-tabular rejection path.
	FieldSpread int `yaml:"fieldSpread"`
	// DropRate is the fraction (0..1) of eligible fields omitted per
	// record, exercising allow_missing cells.
	DropRate float64 `yaml:"dropRate"`
}

// LoadConfig reads a Config from a YAML file at path.
func LoadConfig(path string) (Config, error) {
	obslog.L().Debugw("Loading corpus config", "path", path)
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read corpus config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal corpus config: %w", err)
	}
	obslog.L().Debugw("Corpus config loaded",
		"seed", cfg.Seed,
		"records", cfg.Records,
		"fieldSpread", cfg.FieldSpread,
		"dropRate", cfg.DropRate)
	return cfg, nil
}

// fieldNames are the candidate record keys, in order; FieldSpread selects
// a prefix of this list so callers can push the key union above or below
// a given max_cols threshold.
var fieldNames = []string{
	"drug", "dosage_form", "strength", "manufacturer",
	"diagnosis", "provider", "encounter_note", "status",
	"record_id", "encounter_ts",
}

// Generate produces cfg.Records synthetic record Values (each a GLYPH
// Map), seeded so repeated calls with the same Config are byte-identical —
// except the "record_id" field, whose UUID is freshly allocated per call.
func Generate(cfg Config) []value.Value {
	gofakeit.Seed(cfg.Seed)

	spread := cfg.FieldSpread
	if spread <= 0 || spread > len(fieldNames) {
		spread = len(fieldNames)
	}
	fields := fieldNames[:spread]

	records := make([]value.Value, 0, cfg.Records)
	for i := 0; i < cfg.Records; i++ {
		var entries []value.Entry
		for _, name := range fields {
			if cfg.DropRate > 0 && gofakeit.Float64Range(0, 1) < cfg.DropRate {
				continue
			}
			entries = append(entries, value.Field(name, randomFieldValue(name)))
		}
		records = append(records, value.Map(entries...))
	}
	obslog.L().Debugw("Corpus generation complete",
		"records", len(records),
		"fields", len(fields))
	return records
}

func randomFieldValue(name string) value.Value {
	switch name {
	case "drug":
		return value.Str(DrugNames[gofakeit.Number(0, len(DrugNames)-1)])
	case "dosage_form":
		return value.Str(DosageForms[gofakeit.Number(0, len(DosageForms)-1)])
	case "strength":
		return value.Str(Strengths[gofakeit.Number(0, len(Strengths)-1)])
	case "manufacturer":
		return value.Str(Manufacturers[gofakeit.Number(0, len(Manufacturers)-1)])
	case "diagnosis":
		return value.Str(Diagnoses[gofakeit.Number(0, len(Diagnoses)-1)])
	case "provider":
		return value.Str(gofakeit.Name())
	case "encounter_note":
		return value.Str(gofakeit.Sentence(6))
	case "status":
		return value.Str(gofakeit.RandomString([]string{"PENDING", "FILLED", "CANCELLED"}))
	case "record_id":
		return value.NewGeneratedID("rec")
	case "encounter_ts":
		loose := gofakeit.Date().Format(time.RFC3339)
		ts, err := value.TimeFromLoose(loose)
		if err != nil {
			panic(fmt.Sprintf("corpus: unexpected unparseable synthetic timestamp %q: %v", loose, err))
		}
		return ts
	default:
		return value.Null()
	}
}

// DrugNames lists synthetic pharmacy drug names used to populate "drug"
// fields.
var DrugNames = []string{
	"Atorvastatin", "Levothyroxine", "Lisinopril", "Metformin", "Amlodipine",
	"Metoprolol", "Omeprazole", "Simvastatin", "Losartan", "Albuterol",
	"Gabapentin", "Hydrochlorothiazide", "Sertraline", "Furosemide", "Fluticasone",
}

// DosageForms lists synthetic pharmaceutical dosage forms.
var DosageForms = []string{"tablet", "capsule", "injection", "syrup", "ointment"}

// Strengths lists synthetic dosage strengths.
var Strengths = []string{"100mg", "250mg", "500mg", "10mg/ml", "20mg/ml"}

// Manufacturers lists synthetic drug manufacturers.
var Manufacturers = []string{"Pfizer", "Roche", "Novartis", "Cipla", "Sun Pharma"}

// Diagnoses lists synthetic clinical diagnoses used to populate
// "diagnosis" fields.
var Diagnoses = []string{
	"Hypertension", "Type 2 Diabetes Mellitus", "Hyperlipidemia", "Asthma",
	"Chronic Obstructive Pulmonary Disease", "Acute Bronchitis", "Pneumonia",
	"Upper Respiratory Infection", "Gastroesophageal Reflux Disease",
	"Osteoarthritis", "Migraine", "Major Depressive Disorder",
	"Generalized Anxiety Disorder", "Seasonal Allergic Rhinitis", "Sinusitis",
}
