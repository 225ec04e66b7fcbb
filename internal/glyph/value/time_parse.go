package value

import (
	"github.com/araddon/dateparse"
)

// TimeFromLoose builds a Time value from a loosely formatted timestamp
// string, accepting the wide range of layouts dateparse recognizes rather
// than requiring callers to pre-parse RFC3339 themselves.
//
// The instant is stored as given; UTC normalization happens only when the
// value is canonicalized.
func TimeFromLoose(s string) (Value, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return Value{}, err
	}
	return Time(t), nil
}
