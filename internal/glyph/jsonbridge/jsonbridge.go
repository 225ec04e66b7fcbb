// Package jsonbridge converts between GLYPH values and generic JSON-shaped
// Go data (the shape produced by encoding/json's default decode into
// `any`): nil, bool, numbers, string, []any, map[string]any.
package jsonbridge

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Neumenon/glyph/internal/glyph/scalarenc"
	"github.com/Neumenon/glyph/internal/glyph/value"
)

// FromJSON maps generic JSON data onto the corresponding GLYPH variant.
// Numbers are classified Int vs Float the way their source text would be:
// a json.Number with no '.' or exponent becomes Int; everything else
// numeric becomes Float, except a plain float64 (no original text
// available, e.g. already-decoded data) which becomes Int when it holds an
// exact integral value — ambiguous by construction, since by the time a
// Go float64 reaches here its originating literal's shape is already lost.
func FromJSON(j any) (value.Value, error) {
	switch t := j.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case json.Number:
		return numberFromJSONNumber(t)
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return value.Int(int64(t)), nil
		}
		return value.Float(t), nil
	case float32:
		return FromJSON(float64(t))
	case int:
		return value.Int(int64(t)), nil
	case int32:
		return value.Int(int64(t)), nil
	case int64:
		return value.Int(t), nil
	case string:
		return value.Str(t), nil
	case []any:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			ev, err := FromJSON(e)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = ev
		}
		return value.ListFromSlice(elems), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]value.Entry, 0, len(t))
		for _, k := range keys {
			ev, err := FromJSON(t[k])
			if err != nil {
				return value.Value{}, err
			}
			entries = append(entries, value.Field(k, ev))
		}
		return value.Map(entries...), nil
	default:
		return value.Value{}, fmt.Errorf("jsonbridge: unsupported JSON value type %T", j)
	}
}

func numberFromJSONNumber(n json.Number) (value.Value, error) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		f, err := n.Float64()
		if err != nil {
			return value.Value{}, fmt.Errorf("jsonbridge: invalid number %q: %w", s, err)
		}
		return value.Float(f), nil
	}
	i, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return value.Value{}, fmt.Errorf("jsonbridge: invalid number %q: %w", s, err)
		}
		return value.Float(f), nil
	}
	return value.Int(i), nil
}

// ToJSON maps v back onto generic JSON-shaped data.
func ToJSON(v value.Value) (any, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, nil
	case value.KindBool:
		b, _ := v.Bool()
		return b, nil
	case value.KindInt:
		i, _ := v.Int()
		return i, nil
	case value.KindFloat:
		f, _ := v.Float()
		return f, nil
	case value.KindStr:
		s, _ := v.Str()
		return s, nil
	case value.KindBytes:
		b, _ := v.Bytes()
		return base64.StdEncoding.EncodeToString(b), nil
	case value.KindTime:
		t, _ := v.Time()
		return scalarenc.EmitTime(t), nil
	case value.KindID:
		id, _ := v.ID()
		if id.Prefix == "" {
			return "^" + id.Value, nil
		}
		return "^" + id.Prefix + ":" + id.Value, nil
	case value.KindList:
		elems, _ := v.List()
		out := make([]any, len(elems))
		for i, e := range elems {
			jv, err := ToJSON(e)
			if err != nil {
				return nil, err
			}
			out[i] = jv
		}
		return out, nil
	case value.KindMap:
		entries, _ := v.Map()
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			jv, err := ToJSON(e.Value)
			if err != nil {
				return nil, err
			}
			out[e.Key] = jv
		}
		return out, nil
	case value.KindStruct:
		sp, _ := v.StructPayload()
		out := make(map[string]any, len(sp.Fields)+1)
		out["$type"] = sp.TypeName
		for _, f := range sp.Fields {
			jv, err := ToJSON(f.Value)
			if err != nil {
				return nil, err
			}
			out[f.Key] = jv
		}
		return out, nil
	case value.KindSum:
		sp, _ := v.SumPayload()
		var payload any
		if sp.Value != nil {
			jv, err := ToJSON(*sp.Value)
			if err != nil {
				return nil, err
			}
			payload = jv
		}
		return map[string]any{"$tag": sp.Tag, "$value": payload}, nil
	default:
		return nil, fmt.Errorf("jsonbridge: unknown value kind %v", v.Kind())
	}
}
