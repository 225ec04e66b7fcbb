// Package value implements the GLYPH universal value: a tagged union with
// exactly twelve variants. It is the in-memory representation shared by the
// canonicalizer, the parser, and the JSON bridge.
package value

import "time"

// Kind discriminates the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindBytes
	KindTime
	KindID
	KindList
	KindMap
	KindStruct
	KindSum
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindBytes:
		return "bytes"
	case KindTime:
		return "time"
	case KindID:
		return "id"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindSum:
		return "sum"
	default:
		return "unknown"
	}
}

// ID is a reference token: an optional namespace prefix plus a value.
type ID struct {
	Prefix string
	Value  string
}

// Entry is a single key-value pair of a Map or Struct. Entries are held in
// an ordered slice (construction order), never a Go map, because canonical
// emission sorts them on output but the in-memory order must stay stable
// for debuggability — see SPEC_FULL.md.
type Entry struct {
	Key   string
	Value Value
}

// StructPayload is the payload of a KindStruct value: a named, keyed record.
type StructPayload struct {
	TypeName string
	Fields   []Entry
}

// SumPayload is the payload of a KindSum value: a tagged union constructor.
type SumPayload struct {
	Tag   string
	Value *Value // nil means no payload
}

// Value is the universal GLYPH value. Exactly one payload field is valid at
// a time, selected by Kind: a tagged struct rather than an interface
// hierarchy, so a single kind switch drives every operation with no
// vtable dispatch.
type Value struct {
	kind Kind

	boolV  bool
	intV   int64
	floatV float64
	strV   string
	bytesV []byte
	timeV  time.Time
	idV    ID
	listV  []Value
	mapV   []Entry
	structV StructPayload
	sumV   SumPayload
}

// Kind reports which variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// ---- Constructors ----

// Null returns the singleton-shaped null value.
func Null() Value { return Value{kind: KindNull} }

// Bool constructs a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolV: b} }

// Int constructs a signed 64-bit integer value.
func Int(i int64) Value { return Value{kind: KindInt, intV: i} }

// Float constructs an IEEE-754 binary64 value. NaN and +/-Inf are valid.
func Float(f float64) Value { return Value{kind: KindFloat, floatV: f} }

// Str constructs a UTF-8 string value. Arbitrary code points, including
// U+0000, are permitted.
func Str(s string) Value { return Value{kind: KindStr, strV: s} }

// Bytes constructs an opaque byte-sequence value. Bytes and Str are
// distinct variants; a Bytes value never collapses to Str on round-trip.
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, bytesV: cp}
}

// Time constructs a time value. This constructor stores whatever instant it
// is given; the canonicalizer converts it to UTC on emission.
func Time(t time.Time) Value { return Value{kind: KindTime, timeV: t} }

// NewID constructs a reference value from an explicit prefix and value.
func NewID(prefix, val string) Value {
	return Value{kind: KindID, idV: ID{Prefix: prefix, Value: val}}
}

// IDFrom constructs a reference value from an ID struct.
func IDFrom(id ID) Value { return Value{kind: KindID, idV: id} }

// List constructs an ordered list value from the given elements.
func List(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindList, listV: cp}
}

// ListFromSlice constructs a list value from an existing slice without an
// intermediate variadic copy (callers that already own a slice they won't
// mutate further may pass it directly).
func ListFromSlice(elems []Value) Value { return Value{kind: KindList, listV: elems} }

// Map constructs a map value from the given entries. Entry order is
// preserved in memory but irrelevant to canonical form.
func Map(entries ...Entry) Value {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return Value{kind: KindMap, mapV: cp}
}

// Field is a convenience constructor for a single Map/Struct entry.
func Field(key string, v Value) Entry { return Entry{Key: key, Value: v} }

// Struct constructs a named record value.
func Struct(typeName string, fields ...Entry) Value {
	cp := make([]Entry, len(fields))
	copy(cp, fields)
	return Value{kind: KindStruct, structV: StructPayload{TypeName: typeName, Fields: cp}}
}

// Sum constructs a tagged-union value. Pass a nil payload pointer for a
// constructor with no argument (e.g. `Tag()`).
func Sum(tag string, payload *Value) Value {
	return Value{kind: KindSum, sumV: SumPayload{Tag: tag, Value: payload}}
}

// SumOf is a convenience for a Sum carrying a payload value.
func SumOf(tag string, payload Value) Value {
	p := payload
	return Sum(tag, &p)
}

// SumEmpty is a convenience for a Sum with no payload.
func SumEmpty(tag string) Value { return Sum(tag, nil) }
