package value

import "time"

// IsNull reports whether this value is the null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, or a TypeError if v is not a bool.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, &TypeError{Want: KindBool, Got: v.kind}
	}
	return v.boolV, nil
}

// Int returns the int64 payload, or a TypeError if v is not an int.
func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, &TypeError{Want: KindInt, Got: v.kind}
	}
	return v.intV, nil
}

// Float returns the float64 payload, or a TypeError if v is not a float.
func (v Value) Float() (float64, error) {
	if v.kind != KindFloat {
		return 0, &TypeError{Want: KindFloat, Got: v.kind}
	}
	return v.floatV, nil
}

// Number returns the numeric payload as a float64 for either Int or Float.
// This is the one numeric convenience; no implicit coercion happens
// anywhere else, and Int and Float never compare equal across variants.
func (v Value) Number() (float64, error) {
	switch v.kind {
	case KindInt:
		return float64(v.intV), nil
	case KindFloat:
		return v.floatV, nil
	default:
		return 0, &TypeError{Want: KindFloat, Got: v.kind}
	}
}

// Str returns the string payload, or a TypeError if v is not a string.
func (v Value) Str() (string, error) {
	if v.kind != KindStr {
		return "", &TypeError{Want: KindStr, Got: v.kind}
	}
	return v.strV, nil
}

// Bytes returns a copy of the byte-sequence payload, or a TypeError if v is
// not Bytes.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, &TypeError{Want: KindBytes, Got: v.kind}
	}
	cp := make([]byte, len(v.bytesV))
	copy(cp, v.bytesV)
	return cp, nil
}

// Time returns the time payload, or a TypeError if v is not a Time.
func (v Value) Time() (time.Time, error) {
	if v.kind != KindTime {
		return time.Time{}, &TypeError{Want: KindTime, Got: v.kind}
	}
	return v.timeV, nil
}

// ID returns the reference payload, or a TypeError if v is not an ID.
func (v Value) ID() (ID, error) {
	if v.kind != KindID {
		return ID{}, &TypeError{Want: KindID, Got: v.kind}
	}
	return v.idV, nil
}

// List returns the element slice, or a TypeError if v is not a List. The
// returned slice aliases the value's internal storage; callers must not
// mutate it in place — use Append or build a new Value instead.
func (v Value) List() ([]Value, error) {
	if v.kind != KindList {
		return nil, &TypeError{Want: KindList, Got: v.kind}
	}
	return v.listV, nil
}

// Map returns the entry slice, or a TypeError if v is not a Map.
func (v Value) Map() ([]Entry, error) {
	if v.kind != KindMap {
		return nil, &TypeError{Want: KindMap, Got: v.kind}
	}
	return v.mapV, nil
}

// StructPayload returns the struct payload, or a TypeError if v is not a
// Struct.
func (v Value) StructPayload() (StructPayload, error) {
	if v.kind != KindStruct {
		return StructPayload{}, &TypeError{Want: KindStruct, Got: v.kind}
	}
	return v.structV, nil
}

// SumPayload returns the sum payload, or a TypeError if v is not a Sum.
func (v Value) SumPayload() (SumPayload, error) {
	if v.kind != KindSum {
		return SumPayload{}, &TypeError{Want: KindSum, Got: v.kind}
	}
	return v.sumV, nil
}

// MustBool returns the boolean payload, panicking with a TypeError if v is
// not a bool. The Must* wrappers serve call sites where the variant is
// already known; everywhere else, use the (T, error) accessors.
func (v Value) MustBool() bool {
	b, err := v.Bool()
	if err != nil {
		panic(err)
	}
	return b
}

// MustInt returns the int64 payload, panicking on a wrong variant.
func (v Value) MustInt() int64 {
	i, err := v.Int()
	if err != nil {
		panic(err)
	}
	return i
}

// MustFloat returns the float64 payload, panicking on a wrong variant.
func (v Value) MustFloat() float64 {
	f, err := v.Float()
	if err != nil {
		panic(err)
	}
	return f
}

// MustStr returns the string payload, panicking on a wrong variant.
func (v Value) MustStr() string {
	s, err := v.Str()
	if err != nil {
		panic(err)
	}
	return s
}

// MustBytes returns a copy of the byte payload, panicking on a wrong variant.
func (v Value) MustBytes() []byte {
	b, err := v.Bytes()
	if err != nil {
		panic(err)
	}
	return b
}

// MustTime returns the time payload, panicking on a wrong variant.
func (v Value) MustTime() time.Time {
	t, err := v.Time()
	if err != nil {
		panic(err)
	}
	return t
}

// MustID returns the reference payload, panicking on a wrong variant.
func (v Value) MustID() ID {
	id, err := v.ID()
	if err != nil {
		panic(err)
	}
	return id
}

// MustList returns the element slice, panicking on a wrong variant.
func (v Value) MustList() []Value {
	l, err := v.List()
	if err != nil {
		panic(err)
	}
	return l
}

// MustMap returns the entry slice, panicking on a wrong variant.
func (v Value) MustMap() []Entry {
	m, err := v.Map()
	if err != nil {
		panic(err)
	}
	return m
}

// MustStructPayload returns the struct payload, panicking on a wrong variant.
func (v Value) MustStructPayload() StructPayload {
	sp, err := v.StructPayload()
	if err != nil {
		panic(err)
	}
	return sp
}

// MustSumPayload returns the sum payload, panicking on a wrong variant.
func (v Value) MustSumPayload() SumPayload {
	sp, err := v.SumPayload()
	if err != nil {
		panic(err)
	}
	return sp
}

// Get performs a structural lookup by key on a Map or Struct. It returns
// (Value{}, false) if v is not a Map/Struct or the key is absent. On a
// duplicate key the first match in storage order wins; callers must not
// rely on any other retention policy for duplicates.
func (v Value) Get(key string) (Value, bool) {
	switch v.kind {
	case KindMap:
		for _, e := range v.mapV {
			if e.Key == key {
				return e.Value, true
			}
		}
	case KindStruct:
		for _, f := range v.structV.Fields {
			if f.Key == key {
				return f.Value, true
			}
		}
	}
	return Value{}, false
}

// Index performs positional lookup on a List. Returns a RangeError if the
// index is out of bounds, or a TypeError if v is not a List.
func (v Value) Index(i int) (Value, error) {
	if v.kind != KindList {
		return Value{}, &TypeError{Want: KindList, Got: v.kind}
	}
	if i < 0 || i >= len(v.listV) {
		return Value{}, &RangeError{Msg: "list index out of bounds"}
	}
	return v.listV[i], nil
}

// Len returns the element/entry count for List, Map, and Struct; 0 for any
// other variant.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.listV)
	case KindMap:
		return len(v.mapV)
	case KindStruct:
		return len(v.structV.Fields)
	default:
		return 0
	}
}
