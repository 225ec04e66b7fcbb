package value

// Set assigns a field on a Map or Struct, replacing an existing entry with
// the same key or appending a new one. It panics with a TypeError if v is
// neither a Map nor a Struct.
func (v *Value) Set(key string, val Value) {
	switch v.kind {
	case KindMap:
		for i := range v.mapV {
			if v.mapV[i].Key == key {
				v.mapV[i].Value = val
				return
			}
		}
		v.mapV = append(v.mapV, Entry{Key: key, Value: val})
	case KindStruct:
		for i := range v.structV.Fields {
			if v.structV.Fields[i].Key == key {
				v.structV.Fields[i].Value = val
				return
			}
		}
		v.structV.Fields = append(v.structV.Fields, Entry{Key: key, Value: val})
	default:
		panic(&TypeError{Want: KindMap, Got: v.kind})
	}
}

// Append adds an element to a List. It panics with a TypeError if v is not
// a List.
func (v *Value) Append(val Value) {
	if v.kind != KindList {
		panic(&TypeError{Want: KindList, Got: v.kind})
	}
	v.listV = append(v.listV, val)
}

// Clone returns a deep copy sharing no mutable state with v. Canonical
// output never depends on insertion order, but callers that mutate a
// cloned Map/Struct/List must not observe changes on the original.
func (v Value) Clone() Value {
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindStr, KindTime, KindID:
		return v
	case KindBytes:
		cp := make([]byte, len(v.bytesV))
		copy(cp, v.bytesV)
		return Value{kind: KindBytes, bytesV: cp}
	case KindList:
		cp := make([]Value, len(v.listV))
		for i, e := range v.listV {
			cp[i] = e.Clone()
		}
		return Value{kind: KindList, listV: cp}
	case KindMap:
		cp := make([]Entry, len(v.mapV))
		for i, e := range v.mapV {
			cp[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
		}
		return Value{kind: KindMap, mapV: cp}
	case KindStruct:
		fields := make([]Entry, len(v.structV.Fields))
		for i, f := range v.structV.Fields {
			fields[i] = Entry{Key: f.Key, Value: f.Value.Clone()}
		}
		return Value{kind: KindStruct, structV: StructPayload{TypeName: v.structV.TypeName, Fields: fields}}
	case KindSum:
		var payload *Value
		if v.sumV.Value != nil {
			cp := v.sumV.Value.Clone()
			payload = &cp
		}
		return Value{kind: KindSum, sumV: SumPayload{Tag: v.sumV.Tag, Value: payload}}
	default:
		return Value{kind: KindNull}
	}
}
