package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object whose members keep their insertion order.
//
// The zero value is an empty object ready to use. Copies of an Object share
// the same members; use Clone to obtain an independent copy.
type Object struct {
	entries *orderedmap.OrderedMap[string, any]
}

// NewObject returns an empty object.
func NewObject() Object {
	return Object{entries: orderedmap.New[string, any]()}
}

// Set sets the member with the given name. An existing member keeps its
// position and only has its value replaced.
func (o *Object) Set(name string, value any) {
	if o.entries == nil {
		o.entries = orderedmap.New[string, any]()
	}
	o.entries.Set(name, value)
}

// Delete removes the member with the given name, if present.
func (o *Object) Delete(name string) {
	if o.entries == nil {
		return
	}
	o.entries.Delete(name)
}

// Merge sets every member of other on o, in other's order.
func (o *Object) Merge(other Object) {
	other.Range(func(name string, value any) bool {
		o.Set(name, value)
		return true
	})
}

// Get returns the member with the given name.
func (o Object) Get(name string) (any, bool) {
	if o.entries == nil {
		return nil, false
	}
	return o.entries.Get(name)
}

// Has reports whether a member with the given name is present.
func (o Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Len returns the number of members.
func (o Object) Len() int {
	if o.entries == nil {
		return 0
	}
	return o.entries.Len()
}

// Names returns the member names in order.
func (o Object) Names() []string {
	names := make([]string, 0, o.Len())
	o.Range(func(name string, _ any) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Range calls fn for each member in order until fn returns false.
func (o Object) Range(fn func(name string, value any) bool) {
	if o.entries == nil {
		return
	}
	for pair := o.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Clone returns a shallow copy of the object.
func (o Object) Clone() Object {
	clone := NewObject()
	clone.Merge(o)
	return clone
}

// Map returns the members as an unordered Go map.
func (o Object) Map() map[string]any {
	m := make(map[string]any, o.Len())
	o.Range(func(name string, value any) bool {
		m[name] = value
		return true
	})
	return m
}

// Equal reports whether both objects serialize to the same canonical text.
func (o Object) Equal(other Object) bool {
	a, errA := o.MarshalJSON()
	b, errB := other.MarshalJSON()
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// String returns the member with the given name if it is a JSON string.
func (o Object) String(name string) (string, bool) {
	value, ok := o.Get(name)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// StringList returns the member with the given name if it is an array
// of JSON strings.
func (o Object) StringList(name string) ([]string, bool) {
	value, ok := o.Get(name)
	if !ok {
		return nil, false
	}
	return toStringList(value)
}

// StringListCoerce is like StringList, but a single JSON string is
// coerced into a list of one element.
func (o Object) StringListCoerce(name string) ([]string, bool) {
	value, ok := o.Get(name)
	if !ok {
		return nil, false
	}
	if s, ok := value.(string); ok {
		return []string{s}, true
	}
	return toStringList(value)
}

// Int64 returns the member with the given name if it is a JSON number
// with an integral value. Fractional values are truncated.
func (o Object) Int64(name string) (int64, bool) {
	value, ok := o.Get(name)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint32:
		return int64(v), true
	default:
		return 0, false
	}
}

// floatToInt64 truncates f, reporting false when the result would not fit.
func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// MarshalJSON implements json.Marshaler, writing members in order.
func (o Object) MarshalJSON() ([]byte, error) {
	buff := bytes.NewBuffer(nil)
	buff.WriteByte('{')

	var err error
	first := true
	o.Range(func(name string, value any) bool {
		if !first {
			buff.WriteByte(',')
		}
		first = false

		var b []byte
		b, err = Marshal(name)
		if err != nil {
			return false
		}
		buff.Write(b)
		buff.WriteByte(':')

		b, err = Marshal(value)
		if err != nil {
			err = fmt.Errorf("member %q: %w", name, err)
			return false
		}
		buff.Write(b)
		return true
	})
	if err != nil {
		return nil, err
	}

	buff.WriteByte('}')
	return buff.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping members in order.
func (o *Object) UnmarshalJSON(data []byte) error {
	obj, err := ParseObject(data)
	if err != nil {
		return err
	}
	*o = obj
	return nil
}

func toStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		list := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, false
			}
			list = append(list, s)
		}
		return list, true
	default:
		return nil, false
	}
}
