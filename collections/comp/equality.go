package comp

import (
	"fmt"
	"hash/fnv"
	"reflect"

	"golang.org/x/exp/constraints"
)

// LessThaner is the override hook for user types that want to
// participate in the default ordering without a caller-supplied
// Comparator: Less delegates to it when present.
type LessThaner[T any] interface {
	LessThan(other T) bool
}

// HashCoder is the override hook for user types that want to
// participate in the default hash without a caller-supplied hash
// function: Hash delegates to it when present.
type HashCoder interface {
	HashCode() string
}

// Less implements the library-wide default strict weak ordering: `<`
// for ordered primitives, a user-supplied LessThan method for types
// that provide one (see LessThaner), and otherwise a plain string
// comparison of the two values' canonical string forms (HashCode, or
// fmt's %#v rendering). That fallback orders fields by their text, not
// by their own type's order: a field value of 10 sorts before 9.
func Less(a, b any) bool {
	if av, ok := a.(interface{ LessThan(any) bool }); ok {
		return av.LessThan(b)
	}
	if a != nil && b != nil {
		m := reflect.ValueOf(a).MethodByName("LessThan")
		if m.IsValid() && m.Type().NumIn() == 1 && m.Type().NumOut() == 1 &&
			m.Type().Out(0).Kind() == reflect.Bool && reflect.TypeOf(b).AssignableTo(m.Type().In(0)) {
			return m.Call([]reflect.Value{reflect.ValueOf(b)})[0].Bool()
		}
	}
	switch x := a.(type) {
	case int:
		return x < b.(int)
	case int8:
		return x < b.(int8)
	case int16:
		return x < b.(int16)
	case int32:
		return x < b.(int32)
	case int64:
		return x < b.(int64)
	case uint:
		return x < b.(uint)
	case uint8:
		return x < b.(uint8)
	case uint16:
		return x < b.(uint16)
	case uint32:
		return x < b.(uint32)
	case uint64:
		return x < b.(uint64)
	case float32:
		return x < b.(float32)
	case float64:
		return x < b.(float64)
	case string:
		return x < b.(string)
	case []byte:
		return ByteSliceComparator(x, b.([]byte)) < 0
	default:
		return canonicalString(a) < canonicalString(b)
	}
}

// LessOrdered is the typed counterpart of Less for constraints.Ordered
// key types, used internally where a concrete Comparator is cheaper
// than the `any`-typed default dispatch.
func LessOrdered[T constraints.Ordered](a, b T) bool {
	return a < b
}

// EqualTo is the library-wide default equality predicate: symmetric,
// and falling back to deep structural equality for composite types.
func EqualTo(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// Hash is the library-wide default hash function: 32-bit FNV-1a over
// the UTF-8 bytes of the value's canonical string form. User types
// that implement HashCoder supply that string themselves, strings use
// their own bytes, and everything else falls back to
// fmt.Sprintf("%#v", v).
func Hash(v any) uint32 {
	h := fnv.New32a()
	if hc, ok := v.(HashCoder); ok {
		h.Write([]byte(hc.HashCode()))
	} else {
		h.Write([]byte(canonicalString(v)))
	}
	return h.Sum32()
}

func canonicalString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if hc, ok := v.(HashCoder); ok {
		return hc.HashCode()
	}
	return fmt.Sprintf("%#v", v)
}
