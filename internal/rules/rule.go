// Package rules applies option bags to widgets.
//
// A Rule reads one or more keys from a Bag, checks the value and calls a
// single mutator on the target. A Pipeline runs an ordered list of rules and
// stops at the first error, leaving earlier mutations in place. Factories
// declare one pipeline each and share the common rules in this package.
package rules

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// Rule is one configuration step for targets of type T.
type Rule[T any] struct {
	name  string
	keys  []string
	apply func(target T, bag *Bag) error
}

// Name returns the rule name; single key rules are named after their key.
func (r Rule[T]) Name() string { return r.name }

// Keys returns the bag keys the rule reads.
func (r Rule[T]) Keys() []string { return append([]string(nil), r.keys...) }

// Apply runs the rule against target.
func (r Rule[T]) Apply(target T, bag *Bag) error {
	if r.apply == nil {
		return nil
	}
	return r.apply(target, bag)
}

// Attr sets a scalar option. Integer and float kinds are converted when the
// value is representable; any other mismatch is a TypeError.
func Attr[T, V any](key string, set func(T, V)) Rule[T] {
	return Rule[T]{name: key, keys: []string{key}, apply: func(target T, bag *Bag) error {
		raw, ok := bag.Get(key)
		if !ok || raw == nil {
			return nil
		}
		v, ok := coerce[V](raw)
		if !ok {
			return uierrors.NewTypeError(key, "must be of type %s", typeName[V]())
		}
		set(target, v)
		return nil
	}}
}

// Pair sets a two element option, applied as set(target, a, b). The value
// may be a Tuple, any slice or an array of length two.
func Pair[T, A, B any](key string, set func(T, A, B)) Rule[T] {
	return Rule[T]{name: key, keys: []string{key}, apply: func(target T, bag *Bag) error {
		raw, ok := bag.Get(key)
		if !ok || raw == nil {
			return nil
		}
		first, second, err := pairOf[A, B](key, raw)
		if err != nil {
			return err
		}
		set(target, first, second)
		return nil
	}}
}

// Checked sets a scalar option after validating it against a validator tag
// such as "gte=0". A failed tag is a ValueError.
func Checked[T, V any](key string, set func(T, V), tag string) Rule[T] {
	return Rule[T]{name: key, keys: []string{key}, apply: func(target T, bag *Bag) error {
		raw, ok := bag.Get(key)
		if !ok || raw == nil {
			return nil
		}
		v, ok := coerce[V](raw)
		if !ok {
			return uierrors.NewTypeError(key, "must be of type %s", typeName[V]())
		}
		if err := validatorInstance().Var(v, tag); err != nil {
			return checkError(key, err)
		}
		set(target, v)
		return nil
	}}
}

// Slot connects a callback option to an event. The value must be a func of
// type F.
func Slot[T, F any](key string, connect func(T, F)) Rule[T] {
	return Rule[T]{name: key, keys: []string{key}, apply: func(target T, bag *Bag) error {
		raw, ok := bag.Get(key)
		if !ok || raw == nil {
			return nil
		}
		rv := reflect.ValueOf(raw)
		if rv.Kind() == reflect.Func && rv.IsNil() {
			return nil
		}
		fn, ok := raw.(F)
		if !ok {
			if rv.Kind() == reflect.Func {
				return uierrors.NewTypeError(key, "must be a callable of type %s", typeName[F]())
			}
			return uierrors.NewTypeError(key, "must be a callable")
		}
		connect(target, fn)
		return nil
	}}
}

// Number is the element type of Range options.
type Number interface{ ~int | ~float64 }

// Range sets a (min, max) pair. A malformed pair or a minimum above the
// maximum is a ValueError.
func Range[T any, N Number](key string, set func(T, N, N)) Rule[T] {
	return Rule[T]{name: key, keys: []string{key}, apply: func(target T, bag *Bag) error {
		raw, ok := bag.Get(key)
		if !ok || raw == nil {
			return nil
		}
		rv := reflect.ValueOf(raw)
		if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() != 2 {
			return uierrors.NewValueError(key, "must be a tuple of (min, max)")
		}
		lo, okLo := coerce[N](rv.Index(0).Interface())
		hi, okHi := coerce[N](rv.Index(1).Interface())
		if !okLo || !okHi {
			return uierrors.NewValueError(key, "min and max must be of type %s", typeName[N]())
		}
		if lo > hi {
			return uierrors.NewValueError(key, "min value cannot be greater than max value")
		}
		set(target, lo, hi)
		return nil
	}}
}

// Enum sets a named constant. The value may be E, an integer or one of
// names, matched without regard to case.
func Enum[T any, E ~int](key string, names map[string]E, set func(T, E)) Rule[T] {
	return Rule[T]{name: key, keys: []string{key}, apply: func(target T, bag *Bag) error {
		raw, ok := bag.Get(key)
		if !ok || raw == nil {
			return nil
		}
		switch v := raw.(type) {
		case E:
			set(target, v)
		case string:
			e, ok := names[strings.ToLower(strings.TrimSpace(v))]
			if !ok {
				return uierrors.NewValueError(key, "unknown value %q", v)
			}
			set(target, e)
		default:
			n, ok := coerce[int](raw)
			if !ok {
				return uierrors.NewTypeError(key, "must be of type %s or a name", typeName[E]())
			}
			set(target, E(n))
		}
		return nil
	}}
}

// Flag calls method when the boolean option is true.
func Flag[T any](key string, method func(T)) Rule[T] {
	return Rule[T]{name: key, keys: []string{key}, apply: func(target T, bag *Bag) error {
		raw, ok := bag.Get(key)
		if !ok || raw == nil {
			return nil
		}
		on, ok := raw.(bool)
		if !ok {
			return uierrors.NewTypeError(key, "must be of type bool")
		}
		if on {
			method(target)
		}
		return nil
	}}
}

// Func hands the raw value of key to apply. Use it for options whose shape
// the other constructors do not cover.
func Func[T any](key string, apply func(T, any) error) Rule[T] {
	return Rule[T]{name: key, keys: []string{key}, apply: func(target T, bag *Bag) error {
		raw, ok := bag.Get(key)
		if !ok || raw == nil {
			return nil
		}
		return apply(target, raw)
	}}
}

// Call runs method unconditionally.
func Call[T any](name string, method func(T)) Rule[T] {
	return Rule[T]{name: name, apply: func(target T, _ *Bag) error {
		method(target)
		return nil
	}}
}

// Constraint runs a check over the whole bag at its position in the pipeline.
func Constraint[T any](name string, check func(T, *Bag) error, keys ...string) Rule[T] {
	return Rule[T]{name: name, keys: keys, apply: check}
}

// Default makes a single key rule apply value when the bag lacks the key.
func Default[T any](rule Rule[T], value any) Rule[T] {
	if len(rule.keys) != 1 {
		return rule
	}
	key := rule.keys[0]
	inner := rule.apply
	rule.apply = func(target T, bag *Bag) error {
		if !bag.Has(key) {
			bag = bag.With(key, value)
		}
		return inner(target, bag)
	}
	return rule
}

// Tuple groups values for Pair options.
func Tuple(values ...any) []any { return values }

func pairOf[A, B any](key string, raw any) (A, B, error) {
	var first A
	var second B
	rv := reflect.ValueOf(raw)
	if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() != 2 {
		return first, second, uierrors.NewTypeError(key, "must be a tuple of 2 elements")
	}
	first, ok := coerce[A](rv.Index(0).Interface())
	if !ok {
		return first, second, uierrors.NewTypeError(key, "each element must be of type %s", typeName[A]())
	}
	second, ok = coerce[B](rv.Index(1).Interface())
	if !ok {
		return first, second, uierrors.NewTypeError(key, "each element must be of type %s", typeName[B]())
	}
	return first, second, nil
}

func typeName[V any]() string {
	return reflect.TypeFor[V]().String()
}

func coerce[V any](raw any) (V, bool) {
	if v, ok := raw.(V); ok {
		return v, true
	}
	var zero V
	out, ok := convert(raw, reflect.TypeFor[V]())
	if !ok {
		return zero, false
	}
	return out.Interface().(V), true
}

// convert handles the conversions YAML and untyped Go literals need: numbers
// across integer and float kinds, named string and bool types, and slices
// element by element.
func convert(raw any, target reflect.Type) (reflect.Value, bool) {
	if raw == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(raw)
	if rv.Type().AssignableTo(target) {
		return rv, true
	}
	out := reflect.New(target).Elem()
	switch {
	case isInteger(target.Kind()):
		n, ok := integerOf(rv)
		if !ok {
			return reflect.Value{}, false
		}
		if isUnsigned(target.Kind()) {
			if n < 0 || out.OverflowUint(uint64(n)) {
				return reflect.Value{}, false
			}
			out.SetUint(uint64(n))
			return out, true
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, false
		}
		out.SetInt(n)
		return out, true
	case isFloat(target.Kind()):
		switch {
		case isFloat(rv.Kind()):
			out.SetFloat(rv.Float())
		case isInteger(rv.Kind()):
			n, _ := integerOf(rv)
			out.SetFloat(float64(n))
		default:
			return reflect.Value{}, false
		}
		return out, true
	case target.Kind() == reflect.String && rv.Kind() == reflect.String:
		out.SetString(rv.String())
		return out, true
	case target.Kind() == reflect.Bool && rv.Kind() == reflect.Bool:
		out.SetBool(rv.Bool())
		return out, true
	case target.Kind() == reflect.Slice && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array):
		out = reflect.MakeSlice(target, rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem, ok := convert(rv.Index(i).Interface(), target.Elem())
			if !ok {
				return reflect.Value{}, false
			}
			out.Index(i).Set(elem)
		}
		return out, true
	}
	return reflect.Value{}, false
}

func integerOf(rv reflect.Value) (int64, bool) {
	switch {
	case isUnsigned(rv.Kind()):
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case isInteger(rv.Kind()):
		return rv.Int(), true
	case isFloat(rv.Kind()):
		f := rv.Float()
		if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return isUnsigned(k)
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the validator shared by Checked rules.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

func checkError(key string, err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return uierrors.NewValueError(key, "%v", err)
	}
	fe := ves[0]
	switch fe.Tag() {
	case "gt":
		if fe.Param() == "0" {
			return uierrors.NewValueError(key, "must be positive")
		}
		return uierrors.NewValueError(key, "must be greater than %s", fe.Param())
	case "gte", "min":
		if fe.Param() == "0" {
			return uierrors.NewValueError(key, "must be non-negative")
		}
		return uierrors.NewValueError(key, "must be at least %s", fe.Param())
	case "lt":
		return uierrors.NewValueError(key, "must be less than %s", fe.Param())
	case "lte", "max":
		return uierrors.NewValueError(key, "must be at most %s", fe.Param())
	case "oneof":
		return uierrors.NewValueError(key, "must be one of %s", fe.Param())
	default:
		return uierrors.NewValueError(key, "%s", fmt.Sprintf("failed validation for tag '%s'", fe.Tag()))
	}
}
