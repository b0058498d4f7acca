package polyglot

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// optionKind tags the variant held by an Option.
type optionKind uint8

const (
	kindUnset optionKind = iota
	kindLiteral
	kindFunc
	kindMethod
)

// Option is a field setting that is either a literal value, a resolver
// evaluated against the host, or a reference to a host method.
// Options are resolved on every access and never cached, so changes to
// host state show up immediately.
type Option[V any] struct {
	kind   optionKind
	value  V
	fn     func(ctx context.Context, host any, field string) (V, error)
	method string
}

// Literal returns an option that always resolves to v.
func Literal[V any](v V) Option[V] {
	return Option[V]{kind: kindLiteral, value: v}
}

// Func returns an option resolved by calling fn with the host.
// H may be the host pointer type or the host value type.
func Func[H, V any](fn func(H) V) Option[V] {
	return FieldFunc(func(h H, _ string) V { return fn(h) })
}

// FieldFunc returns an option resolved by calling fn with the host and the
// name of the field being accessed.
func FieldFunc[H, V any](fn func(H, string) V) Option[V] {
	return Option[V]{
		kind: kindFunc,
		fn: func(_ context.Context, host any, field string) (V, error) {
			h, ok := asHost[H](host)
			if !ok {
				var zero V
				return zero, fmt.Errorf("host %T is not %s", host, reflect.TypeFor[H]())
			}
			return fn(h, field), nil
		},
	}
}

// Method returns an option resolved by calling the named method on the host.
// The method takes no arguments or a single string (the field name) and
// returns a value convertible to V, optionally followed by an error.
//
// For locale-valued options, a name that is itself one of the field's
// available locales resolves to that locale instead of a method call.
func Method[V any](name string) Option[V] {
	return Option[V]{kind: kindMethod, method: name}
}

// ambient returns an option resolved from the Environment carried by ctx.
func ambient[V any](fn func(Environment) V) Option[V] {
	return Option[V]{
		kind: kindFunc,
		fn: func(ctx context.Context, _ any, _ string) (V, error) {
			return fn(EnvironmentFrom(ctx)), nil
		},
	}
}

// IsSet reports whether the option holds any variant.
func (o Option[V]) IsSet() bool {
	return o.kind != kindUnset
}

// resolve evaluates the option for host and field. available yields the
// field's available locales for the method-or-locale check; a nil available
// skips the check, which is how available_locales resolves itself.
func (o Option[V]) resolve(ctx context.Context, name string, host any, field string, available func() ([]Locale, error)) (V, error) {
	var zero V

	switch o.kind {
	case kindLiteral:
		return o.value, nil

	case kindFunc:
		v, err := o.fn(ctx, host, field)
		if err != nil {
			return zero, newOptionError(ErrOptionType, name, field, err)
		}
		return v, nil

	case kindMethod:
		if available != nil {
			if v, ok := localeLiteral[V](o.method); ok {
				set, err := available()
				if err != nil {
					return zero, err
				}
				if containsLocale(set, Locale(o.method)) {
					return v, nil
				}
			}
		}
		v, err := callMethod[V](host, o.method, field)
		if err != nil {
			var sentinel = ErrOptionType
			if errors.Is(err, ErrUnknownMethod) {
				sentinel = ErrUnknownMethod
			}
			return zero, newOptionError(sentinel, name, field, err)
		}
		return v, nil
	}

	return zero, nil
}

// localeLiteral converts a method name to V when V can hold a locale.
func localeLiteral[V any](name string) (V, bool) {
	var v V
	switch p := any(&v).(type) {
	case *Locale:
		*p = Locale(name)
		return v, true
	case *string:
		*p = name
		return v, true
	}
	return v, false
}

// asHost extracts an H from host, dereferencing a pointer host when H is
// the value type.
func asHost[H any](host any) (H, bool) {
	if h, ok := host.(H); ok {
		return h, true
	}
	rv := reflect.ValueOf(host)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if h, ok := rv.Elem().Interface().(H); ok {
			return h, true
		}
	}
	var zero H
	return zero, false
}

var errorType = reflect.TypeFor[error]()

// callMethod invokes the named method on host and converts its result to V.
func callMethod[V any](host any, name, field string) (V, error) {
	var zero V

	if host == nil {
		return zero, fmt.Errorf("%w %q on nil host", ErrUnknownMethod, name)
	}
	m := reflect.ValueOf(host).MethodByName(name)
	if !m.IsValid() {
		return zero, fmt.Errorf("%w %q on %T", ErrUnknownMethod, name, host)
	}

	mt := m.Type()
	var in []reflect.Value
	switch {
	case mt.NumIn() == 0:
	case mt.NumIn() == 1 && mt.In(0).Kind() == reflect.String:
		in = []reflect.Value{reflect.ValueOf(field).Convert(mt.In(0))}
	default:
		return zero, fmt.Errorf("method %q must take no arguments or a field name", name)
	}

	switch {
	case mt.NumOut() == 1:
	case mt.NumOut() == 2 && mt.Out(1) == errorType:
	default:
		return zero, fmt.Errorf("method %q must return a value and an optional error", name)
	}

	out := m.Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return zero, fmt.Errorf("method %q: %w", name, out[1].Interface().(error))
	}

	v, ok := convertResult[V](out[0])
	if !ok {
		return zero, fmt.Errorf("method %q returned %s, want %s", name, out[0].Type(), reflect.TypeFor[V]())
	}
	return v, nil
}

// convertResult converts rv to V when the kinds line up. Slices are
// converted element by element so []string satisfies []Locale.
func convertResult[V any](rv reflect.Value) (V, bool) {
	var out V
	target := reflect.ValueOf(&out).Elem()
	tt := target.Type()

	switch {
	case rv.Type().AssignableTo(tt):
		target.Set(rv)
	case rv.Kind() == tt.Kind() && rv.Kind() != reflect.Slice && rv.Type().ConvertibleTo(tt):
		target.Set(rv.Convert(tt))
	case rv.Kind() == reflect.Slice && tt.Kind() == reflect.Slice &&
		rv.Type().Elem().Kind() == tt.Elem().Kind() && rv.Type().Elem().ConvertibleTo(tt.Elem()):
		s := reflect.MakeSlice(tt, rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s.Index(i).Set(rv.Index(i).Convert(tt.Elem()))
		}
		target.Set(s)
	default:
		return out, false
	}
	return out, true
}
