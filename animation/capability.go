package animation

import "errors"

// ErrNotSupported is returned when neither a value nor anything it wraps offers a capability
var ErrNotSupported = errors.New("animation: capability not supported")

// Resettable is implemented by animations that can go back to their first frame
type Resettable interface {
	Reset()
}

// EditableState is implemented by animations whose state can be changed from outside
type EditableState[T any] interface {
	SetState(state T)
	State() *T
}

// Reset rewinds a, or the first value reachable through Unwrap that is Resettable
func Reset(a any) error {
	return Unwrapped(a, func(x any) bool {
		r, ok := x.(Resettable)
		if ok {
			r.Reset()
		}
		return ok
	})
}

// SetState replaces the state of a, or of the first value reachable through Unwrap
// that is an EditableState[T]
func SetState[T any](a any, state T) error {
	return Unwrapped(a, func(x any) bool {
		e, ok := x.(EditableState[T])
		if ok {
			e.SetState(state)
		}
		return ok
	})
}

// State returns the live state of a, following Unwrap like SetState
func State[T any](a any) (*T, error) {
	var state *T
	err := Unwrapped(a, func(x any) bool {
		e, ok := x.(EditableState[T])
		if ok {
			state = e.State()
		}
		return ok
	})
	return state, err
}

// Unwrapped calls try on a and then on each value returned by successive Unwrap calls
// until try reports success; ErrNotSupported when the chain ends first
func Unwrapped(a any, try func(any) bool) error {
	for a != nil {
		if try(a) {
			return nil
		}
		u, ok := a.(interface{ Unwrap() any })
		if !ok {
			break
		}
		a = u.Unwrap()
	}
	return ErrNotSupported
}
