// Package conditions provides the condition implementations APLs can be
// built from, plus the registry that constructs them from configuration.
package conditions

import "github.com/frankyi-gh/aplcheck/internal/core"

// New builds a core.Condition from a statically typed init/update/validate
// triple. The engine stores condition state type-erased; this adapter boxes
// and unboxes it so each condition only ever sees its own state type T.
//
// A nil boxed state (a rule guarded by a condition that was never
// registered with the APL) is replaced by the init value, so absent state
// behaves exactly like freshly-initialized state.
func New[T any](key string, init func() T, update func(T, core.Event) T, validate func(T, core.Event) bool) core.Condition {
	return condition[T]{
		key:      key,
		init:     init,
		update:   update,
		validate: validate,
	}
}

type condition[T any] struct {
	key      string
	init     func() T
	update   func(T, core.Event) T
	validate func(T, core.Event) bool
}

func (c condition[T]) Key() string { return c.key }

func (c condition[T]) Init() any { return c.init() }

func (c condition[T]) Update(state any, ev core.Event) any {
	return c.update(c.unbox(state), ev)
}

func (c condition[T]) Validate(state any, ev core.Event) bool {
	return c.validate(c.unbox(state), ev)
}

func (c condition[T]) unbox(state any) T {
	if t, ok := state.(T); ok {
		return t
	}
	return c.init()
}
