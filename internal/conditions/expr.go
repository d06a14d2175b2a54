package conditions

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/rs/zerolog/log"

	"github.com/frankyi-gh/aplcheck/internal/core"
)

const TypeExpr = "expr"

// ExprConfig configures an expr condition.
type ExprConfig struct {
	Key string `mapstructure:"key"`

	// Expr is a boolean expr-lang expression evaluated against the
	// triggering attempt event, available as `event`.
	Expr string `mapstructure:"expr"`
}

// NewExpr builds a stateless guard from a compiled expression. It carries
// no state across the stream (update is the identity) and validates by
// running the program against the attempt event itself.
func NewExpr(cfg ExprConfig) (core.Condition, error) {
	program, err := expr.Compile(cfg.Expr, expr.Env(map[string]any{
		"event": core.Event{},
	}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling expr for condition '%s': %w", cfg.Key, err)
	}

	return New(cfg.Key,
		func() struct{} { return struct{}{} },
		func(s struct{}, _ core.Event) struct{} { return s },
		func(_ struct{}, ev core.Event) bool {
			out, err := expr.Run(program, map[string]any{"event": ev})
			if err != nil {
				log.Warn().Err(err).Msgf("error evaluating expression for condition '%s'", cfg.Key)
				return false
			}
			b, ok := out.(bool)
			return ok && b
		},
	), nil
}
