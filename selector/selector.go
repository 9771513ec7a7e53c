// Package selector evaluates expr-lang expressions against decoded
// webcams.travel payloads, so callers can pull fields out of a response
// without declaring models for it.
package selector

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"
)

// ErrEmptyExpression is returned when compiling a blank expression
var ErrEmptyExpression = errors.New("empty selector expression")

// Selector represents a compiled selector expression
type Selector struct {
	program *vm.Program
	expr    string
}

// helpers are available to every expression
var helpers = map[string]any{
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	// icontains is a case-insensitive substring test; contains is an operator
	"icontains": func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	},
	// num converts payload numbers, which are decoded as json.Number
	"num": func(v any) float64 {
		if n, ok := v.(json.Number); ok {
			f, _ := n.Float64()
			return f
		}
		return cast.ToFloat64(v)
	},
	"str": func(v any) string {
		return cast.ToString(v)
	},
}

// Compile compiles a selector expression
func Compile(expression string) (*Selector, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrEmptyExpression
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile selector expression: %w", err)
	}

	return &Selector{
		program: program,
		expr:    expression,
	}, nil
}

// Apply evaluates the selector against payload. The payload is bound to
// `payload`; when it is an object its top-level keys are bound as well,
// unless they clash with a helper name.
func (s *Selector) Apply(payload any) (any, error) {
	env := make(map[string]any, len(helpers)+1)
	if root, ok := payload.(map[string]any); ok {
		for key, value := range root {
			env[key] = value
		}
	}
	for name, fn := range helpers {
		env[name] = fn
	}
	env["payload"] = payload

	result, err := expr.Run(s.program, env)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", s.expr, err)
	}
	return result, nil
}

// String returns the source expression
func (s *Selector) String() string {
	return s.expr
}
