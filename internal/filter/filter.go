// Package filter selects entities with expr-lang expressions evaluated
// against their wire fields.
//
// Every field of an entity is available under its wire name (artist,
// trackKeys, canStream, ...), plus:
//
//	tag       the discriminator tag, e.g. "a"
//	shape     the shape name, e.g. "Album"
//	title     the display name used in tables
//	subtitle  the secondary label used in tables
//
// Fields an entity does not carry evaluate to nil, and an expression that
// evaluates to nil does not match.
package filter

import (
	"fmt"
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jfmyers9/rdio/internal/output"
	"github.com/jfmyers9/rdio/pkg/rdio"
)

// Filter is a compiled filter expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression that must evaluate to a boolean.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // entity fields vary by shape
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Evaluate reports whether e matches the filter.
func (f *Filter) Evaluate(e rdio.Entity) (bool, error) {
	env, err := environment(e)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Key:        e.EntityKey(),
			Reason:     "failed to read entity",
			Err:        err,
		}
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Key:        e.EntityKey(),
			Reason:     "failed to run expression",
			Err:        err,
		}
	}

	switch v := result.(type) {
	case bool:
		return v, nil
	case nil:
		// A bare field the entity does not carry
		return false, nil
	default:
		return false, &EvaluationError{
			Expression: f.expression,
			Key:        e.EntityKey(),
			Reason:     fmt.Sprintf("expression returned %T, not bool", result),
		}
	}
}

// Apply returns the entities of list that match, in order.
func (f *Filter) Apply(list []rdio.Entity) ([]rdio.Entity, error) {
	matched := make([]rdio.Entity, 0, len(list))
	for _, e := range list {
		ok, err := f.Evaluate(e)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func environment(e rdio.Entity) (map[string]any, error) {
	summary, err := output.Summarize(e)
	if err != nil {
		return nil, err
	}
	fields, err := output.Fields(e)
	if err != nil {
		return nil, err
	}

	env := helperFunctions()
	maps.Copy(env, fields)
	env["tag"] = summary.Tag
	env["shape"], _ = rdio.ShapeName(summary.Tag)
	env["title"] = summary.Name
	env["subtitle"] = summary.Detail
	return env, nil
}

// helperFunctions returns the functions available to every expression.
// String helpers are case-insensitive and treat nil as "". hasPrefix,
// hasSuffix, lower and upper replace the expr builtins of the same name;
// the contains, startsWith and endsWith operators stay case-sensitive.
func helperFunctions() map[string]any {
	return map[string]any{
		"icontains": func(s any, substr string) bool {
			return strings.Contains(strings.ToLower(text(s)), strings.ToLower(substr))
		},
		"hasPrefix": func(s any, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(text(s)), strings.ToLower(prefix))
		},
		"hasSuffix": func(s any, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(text(s)), strings.ToLower(suffix))
		},
		"lower": func(s any) string { return strings.ToLower(text(s)) },
		"upper": func(s any) string { return strings.ToUpper(text(s)) },
		"has": func(v any) bool { return v != nil },
	}
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
