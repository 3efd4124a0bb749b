package pipeline

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/cel-go/cel"
	"github.com/pipewright/pipewright/pkg/config"
)

// CondEvaluator compiles and evaluates branch-condition expressions (CEL).
// Compiled programs are cached by expression text.
type CondEvaluator struct {
	env          *cel.Env
	costLimit    uint64
	programCache *ristretto.Cache[string, cel.Program]
}

// CondOption configures a CondEvaluator.
type CondOption func(*CondEvaluator)

// WithCostLimit caps evaluation cost for a single expression.
func WithCostLimit(limit uint64) CondOption {
	return func(e *CondEvaluator) { e.costLimit = limit }
}

// NewCondEvaluator creates a condition evaluator with defaults taken from the
// global configuration.
func NewCondEvaluator(opts ...CondOption) (*CondEvaluator, error) {
	cfg := config.Global().Evaluator
	env, err := cel.NewEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, cel.Program]{
		NumCounters: cfg.CacheSize * 10,
		MaxCost:     cfg.CacheSize,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create program cache: %w", err)
	}
	e := &CondEvaluator{
		env:          env,
		costLimit:    cfg.CostLimit,
		programCache: cache,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Compile checks the expression's syntax without binding variables. Used at
// scope entry so malformed conditions fail while the pipeline is authored.
func (e *CondEvaluator) Compile(expr string) error {
	if _, iss := e.env.Parse(expr); iss != nil && iss.Err() != nil {
		return fmt.Errorf("failed to compile expression: %w", iss.Err())
	}
	return nil
}

// Evaluate runs the expression against data and enforces a boolean result.
func (e *CondEvaluator) Evaluate(ctx context.Context, expr string, data map[string]any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	prg, err := e.program(expr, data)
	if err != nil {
		return false, err
	}
	out, _, err := prg.ContextEval(ctx, data)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate expression: %w", err)
	}
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must evaluate to a boolean, got %T", out.Value())
	}
	return result, nil
}

func (e *CondEvaluator) program(expr string, data map[string]any) (cel.Program, error) {
	if prg, ok := e.programCache.Get(expr); ok {
		return prg, nil
	}
	decls := make([]cel.EnvOption, 0, len(data))
	for key := range data {
		decls = append(decls, cel.Variable(key, cel.DynType))
	}
	env, err := e.env.Extend(decls...)
	if err != nil {
		return nil, fmt.Errorf("failed to extend CEL environment: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("failed to compile expression: %w", iss.Err())
	}
	prg, err := env.Program(ast, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to build program: %w", err)
	}
	e.programCache.Set(expr, prg, 1)
	return prg, nil
}
