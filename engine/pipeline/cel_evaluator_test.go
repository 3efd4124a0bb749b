package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCondEvaluator(t *testing.T) {
	t.Run("Should create an evaluator with configured defaults", func(t *testing.T) {
		ev, err := NewCondEvaluator()
		require.NoError(t, err)
		assert.NotNil(t, ev.env)
		assert.NotNil(t, ev.programCache)
		assert.Equal(t, uint64(1000), ev.costLimit)
	})
	t.Run("Should honor a custom cost limit", func(t *testing.T) {
		ev, err := NewCondEvaluator(WithCostLimit(500))
		require.NoError(t, err)
		assert.Equal(t, uint64(500), ev.costLimit)
	})
}

func TestCondEvaluator_Compile(t *testing.T) {
	t.Run("Should accept a well-formed expression", func(t *testing.T) {
		ev, err := NewCondEvaluator()
		require.NoError(t, err)
		assert.NoError(t, ev.Compile(`status == "approved" && retries < 3`))
	})
	t.Run("Should reject a malformed expression", func(t *testing.T) {
		ev, err := NewCondEvaluator()
		require.NoError(t, err)
		assert.ErrorContains(t, ev.Compile(`status ===`), "failed to compile")
	})
}

func TestCondEvaluator_Evaluate(t *testing.T) {
	t.Run("Should evaluate boolean expressions against data", func(t *testing.T) {
		ev, err := NewCondEvaluator()
		require.NoError(t, err)
		data := map[string]any{
			"status":  "approved",
			"metrics": map[string]any{"accuracy": 0.95},
		}
		result, err := ev.Evaluate(t.Context(), `status == "approved" && metrics.accuracy > 0.9`, data)
		require.NoError(t, err)
		assert.True(t, result)

		result, err = ev.Evaluate(t.Context(), `status == "rejected"`, data)
		require.NoError(t, err)
		assert.False(t, result)
	})
	t.Run("Should enforce a boolean result", func(t *testing.T) {
		ev, err := NewCondEvaluator()
		require.NoError(t, err)
		_, err = ev.Evaluate(t.Context(), `status`, map[string]any{"status": "approved"})
		assert.ErrorContains(t, err, "must evaluate to a boolean")
	})
	t.Run("Should respect context cancellation", func(t *testing.T) {
		ev, err := NewCondEvaluator()
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err = ev.Evaluate(ctx, `true`, map[string]any{})
		assert.Error(t, err)
	})
}
