package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValue(t *testing.T) {
	t.Run("Should pass literal kinds through unchanged", func(t *testing.T) {
		assert.Equal(t, "gs://bucket/data", NormalizeValue("gs://bucket/data"))
		assert.Equal(t, 42, NormalizeValue(42))
		assert.Equal(t, int64(42), NormalizeValue(int64(42)))
		assert.Equal(t, 0.5, NormalizeValue(0.5))
		assert.Equal(t, true, NormalizeValue(true))
	})
	t.Run("Should pass graph references through unchanged", func(t *testing.T) {
		out := NewTaskOutputArgument("train", "model")
		assert.Same(t, out, NormalizeValue(out))
		in := NewGraphInputArgument("dataset")
		assert.Same(t, in, NormalizeValue(in))
	})
	t.Run("Should keep nil as absent", func(t *testing.T) {
		assert.Nil(t, NormalizeValue(nil))
	})
	t.Run("Should coerce unsupported kinds to strings", func(t *testing.T) {
		assert.Equal(t, "[1 2 3]", NormalizeValue([]int{1, 2, 3}))
		assert.Equal(t, "map[a:1]", NormalizeValue(map[string]int{"a": 1}))
	})
}

func TestArguments_DeepCopy(t *testing.T) {
	t.Run("Should return nil for nil arguments", func(t *testing.T) {
		var args Arguments
		copied, err := args.DeepCopy()
		require.NoError(t, err)
		assert.Nil(t, copied)
	})
	t.Run("Should detach the copy from the source", func(t *testing.T) {
		args := Arguments{"config": map[string]any{"depth": 2}}
		copied, err := args.DeepCopy()
		require.NoError(t, err)
		copied["config"].(map[string]any)["depth"] = 9
		assert.Equal(t, 2, args["config"].(map[string]any)["depth"])
	})
}
