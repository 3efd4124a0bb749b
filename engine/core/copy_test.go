package core_test

import (
	"testing"

	"github.com/pipewright/pipewright/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepCopy(t *testing.T) {
	t.Run("Should detach nested maps from the source", func(t *testing.T) {
		src := map[string]any{
			"model":  map[string]any{"name": "bert"},
			"epochs": 3,
		}
		copied, err := core.DeepCopy(src)
		require.NoError(t, err)
		copied["model"].(map[string]any)["name"] = "t5"
		assert.Equal(t, "bert", src["model"].(map[string]any)["name"])
	})
}

func TestFromMapDefault(t *testing.T) {
	t.Run("Should decode weakly typed input", func(t *testing.T) {
		type cfg struct {
			Name     string `mapstructure:"name"`
			Optional bool   `mapstructure:"optional"`
		}
		got, err := core.FromMapDefault[cfg](map[string]any{
			"name":     "learning_rate",
			"optional": "true",
		})
		require.NoError(t, err)
		assert.Equal(t, cfg{Name: "learning_rate", Optional: true}, got)
	})
}
