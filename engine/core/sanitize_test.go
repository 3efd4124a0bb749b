package core_test

import (
	"regexp"
	"testing"

	"github.com/pipewright/pipewright/engine/core"
	"github.com/stretchr/testify/assert"
)

var identifierRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func TestNormalizeName(t *testing.T) {
	t.Run("Should lower case and collapse non-word runs", func(t *testing.T) {
		assert.Equal(t, "model name", core.NormalizeName("Model   Name"))
		assert.Equal(t, "model name", core.NormalizeName("model---name"))
		assert.Equal(t, "model name", core.NormalizeName("  Model__Name  "))
	})
	t.Run("Should prefix names starting with a digit", func(t *testing.T) {
		assert.Equal(t, "n3d model", core.NormalizeName("3D Model"))
	})
	t.Run("Should be total over arbitrary input", func(t *testing.T) {
		assert.Equal(t, "", core.NormalizeName(""))
		assert.Equal(t, "", core.NormalizeName("!!!"))
	})
}

func TestSanitizeIdentifier(t *testing.T) {
	t.Run("Should produce identical identifiers for colliding spellings", func(t *testing.T) {
		assert.Equal(t, "model_name", core.SanitizeIdentifier("Model Name"))
		assert.Equal(t, "model_name", core.SanitizeIdentifier("model-name"))
	})
	t.Run("Should produce valid identifiers for arbitrary names", func(t *testing.T) {
		names := []string{
			"Model Name",
			"model-name",
			"3D points",
			"GCS path!",
			"number_of_epochs",
			"Learning Rate (float)",
		}
		for _, name := range names {
			ident := core.SanitizeIdentifier(name)
			assert.Regexp(t, identifierRegexp, ident, "input %q", name)
		}
	})
}

func TestSanitizeResourceName(t *testing.T) {
	t.Run("Should hyphenate internal spaces", func(t *testing.T) {
		assert.Equal(t, "my-training-step", core.SanitizeResourceName("My Training Step"))
		assert.Equal(t, "n2nd-step", core.SanitizeResourceName("2nd step"))
	})
}
