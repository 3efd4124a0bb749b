package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveParamType(t *testing.T) {
	t.Run("Should resolve built-in spellings", func(t *testing.T) {
		cases := map[string]TypeKind{
			"str":        TypeString,
			"String":     TypeString,
			"int":        TypeInteger,
			"Integer":    TypeInteger,
			"float":      TypeFloat,
			"double":     TypeFloat,
			"bool":       TypeBoolean,
			"Boolean":    TypeBoolean,
			"JsonArray":  TypeList,
			"JsonObject": TypeMap,
		}
		for name, want := range cases {
			got := ResolveParamType(name)
			assert.Equal(t, want, got.Kind, "type %q", name)
			assert.Equal(t, name, got.Name)
		}
	})
	t.Run("Should degrade unknown names to unconstrained without failing", func(t *testing.T) {
		got := ResolveParamType("GcsPath")
		assert.True(t, got.IsUnconstrained())
		assert.Equal(t, "GcsPath", got.Name)
	})
	t.Run("Should treat an empty name as undeclared", func(t *testing.T) {
		got := ResolveParamType("")
		assert.True(t, got.IsUnconstrained())
		assert.Empty(t, got.Name)
	})
}

func TestRegisterTypeName(t *testing.T) {
	t.Run("Should extend the registry", func(t *testing.T) {
		RegisterTypeName("GcsPath", TypeString)
		t.Cleanup(func() { delete(typeRegistry, "GcsPath") })
		assert.Equal(t, TypeString, ResolveParamType("GcsPath").Kind)
	})
}
