package component

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trainerYAML = `
name: Train Model
description: Trains a model on a dataset
inputs:
  - name: Dataset Path
    type: String
  - name: Epochs
    type: Integer
  - name: Learning Rate
    type: Float
    optional: true
    default: 0.01
outputs:
  - name: Model
    type: String
`

func TestLoad(t *testing.T) {
	ctx := t.Context()

	t.Run("Should reject zero sources", func(t *testing.T) {
		_, err := Load(ctx, Source{})
		assert.ErrorIs(t, err, ErrSourceRequired)
	})
	t.Run("Should reject multiple sources", func(t *testing.T) {
		_, err := Load(ctx, Source{File: "a.yaml", Text: trainerYAML})
		assert.ErrorIs(t, err, ErrAmbiguousSource)
		_, err = Load(ctx, Source{URL: "http://example.com/a.yaml", Text: trainerYAML})
		assert.ErrorIs(t, err, ErrAmbiguousSource)
	})
	t.Run("Should dispatch to the single specified source", func(t *testing.T) {
		factory, err := Load(ctx, Source{Text: trainerYAML})
		require.NoError(t, err)
		assert.Equal(t, "Train Model", factory.Name())
	})
}

func TestLoadFromText(t *testing.T) {
	ctx := t.Context()

	t.Run("Should reject empty text", func(t *testing.T) {
		_, err := LoadFromText(ctx, "")
		assert.ErrorIs(t, err, ErrNilText)
	})
	t.Run("Should parse YAML into a factory", func(t *testing.T) {
		factory, err := LoadFromText(ctx, trainerYAML)
		require.NoError(t, err)
		assert.Equal(t, "Train Model", factory.Name())
		assert.Equal(t, "Trains a model on a dataset", factory.Description())
		assert.Len(t, factory.Parameters(), 3)
		assert.Equal(t, []string{"Model"}, factory.Reference().OutputNames())
	})
	t.Run("Should accept JSON as a YAML superset", func(t *testing.T) {
		factory, err := LoadFromText(ctx, `{"name": "JSON Component", "inputs": [{"name": "x"}]}`)
		require.NoError(t, err)
		assert.Equal(t, "JSON Component", factory.Name())
	})
	t.Run("Should reject malformed definitions", func(t *testing.T) {
		_, err := LoadFromText(ctx, "::not yaml::")
		assert.ErrorContains(t, err, "failed to parse")
	})
}

func TestLoadFromFile(t *testing.T) {
	ctx := t.Context()

	t.Run("Should reject an empty path", func(t *testing.T) {
		_, err := LoadFromFile(ctx, "")
		assert.ErrorIs(t, err, ErrNilPath)
	})
	t.Run("Should load a component file and keep the filename", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trainer.yaml")
		require.NoError(t, os.WriteFile(path, []byte(trainerYAML), 0o600))
		factory, err := LoadFromFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "Train Model", factory.Name())
		assert.Equal(t, path, factory.Filename())
	})
	t.Run("Should use the filename as the name fallback", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "unnamed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("inputs:\n  - name: x\n"), 0o600))
		factory, err := LoadFromFile(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, path, factory.Name())
	})
	t.Run("Should surface read failures", func(t *testing.T) {
		_, err := LoadFromFile(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "failed to read")
	})
}

func TestLoadFromURL(t *testing.T) {
	ctx := t.Context()

	t.Run("Should reject an empty URL", func(t *testing.T) {
		_, err := LoadFromURL(ctx, "")
		assert.ErrorIs(t, err, ErrNilURL)
	})
	t.Run("Should fetch and parse a component definition", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(trainerYAML))
		}))
		defer srv.Close()
		factory, err := LoadFromURL(ctx, srv.URL+"/trainer.yaml")
		require.NoError(t, err)
		assert.Equal(t, "Train Model", factory.Name())
	})
	t.Run("Should surface non-success status codes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()
		_, err := LoadFromURL(ctx, srv.URL+"/missing.yaml")
		assert.ErrorContains(t, err, "status 404")
	})
}
