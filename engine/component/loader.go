package component

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-yaml"
	"github.com/pipewright/pipewright/engine/core"
	"github.com/pipewright/pipewright/pkg/config"
	"github.com/pipewright/pipewright/pkg/logger"
	"github.com/pipewright/pipewright/pkg/version"
)

var (
	// ErrSourceRequired is returned when no load source was specified.
	ErrSourceRequired = errors.New("need to specify exactly one source")
	// ErrAmbiguousSource is returned when more than one load source was specified.
	ErrAmbiguousSource = errors.New("more than one source specified")
	// ErrNilPath is returned when a file load is requested without a path.
	ErrNilPath = errors.New("file path is required")
	// ErrNilURL is returned when a URL load is requested without a URL.
	ErrNilURL = errors.New("url is required")
	// ErrNilText is returned when a text load is requested without content.
	ErrNilText = errors.New("text is required")
)

// Source selects where a component definition is loaded from. Exactly one
// field must be set.
type Source struct {
	File string
	URL  string
	Text string
}

// Load retrieves a component definition from the single specified source and
// compiles it into a task factory.
func Load(ctx context.Context, src Source) (*TaskFactory, error) {
	count := 0
	for _, s := range []string{src.File, src.URL, src.Text} {
		if s != "" {
			count++
		}
	}
	switch {
	case count == 0:
		recordLoadError(ctx, errorLabelSource)
		return nil, ErrSourceRequired
	case count > 1:
		recordLoadError(ctx, errorLabelSource)
		return nil, ErrAmbiguousSource
	case src.File != "":
		return LoadFromFile(ctx, src.File)
	case src.URL != "":
		return LoadFromURL(ctx, src.URL)
	default:
		return LoadFromText(ctx, src.Text)
	}
}

// LoadFromFile reads a component definition from a local file.
func LoadFromFile(ctx context.Context, path string) (*TaskFactory, error) {
	if path == "" {
		recordLoadError(ctx, errorLabelSource)
		return nil, ErrNilPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		recordLoadError(ctx, errorLabelRetrieve)
		return nil, fmt.Errorf("failed to read component file: %w", err)
	}
	factory, err := buildFromText(ctx, data, path)
	if err != nil {
		return nil, err
	}
	recordComponentLoaded(ctx, "file")
	return factory, nil
}

// LoadFromURL retrieves a component definition over HTTP.
func LoadFromURL(ctx context.Context, url string) (*TaskFactory, error) {
	if url == "" {
		recordLoadError(ctx, errorLabelSource)
		return nil, ErrNilURL
	}
	cfg := config.Global().Loader
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWaitTime).
		SetRetryMaxWaitTime(cfg.RetryMaxWaitTime).
		SetHeader("User-Agent", cfg.UserAgent+"/"+version.GetVersion())
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		recordLoadError(ctx, errorLabelRetrieve)
		return nil, fmt.Errorf("failed to fetch component from %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		recordLoadError(ctx, errorLabelRetrieve)
		return nil, fmt.Errorf("failed to fetch component from %s: status %d", url, resp.StatusCode())
	}
	body := resp.Body()
	if cfg.MaxResponseBytes > 0 && int64(len(body)) > cfg.MaxResponseBytes {
		recordLoadError(ctx, errorLabelRetrieve)
		return nil, fmt.Errorf("component from %s exceeds %d bytes", url, cfg.MaxResponseBytes)
	}
	factory, err := buildFromText(ctx, body, url)
	if err != nil {
		return nil, err
	}
	recordComponentLoaded(ctx, "url")
	return factory, nil
}

// LoadFromText parses a component definition supplied inline.
func LoadFromText(ctx context.Context, text string) (*TaskFactory, error) {
	if text == "" {
		recordLoadError(ctx, errorLabelSource)
		return nil, ErrNilText
	}
	factory, err := buildFromText(ctx, []byte(text), "")
	if err != nil {
		return nil, err
	}
	recordComponentLoaded(ctx, "text")
	return factory, nil
}

// buildFromText parses YAML (a JSON-compatible superset) into a generic map,
// decodes it into a component spec and compiles the task factory.
func buildFromText(ctx context.Context, data []byte, filename string) (*TaskFactory, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		recordLoadError(ctx, errorLabelParse)
		return nil, fmt.Errorf("failed to parse component definition: %w", err)
	}
	spec, err := core.FromMapDefault[Spec](raw)
	if err != nil {
		recordLoadError(ctx, errorLabelParse)
		return nil, fmt.Errorf("failed to decode component spec: %w", err)
	}
	factory, err := NewTaskFactory(&spec, WithFilename(filename))
	if err != nil {
		recordLoadError(ctx, errorLabelBuild)
		return nil, err
	}
	logger.FromContext(ctx).Debug("loaded component",
		"component", factory.Name(), "inputs", len(spec.Inputs), "file", filename)
	return factory, nil
}
