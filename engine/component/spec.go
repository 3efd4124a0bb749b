package component

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// InputSpec declares one input port of a component.
type InputSpec struct {
	Name        string `json:"name"                  yaml:"name"                  mapstructure:"name"                  validate:"required"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"        mapstructure:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Default     any    `json:"default,omitempty"     yaml:"default,omitempty"     mapstructure:"default"`
	Optional    bool   `json:"optional,omitempty"    yaml:"optional,omitempty"    mapstructure:"optional"`
}

// HasDefault reports whether the input declares a default, either explicitly
// or by being marked optional.
func (i *InputSpec) HasDefault() bool {
	return i.Optional || i.Default != nil
}

// OutputSpec declares one output port of a component. Outputs never join the
// factory signature; their paths are always generated by the system.
type OutputSpec struct {
	Name        string `json:"name"                  yaml:"name"                  mapstructure:"name"                  validate:"required"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"        mapstructure:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// Spec is the declarative description of a reusable unit of work.
type Spec struct {
	Name        string         `json:"name,omitempty"        yaml:"name,omitempty"        mapstructure:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Inputs      []InputSpec    `json:"inputs,omitempty"      yaml:"inputs,omitempty"      mapstructure:"inputs"      validate:"dive"`
	Outputs     []OutputSpec   `json:"outputs,omitempty"     yaml:"outputs,omitempty"     mapstructure:"outputs"     validate:"dive"`
	Metadata    map[string]any `json:"metadata,omitempty"    yaml:"metadata,omitempty"    mapstructure:"metadata"`
}

// Validate checks the structural soundness of the spec. Declared types are
// advisory and never validated here.
func (s *Spec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid component spec: %w", err)
	}
	seenInputs := make(map[string]struct{}, len(s.Inputs))
	for _, in := range s.Inputs {
		if _, dup := seenInputs[in.Name]; dup {
			return fmt.Errorf("invalid component spec: duplicate input %q", in.Name)
		}
		seenInputs[in.Name] = struct{}{}
	}
	seenOutputs := make(map[string]struct{}, len(s.Outputs))
	for _, out := range s.Outputs {
		if _, dup := seenOutputs[out.Name]; dup {
			return fmt.Errorf("invalid component spec: duplicate output %q", out.Name)
		}
		seenOutputs[out.Name] = struct{}{}
	}
	return nil
}

// Reference identifies the originating component spec. It is created once per
// loaded component and immutable after creation, except for the spec
// back-reference, which is attached exactly once at load time.
type Reference struct {
	Name   string `json:"name"             yaml:"name"             mapstructure:"name"`
	Digest string `json:"digest,omitempty" yaml:"digest,omitempty" mapstructure:"digest"`
	Tag    string `json:"tag,omitempty"    yaml:"tag,omitempty"    mapstructure:"tag"`

	spec *Spec
}

// NewReference creates a reference with the given resolved name.
func NewReference(name string) *Reference {
	return &Reference{Name: name}
}

// AttachSpec attaches the full component spec for later resolution. The first
// attachment wins; subsequent calls are no-ops.
func (r *Reference) AttachSpec(s *Spec) {
	if r.spec == nil {
		r.spec = s
	}
}

// ComponentSpec returns the attached spec, or nil when none was attached.
func (r *Reference) ComponentSpec() *Spec {
	return r.spec
}

// ComponentName returns the reference's resolved component name.
func (r *Reference) ComponentName() string {
	return r.Name
}

// OutputNames returns the declared output port names when the spec is
// resolvable, or nil otherwise.
func (r *Reference) OutputNames() []string {
	if r.spec == nil || len(r.spec.Outputs) == 0 {
		return nil
	}
	names := make([]string, len(r.spec.Outputs))
	for i, out := range r.spec.Outputs {
		names[i] = out.Name
	}
	return names
}
