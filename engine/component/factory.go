package component

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pipewright/pipewright/engine/core"
	"github.com/pipewright/pipewright/engine/task"
	"github.com/pipewright/pipewright/pkg/logger"
)

// DefaultComponentName is the placeholder used when a component declares no
// name and no originating file is known.
const DefaultComponentName = "Component"

var (
	// ErrUnknownArgument is returned when a caller supplies an identifier the
	// factory never declared.
	ErrUnknownArgument = errors.New("unknown argument")
	// ErrMissingArgument is returned when a required input has no value.
	ErrMissingArgument = errors.New("missing required argument")
)

// TranslationTable is the bijection between a component's original port names
// and the caller identifiers synthesized for them. It is scoped to one
// factory's lifetime.
type TranslationTable struct {
	toCaller map[string]string
	toPort   map[string]string
}

// CallerName translates an original port name to its caller identifier.
func (t *TranslationTable) CallerName(port string) (string, bool) {
	caller, ok := t.toCaller[port]
	return caller, ok
}

// PortName translates a caller identifier back to the original port name.
func (t *TranslationTable) PortName(caller string) (string, bool) {
	port, ok := t.toPort[caller]
	return port, ok
}

// Len returns the number of translated ports.
func (t *TranslationTable) Len() int {
	return len(t.toPort)
}

// Parameter describes one caller-facing parameter of a task factory.
type Parameter struct {
	// Name is the sanitized, collision-free caller identifier.
	Name string
	// Type is advisory; unresolved declared types degrade to unconstrained.
	Type ParamType
	// Required parameters precede optional ones in the synthesized list.
	Required bool
	// Default is the declared default value, nil when none was declared.
	Default any
}

// TaskFactory is a compiled component: a callable task-construction unit with
// a caller-facing signature derived from the component's declared inputs.
type TaskFactory struct {
	spec        *Spec
	name        string
	description string
	filename    string
	ref         *Reference
	table       *TranslationTable
	params      []Parameter
}

type factoryOptions struct {
	filename string
	ref      *Reference
}

// Option configures NewTaskFactory.
type Option func(*factoryOptions)

// WithFilename records the originating file, used for diagnostics and as the
// component-name fallback.
func WithFilename(filename string) Option {
	return func(o *factoryOptions) { o.filename = filename }
}

// WithReference supplies a pre-existing component reference instead of
// creating a fresh one.
func WithReference(ref *Reference) Option {
	return func(o *factoryOptions) { o.ref = ref }
}

// NewTaskFactory compiles a component spec into a task factory. It derives a
// collision-free caller identifier for every declared input, builds the
// identifier translation table, attaches the spec to its reference and
// synthesizes the parameter list with required inputs ahead of optional ones.
func NewTaskFactory(spec *Spec, opts ...Option) (*TaskFactory, error) {
	if spec == nil {
		return nil, fmt.Errorf("component spec is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	var options factoryOptions
	for _, opt := range opts {
		opt(&options)
	}

	name := spec.Name
	if name == "" {
		name = options.filename
	}
	if name == "" {
		name = DefaultComponentName
	}

	table := &TranslationTable{
		toCaller: make(map[string]string, len(spec.Inputs)),
		toPort:   make(map[string]string, len(spec.Inputs)),
	}
	for _, in := range spec.Inputs {
		caller := core.SanitizeIdentifier(in.Name)
		caller = core.MakeNameUnique(caller, func(n string) bool {
			_, taken := table.toPort[n]
			return taken
		}, "_")
		table.toCaller[in.Name] = caller
		table.toPort[caller] = in.Name
	}

	ref := options.ref
	if ref == nil {
		ref = NewReference(name)
	}
	ref.AttachSpec(spec)

	// Required parameters must precede ones with defaults; relative order
	// within each group follows declaration order.
	params := make([]Parameter, 0, len(spec.Inputs))
	for _, in := range spec.Inputs {
		if !in.HasDefault() {
			params = append(params, newParameter(table, &in))
		}
	}
	for _, in := range spec.Inputs {
		if in.HasDefault() {
			params = append(params, newParameter(table, &in))
		}
	}

	return &TaskFactory{
		spec:        spec,
		name:        name,
		description: spec.Description,
		filename:    options.filename,
		ref:         ref,
		table:       table,
		params:      params,
	}, nil
}

func newParameter(table *TranslationTable, in *InputSpec) Parameter {
	caller, _ := table.CallerName(in.Name)
	return Parameter{
		Name:     caller,
		Type:     ResolveParamType(in.Type),
		Required: !in.HasDefault(),
		Default:  in.Default,
	}
}

// Name returns the component's resolved effective name.
func (f *TaskFactory) Name() string { return f.name }

// Description returns the component's declared description.
func (f *TaskFactory) Description() string { return f.description }

// Filename returns the originating file, when one was given.
func (f *TaskFactory) Filename() string { return f.filename }

// Reference returns the component reference tasks are bound to.
func (f *TaskFactory) Reference() *Reference { return f.ref }

// Table returns the identifier translation table.
func (f *TaskFactory) Table() *TranslationTable { return f.table }

// Parameters returns a copy of the synthesized caller-facing parameter list.
func (f *TaskFactory) Parameters() []Parameter {
	params := make([]Parameter, len(f.params))
	copy(params, f.params)
	return params
}

// Signature renders the factory signature for diagnostics and docs.
func (f *TaskFactory) Signature() string {
	var b strings.Builder
	b.WriteString(core.SanitizeIdentifier(f.name))
	b.WriteByte('(')
	for i, p := range f.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if !p.Type.IsUnconstrained() {
			b.WriteString(": ")
			b.WriteString(p.Type.Name)
		}
		if !p.Required {
			fmt.Fprintf(&b, " = %v", p.Default)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// NewTask constructs one task node from caller-identifier-keyed arguments.
// Absent (omitted or nil) values yield no bound entry; declared defaults are
// advisory and applied downstream, never injected here. The constructed spec
// is passed through the active transformation hook before being returned.
func (f *TaskFactory) NewTask(ctx context.Context, args task.Arguments) (*task.Spec, error) {
	for caller := range args {
		if _, ok := f.table.PortName(caller); !ok {
			return nil, fmt.Errorf("%w %q for component %q", ErrUnknownArgument, caller, f.name)
		}
	}
	for _, p := range f.params {
		if p.Required {
			if v, ok := args[p.Name]; !ok || v == nil {
				return nil, fmt.Errorf("%w %q for component %q", ErrMissingArgument, p.Name, f.name)
			}
		}
	}

	bound := f.bindArguments(args)
	spec := task.NewSpec(f.ref, bound)
	logger.FromContext(ctx).Debug("constructed task",
		"component", f.name, "arguments", len(bound))
	recordTaskConstructed(ctx, f.name)
	return task.ApplyTransformer(spec)
}

// bindArguments translates caller identifiers back to original port names,
// dropping absent values and coercing unsupported value kinds to strings.
func (f *TaskFactory) bindArguments(args task.Arguments) task.Arguments {
	bound := make(task.Arguments, len(args))
	for _, p := range f.params {
		v, ok := args[p.Name]
		if !ok || v == nil {
			continue
		}
		port, _ := f.table.PortName(p.Name)
		bound[port] = task.NormalizeValue(v)
	}
	return bound
}
