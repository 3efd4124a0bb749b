package task

import (
	"fmt"
	"slices"
)

// ComponentRef identifies the component a task invokes. The concrete type
// lives in the component package; tasks only need the resolved name and the
// declared output ports.
type ComponentRef interface {
	ComponentName() string
	OutputNames() []string
}

// Spec is one bound invocation of a component within a pipeline graph.
// It is never mutated after construction except by the active transformation
// hook, which may wrap or replace it.
type Spec struct {
	// Name is assigned when the task is registered into a pipeline; it is
	// unique among the pipeline's tasks.
	Name string

	componentRef ComponentRef
	arguments    Arguments
	dependsOn    []*Spec
}

// NewSpec binds arguments to a component reference.
func NewSpec(ref ComponentRef, arguments Arguments) *Spec {
	return &Spec{componentRef: ref, arguments: arguments}
}

// ComponentRef returns the reference to the invoked component.
func (s *Spec) ComponentRef() ComponentRef {
	return s.componentRef
}

// Arguments returns the bound arguments keyed by original port name.
func (s *Spec) Arguments() Arguments {
	return s.arguments
}

// RunAfter declares that s must run after the given tasks.
func (s *Spec) RunAfter(deps ...*Spec) *Spec {
	s.dependsOn = append(s.dependsOn, deps...)
	return s
}

// Dependencies returns the tasks s was declared to run after.
func (s *Spec) Dependencies() []*Spec {
	return slices.Clone(s.dependsOn)
}

// DependentNames returns the registered names of the tasks s depends on.
// Unregistered dependencies appear as empty strings.
func (s *Spec) DependentNames() []string {
	names := make([]string, len(s.dependsOn))
	for i, dep := range s.dependsOn {
		names[i] = dep.Name
	}
	return names
}

// Output returns a graph reference to one of this task's declared outputs.
// When the component reference can resolve its spec, the output name is
// checked against the declared outputs.
func (s *Spec) Output(name string) (*TaskOutputArgument, error) {
	if outputs := s.componentRef.OutputNames(); outputs != nil {
		if !slices.Contains(outputs, name) {
			return nil, fmt.Errorf("component %q declares no output %q",
				s.componentRef.ComponentName(), name)
		}
	}
	return NewTaskOutputArgument(s.Name, name), nil
}
