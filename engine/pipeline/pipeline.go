package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/pipewright/pipewright/engine/core"
	"github.com/pipewright/pipewright/engine/task"
	"github.com/pipewright/pipewright/pkg/logger"
)

var (
	// ErrNilExitTask is returned when an exit-handler scope is entered without
	// a designated cleanup task.
	ErrNilExitTask = errors.New("exit handler requires a cleanup task")
	// ErrExitTaskDependencies is returned when the designated cleanup task
	// depends on tasks that exist outside the exit-handler scope. The cleanup
	// task's scheduling must stay independent of the pipeline's ordinary
	// execution order.
	ErrExitTaskDependencies = errors.New("exit task must not depend on prior tasks")
)

// Pipeline is the top-level graph-construction context. It holds the root
// sequence of groups and tasks plus the stack of currently open group scopes.
// A single construction session per process is a hard precondition; sharing
// the transformation hook between concurrent sessions corrupts graph
// membership.
type Pipeline struct {
	Name string
	ID   core.ID

	root  *OpsGroup
	stack []*OpsGroup
	ops   map[string]*task.Spec
	cond  *CondEvaluator
}

// Build runs body inside an active pipeline context. For the duration of the
// body every task constructed by any factory is registered into the current
// group scope, in construction order. The previous transformation hook is
// restored on exit, including error and panic exits, so nested contexts stay
// correct.
func Build(ctx context.Context, name string, body func(p *Pipeline) error) (*Pipeline, error) {
	id, err := core.NewID()
	if err != nil {
		return nil, err
	}
	p := &Pipeline{
		Name: name,
		ID:   id,
		root: &OpsGroup{Type: GroupPlain, Name: name},
		ops:  make(map[string]*task.Spec),
	}
	p.stack = []*OpsGroup{p.root}

	restore := task.PushTransformer(func(s *task.Spec) (*task.Spec, error) {
		return p.registerTask(s)
	})
	defer restore()

	log := logger.FromContext(ctx)
	log.Debug("pipeline build started", "pipeline", name, "session", p.ID)
	if err := body(p); err != nil {
		return nil, err
	}
	log.Debug("pipeline build finished",
		"pipeline", name, "session", p.ID, "tasks", len(p.ops))
	return p, nil
}

// Current returns the innermost open group: the top of the stack, or the root
// when no scoped group is open.
func (p *Pipeline) Current() *OpsGroup {
	return p.stack[len(p.stack)-1]
}

// Groups returns the root's child groups for downstream compilation.
func (p *Pipeline) Groups() []*OpsGroup {
	return p.root.Groups
}

// Root returns the pipeline's root group.
func (p *Pipeline) Root() *OpsGroup {
	return p.root
}

// Ops returns every registered task keyed by its assigned unique name.
func (p *Pipeline) Ops() map[string]*task.Spec {
	return p.ops
}

// registerTask is the pipeline's transformation hook. It assigns the task a
// node name unique within the pipeline and appends it to the current group.
func (p *Pipeline) registerTask(s *task.Spec) (*task.Spec, error) {
	base := s.Name
	if base == "" {
		base = s.ComponentRef().ComponentName()
	}
	name := core.MakeNameUnique(core.SanitizeResourceName(base), func(n string) bool {
		_, taken := p.ops[n]
		return taken
	}, "-")
	s.Name = name
	p.ops[name] = s
	cur := p.Current()
	cur.Tasks = append(cur.Tasks, s)
	return s, nil
}

// Group opens a scoped group of the given type around body. The group is
// appended to its parent's child sequence when the scope closes, including
// error and panic exits.
func (p *Pipeline) Group(typ GroupType, body func() error) error {
	return p.enterGroup(&OpsGroup{Type: typ}, body)
}

// Branch opens a conditional group. The condition is compiled at scope entry
// so a malformed expression fails during authoring, not at graph-compile
// time. An empty condition makes the group unconditional.
func (p *Pipeline) Branch(condition string, body func() error) error {
	if condition != "" {
		ev, err := p.evaluator()
		if err != nil {
			return err
		}
		if err := ev.Compile(condition); err != nil {
			return fmt.Errorf("invalid branch condition: %w", err)
		}
	}
	return p.enterGroup(&OpsGroup{Type: GroupBranch, Condition: condition}, body)
}

// Loop opens a group repeated over items.
func (p *Pipeline) Loop(items any, body func() error) error {
	return p.enterGroup(&OpsGroup{Type: GroupLoop, Items: items}, body)
}

// ExitHandler opens a cleanup scope with the designated exit task. The exit
// task must not have been declared to run after any task that exists outside
// the scope; that is checked before the scope is considered open.
func (p *Pipeline) ExitHandler(exitTask *task.Spec, body func() error) error {
	if exitTask == nil {
		return ErrNilExitTask
	}
	if deps := exitTask.Dependencies(); len(deps) > 0 {
		return fmt.Errorf("%w: %q depends on %v",
			ErrExitTaskDependencies, exitTask.Name, exitTask.DependentNames())
	}
	return p.enterGroup(&OpsGroup{Type: GroupExitHandler, ExitTask: exitTask}, body)
}

// enterGroup pushes g, runs body and pops g into its parent's child sequence.
// The pop is deferred so the stack stays balanced when body fails or panics.
func (p *Pipeline) enterGroup(g *OpsGroup, body func() error) error {
	parent := p.Current()
	p.stack = append(p.stack, g)
	defer func() {
		p.stack = p.stack[:len(p.stack)-1]
		parent.Groups = append(parent.Groups, g)
	}()
	return body()
}

func (p *Pipeline) evaluator() (*CondEvaluator, error) {
	if p.cond == nil {
		ev, err := NewCondEvaluator()
		if err != nil {
			return nil, err
		}
		p.cond = ev
	}
	return p.cond, nil
}
