package pipeline

import "github.com/pipewright/pipewright/engine/task"

// GroupType is the scope kind of an ops group.
type GroupType string

const (
	// GroupPlain is sequential grouping with no special semantics.
	GroupPlain GroupType = ""
	// GroupExitHandler designates one cleanup task that runs regardless of
	// sibling outcomes.
	GroupExitHandler GroupType = "exit_handler"
	// GroupBranch includes its members conditionally.
	GroupBranch GroupType = "branch"
	// GroupLoop repeats its members over an iterable input.
	GroupLoop GroupType = "loop"
)

// OpsGroup is a scoped container in the pipeline graph. Tasks appear in
// construction order, child groups in the order their scopes were closed.
// The group persists after its scope exits as part of the accumulated graph.
type OpsGroup struct {
	Type   GroupType
	Name   string
	Tasks  []*task.Spec
	Groups []*OpsGroup

	// ExitTask is the designated cleanup task of an exit_handler group.
	ExitTask *task.Spec
	// Condition is the branch group's inclusion condition; empty means
	// unconditional.
	Condition string
	// Items is the loop group's iterable input.
	Items any
}
