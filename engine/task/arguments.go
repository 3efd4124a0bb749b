package task

import (
	"fmt"

	"github.com/pipewright/pipewright/engine/core"
)

// Arguments maps original component port names to bound argument values.
type Arguments map[string]any

// AsMap returns the underlying map, allocating an empty one for nil receivers.
func (a Arguments) AsMap() map[string]any {
	if a == nil {
		return map[string]any{}
	}
	return a
}

// DeepCopy returns a detached copy of the arguments.
func (a Arguments) DeepCopy() (Arguments, error) {
	if a == nil {
		return nil, nil
	}
	copied, err := core.DeepCopy(map[string]any(a))
	if err != nil {
		return nil, fmt.Errorf("failed to copy arguments: %w", err)
	}
	return Arguments(copied), nil
}

// TaskOutputArgument references the named output of another task in the graph.
type TaskOutputArgument struct {
	TaskID     string `json:"task_id"     yaml:"task_id"`
	OutputName string `json:"output_name" yaml:"output_name"`
}

// NewTaskOutputArgument builds a reference to the named output of a task.
func NewTaskOutputArgument(taskID, outputName string) *TaskOutputArgument {
	return &TaskOutputArgument{TaskID: taskID, OutputName: outputName}
}

// GraphInputArgument references a pipeline-level input by name.
type GraphInputArgument struct {
	InputName string `json:"input_name" yaml:"input_name"`
}

// NewGraphInputArgument builds a reference to a pipeline-level input.
func NewGraphInputArgument(inputName string) *GraphInputArgument {
	return &GraphInputArgument{InputName: inputName}
}

// NormalizeValue applies the argument value policy: literal kinds (strings,
// integers, floats, booleans) and graph-reference kinds pass through
// unchanged, nil stays nil (absent), and everything else is coerced to its
// string representation.
func NormalizeValue(v any) any {
	switch v.(type) {
	case nil:
		return nil
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	case TaskOutputArgument, *TaskOutputArgument,
		GraphInputArgument, *GraphInputArgument:
		return v
	default:
		return fmt.Sprint(v)
	}
}
