package task

// Transformer is invoked on every constructed task spec before the factory
// returns it. A pipeline-building context installs itself here to observe and
// collect tasks while construction is in progress.
type Transformer func(*Spec) (*Spec, error)

// transformers holds every registered hook for the process lifetime. Only the
// last entry is active. Not safe for concurrent use: a single construction
// session per process is a hard precondition.
var transformers []Transformer

// RegisterTransformer appends a hook for the remainder of the process
// lifetime. The newly registered hook becomes the active one.
func RegisterTransformer(t Transformer) {
	transformers = append(transformers, t)
}

// PushTransformer appends a hook and returns a restore function that
// reactivates the previously active hook. Pipeline contexts push on entry and
// restore on exit, which keeps nested contexts correct.
func PushTransformer(t Transformer) (restore func()) {
	depth := len(transformers)
	transformers = append(transformers, t)
	return func() {
		transformers = transformers[:depth]
	}
}

// ApplyTransformer runs the active hook on s, or returns s unchanged when no
// hook is registered.
func ApplyTransformer(s *Spec) (*Spec, error) {
	if len(transformers) == 0 {
		return s, nil
	}
	return transformers[len(transformers)-1](s)
}
