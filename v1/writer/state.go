package writer

// State tracks the phase a run is in. Transitions are strictly forward;
// Failed is terminal and reachable from every state.
type State string

const (
	StateIdle        State = "idle"
	StateLoading     State = "loading"
	StateValidating  State = "validating"
	StateWriting     State = "writing"
	StateSummarizing State = "summarizing"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// transition moves the runner to the next state and logs the edge.
func (r *Runner) transition(next State) {
	r.log.Info("run state", nil, map[string]any{
		"from": string(r.state),
		"to":   string(next),
	})
	r.state = next
}
