package harness

// TraceEvent describes the application after one flow step.
type TraceEvent struct {
	Seq     int64    `json:"seq"`               // Navigator sequence after the step
	Input   string   `json:"input"`             // "type alice" or "press tab enter"
	Outcome string   `json:"outcome"`           // Kind of the last applied Outcome
	Screen  string   `json:"screen"`            // Active screen name
	Depth   int      `json:"depth"`             // Stack depth
	Session string   `json:"session,omitempty"` // Signed-in username
	Errors  []string `json:"errors,omitempty"`  // Fields showing inline errors, in form order
	Banner  string   `json:"banner,omitempty"`
	Notice  string   `json:"notice,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// Trace has one event per flow step.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a step to the trace.
func (r *Result) AddTrace(ev TraceEvent) {
	r.Trace = append(r.Trace, ev)
}
