package session

// State is the lifecycle of one calculation slot.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateOk
	StateErr
)

// String returns the wire name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateOk:
		return "ok"
	case StateErr:
		return "error"
	default:
		return "unknown"
	}
}

// Slot tracks one calculation as a tagged union: exactly one of result or
// error message is meaningful, selected by the state.
type Slot[T any] struct {
	state   State
	result  *T
	message string
}

func (s *Slot[T]) setLoading() {
	s.state = StateLoading
	s.result = nil
	s.message = ""
}

func (s *Slot[T]) setOk(v T) {
	s.state = StateOk
	s.result = &v
	s.message = ""
}

func (s *Slot[T]) setErr(message string) {
	s.state = StateErr
	s.result = nil
	s.message = message
}

// State returns the slot's current state.
func (s *Slot[T]) State() State {
	return s.state
}

// Result returns the value and true when the slot is Ok.
func (s *Slot[T]) Result() (T, bool) {
	if s.state != StateOk || s.result == nil {
		var zero T
		return zero, false
	}
	return *s.result, true
}

// ErrMessage returns the user-facing error when the slot is Err.
func (s *Slot[T]) ErrMessage() string {
	if s.state != StateErr {
		return ""
	}
	return s.message
}

// SlotView is the serializable snapshot of a slot.
type SlotView[T any] struct {
	Status string `json:"status" example:"ok"`
	Result *T     `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (s *Slot[T]) view() SlotView[T] {
	view := SlotView[T]{Status: s.state.String()}
	switch s.state {
	case StateOk:
		if s.result != nil {
			value := *s.result
			view.Result = &value
		}
	case StateErr:
		view.Error = s.message
	}
	return view
}
