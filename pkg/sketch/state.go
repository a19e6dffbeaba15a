package sketch

// Action is the effect of a key press on the sketch state.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionToggleOverlay
	ActionToggleLabels
)

func (a Action) String() string {
	switch a {
	case ActionReset:
		return "reset"
	case ActionToggleOverlay:
		return "toggle-overlay"
	case ActionToggleLabels:
		return "toggle-labels"
	default:
		return "none"
	}
}

// State is the mutable state of one sketch session. Input handlers and the
// render pass receive it by reference; nothing else holds it.
type State struct {
	Store        *Store
	TestOverlay  bool
	LabelsHidden bool
}

// NewState returns an empty session whose labels go to labels (may be nil).
func NewState(labels LabelBackend) *State {
	return &State{Store: NewStore(labels)}
}

// Click handles a pointer click at raw device coordinates.
func (st *State) Click(raw Point, origin Origin, threshold float64) Edit {
	return st.Store.AddOrRemove(origin.Local(raw), threshold)
}

// HandleKey applies the action bound to r and returns it. Unbound keys
// return ActionNone and change nothing.
func (st *State) HandleKey(r rune) Action {
	switch r {
	case 'r':
		st.Reset()
		return ActionReset
	case 't':
		st.ToggleOverlay()
		return ActionToggleOverlay
	case 'h':
		st.ToggleLabels()
		return ActionToggleLabels
	}
	return ActionNone
}

// Reset removes all points and turns the test overlay off. Label
// visibility is kept.
func (st *State) Reset() {
	st.Store.Reset()
	st.TestOverlay = false
}

// ToggleOverlay flips the test overlay.
func (st *State) ToggleOverlay() {
	st.TestOverlay = !st.TestOverlay
}

// ToggleLabels flips label visibility and pushes it to every label.
func (st *State) ToggleLabels() {
	st.LabelsHidden = !st.LabelsHidden
	st.Store.SetLabelsVisible(!st.LabelsHidden)
}

// Clone returns a copy of st whose labels go to labels. The copy's store
// assigns its own point IDs.
func (st *State) Clone(labels LabelBackend) *State {
	c := &State{
		Store:        NewStore(labels),
		TestOverlay:  st.TestOverlay,
		LabelsHidden: st.LabelsHidden,
	}
	c.Store.SetLabelsVisible(!st.LabelsHidden)
	for _, p := range st.Store.Positions() {
		c.Store.Add(p)
	}
	return c
}
