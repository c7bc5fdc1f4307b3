package keys

// Mode names one of the editor's input modes.
type Mode int

const (
	NORMAL Mode = iota
	META
	ISEARCH
)

// Action is a named step run in response to a key press; Dispatcher
// doesn't know what an action does, only how to find and run one.
type Action struct {
	Name string
	Run  func()
}

// Dispatcher maps (mode, KeyPress) to a list of actions. Each mode has
// a keyed table plus an optional "fallback" list run when no table
// entry matches; an "after" list, if set, runs once per key press
// regardless of which table matched.
type Dispatcher struct {
	tables   map[Mode]map[int][]Action
	fallback map[Mode][]Action
	after    map[Mode][]Action
	mode     Mode
}

// NewDispatcher returns a Dispatcher starting in NORMAL mode.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		tables:   make(map[Mode]map[int][]Action),
		fallback: make(map[Mode][]Action),
		after:    make(map[Mode][]Action),
		mode:     NORMAL,
	}
}

// Mode returns the dispatcher's current mode.
func (d *Dispatcher) Mode() Mode { return d.mode }

// SetMode switches modes without dispatching a key.
func (d *Dispatcher) SetMode(m Mode) { d.mode = m }

// Bind registers actions to run in mode m when kp is pressed.
func (d *Dispatcher) Bind(m Mode, kp KeyPress, actions ...Action) {
	table, ok := d.tables[m]
	if !ok {
		table = make(map[int][]Action)
		d.tables[m] = table
	}
	table[kp.Index()] = append(table[kp.Index()], actions...)
}

// BindFallback registers actions to run in mode m when no bound key
// matches.
func (d *Dispatcher) BindFallback(m Mode, actions ...Action) {
	d.fallback[m] = append(d.fallback[m], actions...)
}

// BindAfter registers actions that run once per key press handled in
// mode m, after the matched table or fallback actions.
func (d *Dispatcher) BindAfter(m Mode, actions ...Action) {
	d.after[m] = append(d.after[m], actions...)
}

// Dispatch runs the actions bound to kp in the current mode — the
// matching table entry if any, else the mode's fallback — then the
// mode's after list, and reports whether any table entry matched.
func (d *Dispatcher) Dispatch(kp KeyPress) bool {
	mode := d.mode
	matched := false
	if table, ok := d.tables[mode]; ok {
		if actions, ok := table[kp.Index()]; ok {
			runAll(actions)
			matched = true
		}
	}
	if !matched {
		runAll(d.fallback[mode])
	}
	runAll(d.after[mode])
	return matched
}

func runAll(actions []Action) {
	for _, a := range actions {
		if a.Run != nil {
			a.Run()
		}
	}
}
