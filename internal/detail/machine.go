package detail

import "github.com/alexanderramin/utsav/internal/domain"

// Machine holds the current State for callers that route user input
// without first checking whether something is open. Operations that need
// an open festival are no-ops while Closed.
type Machine struct {
	state State
}

func NewMachine() *Machine {
	return &Machine{state: Closed{}}
}

func (m *Machine) State() State {
	if m.state == nil {
		return Closed{}
	}
	return m.state
}

// Current returns the open festival state, if any.
func (m *Machine) Current() (Open, bool) {
	o, ok := m.state.(Open)
	return o, ok
}

// Select opens f. Whatever was open before is closed first, so its
// checklist and recipe never carry over. A nil festival closes.
func (m *Machine) Select(f *domain.Festival) {
	m.Close()
	if f != nil {
		m.state = OpenFestival(f)
	}
}

// Close returns to Closed, dropping any open recipe with it.
func (m *Machine) Close() {
	m.state = Closed{}
}

func (m *Machine) SetTab(t domain.Tab) {
	m.update(func(o Open) Open { return o.WithTab(t) })
}

func (m *Machine) ToggleItem(category, item string) {
	m.update(func(o Open) Open { return o.ToggleItem(category, item) })
}

func (m *Machine) ClearChecked() {
	m.update(Open.ClearChecked)
}

func (m *Machine) OpenRecipe(id string) {
	m.update(func(o Open) Open { return o.OpenRecipe(id) })
}

func (m *Machine) CloseRecipe() {
	m.update(Open.CloseRecipe)
}

func (m *Machine) update(fn func(Open) Open) {
	if o, ok := m.state.(Open); ok {
		m.state = fn(o)
	}
}
