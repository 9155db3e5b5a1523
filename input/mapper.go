package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ironrift/parameter"
)

// LookStep is the mouse delta produced by one arrow key event
const LookStep = 4.0

// Mapper turns terminal events into semantic frames
// Terminals report key repeats but not releases, so a key counts as held for
// parameter.InputHoldWindow after its last event
type Mapper struct {
	mu     sync.Mutex
	table  *KeyTable
	now    func() time.Time
	held   map[Action]time.Time
	mouse  mgl64.Vec2
	lastX  int
	lastY  int
	tracks bool // lastX/lastY valid
	button bool
	quit   bool
}

// NewMapper creates a mapper; nil table uses the defaults, nil clock uses time.Now
func NewMapper(table *KeyTable, now func() time.Time) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	if now == nil {
		now = time.Now
	}
	return &Mapper{
		table: table,
		now:   now,
		held:  make(map[Action]time.Time),
	}
}

// HandleEvent records a terminal event; safe to call from the polling goroutine
func (m *Mapper) HandleEvent(ev tcell.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch e := ev.(type) {
	case *tcell.EventKey:
		m.handleKey(e)
	case *tcell.EventMouse:
		x, y := e.Position()
		if m.tracks {
			m.mouse = m.mouse.Add(mgl64.Vec2{float64(x - m.lastX), float64(y - m.lastY)})
		}
		m.lastX, m.lastY, m.tracks = x, y, true
		m.button = e.Buttons()&tcell.Button1 != 0
	}
}

func (m *Mapper) handleKey(e *tcell.EventKey) {
	action := m.table.Lookup(e)
	switch action {
	case ActionNone:
	case ActionQuit:
		m.quit = true
	case ActionLookLeft:
		m.mouse[0] -= LookStep
	case ActionLookRight:
		m.mouse[0] += LookStep
	case ActionLookUp:
		m.mouse[1] -= LookStep
	case ActionLookDown:
		m.mouse[1] += LookStep
	default:
		m.held[action] = m.now()
	}
}

// Poll builds the frame for the next tick and consumes the accumulated mouse delta
func (m *Mapper) Poll() Frame {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	f := Frame{
		MouseDelta:  m.mouse,
		Quit:        m.quit,
		FirePressed: m.button || m.isHeld(ActionFire, now),
	}
	for action, bit := range actionKeys {
		if m.isHeld(action, now) {
			f.Keys |= bit
		}
	}
	m.mouse = mgl64.Vec2{}
	return f
}

func (m *Mapper) isHeld(action Action, now time.Time) bool {
	at, ok := m.held[action]
	if !ok {
		return false
	}
	if now.Sub(at) > parameter.InputHoldWindow {
		delete(m.held, action)
		return false
	}
	return true
}
