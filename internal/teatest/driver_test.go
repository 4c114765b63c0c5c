package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type echoMsg string

// recorder collects every key and echo message it receives.
type recorder struct {
	seen []string
	size tea.WindowSizeMsg
}

func (r recorder) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (r recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.size = msg
	case echoMsg:
		r.seen = append(r.seen, string(msg))
	case tea.KeyMsg:
		r.seen = append(r.seen, msg.String())
		switch msg.String() {
		case "q":
			return r, tea.Quit
		case "t":
			return r, tea.Tick(time.Second, func(time.Time) tea.Msg { return echoMsg("tick") })
		case "b":
			return r, tea.Batch(
				func() tea.Msg { return echoMsg("one") },
				func() tea.Msg { return echoMsg("two") },
			)
		}
	}
	return r, nil
}

func (r recorder) View() string { return "\x1b[1mseen\x1b[0m" }

func TestDriver_DrainsInitAndBatches(t *testing.T) {
	d := New(t, recorder{}, WithSize(80, 24))
	d.DrainInit()

	d.PressKey('b')
	d.PressTab()
	d.PressLeft()

	r := d.Model.(recorder)
	assert.Equal(t, 80, r.size.Width)
	assert.Equal(t, []string{"init", "b", "one", "two", "tab", "left"}, r.seen)
}

func TestDriver_QuitStopsInput(t *testing.T) {
	d := New(t, recorder{})

	d.PressKey('q')
	d.PressKey('x')

	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"q"}, d.Model.(recorder).seen)
}

func TestDriver_PlainView(t *testing.T) {
	d := New(t, recorder{})
	assert.Equal(t, "seen", d.PlainView())
}

func TestDriver_SlowCommandIsAbandoned(t *testing.T) {
	d := New(t, recorder{})

	d.PressKey('t')
	d.PressKey('b')

	assert.Equal(t, []string{"t", "b", "one", "two"}, d.Model.(recorder).seen)
}
