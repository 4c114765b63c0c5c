// Package teatest runs bubbletea models in tests without a tea.Program.
//
// A Driver feeds messages straight into Update and resolves the returned
// commands in place, depth first, so a test observes the model exactly as
// it stands once every follow-up message has been handled.
//
// Commands that wait on a timer (cursor blink, tea.Tick) are abandoned
// after cmdTimeout. Their messages never arrive, so state a timer would
// clear stays put until the test sends the message itself.
package teatest

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many follow-up commands one message may chain.
const MaxDrainDepth = 100

const cmdTimeout = 10 * time.Millisecond

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// Driver holds the model under test.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg is resolved. Later input is
	// dropped, as a stopped program would.
	Quitting bool
}

// Option configures a Driver in New.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else. Its command is
// discarded.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Init is not run until DrainInit.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.resolve(d.Model.Init(), 0)
}

// Send delivers msg and resolves the resulting commands.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.resolve(cmd, 0)
}

func (d *Driver) press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// PressKey sends a single printable character.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter()     { d.press(tea.KeyEnter) }
func (d *Driver) PressEsc()       { d.press(tea.KeyEsc) }
func (d *Driver) PressCtrlC()     { d.press(tea.KeyCtrlC) }
func (d *Driver) PressTab()       { d.press(tea.KeyTab) }
func (d *Driver) PressShiftTab()  { d.press(tea.KeyShiftTab) }
func (d *Driver) PressBackspace() { d.press(tea.KeyBackspace) }
func (d *Driver) PressLeft()      { d.press(tea.KeyLeft) }
func (d *Driver) PressRight()     { d.press(tea.KeyRight) }
func (d *Driver) PressUp()        { d.press(tea.KeyUp) }
func (d *Driver) PressDown()      { d.press(tea.KeyDown) }

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// PlainView returns View without ANSI styling, so substring checks are not
// split by escape codes.
func (d *Driver) PlainView() string {
	return ansiPattern.ReplaceAllString(d.Model.View(), "")
}

// resolve runs cmd and hands its message back to the model. Batches fan
// out in order; a QuitMsg marks the driver as stopped.
func (d *Driver) resolve(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: gave up after %d chained commands", MaxDrainDepth)
		return
	}

	msg, ok := run(cmd)
	if !ok || msg == nil || isBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.resolve(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.resolve(next, depth+1)
	}
}

// run calls cmd, reporting false when it has not returned within
// cmdTimeout.
func run(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	timer := time.NewTimer(cmdTimeout)
	defer timer.Stop()
	select {
	case msg := <-done:
		return msg, true
	case <-timer.C:
		return nil, false
	}
}

// isBlink reports cursor blink messages. The bubbles cursor types are
// unexported, so they are matched by name.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
