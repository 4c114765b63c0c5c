package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/timetable/internal/cli/formatter"
	"github.com/alexanderramin/timetable/internal/component"
	"github.com/alexanderramin/timetable/internal/domain"
)

const (
	settingsTitle   = "Settings"
	settingsTagline = "Customize your timetable preferences"

	constraintsHeading     = "Schedule Constraints"
	constraintsDescription = "Set your availability and scheduling preferences"
	backToBackLabel        = "Avoid back-to-back classes"

	// pickerRows is how many slot options are listed at once.
	pickerRows = 8
)

type settingsKeyMap struct {
	Search     key.Binding
	PrevTag    key.Binding
	NextTag    key.Binding
	RemoveTag  key.Binding
	BackToBack key.Binding
	Save       key.Binding
	TimeFormat key.Binding
	WeekStart  key.Binding
	Reminders  key.Binding

	// picker
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Close  key.Binding
}

var settingsKeys = settingsKeyMap{
	Search:     key.NewBinding(key.WithKeys("/", "o"), key.WithHelp("/", "pick slots")),
	PrevTag:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "tag")),
	NextTag:    key.NewBinding(key.WithKeys("right", "l")),
	RemoveTag:  key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "remove tag")),
	BackToBack: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back-to-back")),
	Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	TimeFormat: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "time format")),
	WeekStart:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week start")),
	Reminders:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reminders")),

	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "move")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n")),
	Toggle: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

// settingsView hosts the constraints section and the display preferences.
type settingsView struct {
	state   *SharedState
	section *component.ConstraintsSection
	prefs   component.Preferences

	search textinput.Model
	cursor int // highlighted picker option
	tag    int // focused selected-slot tag, -1 for none
}

func newSettingsView(state *SharedState) *settingsView {
	ti := textinput.New()
	ti.Placeholder = "Search time slots..."
	ti.Prompt = "/ "
	ti.CharLimit = 40

	return &settingsView{
		state:   state,
		section: component.NewConstraintsSection(state.componentOptions()...),
		prefs:   component.DefaultPreferences(),
		search:  ti,
		tag:     -1,
	}
}

func (v *settingsView) ID() ViewID          { return ViewSettings }
func (v *settingsView) Title() string       { return settingsTitle }
func (v *settingsView) CapturesInput() bool { return v.section.PickerOpen() }

func (v *settingsView) ShortHelp() []key.Binding {
	k := settingsKeys
	if v.section.PickerOpen() {
		return []key.Binding{k.Up, k.Toggle, k.Close}
	}
	return []key.Binding{k.Search, k.PrevTag, k.RemoveTag, k.BackToBack, k.Save}
}

func (v *settingsView) Init() tea.Cmd { return nil }

func (v *settingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.section.PickerOpen() {
			var cmd tea.Cmd
			v.search, cmd = v.search.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.section.PickerOpen() {
		return v.updatePicker(keyMsg)
	}

	k := settingsKeys
	switch {
	case key.Matches(keyMsg, k.Search):
		return v, v.openPicker()
	case key.Matches(keyMsg, k.PrevTag):
		v.moveTag(-1)
	case key.Matches(keyMsg, k.NextTag):
		v.moveTag(1)
	case key.Matches(keyMsg, k.RemoveTag):
		v.removeFocusedTag()
	case key.Matches(keyMsg, k.BackToBack):
		v.section.SetAvoidBackToBack(!v.section.AvoidBackToBack())
	case key.Matches(keyMsg, k.Save):
		_, _ = v.section.Submit()
	case key.Matches(keyMsg, k.TimeFormat):
		v.prefs.CycleTimeFormat()
	case key.Matches(keyMsg, k.WeekStart):
		v.prefs.CycleWeekStart()
	case key.Matches(keyMsg, k.Reminders):
		v.prefs.ToggleReminders()
	}
	return v, nil
}

func (v *settingsView) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := settingsKeys
	switch {
	case key.Matches(msg, k.Close):
		v.closePicker()
		return v, nil
	case key.Matches(msg, k.Up):
		v.moveCursor(-1)
		return v, nil
	case key.Matches(msg, k.Down):
		v.moveCursor(1)
		return v, nil
	case key.Matches(msg, k.Toggle):
		if opts := v.section.Options(); v.cursor < len(opts) {
			v.section.Toggle(opts[v.cursor].Value)
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if v.search.Value() != v.section.Query() {
		v.section.SetQuery(v.search.Value())
		v.cursor = 0
	}
	return v, cmd
}

func (v *settingsView) openPicker() tea.Cmd {
	v.section.OpenPicker()
	v.search.SetValue("")
	v.cursor = 0
	return v.search.Focus()
}

func (v *settingsView) closePicker() {
	v.section.ClosePicker()
	v.search.Blur()
	v.search.SetValue("")
	v.clampTag()
}

func (v *settingsView) moveCursor(delta int) {
	n := len(v.section.Options())
	if n == 0 {
		v.cursor = 0
		return
	}
	v.cursor = min(max(v.cursor+delta, 0), n-1)
}

func (v *settingsView) moveTag(delta int) {
	n := len(v.section.SelectedSlots())
	if n == 0 {
		v.tag = -1
		return
	}
	if v.tag < 0 {
		v.tag = 0
		return
	}
	v.tag = min(max(v.tag+delta, 0), n-1)
}

func (v *settingsView) removeFocusedTag() {
	slots := v.section.SelectedSlots()
	if v.tag < 0 || v.tag >= len(slots) {
		return
	}
	v.section.RemoveTag(slots[v.tag].Value)
	v.clampTag()
}

func (v *settingsView) clampTag() {
	n := len(v.section.SelectedSlots())
	if n == 0 {
		v.tag = -1
		return
	}
	if v.tag >= n {
		v.tag = n - 1
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *settingsView) View() string {
	var b strings.Builder
	b.WriteString(formatter.PageHeading(settingsTitle, settingsTagline))
	b.WriteString("\n\n")
	b.WriteString(formatter.RenderBox(constraintsHeading, v.renderConstraints()))
	b.WriteString("\n\n")
	b.WriteString(formatter.RenderBox("Preferences", v.renderPreferences()))
	return b.String()
}

func (v *settingsView) renderConstraints() string {
	var b strings.Builder
	b.WriteString(formatter.Dim(constraintsDescription))
	b.WriteString("\n\n")
	b.WriteString(formatter.Bold("Unavailable Time Slots"))
	b.WriteString("\n")
	b.WriteString("▾ " + v.section.TriggerLabel())
	b.WriteString("\n")

	if v.section.PickerOpen() {
		b.WriteString(v.renderPicker())
		b.WriteString("\n")
	}

	if slots := v.section.SelectedSlots(); len(slots) > 0 {
		b.WriteString(formatter.FormatSlotTags(slots, v.tag))
		b.WriteString("\n")
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("Select up to %d time slots when you're not available", domain.MaxUnavailableSlots)))
	b.WriteString("\n")
	b.WriteString(formatter.RenderCapacity(len(v.section.SelectedSlots()), domain.MaxUnavailableSlots, 20))
	b.WriteString("\n\n")

	b.WriteString(checkbox(v.section.AvoidBackToBack()) + " " + backToBackLabel)
	b.WriteString("\n\n")
	b.WriteString(formatter.StyleHeader.Render("[ Save Constraints ]"))
	return b.String()
}

func (v *settingsView) renderPicker() string {
	var b strings.Builder
	b.WriteString(v.search.View())
	b.WriteString("\n")

	opts := v.section.Options()
	if len(opts) == 0 {
		b.WriteString(formatter.Dim("No time slots found."))
		return b.String()
	}

	// Keep the cursor inside a window of pickerRows options.
	start := 0
	if v.cursor >= pickerRows {
		start = v.cursor - pickerRows + 1
	}
	end := min(start+pickerRows, len(opts))
	for i := start; i < end; i++ {
		o := opts[i]
		mark := "  "
		if v.section.Selected(o.Value) {
			mark = formatter.StyleGreen.Render("✓ ")
		}
		line := mark + o.Label
		if i == v.cursor {
			line = formatter.StyleHeader.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *settingsView) renderPreferences() string {
	lines := []string{
		formatter.Dim("Time Format") + "  " + string(v.prefs.TimeFormat),
		formatter.Dim("Week Starts On") + "  " + v.prefs.WeekStart,
		checkbox(v.prefs.ClassReminders) + " Enable class reminders",
	}
	return strings.Join(lines, "\n")
}

func checkbox(on bool) string {
	if on {
		return formatter.StyleGreen.Render("[x]")
	}
	return "[ ]"
}
