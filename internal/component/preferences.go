package component

// TimeFormat selects how clock times are displayed.
type TimeFormat string

const (
	TimeFormat12h TimeFormat = "12-hour format (AM/PM)"
	TimeFormat24h TimeFormat = "24-hour format"
)

// Preferences holds the display preferences listed on the settings page.
// Like the rest of the page they live only as long as the page does.
type Preferences struct {
	TimeFormat     TimeFormat
	WeekStart      string
	ClassReminders bool
}

// DefaultPreferences returns the first option of every preference.
func DefaultPreferences() Preferences {
	return Preferences{TimeFormat: TimeFormat12h, WeekStart: "Monday"}
}

// CycleTimeFormat switches between the 12- and 24-hour formats.
func (p *Preferences) CycleTimeFormat() {
	if p.TimeFormat == TimeFormat12h {
		p.TimeFormat = TimeFormat24h
		return
	}
	p.TimeFormat = TimeFormat12h
}

// CycleWeekStart switches the first day of the week between Monday and Sunday.
func (p *Preferences) CycleWeekStart() {
	if p.WeekStart == "Monday" {
		p.WeekStart = "Sunday"
		return
	}
	p.WeekStart = "Monday"
}

// ToggleReminders flips the class reminder checkbox.
func (p *Preferences) ToggleReminders() {
	p.ClassReminders = !p.ClassReminders
}
