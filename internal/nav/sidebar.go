package nav

// Sidebar widths in terminal cells.
const (
	ExpandedWidth  = 24
	CollapsedWidth = 5
)

// Item is a destination as rendered, with its active flag resolved.
type Item struct {
	Destination
	Active bool
}

// Sidebar tracks the current location and whether labels are hidden.
type Sidebar struct {
	current   string
	collapsed bool
}

// NewSidebar returns an expanded sidebar positioned at the dashboard.
func NewSidebar() *Sidebar {
	return &Sidebar{current: PathDashboard}
}

// Current returns the current location path.
func (s *Sidebar) Current() string { return s.current }

// Navigate moves to path. Unknown paths leave the location unchanged.
func (s *Sidebar) Navigate(path string) error {
	if _, err := Lookup(path); err != nil {
		return err
	}
	s.current = path
	return nil
}

// Next moves to the following destination, wrapping around.
func (s *Sidebar) Next() { s.step(1) }

// Prev moves to the preceding destination, wrapping around.
func (s *Sidebar) Prev() { s.step(-1) }

func (s *Sidebar) step(delta int) {
	n := len(destinations)
	idx := 0
	for i, d := range destinations {
		if IsActive(s.current, d.Path) {
			idx = i
			break
		}
	}
	s.current = destinations[((idx+delta)%n+n)%n].Path
}

// ToggleCollapsed switches between the labelled and icon-only layouts.
func (s *Sidebar) ToggleCollapsed() { s.collapsed = !s.collapsed }

// SetCollapsed sets the layout explicitly.
func (s *Sidebar) SetCollapsed(v bool) { s.collapsed = v }

// Collapsed reports whether labels are hidden.
func (s *Sidebar) Collapsed() bool { return s.collapsed }

// Width returns the sidebar width for the current layout.
func (s *Sidebar) Width() int {
	if s.collapsed {
		return CollapsedWidth
	}
	return ExpandedWidth
}

// Items returns every destination with its active flag.
func (s *Sidebar) Items() []Item {
	items := make([]Item, 0, len(destinations))
	for _, d := range destinations {
		items = append(items, Item{Destination: d, Active: IsActive(s.current, d.Path)})
	}
	return items
}
