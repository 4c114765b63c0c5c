// Package nav describes the application's fixed destinations and the
// sidebar that lists them.
package nav

import (
	"errors"
	"fmt"
)

// Route paths.
const (
	PathDashboard = "/"
	PathCourses   = "/courses"
	PathSettings  = "/settings"
)

// ErrUnknownRoute is returned when navigating to a path no destination has.
var ErrUnknownRoute = errors.New("unknown route")

// Destination is one entry of the navigation list.
type Destination struct {
	Title string
	Path  string
	Icon  string
}

var destinations = []Destination{
	{Title: "Dashboard", Path: PathDashboard, Icon: "⌂"},
	{Title: "Courses", Path: PathCourses, Icon: "▤"},
	{Title: "Settings", Path: PathSettings, Icon: "⚙"},
}

// Destinations returns the navigation entries in display order.
func Destinations() []Destination {
	out := make([]Destination, len(destinations))
	copy(out, destinations)
	return out
}

// IsActive reports whether a destination is the current one. Matching is
// exact: "/courses/1" does not activate "/courses".
func IsActive(currentPath, destinationPath string) bool {
	return currentPath == destinationPath
}

// Lookup returns the destination with the given path.
func Lookup(path string) (Destination, error) {
	for _, d := range destinations {
		if d.Path == path {
			return d, nil
		}
	}
	return Destination{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
}
