package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinations(t *testing.T) {
	ds := Destinations()
	require.Len(t, ds, 3)
	assert.Equal(t, Destination{Title: "Dashboard", Path: "/", Icon: "⌂"}, ds[0])
	assert.Equal(t, "/courses", ds[1].Path)
	assert.Equal(t, "/settings", ds[2].Path)
}

func TestIsActive_ExactMatchOnly(t *testing.T) {
	assert.True(t, IsActive("/courses", "/courses"))
	assert.False(t, IsActive("/courses/1", "/courses"))
	assert.False(t, IsActive("/courses", "/"))
	assert.False(t, IsActive("/", "/courses"))
}

func TestSidebar_CoursesActive(t *testing.T) {
	s := NewSidebar()
	require.NoError(t, s.Navigate("/courses"))

	var active []string
	for _, it := range s.Items() {
		if it.Active {
			active = append(active, it.Title)
		}
	}
	assert.Equal(t, []string{"Courses"}, active)
}

func TestSidebar_ExactlyOneActiveEverywhere(t *testing.T) {
	s := NewSidebar()
	for _, d := range Destinations() {
		require.NoError(t, s.Navigate(d.Path))
		count := 0
		for _, it := range s.Items() {
			if it.Active {
				count++
				assert.Equal(t, d.Path, it.Path)
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestSidebar_NavigateUnknown(t *testing.T) {
	s := NewSidebar()
	err := s.Navigate("/reports")
	assert.True(t, errors.Is(err, ErrUnknownRoute))
	assert.Equal(t, "/", s.Current())
}

func TestSidebar_NextPrevWrap(t *testing.T) {
	s := NewSidebar()
	s.Next()
	assert.Equal(t, "/courses", s.Current())
	s.Next()
	s.Next()
	assert.Equal(t, "/", s.Current())
	s.Prev()
	assert.Equal(t, "/settings", s.Current())
}

func TestSidebar_CollapseKeepsActive(t *testing.T) {
	s := NewSidebar()
	require.NoError(t, s.Navigate("/settings"))
	assert.Equal(t, ExpandedWidth, s.Width())

	s.ToggleCollapsed()
	assert.True(t, s.Collapsed())
	assert.Equal(t, CollapsedWidth, s.Width())
	assert.True(t, s.Items()[2].Active)
}
