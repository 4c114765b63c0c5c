package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCourse(t *testing.T) {
	c := DefaultCourse()
	assert.Equal(t, "", c.CourseName)
	assert.Equal(t, "", c.CourseCode)
	assert.Equal(t, "", c.TeacherName)
	assert.Equal(t, 1, c.WeeklyHours)
}

func TestCourseSummary(t *testing.T) {
	c := Course{CourseName: "Intro to CS", CourseCode: "CS-101", TeacherName: "Dr. Sarah Johnson", WeeklyHours: 3}
	assert.Equal(t, "CS-101 — Dr. Sarah Johnson (3 hrs/week)", c.Summary())
}

func TestCourseList_AppendKeepsInsertionOrderAndDuplicates(t *testing.T) {
	var l CourseList
	assert.True(t, l.Empty())

	a := Course{CourseName: "B course", CourseCode: "B1", TeacherName: "T", WeeklyHours: 2}
	b := Course{CourseName: "A course", CourseCode: "A1", TeacherName: "T", WeeklyHours: 3}

	first := l.Append(a)
	l.Append(b)
	l.Append(a)

	require.Equal(t, 3, l.Len())
	entries := l.Entries()
	assert.Equal(t, "B course", entries[0].CourseName)
	assert.Equal(t, "A course", entries[1].CourseName)
	assert.Equal(t, "B course", entries[2].CourseName)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[2].ID)
}

func TestCourseList_EntriesIsACopy(t *testing.T) {
	var l CourseList
	l.Append(Course{CourseName: "X", CourseCode: "X1", TeacherName: "T", WeeklyHours: 1})

	entries := l.Entries()
	entries[0].CourseName = "mutated"

	assert.Equal(t, "X", l.Entries()[0].CourseName)
}
