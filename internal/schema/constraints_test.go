package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/timetable/internal/domain"
	"github.com/alexanderramin/timetable/internal/testutil"
)

func TestValidateConstraints_Valid(t *testing.T) {
	for _, n := range []int{0, 1, 20} {
		c := testutil.NewTestConstraints(n, n%2 == 0)
		got, err := ValidateConstraints(c)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, c, got)
	}
}

func TestValidateConstraints_NilSlots(t *testing.T) {
	_, err := ValidateConstraints(domain.Constraints{})
	assert.NoError(t, err)
}

func TestValidateConstraints_OverCap(t *testing.T) {
	_, err := ValidateConstraints(testutil.NewTestConstraints(21, false))
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Cannot select more than 20 unavailable time slots", verr.Field(FieldUnavailableSlots))
}

func TestValidateConstraints_UnknownSlot(t *testing.T) {
	_, err := ValidateConstraints(domain.Constraints{UnavailableSlots: []string{"monday-8", "monday-7"}})
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, FieldUnavailableSlots, verr.Fields[0].Field)
	assert.Equal(t, "Unknown time slot", verr.Fields[0].Message)
}
