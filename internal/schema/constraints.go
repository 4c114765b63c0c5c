package schema

import "github.com/alexanderramin/timetable/internal/domain"

// FieldUnavailableSlots is the constraints field holding the selected slots.
const FieldUnavailableSlots = "unavailableSlots"

var constraintsRules = map[string]string{
	"UnavailableSlots": "max=20,dive," + timeSlotTag,
}

// ValidateConstraints checks the slot cap and that every selected value is
// a catalog slot. On failure the error is a *ValidationError.
func ValidateConstraints(c domain.Constraints) (domain.Constraints, error) {
	if err := fromValidator(validate.Struct(c)); err != nil {
		return domain.Constraints{}, err
	}
	return c, nil
}
