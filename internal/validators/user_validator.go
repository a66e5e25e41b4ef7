package validators

import (
	"strconv"
	"strings"

	"voyago/internal/models"
	"voyago/internal/services"
)

func ValidateSignup(req *services.RegisterRequest) ValidationErrors {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = normalizePhone(req.Phone)

	return ValidateStruct(req)
}

func ValidateLogin(req *services.LoginRequest) ValidationErrors {
	req.Phone = normalizePhone(req.Phone)

	return ValidateStruct(req)
}

// ValidateVehicleLists checks that vehicle ids are unique within each of the
// two collections.
func ValidateVehicleLists(twoWheelers, fourWheelers []models.Vehicle) ValidationErrors {
	var errors ValidationErrors
	if field, ok := duplicateVehicleID(twoWheelers); ok {
		errors = append(errors, ValidationError{
			Field:   "twoWheelers",
			Message: "duplicate vehicle id " + field,
		})
	}
	if field, ok := duplicateVehicleID(fourWheelers); ok {
		errors = append(errors, ValidationError{
			Field:   "fourWheelers",
			Message: "duplicate vehicle id " + field,
		})
	}
	for i, v := range twoWheelers {
		if strings.TrimSpace(v.RegistrationNumber) == "" {
			errors = append(errors, ValidationError{
				Field:   "twoWheelers",
				Message: "missing registration number at position " + strconv.Itoa(i),
			})
		}
	}
	for i, v := range fourWheelers {
		if strings.TrimSpace(v.RegistrationNumber) == "" {
			errors = append(errors, ValidationError{
				Field:   "fourWheelers",
				Message: "missing registration number at position " + strconv.Itoa(i),
			})
		}
	}
	return errors
}

func duplicateVehicleID(vehicles []models.Vehicle) (string, bool) {
	seen := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		if v.ID == "" {
			continue
		}
		if seen[v.ID] {
			return v.ID, true
		}
		seen[v.ID] = true
	}
	return "", false
}
