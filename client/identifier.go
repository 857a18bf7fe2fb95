package client

import (
	"fmt"

	"github.com/google/uuid"

	errs "github.com/tidepool-org/librelinkup/errors"
	"github.com/tidepool-org/librelinkup/models"
)

// PatientIdentifier is one of uuid.UUID, *uuid.UUID, a UUID string, models.Patient or
// *models.Patient.
type PatientIdentifier = any

// ResolvePatientID converts an identifier to the patient id used in request paths.
func ResolvePatientID(identifier PatientIdentifier) (uuid.UUID, error) {
	switch id := identifier.(type) {
	case uuid.UUID:
		return id, nil
	case *uuid.UUID:
		if id != nil {
			return *id, nil
		}
	case string:
		patientID, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %q is not a uuid", errs.ErrInvalidPatientIdentifier, id)
		}
		return patientID, nil
	case models.Patient:
		return id.PatientID, nil
	case *models.Patient:
		if id != nil {
			return id.PatientID, nil
		}
	}

	return uuid.Nil, fmt.Errorf("%w: unsupported type %T", errs.ErrInvalidPatientIdentifier, identifier)
}
