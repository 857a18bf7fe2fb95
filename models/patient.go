package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Patient is a person whose glucose data is shared with the authenticated follower.
type Patient struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"patientId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

func (p Patient) String() string {
	return fmt.Sprintf("%s %s: %s", p.FirstName, p.LastName, p.PatientID)
}

func (p Patient) Validate() error {
	if p.ID == uuid.Nil {
		return missing("Patient", "id")
	}
	if p.PatientID == uuid.Nil {
		return missing("Patient", "patientId")
	}
	return nil
}

type ConnectionsResponse struct {
	Status int       `json:"status"`
	Data   []Patient `json:"data"`
	Ticket Ticket    `json:"ticket"`
}

func (c *ConnectionsResponse) Validate() error {
	if c.Data == nil {
		return missing("ConnectionsResponse", "data")
	}
	for i, patient := range c.Data {
		if err := patient.Validate(); err != nil {
			return &ValidationError{Schema: "ConnectionsResponse", Field: fmt.Sprintf("data[%d]", i), Reason: "is not a valid patient", Err: err}
		}
	}
	return nil
}
