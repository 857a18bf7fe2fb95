package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	errs "github.com/tidepool-org/librelinkup/errors"
	"github.com/tidepool-org/librelinkup/models"
)

// GetPatients returns the patients that share their data with the account, in server order.
func (c *Client) GetPatients(ctx context.Context) ([]models.Patient, error) {
	if err := c.requireAuthentication(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, connectionsPath)
	if err != nil {
		return nil, err
	}

	response := models.ConnectionsResponse{}
	if err := models.Decode(body, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// Graph returns roughly the last twelve hours of readings of a patient.
func (c *Client) Graph(ctx context.Context, identifier PatientIdentifier) ([]models.GlucoseMeasurement, error) {
	response, err := c.graph(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return response.History(), nil
}

// Latest returns the most recent reading of a patient, including its trend.
func (c *Client) Latest(ctx context.Context, identifier PatientIdentifier) (*models.GlucoseMeasurementWithTrend, error) {
	response, err := c.graph(ctx, identifier)
	if err != nil {
		return nil, err
	}
	current := response.Current()
	return &current, nil
}

// Logbook returns roughly two weeks of logbook entries of a patient.
func (c *Client) Logbook(ctx context.Context, identifier PatientIdentifier) ([]models.GlucoseMeasurement, error) {
	if err := c.requireAuthentication(); err != nil {
		return nil, err
	}

	patientID, err := ResolvePatientID(identifier)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, logbookPath(patientID))
	if err != nil {
		return nil, err
	}

	response := models.LogbookResponse{}
	if err := decodePatientResponse(body, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// Read returns the complete graph envelope of a patient.
//
// Deprecated: use Graph or Latest.
func (c *Client) Read(ctx context.Context, identifier PatientIdentifier) (*models.GraphResponse, error) {
	if err := c.requireAuthentication(); err != nil {
		return nil, err
	}

	c.logger.Warnw("Read is deprecated, use Graph or Latest instead", "deprecated", "read")

	return c.graph(ctx, identifier)
}

func (c *Client) graph(ctx context.Context, identifier PatientIdentifier) (*models.GraphResponse, error) {
	if err := c.requireAuthentication(); err != nil {
		return nil, err
	}

	patientID, err := ResolvePatientID(identifier)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, graphPath(patientID))
	if err != nil {
		return nil, err
	}

	response := &models.GraphResponse{}
	if err := decodePatientResponse(body, response); err != nil {
		return nil, err
	}

	return response, nil
}

// decodePatientResponse decodes a payload about a single patient. The vendor answers
// unknown patients with a status 4 envelope instead of an error status.
func decodePatientResponse(body []byte, target models.Validator) error {
	err := models.Decode(body, target)
	if err == nil {
		return nil
	}

	if status, ok := models.ProbeStatus(body); ok && status == models.StatusPatientNotFound {
		return errs.ErrPatientNotFound
	}
	return err
}

func graphPath(patientID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/graph", connectionsPath, patientID)
}

func logbookPath(patientID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/logbook", connectionsPath, patientID)
}
