package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type Ticket struct {
	Token    string `json:"token"`
	Expires  int64  `json:"expires"`
	Duration int64  `json:"duration"`
}

type Connection struct {
	ID                 uuid.UUID                    `json:"id"`
	PatientID          uuid.UUID                    `json:"patientId"`
	Country            string                       `json:"country"`
	Status             int                          `json:"status"`
	FirstName          string                       `json:"firstName"`
	LastName           string                       `json:"lastName"`
	TargetLow          int                          `json:"targetLow"`
	TargetHigh         int                          `json:"targetHigh"`
	UOM                int                          `json:"uom"`
	Sensor             Sensor                       `json:"sensor"`
	AlarmRules         AlarmRules                   `json:"alarmRules"`
	GlucoseMeasurement GlucoseMeasurementWithTrend  `json:"glucoseMeasurement"`
	GlucoseItem        *GlucoseMeasurementWithTrend `json:"glucoseItem"`
	GlucoseAlarm       json.RawMessage              `json:"glucoseAlarm"`
	PatientDevice      PatientDevice                `json:"patientDevice"`
	Created            int64                        `json:"created"`
}

// Patient returns the identity part of the connection.
func (c Connection) Patient() Patient {
	return Patient{
		ID:        c.ID,
		PatientID: c.PatientID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

type GraphData struct {
	Connection    Connection           `json:"connection"`
	ActiveSensors []ActiveSensor       `json:"activeSensors"`
	GraphData     []GlucoseMeasurement `json:"graphData"`
}

// GraphResponse is the envelope of the graph endpoint: the connection with its latest reading
// and roughly the last twelve hours of history.
type GraphResponse struct {
	Status int       `json:"status"`
	Data   GraphData `json:"data"`
	Ticket Ticket    `json:"ticket"`
}

func (g *GraphResponse) Validate() error {
	const schema = "GraphResponse"

	if g.Data.Connection.PatientID == uuid.Nil {
		return missing(schema, "data.connection.patientId")
	}
	if g.Data.Connection.GlucoseMeasurement.IsZero() {
		return missing(schema, "data.connection.glucoseMeasurement")
	}
	if g.Data.GraphData == nil {
		return missing(schema, "data.graphData")
	}
	for i, measurement := range g.Data.GraphData {
		if measurement.IsZero() {
			return missing(schema, fmt.Sprintf("data.graphData[%d]", i))
		}
	}
	return nil
}

// Current returns the most recent reading of the connection.
func (g *GraphResponse) Current() GlucoseMeasurementWithTrend {
	return g.Data.Connection.GlucoseMeasurement
}

// History returns the graph readings, oldest first as delivered by the vendor.
func (g *GraphResponse) History() []GlucoseMeasurement {
	return g.Data.GraphData
}

// LogbookResponse is the envelope of the logbook endpoint, covering roughly two weeks.
type LogbookResponse struct {
	Status int                  `json:"status"`
	Data   []GlucoseMeasurement `json:"data"`
	Ticket Ticket               `json:"ticket"`
}

func (l *LogbookResponse) Validate() error {
	if l.Data == nil {
		return missing("LogbookResponse", "data")
	}
	for i, measurement := range l.Data {
		if measurement.IsZero() {
			return missing("LogbookResponse", fmt.Sprintf("data[%d]", i))
		}
	}
	return nil
}
