package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the vendor timestamp format, e.g. "7/4/2024 2:05:00 PM".
const TimestampLayout = "1/2/2006 3:04:05 PM"

// ParseTimestamp parses a vendor timestamp in the given location.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, strings.TrimSpace(value), loc)
}

// FormatTimestamp renders t in the vendor timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

type MeasurementColor int

const (
	MeasurementColorGreen  MeasurementColor = 1
	MeasurementColorYellow MeasurementColor = 2
	MeasurementColorOrange MeasurementColor = 3
	MeasurementColorRed    MeasurementColor = 4
)

func (m MeasurementColor) String() string {
	switch m {
	case MeasurementColorGreen:
		return "green"
	case MeasurementColorYellow:
		return "yellow"
	case MeasurementColorOrange:
		return "orange"
	case MeasurementColorRed:
		return "red"
	default:
		return ""
	}
}

// GlucoseMeasurement is a single sensor reading.
//
// FactoryTimestamp is reported by the vendor in UTC. Timestamp carries no zone information
// and is interpreted in time.Local.
type GlucoseMeasurement struct {
	FactoryTimestamp time.Time
	Timestamp        time.Time
	Type             int
	ValueInMgPerDl   float64
	MeasurementColor MeasurementColor
	GlucoseUnits     int
	Value            float64
	IsHigh           bool
	IsLow            bool
}

func (g GlucoseMeasurement) String() string {
	return fmt.Sprintf("%s: %v", g.Timestamp.Format(time.DateTime), g.Value)
}

type measurementPayload struct {
	FactoryTimestamp *string          `json:"FactoryTimestamp"`
	Timestamp        *string          `json:"Timestamp"`
	Type             int              `json:"type"`
	ValueInMgPerDl   *float64         `json:"ValueInMgPerDl"`
	TrendArrow       *int             `json:"TrendArrow,omitempty"`
	TrendMessage     *string          `json:"TrendMessage,omitempty"`
	MeasurementColor MeasurementColor `json:"MeasurementColor"`
	GlucoseUnits     int              `json:"GlucoseUnits"`
	Value            float64          `json:"Value"`
	IsHigh           bool             `json:"isHigh"`
	IsLow            bool             `json:"isLow"`
}

func (g *GlucoseMeasurement) UnmarshalJSON(data []byte) error {
	payload, err := decodeMeasurementPayload(data)
	if err != nil || payload == nil {
		return err
	}
	return g.fromPayload(payload)
}

func (g GlucoseMeasurement) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.toPayload())
}

func (g *GlucoseMeasurement) fromPayload(payload *measurementPayload) error {
	const schema = "GlucoseMeasurement"

	if payload.FactoryTimestamp == nil {
		return missing(schema, "FactoryTimestamp")
	}
	if payload.Timestamp == nil {
		return missing(schema, "Timestamp")
	}
	if payload.ValueInMgPerDl == nil {
		return missing(schema, "ValueInMgPerDl")
	}

	factoryTimestamp, err := ParseTimestamp(*payload.FactoryTimestamp, time.UTC)
	if err != nil {
		return &ValidationError{Schema: schema, Field: "FactoryTimestamp", Reason: "is not a valid timestamp", Err: err}
	}
	timestamp, err := ParseTimestamp(*payload.Timestamp, time.Local)
	if err != nil {
		return &ValidationError{Schema: schema, Field: "Timestamp", Reason: "is not a valid timestamp", Err: err}
	}

	*g = GlucoseMeasurement{
		FactoryTimestamp: factoryTimestamp,
		Timestamp:        timestamp,
		Type:             payload.Type,
		ValueInMgPerDl:   *payload.ValueInMgPerDl,
		MeasurementColor: payload.MeasurementColor,
		GlucoseUnits:     payload.GlucoseUnits,
		Value:            payload.Value,
		IsHigh:           payload.IsHigh,
		IsLow:            payload.IsLow,
	}
	return nil
}

func (g GlucoseMeasurement) toPayload() *measurementPayload {
	factoryTimestamp := FormatTimestamp(g.FactoryTimestamp.UTC())
	timestamp := FormatTimestamp(g.Timestamp)
	value := g.ValueInMgPerDl
	return &measurementPayload{
		FactoryTimestamp: &factoryTimestamp,
		Timestamp:        &timestamp,
		Type:             g.Type,
		ValueInMgPerDl:   &value,
		MeasurementColor: g.MeasurementColor,
		GlucoseUnits:     g.GlucoseUnits,
		Value:            g.Value,
		IsHigh:           g.IsHigh,
		IsLow:            g.IsLow,
	}
}

// GlucoseMeasurementWithTrend is a reading that also carries the direction of change.
type GlucoseMeasurementWithTrend struct {
	GlucoseMeasurement
	TrendArrow   Trend
	TrendMessage *string
}

func (g GlucoseMeasurementWithTrend) String() string {
	if g.TrendArrow == TrendUnknown {
		return g.GlucoseMeasurement.String()
	}
	return fmt.Sprintf("%s %s", g.GlucoseMeasurement.String(), g.TrendArrow.Arrow())
}

func (g *GlucoseMeasurementWithTrend) UnmarshalJSON(data []byte) error {
	payload, err := decodeMeasurementPayload(data)
	if err != nil || payload == nil {
		return err
	}

	measurement := GlucoseMeasurement{}
	if err := measurement.fromPayload(payload); err != nil {
		return err
	}

	trend := TrendUnknown
	if payload.TrendArrow != nil {
		trend = Trend(*payload.TrendArrow)
		if !trend.IsValid() && trend != TrendUnknown {
			return &ValidationError{Schema: "GlucoseMeasurementWithTrend", Field: "TrendArrow", Reason: fmt.Sprintf("has unexpected value %d", *payload.TrendArrow)}
		}
	}

	*g = GlucoseMeasurementWithTrend{
		GlucoseMeasurement: measurement,
		TrendArrow:         trend,
		TrendMessage:       payload.TrendMessage,
	}
	return nil
}

func (g GlucoseMeasurementWithTrend) MarshalJSON() ([]byte, error) {
	payload := g.GlucoseMeasurement.toPayload()
	if g.TrendArrow != TrendUnknown {
		trend := int(g.TrendArrow)
		payload.TrendArrow = &trend
	}
	payload.TrendMessage = g.TrendMessage
	return json.Marshal(payload)
}

// IsZero reports whether the measurement was absent or null in the payload.
func (g GlucoseMeasurement) IsZero() bool {
	return g.Timestamp.IsZero() && g.FactoryTimestamp.IsZero()
}

func decodeMeasurementPayload(data []byte) (*measurementPayload, error) {
	if string(data) == "null" {
		return nil, nil
	}
	payload := &measurementPayload{}
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
