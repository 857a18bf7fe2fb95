package models

import "time"

type Sensor struct {
	DeviceID string `json:"deviceId"`
	SN       string `json:"sn"`
	// Activation time in unix seconds
	A  int64 `json:"a"`
	W  int   `json:"w"`
	PT int   `json:"pt"`
	S  bool  `json:"s"`
	LJ bool  `json:"lj"`
}

func (s Sensor) ActivatedTime() time.Time {
	if s.A == 0 {
		return time.Time{}
	}
	return time.Unix(s.A, 0).UTC()
}

type FixedLowAlarmValues struct {
	MgDl  int     `json:"mgdl"`
	MmolL float64 `json:"mmoll"`
}

type PatientDevice struct {
	DID                 string              `json:"did"`
	DTID                int                 `json:"dtid"`
	V                   string              `json:"v"`
	LL                  int                 `json:"ll"`
	HL                  int                 `json:"hl"`
	U                   int64               `json:"u"`
	FixedLowAlarmValues FixedLowAlarmValues `json:"fixedLowAlarmValues"`
	Alarms              bool                `json:"alarms"`
	FixedLowThreshold   int                 `json:"fixedLowThreshold"`
}

type ActiveSensor struct {
	Sensor Sensor        `json:"sensor"`
	Device PatientDevice `json:"device"`
}
