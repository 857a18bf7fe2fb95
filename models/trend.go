package models

// Trend is the direction and rate of glucose change reported with the latest reading.
type Trend int

const (
	TrendUnknown Trend = iota
	TrendDownFast
	TrendDownSlow
	TrendStable
	TrendUpSlow
	TrendUpFast
)

func (t Trend) IsValid() bool {
	return t >= TrendDownFast && t <= TrendUpFast
}

func (t Trend) String() string {
	switch t {
	case TrendDownFast:
		return "DOWN_FAST"
	case TrendDownSlow:
		return "DOWN_SLOW"
	case TrendStable:
		return "STABLE"
	case TrendUpSlow:
		return "UP_SLOW"
	case TrendUpFast:
		return "UP_FAST"
	default:
		return "UNKNOWN"
	}
}

// Arrow returns a single character representation of the trend.
func (t Trend) Arrow() string {
	switch t {
	case TrendDownFast:
		return "↓"
	case TrendDownSlow:
		return "↘"
	case TrendStable:
		return "→"
	case TrendUpSlow:
		return "↗"
	case TrendUpFast:
		return "↑"
	default:
		return "?"
	}
}
