package models

type HighAlarm struct {
	On   bool    `json:"on"`
	TH   int     `json:"th"`
	THMM float64 `json:"thmm"`
	D    int     `json:"d"`
	F    float64 `json:"f"`
}

type FixedLowAlarm struct {
	TH   int     `json:"th"`
	THMM float64 `json:"thmm"`
	D    int     `json:"d"`
	TL   int     `json:"tl"`
	TLMM float64 `json:"tlmm"`
}

type LowAlarm struct {
	On   bool    `json:"on"`
	TH   int     `json:"th"`
	THMM float64 `json:"thmm"`
	D    int     `json:"d"`
	TL   int     `json:"tl"`
	TLMM float64 `json:"tlmm"`
}

type NoDataAlarm struct {
	I int `json:"i"`
	R int `json:"r"`
	L int `json:"l"`
}

// StreamingAlarm is frequently omitted by the vendor, Sd is nil in that case.
type StreamingAlarm struct {
	Sd *bool `json:"sd"`
}

type AlarmRules struct {
	C   bool           `json:"c"`
	H   HighAlarm      `json:"h"`
	F   FixedLowAlarm  `json:"f"`
	L   LowAlarm       `json:"l"`
	ND  NoDataAlarm    `json:"nd"`
	P   int            `json:"p"`
	R   int            `json:"r"`
	Std StreamingAlarm `json:"std"`
}
