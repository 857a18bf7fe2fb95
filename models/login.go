package models

import "encoding/json"

// Values of data.step.type returned by the login endpoint when the account requires an
// action in the official application before the API can be used.
const (
	StepTermsOfUse    = "tou"
	StepPrivacyPolicy = "pp"
	StepVerifyEmail   = "verifyEmail"
)

// StatusPatientNotFound is the envelope status returned for unknown connections.
const StatusPatientNotFound = 4

type LoginArgs struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SystemMessages struct {
	FirstUsePhoenix                  int64  `json:"firstUsePhoenix"`
	FirstUsePhoenixReportsDataMerged int64  `json:"firstUsePhoenixReportsDataMerged"`
	LvWebPostRelease                 string `json:"lvWebPostRelease"`
}

type System struct {
	Messages SystemMessages `json:"messages"`
}

type LluConsent struct {
	PolicyAccept int64 `json:"policyAccept"`
	TouAccept    int64 `json:"touAccept"`
}

type ConsentHistory struct {
	PolicyAccept int64 `json:"policyAccept"`
}

type RealWorldEvidenceConsent struct {
	PolicyAccept int64            `json:"policyAccept"`
	Declined     bool             `json:"declined"`
	TouAccept    int64            `json:"touAccept"`
	History      []ConsentHistory `json:"history"`
}

type Consents struct {
	Llu               LluConsent               `json:"llu"`
	RealWorldEvidence RealWorldEvidenceConsent `json:"realWorldEvidence"`
}

type User struct {
	ID                    string          `json:"id"`
	FirstName             string          `json:"firstName"`
	LastName              string          `json:"lastName"`
	Email                 string          `json:"email"`
	Country               string          `json:"country"`
	UILanguage            string          `json:"uiLanguage"`
	CommunicationLanguage string          `json:"communicationLanguage"`
	AccountType           string          `json:"accountType"`
	UOM                   string          `json:"uom"`
	DateFormat            string          `json:"dateFormat"`
	TimeFormat            string          `json:"timeFormat"`
	EmailDay              []int           `json:"emailDay"`
	System                System          `json:"system"`
	Details               json.RawMessage `json:"details"`
	Created               int64           `json:"created"`
	LastLogin             int64           `json:"lastLogin"`
	Programs              json.RawMessage `json:"programs"`
	DateOfBirth           int64           `json:"dateOfBirth"`
	Practices             json.RawMessage `json:"practices"`
	Devices               json.RawMessage `json:"devices"`
	Consents              Consents        `json:"consents"`
}

type DataMessages struct {
	Unread int `json:"unread"`
}

type Notifications struct {
	Unresolved int `json:"unresolved"`
}

type AuthTicket struct {
	Token    string `json:"token"`
	Expires  int64  `json:"expires"`
	Duration int64  `json:"duration"`
}

type LoginData struct {
	User          User          `json:"user"`
	Messages      DataMessages  `json:"messages"`
	Notifications Notifications `json:"notifications"`
	AuthTicket    AuthTicket    `json:"authTicket"`
	Invitations   []string      `json:"invitations"`
}

type LoginResponse struct {
	Status int       `json:"status"`
	Data   LoginData `json:"data"`
}

func (l *LoginResponse) Validate() error {
	if l.Data.User.ID == "" {
		return missing("LoginResponse", "data.user.id")
	}
	if l.Data.AuthTicket.Token == "" {
		return missing("LoginResponse", "data.authTicket.token")
	}
	return nil
}
