package models

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
)

// LoginProbe holds the fields of a login payload that decide the authentication outcome
// before the strict decode. Each field is read on its own, so a malformed neighbour never
// hides a redirect or a required step.
type LoginProbe struct {
	Status int
	Data   LoginProbeData
	Error  LoginProbeError
}

type LoginProbeData struct {
	Redirect bool
	Region   string
	Step     LoginProbeStep
}

type LoginProbeStep struct {
	Type string
}

type LoginProbeError struct {
	Message string
}

type statusProbe struct {
	Status int `mapstructure:"status"`
}

type redirectProbe struct {
	Data struct {
		Redirect bool   `mapstructure:"redirect"`
		Region   string `mapstructure:"region"`
	} `mapstructure:"data"`
}

type stepProbe struct {
	Data struct {
		Step struct {
			Type string `mapstructure:"type"`
		} `mapstructure:"step"`
	} `mapstructure:"data"`
}

type errorProbe struct {
	Error struct {
		Message string `mapstructure:"message"`
	} `mapstructure:"error"`
}

// ProbeLogin inspects a raw login payload. The second result is false when the payload is
// not a JSON object. Fields with an unexpected shape are left empty.
func ProbeLogin(body []byte) (LoginProbe, bool) {
	raw, err := decodeRaw(body)
	if err != nil {
		return LoginProbe{}, false
	}

	result := LoginProbe{}

	status := statusProbe{}
	if weakDecode(raw, &status) == nil {
		result.Status = status.Status
	}

	redirect := redirectProbe{}
	if weakDecode(raw, &redirect) == nil {
		result.Data.Redirect = redirect.Data.Redirect
		result.Data.Region = redirect.Data.Region
	}

	step := stepProbe{}
	if weakDecode(raw, &step) == nil {
		result.Data.Step.Type = step.Data.Step.Type
	}

	message := errorProbe{}
	if weakDecode(raw, &message) == nil {
		result.Error.Message = message.Error.Message
	}

	return result, true
}

// ProbeStatus returns the envelope status of a raw payload.
func ProbeStatus(body []byte) (int, bool) {
	raw, err := decodeRaw(body)
	if err != nil {
		return 0, false
	}

	result := statusProbe{}
	if err := weakDecode(raw, &result); err != nil {
		return 0, false
	}
	return result.Status, true
}

func decodeRaw(body []byte) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func weakDecode(raw map[string]interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
