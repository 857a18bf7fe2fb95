package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tidepool-org/librelinkup/pointer"
	"github.com/tidepool-org/librelinkup/region"
)

var (
	ErrAuthentication           = errors.New("authentication failed")
	ErrTermsOfUse               = errors.New("terms of use must be accepted in the LibreLinkUp app")
	ErrPrivacyPolicy            = errors.New("privacy policy must be accepted in the LibreLinkUp app")
	ErrEmailVerification        = errors.New("email address must be verified in the LibreLinkUp app")
	ErrPatientNotFound          = errors.New("patient not found")
	ErrInvalidPatientIdentifier = errors.New("invalid patient identifier")
	ErrUnknownRegion            = region.ErrUnknownRegion
)

var (
	BadRequest          = &HttpError{Code: http.StatusBadRequest, Err: errors.New("bad request")}
	Unauthorized        = &HttpError{Code: http.StatusUnauthorized, Err: errors.New("unauthorized")}
	Forbidden           = &HttpError{Code: http.StatusForbidden, Err: errors.New("forbidden")}
	NotFound            = &HttpError{Code: http.StatusNotFound, Err: errors.New("not found")}
	InternalServerError = &HttpError{Code: http.StatusInternalServerError, Err: errors.New("internal server error")}
)

const RateLimitMessage = "Too many requests. Please try again later."

// RedirectError is returned by a login that must be repeated against another region.
type RedirectError struct {
	Region region.Region
}

func (r *RedirectError) Error() string {
	return fmt.Sprintf("account belongs to region %s", r.Region)
}

type RateLimitError struct {
	ResponseCode int
	Message      string
	// RetryAfter is the number of seconds advertised by the server, if any.
	RetryAfter *int
}

// NewRateLimitError builds a RateLimitError from the value of a Retry-After header. Only
// a plain number of seconds is honoured.
func NewRateLimitError(retryAfter string) *RateLimitError {
	err := &RateLimitError{
		ResponseCode: http.StatusTooManyRequests,
		Message:      RateLimitMessage,
	}
	if isDigits(retryAfter) {
		if seconds, parseErr := strconv.Atoi(retryAfter); parseErr == nil {
			err.RetryAfter = pointer.FromAny(seconds)
		}
	}
	return err
}

func (r *RateLimitError) Error() string {
	if r.RetryAfter != nil {
		return fmt.Sprintf("%s (status %d, retry after %ds)", r.Message, r.ResponseCode, *r.RetryAfter)
	}
	return fmt.Sprintf("%s (status %d)", r.Message, r.ResponseCode)
}

// HttpError is a non-success response that has no more specific meaning.
type HttpError struct {
	Code int
	Body []byte
	Err  error
}

func NewHttpError(code int, body []byte) *HttpError {
	return &HttpError{
		Code: code,
		Body: body,
		Err:  fmt.Errorf("unexpected response status %d %s", code, http.StatusText(code)),
	}
}

func (h *HttpError) Unwrap() error {
	return h.Err
}

func (h *HttpError) Error() string {
	return h.Err.Error()
}

// Is matches any HttpError with the same status code.
func (h *HttpError) Is(target error) bool {
	t, ok := target.(*HttpError)
	return ok && t.Code == h.Code
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
