package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies server-rejected requests.
type ErrorKind string

const (
	KindAlreadyExists ErrorKind = "already_exists"
	KindInvalid       ErrorKind = "invalid"
	KindUnknown       ErrorKind = "unknown"
)

// APIError is a server-rejected request (4xx/5xx other than the sentinel
// classes). Kind prefers a structured code field from the response body;
// when the backend sends only free text, kindFromMessage is the stopgap.
type APIError struct {
	Status  int
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// errorBody is the shape of an error response. Older deployments send only
// message/detail text; newer ones include a code.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   string `json:"error"`
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Kind: KindUnknown}

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		switch {
		case eb.Message != "":
			apiErr.Message = eb.Message
		case eb.Detail != "":
			apiErr.Message = eb.Detail
		case eb.Error != "":
			apiErr.Message = eb.Error
		}
		if eb.Code != "" {
			apiErr.Kind = ErrorKind(eb.Code)
			return apiErr
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	apiErr.Kind = kindFromMessage(apiErr.Message)
	return apiErr
}

// kindFromMessage sniffs the error text for known phrases. Stopgap for
// backends without structured error codes; matches the deployed backend's
// wording ("exists", "invalid").
func kindFromMessage(msg string) ErrorKind {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "exists"):
		return KindAlreadyExists
	case strings.Contains(lower, "invalid"):
		return KindInvalid
	default:
		return KindUnknown
	}
}

// IsAlreadyExists reports whether err is a server rejection for a duplicate
// resource (e.g. subscribing an email twice).
func IsAlreadyExists(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindAlreadyExists
}
