package dto

import (
	"encoding/json"
	"strings"
)

// FlexString accepts both JSON strings and JSON numbers. Clients send
// amounts and balances either way, so the value is normalized to its
// textual form before domain validation sees it.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	*s = FlexString(trimmed)
	return nil
}

// String returns the normalized textual value
func (s FlexString) String() string {
	return string(s)
}

// ErrorResponse is the envelope for business rule failures
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// FailMessageResponse is the envelope for auth failures and unknown routes
type FailMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusResponse carries only a status line
type StatusResponse struct {
	Status string `json:"status"`
}

// MessageResponse carries a status and a human-readable message
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
