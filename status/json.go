package status

import "encoding/json"

// statusJSON is the serialized shape of a Status. The code travels by
// its stable display name rather than its ordinal so that dumps stay
// readable and diffable.
type statusJSON struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// MarshalJSON implements json.Marshaler so a Status can be embedded
// directly in diagnostic or API payloads.
//
// Example:
//
//	st := status.New(status.NotFoundError, "no such record")
//	b, _ := json.Marshal(st)
//	// {"code":"NOT_FOUND_ERROR","message":"no such record"}
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(statusJSON{
		Code:    s.code.String(),
		Message: s.message,
	})
}
