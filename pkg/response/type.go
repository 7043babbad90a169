package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

var jsonNull = []byte("null")

// Date is a calendar date that marshals as DateFormat in its own location,
// so a midnight built in the configured timezone keeps its day.
// The zero value marshals as null.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(t.Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat in server-local time.
// The zero value marshals as null.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(t.Local().Format(DateTimeFormat))
}
