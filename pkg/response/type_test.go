package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"eventask/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "utc midnight", in: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), want: `"2024-05-01"`},
		// Midnight east of UTC is still the previous day in UTC; the date must not shift.
		{name: "keeps own location", in: time.Date(2024, 5, 1, 0, 0, 0, 0, ict), want: `"2024-05-01"`},
		{name: "zero", in: time.Time{}, want: `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling Date: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Date = %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	want := `"` + tm.Local().Format(response.DateTimeFormat) + `"`
	if string(b) != want {
		t.Errorf("DateTime = %s, want %s", b, want)
	}

	b, err = json.Marshal(struct {
		At response.DateTime `json:"at"`
	}{})
	if err != nil {
		t.Fatalf("unexpected error marshaling zero DateTime: %v", err)
	}
	if !strings.Contains(string(b), `"at":null`) {
		t.Errorf("zero DateTime = %s", b)
	}
}
