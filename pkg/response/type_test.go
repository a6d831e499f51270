package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"daycraft/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)
	tm := time.Date(2024, 5, 1, 23, 30, 0, 0, ict)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("got %s, want \"2024-05-01\"", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, ict)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00+07:00"` {
		t.Errorf("got %s", b)
	}

	if response.NewDateTime(nil) != nil {
		t.Error("NewDateTime(nil) should be nil")
	}
}
