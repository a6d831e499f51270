package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"daycraft/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("NewClientFromHTTP: %v", err)
	}
	return client
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentialsJSON(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("service account", func(t *testing.T) {
		creds := `{"type": "service_account", "client_email": "bot@example.iam.gserviceaccount.com", "private_key": "unused", "token_uri": "https://oauth2.googleapis.com/token"}`
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(creds), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), ""); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("installed app with broken token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "broken.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath); err == nil {
			t.Error("expected error for broken token")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "missing.json")
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds), tokenPath); err == nil {
			t.Error("expected error for missing token")
		}
	})

	t.Run("missing credentials file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(dir, "nope.json"), ""); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &body)
		w.Write([]byte(`{"id": "event-123", "summary": "Design review", "htmlLink": "https://calendar.google.com/event-uri"}`))
	})

	start := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	reminder := 10
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:         "Design review",
		StartTime:       start,
		EndTime:         start.Add(2 * time.Hour),
		Timezone:        "UTC",
		ReminderMinutes: &reminder,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.ID != "event-123" || event.HTMLLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}
	if !event.EndTime.Equal(start.Add(2 * time.Hour)) {
		t.Errorf("EndTime = %v", event.EndTime)
	}

	reminders, ok := body["reminders"].(map[string]any)
	if !ok {
		t.Fatalf("request has no reminders: %v", body)
	}
	if reminders["useDefault"] != false {
		t.Errorf("useDefault = %v, want false", reminders["useDefault"])
	}
}

func TestCreateEvent_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "primary"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/calendars/primary/events":
			w.Write([]byte(`{
				"items": [
					{"id": "a", "summary": "All day", "start": {"date": "2025-01-06"}, "end": {"date": "2025-01-07"}},
					{"id": "b", "summary": "Standup", "start": {"dateTime": "2025-01-06T09:00:00Z"}, "end": {"dateTime": "2025-01-06T09:15:00Z"}}
				]
			}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	from := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: from,
		TimeMax: from.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if !events[0].StartTime.Equal(from) {
		t.Errorf("all-day start = %v, want %v", events[0].StartTime, from)
	}
	if !events[1].EndTime.Equal(time.Date(2025, 1, 6, 9, 15, 0, 0, time.UTC)) {
		t.Errorf("timed end = %v", events[1].EndTime)
	}

	if _, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "broken"}); err == nil {
		t.Error("expected error for failing calendar")
	}
}
