package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"calendar-event-creator/pkg/gcalendar"
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

func newTestClient(ts *httptest.Server) *gcalendar.Client {
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	return gcalendar.NewClient(gcalendar.ClientOptions{HTTPClient: tsClient})
}

type capturedEvent struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
		TimeZone string `json:"timeZone"`
	} `json:"end"`
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)

	t.Run("Create Event E2E", func(t *testing.T) {
		var gotAuth string
		var got capturedEvent

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				gotAuth = r.Header.Get("Authorization")
				json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "Standup",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		client := newTestClient(ts)
		event, err := client.CreateEvent(context.Background(), "tok-123", gcalendar.CreateEventRequest{
			Summary:     "Standup",
			Description: "Event created from the app.",
			StartTime:   start,
			EndTime:     start.Add(time.Hour),
			Timezone:    "America/New_York",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}

		if gotAuth != "Bearer tok-123" {
			t.Errorf("unexpected Authorization header: %q", gotAuth)
		}
		if got.Summary != "Standup" || got.Description != "Event created from the app." {
			t.Errorf("unexpected body: %+v", got)
		}
		if got.Start.DateTime != "2024-06-15T13:00:00.000Z" || got.End.DateTime != "2024-06-15T14:00:00.000Z" {
			t.Errorf("unexpected instants: start=%s end=%s", got.Start.DateTime, got.End.DateTime)
		}
		if got.Start.TimeZone != "America/New_York" || got.End.TimeZone != "America/New_York" {
			t.Errorf("unexpected timezones: %+v", got)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}
		if !event.StartTime.Equal(start) {
			t.Errorf("unexpected start: %v", event.StartTime)
		}
	})

	t.Run("Custom calendar id and base URL", func(t *testing.T) {
		var gotPath string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"id": "event-9"}`))
		}))
		defer ts.Close()

		client := gcalendar.NewClient(gcalendar.ClientOptions{BaseURL: ts.URL + "/calendar/v3/"})
		_, err := client.CreateEvent(context.Background(), "tok", gcalendar.CreateEventRequest{
			CalendarID: "team@example.com",
			Summary:    "Review",
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
			Timezone:   "UTC",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/calendar/v3/calendars/team@example.com/events" {
			t.Errorf("unexpected path: %s", gotPath)
		}
	})

	t.Run("Remote rejection keeps status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"code": 401, "message": "Invalid Credentials"}}`))
		}))
		defer ts.Close()

		_, err := newTestClient(ts).CreateEvent(context.Background(), "expired", gcalendar.CreateEventRequest{
			Summary:   "Title",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
		if !errors.Is(err, gcalendar.ErrRemoteRejected) {
			t.Fatalf("expected ErrRemoteRejected, got %v", err)
		}
		var remote *gcalendar.RemoteError
		if !errors.As(err, &remote) || remote.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected RemoteError with 401, got %v", err)
		}
	})

	t.Run("Server error without body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		_, err := newTestClient(ts).CreateEvent(context.Background(), "tok", gcalendar.CreateEventRequest{})
		if !errors.Is(err, gcalendar.ErrRemoteRejected) {
			t.Fatalf("expected ErrRemoteRejected, got %v", err)
		}
	})

	t.Run("Network failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		client := newTestClient(ts)
		ts.Close()

		_, err := client.CreateEvent(context.Background(), "tok", gcalendar.CreateEventRequest{
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
		if !errors.Is(err, gcalendar.ErrNetworkFailure) {
			t.Fatalf("expected ErrNetworkFailure, got %v", err)
		}
	})

	t.Run("Missing token issues no request", func(t *testing.T) {
		called := false
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer ts.Close()

		_, err := newTestClient(ts).CreateEvent(context.Background(), "  ", gcalendar.CreateEventRequest{})
		if !errors.Is(err, gcalendar.ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
		if called {
			t.Errorf("no HTTP call expected without a token")
		}
	})
}
