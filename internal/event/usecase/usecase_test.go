package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"calendar-event-creator/internal/event"
	"calendar-event-creator/internal/model"
	"calendar-event-creator/pkg/eventtime"
	"calendar-event-creator/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockCalendar struct {
	calls []gcalendar.CreateEventRequest
	token string
	err   error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, accessToken string, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.calls = append(m.calls, req)
	m.token = accessToken
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{
		ID:        "evt-1",
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.google.com/event?eid=evt-1",
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

// 2024-06-01 12:00 UTC
var testNow = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

var signedIn = model.Scope{SessionID: "s1", Provider: "google", UserID: "u1", AccessToken: "tok-1"}

func newTestUseCase(t *testing.T, cal gcalendar.ICalendar, fixed string) *implUseCase {
	t.Helper()
	catalog, err := eventtime.NewCatalog(nil, fixed)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return New(&mockLogger{}, cal, catalog, testNow, Options{})
}

func TestCreate(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(t, cal, "")

	out, err := uc.Create(context.Background(), signedIn, event.CreateInput{
		Title:    "  Standup  ",
		Date:     "2024-06-15",
		Time:     "09:00",
		Timezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(cal.calls) != 1 {
		t.Fatalf("expected 1 calendar call, got %d", len(cal.calls))
	}
	req := cal.calls[0]
	if cal.token != "tok-1" {
		t.Errorf("token = %q", cal.token)
	}
	if req.Summary != "Standup" || req.Description != event.DefaultDescription {
		t.Errorf("unexpected request: %+v", req)
	}
	if req.CalendarID != gcalendar.DefaultCalendarID || req.Timezone != "America/New_York" {
		t.Errorf("unexpected calendar/timezone: %+v", req)
	}
	if got := eventtime.FormatInstant(req.StartTime); got != "2024-06-15T13:00:00.000Z" {
		t.Errorf("start = %s", got)
	}
	if got := eventtime.FormatInstant(req.EndTime); got != "2024-06-15T14:00:00.000Z" {
		t.Errorf("end = %s", got)
	}

	if out.Event.ID != "evt-1" || out.Event.HtmlLink == "" {
		t.Errorf("unexpected output: %+v", out.Event)
	}
	if out.Event.Window.DisplayLabel != "America/New_York (EDT, UTC-04:00)" {
		t.Errorf("label = %q", out.Event.Window.DisplayLabel)
	}
}

func TestCreateFixedTimezone(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(t, cal, eventtime.LegacyTimezone)

	_, err := uc.Create(context.Background(), signedIn, event.CreateInput{
		Title:    "Lunch",
		Date:     "2024-06-15",
		Time:     "09:00",
		Timezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	req := cal.calls[0]
	if req.Timezone != "Asia/Kolkata" {
		t.Errorf("timezone = %q, want Asia/Kolkata", req.Timezone)
	}
	if got := eventtime.FormatInstant(req.StartTime); got != "2024-06-15T03:30:00.000Z" {
		t.Errorf("start = %s", got)
	}
}

func TestCreateValidation(t *testing.T) {
	valid := event.CreateInput{Title: "Standup", Date: "2024-06-15", Time: "09:00", Timezone: "America/New_York"}

	tests := []struct {
		name   string
		scope  model.Scope
		mutate func(in *event.CreateInput)
		want   error
	}{
		{"no session", model.Scope{}, func(in *event.CreateInput) {}, event.ErrUnauthenticated},
		{"no session wins over empty title", model.Scope{}, func(in *event.CreateInput) { in.Title = "" }, event.ErrUnauthenticated},
		{"empty title", signedIn, func(in *event.CreateInput) { in.Title = "   " }, event.ErrMissingTitle},
		{"bad hour", signedIn, func(in *event.CreateInput) { in.Time = "25:00" }, event.ErrInvalidInput},
		{"bad time format", signedIn, func(in *event.CreateInput) { in.Time = "9am" }, event.ErrInvalidInput},
		{"unknown zone", signedIn, func(in *event.CreateInput) { in.Timezone = "Mars/Olympus" }, event.ErrInvalidInput},
		{"zone outside catalog", signedIn, func(in *event.CreateInput) { in.Timezone = "Asia/Kathmandu" }, event.ErrInvalidInput},
		{"impossible date", signedIn, func(in *event.CreateInput) { in.Date = "2024-02-30" }, event.ErrInvalidInput},
		{"past date", signedIn, func(in *event.CreateInput) { in.Date = "2024-05-31" }, event.ErrPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &mockCalendar{}
			uc := newTestUseCase(t, cal, "")

			in := valid
			tt.mutate(&in)

			_, err := uc.Create(context.Background(), tt.scope, in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Create() error = %v, want %v", err, tt.want)
			}
			if len(cal.calls) != 0 {
				t.Errorf("no calendar call expected, got %d", len(cal.calls))
			}
		})
	}
}

func TestCreateCalendarFailures(t *testing.T) {
	tests := []struct {
		name   string
		calErr error
		want   error
	}{
		{"rejected", &gcalendar.RemoteError{StatusCode: 403, Message: "forbidden"}, event.ErrRemoteRejected},
		{"network", fmt.Errorf("%w: dial tcp: refused", gcalendar.ErrNetworkFailure), event.ErrNetworkFailure},
		{"unclassified", errors.New("boom"), event.ErrNetworkFailure},
		{"missing token", gcalendar.ErrMissingToken, event.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, &mockCalendar{err: tt.calErr}, "")
			_, err := uc.Create(context.Background(), signedIn, event.CreateInput{
				Title: "Standup", Date: "2024-06-15", Time: "09:00", Timezone: "UTC",
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	uc := newTestUseCase(t, &mockCalendar{}, "")

	out, err := uc.Preview(context.Background(), event.PreviewInput{Date: "2024-11-03", Time: "01:30", Timezone: "America/New_York"})
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if got := eventtime.FormatInstant(out.Window.Start); got != "2024-11-03T06:30:00.000Z" {
		t.Errorf("start = %s", got)
	}
	if out.Window.Duration() != time.Hour {
		t.Errorf("duration = %v", out.Window.Duration())
	}

	if _, err := uc.Preview(context.Background(), event.PreviewInput{Date: "2024-05-01", Time: "09:00", Timezone: "UTC"}); !errors.Is(err, event.ErrPastDate) {
		t.Errorf("Preview() past date error = %v", err)
	}
}

func TestExportICS(t *testing.T) {
	uc := newTestUseCase(t, &mockCalendar{}, "")

	out, err := uc.ExportICS(context.Background(), event.CreateInput{
		Title: "Team Sync: Q3!", Date: "2024-06-15", Time: "09:00", Timezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("ExportICS() error = %v", err)
	}
	if out.Filename != "team-sync-q3.ics" {
		t.Errorf("Filename = %q", out.Filename)
	}
	for _, want := range []string{"DTSTART:20240615T130000Z", "DTEND:20240615T140000Z", "SUMMARY:Team Sync: Q3!"} {
		if !strings.Contains(out.Content, want) {
			t.Errorf("content missing %q", want)
		}
	}

	if _, err := uc.ExportICS(context.Background(), event.CreateInput{Date: "2024-06-15", Time: "09:00", Timezone: "UTC"}); !errors.Is(err, event.ErrMissingTitle) {
		t.Errorf("ExportICS() without title error = %v", err)
	}
}

func TestListTimezones(t *testing.T) {
	uc := newTestUseCase(t, &mockCalendar{}, "")

	out, err := uc.ListTimezones(context.Background())
	if err != nil {
		t.Fatalf("ListTimezones() error = %v", err)
	}
	if len(out.Zones) != len(eventtime.SupportedTimezones) || out.Fixed != "" {
		t.Errorf("unexpected zones: %d fixed=%q", len(out.Zones), out.Fixed)
	}
	if out.DefaultTimezone != "UTC" || out.DefaultDate.String() != "2024-06-01" || out.DefaultTime != "09:00" {
		t.Errorf("unexpected defaults: %+v", out)
	}

	fixed := newTestUseCase(t, &mockCalendar{}, "Pacific/Auckland")
	out, err = fixed.ListTimezones(context.Background())
	if err != nil {
		t.Fatalf("ListTimezones() error = %v", err)
	}
	// 12:00 UTC is already June 2nd in Auckland.
	if out.DefaultTimezone != "Pacific/Auckland" || out.DefaultDate.String() != "2024-06-02" {
		t.Errorf("unexpected fixed defaults: %+v", out)
	}
}

func TestFilename(t *testing.T) {
	tests := map[string]string{
		"Standup":         "standup.ics",
		"  --  ":          "event.ics",
		"Réunion d'équipe": "r-union-d-quipe.ics",
	}
	for in, want := range tests {
		if got := filename(in); got != want {
			t.Errorf("filename(%q) = %q, want %q", in, got, want)
		}
	}
}
