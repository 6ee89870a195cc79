package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// dateTimeLayout is ISO-8601 in UTC with milliseconds.
const dateTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Client builds a Calendar service per call from the caller's access token.
// It holds no credentials of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a Calendar client.
func NewClient(opts ClientOptions) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: hc,
		timeout:    opts.Timeout,
	}
}

func (c *Client) service(ctx context.Context, accessToken string) (*calendar.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	authed := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient), ts)
	if c.timeout > 0 {
		authed.Timeout = c.timeout
	}

	opts := []option.ClientOption{option.WithHTTPClient(authed)}
	if c.baseURL != "" {
		opts = append(opts, option.WithEndpoint(c.baseURL))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}

// CreateEvent inserts a single event. It is never retried: the insert is not
// idempotent on the remote side.
func (c *Client) CreateEvent(ctx context.Context, accessToken string, req CreateEventRequest) (*Event, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingToken
	}

	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.UTC().Format(dateTimeLayout),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.UTC().Format(dateTimeLayout),
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// classify splits failures into "the API answered no" and "we never got an answer".
func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.Code)
		}
		return &RemoteError{StatusCode: apiErr.Code, Message: msg}
	}
	return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
}
