package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"golang.org/x/oauth2"

	"calendar-event-creator/internal/event"
	"calendar-event-creator/pkg/eventtime"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

type windowOutput struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
	Label    string `json:"label"`
}

func newWindowOutput(w eventtime.Window) windowOutput {
	return windowOutput{
		Start:    eventtime.FormatInstant(w.Start),
		End:      eventtime.FormatInstant(w.End),
		Timezone: w.TimezoneID,
		Label:    w.DisplayLabel,
	}
}

type zoneOutput struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type zonesOutput struct {
	Zones           []zoneOutput `json:"zones"`
	Fixed           string       `json:"fixed,omitempty"`
	DefaultTimezone string       `json:"default_timezone"`
	DefaultDate     string       `json:"default_date"`
	DefaultTime     string       `json:"default_time"`
}

type createdOutput struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	HtmlLink    string       `json:"html_link,omitempty"`
	Window      windowOutput `json:"window"`
}

type tokenOutput struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
}

// WriteZones writes the catalog in the specified format
func WriteZones(w io.Writer, out event.ListTimezonesOutput, format OutputFormat) error {
	if format == FormatJSON {
		zones := make([]zoneOutput, len(out.Zones))
		for i, z := range out.Zones {
			zones[i] = zoneOutput{ID: z.ID, Label: z.Label}
		}
		return writeJSON(w, zonesOutput{
			Zones:           zones,
			Fixed:           out.Fixed,
			DefaultTimezone: out.DefaultTimezone,
			DefaultDate:     out.DefaultDate.String(),
			DefaultTime:     out.DefaultTime,
		})
	}

	for _, z := range out.Zones {
		marker := " "
		if z.ID == out.DefaultTimezone {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, z.Label)
	}
	if out.Fixed != "" {
		fmt.Fprintf(w, "\nTimezone is pinned to %s.\n", out.Fixed)
	}
	return nil
}

// WriteWindow writes a resolved window in the specified format
func WriteWindow(w io.Writer, win eventtime.Window, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, newWindowOutput(win))
	}
	o := newWindowOutput(win)
	fmt.Fprintf(w, "Timezone: %s\n", o.Label)
	fmt.Fprintf(w, "Start:    %s\n", o.Start)
	fmt.Fprintf(w, "End:      %s\n", o.End)
	return nil
}

// WriteCreated writes an accepted event in the specified format
func WriteCreated(w io.Writer, ev event.CreatedEvent, format OutputFormat) error {
	o := createdOutput{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		HtmlLink:    ev.HtmlLink,
		Window:      newWindowOutput(ev.Window),
	}
	if format == FormatJSON {
		return writeJSON(w, o)
	}
	fmt.Fprintln(w, "Event created successfully!")
	fmt.Fprintf(w, "  %s (%s)\n", o.Title, o.ID)
	fmt.Fprintf(w, "  %s -> %s, %s\n", o.Window.Start, o.Window.End, o.Window.Label)
	if o.HtmlLink != "" {
		fmt.Fprintf(w, "  %s\n", o.HtmlLink)
	}
	return nil
}

// WriteToken writes an exchanged token; text mode prints the access token only
// so it can be captured into CALENDAR_ACCESS_TOKEN.
func WriteToken(w io.Writer, tok *oauth2.Token, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, tokenOutput{
			AccessToken:  tok.AccessToken,
			TokenType:    tok.TokenType,
			RefreshToken: tok.RefreshToken,
			Expiry:       tok.Expiry,
		})
	}
	_, err := fmt.Fprintln(w, tok.AccessToken)
	return err
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
