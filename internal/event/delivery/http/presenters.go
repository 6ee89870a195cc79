package http

import (
	"calendar-event-creator/internal/event"
	"calendar-event-creator/pkg/eventtime"
	"calendar-event-creator/pkg/response"
)

// --- Request DTOs ---

// Fields are validated by the use case so that errors surface in form order.
type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description" binding:"max=8000"`
	Date        string `json:"date"        example:"2024-06-15"`
	Time        string `json:"time"        example:"09:00"`
	Timezone    string `json:"timezone"    example:"America/New_York"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Timezone:    r.Timezone,
	}
}

// ---

type previewReq struct {
	Date     string `json:"date"     example:"2024-06-15"`
	Time     string `json:"time"     example:"09:00"`
	Timezone string `json:"timezone" example:"America/New_York"`
}

func (r previewReq) validate() error { return nil }

func (r previewReq) toInput() event.PreviewInput {
	return event.PreviewInput{
		Date:     r.Date,
		Time:     r.Time,
		Timezone: r.Timezone,
	}
}

// --- Response DTOs ---

type windowResp struct {
	Start    response.DateTime `json:"start"    swaggertype:"string" example:"2024-06-15T13:00:00.000Z"`
	End      response.DateTime `json:"end"      swaggertype:"string" example:"2024-06-15T14:00:00.000Z"`
	Timezone string            `json:"timezone"`
	Label    string            `json:"label"    example:"America/New_York (EDT, UTC-04:00)"`
}

func newWindowResp(w eventtime.Window) windowResp {
	return windowResp{
		Start:    response.DateTime(w.Start),
		End:      response.DateTime(w.End),
		Timezone: w.TimezoneID,
		Label:    w.DisplayLabel,
	}
}

type createResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	HtmlLink    string     `json:"html_link,omitempty"`
	Window      windowResp `json:"window"`
}

func (h *handler) newCreateResp(out event.CreateOutput) createResp {
	return createResp{
		ID:          out.Event.ID,
		Title:       out.Event.Title,
		Description: out.Event.Description,
		HtmlLink:    out.Event.HtmlLink,
		Window:      newWindowResp(out.Event.Window),
	}
}

type previewResp struct {
	Window windowResp `json:"window"`
}

func (h *handler) newPreviewResp(out event.PreviewOutput) previewResp {
	return previewResp{Window: newWindowResp(out.Window)}
}

type zoneResp struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type defaultsResp struct {
	Timezone string `json:"timezone"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type timezonesResp struct {
	Zones    []zoneResp   `json:"zones"`
	Fixed    string       `json:"fixed,omitempty"`
	Defaults defaultsResp `json:"defaults"`
}

func (h *handler) newTimezonesResp(out event.ListTimezonesOutput) timezonesResp {
	zones := make([]zoneResp, len(out.Zones))
	for i, z := range out.Zones {
		zones[i] = zoneResp{ID: z.ID, Label: z.Label}
	}
	return timezonesResp{
		Zones: zones,
		Fixed: out.Fixed,
		Defaults: defaultsResp{
			Timezone: out.DefaultTimezone,
			Date:     out.DefaultDate.String(),
			Time:     out.DefaultTime,
		},
	}
}
