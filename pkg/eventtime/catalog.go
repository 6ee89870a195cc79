package eventtime

import (
	"fmt"
	"strings"
	"time"
)

// LegacyTimezone is the zone the single-zone form always used.
const LegacyTimezone = "Asia/Kolkata"

// SupportedTimezones is the default selectable list.
var SupportedTimezones = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Anchorage",
	"Pacific/Honolulu",
	"America/Sao_Paulo",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Moscow",
	"Africa/Cairo",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Shanghai",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Pacific/Auckland",
}

// Catalog is the set of zones a user may pick from. When fixed is set every
// selection is pinned to it.
type Catalog struct {
	zones []string
	index map[string]*time.Location
	fixed string
}

// NewCatalog validates every zone up front. An empty list means SupportedTimezones.
func NewCatalog(zones []string, fixed string) (*Catalog, error) {
	if len(zones) == 0 {
		zones = SupportedTimezones
	}

	c := &Catalog{index: make(map[string]*time.Location, len(zones))}
	for _, z := range zones {
		z = strings.TrimSpace(z)
		if _, dup := c.index[z]; dup {
			continue
		}
		loc, err := LoadZone(z)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		c.zones = append(c.zones, z)
		c.index[z] = loc
	}

	fixed = strings.TrimSpace(fixed)
	if fixed != "" {
		loc, err := LoadZone(fixed)
		if err != nil {
			return nil, fmt.Errorf("catalog: fixed %w", err)
		}
		if _, ok := c.index[fixed]; !ok {
			c.zones = append(c.zones, fixed)
			c.index[fixed] = loc
		}
		c.fixed = fixed
	}

	return c, nil
}

// Select returns the zone to use for a request.
func (c *Catalog) Select(requested string) (string, error) {
	if c.fixed != "" {
		return c.fixed, nil
	}
	requested = strings.TrimSpace(requested)
	if _, ok := c.index[requested]; !ok {
		return "", fmt.Errorf("%w: timezone %q is not supported", ErrInvalidInput, requested)
	}
	return requested, nil
}

// Fixed returns the pinned zone, or "" when users may choose.
func (c *Catalog) Fixed() string {
	return c.fixed
}

// Zones returns the ids in catalog order.
func (c *Catalog) Zones() []string {
	out := make([]string, len(c.zones))
	copy(out, c.zones)
	return out
}

// Describe labels every zone at instant t.
func (c *Catalog) Describe(t time.Time) []ZoneInfo {
	out := make([]ZoneInfo, 0, len(c.zones))
	for _, z := range c.zones {
		out = append(out, ZoneInfo{ID: z, Label: Label(t, c.index[z])})
	}
	return out
}
