package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser reads and presents absolute timestamps in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Mexico_City"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseISO parses an ISO-8601 timestamp. Values carrying an offset keep it;
// values without one are read as wall-clock time in the parser's timezone.
func (p *Parser) ParseISO(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// FormatDate renders t as a calendar date for the given locale:
// day-first for es and pt, month-first for en.
func (p *Parser) FormatDate(t time.Time, locale Locale) string {
	return t.In(p.location).Format(DateLayout(locale))
}

// FormatClock renders t as 24-hour HH:MM in the parser's timezone.
func (p *Parser) FormatClock(t time.Time) string {
	return t.In(p.location).Format(layoutClock)
}

// DateLayout returns the Go layout for a locale's calendar date.
// Unknown locales fall back to the day-first layout.
func DateLayout(locale Locale) string {
	if locale == LocaleEN {
		return layoutMonthFirst
	}
	return layoutDayFirst
}
