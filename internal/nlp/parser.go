package nlp

import (
	"strings"
	"time"

	"daycraft/pkg/datemath"
)

// Parser turns free text into a ParsedTask using pattern matching and
// calendar arithmetic only. It holds no mutable state and is safe for
// concurrent use.
type Parser struct {
	calendar *datemath.Calendar
	now      func() time.Time
}

// NewParser creates a Parser evaluating dates in cal. A nil cal means UTC.
func NewParser(cal *datemath.Calendar) *Parser {
	if cal == nil {
		cal = datemath.UTC()
	}
	return &Parser{calendar: cal, now: time.Now}
}

func (p *Parser) Calendar() *datemath.Calendar {
	return p.calendar
}

// ParseNow parses text relative to the current instant.
func (p *Parser) ParseNow(text string) ParsedTask {
	return p.Parse(text, p.now())
}

// Parse extracts every signal from text relative to reference. It never
// fails: unrecognized fragments stay in the title.
func (p *Parser) Parse(text string, reference time.Time) ParsedTask {
	lowered := strings.ToLower(text)

	result := ParsedTask{
		Status:         parseStatus(lowered),
		Priority:       parsePriority(lowered),
		Tags:           parseTags(lowered),
		Project:        parseProject(lowered),
		RecurrenceRule: parseRecurrence(lowered),
		Reminder:       p.parseReminder(lowered, reference),
	}

	date := p.parseDate(lowered, reference)
	rng := parseTimeRange(lowered)
	point := parseTimePoint(lowered)
	estimate := parseDurationMinutes(lowered)

	result.DueDate = date

	switch {
	case rng != nil:
		scheduled := p.combine(p.baseDate(date, reference), rng.start)
		result.ScheduledDate = &scheduled
		if estimate == nil {
			estimate = intPtr(rng.durationMinutes)
		}
	case point != nil:
		due := p.combine(p.baseDate(date, reference), *point)
		result.DueDate = &due
	}

	result.EstimatedMinutes = estimate
	result.Title = extractTitle(text)

	return result
}

// baseDate is the explicit date when one matched, else the reference day.
func (p *Parser) baseDate(date *time.Time, reference time.Time) time.Time {
	if date != nil {
		return *date
	}
	return p.calendar.StartOfDay(reference)
}

// combine places t on the calendar day of date.
func (p *Parser) combine(date time.Time, t timeOfDay) time.Time {
	year, month, day := p.calendar.Components(date)
	return p.calendar.Date(year, month, day, t.hour, t.minute)
}

func extractTitle(text string) string {
	cleaned := text
	for _, re := range titlePatterns {
		cleaned = re.ReplaceAllLiteralString(cleaned, " ")
	}
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

func intPtr(v int) *int { return &v }
