package nlp

import (
	"math"
	"strconv"
	"strings"
	"time"

	"daycraft/internal/model"
)

func parseStatus(text string) *model.TaskStatus {
	var status model.TaskStatus
	switch {
	case strings.Contains(text, "/done"):
		status = model.StatusDone
	case strings.Contains(text, "/icebox"):
		status = model.StatusIcebox
	case strings.Contains(text, "/drop"):
		status = model.StatusDropped
	default:
		return nil
	}
	return &status
}

// parsePriority checks markers in fixed precedence. Priority words only match
// with a space on both sides, so "high" at either end of the text is ignored.
func parsePriority(text string) *model.TaskPriority {
	var priority model.TaskPriority
	switch {
	case strings.Contains(text, "!!!"), strings.Contains(text, "!!"):
		priority = model.PriorityCritical
	case strings.Contains(text, "!"):
		priority = model.PriorityHigh
	case hasToken(text, "p1"):
		priority = model.PriorityCritical
	case hasToken(text, "p2"):
		priority = model.PriorityHigh
	case strings.Contains(text, " high "):
		priority = model.PriorityHigh
	case strings.Contains(text, " low "):
		priority = model.PriorityLow
	case strings.Contains(text, " normal "):
		priority = model.PriorityNormal
	case strings.Contains(text, " critical "):
		priority = model.PriorityCritical
	default:
		return nil
	}
	return &priority
}

// hasToken reports whether token appears space-delimited, or at either edge
// followed/preceded by a space.
func hasToken(text, token string) bool {
	return strings.Contains(text, " "+token+" ") ||
		strings.HasPrefix(text, token+" ") ||
		strings.HasSuffix(text, " "+token)
}

func parseTags(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}

func parseProject(text string) *string {
	m := projectPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	project := m[1]
	return &project
}

func parseRecurrence(text string) *model.RecurrenceRule {
	switch {
	case strings.Contains(text, "daily"):
		return &model.RecurrenceRule{Frequency: model.FrequencyDaily, Interval: 1}
	case strings.Contains(text, "weekly"):
		return &model.RecurrenceRule{Frequency: model.FrequencyWeekly, Interval: 1}
	case strings.Contains(text, "monthly"):
		return &model.RecurrenceRule{Frequency: model.FrequencyMonthly, Interval: 1}
	case strings.Contains(text, "yearly"):
		return &model.RecurrenceRule{Frequency: model.FrequencyYearly, Interval: 1}
	}

	if m := everyPattern.FindStringSubmatch(text); m != nil {
		interval := atoiOr(m[1], 1)
		unit := m[2]
		switch {
		case strings.Contains(unit, "day"):
			return &model.RecurrenceRule{Frequency: model.FrequencyDaily, Interval: interval}
		case strings.Contains(unit, "week"):
			return &model.RecurrenceRule{Frequency: model.FrequencyWeekly, Interval: interval}
		case strings.Contains(unit, "month"):
			return &model.RecurrenceRule{Frequency: model.FrequencyMonthly, Interval: interval}
		case strings.Contains(unit, "year"):
			return &model.RecurrenceRule{Frequency: model.FrequencyYearly, Interval: interval}
		}
	}

	if weekday, ok := parseWeekday(text); ok {
		return &model.RecurrenceRule{Frequency: model.FrequencyWeekly, Interval: 1, DaysOfWeek: []int{weekday}}
	}

	return nil
}

func (p *Parser) parseReminder(text string, reference time.Time) *ParsedReminder {
	if m := reminderBeforePattern.FindStringSubmatch(text); m != nil {
		return &ParsedReminder{MinutesBefore: intPtr(atoiOr(m[2], 0))}
	}

	if m := reminderAtPattern.FindStringSubmatch(text); m != nil {
		if t, ok := parseClock(m[2]); ok {
			at := p.combine(p.calendar.StartOfDay(reference), t)
			return &ParsedReminder{At: &at}
		}
	}

	return nil
}

// parseDurationMinutes returns the explicit estimate, if any. The forms are
// tried in order: "1h30m", "1.5h", "45m". An estimate that does not fit in an
// int is treated as absent.
func parseDurationMinutes(text string) *int {
	if m := hoursMinutesPattern.FindStringSubmatch(text); m != nil {
		hours, errH := strconv.Atoi(m[1])
		minutes, errM := strconv.Atoi(m[2])
		if errH != nil || errM != nil || hours > (math.MaxInt-minutes)/60 {
			return nil
		}
		return intPtr(hours*60 + minutes)
	}

	if m := decimalHoursPattern.FindStringSubmatch(text); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		total := math.Round(hours * 60)
		if total >= float64(math.MaxInt) {
			return nil
		}
		return intPtr(int(total))
	}

	if m := minutesPattern.FindStringSubmatch(text); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		return intPtr(minutes)
	}

	return nil
}

func (p *Parser) parseDate(text string, reference time.Time) *time.Time {
	cal := p.calendar
	var date time.Time

	switch {
	case strings.Contains(text, "today"):
		date = cal.StartOfDay(reference)
	case strings.Contains(text, "tomorrow"):
		date = cal.StartOfDay(cal.AddDays(reference, 1))
	default:
		d, ok := p.parseCalendarDate(text, reference)
		if !ok {
			return nil
		}
		date = d
	}
	return &date
}

func (p *Parser) parseCalendarDate(text string, reference time.Time) (time.Time, bool) {
	cal := p.calendar

	if m := nextWeekdayPattern.FindStringSubmatch(text); m != nil {
		if weekday, ok := weekdayIndex(m[1]); ok {
			return cal.NextWeekday(reference, weekday, true), true
		}
	}

	if m := isoDatePattern.FindStringSubmatch(text); m != nil {
		return cal.Date(atoiOr(m[1], 0), atoiOr(m[2], 0), atoiOr(m[3], 0), 0, 0), true
	}

	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		return cal.Date(cal.Year(reference), atoiOr(m[1], 0), atoiOr(m[2], 0), 0, 0), true
	}

	if weekday, ok := parseWeekday(text); ok {
		return cal.NextWeekday(reference, weekday, false), true
	}

	return time.Time{}, false
}

func parseWeekday(text string) (int, bool) {
	m := weekdayPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return weekdayIndex(m[1])
}

// weekdayIndex maps a weekday name or abbreviation to 1..7 with Sunday=1.
func weekdayIndex(name string) (int, bool) {
	switch name {
	case "sunday", "sun":
		return 1, true
	case "monday", "mon":
		return 2, true
	case "tuesday", "tue", "tues":
		return 3, true
	case "wednesday", "wed":
		return 4, true
	case "thursday", "thu", "thur", "thurs":
		return 5, true
	case "friday", "fri":
		return 6, true
	case "saturday", "sat":
		return 7, true
	}
	return 0, false
}

// atoiOr converts digit captures; the patterns guarantee digits, so the
// fallback only covers overflow.
func atoiOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
