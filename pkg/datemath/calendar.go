package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Calendar evaluates day arithmetic in a single timezone with a configured
// first day of the week. A Calendar is immutable and safe for concurrent use.
type Calendar struct {
	location     *time.Location
	firstWeekday time.Weekday
}

// NewCalendar creates a calendar for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewCalendar(timezone string, firstWeekday time.Weekday) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if firstWeekday < time.Sunday || firstWeekday > time.Saturday {
		return nil, fmt.Errorf("invalid first weekday %d", firstWeekday)
	}
	return &Calendar{location: loc, firstWeekday: firstWeekday}, nil
}

// MustCalendar is like NewCalendar for an already loaded location.
func MustCalendar(loc *time.Location, firstWeekday time.Weekday) *Calendar {
	if loc == nil {
		panic("datemath: location is required")
	}
	return &Calendar{location: loc, firstWeekday: firstWeekday}
}

// UTC is a Sunday-first calendar in UTC.
func UTC() *Calendar {
	return MustCalendar(time.UTC, time.Sunday)
}

func (c *Calendar) Location() *time.Location { return c.location }

// StartOfDay returns midnight at the start of the given day in the calendar's timezone.
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// AddDays moves t by n calendar days, keeping the wall clock time.
func (c *Calendar) AddDays(t time.Time, n int) time.Time {
	return t.In(c.location).AddDate(0, 0, n)
}

// Weekday returns 1..7 with Sunday=1.
func (c *Calendar) Weekday(t time.Time) int {
	return int(t.In(c.location).Weekday()) + 1
}

func (c *Calendar) Year(t time.Time) int {
	return t.In(c.location).Year()
}

func (c *Calendar) Components(t time.Time) (year, month, day int) {
	t = t.In(c.location)
	return t.Year(), int(t.Month()), t.Day()
}

// Date assembles an instant from explicit components. Out of range values
// normalize the way time.Date does (month 13 is January of the next year).
func (c *Calendar) Date(year, month, day, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, c.location)
}

// StartOfWeek returns the start of the week containing t.
func (c *Calendar) StartOfWeek(t time.Time) time.Time {
	day := c.StartOfDay(t)
	back := (int(day.Weekday()) - int(c.firstWeekday) + 7) % 7
	return day.AddDate(0, 0, -back)
}

// NextWeekday returns the start of the next day falling on weekday (1..7, Sunday=1).
// When strict is false and from already falls on weekday, from's own day is returned.
func (c *Calendar) NextWeekday(from time.Time, weekday int, strict bool) time.Time {
	daysToAdd := (weekday - c.Weekday(from) + 7) % 7
	if daysToAdd == 0 && strict {
		daysToAdd = 7
	}
	return c.StartOfDay(c.AddDays(from, daysToAdd))
}

// DaysBetween counts whole 24h periods from from to to; negative when to is earlier.
func (c *Calendar) DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Resolve converts a relative date phrase ("today", "in 3 days", "next friday")
// into the start of the matching day.
func (c *Calendar) Resolve(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return c.StartOfDay(baseTime), nil
	case "tomorrow":
		return c.StartOfDay(c.AddDays(baseTime, 1)), nil
	case "yesterday":
		return c.StartOfDay(c.AddDays(baseTime, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return c.resolveInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return c.resolveNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unrecognized relative date: %q", relative)
}

// resolveInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (c *Calendar) resolveInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]
	base := baseTime.In(c.location)

	switch {
	case strings.HasPrefix(unit, "day"):
		return c.StartOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return c.StartOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return c.StartOfDay(base.AddDate(0, amount, 0)), nil
	}
}

func (c *Calendar) resolveNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return c.NextWeekday(baseTime, int(target)+1, true), nil
}
