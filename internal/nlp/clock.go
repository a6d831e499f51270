package nlp

const (
	meridiemAM = "am"
	meridiemPM = "pm"
)

// parseTimeRange matches "H[:MM][am|pm] - H[:MM][am|pm]". An endpoint
// without a meridiem borrows the other endpoint's. The duration never wraps
// past midnight.
func parseTimeRange(text string) *timeRange {
	m := timeRangePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	startMeridiem, endMeridiem := m[3], m[6]
	start := resolveTime(atoiOr(m[1], 0), atoiOr(m[2], 0), startMeridiem, endMeridiem)
	end := resolveTime(atoiOr(m[4], 0), atoiOr(m[5], 0), endMeridiem, startMeridiem)

	return &timeRange{
		start:           start,
		end:             end,
		durationMinutes: max(0, end.minutes()-start.minutes()),
	}
}

// parseTimePoint matches "H:MM" (taken as-is) before "H am|pm".
func parseTimePoint(text string) *timeOfDay {
	t, ok := parseClock(text)
	if !ok {
		return nil
	}
	return &t
}

// parseClock is shared by time points and "remind at" captures. A clock
// time with minutes ignores any trailing meridiem.
func parseClock(text string) (timeOfDay, bool) {
	if m := clockTimePattern.FindStringSubmatch(text); m != nil {
		return resolveTime(atoiOr(m[1], 0), atoiOr(m[2], 0), "", ""), true
	}
	if m := meridiemTimePattern.FindStringSubmatch(text); m != nil {
		return resolveTime(atoiOr(m[1], 0), 0, m[2], ""), true
	}
	return timeOfDay{}, false
}

// resolveTime converts a 12-hour reading into 24-hour form. An empty
// meridiem falls back to fallback; with neither the hour is kept as-is.
func resolveTime(hour, minute int, meridiem, fallback string) timeOfDay {
	if meridiem == "" {
		meridiem = fallback
	}
	switch {
	case meridiem == meridiemPM && hour < 12:
		hour += 12
	case meridiem == meridiemAM && hour == 12:
		hour = 0
	}
	return timeOfDay{hour: hour, minute: minute}
}
