package nlp

import "regexp"

const weekdayAlternation = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun`

// Erasure alternations list longer spellings first so "tues", "days" or
// "minutes" are removed whole instead of leaving a suffix behind.
const (
	weekdayErasure  = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues|tue|wed|thurs|thur|thu|fri|sat|sun`
	minuteUnits     = `minutes|mins|min|m`
	recurrenceUnits = `days|day|weeks|week|months|month|years|year`
)

// Extraction patterns run against the lower-cased input.
var (
	tagPattern     = regexp.MustCompile(`#([A-Za-z0-9_\-/]+)`)
	projectPattern = regexp.MustCompile(`@([A-Za-z0-9_\-/]+)`)

	everyPattern = regexp.MustCompile(`every\s+(\d+)\s+(day|days|week|weeks|month|months|year|years)`)

	reminderBeforePattern = regexp.MustCompile(`(remind|alert)\s+(\d+)\s*(m|min|mins|minutes)\s+before`)
	reminderAtPattern     = regexp.MustCompile(`(remind|alert)\s+at\s+([0-9]{1,2}(:[0-9]{2})?\s*(am|pm)?)`)

	hoursMinutesPattern = regexp.MustCompile(`(\d+)\s*h\s*(\d+)\s*m`)
	decimalHoursPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*h`)
	minutesPattern      = regexp.MustCompile(`(\d+)\s*(m|min|mins|minutes)`)

	nextWeekdayPattern = regexp.MustCompile(`next\s+(` + weekdayAlternation + `)`)
	isoDatePattern     = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	monthDayPattern    = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)
	weekdayPattern     = regexp.MustCompile(`(` + weekdayAlternation + `)`)

	timeRangePattern    = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*-\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	clockTimePattern    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	meridiemTimePattern = regexp.MustCompile(`(\d{1,2})\s*(am|pm)`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// titlePatterns erase every recognizable signal from the original-case text.
// Order matters: each pattern runs over the output of the previous one.
var titlePatterns = compileTitlePatterns(
	`#[A-Za-z0-9_\-/]+`,
	`@[A-Za-z0-9_\-/]+`,
	`/(done|icebox|dropped|drop)`,
	`(remind|alert)\s+\d+\s*(`+minuteUnits+`)\s+before`,
	`(remind|alert)\s+at\s+[0-9]{1,2}(:[0-9]{2})?\s*(am|pm)?`,
	`\d{4}-\d{2}-\d{2}`,
	`\d{1,2}/\d{1,2}`,
	`today|tomorrow|next\s+\w+|`+weekdayErasure,
	`\d+\s*h\s*\d+\s*m`,
	`\d+(?:\.\d+)?\s*h`,
	`\d+\s*(`+minuteUnits+`)`,
	`\d{1,2}(:\d{2})?\s*(am|pm)?\s*-\s*\d{1,2}(:\d{2})?\s*(am|pm)?`,
	`\d{1,2}:\d{2}`,
	`\d{1,2}\s*(am|pm)`,
	`every\s+\d+\s+(`+recurrenceUnits+`)`,
	`every\s+\w+`,
	`daily|weekly|monthly|yearly`,
	`!!!|!!|!|\bp1\b|\bp2\b|\bhigh\b|\blow\b|\bnormal\b|\bcritical\b`,
)

// compileTitlePatterns compiles case-insensitively: detection runs on the
// lower-cased text, so "Monday" and "monday" are the same signal.
func compileTitlePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+expr))
	}
	return out
}
