package gcalendar

import "time"

type CreateEventRequest struct {
	CalendarID      string
	Summary         string
	Description     string
	StartTime       time.Time
	EndTime         time.Time
	Timezone        string // IANA name, e.g. "Europe/Berlin"
	ReminderMinutes *int
}

type Event struct {
	ID        string
	Summary   string
	HTMLLink  string
	StartTime time.Time
	EndTime   time.Time
}

type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
