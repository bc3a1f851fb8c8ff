package session

const (
	MessageLoadingDates   = "loading available dates..."
	MessageFoundDates     = "found %d available dates"
	MessageDatesFailed    = "failed to load available dates"
	MessageNoDates        = "no available dates"
	MessageDatesMalformed = "no available dates (unexpected reply)"
	MessageLoadingTimes   = "loading times..."
	MessageFullyBooked    = "fully booked / closed"
	MessageTimesFailed    = "failed to load times"
	MessageSubmitting     = "booking..."
	MessageBookingOK      = "booking confirmed"
	MessageBookingFailed  = "booking failed: %s"
	MessageNetworkFailure = "network failure"
	MessageMissingContact = "please enter name and phone"
	MessageIncomplete     = "please choose a date, time and service"
	MessageAlreadyBooking = "a booking is already being sent"
	MessageInvalidContact = "invalid contact details: %s"
)

type Level int

const (
	LevelNone Level = iota
	LevelBusy
	LevelInfo
	LevelSuccess
	LevelError
)

// Status is one user-facing line of feedback.
type Status struct {
	Message string
	Level   Level
}
