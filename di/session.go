package di

import (
	availabilityService "salon/internal/domains/availability/service"
	bookingService "salon/internal/domains/booking/service"
	"salon/internal/session"
)

// NewSession uses the salon clock.
func NewSession(availability availabilityService.Availability, booking bookingService.Booking) *session.Session {
	return session.New(availability, booking)
}
