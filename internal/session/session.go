// Package session runs one customer's booking workflow: it owns the Selection, performs
// the effects the state machine asks for and turns every outcome into a Status.
package session

import (
	"context"
	"errors"
	"fmt"
	availability "salon/internal/domains/availability/model"
	availabilityService "salon/internal/domains/availability/service"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/selection"
	bookingService "salon/internal/domains/booking/service"
	"salon/shared/failure"
	"salon/shared/timezone"
	"sync"

	"github.com/rs/zerolog/log"
)

// Snapshot is a consistent copy of the session for rendering.
type Snapshot struct {
	Selection       model.Selection
	State           model.State
	Dates           availability.DateSet
	DatesOutcome    availability.Outcome
	Slots           availability.Slots
	TimesOutcome    availability.Outcome
	ServiceStepOpen bool
	Submitting      bool
	DatesStatus     Status
	TimesStatus     Status
	BookingStatus   Status
	Today           string
}

type Option func(*Session)

// WithClock overrides how today's date is read.
func WithClock(today func() string) Option {
	return func(s *Session) {
		s.today = today
	}
}

type Session struct {
	availability availabilityService.Availability
	booking      bookingService.Booking
	today        func() string
	render       func(Snapshot)

	mu              sync.Mutex
	sel             model.Selection
	dates           availability.DateSet
	datesOutcome    availability.Outcome
	slots           availability.Slots
	timesOutcome    availability.Outcome
	timesGeneration uint64
	serviceStep     bool
	submitting      bool
	datesStatus     Status
	timesStatus     Status
	bookingStatus   Status
}

func New(avail availabilityService.Availability, booking bookingService.Booking, opts ...Option) *Session {
	s := &Session{
		availability: avail,
		booking:      booking,
		today:        timezone.Today,
		dates:        availability.NewDateSet(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SetRenderer registers a callback run whenever a transition asks for a redraw.
func (s *Session) SetRenderer(render func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.render = render
}

// Binding reports where bookings from this session are posted.
func (s *Session) Binding() model.Binding {
	return s.booking.Binding()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	dates := make(availability.DateSet, len(s.dates))
	for d := range s.dates {
		dates[d] = struct{}{}
	}

	slots := availability.Slots{Date: s.slots.Date, Times: append([]string(nil), s.slots.Times...)}

	return Snapshot{
		Selection:       s.sel,
		State:           s.sel.State(),
		Dates:           dates,
		DatesOutcome:    s.datesOutcome,
		Slots:           slots,
		TimesOutcome:    s.timesOutcome,
		ServiceStepOpen: s.serviceStep,
		Submitting:      s.submitting,
		DatesStatus:     s.datesStatus,
		TimesStatus:     s.timesStatus,
		BookingStatus:   s.bookingStatus,
		Today:           s.today(),
	}
}

// ReloadDates replaces the available date set. On failure the previous set is kept.
func (s *Session) ReloadDates(ctx context.Context) Status {
	s.setStatus(&s.datesStatus, Status{Message: MessageLoadingDates, Level: LevelBusy})

	res, err := s.availability.LoadDates(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Msg("failed to load available dates")

		s.datesStatus = Status{Message: MessageDatesFailed, Level: LevelError}

		return s.datesStatus
	}

	s.dates = res.Set
	s.datesOutcome = res.Outcome

	switch res.Outcome {
	case availability.OutcomeOK:
		s.datesStatus = Status{Message: fmt.Sprintf(MessageFoundDates, res.Set.Len()), Level: LevelInfo}
	case availability.OutcomeMalformed:
		s.datesStatus = Status{Message: MessageDatesMalformed, Level: LevelInfo}
	default:
		s.datesStatus = Status{Message: MessageNoDates, Level: LevelInfo}
	}

	return s.datesStatus
}

// ChooseDate selects date and loads its time slots. The choose methods refuse to
// change the selection while a submission is in flight.
func (s *Session) ChooseDate(ctx context.Context, date string) error {
	s.mu.Lock()

	if s.submitting {
		s.mu.Unlock()

		return bookingService.ErrSubmissionInFlight
	}

	next, effects, err := selection.ChooseDate(s.sel, date, s.dates, s.today())
	if err != nil {
		s.mu.Unlock()

		return err
	}

	s.sel = next
	s.serviceStep = false
	s.slots = availability.Slots{Date: date}
	s.timesOutcome = 0
	s.bookingStatus = Status{}
	s.mu.Unlock()

	s.run(ctx, effects)

	return nil
}

func (s *Session) ChooseTime(ctx context.Context, t string) error {
	s.mu.Lock()

	if s.submitting {
		s.mu.Unlock()

		return bookingService.ErrSubmissionInFlight
	}

	next, effects, err := selection.ChooseTime(s.sel, t, s.slots)
	if err != nil {
		s.mu.Unlock()

		return err
	}

	s.sel = next
	s.mu.Unlock()

	s.run(ctx, effects)

	return nil
}

func (s *Session) ChooseService(ctx context.Context, id string) error {
	s.mu.Lock()

	if s.submitting {
		s.mu.Unlock()

		return bookingService.ErrSubmissionInFlight
	}

	next, effects, err := selection.ChooseService(s.sel, id)
	if err != nil {
		s.mu.Unlock()

		return err
	}

	s.sel = next
	s.mu.Unlock()

	s.run(ctx, effects)

	return nil
}

// Cancel returns to Idle. Any times fetch still in flight is discarded when it lands.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return
	}

	s.sel, _, _ = selection.Cancel(s.sel)
	s.serviceStep = false
	s.slots = availability.Slots{}
	s.timesOutcome = 0
	s.timesGeneration++
	s.timesStatus = Status{}
}

// Submit sends the current selection. A failed booking leaves the selection in place so
// the customer can retry; a successful one resets it and reloads the dates once.
func (s *Session) Submit(ctx context.Context, contact dto.ContactInfo) (model.BookingResult, error) {
	s.mu.Lock()

	if s.submitting {
		s.mu.Unlock()

		return model.BookingResult{}, bookingService.ErrSubmissionInFlight
	}

	sel := s.sel
	s.submitting = true
	s.bookingStatus = Status{Message: MessageSubmitting, Level: LevelBusy}
	s.mu.Unlock()

	res, err := s.booking.Submit(ctx, sel, contact)

	s.mu.Lock()
	s.submitting = false

	if err != nil {
		s.bookingStatus = submitErrorStatus(err)
		s.mu.Unlock()

		return res, err
	}

	if !res.OK {
		s.bookingStatus = failedStatus(res)
		s.mu.Unlock()

		return res, nil
	}

	next, effects, _ := selection.Completed(s.sel)
	s.sel = next
	s.serviceStep = false
	s.slots = availability.Slots{}
	s.timesOutcome = 0
	s.timesGeneration++
	s.timesStatus = Status{}
	s.bookingStatus = Status{Message: MessageBookingOK, Level: LevelSuccess}
	s.mu.Unlock()

	s.run(ctx, effects)

	return res, nil
}

func (s *Session) run(ctx context.Context, effects []model.Effect) {
	for _, effect := range effects {
		switch effect.Kind {
		case model.EffectLoadTimes:
			s.loadTimes(ctx, effect.Date)
		case model.EffectLoadDates:
			s.ReloadDates(ctx)
		case model.EffectOpenServiceStep:
			s.mu.Lock()
			s.serviceStep = true
			s.mu.Unlock()
		case model.EffectRender:
			s.mu.Lock()
			render, snap := s.render, s.snapshotLocked()
			s.mu.Unlock()

			if render != nil {
				render(snap)
			}
		}
	}
}

// loadTimes tags the fetch with date and a generation. A reply is applied only while
// both still match, so a slow answer for an earlier date never replaces a newer one.
func (s *Session) loadTimes(ctx context.Context, date string) {
	s.mu.Lock()
	s.timesGeneration++
	generation := s.timesGeneration
	s.timesStatus = Status{Message: MessageLoadingTimes, Level: LevelBusy}
	s.mu.Unlock()

	res, err := s.availability.LoadTimes(ctx, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.timesGeneration || s.sel.Date != date {
		log.Debug().Str("date", date).Uint64("generation", generation).Msg("discarding stale times")

		return
	}

	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to load times")

		s.slots = availability.Slots{Date: date}
		s.timesStatus = Status{Message: MessageTimesFailed, Level: LevelError}

		return
	}

	s.slots = res.Slots
	s.timesOutcome = res.Outcome

	if len(res.Slots.Times) == 0 {
		s.timesStatus = Status{Message: MessageFullyBooked, Level: LevelInfo}

		return
	}

	s.timesStatus = Status{}
}

func (s *Session) setStatus(target *Status, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	*target = status
}

func submitErrorStatus(err error) Status {
	switch {
	case errors.Is(err, bookingService.ErrMissingContact):
		return Status{Message: MessageMissingContact, Level: LevelError}
	case errors.Is(err, selection.ErrNotReady):
		return Status{Message: MessageIncomplete, Level: LevelError}
	case errors.Is(err, bookingService.ErrSubmissionInFlight):
		return Status{Message: MessageAlreadyBooking, Level: LevelBusy}
	case failure.IsValidation(err):
		return Status{Message: fmt.Sprintf(MessageInvalidContact, err.Error()), Level: LevelError}
	default:
		return Status{Message: MessageNetworkFailure, Level: LevelError}
	}
}

func failedStatus(res model.BookingResult) Status {
	if res.Message == bookingService.MessageNetworkFailure {
		return Status{Message: MessageNetworkFailure, Level: LevelError}
	}

	return Status{Message: fmt.Sprintf(MessageBookingFailed, res.Message), Level: LevelError}
}
