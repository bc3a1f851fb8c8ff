package session_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"salon/config"
	"salon/infras/otel/mocks"
	availabilityMocks "salon/internal/domains/availability/mocks"
	availability "salon/internal/domains/availability/model"
	bookingMocks "salon/internal/domains/booking/mocks"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/selection"
	bookingService "salon/internal/domains/booking/service"
	"salon/internal/session"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	today = "2025-12-01"
	day   = "2025-12-12"
)

var contact = dto.ContactInfo{CustomerName: "A", Phone: "0123456789"}

func clock() string {
	return today
}

func dates(values ...string) availability.Dates {
	outcome := availability.OutcomeOK
	if len(values) == 0 {
		outcome = availability.OutcomeEmpty
	}

	return availability.Dates{Set: availability.NewDateSet(values...), Outcome: outcome}
}

func times(date string, values ...string) availability.Times {
	outcome := availability.OutcomeOK
	if len(values) == 0 {
		outcome = availability.OutcomeEmpty
	}

	return availability.Times{Slots: availability.Slots{Date: date, Times: values}, Outcome: outcome}
}

// readySession walks a session to ServiceChosen on day at 11:00 with "cut".
func readySession(t *testing.T, avail *availabilityMocks.MockAvailability, booking bookingService.Booking) *session.Session {
	t.Helper()

	avail.EXPECT().LoadDates(gomock.Any()).Return(dates(day), nil)
	avail.EXPECT().LoadTimes(gomock.Any(), day).Return(times(day, "10:00", "11:00"), nil)

	s := session.New(avail, booking, session.WithClock(clock))
	ctx := context.Background()

	s.ReloadDates(ctx)
	require.NoError(t, s.ChooseDate(ctx, day))
	require.NoError(t, s.ChooseTime(ctx, "11:00"))
	require.NoError(t, s.ChooseService(ctx, "cut"))
	require.Equal(t, model.StateServiceChosen, s.Snapshot().State)

	return s
}

func TestSession_ScenarioBookingAgainstStubUpstream(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/api/book", r.URL.Path)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Client.GatewayURL = srv.URL

	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)
	booking := bookingService.New(cfg, srv.Client(), nil, mocks.NewOtel())

	s := readySession(t, avail, booking)

	avail.EXPECT().LoadDates(gomock.Any()).Return(dates(), nil).Times(1)

	res, err := s.Submit(context.Background(), contact)

	require.NoError(t, err)
	assert.Equal(t, model.BookingResult{OK: true}, res)
	assert.Equal(t, int32(1), hits.Load())

	snap := s.Snapshot()
	assert.Equal(t, model.StateIdle, snap.State)
	assert.Equal(t, model.Selection{}, snap.Selection)
	assert.False(t, snap.ServiceStepOpen)
	assert.Equal(t, session.MessageBookingOK, snap.BookingStatus.Message)
	assert.Equal(t, session.MessageNoDates, snap.DatesStatus.Message)
}

func TestSession_FailedSubmissionKeepsSelection(t *testing.T) {
	tests := []struct {
		name        string
		result      model.BookingResult
		wantMessage string
	}{
		{
			name:        "transport failure",
			result:      model.BookingResult{Message: bookingService.MessageNetworkFailure},
			wantMessage: session.MessageNetworkFailure,
		},
		{
			name:        "upstream rejection",
			result:      model.BookingResult{Message: "slot taken"},
			wantMessage: "booking failed: slot taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			avail := availabilityMocks.NewMockAvailability(ctrl)
			booking := bookingMocks.NewMockBooking(ctrl)

			s := readySession(t, avail, booking)
			before := s.Snapshot().Selection

			booking.EXPECT().Submit(gomock.Any(), before, contact).Return(tt.result, nil)

			res, err := s.Submit(context.Background(), contact)

			require.NoError(t, err)
			assert.False(t, res.OK)

			snap := s.Snapshot()
			assert.Equal(t, model.StateServiceChosen, snap.State)
			assert.Equal(t, before, snap.Selection)
			assert.Equal(t, tt.wantMessage, snap.BookingStatus.Message)
			assert.Equal(t, session.LevelError, snap.BookingStatus.Level)
		})
	}
}

func TestSession_EmptyContactNeverReachesNetwork(t *testing.T) {
	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Client.GatewayURL = srv.URL

	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)
	s := readySession(t, avail, bookingService.New(cfg, srv.Client(), nil, mocks.NewOtel()))

	for _, c := range []dto.ContactInfo{{CustomerName: "A"}, {Phone: "0123456789"}, {}} {
		_, err := s.Submit(context.Background(), c)

		require.ErrorIs(t, err, bookingService.ErrMissingContact)
		assert.Equal(t, session.MessageMissingContact, s.Snapshot().BookingStatus.Message)
	}

	assert.Equal(t, int32(0), hits.Load())
	assert.Equal(t, model.StateServiceChosen, s.Snapshot().State)
}

func TestSession_SecondSubmitWhilePendingIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)
	booking := bookingMocks.NewMockBooking(ctrl)

	s := readySession(t, avail, booking)

	arrived := make(chan struct{})
	release := make(chan struct{})

	booking.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Selection, dto.ContactInfo) (model.BookingResult, error) {
			close(arrived)
			<-release

			return model.BookingResult{Message: "slot taken"}, nil
		}).
		Times(1)

	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = s.Submit(context.Background(), contact)
	}()

	<-arrived

	assert.True(t, s.Snapshot().Submitting)

	_, err := s.Submit(context.Background(), contact)
	require.ErrorIs(t, err, bookingService.ErrSubmissionInFlight)

	close(release)
	<-done

	assert.False(t, s.Snapshot().Submitting)
}

func TestSession_SelectionFrozenWhileSubmitting(t *testing.T) {
	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)
	booking := bookingMocks.NewMockBooking(ctrl)

	s := readySession(t, avail, booking)
	sent := s.Snapshot().Selection

	arrived := make(chan struct{})
	release := make(chan struct{})

	booking.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Selection, dto.ContactInfo) (model.BookingResult, error) {
			close(arrived)
			<-release

			return model.BookingResult{Message: "slot taken"}, nil
		}).
		Times(1)

	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = s.Submit(context.Background(), contact)
	}()

	<-arrived

	ctx := context.Background()
	require.ErrorIs(t, s.ChooseService(ctx, "color"), bookingService.ErrSubmissionInFlight)
	require.ErrorIs(t, s.ChooseTime(ctx, "10:00"), bookingService.ErrSubmissionInFlight)
	require.ErrorIs(t, s.ChooseDate(ctx, day), bookingService.ErrSubmissionInFlight)

	close(release)
	<-done

	assert.Equal(t, sent, s.Snapshot().Selection)
	assert.Equal(t, model.StateServiceChosen, s.Snapshot().State)
}

func TestSession_StaleTimesAreDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)
	booking := bookingMocks.NewMockBooking(ctrl)

	const (
		first  = "2025-12-12"
		second = "2025-12-13"
	)

	avail.EXPECT().LoadDates(gomock.Any()).Return(dates(first, second), nil)

	arrived := make(chan struct{})
	release := make(chan struct{})

	avail.EXPECT().
		LoadTimes(gomock.Any(), first).
		DoAndReturn(func(context.Context, string) (availability.Times, error) {
			close(arrived)
			<-release

			return times(first, "09:00"), nil
		})
	avail.EXPECT().LoadTimes(gomock.Any(), second).Return(times(second, "15:00"), nil)

	s := session.New(avail, booking, session.WithClock(clock))
	ctx := context.Background()
	s.ReloadDates(ctx)

	done := make(chan error, 1)

	go func() {
		done <- s.ChooseDate(ctx, first)
	}()

	<-arrived

	require.NoError(t, s.ChooseDate(ctx, second))

	close(release)
	require.NoError(t, <-done)

	snap := s.Snapshot()
	assert.Equal(t, second, snap.Selection.Date)
	assert.Equal(t, availability.Slots{Date: second, Times: []string{"15:00"}}, snap.Slots)

	err := s.ChooseTime(ctx, "09:00")
	require.ErrorIs(t, err, selection.ErrInvalidTransition)

	require.NoError(t, s.ChooseTime(ctx, "15:00"))
	assert.True(t, s.Snapshot().ServiceStepOpen)
}

func TestSession_FullyBookedIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)

	avail.EXPECT().LoadDates(gomock.Any()).Return(dates(day), nil)
	avail.EXPECT().LoadTimes(gomock.Any(), day).Return(times(day), nil)

	s := session.New(avail, bookingMocks.NewMockBooking(ctrl), session.WithClock(clock))
	ctx := context.Background()

	s.ReloadDates(ctx)
	require.NoError(t, s.ChooseDate(ctx, day))

	snap := s.Snapshot()
	assert.Equal(t, session.MessageFullyBooked, snap.TimesStatus.Message)
	assert.Equal(t, session.LevelInfo, snap.TimesStatus.Level)
	assert.Equal(t, availability.OutcomeEmpty, snap.TimesOutcome)
}

func TestSession_TimesTransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)

	avail.EXPECT().LoadDates(gomock.Any()).Return(dates(day), nil)
	avail.EXPECT().LoadTimes(gomock.Any(), day).Return(availability.Times{}, availability.ErrTransport)

	s := session.New(avail, bookingMocks.NewMockBooking(ctrl), session.WithClock(clock))
	ctx := context.Background()

	s.ReloadDates(ctx)
	require.NoError(t, s.ChooseDate(ctx, day))

	snap := s.Snapshot()
	assert.Equal(t, session.MessageTimesFailed, snap.TimesStatus.Message)
	assert.Equal(t, session.LevelError, snap.TimesStatus.Level)
	assert.Equal(t, model.StateDateChosen, snap.State)
}

func TestSession_ReloadDatesMessages(t *testing.T) {
	tests := []struct {
		name       string
		dates      availability.Dates
		err        error
		wantStatus session.Status
	}{
		{
			name:       "found",
			dates:      dates("2025-12-12", "2025-12-13"),
			wantStatus: session.Status{Message: fmt.Sprintf(session.MessageFoundDates, 2), Level: session.LevelInfo},
		},
		{
			name:       "zero results",
			dates:      dates(),
			wantStatus: session.Status{Message: session.MessageNoDates, Level: session.LevelInfo},
		},
		{
			name:       "malformed",
			dates:      availability.Dates{Set: availability.NewDateSet(), Outcome: availability.OutcomeMalformed},
			wantStatus: session.Status{Message: session.MessageDatesMalformed, Level: session.LevelInfo},
		},
		{
			name:       "upstream timeout",
			err:        fmt.Errorf("%w: context deadline exceeded", availability.ErrTransport),
			wantStatus: session.Status{Message: session.MessageDatesFailed, Level: session.LevelError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			avail := availabilityMocks.NewMockAvailability(ctrl)

			avail.EXPECT().LoadDates(gomock.Any()).Return(tt.dates, tt.err)

			s := session.New(avail, bookingMocks.NewMockBooking(ctrl), session.WithClock(clock))

			assert.Equal(t, tt.wantStatus, s.ReloadDates(context.Background()))
			assert.Equal(t, tt.wantStatus, s.Snapshot().DatesStatus)
		})
	}

	assert.NotEqual(t, session.MessageDatesFailed, session.MessageNoDates)
}

func TestSession_ReloadFailureKeepsPreviousDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)

	gomock.InOrder(
		avail.EXPECT().LoadDates(gomock.Any()).Return(dates(day), nil),
		avail.EXPECT().LoadDates(gomock.Any()).Return(availability.Dates{}, errors.New("timeout")),
	)

	s := session.New(avail, bookingMocks.NewMockBooking(ctrl), session.WithClock(clock))

	s.ReloadDates(context.Background())
	s.ReloadDates(context.Background())

	assert.True(t, s.Snapshot().Dates.Contains(day))
}

func TestSession_ChooseDateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)

	avail.EXPECT().LoadDates(gomock.Any()).Return(dates("2025-11-30", day), nil)

	s := session.New(avail, bookingMocks.NewMockBooking(ctrl), session.WithClock(clock))
	s.ReloadDates(context.Background())

	for _, date := range []string{"2025-12-11", "2025-11-30"} {
		err := s.ChooseDate(context.Background(), date)

		require.ErrorIs(t, err, selection.ErrInvalidTransition, date)
		assert.Equal(t, model.StateIdle, s.Snapshot().State, date)
	}
}

func TestSession_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)

	s := readySession(t, avail, bookingMocks.NewMockBooking(ctrl))

	s.Cancel()

	snap := s.Snapshot()
	assert.Equal(t, model.StateIdle, snap.State)
	assert.False(t, snap.ServiceStepOpen)
	assert.Empty(t, snap.Slots.Times)
}

func TestSession_RendererCalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	avail := availabilityMocks.NewMockAvailability(ctrl)

	avail.EXPECT().LoadDates(gomock.Any()).Return(dates(day), nil)
	avail.EXPECT().LoadTimes(gomock.Any(), day).Return(times(day, "10:00"), nil)

	var renders int

	s := session.New(avail, bookingMocks.NewMockBooking(ctrl), session.WithClock(clock))
	s.SetRenderer(func(session.Snapshot) { renders++ })

	s.ReloadDates(context.Background())
	require.NoError(t, s.ChooseDate(context.Background(), day))

	assert.Equal(t, 1, renders)
}

func TestSession_Binding(t *testing.T) {
	ctrl := gomock.NewController(t)
	booking := bookingMocks.NewMockBooking(ctrl)
	booking.EXPECT().Binding().Return(model.BindingDirect)

	s := session.New(availabilityMocks.NewMockAvailability(ctrl), booking)

	assert.Equal(t, model.BindingDirect, s.Binding())
}
