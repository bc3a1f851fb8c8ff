package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"salon/config"
	"salon/infras/otel/mocks"
	"salon/internal/domains/availability/model"
	"salon/internal/domains/availability/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailability(t *testing.T, handler http.HandlerFunc) service.Availability {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Client.GatewayURL = srv.URL + "/"

	return service.New(cfg, &http.Client{Timeout: time.Second}, mocks.NewOtel())
}

func TestAvailability_LoadDates(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantOutcome model.Outcome
		wantDates   []string
		wantErr     bool
	}{
		{
			name:        "dates",
			status:      http.StatusOK,
			body:        `["2025-12-13","2025-12-12"]`,
			wantOutcome: model.OutcomeOK,
			wantDates:   []string{"2025-12-12", "2025-12-13"},
		},
		{
			name:        "empty list",
			status:      http.StatusOK,
			body:        `[]`,
			wantOutcome: model.OutcomeEmpty,
			wantDates:   []string{},
		},
		{
			name:        "object instead of list",
			status:      http.StatusOK,
			body:        `{"ok":false,"msg":"apps-script 500"}`,
			wantOutcome: model.OutcomeMalformed,
			wantDates:   []string{},
		},
		{
			name:        "null",
			status:      http.StatusOK,
			body:        `null`,
			wantOutcome: model.OutcomeMalformed,
			wantDates:   []string{},
		},
		{
			name:    "gateway error status",
			status:  http.StatusBadGateway,
			body:    `{"ok":false,"msg":"apps-script 500"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAvailability(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/dates", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			res, err := svc.LoadDates(context.Background())

			if tt.wantErr {
				require.ErrorIs(t, err, model.ErrTransport)
				assert.Equal(t, 0, res.Set.Len())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantDates, res.Set.Sorted())
		})
	}
}

func TestAvailability_LoadTimes(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOutcome model.Outcome
		wantTimes   []string
	}{
		{name: "slots", body: `["10:00","11:00"]`, wantOutcome: model.OutcomeOK, wantTimes: []string{"10:00", "11:00"}},
		{name: "fully booked", body: `[]`, wantOutcome: model.OutcomeEmpty, wantTimes: []string{}},
		{name: "malformed", body: `<html>`, wantOutcome: model.OutcomeMalformed},
		{name: "numbers", body: `[1,2]`, wantOutcome: model.OutcomeMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAvailability(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/times", r.URL.Path)
				assert.Equal(t, "2025-12-12", r.URL.Query().Get("date"))
				_, _ = w.Write([]byte(tt.body))
			})

			res, err := svc.LoadTimes(context.Background(), "2025-12-12")

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, "2025-12-12", res.Slots.Date)

			if tt.wantTimes == nil {
				assert.Empty(t, res.Slots.Times)
			} else {
				assert.Equal(t, tt.wantTimes, res.Slots.Times)
			}
		})
	}
}

func TestAvailability_LoadTimesEncodesDate(t *testing.T) {
	svc := newAvailability(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "a b&c", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := svc.LoadTimes(context.Background(), "a b&c")

	require.NoError(t, err)
}

func TestAvailability_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Client.GatewayURL = srv.URL

	svc := service.New(cfg, &http.Client{Timeout: 50 * time.Millisecond}, mocks.NewOtel())

	_, err := svc.LoadTimes(context.Background(), "2025-12-12")

	require.ErrorIs(t, err, model.ErrTransport)
}
