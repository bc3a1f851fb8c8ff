package selection_test

import (
	availability "salon/internal/domains/availability/model"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/selection"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "2025-12-10"

func TestChooseDate(t *testing.T) {
	dates := availability.NewDateSet("2025-12-09", "2025-12-10", "2025-12-12")
	start := model.Selection{Date: "2025-12-10", Time: "10:00", ServiceID: "cut"}

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "available future date", date: "2025-12-12"},
		{name: "available today", date: "2025-12-10"},
		{name: "not in set", date: "2025-12-11", wantErr: true},
		{name: "in set but past", date: "2025-12-09", wantErr: true},
		{name: "not a date", date: "tomorrow", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects, err := selection.ChooseDate(start, tt.date, dates, today)

			if tt.wantErr {
				require.ErrorIs(t, err, selection.ErrInvalidTransition)
				assert.Equal(t, start, next)
				assert.Empty(t, effects)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.Selection{Date: tt.date}, next)
			assert.Equal(t, model.StateDateChosen, next.State())
			assert.Contains(t, effects, model.Effect{Kind: model.EffectLoadTimes, Date: tt.date})
		})
	}
}

func TestChooseDateRejectsEveryDateOutsideSet(t *testing.T) {
	dates := availability.NewDateSet("2025-12-12")
	start := model.Selection{}

	for day := 1; day <= 31; day++ {
		date := time.Date(2025, time.December, day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
		if dates.Contains(date) {
			continue
		}

		next, _, err := selection.ChooseDate(start, date, dates, "2025-12-01")

		assert.ErrorIs(t, err, selection.ErrInvalidTransition, date)
		assert.Equal(t, start, next, date)
	}
}

func TestChooseTime(t *testing.T) {
	current := availability.Slots{Date: "2025-12-12", Times: []string{"10:00", "11:00"}}
	stale := availability.Slots{Date: "2025-12-13", Times: []string{"15:00"}}

	tests := []struct {
		name    string
		sel     model.Selection
		time    string
		slots   availability.Slots
		wantErr bool
	}{
		{name: "offered slot", sel: model.Selection{Date: "2025-12-12"}, time: "11:00", slots: current},
		{name: "re-pick clears service", sel: model.Selection{Date: "2025-12-12", Time: "10:00", ServiceID: "cut"}, time: "11:00", slots: current},
		{name: "slot not offered", sel: model.Selection{Date: "2025-12-12"}, time: "12:00", slots: current, wantErr: true},
		{name: "slot from stale date list", sel: model.Selection{Date: "2025-12-12"}, time: "15:00", slots: stale, wantErr: true},
		{name: "no date chosen", sel: model.Selection{}, time: "10:00", slots: current, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects, err := selection.ChooseTime(tt.sel, tt.time, tt.slots)

			if tt.wantErr {
				require.ErrorIs(t, err, selection.ErrInvalidTransition)
				assert.Equal(t, tt.sel, next)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.Selection{Date: tt.sel.Date, Time: tt.time}, next)
			assert.Contains(t, effects, model.Effect{Kind: model.EffectOpenServiceStep})
		})
	}
}

func TestChooseService(t *testing.T) {
	timeChosen := model.Selection{Date: "2025-12-12", Time: "11:00"}

	next, _, err := selection.ChooseService(timeChosen, "cut")
	require.NoError(t, err)
	assert.Equal(t, model.StateServiceChosen, next.State())

	next, _, err = selection.ChooseService(next, "treat")
	require.NoError(t, err)
	assert.Equal(t, "treat", next.ServiceID)

	unchanged, _, err := selection.ChooseService(timeChosen, "perm")
	require.ErrorIs(t, err, selection.ErrInvalidTransition)
	assert.Equal(t, timeChosen, unchanged)

	dateOnly := model.Selection{Date: "2025-12-12"}
	unchanged, _, err = selection.ChooseService(dateOnly, "cut")
	require.ErrorIs(t, err, selection.ErrInvalidTransition)
	assert.Equal(t, dateOnly, unchanged)
}

func TestCancelAndCompleted(t *testing.T) {
	full := model.Selection{Date: "2025-12-12", Time: "11:00", ServiceID: "cut"}

	next, effects, err := selection.Cancel(full)
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, next.State())
	assert.Empty(t, effects)

	next, effects, err = selection.Completed(full)
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, next.State())

	loads := 0
	for _, effect := range effects {
		if effect.Kind == model.EffectLoadDates {
			loads++
		}
	}

	assert.Equal(t, 1, loads)
}

func TestReady(t *testing.T) {
	_, err := selection.Ready(model.Selection{Date: "2025-12-12", Time: "11:00"})
	require.ErrorIs(t, err, selection.ErrNotReady)

	service, err := selection.Ready(model.Selection{Date: "2025-12-12", Time: "11:00", ServiceID: "color"})
	require.NoError(t, err)
	assert.Equal(t, 1200, service.Price)
}

func TestScenarioWalkthrough(t *testing.T) {
	dates := availability.NewDateSet("2025-12-12")

	sel, _, err := selection.ChooseDate(model.Selection{}, "2025-12-12", dates, today)
	require.NoError(t, err)
	assert.Equal(t, model.StateDateChosen, sel.State())

	slots := availability.Slots{Date: "2025-12-12", Times: []string{"10:00", "11:00"}}

	sel, _, err = selection.ChooseTime(sel, "11:00", slots)
	require.NoError(t, err)
	assert.Equal(t, model.StateTimeChosen, sel.State())

	sel, _, err = selection.ChooseService(sel, "cut")
	require.NoError(t, err)
	assert.Equal(t, model.StateServiceChosen, sel.State())
}
