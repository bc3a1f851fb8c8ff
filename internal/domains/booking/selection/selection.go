// Package selection holds the booking state machine. Every transition is a pure function
// of the current Selection and its input; a rejected transition returns the Selection it
// was given together with an error wrapping ErrInvalidTransition.
package selection

import (
	"errors"
	"fmt"
	availability "salon/internal/domains/availability/model"
	"salon/internal/domains/booking/model"
	"salon/shared/constant"
	"time"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNotReady          = errors.New("selection is not complete")
)

// ChooseDate picks a bookable date on or after today. Time and service are cleared.
func ChooseDate(sel model.Selection, date string, dates availability.DateSet, today string) (model.Selection, []model.Effect, error) {
	if _, err := time.Parse(constant.DateFormat, date); err != nil {
		return sel, nil, fmt.Errorf("%w: %q is not a date", ErrInvalidTransition, date)
	}

	if !dates.Contains(date) {
		return sel, nil, fmt.Errorf("%w: %s is not available", ErrInvalidTransition, date)
	}

	if date < today {
		return sel, nil, fmt.Errorf("%w: %s is in the past", ErrInvalidTransition, date)
	}

	next := model.Selection{Date: date}

	return next, []model.Effect{{Kind: model.EffectLoadTimes, Date: date}, {Kind: model.EffectRender}}, nil
}

// ChooseTime picks a slot from the list most recently loaded for the chosen date.
func ChooseTime(sel model.Selection, t string, slots availability.Slots) (model.Selection, []model.Effect, error) {
	if sel.State() < model.StateDateChosen {
		return sel, nil, fmt.Errorf("%w: choose a date first", ErrInvalidTransition)
	}

	if !slots.Contains(sel.Date, t) {
		return sel, nil, fmt.Errorf("%w: %s is not offered on %s", ErrInvalidTransition, t, sel.Date)
	}

	next := model.Selection{Date: sel.Date, Time: t}

	return next, []model.Effect{{Kind: model.EffectOpenServiceStep}, {Kind: model.EffectRender}}, nil
}

// ChooseService picks a catalog service once a time is chosen.
func ChooseService(sel model.Selection, id string) (model.Selection, []model.Effect, error) {
	if sel.State() < model.StateTimeChosen {
		return sel, nil, fmt.Errorf("%w: choose a time first", ErrInvalidTransition)
	}

	if _, ok := model.FindService(id); !ok {
		return sel, nil, fmt.Errorf("%w: unknown service %q", ErrInvalidTransition, id)
	}

	next := sel
	next.ServiceID = id

	return next, []model.Effect{{Kind: model.EffectRender}}, nil
}

// Cancel abandons the selection from any state.
func Cancel(_ model.Selection) (model.Selection, []model.Effect, error) {
	return model.Selection{}, nil, nil
}

// Completed runs after a successful booking: the selection is cleared and the dates are
// fetched again exactly once.
func Completed(_ model.Selection) (model.Selection, []model.Effect, error) {
	return model.Selection{}, []model.Effect{{Kind: model.EffectLoadDates}, {Kind: model.EffectRender}}, nil
}

// Ready checks that sel can be submitted and returns the chosen service.
func Ready(sel model.Selection) (model.ServiceOption, error) {
	if sel.State() != model.StateServiceChosen {
		return model.ServiceOption{}, ErrNotReady
	}

	service, ok := model.FindService(sel.ServiceID)
	if !ok {
		return model.ServiceOption{}, fmt.Errorf("%w: unknown service %q", ErrNotReady, sel.ServiceID)
	}

	return service, nil
}
