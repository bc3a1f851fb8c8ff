package selection

import (
	availability "salon/internal/domains/availability/model"
	"salon/shared/constant"
	"time"
)

// Day is one cell of a month grid.
type Day struct {
	Date       string
	Day        int
	Available  bool
	Past       bool
	Selectable bool
}

// MonthGrid lays out a month with Sunday as the first column.
type MonthGrid struct {
	Year    int
	Month   time.Month
	Leading int
	Days    []Day
}

func Month(year int, month time.Month, dates availability.DateSet, today string) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	count := first.AddDate(0, 1, -1).Day()

	grid := MonthGrid{
		Year:    first.Year(),
		Month:   first.Month(),
		Leading: int(first.Weekday()),
		Days:    make([]Day, 0, count),
	}

	for day := 1; day <= count; day++ {
		date := time.Date(grid.Year, grid.Month, day, 0, 0, 0, 0, time.UTC).Format(constant.DateFormat)
		available := dates.Contains(date)
		past := date < today

		grid.Days = append(grid.Days, Day{
			Date:       date,
			Day:        day,
			Available:  available,
			Past:       past,
			Selectable: available && !past,
		})
	}

	return grid
}

// Shift moves month by delta months, normalizing the year.
func Shift(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)

	return t.Year(), t.Month()
}
