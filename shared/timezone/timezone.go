package timezone

import (
	"salon/config"
	"salon/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var salonLocation = time.UTC

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, salon dates use UTC")

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, salon dates use UTC. Use an IANA name such as 'Asia/Bangkok'")

		return
	}

	salonLocation = loc
	log.Debug().Str("timezone", loc.String()).Msg("Salon timezone initialized")
}

// Now is the current time at the salon.
func Now() time.Time {
	return time.Now().In(salonLocation)
}

func GetLocation() *time.Location {
	return salonLocation
}

// Date renders t as the salon's YYYY-MM-DD calendar date.
func Date(t time.Time) string {
	return t.In(salonLocation).Format(constant.DateFormat)
}

// Today is the salon's current calendar date. Dates before it cannot be booked.
func Today() string {
	return Date(Now())
}
