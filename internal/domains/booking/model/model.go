package model

const (
	EntityName = "booking"

	// ActionCreateBooking is the operation name the upstream expects in the payload.
	ActionCreateBooking = "createBooking"
)

// ServiceOption is one entry of the static service catalog.
type ServiceOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

var Catalog = []ServiceOption{
	{ID: "cut", Name: "ตัดผม", Price: 250},
	{ID: "color", Name: "ทำสี", Price: 1200},
	{ID: "treat", Name: "ทรีตเมนต์", Price: 890},
}

func FindService(id string) (ServiceOption, bool) {
	for _, option := range Catalog {
		if option.ID == id {
			return option, true
		}
	}

	return ServiceOption{}, false
}

type State int

const (
	StateIdle State = iota
	StateDateChosen
	StateTimeChosen
	StateServiceChosen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDateChosen:
		return "date_chosen"
	case StateTimeChosen:
		return "time_chosen"
	case StateServiceChosen:
		return "service_chosen"
	default:
		return "unknown"
	}
}

// Selection is what a customer has picked so far. Time only means something with a
// date, and the service only with both.
type Selection struct {
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	ServiceID string `json:"serviceId,omitempty"`
}

func (s Selection) State() State {
	switch {
	case s.Date == "":
		return StateIdle
	case s.Time == "":
		return StateDateChosen
	case s.ServiceID == "":
		return StateTimeChosen
	default:
		return StateServiceChosen
	}
}

type EffectKind int

const (
	EffectLoadTimes EffectKind = iota + 1
	EffectOpenServiceStep
	EffectLoadDates
	EffectRender
)

func (k EffectKind) String() string {
	switch k {
	case EffectLoadTimes:
		return "load_times"
	case EffectOpenServiceStep:
		return "open_service_step"
	case EffectLoadDates:
		return "load_dates"
	case EffectRender:
		return "render"
	default:
		return "unknown"
	}
}

// Effect is work a transition asks its caller to perform.
type Effect struct {
	Kind EffectKind
	Date string
}

// BookingResult is the normalized outcome of one submission.
type BookingResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// Binding selects where a booking is posted.
type Binding string

const (
	BindingGateway Binding = "gateway"
	BindingDirect  Binding = "direct"
)
