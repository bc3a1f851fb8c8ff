package model

import "net/http"

// Action selects the upstream operation through the `action` query parameter.
type Action string

const (
	ActionDates Action = "dates"
	ActionTimes Action = "times"
	ActionBook  Action = "book"
)

func (a Action) String() string {
	return string(a)
}

// Method is the HTTP method the upstream expects for the action.
func (a Action) Method() string {
	if a == ActionBook {
		return http.MethodPost
	}

	return http.MethodGet
}

// Reply is a successful upstream answer, forwarded to the caller as is.
type Reply struct {
	Status int
	Body   []byte
}

// Health is the /health probe result.
type Health struct {
	OK     bool   `json:"ok"`
	Status int    `json:"status"`
	Sample string `json:"sample"`
}

// Diagnostics is the /diag probe result.
type Diagnostics struct {
	OK              bool   `json:"ok"`
	EnvLen          int    `json:"envLen"`
	StartsWithHTTPS bool   `json:"startsWithHttps"`
	URL             string `json:"url"`
	Status          int    `json:"status"`
	BodySample      string `json:"bodySample"`
}
