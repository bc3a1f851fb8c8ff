package upstream

import (
	"net/http"
	"salon/config"
	"time"
)

const maxRedirects = 10

// ClientHTTP is the client the booking workflow uses to reach the gateway, or the
// upstream itself when bound directly.
type ClientHTTP struct {
	*http.Client
}

// New builds the client used to reach the Apps Script web app. Apps Script answers
// with a redirect to the rendered content, so redirects are followed.
func New(config *config.Config) *http.Client {
	return newClient(config.UpstreamTimeoutSeconds())
}

func NewClient(config *config.Config) ClientHTTP {
	return ClientHTTP{Client: newClient(config.ClientTimeoutSeconds())}
}

func newClient(timeoutSeconds int) *http.Client {
	return &http.Client{
		Timeout:       time.Duration(timeoutSeconds) * time.Second,
		CheckRedirect: followRedirects,
	}
}

func followRedirects(_ *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return http.ErrUseLastResponse
	}

	return nil
}
