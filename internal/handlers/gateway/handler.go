package gateway

import (
	"io"
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/gateway/model"
	"salon/internal/domains/gateway/model/dto"
	"salon/internal/domains/gateway/service"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxBookingBody = 8 << 20

type Handler struct {
	service service.Gateway
	otel    otel.Otel
}

func New(service service.Gateway, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Get("/dates", handler.GetDates)
		routerGroup.Get("/times", handler.GetTimes)
		routerGroup.Post("/book", handler.Book)
		routerGroup.Options("/dates", handler.Preflight)
		routerGroup.Options("/times", handler.Preflight)
		routerGroup.Options("/book", handler.Preflight)
	})
}

// GetDates relays the list of bookable dates.
func (handler *Handler) GetDates(w http.ResponseWriter, r *http.Request) {
	handler.forward(w, r, model.ActionDates, nil)
}

// GetTimes relays the free slots for the `date` query parameter.
func (handler *Handler) GetTimes(w http.ResponseWriter, r *http.Request) {
	handler.forward(w, r, model.ActionTimes, nil)
}

// Book relays the booking payload exactly as received.
func (handler *Handler) Book(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBookingBody))
	if err != nil {
		log.Error().Err(err).Msg("failed to read booking body")

		response.WithEnvelope(w, failure.BadRequest(err))

		return
	}

	handler.forward(w, r, model.ActionBook, body)
}

func (handler *Handler) Preflight(w http.ResponseWriter, _ *http.Request) {
	response.WithPreflight(w)
}

func (handler *Handler) forward(w http.ResponseWriter, r *http.Request, action model.Action, body []byte) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Forward")
	defer scope.End()

	res, err := handler.service.Forward(ctx, dto.FromRequest(action, r, body))
	if err != nil {
		scope.TraceError(err)

		response.WithEnvelope(w, err)

		return
	}

	response.WithUpstream(w, res.Status, res.Body)
}
