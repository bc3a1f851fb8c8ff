package health

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/gateway/service"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/transport/http/response"
	"salon/transport/http/state"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Gateway
	state   *state.Tracker
	otel    otel.Otel
}

func New(service service.Gateway, state *state.Tracker, otel otel.Otel) Handler {
	return Handler{
		service: service,
		state:   state,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
	router.Get("/diag", handler.Diag)
}

// Health probes the upstream dates action and reports its status with a short sample.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	if !handler.state.Ready() {
		response.WithPreparingShutdown(w)

		return
	}

	res, err := handler.service.Health(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithEnvelope(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Diag reports how the upstream URL is configured and what it answers.
func (handler *Handler) Diag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Diag")
	defer scope.End()

	res, err := handler.service.Diagnose(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithEnvelopeDetail(w, failure.GetCode(err), failure.DiagFailed.Message, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
