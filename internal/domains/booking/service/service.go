package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"salon/config"
	"salon/infras/otel"
	"salon/internal/attachment"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/selection"
	"salon/shared/constant"
	"salon/shared/logger"
	"salon/shared/validator"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

const (
	pathBook       = "/api/book"
	maxReplyBytes  = 1 << 20
	logSampleBytes = 200

	// MessageNetworkFailure is reported when no usable reply came back.
	MessageNetworkFailure = "network failure"
)

var (
	ErrSubmissionInFlight = errors.New("a booking is already being submitted")
	ErrMissingContact     = errors.New("customer name and phone are required")
)

type Booking interface {
	// Submit sends one booking. Transport and upstream failures are reported in the
	// result; the error is reserved for requests that never reached the network.
	Submit(ctx context.Context, sel model.Selection, contact dto.ContactInfo) (model.BookingResult, error)
	Binding() model.Binding
}

type serviceImpl struct {
	binding  model.Binding
	target   string
	client   *http.Client
	uploader attachment.Uploader
	otel     otel.Otel
	inFlight atomic.Bool
}

// New posts through the gateway unless a direct upstream URL is configured.
func New(cfg *config.Config, client *http.Client, uploader attachment.Uploader, otel otel.Otel) Booking {
	svc := &serviceImpl{
		binding:  model.BindingGateway,
		target:   strings.TrimSuffix(cfg.Client.GatewayURL, "/") + pathBook,
		client:   client,
		uploader: uploader,
		otel:     otel,
	}

	if cfg.Client.DirectURL != "" {
		svc.binding = model.BindingDirect
		svc.target = cfg.Client.DirectURL
	}

	return svc
}

func (s *serviceImpl) Binding() model.Binding {
	return s.binding
}

func (s *serviceImpl) Submit(ctx context.Context, sel model.Selection, contact dto.ContactInfo) (res model.BookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	service, err := selection.Ready(sel)
	if err != nil {
		return res, err
	}

	contact = contact.Trimmed()
	if !contact.HasRequired() {
		return res, ErrMissingContact
	}

	if err = validator.ValidateStruct(&contact); err != nil {
		return res, err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return res, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	req := dto.NewBookingRequest(sel, service, contact)
	req = s.offloadImage(ctx, req)

	scope.SetAttributes(map[string]any{
		"booking.binding": string(s.binding),
		"booking.service": service.ID,
	})

	res = s.post(ctx, req)
	if !res.OK && req.ImageURL != "" {
		s.discardImage(ctx, req.ImageURL)
	}

	return res, nil
}

// offloadImage swaps the inline image for a stored URL. On any upload error the data URL
// is sent as is.
func (s *serviceImpl) offloadImage(ctx context.Context, req dto.BookingRequest) dto.BookingRequest {
	if s.uploader == nil || req.ImageData == nil {
		return req
	}

	url, err := s.uploader.Upload(ctx, *req.ImageData)
	if err != nil {
		log.Warn().Err(err).Msg("attachment upload failed, sending image inline")

		return req
	}

	return req.WithImageURL(url)
}

// discardImage drops an uploaded image the upstream never recorded. The customer's retry
// uploads it again.
func (s *serviceImpl) discardImage(ctx context.Context, url string) {
	if err := s.uploader.Discard(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to discard attachment")
	}
}

func (s *serviceImpl) post(ctx context.Context, req dto.BookingRequest) model.BookingResult {
	payload, err := json.Marshal(req)
	if err != nil {
		logger.ErrorWithStack(err)

		return model.BookingResult{Message: MessageNetworkFailure}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.target, bytes.NewReader(payload))
	if err != nil {
		log.Error().Err(err).Str("url", s.target).Msg("failed to build booking request")

		return model.BookingResult{Message: MessageNetworkFailure}
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("binding", string(s.binding)).Msg("booking request failed")

		return model.BookingResult{Message: MessageNetworkFailure}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		log.Error().Err(err).Msg("failed to read booking reply")

		return model.BookingResult{Message: MessageNetworkFailure}
	}

	if s.binding == model.BindingGateway && (resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices) {
		log.Error().Int("status", resp.StatusCode).Str("body", logger.Sample(body, logSampleBytes)).Msg("gateway rejected booking")

		return model.BookingResult{Message: MessageNetworkFailure}
	}

	var reply dto.UpstreamReply
	if err := json.Unmarshal(body, &reply); err != nil {
		log.Error().Err(err).Str("body", logger.Sample(body, logSampleBytes)).Msgf("unreadable %s booking reply", s.binding)

		return model.BookingResult{Message: MessageNetworkFailure}
	}

	result := reply.ToResult()
	if !result.OK {
		log.Warn().Str("message", result.Message).Msg("booking rejected upstream")
	}

	return result
}
