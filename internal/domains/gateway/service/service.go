package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"salon/config"
	"salon/infras/metrics"
	"salon/infras/otel"
	"salon/internal/domains/gateway/model"
	"salon/internal/domains/gateway/model/dto"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/logger"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	maxUpstreamBody   = 10 << 20
	healthSampleBytes = 120
)

type Gateway interface {
	// Forward relays one call to the upstream and returns its JSON body untouched.
	Forward(ctx context.Context, req dto.ForwardRequest) (model.Reply, error)
	Health(ctx context.Context) (model.Health, error)
	Diagnose(ctx context.Context) (model.Diagnostics, error)
}

type serviceImpl struct {
	cfg     *config.Config
	client  *http.Client
	metrics *metrics.GatewayMetrics
	otel    otel.Otel
}

func New(cfg *config.Config, client *http.Client, metrics *metrics.GatewayMetrics, otel otel.Otel) Gateway {
	return &serviceImpl{
		cfg:     cfg,
		client:  client,
		metrics: metrics,
		otel:    otel,
	}
}

func (s *serviceImpl) Forward(ctx context.Context, req dto.ForwardRequest) (res model.Reply, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Forward")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("gateway.action", req.Action.String())

	started := time.Now()
	outcome := metrics.OutcomeSuccess

	defer func() {
		s.metrics.ObserveUpstream(req.Action.String(), outcome, time.Since(started).Seconds())
	}()

	status, body, err := s.fetch(ctx, req)
	if err != nil {
		outcome = metrics.OutcomeTransport

		log.Error().Err(err).Str("action", req.Action.String()).Str("request_id", req.RequestID).Msg("upstream unreachable")

		return res, failure.ProxyError
	}

	scope.SetAttribute("gateway.upstream_status", status)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		outcome = metrics.OutcomeUpstreamStatus

		log.Error().
			Int("status", status).
			Str("action", req.Action.String()).
			Str("request_id", req.RequestID).
			Str("body", logger.Sample(body, s.cfg.Upstream.SampleBytes)).
			Msg("upstream returned non-2xx")

		return res, failure.UpstreamStatus(status)
	}

	if !json.Valid(body) {
		outcome = metrics.OutcomeMalformed

		log.Error().
			Str("action", req.Action.String()).
			Str("request_id", req.RequestID).
			Str("body", logger.Sample(body, s.cfg.Upstream.SampleBytes)).
			Msg("upstream returned a non-JSON body")

		return res, failure.ProxyError
	}

	log.Debug().Str("action", req.Action.String()).Int("status", status).Int("bytes", len(body)).Msg("forwarded")

	return model.Reply{Status: status, Body: body}, nil
}

func (s *serviceImpl) Health(ctx context.Context) (res model.Health, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Health")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	status, body, err := s.fetch(ctx, dto.ForwardRequest{Action: model.ActionDates})
	if err != nil {
		log.Error().Err(err).Msg("health probe failed")

		return res, failure.ProxyError
	}

	return model.Health{
		OK:     true,
		Status: status,
		Sample: logger.Sample(body, healthSampleBytes),
	}, nil
}

func (s *serviceImpl) Diagnose(ctx context.Context) (res model.Diagnostics, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Diagnose")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req := dto.ForwardRequest{Action: model.ActionDates}

	target, err := req.UpstreamURL(s.cfg.Upstream.URL)
	if err != nil {
		return res, fmt.Errorf("%w: %v", failure.DiagFailed, err)
	}

	res = model.Diagnostics{
		EnvLen:          len(s.cfg.Upstream.URL),
		StartsWithHTTPS: strings.HasPrefix(s.cfg.Upstream.URL, "https://"),
		URL:             target,
	}

	status, body, err := s.fetch(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("diagnostics probe failed")

		return res, fmt.Errorf("%w: %v", failure.DiagFailed, err)
	}

	res.OK = true
	res.Status = status
	res.BodySample = logger.Sample(body, s.cfg.Upstream.SampleBytes)

	return res, nil
}

func (s *serviceImpl) fetch(ctx context.Context, req dto.ForwardRequest) (status int, body []byte, err error) {
	target, err := req.UpstreamURL(s.cfg.Upstream.URL)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build upstream url: %w", err)
	}

	method := req.Action.Method()

	var reader io.Reader
	if method != http.MethodGet {
		reader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create upstream request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if method != http.MethodGet {
		contentType := req.ContentType
		if contentType == "" {
			contentType = constant.ContentTypeJSON
		}

		httpReq.Header.Set(constant.RequestHeaderContentType, contentType)
	}

	if req.RequestID != "" {
		httpReq.Header.Set(constant.RequestHeaderRequestID, req.RequestID)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to call upstream: %w", err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read upstream body: %w", err)
	}

	return resp.StatusCode, body, nil
}
