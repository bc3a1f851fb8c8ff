package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/availability/model"
	"salon/shared/constant"
	"salon/shared/logger"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	pathDates      = "/api/dates"
	pathTimes      = "/api/times"
	maxBodyBytes   = 1 << 20
	logSampleBytes = 200
)

type Availability interface {
	LoadDates(ctx context.Context) (model.Dates, error)
	LoadTimes(ctx context.Context, date string) (model.Times, error)
}

type serviceImpl struct {
	baseURL string
	client  *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, client *http.Client, otel otel.Otel) Availability {
	return &serviceImpl{
		baseURL: strings.TrimSuffix(cfg.Client.GatewayURL, "/"),
		client:  client,
		otel:    otel,
	}
}

func (s *serviceImpl) LoadDates(ctx context.Context) (res model.Dates, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".LoadDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	values, outcome, err := s.fetchList(ctx, s.baseURL+pathDates)
	if err != nil {
		return model.Dates{Set: model.NewDateSet()}, err
	}

	scope.SetAttribute("availability.outcome", outcome.String())

	return model.Dates{Set: model.NewDateSet(values...), Outcome: outcome}, nil
}

func (s *serviceImpl) LoadTimes(ctx context.Context, date string) (res model.Times, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".LoadTimes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	target := s.baseURL + pathTimes + "?" + url.Values{constant.RequestParamDate: {date}}.Encode()

	values, outcome, err := s.fetchList(ctx, target)
	if err != nil {
		return model.Times{Slots: model.Slots{Date: date}}, err
	}

	scope.SetAttribute("availability.outcome", outcome.String())

	return model.Times{Slots: model.Slots{Date: date, Times: values}, Outcome: outcome}, nil
}

// fetchList GETs target and decodes a JSON array of strings. Anything else that parses
// or fails to parse is reported as malformed with no values.
func (s *serviceImpl) fetchList(ctx context.Context, target string) ([]string, model.Outcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrTransport, err)
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", target).Msg("availability request failed")

		return nil, 0, fmt.Errorf("%w: %v", model.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().
			Int("status", resp.StatusCode).
			Str("url", target).
			Str("body", logger.Sample(body, logSampleBytes)).
			Msg("availability request rejected")

		return nil, 0, fmt.Errorf("%w: status %d", model.ErrTransport, resp.StatusCode)
	}

	var values []string
	if err := json.Unmarshal(body, &values); err != nil || values == nil {
		log.Warn().Str("url", target).Str("body", logger.Sample(body, logSampleBytes)).Msg("availability body is not a list of strings")

		return nil, model.OutcomeMalformed, nil
	}

	if len(values) == 0 {
		return values, model.OutcomeEmpty, nil
	}

	return values, model.OutcomeOK, nil
}
