package otel_test

import (
	"context"
	"errors"
	"testing"

	"salon/config"
	"salon/infras/otel"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "salon-test"

	ot := otel.New(cfg)
	defer func() { _ = ot.Shutdown(context.Background()) }()

	ctx, scope := ot.NewScope(context.Background(), "handler", "handler.GetDates")
	scope.SetAttributes(map[string]any{
		"gateway.action": "dates",
		"http.status":    200,
		"retry":          false,
		"query.keys":     []string{"date"},
		"elapsed":        1.5,
	})
	scope.AddEvent("forwarded")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("upstream 500"))
	scope.End()

	assert.True(t, oteltrace.SpanContextFromContext(ctx).IsValid())
}
