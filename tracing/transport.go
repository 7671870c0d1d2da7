// Package tracing instruments outbound Katana API calls with
// OpenTelemetry spans.
package tracing

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/grasp-labs/ds-go-katana-models/internal/utils"
	"github.com/grasp-labs/ds-go-katana-models/middleware/interfaces"
	"github.com/grasp-labs/ds-go-katana-models/middleware/requestctx"
)

const (
	Component  = "katana-openapi-client"
	spanPrefix = "katana_client."
)

// Transport is an http.RoundTripper that opens a client span per request.
// With a nil Tracer it only forwards the request ID.
type Transport struct {
	Base      http.RoundTripper
	Tracer    trace.Tracer
	Logger    interfaces.Logger
	UserAgent string
}

func NewTransport(base http.RoundTripper, tracer trace.Tracer, logger interfaces.Logger) *Transport {
	return &Transport{Base: base, Tracer: tracer, Logger: logger}
}

// NewTransportFromConfig identifies outbound calls with the service
// principal ID derived from cfg.
func NewTransportFromConfig(cfg interfaces.Config, base http.RoundTripper, tracer trace.Tracer, logger interfaces.Logger) *Transport {
	t := NewTransport(base, tracer, logger)
	t.UserAgent = utils.CreateServicePrincipleID(cfg)
	return t
}

// WrapClient returns a shallow copy of c whose transport is traced.
func WrapClient(c *http.Client, tracer trace.Tracer, logger interfaces.Logger) *http.Client {
	if c == nil {
		c = &http.Client{}
	}
	wrapped := *c
	wrapped.Transport = NewTransport(c.Transport, tracer, logger)
	return &wrapped
}

func (t *Transport) base() http.RoundTripper {
	if t.Base == nil {
		return http.DefaultTransport
	}
	return t.Base
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if t.Tracer == nil {
		return t.base().RoundTrip(t.prepare(req))
	}

	ctx, span := t.Tracer.Start(ctx, spanPrefix+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("component", Component),
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		))
	defer span.End()

	out := t.prepare(req.WithContext(ctx))
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(out.Header))

	resp, err := t.base().RoundTrip(out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("error", true))
		if t.Logger != nil {
			t.Logger.Warning(ctx, "Katana request %s %s failed: %v", req.Method, req.URL.Redacted(), err)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
		span.SetAttributes(attribute.Bool("error", true))
	}

	return resp, nil
}

// prepare clones req so the caller's request is never mutated.
func (t *Transport) prepare(req *http.Request) *http.Request {
	out := req.Clone(req.Context())
	if id := requestctx.GetRequestID(req.Context()); id != "" && out.Header.Get("X-Request-ID") == "" {
		out.Header.Set("X-Request-ID", id)
	}
	if t.UserAgent != "" && out.Header.Get("User-Agent") == "" {
		out.Header.Set("User-Agent", t.UserAgent)
	}
	return out
}
