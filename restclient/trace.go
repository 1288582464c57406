package restclient

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/restkit-go/restkit/restclient"

// TraceInterceptor emits one client span per request through the global
// tracer provider. SDK and exporter wiring belong to the embedding
// application.
type TraceInterceptor struct {
	tracer trace.Tracer
}

// NewTraceInterceptor builds the interceptor against the global provider.
func NewTraceInterceptor() *TraceInterceptor {
	return &TraceInterceptor{tracer: otel.Tracer(tracerName)}
}

// Intercept implements Interceptor.
func (t *TraceInterceptor) Intercept(next Handler) Handler {
	return func(ctx context.Context, req *Request) (*Response, error) {
		ctx, span := t.tracer.Start(ctx, fmt.Sprintf("HTTP %s", req.Method),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.String("url.path", req.Path),
			),
		)
		defer span.End()

		resp, err := next(ctx, req)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			return resp, err
		}

		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		if resp.StatusCode >= 500 {
			span.SetStatus(otelcodes.Error, resp.Status)
		}
		return resp, nil
	}
}
