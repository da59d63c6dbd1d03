package tracing

import (
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Middleware starts a server span per request. It extracts W3C trace
// context from the request and returns the trace id in X-Trace-Id.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			ctx := otel.GetTextMapPropagator().Extract(
				r.Context(),
				propagation.HeaderCarrier(r.Header),
			)

			path := c.Path()
			if path == "" {
				path = r.URL.Path
			}

			ctx, span := Tracer().Start(ctx, r.Method+" "+path,
				trace.WithSpanKind(trace.SpanKindServer),
			)
			defer span.End()

			if span.SpanContext().HasTraceID() {
				c.Response().Header().Set("X-Trace-Id", span.SpanContext().TraceID().String())
			}

			c.SetRequest(r.WithContext(ctx))
			err := next(c)

			status := c.Response().Status
			span.SetAttributes(
				attribute.Int("http.status_code", status),
				attribute.String("http.method", r.Method),
				attribute.String("http.route", path),
			)
			if err != nil {
				span.RecordError(err)
			}
			if status >= 500 {
				span.SetStatus(codes.Error, "server error")
			}

			return err
		}
	}
}
