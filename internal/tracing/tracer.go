// Package tracing wires OpenTelemetry for cart-abandonment-notifier.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/donaldgifford/cart-abandonment-notifier"

// Tracer returns the application tracer from the global provider. It is
// resolved on every call so a provider installed by Setup takes effect.
//
//	ctx, span := tracing.Tracer().Start(ctx, "operation-name")
//	defer span.End()
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
