// Package tracing provides OpenTelemetry tracing integration.
//
// It wraps HTTP handlers in server spans, propagates W3C Trace Context
// from incoming requests and exposes the trace ID to clients through the
// X-Trace-Id response header. Exporter wiring (Jaeger, OTLP) is left to
// the deployment environment via the global tracer provider.
package tracing
