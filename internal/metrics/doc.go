// Package metrics provides observability hooks for page generation.
//
// The package implements the Null Object pattern so callers never need nil
// checks: components default to NoopRecorder (methods compile away) and a
// real implementation is injected only when metrics are wanted.
//
// The system has three parts:
//
//  1. Recorder interface - every metrics operation the generator emits
//  2. NoopRecorder - default implementation, zero overhead
//  3. PrometheusRecorder - forwards to a prometheus.Registry
//
// Components receive a Recorder through dependency injection:
//
//	gen := generator.New(engine).SetRecorder(metrics.NewPrometheusRecorder(reg))
//
// Swapping the recorder enables metrics without touching call sites, and
// tests can inject a capturing recorder for verification.
package metrics
