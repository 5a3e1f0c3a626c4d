package metrics

import "time"

// OutcomeLabel enumerates terminal generation outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeInvalid OutcomeLabel = "invalid"
	OutcomeFailed  OutcomeLabel = "failed"
)

// ArtifactLabel names one generated artifact kind for size observations.
type ArtifactLabel string

const (
	ArtifactMarkup         ArtifactLabel = "markup"
	ArtifactStyle          ArtifactLabel = "style"
	ArtifactBehavior       ArtifactLabel = "behavior"
	ArtifactPlatformScript ArtifactLabel = "platform_script"
)

// Recorder defines observability hooks for page generation. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe for
// zero-value receivers so NoopRecorder can be injected by default.
type Recorder interface {
	ObserveGenerationDuration(d time.Duration)
	IncGenerationOutcome(outcome OutcomeLabel)
	ObserveArtifactBytes(kind ArtifactLabel, n int)
	ObserveComponentCount(n int)
	IncTemplateUse(id string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerationDuration(time.Duration) {}
func (NoopRecorder) IncGenerationOutcome(OutcomeLabel)       {}
func (NoopRecorder) ObserveArtifactBytes(ArtifactLabel, int) {}
func (NoopRecorder) ObserveComponentCount(int)               {}
func (NoopRecorder) IncTemplateUse(string)                   {}
