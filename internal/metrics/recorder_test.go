package metrics

import (
	"testing"
	"time"
)

type testRecorder struct {
	generationDurations int
	outcomes            map[OutcomeLabel]int
	artifactBytes       map[ArtifactLabel]int
	componentCounts     []int
	templateUses        map[string]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{outcomes: map[OutcomeLabel]int{}, artifactBytes: map[ArtifactLabel]int{}, templateUses: map[string]int{}}
}

func (t *testRecorder) ObserveGenerationDuration(_ time.Duration) { t.generationDurations++ }
func (t *testRecorder) IncGenerationOutcome(outcome OutcomeLabel) { t.outcomes[outcome]++ }
func (t *testRecorder) ObserveArtifactBytes(kind ArtifactLabel, n int) {
	t.artifactBytes[kind] += n
}
func (t *testRecorder) ObserveComponentCount(n int) { t.componentCounts = append(t.componentCounts, n) }
func (t *testRecorder) IncTemplateUse(id string)    { t.templateUses[id]++ }

func TestTestRecorderCaptures(t *testing.T) {
	r := newTestRecorder()
	var rec Recorder = r
	rec.ObserveGenerationDuration(10 * time.Millisecond)
	rec.IncGenerationOutcome(OutcomeSuccess)
	rec.IncGenerationOutcome(OutcomeSuccess)
	rec.ObserveArtifactBytes(ArtifactStyle, 2048)
	rec.ObserveComponentCount(3)
	rec.IncTemplateUse("bootstrap-landing")
	if r.generationDurations != 1 {
		t.Fatalf("expected 1 duration observation, got %d", r.generationDurations)
	}
	if r.outcomes[OutcomeSuccess] != 2 {
		t.Fatalf("expected 2 success outcomes, got %d", r.outcomes[OutcomeSuccess])
	}
	if r.artifactBytes[ArtifactStyle] != 2048 {
		t.Fatalf("expected 2048 style bytes, got %d", r.artifactBytes[ArtifactStyle])
	}
	if r.templateUses["bootstrap-landing"] != 1 {
		t.Fatalf("expected template use recorded")
	}
}

func TestNoopRecorderIsSafe(t *testing.T) {
	var rec Recorder = NoopRecorder{}
	rec.ObserveGenerationDuration(time.Second)
	rec.IncGenerationOutcome(OutcomeFailed)
	rec.ObserveArtifactBytes(ArtifactMarkup, 1)
	rec.ObserveComponentCount(0)
	rec.IncTemplateUse("")
}
