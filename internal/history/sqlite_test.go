package history

import (
	"testing"
	"time"

	"github.com/pageforge/pageforge/internal/generator"
)

func TestHistoryAppendAndRetrieve(t *testing.T) {
	// Create in-memory store
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := t.Context()
	rec := Record{
		PageName:   "landing-page",
		PageType:   "landing",
		Framework:  "bootstrap",
		TemplateID: "bootstrap-landing",
		Outcome:    OutcomeSuccess,
		TotalSize:  4096,
		Score:      100,
		Components: "hero,text",
		Warnings:   1,
	}

	// Test Append
	if err := store.Append(ctx, rec); err != nil {
		t.Fatalf("failed to append record: %v", err)
	}

	recs, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	got := recs[0]
	if got.ID == "" {
		t.Error("expected an assigned id, got empty")
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected an assigned created time, got zero")
	}
	if got.PageName != rec.PageName {
		t.Errorf("expected page_name %s, got %s", rec.PageName, got.PageName)
	}
	if got.Framework != rec.Framework {
		t.Errorf("expected framework %s, got %s", rec.Framework, got.Framework)
	}
	if got.TemplateID != rec.TemplateID {
		t.Errorf("expected template_id %s, got %s", rec.TemplateID, got.TemplateID)
	}
	if got.Outcome != OutcomeSuccess {
		t.Errorf("expected outcome %s, got %s", OutcomeSuccess, got.Outcome)
	}
	if got.TotalSize != rec.TotalSize || got.Score != rec.Score {
		t.Errorf("expected size/score %d/%d, got %d/%d",
			rec.TotalSize, rec.Score, got.TotalSize, got.Score)
	}
	if got.Components != rec.Components {
		t.Errorf("expected components %s, got %s", rec.Components, got.Components)
	}
	if got.Warnings != rec.Warnings {
		t.Errorf("expected warnings %d, got %d", rec.Warnings, got.Warnings)
	}
}

func TestHistoryListNewestFirst(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := t.Context()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Add records a minute apart
	for i := range 3 {
		rec := Record{
			ID:        string(rune('a' + i)),
			PageName:  "page",
			Outcome:   OutcomeSuccess,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Append(ctx, rec); err != nil {
			t.Fatalf("failed to append record: %v", err)
		}
	}

	recs, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "c" || recs[1].ID != "b" {
		t.Errorf("expected newest first (c, b), got (%s, %s)", recs[0].ID, recs[1].ID)
	}
}

func TestHistoryByPage(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := t.Context()

	// Add records for different pages
	_ = store.Append(ctx, Record{PageName: "home", Outcome: OutcomeSuccess})
	_ = store.Append(ctx, Record{PageName: "signup", Outcome: OutcomeInvalid})
	_ = store.Append(ctx, Record{PageName: "home", Outcome: OutcomeFailed})

	recs, err := store.ByPage(ctx, "home")
	if err != nil {
		t.Fatalf("failed to get records: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("expected 2 records for home, got %d", len(recs))
	}

	recs, err = store.ByPage(ctx, "signup")
	if err != nil {
		t.Fatalf("failed to get records: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("expected 1 record for signup, got %d", len(recs))
	}
}

func TestHistoryRange(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := t.Context()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := range 4 {
		rec := Record{
			PageName:  "page",
			Outcome:   OutcomeSuccess,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := store.Append(ctx, rec); err != nil {
			t.Fatalf("failed to append record: %v", err)
		}
	}

	// Middle two hours only, oldest first
	recs, err := store.Range(ctx, base.Add(time.Hour), base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("failed to get range: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records in range, got %d", len(recs))
	}
	if !recs[0].CreatedAt.Before(recs[1].CreatedAt) {
		t.Errorf("expected oldest first, got %v then %v",
			recs[0].CreatedAt, recs[1].CreatedAt)
	}
}

func TestHistoryPrune(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := t.Context()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	_ = store.Append(ctx, Record{PageName: "old", Outcome: OutcomeSuccess, CreatedAt: base})
	_ = store.Append(ctx, Record{PageName: "old", Outcome: OutcomeSuccess, CreatedAt: base.Add(time.Minute)})
	_ = store.Append(ctx, Record{PageName: "new", Outcome: OutcomeSuccess, CreatedAt: base.Add(time.Hour)})

	n, err := store.Prune(ctx, base.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("failed to prune: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 pruned records, got %d", n)
	}

	recs, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(recs) != 1 || recs[0].PageName != "new" {
		t.Errorf("expected only the new record to remain, got %v", recs)
	}
}

func TestFromOutput(t *testing.T) {
	out := &generator.Output{
		Pages: []generator.Page{{
			Meta: generator.PageMeta{
				PageName:       "Landing Page",
				Framework:      "bootstrap",
				ComponentTypes: []string{"hero", "text"},
				TotalSize:      2048,
				Performance:    generator.Performance{OptimizationScore: 85},
			},
		}},
	}

	rec := FromOutput(out, "bootstrap-landing")
	if rec.PageName != "Landing Page" {
		t.Errorf("expected page name Landing Page, got %s", rec.PageName)
	}
	if rec.Framework != "bootstrap" {
		t.Errorf("expected framework bootstrap, got %s", rec.Framework)
	}
	if rec.TemplateID != "bootstrap-landing" {
		t.Errorf("expected template id bootstrap-landing, got %s", rec.TemplateID)
	}
	if rec.Outcome != OutcomeSuccess {
		t.Errorf("expected outcome %s, got %s", OutcomeSuccess, rec.Outcome)
	}
	if rec.Components != "hero,text" {
		t.Errorf("expected components hero,text, got %s", rec.Components)
	}
	if rec.TotalSize != 2048 || rec.Score != 85 {
		t.Errorf("expected size/score 2048/85, got %d/%d", rec.TotalSize, rec.Score)
	}

	// Nil output still yields a usable record
	rec = FromOutput(nil, "")
	if rec.Outcome != OutcomeSuccess || rec.PageName != "" {
		t.Errorf("expected empty success record, got %v", rec)
	}
}
