// Package history persists a record per generation run so past work can be
// listed and inspected from the CLI and the daemon.
package history

import (
	"context"
	"strings"
	"time"

	"github.com/pageforge/pageforge/internal/generator"
)

// Terminal outcomes stored per record.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Record is one persisted generation run.
type Record struct {
	ID         string    `json:"id"`
	PageName   string    `json:"pageName"`
	PageType   string    `json:"pageType"`
	Framework  string    `json:"framework"`
	TemplateID string    `json:"templateId,omitempty"`
	Outcome    string    `json:"outcome"`
	TotalSize  int       `json:"totalSize"`
	Score      int       `json:"score"`
	Components string    `json:"components,omitempty"`
	Warnings   int       `json:"warnings"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Store persists and retrieves generation records.
type Store interface {
	// Append adds a record. Empty ID and CreatedAt are assigned on insert.
	Append(ctx context.Context, rec Record) error

	// List returns the newest records first; limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]Record, error)

	// ByPage returns the records for one page name, newest first.
	ByPage(ctx context.Context, pageName string) ([]Record, error)

	// Range returns the records created within [start, end], oldest first.
	Range(ctx context.Context, start, end time.Time) ([]Record, error)

	// Prune deletes records created before the cutoff, returning the count.
	Prune(ctx context.Context, before time.Time) (int64, error)

	// Close closes the store and releases resources.
	Close() error
}

// FromOutput builds a record from a successful generation result. Page type
// and warning count live outside the output, so callers fill those in.
func FromOutput(out *generator.Output, templateID string) Record {
	rec := Record{TemplateID: templateID, Outcome: OutcomeSuccess}
	if out == nil || len(out.Pages) == 0 {
		return rec
	}
	meta := out.Pages[0].Meta
	rec.PageName = meta.PageName
	rec.Framework = string(meta.Framework)
	rec.TotalSize = meta.TotalSize
	rec.Score = meta.Performance.OptimizationScore
	rec.Components = strings.Join(meta.ComponentTypes, ",")
	return rec
}
