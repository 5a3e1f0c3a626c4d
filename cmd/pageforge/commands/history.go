package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pageforge/pageforge/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Page       string        `help:"Filter records by page name"`
	Limit      int           `short:"n" default:"20" help:"Maximum number of records to show"`
	Format     string        `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	PruneOlder time.Duration `name:"prune-older" help:"Delete records older than this duration and exit (e.g. 720h)"`
}

func (h *HistoryCmd) Run(_ *Global, root *CLI) error {
	if root.HistoryDB == "" {
		return errors.New("history is disabled (--history-db is empty)")
	}

	store, err := history.NewSQLiteStore(root.HistoryDB)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	ctx := context.Background()

	if h.PruneOlder > 0 {
		n, err := store.Prune(ctx, time.Now().Add(-h.PruneOlder))
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d records\n", n)
		return nil
	}

	var recs []history.Record
	if h.Page != "" {
		recs, err = store.ByPage(ctx, h.Page)
		if err == nil && h.Limit > 0 && len(recs) > h.Limit {
			recs = recs[:h.Limit]
		}
	} else {
		recs, err = store.List(ctx, h.Limit)
	}
	if err != nil {
		return err
	}

	return renderHistory(os.Stdout, recs, h.Format)
}

func renderHistory(w io.Writer, recs []history.Record, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "No generation runs recorded")
		return err
	}

	for _, rec := range recs {
		_, _ = fmt.Fprintf(w, "%s  %-8s %-24s %-12s %-10s %7d B  score %d\n",
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Outcome, rec.PageName, rec.PageType, rec.Framework,
			rec.TotalSize, rec.Score)
	}
	return nil
}
