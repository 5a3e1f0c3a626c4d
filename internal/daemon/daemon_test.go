package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/internal/config"
	"github.com/pageforge/pageforge/internal/history"
)

func TestNew_RequiresConfigPath(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestDaemon_RegenerateWritesArtifactsAndHistory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "page.yaml")
	require.NoError(t, config.Init(cfgPath, false))

	outDir := filepath.Join(dir, "dist")
	d, err := New(Options{
		ConfigPath:  cfgPath,
		OutputDir:   outDir,
		HistoryPath: ":memory:",
	})
	require.NoError(t, err)
	defer func() { _ = d.store.Close() }()

	require.NoError(t, d.regenerate(t.Context()))

	_, err = os.Stat(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "generation-report.json"))
	require.NoError(t, err)

	recs, err := d.store.List(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, history.OutcomeSuccess, recs[0].Outcome)
	require.Equal(t, "Landing Page", recs[0].PageName)
	require.Equal(t, "landing", recs[0].PageType)
}

func TestDaemon_RegenerateRecordsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "page.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pageSettings: {}\n"), 0o644))

	d, err := New(Options{
		ConfigPath:  cfgPath,
		OutputDir:   filepath.Join(dir, "dist"),
		HistoryPath: ":memory:",
	})
	require.NoError(t, err)
	defer func() { _ = d.store.Close() }()

	require.Error(t, d.regenerate(t.Context()))

	recs, err := d.store.List(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, history.OutcomeInvalid, recs[0].Outcome)

	lastErr, _, runs, hasGood := d.status.snapshot()
	require.Error(t, lastErr)
	require.Equal(t, 1, runs)
	require.False(t, hasGood)
}

func TestConfigWatcher_TriggersReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "page.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pageSettings:\n  pageName: First\n"), 0o644))

	var reloads atomic.Int32
	cw, err := NewConfigWatcher(cfgPath, 30*time.Millisecond, func(context.Context) error {
		reloads.Add(1)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, cw.Start(t.Context()))
	defer cw.Stop()

	// A burst of writes collapses into a single reload.
	for range 3 {
		require.NoError(t, os.WriteFile(cfgPath, []byte("pageSettings:\n  pageName: Next\n"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return reloads.Load() >= 1
	}, 3*time.Second, 20*time.Millisecond)

	// No further reloads arrive once the burst has settled.
	settled := reloads.Load()
	time.Sleep(200 * time.Millisecond)
	require.Equal(t, settled, reloads.Load())
}

func TestConfigWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "page.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pageSettings: {}\n"), 0o644))

	var reloads atomic.Int32
	cw, err := NewConfigWatcher(cfgPath, 20*time.Millisecond, func(context.Context) error {
		reloads.Add(1)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, cw.Start(t.Context()))
	defer cw.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.Zero(t, reloads.Load())
}

func TestHealthHandler_ReportsLifecycleStates(t *testing.T) {
	status := &runStatus{}
	handler := healthHandler(status)

	get := func() (int, map[string]any) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec.Code, body
	}

	code, body := get()
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Equal(t, "failing", body["status"])

	status.setSuccess()
	code, body = get()
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", body["status"])
	require.EqualValues(t, 1, body["runs"])

	status.setError(errors.New("boom"))
	code, body = get()
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "degraded", body["status"])
	require.Equal(t, "boom", body["lastError"])
}

func TestPreviewServer_ServesArtifactsHealthAndMetrics(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>preview</h1>"), 0o644))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	status := &runStatus{}
	status.setSuccess()

	ps := NewPreviewServer("127.0.0.1:0", dir, status, registry)
	srv := httptest.NewServer(ps.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	resp3, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := NewScheduler()
	require.NoError(t, err)

	id, err := s.ScheduleRegeneration(time.Hour, func() {})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s.Start()
	require.NoError(t, s.Stop())
}
