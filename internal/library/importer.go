package library

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/pageforge/pageforge/internal/components"
	"github.com/pageforge/pageforge/internal/logfields"
)

// Source names where definitions come from: a local directory or a git
// repository URL, optionally narrowed to a subdirectory.
type Source struct {
	Location string
	Branch   string
	Subdir   string
}

// IsGit reports whether the location looks like a git URL rather than a
// local path.
func (s Source) IsGit() bool {
	loc := s.Location
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") ||
		strings.HasPrefix(loc, "git@") || strings.HasPrefix(loc, "ssh://") ||
		strings.HasSuffix(loc, ".git")
}

// Importer resolves definition sources, cloning git repositories into a
// scratch directory when needed.
type Importer struct {
	workDir string
}

// NewImporter returns an importer cloning into workDir; empty falls back to
// a directory under the system temp dir.
func NewImporter(workDir string) *Importer {
	if workDir == "" {
		workDir = filepath.Join(os.TempDir(), "pageforge-import")
	}
	return &Importer{workDir: workDir}
}

// Import loads the definitions a source holds.
func (im *Importer) Import(ctx context.Context, src Source) ([]components.Definition, error) {
	dir := src.Location
	if src.IsGit() {
		cloned, err := im.clone(ctx, src)
		if err != nil {
			return nil, err
		}
		dir = cloned
	}
	if src.Subdir != "" {
		dir = filepath.Join(dir, src.Subdir)
	}
	return LoadDir(dir)
}

// clone fetches a shallow copy of the repository, replacing any previous
// clone of the same source.
func (im *Importer) clone(ctx context.Context, src Source) (string, error) {
	repoPath := filepath.Join(im.workDir, RepoName(src.Location))
	slog.Debug("Cloning definition repository",
		logfields.URL(src.Location),
		slog.String("branch", src.Branch),
		logfields.Path(repoPath))
	if err := os.RemoveAll(repoPath); err != nil {
		return "", fmt.Errorf("remove existing clone: %w", err)
	}

	opts := &git.CloneOptions{URL: src.Location, Depth: 1}
	if src.Branch != "" {
		opts.ReferenceName = plumbing.ReferenceName("refs/heads/" + src.Branch)
		opts.SingleBranch = true
	}
	repo, err := git.PlainCloneContext(ctx, repoPath, false, opts)
	if err != nil {
		return "", fmt.Errorf("clone definition repository %s: %w", src.Location, err)
	}
	if ref, herr := repo.Head(); herr == nil {
		slog.Info("Definition repository cloned",
			logfields.URL(src.Location),
			slog.String("commit", ref.Hash().String()[:8]),
			logfields.Path(repoPath))
	} else {
		slog.Info("Definition repository cloned",
			logfields.URL(src.Location),
			logfields.Path(repoPath))
	}
	return repoPath, nil
}

// RepoName derives a scratch directory name from a git URL.
func RepoName(url string) string {
	name := strings.TrimSuffix(url, "/")
	name = strings.TrimSuffix(name, ".git")
	if i := strings.LastIndexAny(name, "/:"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = "definitions"
	}
	return name
}
