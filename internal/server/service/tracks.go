package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracklog/internal/core"

	"golang.org/x/sync/errgroup"
)

// Sentinel errors for the service layer.
var (
	ErrTrackNotFound  = errors.New("track not found")
	ErrEmptyTree      = errors.New("no tracks available")
	ErrMalformedTrack = errors.New("track content is not valid GPX")
)

// TrackSource provides the repository listing and per-file content. The
// GitHub client satisfies it; tests substitute fakes.
type TrackSource interface {
	ListTree(ctx context.Context) ([]string, error)
	FetchFile(ctx context.Context, path string) (string, error)
}

// RecentTrack describes the most recently recorded track and the boat's
// last known position (the end point of that track).
type RecentTrack struct {
	Path         string      `json:"path"`
	RecordedAt   time.Time   `json:"recorded_at"`
	BoatPosition *core.Point `json:"boat_position,omitempty"`
}

// TrackService orchestrates listing, tree construction, per-track
// statistics, and date ordering.
type TrackService struct {
	source     TrackSource
	tracksRoot string
}

// NewTrackService creates a track service over the given source. tracksRoot
// is the repository directory that holds GPX files.
func NewTrackService(source TrackSource, tracksRoot string) *TrackService {
	return &TrackService{source: source, tracksRoot: tracksRoot}
}

// LoadTree fetches the repository listing, builds the folder tree, resolves
// every track's first timestamp, and returns the tree sorted by date along
// with the date index. A failed or empty listing yields an empty tree, not
// an error; callers render a "no tracks" state.
func (s *TrackService) LoadTree(ctx context.Context) (*core.TreeNode, core.DateIndex) {
	paths, err := s.source.ListTree(ctx)
	if err != nil {
		slog.Warn("failed to fetch track listing", "error", err)
		return core.NewTreeNode(s.tracksRoot), core.DateIndex{}
	}

	tree := core.BuildTree(paths, s.tracksRoot)
	dates := s.buildDateIndex(ctx, tree)
	return core.SortTreeByDate(tree, dates), dates
}

// Info fetches one track and computes its duration and distance. A track
// that fetches but does not parse degrades to zero values.
func (s *TrackService) Info(ctx context.Context, path string) (core.TrackInfo, error) {
	text, err := s.source.FetchFile(ctx, path)
	if err != nil {
		return core.TrackInfo{}, fmt.Errorf("%w: %s", ErrTrackNotFound, path)
	}
	return core.ParseTrackInfo(text), nil
}

// Geometry fetches one track and extracts its full point geometry for map
// rendering.
func (s *TrackService) Geometry(ctx context.Context, path string) (core.Layer, error) {
	text, err := s.source.FetchFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTrackNotFound, path)
	}

	layer, err := core.ExtractLayer(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTrack, err)
	}
	return layer, nil
}

// Recent loads the tree and returns the most recently recorded track
// together with the boat position marker.
func (s *TrackService) Recent(ctx context.Context) (*RecentTrack, error) {
	tree, dates := s.LoadTree(ctx)

	path, ok := core.FindMostRecentTrack(tree, dates)
	if !ok {
		return nil, ErrEmptyTree
	}

	recent := &RecentTrack{Path: path, RecordedAt: dates.DateOf(path)}
	if layer, err := s.Geometry(ctx, path); err == nil {
		if end, ok := layer.EndPoint(); ok {
			recent.BoatPosition = &end
		}
	}
	return recent, nil
}

// buildDateIndex resolves every file's first timestamp. Lookups within one
// folder are issued concurrently and all awaited; folders recurse
// sequentially depth-first, so the result is deterministic regardless of
// completion order. A file that fails to fetch keeps the epoch default and
// is logged, never propagated.
func (s *TrackService) buildDateIndex(ctx context.Context, node *core.TreeNode) core.DateIndex {
	dates := core.DateIndex{}
	s.collectDates(ctx, node, dates)
	return dates
}

func (s *TrackService) collectDates(ctx context.Context, node *core.TreeNode, dates core.DateIndex) {
	results := make([]time.Time, len(node.Files))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range node.Files {
		i, path := i, path
		g.Go(func() error {
			text, err := s.source.FetchFile(gctx, path)
			if err != nil {
				slog.Warn("failed to fetch track, dating it as oldest",
					"path", path, "error", err)
				results[i] = core.Epoch()
				return nil
			}
			results[i] = core.FirstTimestamp(text)
			return nil
		})
	}
	// Goroutines absorb their own failures, so Wait cannot return an error.
	_ = g.Wait()

	for i, path := range node.Files {
		dates[path] = results[i]
	}

	for _, name := range node.SubfolderNames() {
		s.collectDates(ctx, node.Subfolders[name], dates)
	}
}
