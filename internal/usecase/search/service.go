// Package search implements the quick-search pipeline step: it consumes a
// lazy stream of raw index hits and pushes deduplicated, version-resolved,
// display-ready records to the caller's sink.
package search

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harborcms/sitesearch/internal/domain"
	"github.com/harborcms/sitesearch/internal/domain/search/hit"
	"github.com/harborcms/sitesearch/internal/domain/search/request"
	"github.com/harborcms/sitesearch/internal/domain/search/result"
	"github.com/harborcms/sitesearch/internal/domain/search/surface"
	"github.com/harborcms/sitesearch/internal/logger"
	"github.com/harborcms/sitesearch/internal/metrics"
)

// maxAncestorDepth bounds the hidden-flag walk on malformed parent chains.
const maxAncestorDepth = 64

// Config holds the deployment toggles around the pipeline step.
type Config struct {
	// Disabled defers every invocation to the host's legacy search path.
	Disabled bool
	// IndexPaused defers invocations while index maintenance is running.
	IndexPaused bool
	// DefaultIcon is the fallback icon for results whose hit and item
	// both carry none.
	DefaultIcon string
}

// Service is the quick-search pipeline step.
type Service struct {
	index Index
	items ItemResolver
	cfg   Config
}

// New creates a search service.
func New(index Index, items ItemResolver, cfg Config) *Service {
	return &Service{index: index, items: items, cfg: cfg}
}

// Process runs one search invocation against the caller's sink. It never
// returns an error: every failure mode logs a diagnostic and leaves the
// sink as it is. A query-engine failure emits nothing at all, since
// accumulation completes before formatting begins.
func (s *Service) Process(ctx context.Context, req *request.Request, showHidden bool, sink Sink) {
	log := logger.FromContext(ctx)

	if s.cfg.Disabled || s.cfg.IndexPaused {
		// The host falls back to its legacy search path.
		log.Debug("quick search deferred",
			zap.Bool("disabled", s.cfg.Disabled),
			zap.Bool("index_paused", s.cfg.IndexPaused),
		)
		return
	}

	start := time.Now()
	metrics.SearchesTotal.WithLabelValues(string(req.Surface())).Inc()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	acc, ok := s.collect(ctx, req, showHidden)
	if !ok {
		return
	}

	s.format(ctx, acc, sink)
}

// collect consumes the raw hit stream until the accepted count reaches the
// limit. Returns false when the invocation must be abandoned.
func (s *Service) collect(ctx context.Context, req *request.Request, showHidden bool) (*accumulator, bool) {
	log := logger.FromContext(ctx)

	hits, err := s.index.Query(ctx, req.RootScope(), req.Query())
	if errors.Is(err, domain.ErrIndexNotFound) {
		log.Warn("no index for search scope",
			zap.String("query", req.Query()),
			zap.String("root", req.RootScope().String()),
		)
		return nil, false
	}
	if err != nil {
		log.Error("search query failed",
			zap.String("query", req.Query()),
			zap.Error(err),
		)
		return nil, false
	}
	defer func() { _ = hits.Close() }()

	// The content editor searches the whole tree regardless of scope.
	scoped := req.RootScope() != uuid.Nil && req.Surface() != surface.ContentEditor

	acc := newAccumulator(req)
	scanned := 0
	for hits.Next(ctx) {
		h := hits.Hit()
		scanned++
		if scoped && !h.InScope(req.RootScope()) {
			continue
		}
		// A full set still takes hits that merge into an accepted
		// entry; the first hit for an unseen item ends the scan.
		if !acc.wants(h) {
			break
		}
		if !showHidden && s.hidden(ctx, &h) {
			metrics.SearchHiddenSkipped.Inc()
			continue
		}
		acc.add(h)
	}
	metrics.SearchHitsScanned.Add(float64(scanned))

	if err := hits.Err(); err != nil {
		log.Error("search query failed",
			zap.String("query", req.Query()),
			zap.Error(err),
		)
		return nil, false
	}

	metrics.SearchDuplicatesCollapsed.Add(float64(acc.collapsed))
	return acc, true
}

// hidden reports whether the item backing the hit, or any of its
// ancestors, carries the hidden flag. Items that fail to resolve pass
// through as visible; the formatting pass deals with them.
func (s *Service) hidden(ctx context.Context, h *hit.Hit) bool {
	item, err := s.items.Head(ctx, h.ItemID())
	if err != nil {
		return false
	}
	for depth := 0; depth < maxAncestorDepth; depth++ {
		if item.Hidden() {
			return true
		}
		parentID := item.ParentID()
		if parentID == uuid.Nil {
			return false
		}
		parent, err := s.items.Head(ctx, parentID)
		if err != nil {
			return false
		}
		item = parent
	}
	return false
}

// format resolves each accepted hit and emits display records, dropping
// entries whose backing item is gone or has no presentable title or icon.
func (s *Service) format(ctx context.Context, acc *accumulator, sink Sink) {
	for i := range acc.entries {
		h := &acc.entries[i]

		item, ver, err := s.items.Resolve(ctx, h.ItemID(), h.Language(), h.Version())
		if err != nil {
			metrics.SearchResultsDropped.WithLabelValues("unresolved").Inc()
			continue
		}

		title := ver.DisplayName()
		if title == "" {
			title = item.Name()
		}
		if title == "" {
			metrics.SearchResultsDropped.WithLabelValues("untitled").Inc()
			continue
		}

		icon := h.Icon()
		if icon == "" {
			icon = item.Icon()
		}
		if icon == "" {
			icon = s.cfg.DefaultIcon
		}
		if icon == "" {
			metrics.SearchResultsDropped.WithLabelValues("no_icon").Inc()
			continue
		}

		sink.Push(result.New(title, icon, h.URI()))
	}
}
