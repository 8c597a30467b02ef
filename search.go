package sitesearch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/search/request"
	"github.com/harborcms/sitesearch/internal/domain/search/result"
	"github.com/harborcms/sitesearch/internal/domain/search/surface"
	searchuc "github.com/harborcms/sitesearch/internal/usecase/search"
)

// Surface identifies the UI surface issuing a search. It changes the
// duplicate handling and scope filtering rules.
type Surface string

// Known surfaces.
const (
	SurfaceContentEditor Surface = Surface(surface.ContentEditor)
	SurfaceClassic       Surface = Surface(surface.Classic)
	SurfaceOther         Surface = Surface(surface.Other)
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// Root restricts results to one content subtree. uuid.Nil searches
	// the whole tree.
	Root uuid.UUID
	// Language keeps only the best match per item in this language.
	Language string
	// Limit caps the number of results. 0 uses the default.
	Limit int
	// Surface the search is issued from.
	Surface Surface
	// ShowHidden includes items flagged as hidden.
	ShowHidden bool
}

// Result is one display-ready search record.
type Result struct {
	Title string
	Icon  string
	URL   string
}

// Search runs a quick search and returns display records, best match
// first. Engine failures are logged and yield an empty slice; a request
// that fails validation returns an error.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) ([]Result, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	req, err := request.New(query, opts.Root, opts.Language, opts.Limit, surface.Surface(opts.Surface))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var out []Result
	c.searchSvc.Process(ctx, &req, opts.ShowHidden, searchuc.SinkFunc(func(r result.Result) {
		out = append(out, Result{
			Title: r.Title(),
			Icon:  r.Icon(),
			URL:   r.URL(),
		})
	}))
	return out, nil
}
