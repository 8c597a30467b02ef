package search

import (
	"github.com/google/uuid"

	"github.com/harborcms/sitesearch/internal/domain/search/hit"
	"github.com/harborcms/sitesearch/internal/domain/search/request"
	"github.com/harborcms/sitesearch/internal/domain/search/surface"
)

// accumulator collects accepted hits for one invocation, applying the
// per-item identity rules. A replacement keeps the original position of
// the entry it replaces.
type accumulator struct {
	language string
	classic  bool // Classic surface without a language filter: duplicates coexist
	limit    int
	entries  []hit.Hit

	collapsed int // hits merged into an existing entry
}

func newAccumulator(req *request.Request) *accumulator {
	return &accumulator{
		language: req.Language(),
		classic:  req.Surface() == surface.Classic && !req.HasLanguage(),
		limit:    req.Limit(),
	}
}

// full reports whether the accepted count reached the request limit.
func (a *accumulator) full() bool {
	return len(a.entries) >= a.limit
}

// wants reports whether the hit can still change the accepted set. Once
// the limit is reached only merges into an existing entry qualify, so the
// first hit for an unseen item ends the enumeration.
func (a *accumulator) wants(h hit.Hit) bool {
	if !a.full() {
		return true
	}
	if a.classic {
		// Classic duplicates always append, so a full set is final.
		return false
	}
	return a.contains(h.ItemID())
}

func (a *accumulator) contains(id uuid.UUID) bool {
	for i := range a.entries {
		if a.entries[i].ItemID() == id {
			return true
		}
	}
	return false
}

// add applies the identity check and tie-break rules to one eligible hit.
func (a *accumulator) add(h hit.Hit) {
	idx := -1
	for i := range a.entries {
		if a.entries[i].ItemID() == h.ItemID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		a.entries = append(a.entries, h)
		return
	}

	if a.classic {
		// Legacy dialogs list every matching version of an item.
		a.entries = append(a.entries, h)
		return
	}

	a.collapsed++
	existing := &a.entries[idx]

	if a.language != "" {
		newMatch := h.Language() == a.language
		oldMatch := existing.Language() == a.language
		switch {
		case newMatch && !oldMatch:
			a.entries[idx] = h
		case newMatch && oldMatch && h.Version() > existing.Version():
			a.entries[idx] = h
		}
		return
	}

	// No language filter: a newer version in the same language wins,
	// everything else keeps the existing entry (first wins on ties).
	if h.Language() == existing.Language() && h.Version() > existing.Version() {
		a.entries[idx] = h
	}
}
