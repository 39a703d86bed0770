package service

import (
	"sync"
	"time"

	"folio/internal/domains/editor/model"
)

// registry holds the open drafts. Drafts are only read or changed while mu
// is held.
type registry struct {
	mu     sync.Mutex
	drafts map[string]*model.Draft
	ttl    time.Duration
}

func newRegistry(ttl time.Duration) *registry {
	return &registry{
		drafts: make(map[string]*model.Draft),
		ttl:    ttl,
	}
}

// lookup returns the draft if it belongs to owner. Caller holds mu.
func (r *registry) lookup(owner, id string) (*model.Draft, bool) {
	draft, ok := r.drafts[id]
	if !ok || draft.Owner != owner {
		return nil, false
	}

	return draft, true
}

// expired removes drafts idle for longer than the ttl. Drafts being saved
// are kept. Caller holds mu.
func (r *registry) expired(now time.Time) []*model.Draft {
	var stale []*model.Draft

	for id, draft := range r.drafts {
		if draft.State == model.StateSaving || now.Sub(draft.TouchedAt) < r.ttl {
			continue
		}

		stale = append(stale, draft)
		delete(r.drafts, id)
	}

	return stale
}

// drain empties the registry. Caller holds mu.
func (r *registry) drain() []*model.Draft {
	drafts := make([]*model.Draft, 0, len(r.drafts))
	for _, draft := range r.drafts {
		drafts = append(drafts, draft)
	}

	clear(r.drafts)

	return drafts
}
