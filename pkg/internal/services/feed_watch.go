package services

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// FeedWatcher owns the inputs of one viewer's live feed (page, search term,
// and whatever invalidations the follow graph or post store report) and
// recomputes the page whenever one of them changes. Each recomputation gets
// a monotonically increasing sequence number; a result that arrives after a
// newer one has already landed is discarded instead of overwriting it.
type FeedWatcher struct {
	mu sync.Mutex

	viewerID uint
	page     int
	pageSize int
	search   string

	seq        uint64
	currentSeq uint64
	current    FeedPage

	resolve   func(FeedQuery) (FeedPage, error)
	debouncer *SearchDebouncer
	onUpdate  func(FeedPage)
}

func NewFeedWatcher(viewerID uint, debounce time.Duration, onUpdate func(FeedPage)) *FeedWatcher {
	w := &FeedWatcher{
		viewerID: viewerID,
		page:     1,
		pageSize: DefaultFeedPageSize,
		resolve:  ResolveFeed,
		onUpdate: onUpdate,
	}
	w.debouncer = NewSearchDebouncer(debounce, w.applySearch)
	return w
}

// Refresh recomputes with the current inputs. The caller usually invokes it
// once right after construction to load the initial page.
func (w *FeedWatcher) Refresh() {
	w.mu.Lock()
	w.seq++
	seq := w.seq
	query := FeedQuery{
		ViewerID: w.viewerID,
		Search:   w.search,
		Page:     w.page,
		PageSize: w.pageSize,
	}
	w.mu.Unlock()

	go func() {
		page, err := w.resolve(query)
		if err != nil {
			log.Error().Err(err).Uint("viewer", query.ViewerID).Msg("An error occurred when resolving watched feed...")
			return
		}

		w.mu.Lock()
		defer w.mu.Unlock()
		if seq < w.currentSeq {
			// A newer request already completed, this result is stale
			return
		}
		w.currentSeq = seq
		w.current = page
		if w.onUpdate != nil {
			w.onUpdate(page)
		}
	}()
}

func (w *FeedWatcher) SetPage(page int) {
	w.mu.Lock()
	if page < 1 {
		page = 1
	}
	w.page = page
	w.mu.Unlock()

	w.Refresh()
}

// SetSearch feeds the raw input through the debouncer; the effective term
// only changes once the input goes quiet.
func (w *FeedWatcher) SetSearch(term string) {
	w.debouncer.Push(term)
}

func (w *FeedWatcher) applySearch(term string) {
	w.mu.Lock()
	if w.search == term {
		w.mu.Unlock()
		return
	}
	w.search = term
	w.page = 1
	w.mu.Unlock()

	w.Refresh()
}

// InvalidateFollows is called after a follow or unfollow of the viewer.
func (w *FeedWatcher) InvalidateFollows() {
	w.Refresh()
}

// InvalidatePosts is called after the post collection changed.
func (w *FeedWatcher) InvalidatePosts() {
	w.Refresh()
}

func (w *FeedWatcher) Current() FeedPage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

func (w *FeedWatcher) Close() {
	w.debouncer.Stop()
}
