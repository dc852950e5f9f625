package state

import (
	"context"
	"fmt"
	"sync"

	"tmdb/browser/internal/domain"
	"tmdb/browser/internal/repository"

	log "github.com/sirupsen/logrus"
)

// ViewState is the mutable record driving what the presentation layer displays.
type ViewState struct {
	Movies  []domain.Movie // empty until the first successful list load
	Detail  *domain.Movie  // replaced wholesale on each detail load
	Loading bool           // true only while a request is in flight
	Err     string         // cleared at the start of every request, set on failure
}

// Holder owns the ViewState for one screen session. Methods are safe to call
// from any goroutine. Overlapping loads are permitted and not sequenced:
// whichever response lands last wins.
type Holder struct {
	mu    sync.Mutex
	state ViewState
	repo  repository.MovieRepository
}

func NewHolder(repo repository.MovieRepository) *Holder {
	return &Holder{
		repo: repo,
	}
}

// Snapshot returns a copy of the current view state. Loads replace the
// movie slice and detail pointer wholesale, so the copy stays stable.
func (h *Holder) Snapshot() ViewState {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.state
}

// LoadPopular fetches the popular-movies list into the view state.
// On failure the previously held list is left untouched.
func (h *Holder) LoadPopular(ctx context.Context) {
	h.begin(false)
	defer h.settle()

	movies, err := h.repo.GetPopular(ctx)
	if err != nil {
		h.fail("popular movies", err)
		return
	}

	h.mu.Lock()
	h.state.Movies = movies
	h.mu.Unlock()
}

// LoadDetail fetches one movie's details into the view state. The previous
// detail is cleared before the request so stale details never display under
// a fresh loading indicator.
func (h *Holder) LoadDetail(ctx context.Context, id int) {
	h.begin(true)
	defer h.settle()

	movie, err := h.repo.GetDetail(ctx, id)
	if err != nil {
		h.fail("movie details", err)
		return
	}

	h.mu.Lock()
	h.state.Detail = movie
	h.mu.Unlock()
}

func (h *Holder) begin(clearDetail bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.Loading = true
	h.state.Err = ""
	if clearDetail {
		h.state.Detail = nil
	}
}

// settle clears the loading flag; deferred so it runs on every outcome.
func (h *Holder) settle() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.Loading = false
}

func (h *Holder) fail(resource string, err error) {
	msg := fmt.Sprintf("Failed to load %s: %v", resource, err)
	log.Errorf("❌ %s", msg)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.state.Err = msg
}
