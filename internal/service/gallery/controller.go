package gallery

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/miaudota/internal/domain"
)

// DefaultDebounce is the quiet period after the last criteria change
// before an evaluation runs.
const DefaultDebounce = 300 * time.Millisecond

// State is the lifecycle state of a Controller.
type State int

const (
	StateIdle State = iota
	StatePending
	StateEvaluating
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateEvaluating:
		return "evaluating"
	default:
		return "idle"
	}
}

// RemoteQuery searches candidates on a remote catalog.
type RemoteQuery interface {
	SearchPets(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Candidate, error)
}

// Source selects where a Controller draws candidates from:
// LocalCollection or RemoteSource.
type Source interface {
	isSource()
}

// LocalCollection filters a collection the caller already holds.
type LocalCollection struct {
	Items []domain.Candidate
}

// RemoteSource sends every evaluation to a remote query.
type RemoteSource struct {
	Query RemoteQuery
}

func (LocalCollection) isSource() {}
func (RemoteSource) isSource()    {}

// ResultFunc receives each filtered result.
type ResultFunc func(items []domain.Candidate)

// CriteriaFunc receives the raw criteria on every evaluation, in both modes.
type CriteriaFunc func(criteria domain.FilterCriteria)

// Option configures a Controller.
type Option func(*Controller)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithCriteriaListener registers a listener for raw criteria, for callers
// that manage their own fetching.
func WithCriteriaListener(fn CriteriaFunc) Option {
	return func(c *Controller) {
		c.onCriteria = fn
	}
}

// Controller re-filters a collection as criteria change. Changes are
// debounced; each change supersedes the pending evaluation and any remote
// search still in flight, and results of superseded evaluations are
// discarded rather than emitted.
//
// Callbacks run on controller goroutines (or on the caller's goroutine for
// Clear and Apply) and are serialized; a superseded evaluation invokes
// neither. They must not call Clear, Apply or Close.
type Controller struct {
	source     Source
	debounce   time.Duration
	onResult   ResultFunc
	onCriteria CriteriaFunc
	log        *slog.Logger

	mu       sync.Mutex
	criteria domain.FilterCriteria
	state    State
	gen      uint64
	timer    *time.Timer
	cancel   context.CancelFunc
	closed   bool

	// emitMu serializes callbacks. Lock order: emitMu, then mu.
	emitMu sync.Mutex
	wg     sync.WaitGroup
}

// NewController creates a Controller over the given source. A nil source
// behaves as an empty LocalCollection.
func NewController(log *slog.Logger, source Source, onResult ResultFunc, opts ...Option) *Controller {
	if source == nil {
		source = LocalCollection{}
	}
	if onResult == nil {
		onResult = func([]domain.Candidate) {}
	}

	c := &Controller{
		source:   source,
		debounce: DefaultDebounce,
		onResult: onResult,
		log:      log.With("service", "gallery"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetQuery updates the free-text query.
func (c *Controller) SetQuery(q string) {
	c.update(func(cr *domain.FilterCriteria) { cr.Query = q })
}

// SetStatus updates the status selection.
func (c *Controller) SetStatus(status string) {
	c.update(func(cr *domain.FilterCriteria) { cr.Status = status })
}

// SetSpecies updates the species selection.
func (c *Controller) SetSpecies(species string) {
	c.update(func(cr *domain.FilterCriteria) { cr.Species = species })
}

// SetSex updates the sex selection.
func (c *Controller) SetSex(sex string) {
	c.update(func(cr *domain.FilterCriteria) { cr.Sex = sex })
}

// SetCriteria replaces all four criteria at once.
func (c *Controller) SetCriteria(criteria domain.FilterCriteria) {
	c.update(func(cr *domain.FilterCriteria) { *cr = criteria })
}

// Criteria returns the current, untrimmed input state.
func (c *Controller) Criteria() domain.FilterCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Clear resets every criterion and emits the cleared result immediately,
// without waiting for the debounce window: the whole collection in local
// mode, an empty result in remote mode.
func (c *Controller) Clear() {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.supersedeLocked()
	c.criteria = domain.FilterCriteria{}
	c.state = StateIdle
	c.mu.Unlock()

	if c.onCriteria != nil {
		c.onCriteria(domain.FilterCriteria{})
	}
	c.onResult(c.clearedResult())
}

// Apply evaluates the current criteria now, on the caller's goroutine,
// cancelling the pending debounce.
func (c *Controller) Apply() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.supersedeLocked()
	gen := c.gen
	c.mu.Unlock()

	c.fire(gen)
}

// Close cancels pending and in-flight work and waits for running
// evaluations to finish. The controller emits nothing afterwards. Calling
// it from a callback deadlocks.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.supersedeLocked()
	c.state = StateIdle
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Controller) update(apply func(*domain.FilterCriteria)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	apply(&c.criteria)

	c.supersedeLocked()
	gen := c.gen
	c.state = StatePending
	c.timer = time.AfterFunc(c.debounce, func() { c.fire(gen) })
}

// supersedeLocked invalidates the pending timer and in-flight evaluation.
func (c *Controller) supersedeLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.state = StateEvaluating
	criteria := domain.NewFilterCriteria(c.criteria.Query, c.criteria.Status, c.criteria.Species, c.criteria.Sex)
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	defer c.wg.Done()
	defer cancel()

	if !c.notifyCriteria(gen, criteria) {
		return
	}

	result := c.evaluate(ctx, criteria)
	c.emit(gen, result)
}

// notifyCriteria hands criteria to the listener unless gen was superseded
// meanwhile. It reports whether gen is still current.
func (c *Controller) notifyCriteria(gen uint64, criteria domain.FilterCriteria) bool {
	if c.onCriteria == nil {
		return true
	}

	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	if !c.current(gen) {
		return false
	}
	c.onCriteria(criteria)
	return true
}

func (c *Controller) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed && gen == c.gen
}

func (c *Controller) evaluate(ctx context.Context, criteria domain.FilterCriteria) []domain.Candidate {
	switch src := c.source.(type) {
	case LocalCollection:
		return FilterCandidates(src.Items, criteria)
	case RemoteSource:
		if src.Query == nil {
			return []domain.Candidate{}
		}
		items, err := src.Query.SearchPets(ctx, criteria)
		if err != nil {
			if ctx.Err() != nil {
				c.log.DebugContext(ctx, "remote search superseded", slog.String("error", err.Error()))
				return nil
			}
			c.log.ErrorContext(ctx, "remote search failed",
				slog.String("error", err.Error()),
				slog.String("q", criteria.Query),
				slog.String("status", criteria.Status),
				slog.String("species", criteria.Species),
				slog.String("sex", criteria.Sex),
			)
			return []domain.Candidate{}
		}
		if items == nil {
			items = []domain.Candidate{}
		}
		return items
	}
	return []domain.Candidate{}
}

func (c *Controller) emit(gen uint64, result []domain.Candidate) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	current := !c.closed && gen == c.gen
	if current {
		c.state = StateIdle
		c.cancel = nil
	}
	c.mu.Unlock()

	if !current {
		c.log.Debug("discarding superseded result", slog.Int("items", len(result)))
		return
	}
	c.onResult(result)
}

func (c *Controller) clearedResult() []domain.Candidate {
	if src, ok := c.source.(LocalCollection); ok {
		out := make([]domain.Candidate, len(src.Items))
		copy(out, src.Items)
		return out
	}
	return []domain.Candidate{}
}
