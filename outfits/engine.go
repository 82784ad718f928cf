package outfits

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultNoveltyWindow = 10
	DefaultMaxAttempts   = 5
)

// Recorder receives engine events. services.OutfitMetrics implements it on
// top of prometheus.
type Recorder interface {
	OutfitAssembled(theme Theme)
	FallbackUsed(reason string)
	DuplicateRetried()
	AssemblyFailed(err error)
	RecommendationsRanked(count int)
}

type nopRecorder struct{}

func (nopRecorder) OutfitAssembled(Theme)     {}
func (nopRecorder) FallbackUsed(string)       {}
func (nopRecorder) DuplicateRetried()         {}
func (nopRecorder) AssemblyFailed(error)      {}
func (nopRecorder) RecommendationsRanked(int) {}

// Engine generates and ranks outfits. It owns its random source and novelty
// guard and is not safe for concurrent use: give every session its own
// engine or serialize access.
type Engine struct {
	rng         *rand.Rand
	guard       *NoveltyGuard
	logger      zerolog.Logger
	recorder    Recorder
	now         func() time.Time
	newID       func() string
	maxAttempts int
}

type Option func(*Engine)

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithClock replaces the wall clock used for seasons and timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		if newID != nil {
			e.newID = newID
		}
	}
}

func WithNoveltyWindow(size int) Option {
	return func(e *Engine) {
		e.guard = NewNoveltyGuard(size)
	}
}

// WithNoveltyGuard shares an existing guard, e.g. to keep history across
// engine instances of the same session.
func WithNoveltyGuard(g *NoveltyGuard) Option {
	return func(e *Engine) {
		if g != nil {
			e.guard = g
		}
	}
}

// WithMaxAttempts bounds how many times Assemble regenerates a duplicate.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		logger:      zerolog.Nop(),
		recorder:    nopRecorder{},
		now:         time.Now,
		newID:       uuid.NewString,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.guard == nil {
		e.guard = NewNoveltyGuard(DefaultNoveltyWindow)
	}
	return e
}

// Guard exposes the engine's novelty guard.
func (e *Engine) Guard() *NoveltyGuard {
	return e.guard
}

func (e *Engine) currentSeason() Season {
	return SeasonForMonth(e.now().Month())
}

func (e *Engine) pick(items []Item) *Item {
	if len(items) == 0 {
		return nil
	}
	item := items[e.rng.Intn(len(items))]
	return &item
}

func (e *Engine) chance(p float64) bool {
	return e.rng.Float64() < p
}

func (e *Engine) newOutfit(user User, name string, season Season, occasion Occasion) *Outfit {
	now := e.now()
	return &Outfit{
		ID:           e.newID(),
		OwnerUserID:  user.ID,
		Name:         name,
		CreatedAt:    now,
		LastModified: now,
		AIGenerated:  true,
		Season:       season,
		Occasion:     occasion,
	}
}
