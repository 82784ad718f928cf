package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stylistapi/config"
	"stylistapi/models"
	"stylistapi/outfits"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// OutfitSession is one user's engine. The engine is not safe for concurrent
// use so every call goes through Do.
type OutfitSession struct {
	mu     sync.Mutex
	engine *outfits.Engine
}

func (s *OutfitSession) Do(fn func(e *outfits.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

type OutfitSessionProvider interface {
	Session(ctx context.Context, userID uint) (*OutfitSession, error)
}

// OutfitSessionStore keeps engines per user so novelty history survives
// between requests. Evicted sessions are rebuilt and primed from the user's
// latest stored outfits.
type OutfitSessionStore struct {
	DB       *gorm.DB
	Config   config.OutfitConfig
	Recorder outfits.Recorder
	Logger   zerolog.Logger

	mu    sync.Mutex
	raw   *ristretto.Cache
	cache *cache.Cache[*OutfitSession]
}

func NewOutfitSessionStore(db *gorm.DB, cfg config.OutfitConfig, recorder outfits.Recorder, logger zerolog.Logger) (*OutfitSessionStore, error) {
	raw, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1e4,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &OutfitSessionStore{
		DB:       db,
		Config:   cfg,
		Recorder: recorder,
		Logger:   logger,
		raw:      raw,
		cache:    cache.New[*OutfitSession](ristretto_store.NewRistretto(raw)),
	}, nil
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("outfit-session:%d", userID)
}

func (s *OutfitSessionStore) Session(ctx context.Context, userID uint) (*OutfitSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(userID)
	// Any lookup error is a miss.
	if session, err := s.cache.Get(ctx, key); err == nil && session != nil {
		return session, nil
	}

	session := &OutfitSession{engine: s.newEngine(userID)}
	if err := s.prime(ctx, session.engine, userID); err != nil {
		s.Logger.Warn().Err(err).Uint("user_id", userID).Msg("[Outfit] could not prime novelty history")
	}

	ttl := s.Config.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if err := s.cache.Set(ctx, key, session, store.WithCost(1), store.WithExpiration(ttl)); err != nil {
		s.Logger.Warn().Err(err).Uint("user_id", userID).Msg("[Outfit] session was not cached")
	}
	s.raw.Wait()
	return session, nil
}

func (s *OutfitSessionStore) newEngine(userID uint) *outfits.Engine {
	opts := []outfits.Option{
		outfits.WithNoveltyWindow(s.Config.NoveltyWindow),
		outfits.WithMaxAttempts(s.Config.MaxAttempts),
		outfits.WithRecorder(s.Recorder),
		outfits.WithLogger(s.Logger.With().Uint("user_id", userID).Logger()),
	}
	if s.Config.Seed != 0 {
		opts = append(opts, outfits.WithSeed(s.Config.Seed+int64(userID)))
	}
	return outfits.New(opts...)
}

// noveltySources are the stored outfits that came out of Assemble.
var noveltySources = []string{models.SourceGenerated, models.SourceDaily}

// prime replays the newest assembled outfits, oldest first, into the guard.
func (s *OutfitSessionStore) prime(ctx context.Context, engine *outfits.Engine, userID uint) error {
	if s.DB == nil {
		return nil
	}
	recent, err := RecentOutfits(ctx, s.DB, userID, s.Config.NoveltyWindow, noveltySources...)
	if err != nil || len(recent) == 0 {
		return err
	}
	clothes, err := LoadWardrobe(ctx, s.DB, userID)
	if err != nil {
		return err
	}
	index := make(map[uint]outfits.Item, len(clothes))
	for _, item := range models.ToItems(clothes) {
		index[item.ID] = item
	}
	for i := len(recent) - 1; i >= 0; i-- {
		o := recent[i].ToOutfit()
		engine.Guard().Record(outfits.Signature(&o, index))
	}
	return nil
}
