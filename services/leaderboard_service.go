// services/leaderboard_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/mafalia/teranga-network/models"
	"github.com/mafalia/teranga-network/scoring"
	"github.com/mafalia/teranga-network/storage"
)

const (
	leaderboardCacheKey = "leaderboard:all"
	leaderboardCacheTTL = 30 * time.Second
)

// LeaderboardService builds the score-ranked partner listing. Results are
// cached briefly in Redis; each partner's stats are an independent read
// snapshot, so the listing is only ever as stale as the cache TTL.
type LeaderboardService struct {
	store  *storage.Store
	stats  *StatsService
	engine *scoring.Engine
	cache  *redis.Client // nil when Redis is unavailable
}

// NewLeaderboardService builds a LeaderboardService. cache may be nil.
func NewLeaderboardService(
	store *storage.Store,
	stats *StatsService,
	engine *scoring.Engine,
	cache *redis.Client,
) *LeaderboardService {
	return &LeaderboardService{
		store:  store,
		stats:  stats,
		engine: engine,
		cache:  cache,
	}
}

// Build fetches all partners, computes stats per partner and assembles the
// positioned leaderboard. Serves from cache when a fresh copy exists.
func (s *LeaderboardService) Build(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	partners, err := s.store.AllPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("building leaderboard: %w", err)
	}

	statsByID := make(map[string]models.PartnerStats, len(partners))
	for _, partner := range partners {
		stats, err := s.stats.ComputeStats(ctx, partner.ID)
		if err != nil {
			return nil, fmt.Errorf("building leaderboard: %w", err)
		}
		statsByID[partner.ID.Hex()] = *stats
	}

	entries := s.engine.BuildLeaderboard(partners, statsByID)
	s.toCache(ctx, entries)
	return entries, nil
}

func (s *LeaderboardService) fromCache(ctx context.Context) []models.LeaderboardEntry {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, leaderboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

func (s *LeaderboardService) toCache(ctx context.Context, entries []models.LeaderboardEntry) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, leaderboardCacheKey, raw, leaderboardCacheTTL).Err(); err != nil {
		log.Printf("Warning: leaderboard cache write failed: %v", err)
	}
}
