// services/score_service.go
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mafalia/teranga-network/models"
	"github.com/mafalia/teranga-network/scoring"
	"github.com/mafalia/teranga-network/storage"
)

// ScoreService recomputes a partner's score from fresh stats and persists it.
// Rank writes are gated on ShouldUpgrade, so earned ranks are never lost.
type ScoreService struct {
	store  *storage.Store
	stats  *StatsService
	engine *scoring.Engine
}

// NewScoreService builds a ScoreService.
func NewScoreService(store *storage.Store, stats *StatsService, engine *scoring.Engine) *ScoreService {
	return &ScoreService{store: store, stats: stats, engine: engine}
}

// RecomputeResult reports the outcome of a score recomputation.
type RecomputeResult struct {
	Score    int                 `json:"score"`
	Rank     models.Rank         `json:"rank"`
	Upgraded bool                `json:"upgraded"`
	Stats    models.PartnerStats `json:"stats"`
}

// Recompute aggregates fresh stats, rescores the partner and writes the new
// score. The stored rank only moves up.
func (s *ScoreService) Recompute(ctx context.Context, partnerID primitive.ObjectID) (*RecomputeResult, error) {
	partner, err := s.store.PartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	stats, err := s.stats.ComputeStats(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	score := s.engine.Score(*stats)
	rank := partner.Rank
	upgraded := s.engine.ShouldUpgrade(partner.Rank, score)
	if upgraded {
		rank = s.engine.RankFor(score)
	}

	if err := s.store.UpdatePartnerScore(ctx, partnerID, score, rank); err != nil {
		return nil, err
	}

	return &RecomputeResult{
		Score:    score,
		Rank:     rank,
		Upgraded: upgraded,
		Stats:    *stats,
	}, nil
}

// RankInfo assembles the rank progress view for a score.
func (s *ScoreService) RankInfo(score int) models.RankInfo {
	current, next, pointsToNext := s.engine.NextRankInfo(score)
	return models.RankInfo{
		CurrentRank:  current,
		NextRank:     next,
		Score:        score,
		PointsToNext: pointsToNext,
		Progress:     s.engine.RankProgress(score),
	}
}
