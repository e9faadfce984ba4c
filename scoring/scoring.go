// scoring/scoring.go
package scoring

import (
	"math"

	"github.com/mafalia/teranga-network/models"
)

// Weights are the points awarded per unit of each business-activity metric.
type Weights struct {
	Client           float64 // points per enrolled client
	ActiveClient     float64 // extra points for active clients
	Order            float64 // points per order
	ConfirmedOrder   float64 // extra points for confirmed orders
	CompletedPayment float64 // points per completed payment
	Revenue          float64 // points per FCFA of revenue
	Commission       float64 // reserved, currently zero
}

// Thresholds are the inclusive lower score bounds of each rank.
type Thresholds struct {
	Bronze   int
	Silver   int
	Gold     int
	Platinum int
}

// Config holds the weight table and rank thresholds for an Engine. It is
// treated as immutable once the Engine is constructed.
type Config struct {
	Weights    Weights
	Thresholds Thresholds
}

// DefaultConfig returns the production weight table and rank thresholds.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Client:           10000,
			ActiveClient:     15000,
			Order:            5000,
			ConfirmedOrder:   10000,
			CompletedPayment: 20000,
			Revenue:          1,
			Commission:       0,
		},
		Thresholds: Thresholds{
			Bronze:   0,
			Silver:   1000000,
			Gold:     5000000,
			Platinum: 100000000,
		},
	}
}

// Engine computes scores, ranks and leaderboards from partner stats.
// All methods are pure functions of the injected config.
type Engine struct {
	cfg Config
}

// NewEngine builds an Engine around the given config.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Score maps a stats snapshot to an integer score via the weight table.
// Negative inputs pass through unclamped; supplying non-negative data is the
// caller's responsibility.
func (e *Engine) Score(stats models.PartnerStats) int {
	w := e.cfg.Weights
	score := float64(stats.TotalClients)*w.Client +
		float64(stats.ActiveClients)*w.ActiveClient +
		float64(stats.TotalOrders)*w.Order +
		float64(stats.ConfirmedOrders)*w.ConfirmedOrder +
		float64(stats.CompletedPayments)*w.CompletedPayment +
		stats.TotalRevenue*w.Revenue +
		stats.TotalCommission*w.Commission
	return int(math.Round(score))
}

// RankFor classifies a score into a tier, testing top-down from Platinum.
func (e *Engine) RankFor(score int) models.Rank {
	t := e.cfg.Thresholds
	switch {
	case score >= t.Platinum:
		return models.RankPlatinum
	case score >= t.Gold:
		return models.RankGold
	case score >= t.Silver:
		return models.RankSilver
	default:
		return models.RankBronze
	}
}

// NextRankInfo reports the current rank, the next rank (empty at Platinum)
// and the points still needed to reach it.
func (e *Engine) NextRankInfo(score int) (current, next models.Rank, pointsToNext int) {
	t := e.cfg.Thresholds
	current = e.RankFor(score)

	switch current {
	case models.RankBronze:
		next = models.RankSilver
		pointsToNext = t.Silver - score
	case models.RankSilver:
		next = models.RankGold
		pointsToNext = t.Gold - score
	case models.RankGold:
		next = models.RankPlatinum
		pointsToNext = t.Platinum - score
	case models.RankPlatinum:
		// terminal tier
	}
	return current, next, pointsToNext
}

// RankProgress returns the percentage of the way from the current tier's
// lower threshold to the next tier's, clamped to [0,100]. Platinum is always
// 100.
func (e *Engine) RankProgress(score int) float64 {
	t := e.cfg.Thresholds

	var currentThreshold, nextThreshold int
	switch e.RankFor(score) {
	case models.RankBronze:
		currentThreshold, nextThreshold = t.Bronze, t.Silver
	case models.RankSilver:
		currentThreshold, nextThreshold = t.Silver, t.Gold
	case models.RankGold:
		currentThreshold, nextThreshold = t.Gold, t.Platinum
	case models.RankPlatinum:
		return 100
	}

	progress := float64(score-currentThreshold) / float64(nextThreshold-currentThreshold) * 100
	return math.Min(math.Max(progress, 0), 100)
}

// ShouldUpgrade reports whether newScore implies a strictly higher tier than
// currentRank. Ranks are sticky: this never signals a downgrade.
func (e *Engine) ShouldUpgrade(currentRank models.Rank, newScore int) bool {
	return e.RankFor(newScore).Ordinal() > currentRank.Ordinal()
}
