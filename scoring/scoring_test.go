package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mafalia/teranga-network/models"
)

func TestScoreWeights(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name  string
		stats models.PartnerStats
		want  int
	}{
		{name: "empty stats", stats: models.PartnerStats{}, want: 0},
		{name: "one client", stats: models.PartnerStats{TotalClients: 1}, want: 10000},
		{name: "one active client", stats: models.PartnerStats{TotalClients: 1, ActiveClients: 1}, want: 25000},
		{name: "one order", stats: models.PartnerStats{TotalOrders: 1}, want: 5000},
		{name: "one confirmed order", stats: models.PartnerStats{TotalOrders: 1, ConfirmedOrders: 1}, want: 15000},
		{name: "one completed payment", stats: models.PartnerStats{CompletedPayments: 1}, want: 20000},
		{name: "revenue counts one to one", stats: models.PartnerStats{TotalRevenue: 123456}, want: 123456},
		{name: "commission weight is inert", stats: models.PartnerStats{TotalCommission: 999999}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Score(tt.stats))
		})
	}
}

func TestScoreRoundsOnce(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	assert.Equal(t, 101, engine.Score(models.PartnerStats{TotalRevenue: 100.5}))
	assert.Equal(t, 100, engine.Score(models.PartnerStats{TotalRevenue: 100.4}))
}

func TestScoreIsDeterministic(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	stats := models.PartnerStats{
		TotalClients:      7,
		ActiveClients:     3,
		TotalOrders:       12,
		ConfirmedOrders:   8,
		CompletedPayments: 5,
		TotalRevenue:      345678,
	}

	first := engine.Score(stats)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.Score(stats))
	}
}

func TestScoreMonotonicity(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	base := models.PartnerStats{
		TotalClients:      2,
		ActiveClients:     1,
		TotalOrders:       3,
		ConfirmedOrders:   1,
		CompletedPayments: 1,
		TotalRevenue:      50000,
	}
	baseScore := engine.Score(base)

	grown := base
	grown.TotalClients++
	assert.Greater(t, engine.Score(grown), baseScore, "adding a client must not lower the score")

	grown = base
	grown.TotalRevenue += 1000
	assert.Greater(t, engine.Score(grown), baseScore, "adding revenue must not lower the score")

	grown = base
	grown.CompletedPayments++
	assert.Greater(t, engine.Score(grown), baseScore, "adding a payment must not lower the score")
}

func TestRankFor(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		score int
		want  models.Rank
	}{
		{0, models.RankBronze},
		{999999, models.RankBronze},
		{1000000, models.RankSilver},
		{4999999, models.RankSilver},
		{5000000, models.RankGold},
		{99999999, models.RankGold},
		{100000000, models.RankPlatinum},
		{250000000, models.RankPlatinum},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.RankFor(tt.score), "score %d", tt.score)
	}
}

func TestNextRankInfo(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	current, next, pointsToNext := engine.NextRankInfo(395000)
	assert.Equal(t, models.RankBronze, current)
	assert.Equal(t, models.RankSilver, next)
	assert.Equal(t, 605000, pointsToNext)

	current, next, pointsToNext = engine.NextRankInfo(2000000)
	assert.Equal(t, models.RankSilver, current)
	assert.Equal(t, models.RankGold, next)
	assert.Equal(t, 3000000, pointsToNext)

	current, next, pointsToNext = engine.NextRankInfo(100000000)
	assert.Equal(t, models.RankPlatinum, current)
	assert.Equal(t, models.Rank(""), next)
	assert.Equal(t, 0, pointsToNext)
}

func TestRankProgressBounds(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	for _, score := range []int{0, 1, 999999, 1000000, 3000000, 5000000, 99999999, 100000000, 500000000} {
		progress := engine.RankProgress(score)
		assert.GreaterOrEqual(t, progress, 0.0, "score %d", score)
		assert.LessOrEqual(t, progress, 100.0, "score %d", score)
	}

	assert.Equal(t, 0.0, engine.RankProgress(0))
	assert.Equal(t, 39.5, engine.RankProgress(395000))
	assert.Equal(t, 25.0, engine.RankProgress(2000000))
	assert.Equal(t, 100.0, engine.RankProgress(100000000))
	assert.Equal(t, 100.0, engine.RankProgress(999999999))
}

func TestShouldUpgrade(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	assert.True(t, engine.ShouldUpgrade(models.RankBronze, 1000000))
	assert.True(t, engine.ShouldUpgrade(models.RankBronze, 100000000))
	assert.True(t, engine.ShouldUpgrade(models.RankSilver, 5000000))
	assert.False(t, engine.ShouldUpgrade(models.RankBronze, 999999))
	assert.False(t, engine.ShouldUpgrade(models.RankSilver, 1000000))

	// Ranks are sticky: a score dip never signals a downgrade.
	assert.False(t, engine.ShouldUpgrade(models.RankGold, 0))
	assert.False(t, engine.ShouldUpgrade(models.RankPlatinum, 42))
}

func TestEndToEndScenario(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	// 3 clients (2 active), 5 orders (3 confirmed, 1 active), 4 completed
	// payments totalling 200,000 FCFA.
	stats := models.PartnerStats{
		TotalClients:      3,
		ActiveClients:     2,
		TotalOrders:       5,
		ConfirmedOrders:   3,
		ActiveOrders:      1,
		CompletedPayments: 4,
		TotalRevenue:      200000,
	}

	score := engine.Score(stats)
	require.Equal(t, 395000, score)
	assert.Equal(t, models.RankBronze, engine.RankFor(score))

	current, next, pointsToNext := engine.NextRankInfo(score)
	assert.Equal(t, models.RankBronze, current)
	assert.Equal(t, models.RankSilver, next)
	assert.Equal(t, 605000, pointsToNext)
	assert.Equal(t, 39.5, engine.RankProgress(score))
}

func TestRankOrdinal(t *testing.T) {
	assert.Equal(t, 0, models.RankBronze.Ordinal())
	assert.Equal(t, 1, models.RankSilver.Ordinal())
	assert.Equal(t, 2, models.RankGold.Ordinal())
	assert.Equal(t, 3, models.RankPlatinum.Ordinal())
	assert.Equal(t, -1, models.Rank("Diamond").Ordinal())
}
