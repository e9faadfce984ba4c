// scoring/leaderboard.go
package scoring

import (
	"sort"

	"github.com/mafalia/teranga-network/models"
)

// BuildLeaderboard projects partners and their stats into a positioned list
// sorted by score descending. Partners without a stats entry are skipped.
// Stored rank and score are trusted as supplied; they are not recomputed here.
//
// Equal scores are ordered by earliest JoinedAt, then by partner id, so the
// ordering is deterministic across calls.
func (e *Engine) BuildLeaderboard(
	partners []models.Partner,
	statsByID map[string]models.PartnerStats,
) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(partners))
	joined := make(map[string]int64, len(partners))

	for _, partner := range partners {
		id := partner.ID.Hex()
		stats, ok := statsByID[id]
		if !ok {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			PartnerID:    id,
			PartnerName:  partner.FullName(),
			Rank:         partner.Rank,
			Score:        partner.Score,
			TotalRevenue: stats.TotalRevenue,
			TotalClients: stats.TotalClients,
		})
		joined[id] = partner.JoinedAt.UnixNano()
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if joined[entries[i].PartnerID] != joined[entries[j].PartnerID] {
			return joined[entries[i].PartnerID] < joined[entries[j].PartnerID]
		}
		return entries[i].PartnerID < entries[j].PartnerID
	})

	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries
}
