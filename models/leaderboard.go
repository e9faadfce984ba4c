// models/leaderboard.go
package models

// LeaderboardEntry is a derived projection of a partner and its stats with a
// 1-based position assigned after sorting by score descending.
type LeaderboardEntry struct {
	PartnerID    string  `json:"partnerId"`
	PartnerName  string  `json:"partnerName"`
	Rank         Rank    `json:"rank"`
	Score        int     `json:"score"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalClients int     `json:"totalClients"`
	Position     int     `json:"position"`
}
