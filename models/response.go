// models/response.go
package models

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RankInfo is returned by the rank progress endpoint.
type RankInfo struct {
	CurrentRank  Rank    `json:"currentRank"`
	NextRank     Rank    `json:"nextRank,omitempty"`
	Score        int     `json:"score"`
	PointsToNext int     `json:"pointsToNext"`
	Progress     float64 `json:"progress"`
}
