package models

import (
	"time"
)

// PlayerProfile holds cumulative statistics for one user (one-to-one,
// enforced by the unique index on UserID).
//
// Invariants kept by the profile service: BestScore <= every winning
// attempt count <= WorstScore once both are set, and BestStreak never
// drops below CurrentStreak.
type PlayerProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	GamesWon  int `gorm:"default:0" json:"games_won"`
	GamesLost int `gorm:"default:0" json:"games_lost"`

	// BestScore/WorstScore are min/max attempts among wins; nil until the
	// first win, which is what keeps unplayed users off the leaderboard.
	BestScore  *int `json:"best_score"`
	WorstScore *int `json:"worst_score"`

	TotalAttempts int `gorm:"default:0" json:"total_attempts"`
	CurrentStreak int `gorm:"default:0" json:"current_streak"`
	BestStreak    int `gorm:"default:0" json:"best_streak"`

	Achievements AchievementList `gorm:"type:jsonb;serializer:json" json:"achievements"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// LeaderboardEntry is the read projection returned by the leaderboard query.
type LeaderboardEntry struct {
	Name      string `json:"name"`
	BestScore int    `json:"best_score"`
	Wins      int    `json:"wins"`
}
