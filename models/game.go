package models

import (
	"time"
)

// GuessList is the append-only sequence of guesses for one game,
// persisted as a JSON column.
type GuessList []int

// Game is one game instance. Rows are history: abandoned games stay in the
// table, and the "current game" pointer lives in the web session, not here.
type Game struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Difficulty Difficulty `gorm:"size:20;not null" json:"difficulty"`
	Attempts   int        `gorm:"default:0" json:"attempts"`
	Won        bool       `gorm:"default:false" json:"won"`

	// SecretNumber is drawn once at creation and never shown to the player.
	SecretNumber int       `gorm:"not null" json:"-"`
	Guesses      GuessList `gorm:"type:jsonb;serializer:json" json:"guesses"`

	PlayedAt    time.Time  `gorm:"autoCreateTime" json:"played_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// AbandonedAt marks games counted as losses by the forfeit endpoint or
	// the abandonment sweeper, so neither path double-counts.
	AbandonedAt *time.Time `json:"abandoned_at,omitempty"`

	// UpdatedAt doubles as the last-activity marker for the sweeper.
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// Finished reports whether the game can no longer accept guesses.
func (g *Game) Finished() bool {
	return g.Won || g.AbandonedAt != nil
}
