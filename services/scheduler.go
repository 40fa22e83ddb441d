package services

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartAbandonSweeper periodically marks unfinished games with no activity
// for `after` as abandoned and counts them as losses. Running it is what
// keeps games_lost meaningful; without it only explicit forfeits count.
func (s *GameService) StartAbandonSweeper(profiles *ProfileService, after time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			ctx := context.Background()
			cutoff := time.Now().Add(-after)

			stale, err := s.games.FindStale(ctx, cutoff)
			if err != nil {
				log.Printf("[Sweeper] DB error: %v", err)
				return
			}

			for i := range stale {
				game := &stale[i]
				now := time.Now()
				game.AbandonedAt = &now
				if err := s.games.Save(ctx, game); err != nil {
					log.Printf("[Sweeper] Failed to mark game %d abandoned: %v", game.ID, err)
					continue
				}
				if _, err := profiles.RecordLoss(ctx, game.UserID); err != nil {
					log.Printf("[Sweeper] Failed to record loss for user %d: %v", game.UserID, err)
					continue
				}
				log.Printf("🧹 Abandoned game %d (user %d, %d attempts) counted as loss", game.ID, game.UserID, game.Attempts)
			}
		}),
	)
}
