package services

import (
	"context"

	"guess-game-service/models"
	"guess-game-service/repository"
)

type LeaderboardService struct {
	profiles repository.ProfileRepository
}

func NewLeaderboardService(profiles repository.ProfileRepository) *LeaderboardService {
	return &LeaderboardService{profiles: profiles}
}

// TopScores returns the best-ranked players by fewest winning attempts.
// limit <= 0 means no limit. Users without a recorded win never appear;
// when nobody has won yet the result is an empty slice, not an error.
func (s *LeaderboardService) TopScores(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	return s.profiles.TopScores(ctx, limit)
}
