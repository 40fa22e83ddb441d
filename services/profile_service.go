package services

import (
	"context"
	"fmt"
	"log"

	"guess-game-service/models"
	"guess-game-service/repository"
)

type ProfileService struct {
	profiles repository.ProfileRepository
}

func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// GetProfile returns the user's profile, lazily creating it on first access.
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.PlayerProfile, error) {
	return s.profiles.GetOrCreate(ctx, userID)
}

// RecordWin folds one winning game into the user's cumulative stats.
// Called exactly once per win, after the game row was marked won.
func (s *ProfileService) RecordWin(ctx context.Context, userID uint, attempts int) (*models.PlayerProfile, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile.GamesWon++
	profile.CurrentStreak++
	profile.TotalAttempts += attempts

	if profile.BestScore == nil || attempts < *profile.BestScore {
		best := attempts
		profile.BestScore = &best
	}
	if profile.WorstScore == nil || attempts > *profile.WorstScore {
		worst := attempts
		profile.WorstScore = &worst
	}
	if profile.CurrentStreak > profile.BestStreak {
		profile.BestStreak = profile.CurrentStreak
	}

	// Each check is independent; Award is a no-op when the badge is already
	// present. Streak and win checks are exact-equality triggers: the badge
	// is earned the moment the stat first reaches the mark.
	if attempts == 1 {
		s.award(profile, models.AchievementOneShotWonder)
	}
	if profile.CurrentStreak == 3 {
		s.award(profile, models.AchievementHotStreak)
	}
	if profile.GamesWon == 10 {
		s.award(profile, models.AchievementVeteran)
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

// RecordLoss counts a forfeited or abandoned game and breaks the streak.
func (s *ProfileService) RecordLoss(ctx context.Context, userID uint) (*models.PlayerProfile, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile.GamesLost++
	profile.CurrentStreak = 0

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) award(profile *models.PlayerProfile, a models.Achievement) {
	if profile.Achievements.Award(a) {
		log.Printf("🎖️ Badge awarded: %s → user %d", a.Info().Name, profile.UserID)
	}
}
