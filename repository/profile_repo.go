package repository

import (
	"context"
	"errors"

	"guess-game-service/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.PlayerProfile, error)
	GetOrCreate(ctx context.Context, userID uint) (*models.PlayerProfile, error)
	Save(ctx context.Context, profile *models.PlayerProfile) error
	TopScores(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.PlayerProfile, error) {
	var profile models.PlayerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrCreate returns the user's profile, creating it on first access.
// Concurrent first requests may both try the insert; the loser hits the
// unique index on user_id and retries as a read, so exactly one row exists.
func (r *profileRepository) GetOrCreate(ctx context.Context, userID uint) (*models.PlayerProfile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := models.PlayerProfile{UserID: userID, Achievements: models.AchievementList{}}
	if createErr := r.db.WithContext(ctx).Create(&fresh).Error; createErr != nil {
		// Lost the creation race — the row is there now, read it back.
		return r.GetByUserID(ctx, userID)
	}
	return &fresh, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *models.PlayerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// TopScores ranks every profile with a recorded win by best score ascending.
// Ties keep store order; callers must not rely on a tiebreak.
func (r *profileRepository) TopScores(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0)

	q := r.db.WithContext(ctx).
		Table("player_profiles").
		Select("users.name AS name, player_profiles.best_score AS best_score, player_profiles.games_won AS wins").
		Joins("INNER JOIN users ON users.id = player_profiles.user_id").
		Where("player_profiles.best_score IS NOT NULL").
		Order("player_profiles.best_score ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
