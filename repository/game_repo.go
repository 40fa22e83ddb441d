package repository

import (
	"context"
	"time"

	"guess-game-service/models"

	"gorm.io/gorm"
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	// GetOwned returns the game only when it exists AND belongs to userID.
	// Callers cannot tell the two failure cases apart.
	GetOwned(ctx context.Context, gameID, userID uint) (*models.Game, error)
	Save(ctx context.Context, game *models.Game) error
	// FindStale returns unfinished games with no activity since cutoff.
	FindStale(ctx context.Context, cutoff time.Time) ([]models.Game, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gameRepository) GetOwned(ctx context.Context, gameID, userID uint) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", gameID, userID).
		First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) Save(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Save(game).Error
}

func (r *gameRepository) FindStale(ctx context.Context, cutoff time.Time) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Where("won = ? AND abandoned_at IS NULL AND updated_at <= ?", false, cutoff).
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}
