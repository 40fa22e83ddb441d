package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"guess-game-service/models"
	"guess-game-service/repository"

	"gorm.io/gorm"
)

// ErrGameNotFound covers both a missing game and an ownership mismatch;
// the caller is not told which.
var ErrGameNotFound = errors.New("game not found")

type GameService struct {
	games repository.GameRepository

	// Rand draws the secret from [low, high]. Exposed so tests can pin the
	// secret; defaults to a uniform draw.
	Rand func(low, high int) int
}

func NewGameService(games repository.GameRepository) *GameService {
	return &GameService{
		games: games,
		Rand: func(low, high int) int {
			return low + rand.Intn(high-low+1)
		},
	}
}

// GameView is the read projection handed to the web layer. It never carries
// the secret.
type GameView struct {
	ID         uint              `json:"id"`
	Difficulty models.Difficulty `json:"difficulty"`
	Attempts   int               `json:"attempts"`
	Low        int               `json:"low"`
	High       int               `json:"high"`
	Prompt     string            `json:"prompt"`
}

// GuessResult is what one recorded guess produced: the evaluator outcome
// plus the game's state after any mutation.
type GuessResult struct {
	Outcome Outcome
	Game    *models.Game
}

// StartGame inserts a fresh game at the given difficulty with a uniformly
// drawn secret. The returned id becomes the caller's current-game pointer.
func (s *GameService) StartGame(ctx context.Context, userID uint, difficulty models.Difficulty) (*models.Game, error) {
	low, high := difficulty.Range()
	game := &models.Game{
		UserID:       userID,
		Difficulty:   difficulty,
		SecretNumber: s.Rand(low, high),
		Guesses:      models.GuessList{},
	}
	if err := s.games.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

// GetActiveGame returns the view for the game only if it exists and belongs
// to userID; otherwise ErrGameNotFound.
func (s *GameService) GetActiveGame(ctx context.Context, userID, gameID uint) (*GameView, error) {
	game, err := s.games.GetOwned(ctx, gameID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return viewOf(game), nil
}

// RecordGuess evaluates one guess against the owned game and persists it.
// Ordering is validate-before-record: an out-of-range guess comes back as a
// normal outcome but is never appended, so it does not count as an attempt.
// Finished games behave as absent to keep the won flag write-once.
func (s *GameService) RecordGuess(ctx context.Context, gameID, userID uint, guess int) (*GuessResult, error) {
	game, err := s.games.GetOwned(ctx, gameID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	if game.Finished() {
		return nil, ErrGameNotFound
	}

	low, high := game.Difficulty.Range()
	outcome := Evaluate(guess, game.SecretNumber, low, high)
	if outcome.Kind == OutcomeOutOfRange {
		return &GuessResult{Outcome: outcome, Game: game}, nil
	}

	game.Guesses = append(game.Guesses, guess)
	game.Attempts++
	if outcome.Kind == OutcomeWin {
		now := time.Now()
		game.Won = true
		game.CompletedAt = &now
	}
	if err := s.games.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save guess: %w", err)
	}

	return &GuessResult{Outcome: outcome, Game: game}, nil
}

// Forfeit marks the owned, unfinished game abandoned. The profile loss is
// the caller's move, mirroring how wins are wired.
func (s *GameService) Forfeit(ctx context.Context, gameID, userID uint) (*models.Game, error) {
	game, err := s.games.GetOwned(ctx, gameID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	if game.Finished() {
		return nil, ErrGameNotFound
	}

	now := time.Now()
	game.AbandonedAt = &now
	if err := s.games.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to forfeit game: %w", err)
	}
	return game, nil
}

func viewOf(game *models.Game) *GameView {
	low, high := game.Difficulty.Range()
	return &GameView{
		ID:         game.ID,
		Difficulty: game.Difficulty,
		Attempts:   game.Attempts,
		Low:        low,
		High:       high,
		Prompt:     fmt.Sprintf("Guess a number between %d and %d", low, high),
	}
}
