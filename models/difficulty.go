package models

// Difficulty selects the guessing range for a game.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Range returns the inclusive guessing bounds for d.
//
// This is the single fallback point for difficulty: any value that is not
// one of the recognized constants (including rows written before a rename)
// gets the medium range. There is no error path.
func (d Difficulty) Range() (low, high int) {
	switch d {
	case DifficultyEasy:
		return 1, 50
	case DifficultyHard:
		return 1, 500
	default:
		return 1, 100 // medium
	}
}

// ParseDifficulty normalizes user input to a known difficulty.
// Unknown or empty input maps to medium, matching Range's fallback.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	default:
		return DifficultyMedium
	}
}
