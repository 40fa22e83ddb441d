package services

// Band classifies how far a missed guess landed from the secret.
type Band int

const (
	BandVeryClose Band = iota // distance <= 5
	BandWarm                  // distance <= 15
	BandCold                  // distance <= 30
	BandWayOff                // everything further
)

func (b Band) String() string {
	switch b {
	case BandVeryClose:
		return "very_close"
	case BandWarm:
		return "warm"
	case BandCold:
		return "cold"
	default:
		return "way_off"
	}
}

// Direction tells the player which way to adjust after a miss.
type Direction int

const (
	TooLow Direction = iota
	TooHigh
)

func (d Direction) String() string {
	if d == TooLow {
		return "too_low"
	}
	return "too_high"
}

// OutcomeKind is the variant tag of an Outcome.
type OutcomeKind int

const (
	OutcomeOutOfRange OutcomeKind = iota
	OutcomeWin
	OutcomeMiss
)

// Outcome is the result of evaluating one guess. Band and Direction are
// meaningful only when Kind is OutcomeMiss.
type Outcome struct {
	Kind      OutcomeKind `json:"kind"`
	Band      Band        `json:"band,omitempty"`
	Direction Direction   `json:"direction,omitempty"`
}

// Evaluate scores a single guess against the secret. It is total: every
// integer input yields exactly one outcome, and the range check runs before
// any distance math. Band thresholds are inclusive and tested in ascending
// order so each distance falls into exactly one band.
func Evaluate(guess, secret, low, high int) Outcome {
	if guess < low || guess > high {
		return Outcome{Kind: OutcomeOutOfRange}
	}
	if guess == secret {
		return Outcome{Kind: OutcomeWin}
	}

	distance := guess - secret
	direction := TooHigh
	if distance < 0 {
		distance = -distance
		direction = TooLow
	}

	band := BandWayOff
	switch {
	case distance <= 5:
		band = BandVeryClose
	case distance <= 15:
		band = BandWarm
	case distance <= 30:
		band = BandCold
	}

	return Outcome{Kind: OutcomeMiss, Band: band, Direction: direction}
}
