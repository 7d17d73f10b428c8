package game

const (
	Lanes = 4

	// Notes start above the top edge of the playfield
	SpawnOffset = -50.0

	// Note speed is BaseSpeed + multiplier*SpeedScale units per tick
	BaseSpeed  = 2.0
	SpeedScale = 3.0

	// Notes are dropped once this far past the bottom edge
	CleanupMargin = 100.0
)

// NoteSpeed never drops to zero for a positive multiplier.
func NoteSpeed(multiplier float64) float64 {
	return BaseSpeed + multiplier*SpeedScale
}

func ValidLane(lane int) bool {
	return lane >= 0 && lane < Lanes
}

