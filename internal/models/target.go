package models

// TargetLocation is the artifact produced by a selection request: a coordinate
// to aim the game at, paired with a display name. Name is always a resolved
// place name or a fallback-catalog name, never empty and never a formatted
// coordinate. A TargetLocation is immutable once returned; a new selection
// request produces a fresh value instead of mutating the previous one.
type TargetLocation struct {
	Name        string      `json:"name"`        // Name is the human-readable place name.
	Coordinates Coordinates `json:"coordinates"` // Coordinates is the geographical point of the target.
}
