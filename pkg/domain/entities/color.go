package entities

import "github.com/google/uuid"

// ColorID is the stable identifier of a colorway within a size group
type ColorID string

// ColorEntry represents a colorway. The ID is the aggregation key for
// quantities already entered; renaming does not fork them.
type ColorEntry struct {
	ID   ColorID
	Name string
}

// NewColorEntry creates a color entry with a generated id
func NewColorEntry(name string) ColorEntry {
	return ColorEntry{
		ID:   ColorID(uuid.NewString()),
		Name: name,
	}
}
