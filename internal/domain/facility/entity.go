package facility

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("facility name cannot be empty")

// Facility is owned by an external catalog; the core only needs identity
// and a display name.
type Facility struct {
	id   uuid.UUID
	name string
}

func NewFacility(id uuid.UUID, name string) (*Facility, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	return &Facility{id: id, name: trimmed}, nil
}

func (f *Facility) ID() uuid.UUID { return f.id }
func (f *Facility) Name() string  { return f.name }
