package domain

import "strings"

// FallbackLocationName is used when items are reassigned away from a deleted location
const FallbackLocationName = "Sin ubicación"

// DefaultLocationNames seed the registry when no seed file is configured
var DefaultLocationNames = []string{"Refrigerador", "Despensa", "Congelador", "Encimera"}

// Location is a named place where items are stored
type Location struct {
	ID   int64
	Name string
}

// NewLocation validates the name. The id is assigned by the registry.
func NewLocation(name string) (*Location, error) {
	l := &Location{}
	if err := l.Rename(name); err != nil {
		return nil, err
	}
	return l, nil
}

// Rename replaces the location name
func (l *Location) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	l.Name = name
	return nil
}
