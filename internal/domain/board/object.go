package board

import "errors"

type Category string

const (
	CategorySun           Category = "sun"
	CategoryEarth         Category = "earth"
	CategoryPlanet        Category = "planet"
	CategoryMoon          Category = "moon"
	CategoryAsteroidField Category = "asteroid_field"
	CategoryComet         Category = "comet"
	// CategoryNone marks a printed wedge that carries no object.
	CategoryNone Category = "none"
)

var ErrInvalidObject = errors.New("invalid celestial object")

// CelestialObject is immutable once placed: Ring and Sector are its native
// address in the ring's own unrotated frame.
type CelestialObject struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Ring     Ring     `json:"ring"`
	Sector   int      `json:"sector"`
}

func (o CelestialObject) Placeholder() bool {
	return o.Category == CategoryNone
}

func (o CelestialObject) Validate() error {
	if o.ID == "" || o.Category == "" || !o.Ring.Valid() {
		return ErrInvalidObject
	}
	if _, err := SlotFromLabel(o.Sector); err != nil {
		return ErrInvalidObject
	}
	return nil
}

// ObjectPosition is a cataloged object's address resolved against a rotation
// state. Present is false only for placeholder wedges.
type ObjectPosition struct {
	Ring    Ring `json:"ring"`
	Sector  int  `json:"sector"`
	Present bool `json:"present"`
}
