package board

import "fmt"

// Catalog holds the printed board's objects plus any extras injected by game
// effects. It is built once per query from immutable inputs; injection is
// append-only and handled by the persistence layer, never by mutating a
// catalog in place.
type Catalog struct {
	objects []CelestialObject
	byID    map[string]CelestialObject
	terrain map[Ring][SectorsPerRing]Terrain
}

func NewCatalog(static []CelestialObject, extras ...CelestialObject) (Catalog, error) {
	all := make([]CelestialObject, 0, len(static)+len(extras))
	all = append(all, static...)
	all = append(all, extras...)

	byID := make(map[string]CelestialObject, len(all))
	terrain := map[Ring][SectorsPerRing]Terrain{}
	for _, obj := range all {
		if err := obj.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("catalog object %q: %w", obj.ID, err)
		}
		if _, dup := byID[obj.ID]; dup {
			return Catalog{}, fmt.Errorf("catalog object %q: duplicate id: %w", obj.ID, ErrInvalidObject)
		}
		byID[obj.ID] = obj

		slot, _ := SlotFromLabel(obj.Sector)
		flags := terrain[obj.Ring]
		switch obj.Category {
		case CategoryAsteroidField:
			flags[slot].AsteroidField = true
		case CategoryComet:
			flags[slot].Comet = true
		}
		terrain[obj.Ring] = flags
	}
	return Catalog{objects: all, byID: byID, terrain: terrain}, nil
}

// AllObjects is the full static catalog plus injected extras, placeholders
// included, in registration order.
func (c Catalog) AllObjects() []CelestialObject {
	out := make([]CelestialObject, len(c.objects))
	copy(out, c.objects)
	return out
}

func (c Catalog) ObjectByID(id string) (CelestialObject, bool) {
	obj, ok := c.byID[id]
	return obj, ok
}

// AbsolutePosition resolves an object's current address under the rotation
// state. Fixed-disk objects never move; rotating-disk objects shift by their
// ring's angle in 45-degree slots.
func (c Catalog) AbsolutePosition(obj CelestialObject, rotation RotationState) (ObjectPosition, error) {
	slot, err := SlotFromLabel(obj.Sector)
	if err != nil {
		return ObjectPosition{}, err
	}
	if !obj.Ring.Valid() {
		return ObjectPosition{}, ErrOutOfBoundsCell
	}
	absolute := LabelFromSlot(slot + rotation.stepsForRing(obj.Ring))
	return ObjectPosition{
		Ring:    obj.Ring,
		Sector:  absolute,
		Present: !obj.Placeholder(),
	}, nil
}

// terrainAtNativeSlot reports the rotation-invariant terrain flags of a slot
// in the ring's own frame.
func (c Catalog) terrainAtNativeSlot(ring Ring, slot int) Terrain {
	flags, ok := c.terrain[ring]
	if !ok {
		return Terrain{}
	}
	return flags[((slot%SectorsPerRing)+SectorsPerRing)%SectorsPerRing]
}
