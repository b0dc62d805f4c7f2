package board

// Address names a cell by ring and the sector label currently printed at that
// position, i.e. the absolute frame shared by all rings.
type Address struct {
	Ring   Ring `json:"ring"`
	Sector int  `json:"sector"`
}

func (a Address) Validate() error {
	if !a.Ring.Valid() {
		return ErrOutOfBoundsCell
	}
	if _, err := SlotFromLabel(a.Sector); err != nil {
		return ErrOutOfBoundsCell
	}
	return nil
}

type Terrain struct {
	AsteroidField bool `json:"asteroid_field"`
	Comet         bool `json:"comet"`
}

// Cell is the content of one absolute address under a rotation state. Terrain
// is fixed to the ring's native geometry; NativeSector records which printed
// wedge currently sits at the address.
type Cell struct {
	Address      Address           `json:"address"`
	NativeSector int               `json:"native_sector"`
	Terrain      Terrain           `json:"terrain"`
	Objects      []CelestialObject `json:"objects"`
}

// CellAt inverts the rotation transform to find the native slot currently at
// the requested absolute address, then reports that slot's terrain and every
// cataloged object resolving there.
func (c Catalog) CellAt(addr Address, rotation RotationState) (Cell, error) {
	if err := addr.Validate(); err != nil {
		return Cell{}, err
	}
	absoluteSlot, _ := SlotFromLabel(addr.Sector)
	nativeSlot := absoluteSlot - rotation.stepsForRing(addr.Ring)

	cell := Cell{
		Address:      addr,
		NativeSector: LabelFromSlot(nativeSlot),
		Terrain:      c.terrainAtNativeSlot(addr.Ring, nativeSlot),
		Objects:      []CelestialObject{},
	}
	for _, obj := range c.objects {
		if obj.Ring != addr.Ring || obj.Placeholder() {
			continue
		}
		pos, err := c.AbsolutePosition(obj, rotation)
		if err != nil {
			return Cell{}, err
		}
		if pos.Sector == addr.Sector {
			cell.Objects = append(cell.Objects, obj)
		}
	}
	return cell, nil
}

// AdjacentCells lists the neighbors of an address: the two same-ring cells one
// slot away, then the same absolute sector on each radially neighboring ring.
// Same-ring neighbors come first; the movement engine relies on that order for
// deterministic tie-breaking.
func AdjacentCells(addr Address) ([]Address, error) {
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	slot, _ := SlotFromLabel(addr.Sector)
	out := []Address{
		{Ring: addr.Ring, Sector: LabelFromSlot(slot + 1)},
		{Ring: addr.Ring, Sector: LabelFromSlot(slot - 1)},
	}
	if inward, ok := addr.Ring.Inward(); ok {
		out = append(out, Address{Ring: inward, Sector: addr.Sector})
	}
	if outward, ok := addr.Ring.Outward(); ok {
		out = append(out, Address{Ring: outward, Sector: addr.Sector})
	}
	return out, nil
}
