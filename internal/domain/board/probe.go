package board

// NativePosition is a probe's address in its ring's own unrotated frame, fixed
// at the moment the probe entered the ring. Rotations never rewrite it;
// absolute positions are re-derived on demand.
type NativePosition struct {
	Ring   Ring `json:"ring"`
	Sector int  `json:"sector"`
}

func (p NativePosition) Validate() error {
	return Address{Ring: p.Ring, Sector: p.Sector}.Validate()
}

// AbsoluteSector applies the ring's current angle to the native slot and
// translates back to a printed label.
func (p NativePosition) AbsoluteSector(rotation RotationState) (int, error) {
	slot, err := SlotFromLabel(p.Sector)
	if err != nil {
		return 0, err
	}
	return LabelFromSlot(slot + rotation.stepsForRing(p.Ring)), nil
}

func (p NativePosition) AbsoluteAddress(rotation RotationState) (Address, error) {
	sector, err := p.AbsoluteSector(rotation)
	if err != nil {
		return Address{}, err
	}
	return Address{Ring: p.Ring, Sector: sector}, nil
}

// NativeFromAbsolute inverts the rotation transform; it fixes the native
// coordinates of a probe entering a ring at the given absolute address.
func NativeFromAbsolute(addr Address, rotation RotationState) (NativePosition, error) {
	if err := addr.Validate(); err != nil {
		return NativePosition{}, err
	}
	slot, _ := SlotFromLabel(addr.Sector)
	native := LabelFromSlot(slot - rotation.stepsForRing(addr.Ring))
	return NativePosition{Ring: addr.Ring, Sector: native}, nil
}

type Probe struct {
	ID       string         `json:"id"`
	Owner    string         `json:"owner"`
	Position NativePosition `json:"position"`
}
