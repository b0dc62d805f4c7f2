package staticboard

import (
	"context"
	"testing"

	"orrery/internal/domain/board"
	"orrery/internal/domain/movement"
)

type stubExtras struct {
	extras []board.CelestialObject
}

func (s stubExtras) Append(ctx context.Context, gameID string, obj board.CelestialObject) error {
	return nil
}

func (s stubExtras) ListByGameID(ctx context.Context, gameID string) ([]board.CelestialObject, error) {
	return s.extras, nil
}

func TestStandardCatalogIsValid(t *testing.T) {
	catalog, err := board.NewCatalog(StandardCatalog())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if _, ok := catalog.ObjectByID("sun"); !ok {
		t.Fatalf("sun missing")
	}
	// Every wedge of every rotating disk has a catalog entry.
	counts := map[board.Ring]int{}
	for _, obj := range catalog.AllObjects() {
		counts[obj.Ring]++
	}
	for _, ring := range []board.Ring{board.RingLevel1, board.RingLevel2, board.RingLevel3} {
		if counts[ring] != board.SectorsPerRing {
			t.Fatalf("ring %s has %d entries, want %d", ring, counts[ring], board.SectorsPerRing)
		}
	}
}

func TestProviderMergesExtras(t *testing.T) {
	extra := board.CelestialObject{
		ID: "ceres", Name: "Ceres", Category: board.CategoryPlanet,
		Ring: board.RingLevel2, Sector: 6,
	}
	p := Provider{Extras: stubExtras{extras: []board.CelestialObject{extra}}}

	catalog, err := p.CatalogForGame(context.Background(), "g1")
	if err != nil {
		t.Fatalf("CatalogForGame: %v", err)
	}
	if _, ok := catalog.ObjectByID("ceres"); !ok {
		t.Fatalf("injected object missing from catalog")
	}
}

// Fixed golden set for the standard board: everything a budget of 3 buys
// from Earth on an unrotated board.
func TestReachableFromEarthBudgetThree(t *testing.T) {
	p := Provider{}
	catalog, err := p.CatalogForGame(context.Background(), "g1")
	if err != nil {
		t.Fatalf("CatalogForGame: %v", err)
	}

	earth := board.Address{Ring: board.RingFixed, Sector: 5}
	reachable, err := movement.ReachableFrom(earth, 3, board.RotationState{}, catalog, movement.Modifiers{})
	if err != nil {
		t.Fatalf("ReachableFrom: %v", err)
	}

	want := map[board.Address]int{
		{Ring: board.RingFixed, Sector: 5}: 0,

		{Ring: board.RingFixed, Sector: 4}:  1,
		{Ring: board.RingFixed, Sector: 6}:  1,
		{Ring: board.RingLevel1, Sector: 5}: 1,

		{Ring: board.RingFixed, Sector: 3}:  2,
		{Ring: board.RingFixed, Sector: 7}:  2,
		{Ring: board.RingLevel1, Sector: 4}: 2,
		{Ring: board.RingLevel1, Sector: 6}: 2,
		{Ring: board.RingLevel2, Sector: 5}: 2,

		{Ring: board.RingFixed, Sector: 2}:  3,
		{Ring: board.RingFixed, Sector: 8}:  3,
		{Ring: board.RingLevel1, Sector: 3}: 3,
		{Ring: board.RingLevel1, Sector: 7}: 3,
		{Ring: board.RingLevel2, Sector: 4}: 3,
		{Ring: board.RingLevel2, Sector: 6}: 3,
		{Ring: board.RingLevel3, Sector: 5}: 3,
	}
	if reachable.Len() != len(want) {
		t.Fatalf("reachable = %d cells, want %d: %+v", reachable.Len(), len(want), reachable.Cells())
	}
	for addr, cost := range want {
		got, ok := reachable.CostTo(addr)
		if !ok || got != cost {
			t.Fatalf("cost to %+v = %d (%v), want %d", addr, got, ok, cost)
		}
	}
}
