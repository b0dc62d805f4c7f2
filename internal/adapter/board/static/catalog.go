package staticboard

import "orrery/internal/domain/board"

// StandardCatalog is the printed solar board. Addresses are native to each
// disk; placeholder wedges fill the blank printed sectors of the rotating
// disks so every wedge has a stable catalog entry.
func StandardCatalog() []board.CelestialObject {
	return []board.CelestialObject{
		{ID: "sun", Name: "Sun", Category: board.CategorySun, Ring: board.RingFixed, Sector: 1},
		{ID: "earth", Name: "Earth", Category: board.CategoryEarth, Ring: board.RingFixed, Sector: 5},

		{ID: "mercury", Name: "Mercury", Category: board.CategoryPlanet, Ring: board.RingLevel1, Sector: 1},
		{ID: "venus", Name: "Venus", Category: board.CategoryPlanet, Ring: board.RingLevel1, Sector: 3},
		{ID: "mars", Name: "Mars", Category: board.CategoryPlanet, Ring: board.RingLevel1, Sector: 5},
		{ID: "luna", Name: "Luna", Category: board.CategoryMoon, Ring: board.RingLevel1, Sector: 7},
		{ID: "l1-blank-2", Category: board.CategoryNone, Ring: board.RingLevel1, Sector: 2},
		{ID: "l1-blank-4", Category: board.CategoryNone, Ring: board.RingLevel1, Sector: 4},
		{ID: "l1-blank-6", Category: board.CategoryNone, Ring: board.RingLevel1, Sector: 6},
		{ID: "l1-blank-8", Category: board.CategoryNone, Ring: board.RingLevel1, Sector: 8},

		{ID: "belt-alpha", Name: "Belt Alpha", Category: board.CategoryAsteroidField, Ring: board.RingLevel2, Sector: 2},
		{ID: "jupiter", Name: "Jupiter", Category: board.CategoryPlanet, Ring: board.RingLevel2, Sector: 4},
		{ID: "io", Name: "Io", Category: board.CategoryMoon, Ring: board.RingLevel2, Sector: 5},
		{ID: "belt-beta", Name: "Belt Beta", Category: board.CategoryAsteroidField, Ring: board.RingLevel2, Sector: 7},
		{ID: "l2-blank-1", Category: board.CategoryNone, Ring: board.RingLevel2, Sector: 1},
		{ID: "l2-blank-3", Category: board.CategoryNone, Ring: board.RingLevel2, Sector: 3},
		{ID: "l2-blank-6", Category: board.CategoryNone, Ring: board.RingLevel2, Sector: 6},
		{ID: "l2-blank-8", Category: board.CategoryNone, Ring: board.RingLevel2, Sector: 8},

		{ID: "saturn", Name: "Saturn", Category: board.CategoryPlanet, Ring: board.RingLevel3, Sector: 1},
		{ID: "titan", Name: "Titan", Category: board.CategoryMoon, Ring: board.RingLevel3, Sector: 2},
		{ID: "uranus", Name: "Uranus", Category: board.CategoryPlanet, Ring: board.RingLevel3, Sector: 4},
		{ID: "halley", Name: "Halley", Category: board.CategoryComet, Ring: board.RingLevel3, Sector: 6},
		{ID: "neptune", Name: "Neptune", Category: board.CategoryPlanet, Ring: board.RingLevel3, Sector: 7},
		{ID: "kuiper", Name: "Kuiper Belt", Category: board.CategoryAsteroidField, Ring: board.RingLevel3, Sector: 8},
		{ID: "l3-blank-3", Category: board.CategoryNone, Ring: board.RingLevel3, Sector: 3},
		{ID: "l3-blank-5", Category: board.CategoryNone, Ring: board.RingLevel3, Sector: 5},
	}
}
