package snake

import "snake-rewind/internal/core"

// Consumables tracks the food cell and the optional bad berry.
type Consumables struct {
	Food     core.Position
	Berry    core.Position
	HasBerry bool
}

// occupied reports whether p lies on any snake body.
func occupied(snakes []*Snake, p core.Position) bool {
	for _, s := range snakes {
		if s.Contains(p) {
			return true
		}
	}
	return false
}

// freeCells counts cells not covered by any body.
func freeCells(g core.Grid, snakes []*Snake) int {
	taken := make(map[core.Position]struct{})
	for _, s := range snakes {
		for _, c := range s.body {
			taken[c] = struct{}{}
		}
	}
	return g.Area() - len(taken)
}

// SpawnFood draws a food cell off every body. It retries until one is found and
// keeps prev when the grid has no free cell.
func SpawnFood(rng *core.RNG, g core.Grid, snakes []*Snake, prev core.Position) core.Position {
	if freeCells(g, snakes) < 1 {
		return prev
	}
	for {
		p := rng.Cell(g)
		if !occupied(snakes, p) {
			return p
		}
	}
}

// SpawnBadBerry draws a berry cell off every body and off food. ok is false when
// no such cell exists.
func SpawnBadBerry(rng *core.RNG, g core.Grid, snakes []*Snake, food core.Position) (core.Position, bool) {
	free := freeCells(g, snakes)
	if !occupied(snakes, food) {
		free--
	}
	if free < 1 {
		return core.Position{}, false
	}
	for {
		p := rng.Cell(g)
		if p != food && !occupied(snakes, p) {
			return p, true
		}
	}
}

// SpawnPair draws food and berry together from one candidate pair per attempt,
// so neither lands on a body or on the other.
func SpawnPair(rng *core.RNG, g core.Grid, snakes []*Snake, prev core.Position) (food, berry core.Position, ok bool) {
	if freeCells(g, snakes) < 2 {
		f := SpawnFood(rng, g, snakes, prev)
		return f, core.Position{}, false
	}
	for {
		food, berry = rng.Cell(g), rng.Cell(g)
		if food != berry && !occupied(snakes, food) && !occupied(snakes, berry) {
			return food, berry, true
		}
	}
}

// BerrySpeed applies the bad-berry toggle: an odd count divides the interval by
// three, an even count above one multiplies it back.
func BerrySpeed(speed, count int) int {
	if count%2 == 1 {
		return speed / 3
	}
	if count > 1 {
		return speed * 3
	}
	return speed
}

// respawn places consumables after food was eaten.
func (c *Consumables) respawn(rng *core.RNG, g core.Grid, snakes []*Snake, berries bool) {
	if !berries {
		c.Food = SpawnFood(rng, g, snakes, c.Food)
		return
	}
	c.Food, c.Berry, c.HasBerry = SpawnPair(rng, g, snakes, c.Food)
}

// respawnBerry moves only the berry.
func (c *Consumables) respawnBerry(rng *core.RNG, g core.Grid, snakes []*Snake) {
	c.Berry, c.HasBerry = SpawnBadBerry(rng, g, snakes, c.Food)
}
