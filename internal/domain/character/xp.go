package character

// xpThresholds holds the cumulative experience required for each level,
// indexed by level-1. Level 1 starts at 0 XP.
var xpThresholds = [20]int{
	0, 300, 900, 2700, 6500,
	14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000,
	195000, 225000, 265000, 305000, 355000,
}

// AddXP accumulates experience points. Negative amounts are ignored.
func (c *Character) AddXP(amount int) {
	if amount > 0 {
		c.XP += amount
	}
}

// TryLevelUp advances the character to the highest level whose XP threshold
// is met, raising max HP by the average hit die roll plus one for every
// level gained. Returns false when no threshold above the current level is
// met.
func (c *Character) TryLevelUp() bool {
	newLevel := c.Level
	for lvl := c.Level + 1; lvl <= 20; lvl++ {
		if c.XP >= xpThresholds[lvl-1] {
			newLevel = lvl
		} else {
			break
		}
	}

	if newLevel <= c.Level {
		return false
	}

	gained := newLevel - c.Level
	c.Level = newLevel
	c.MaxHP += ((c.HitDie+1)/2 + 1) * gained
	return true
}
