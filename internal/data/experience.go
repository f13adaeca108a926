package data

import "math"

// ExperienceForLevel returns the experience required to advance past the
// given level. The explicit per-level table wins when it covers the level;
// otherwise the geometric formula applies:
// floor(base * multiplier^(level-1)).
func (c *Class) ExperienceForLevel(level int32) int64 {
	if level < 1 {
		level = 1
	}
	if int(level) <= len(c.ExperiencePerLevel) {
		return c.ExperiencePerLevel[level-1]
	}
	f := c.ExperienceFormula
	base := f.Base
	mult := f.Multiplier
	if base <= 0 {
		base = DefaultExperienceBase
	}
	if mult <= 1 {
		mult = DefaultExperienceMultiplier
	}
	return int64(math.Floor(base * math.Pow(mult, float64(level-1))))
}

// LevelForExperience returns the highest level whose cumulative requirement
// the given total experience satisfies, starting the scan from startLevel.
func (c *Class) LevelForExperience(total int64, startLevel int32) int32 {
	if startLevel < 1 {
		startLevel = 1
	}
	level := startLevel
	var cum int64
	for l := int32(1); l < level; l++ {
		cum += c.ExperienceForLevel(l)
	}
	for {
		need := c.ExperienceForLevel(level)
		if cum+need > total {
			return level
		}
		cum += need
		level++
	}
}

// AbilitiesUpTo returns every ability tag unlocked from level 1 through
// level inclusive, in level order. Used at spawn to retroactively grant
// abilities for an entity's starting level.
func (c *Class) AbilitiesUpTo(level int32) []string {
	var out []string
	for l := int32(1); l <= level; l++ {
		out = append(out, c.AbilitiesByLevel[l]...)
	}
	return out
}
