package character

import (
	"strings"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
)

// SlotPool tracks remaining and maximum spell slots for one spell level
type SlotPool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Concentration records the single spell a character is concentrating on
type Concentration struct {
	Spell          *spell.Spell `json:"spell"`
	SaveDC         int          `json:"save_dc"`
	StartedAtRound int          `json:"started_at_round"`
}

// DamageResult reports the outcome of one damage application
type DamageResult struct {
	CurrentHP           int  `json:"current_hp"`
	TempHP              int  `json:"temp_hp"`
	ConcentrationBroken bool `json:"concentration_broken"`
}

// Character owns one adventurer's or monster's persistent state. Characters
// are owned by the campaign; encounters reference them through combatants.
type Character struct {
	ID                 string                   `json:"char_id"`
	Name               string                   `json:"name"`
	PlayerName         string                   `json:"player_name,omitempty"`
	Level              int                      `json:"level"`
	Race               string                   `json:"race"`
	Class              string                   `json:"char_class"`
	MaxHP              int                      `json:"max_hp"`
	CurrentHP          int                      `json:"current_hp"`
	TempHP             int                      `json:"temp_hp"`
	HitDie             int                      `json:"hit_die"`
	HitDiceRemaining   int                      `json:"hit_die_total"`
	ArmorClass         int                      `json:"armor_class"`
	Speed              int                      `json:"speed"`
	Abilities          map[shared.Ability]int   `json:"abilities"`
	SaveProficiencies  map[shared.Ability]bool  `json:"saves_proficiency"`
	SkillProficiencies map[string]bool          `json:"skill_proficiency"`
	Inspiration        bool                     `json:"inspiration"`
	Conditions         map[shared.Condition]int `json:"conditions"`
	Inventory          []*Item                  `json:"inventory"`
	Spells             []*spell.Spell           `json:"spells"`
	SpellSlots         map[int]*SlotPool        `json:"spell_slots"`
	Concentration      *Concentration           `json:"concentration,omitempty"`
	XP                 int                      `json:"xp"`
}

// New creates a character with the standard defaults: level 1, 8 HP on a
// d8 hit die, AC 10, speed 30, all abilities 10.
func New(id, name string) *Character {
	abilities := make(map[shared.Ability]int, len(shared.Abilities))
	saves := make(map[shared.Ability]bool, len(shared.Abilities))
	for _, a := range shared.Abilities {
		abilities[a] = 10
		saves[a] = false
	}

	return &Character{
		ID:                 id,
		Name:               name,
		Level:              1,
		MaxHP:              8,
		CurrentHP:          8,
		HitDie:             8,
		HitDiceRemaining:   1,
		ArmorClass:         10,
		Speed:              30,
		Abilities:          abilities,
		SaveProficiencies:  saves,
		SkillProficiencies: make(map[string]bool),
		Conditions:         make(map[shared.Condition]int),
		SpellSlots:         make(map[int]*SlotPool),
	}
}

// AbilityMod returns floor((score-10)/2), flooring toward negative
// infinity. A missing ability reads as score 10.
func (c *Character) AbilityMod(a shared.Ability) int {
	score, ok := c.Abilities[a]
	if !ok {
		score = 10
	}

	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// ProficiencyBonus derives the proficiency bonus from level: 2 at levels
// 1-4, 3 at 5-8, up to 6 at 17-20.
func (c *Character) ProficiencyBonus() int {
	level := c.Level
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

// SavingThrowMod returns the ability modifier, plus the proficiency bonus
// when the save is flagged proficient.
func (c *Character) SavingThrowMod(a shared.Ability) int {
	mod := c.AbilityMod(a)
	if c.SaveProficiencies[a] {
		mod += c.ProficiencyBonus()
	}
	return mod
}

// SkillMod returns the associated ability modifier, plus the proficiency
// bonus when the skill is proficient, plus the bonus again with expertise.
// Skill names are matched lowercase.
func (c *Character) SkillMod(skill string, a shared.Ability, expertise bool) int {
	mod := c.AbilityMod(a)
	if c.SkillProficiencies[strings.ToLower(skill)] {
		mod += c.ProficiencyBonus()
	}
	if expertise {
		mod += c.ProficiencyBonus()
	}
	return mod
}

// ApplyDamage routes damage through temporary HP first, then lowers current
// HP floored at zero. While concentrating, a supplied constitution save roll
// below DC = max(10, ceil(amount/2)) breaks concentration. Whether the
// character is still standing is the caller's call.
func (c *Character) ApplyDamage(amount int, conSaveRoll *int) *DamageResult {
	if amount < 0 {
		amount = 0
	}

	remaining := amount
	if c.TempHP > 0 {
		absorbed := remaining
		if c.TempHP < absorbed {
			absorbed = c.TempHP
		}
		c.TempHP -= absorbed
		remaining -= absorbed
	}

	c.CurrentHP -= remaining
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}

	broken := false
	if c.Concentration != nil {
		dc := (amount + 1) / 2
		if dc < 10 {
			dc = 10
		}
		if conSaveRoll != nil && *conSaveRoll < dc {
			broken = true
			c.Concentration = nil
		}
	}

	return &DamageResult{
		CurrentHP:           c.CurrentHP,
		TempHP:              c.TempHP,
		ConcentrationBroken: broken,
	}
}

// Heal raises current HP, capped at max HP. Negative amounts are ignored.
// Returns the resulting current HP.
func (c *Character) Heal(amount int) int {
	if amount > 0 {
		c.CurrentHP += amount
		if c.CurrentHP > c.MaxHP {
			c.CurrentHP = c.MaxHP
		}
	}
	return c.CurrentHP
}

// ShortRest spends one hit die per supplied roll, healing that roll plus the
// CON modifier, or the matching recovered override when given, floored at
// zero per die. Stops early when the hit dice pool runs out. Returns the
// total HP actually recovered.
func (c *Character) ShortRest(rolls []int, recovered []int) int {
	conMod := c.AbilityMod(shared.AbilityConstitution)

	healed := 0
	for i, roll := range rolls {
		if c.HitDiceRemaining <= 0 {
			break
		}
		c.HitDiceRemaining--

		gain := roll + conMod
		if i < len(recovered) {
			gain = recovered[i]
		}
		if gain < 0 {
			gain = 0
		}

		before := c.CurrentHP
		c.Heal(gain)
		healed += c.CurrentHP - before
	}
	return healed
}

// LongRest optionally restores HP to max and refills every spell slot pool,
// and always clears temporary HP, concentration, and all conditions.
func (c *Character) LongRest(restoreHP, restoreSlots bool) {
	if restoreHP {
		c.CurrentHP = c.MaxHP
	}
	if restoreSlots {
		for _, pool := range c.SpellSlots {
			pool.Current = pool.Max
		}
	}
	c.TempHP = 0
	c.Concentration = nil
	c.Conditions = make(map[shared.Condition]int)
}

// AddCondition records a condition with a remaining-round counter, -1
// meaning indefinite. Conditions outside the recognized set are a no-op.
func (c *Character) AddCondition(cond shared.Condition, rounds int) bool {
	if !cond.IsValid() {
		return false
	}
	if c.Conditions == nil {
		c.Conditions = make(map[shared.Condition]int)
	}
	c.Conditions[cond] = rounds
	return true
}

// RemoveCondition clears a condition if present
func (c *Character) RemoveCondition(cond shared.Condition) {
	delete(c.Conditions, cond)
}

// TickConditions decrements every positive condition counter, removing and
// reporting those that reach zero. Indefinite conditions are untouched.
func (c *Character) TickConditions() []shared.Condition {
	var expired []shared.Condition
	for cond, rounds := range c.Conditions {
		if rounds <= 0 {
			continue
		}
		rounds--
		if rounds <= 0 {
			expired = append(expired, cond)
			delete(c.Conditions, cond)
			continue
		}
		c.Conditions[cond] = rounds
	}
	return expired
}

// AddSpell appends a spell to the known list
func (c *Character) AddSpell(sp *spell.Spell) {
	c.Spells = append(c.Spells, sp)
}

// Spell returns the known spell matching name case-insensitively, or nil
func (c *Character) Spell(name string) *spell.Spell {
	for _, sp := range c.Spells {
		if strings.EqualFold(sp.Name, name) {
			return sp
		}
	}
	return nil
}

// UseSpellSlot consumes one slot of the given level. Returns false without
// mutation when no pool exists for that level or it is empty.
func (c *Character) UseSpellSlot(level int) bool {
	pool, ok := c.SpellSlots[level]
	if !ok || pool.Current <= 0 {
		return false
	}
	pool.Current--
	return true
}

// SetSpellSlots replaces the slot pool for one level
func (c *Character) SetSpellSlots(level, current, maxSlots int) {
	if c.SpellSlots == nil {
		c.SpellSlots = make(map[int]*SlotPool)
	}
	c.SpellSlots[level] = &SlotPool{Current: current, Max: maxSlots}
}

// StartConcentration records the active concentration effect, silently
// replacing any previous one.
func (c *Character) StartConcentration(sp *spell.Spell, saveDC, round int) {
	c.Concentration = &Concentration{
		Spell:          sp,
		SaveDC:         saveDC,
		StartedAtRound: round,
	}
}

// AddItem appends an item to the inventory
func (c *Character) AddItem(item *Item) {
	c.Inventory = append(c.Inventory, item)
}

// Item returns the first inventory item matching name case-insensitively,
// or nil
func (c *Character) Item(name string) *Item {
	for _, item := range c.Inventory {
		if strings.EqualFold(item.Name, name) {
			return item
		}
	}
	return nil
}
