package combat

import (
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/character"
)

// Combatant wraps a campaign-owned character participating in one encounter.
// It carries combat-only transient state; removing a combatant never deletes
// the underlying character.
type Combatant struct {
	Character  *character.Character `json:"character"`
	Initiative *int                 `json:"initiative"` // nil until rolled
	Alive      bool                 `json:"alive"`
	IsNPC      bool                 `json:"is_npc"`
	TokenID    string               `json:"token_id,omitempty"`
}

// NewCombatant wraps a character with fresh combat state
func NewCombatant(char *character.Character, isNPC bool) *Combatant {
	return &Combatant{
		Character: char,
		Alive:     true,
		IsNPC:     isNPC,
	}
}

// InitiativeValue returns the rolled initiative, or 0 when not yet rolled
func (c *Combatant) InitiativeValue() int {
	if c.Initiative == nil {
		return 0
	}
	return *c.Initiative
}

// takeDamage routes damage through the character and clears the alive flag
// when HP reaches 0
func (c *Combatant) takeDamage(amount int, conSaveRoll *int) *character.DamageResult {
	result := c.Character.ApplyDamage(amount, conSaveRoll)
	if result.CurrentHP <= 0 {
		c.Alive = false
	}
	return result
}
