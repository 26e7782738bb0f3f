package spell

import "github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"

// Components records which component types a spell requires
type Components struct {
	Verbal   bool `json:"verbal"`
	Somatic  bool `json:"somatic"`
	Material bool `json:"material"`
}

// Spell represents a D&D 5e spell. Spells are value records shared by
// pointer between a character's known list and the spellbook cache, and are
// never mutated after creation.
type Spell struct {
	Name          string         `json:"name"`
	Level         int            `json:"level"` // 0 for cantrips
	School        string         `json:"school"`
	CastTime      string         `json:"cast_time"`
	Range         string         `json:"range"`
	Duration      string         `json:"duration"`
	Components    Components     `json:"components"`
	Concentration bool           `json:"concentration"`
	Description   string         `json:"description"`
	DamageExpr    string         `json:"damage_expr,omitempty"`
	DamageType    string         `json:"damage_type,omitempty"`
	Save          shared.Ability `json:"save,omitempty"` // empty when the spell has no saving throw
	SaveHalf      bool           `json:"save_half"`
}

// New creates a spell with the standard defaults: one action to cast,
// self range, instantaneous, verbal and somatic components.
func New(name string, level int) *Spell {
	return &Spell{
		Name:     name,
		Level:    level,
		CastTime: "1 action",
		Range:    "Self",
		Duration: "Instantaneous",
		Components: Components{
			Verbal:  true,
			Somatic: true,
		},
	}
}
