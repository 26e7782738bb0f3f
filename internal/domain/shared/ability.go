package shared

import "strings"

// Ability identifies one of the six ability scores
type Ability string

const (
	AbilityStrength     Ability = "STR"
	AbilityDexterity    Ability = "DEX"
	AbilityConstitution Ability = "CON"
	AbilityIntelligence Ability = "INT"
	AbilityWisdom       Ability = "WIS"
	AbilityCharisma     Ability = "CHA"
)

// Abilities lists all abilities in standard order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// IsValid reports whether a is one of the six abilities
func (a Ability) IsValid() bool {
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	}
	return false
}

// ParseAbility converts free-form input to an Ability. It accepts the three
// letter code in any case, or a full name such as "Dexterity" by its first
// three letters. Returns false when the input matches nothing.
func ParseAbility(s string) (Ability, bool) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 3 {
		return "", false
	}
	a := Ability(strings.ToUpper(trimmed[:3]))
	if !a.IsValid() {
		return "", false
	}
	return a, true
}
