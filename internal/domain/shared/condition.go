package shared

import "strings"

// Condition represents a standard D&D 5e condition
type Condition string

const (
	ConditionBlinded       Condition = "blinded"
	ConditionCharmed       Condition = "charmed"
	ConditionDeafened      Condition = "deafened"
	ConditionExhaustion    Condition = "exhaustion"
	ConditionFrightened    Condition = "frightened"
	ConditionGrappled      Condition = "grappled"
	ConditionIncapacitated Condition = "incapacitated"
	ConditionInvisible     Condition = "invisible"
	ConditionParalyzed     Condition = "paralyzed"
	ConditionPetrified     Condition = "petrified"
	ConditionPoisoned      Condition = "poisoned"
	ConditionProne         Condition = "prone"
	ConditionRestrained    Condition = "restrained"
	ConditionStunned       Condition = "stunned"
	ConditionUnconscious   Condition = "unconscious"
)

// Conditions lists the full recognized set
var Conditions = []Condition{
	ConditionBlinded,
	ConditionCharmed,
	ConditionDeafened,
	ConditionExhaustion,
	ConditionFrightened,
	ConditionGrappled,
	ConditionIncapacitated,
	ConditionInvisible,
	ConditionParalyzed,
	ConditionPetrified,
	ConditionPoisoned,
	ConditionProne,
	ConditionRestrained,
	ConditionStunned,
	ConditionUnconscious,
)

var conditionSet = func() map[Condition]struct{} {
	set := make(map[Condition]struct{}, len(Conditions))
	for _, c := range Conditions {
		set[c] = struct{}{}
	}
	return set
}()

// IsValid reports whether c belongs to the recognized condition set
func (c Condition) IsValid() bool {
	_, ok := conditionSet[c]
	return ok
}

// ParseCondition converts free-form input to a Condition.
// Returns false for anything outside the recognized set.
func ParseCondition(s string) (Condition, bool) {
	c := Condition(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", false
	}
	return c, true
}
