package combat

import (
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// AttackResult reports the outcome of a single attack roll against one
// defender. A miss leaves the defender untouched.
type AttackResult struct {
	Hit                 bool
	AppliedDamage       int
	DefenderHPBefore    int
	DefenderHP          int
	DefenderTempHP      int
	ConcentrationBroken bool
	DefenderAlive       bool
}

// PerformAttack resolves an already-rolled attack against a defender's armor
// class. Critical hits double the damage before it is applied.
func (e *Encounter) PerformAttack(attackerID, defenderID string, attackRoll, damage int, crit bool) (*AttackResult, error) {
	attacker := e.Combatant(attackerID)
	if attacker == nil {
		return nil, dnderr.NotFoundf("attacker '%s' not in encounter", attackerID)
	}
	defender := e.Combatant(defenderID)
	if defender == nil {
		return nil, dnderr.NotFoundf("defender '%s' not in encounter", defenderID)
	}

	result := &AttackResult{
		DefenderHPBefore: defender.Character.CurrentHP,
		DefenderHP:       defender.Character.CurrentHP,
		DefenderTempHP:   defender.Character.TempHP,
		DefenderAlive:    defender.Alive,
	}

	if attackRoll < defender.Character.ArmorClass {
		return result, nil
	}

	result.Hit = true
	if crit {
		damage *= 2
	}
	result.AppliedDamage = damage

	applied := defender.takeDamage(damage, nil)
	result.DefenderHP = applied.CurrentHP
	result.DefenderTempHP = applied.TempHP
	result.ConcentrationBroken = applied.ConcentrationBroken
	result.DefenderAlive = defender.Alive

	return result, nil
}

// ApplyAreaDamage damages every listed combatant present in the encounter,
// silently skipping ids that are not. Each entry may carry a matching
// constitution-save roll for the concentration check.
func (e *Encounter) ApplyAreaDamage(damage map[string]int, conSaves map[string]int) map[string]*character.DamageResult {
	results := make(map[string]*character.DamageResult)
	for id, amount := range damage {
		target := e.Combatant(id)
		if target == nil {
			continue
		}

		var conSave *int
		if roll, ok := conSaves[id]; ok {
			conSave = &roll
		}

		results[id] = target.takeDamage(amount, conSave)
	}
	return results
}
