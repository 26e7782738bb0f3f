package combat

import (
	"context"

	"github.com/KirkDiggler/dnd-session-tracker/internal/dice"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// SpellResolver finds a spell by name when the caster does not already know
// it. The spellbook library satisfies this.
type SpellResolver interface {
	Resolve(ctx context.Context, name string) (*spell.Spell, error)
}

// CastInput names the caster, the spell, the slot level to burn (nil or
// below the spell's level means the spell's own level), the targets, and
// the ability the caster's save DC is built from.
type CastInput struct {
	CasterID      string
	SpellName     string
	SlotLevel     *int
	TargetIDs     []string
	CasterAbility shared.Ability
}

// TargetResult is the per-target outcome of a cast. A bad target id records
// Err and leaves the rest of the fields zero; other targets are unaffected.
type TargetResult struct {
	TargetID            string
	TargetName          string
	SaveRequired        bool
	SaveRoll            int
	Saved               bool
	DamageDetail        string
	DamageApplied       int
	CurrentHP           int
	TempHP              int
	ConcentrationBroken bool
	Alive               bool
	Err                 error
}

// CastResult reports a resolved cast: the spell, the slot consumed (0 for a
// cantrip), the save DC, and one entry per requested target.
type CastResult struct {
	Caster        string
	Spell         *spell.Spell
	SlotLevelUsed int
	SaveDC        int
	Targets       []*TargetResult
}

// CastSpell resolves a named spell from the caster's known list or the
// resolver, consumes a slot for leveled spells, and applies save-gated
// damage to each target. Slot or validation failures happen before any
// combatant state changes; a missing target is isolated to its own entry.
func (e *Encounter) CastSpell(ctx context.Context, in *CastInput, resolver SpellResolver, roller dice.Roller) (*CastResult, error) {
	caster := e.Combatant(in.CasterID)
	if caster == nil {
		return nil, dnderr.NotFoundf("caster '%s' not in encounter", in.CasterID)
	}

	sp := caster.Character.Spell(in.SpellName)
	if sp == nil && resolver != nil {
		resolved, err := resolver.Resolve(ctx, in.SpellName)
		if err == nil {
			sp = resolved
		}
	}
	if sp == nil {
		return nil, dnderr.NotFoundf("no spell found: '%s'", in.SpellName)
	}

	// Validate the damage expression before any slot is consumed
	var damageExpr *dice.Expression
	if sp.DamageExpr != "" {
		expr, err := dice.ParseExpression(sp.DamageExpr)
		if err != nil {
			return nil, dnderr.Wrapf(err, "spell '%s' has invalid damage expression '%s'", sp.Name, sp.DamageExpr)
		}
		damageExpr = expr
	}

	slotUsed := 0
	if sp.Level > 0 {
		slotLevel := sp.Level
		if in.SlotLevel != nil && *in.SlotLevel >= sp.Level {
			slotLevel = *in.SlotLevel
		}
		if !caster.Character.UseSpellSlot(slotLevel) {
			return nil, dnderr.FailedPreconditionf("no level %d spell slot available for '%s'", slotLevel, sp.Name)
		}
		slotUsed = slotLevel
	}

	dc := 8 + caster.Character.ProficiencyBonus() + caster.Character.AbilityMod(in.CasterAbility)

	result := &CastResult{
		Caster:        caster.Character.Name,
		Spell:         sp,
		SlotLevelUsed: slotUsed,
		SaveDC:        dc,
	}

	for _, targetID := range in.TargetIDs {
		result.Targets = append(result.Targets, e.resolveTarget(targetID, sp, damageExpr, dc, roller))
	}

	return result, nil
}

// resolveTarget applies one cast to one target id
func (e *Encounter) resolveTarget(targetID string, sp *spell.Spell, damageExpr *dice.Expression, dc int, roller dice.Roller) *TargetResult {
	tr := &TargetResult{TargetID: targetID}

	target := e.Combatant(targetID)
	if target == nil {
		tr.Err = dnderr.NotFoundf("target '%s' not in encounter", targetID)
		return tr
	}
	tr.TargetName = target.Character.Name

	var conSave *int
	if sp.Save != "" {
		tr.SaveRequired = true
		saveRoll, err := roller.Roll(1, 20, target.Character.SavingThrowMod(sp.Save))
		if err != nil {
			tr.Err = dnderr.Wrap(err, "failed to roll saving throw")
			return tr
		}
		tr.SaveRoll = saveRoll.Total
		tr.Saved = saveRoll.Total >= dc
		// The save total doubles as the concentration-check input, whatever
		// the save ability
		conSave = &tr.SaveRoll
	}

	rolled := 0
	tr.DamageDetail = "no damage"
	if damageExpr != nil {
		dmgRoll, err := damageExpr.Roll(roller)
		if err != nil {
			tr.Err = dnderr.Wrap(err, "failed to roll damage")
			return tr
		}
		rolled = dmgRoll.Total
		tr.DamageDetail = dmgRoll.Detail
	}

	applied := rolled
	if tr.SaveRequired && tr.Saved {
		if sp.SaveHalf {
			applied = rolled / 2
		} else {
			applied = 0
		}
	}
	tr.DamageApplied = applied

	damage := target.takeDamage(applied, conSave)
	tr.CurrentHP = damage.CurrentHP
	tr.TempHP = damage.TempHP
	tr.ConcentrationBroken = damage.ConcentrationBroken
	tr.Alive = target.Alive

	return tr
}
