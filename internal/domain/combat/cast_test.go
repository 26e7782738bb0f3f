package combat_test

import (
	"context"
	"strings"
	"testing"

	mockdice "github.com/KirkDiggler/dnd-session-tracker/internal/dice/mock"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/combat"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	spells map[string]*spell.Spell
}

func (s *stubResolver) Resolve(_ context.Context, name string) (*spell.Spell, error) {
	if sp, ok := s.spells[strings.ToLower(name)]; ok {
		return sp, nil
	}
	return nil, dnderr.NotFoundf("spell '%s' not found", name)
}

// newMage builds a level 5 caster (proficiency +3) with INT 16, so spell
// save DCs land at 14
func newMage() *character.Character {
	mage := newTestCharacter("mage", "Mage", 20, 12)
	mage.Level = 5
	mage.Abilities[shared.AbilityIntelligence] = 16
	return mage
}

func intPtr(i int) *int {
	return &i
}

func TestCastSpell_NoSaveAppliesFullDamage(t *testing.T) {
	mage := newMage()
	fireBolt := spell.New("Fire Bolt", 0)
	fireBolt.DamageExpr = "1d10"
	fireBolt.DamageType = "fire"
	mage.AddSpell(fireBolt)

	goblin := newTestCharacter("goblin", "Goblin", 12, 13)

	enc := combat.NewEncounter("enc-1", "Skirmish")
	enc.AddCombatant(combat.NewCombatant(mage, false))
	enc.AddCombatant(combat.NewCombatant(goblin, true))

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{7})

	result, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "fire bolt",
		TargetIDs:     []string{"goblin"},
		CasterAbility: shared.AbilityIntelligence,
	}, nil, roller)
	require.NoError(t, err)

	assert.Equal(t, "Mage", result.Caster)
	assert.Equal(t, 0, result.SlotLevelUsed, "cantrips burn no slot")
	assert.Equal(t, 14, result.SaveDC)
	require.Len(t, result.Targets, 1)

	target := result.Targets[0]
	require.NoError(t, target.Err)
	assert.Equal(t, "Goblin", target.TargetName)
	assert.False(t, target.SaveRequired)
	assert.Equal(t, 7, target.DamageApplied)
	assert.Equal(t, "rolls=[7]", target.DamageDetail)
	assert.Equal(t, 5, target.CurrentHP)
	assert.True(t, target.Alive)
}

func TestCastSpell_SaveHalvesDamage(t *testing.T) {
	mage := newMage()
	burst := spell.New("Flame Burst", 2)
	burst.DamageExpr = "2d6"
	burst.Save = shared.AbilityDexterity
	burst.SaveHalf = true
	mage.AddSpell(burst)
	mage.SetSpellSlots(2, 1, 1)

	rogue := newTestCharacter("rogue", "Rogue", 20, 14)
	rogue.Abilities[shared.AbilityDexterity] = 14 // +2 save mod

	enc := combat.NewEncounter("enc-1", "Skirmish")
	enc.AddCombatant(combat.NewCombatant(mage, false))
	enc.AddCombatant(combat.NewCombatant(rogue, true))

	// d20 of 12 (+2 = 14, meets DC 14), then 2d6 of 4 and 5
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{12, 4, 5})

	result, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Flame Burst",
		TargetIDs:     []string{"rogue"},
		CasterAbility: shared.AbilityIntelligence,
	}, nil, roller)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SlotLevelUsed)
	assert.Equal(t, 0, mage.SpellSlots[2].Current)

	target := result.Targets[0]
	assert.True(t, target.SaveRequired)
	assert.Equal(t, 14, target.SaveRoll)
	assert.True(t, target.Saved)
	assert.Equal(t, 4, target.DamageApplied, "9 rolled, halved and floored")
	assert.Equal(t, 16, target.CurrentHP)
}

func TestCastSpell_SaveNegatesWithoutHalf(t *testing.T) {
	mage := newMage()
	hold := spell.New("Mind Spike", 2)
	hold.DamageExpr = "2d6"
	hold.Save = shared.AbilityWisdom
	mage.AddSpell(hold)
	mage.SetSpellSlots(2, 1, 1)

	cleric := newTestCharacter("cleric", "Cleric", 20, 14)

	enc := combat.NewEncounter("enc-1", "Skirmish")
	enc.AddCombatant(combat.NewCombatant(mage, false))
	enc.AddCombatant(combat.NewCombatant(cleric, true))

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{14, 3, 3})

	result, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Mind Spike",
		TargetIDs:     []string{"cleric"},
		CasterAbility: shared.AbilityIntelligence,
	}, nil, roller)
	require.NoError(t, err)

	target := result.Targets[0]
	assert.True(t, target.Saved)
	assert.Equal(t, 0, target.DamageApplied, "a made save against a no-half spell negates everything")
	assert.Equal(t, "rolls=[3 3]", target.DamageDetail)
	assert.Equal(t, 20, target.CurrentHP)
}

func TestCastSpell_FailedSaveTakesFullDamage(t *testing.T) {
	mage := newMage()
	burst := spell.New("Flame Burst", 2)
	burst.DamageExpr = "2d6"
	burst.Save = shared.AbilityDexterity
	burst.SaveHalf = true
	mage.AddSpell(burst)
	mage.SetSpellSlots(2, 1, 1)

	ogre := newTestCharacter("ogre", "Ogre", 20, 11)

	enc := combat.NewEncounter("enc-1", "Skirmish")
	enc.AddCombatant(combat.NewCombatant(mage, false))
	enc.AddCombatant(combat.NewCombatant(ogre, true))

	// d20 of 9 misses DC 14
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{9, 4, 5})

	result, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Flame Burst",
		TargetIDs:     []string{"ogre"},
		CasterAbility: shared.AbilityIntelligence,
	}, nil, roller)
	require.NoError(t, err)

	target := result.Targets[0]
	assert.False(t, target.Saved)
	assert.Equal(t, 9, target.DamageApplied)
	assert.Equal(t, 11, target.CurrentHP)
}

func TestCastSpell_SaveRollDrivesConcentrationCheck(t *testing.T) {
	mage := newMage()
	burst := spell.New("Flame Burst", 2)
	burst.DamageExpr = "2d6"
	burst.Save = shared.AbilityDexterity
	burst.SaveHalf = true
	mage.AddSpell(burst)
	mage.SetSpellSlots(2, 1, 1)

	enemy := newTestCharacter("enemy", "Enemy Caster", 30, 12)
	enemy.StartConcentration(spell.New("Hold Person", 2), 14, 1)

	enc := combat.NewEncounter("enc-1", "Counterspell Duel")
	enc.AddCombatant(combat.NewCombatant(mage, false))
	enc.AddCombatant(combat.NewCombatant(enemy, true))

	// Failed DEX save of 9, 12 damage, concentration DC 10: the same 9 is
	// reused for the concentration check and fails it
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{9, 6, 6})

	result, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Flame Burst",
		TargetIDs:     []string{"enemy"},
		CasterAbility: shared.AbilityIntelligence,
	}, nil, roller)
	require.NoError(t, err)

	target := result.Targets[0]
	assert.Equal(t, 12, target.DamageApplied)
	assert.True(t, target.ConcentrationBroken)
	assert.Nil(t, enemy.Concentration)
}

func TestCastSpell_SlotUnavailableLeavesEverythingUntouched(t *testing.T) {
	mage := newMage()
	missile := spell.New("Magic Missile", 1)
	missile.DamageExpr = "3d4+3"
	mage.AddSpell(missile)
	mage.SetSpellSlots(1, 0, 2)

	goblin := newTestCharacter("goblin", "Goblin", 12, 13)

	enc := combat.NewEncounter("enc-1", "Skirmish")
	enc.AddCombatant(combat.NewCombatant(mage, false))
	enc.AddCombatant(combat.NewCombatant(goblin, true))

	// No predetermined rolls: any dice use would fail the test
	roller := mockdice.NewManualMockRoller()

	_, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Magic Missile",
		TargetIDs:     []string{"goblin"},
		CasterAbility: shared.AbilityIntelligence,
	}, nil, roller)

	require.Error(t, err)
	assert.True(t, dnderr.IsFailedPrecondition(err))
	assert.Equal(t, 0, mage.SpellSlots[1].Current)
	assert.Equal(t, 12, goblin.CurrentHP)
}

func TestCastSpell_SlotLevelSelection(t *testing.T) {
	newSetup := func() (*combat.Encounter, *character.Character) {
		mage := newMage()
		burst := spell.New("Flame Burst", 2)
		burst.DamageExpr = "2d6"
		mage.AddSpell(burst)
		mage.SetSpellSlots(1, 1, 1)
		mage.SetSpellSlots(2, 1, 1)
		mage.SetSpellSlots(3, 1, 1)

		enc := combat.NewEncounter("enc-1", "Skirmish")
		enc.AddCombatant(combat.NewCombatant(mage, false))
		enc.AddCombatant(combat.NewCombatant(newTestCharacter("goblin", "Goblin", 30, 13), true))
		return enc, mage
	}

	// Upcast at level 3 burns the level 3 slot
	enc, mage := newSetup()
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3, 4})
	result, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Flame Burst",
		SlotLevel:     intPtr(3),
		TargetIDs:     []string{"goblin"},
		CasterAbility: shared.AbilityIntelligence,
	}, nil, roller)
	require.NoError(t, err)
	assert.Equal(t, 3, result.SlotLevelUsed)
	assert.Equal(t, 0, mage.SpellSlots[3].Current)
	assert.Equal(t, 1, mage.SpellSlots[2].Current)

	// Requesting a slot below the spell's level falls back to its own level
	enc, mage = newSetup()
	roller = mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3, 4})
	result, err = enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Flame Burst",
		SlotLevel:     intPtr(1),
		TargetIDs:     []string{"goblin"},
		CasterAbility: shared.AbilityIntelligence,
	}, nil, roller)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SlotLevelUsed)
	assert.Equal(t, 0, mage.SpellSlots[2].Current)
	assert.Equal(t, 1, mage.SpellSlots[1].Current)
}

func TestCastSpell_BadTargetIsolated(t *testing.T) {
	mage := newMage()
	fireBolt := spell.New("Fire Bolt", 0)
	fireBolt.DamageExpr = "1d10"
	mage.AddSpell(fireBolt)

	a := newTestCharacter("a", "Aria", 12, 10)
	b := newTestCharacter("b", "Brom", 12, 10)

	enc := combat.NewEncounter("enc-1", "Skirmish")
	enc.AddCombatant(combat.NewCombatant(mage, false))
	enc.AddCombatant(combat.NewCombatant(a, true))
	enc.AddCombatant(combat.NewCombatant(b, true))

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{6, 8})

	result, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Fire Bolt",
		TargetIDs:     []string{"a", "ghost", "b"},
		CasterAbility: shared.AbilityIntelligence,
	}, nil, roller)
	require.NoError(t, err)
	require.Len(t, result.Targets, 3)

	assert.NoError(t, result.Targets[0].Err)
	assert.Equal(t, 6, result.Targets[0].DamageApplied)

	require.Error(t, result.Targets[1].Err)
	assert.True(t, dnderr.IsNotFound(result.Targets[1].Err))

	assert.NoError(t, result.Targets[2].Err)
	assert.Equal(t, 8, result.Targets[2].DamageApplied)
	assert.Equal(t, 4, b.CurrentHP)
}

func TestCastSpell_ResolverSuppliesUnknownSpell(t *testing.T) {
	mage := newMage()
	mage.SetSpellSlots(1, 1, 1)

	goblin := newTestCharacter("goblin", "Goblin", 12, 13)

	enc := combat.NewEncounter("enc-1", "Skirmish")
	enc.AddCombatant(combat.NewCombatant(mage, false))
	enc.AddCombatant(combat.NewCombatant(goblin, true))

	thunder := spell.New("Thunderwave", 1)
	thunder.DamageExpr = "2d8"
	resolver := &stubResolver{spells: map[string]*spell.Spell{"thunderwave": thunder}}

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{5, 6})

	result, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Thunderwave",
		TargetIDs:     []string{"goblin"},
		CasterAbility: shared.AbilityIntelligence,
	}, resolver, roller)
	require.NoError(t, err)

	assert.Equal(t, "Thunderwave", result.Spell.Name)
	assert.Equal(t, 1, result.SlotLevelUsed)
	assert.Equal(t, 11, result.Targets[0].DamageApplied)
}

func TestCastSpell_UnresolvableSpell(t *testing.T) {
	mage := newMage()

	enc := combat.NewEncounter("enc-1", "Skirmish")
	enc.AddCombatant(combat.NewCombatant(mage, false))

	_, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Wish",
		CasterAbility: shared.AbilityIntelligence,
	}, &stubResolver{spells: map[string]*spell.Spell{}}, mockdice.NewManualMockRoller())

	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
	assert.Contains(t, err.Error(), "no spell found")
}

func TestCastSpell_UnknownCaster(t *testing.T) {
	enc := combat.NewEncounter("enc-1", "Skirmish")

	_, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "ghost",
		SpellName:     "Fire Bolt",
		CasterAbility: shared.AbilityIntelligence,
	}, nil, mockdice.NewManualMockRoller())

	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
}

func TestCastSpell_InvalidDamageExpressionBeforeSlotUse(t *testing.T) {
	mage := newMage()
	broken := spell.New("Garbled Incantation", 1)
	broken.DamageExpr = "abc"
	mage.AddSpell(broken)
	mage.SetSpellSlots(1, 1, 1)

	enc := combat.NewEncounter("enc-1", "Skirmish")
	enc.AddCombatant(combat.NewCombatant(mage, false))

	_, err := enc.CastSpell(context.Background(), &combat.CastInput{
		CasterID:      "mage",
		SpellName:     "Garbled Incantation",
		CasterAbility: shared.AbilityIntelligence,
	}, nil, mockdice.NewManualMockRoller())

	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
	assert.Equal(t, 1, mage.SpellSlots[1].Current, "the slot survives a validation failure")
}
