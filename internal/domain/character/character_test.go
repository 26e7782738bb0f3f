package character_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbilityMod(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, -5},
		{3, -4},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{15, 2},
		{20, 5},
		{30, 10},
	}

	for _, tt := range tests {
		char := character.New("id-1", "Tester")
		char.Abilities[shared.AbilityStrength] = tt.score
		assert.Equal(t, tt.want, char.AbilityMod(shared.AbilityStrength), "score %d", tt.score)
	}
}

func TestAbilityMod_MissingAbilityReadsAsTen(t *testing.T) {
	char := character.New("id-1", "Tester")
	delete(char.Abilities, shared.AbilityWisdom)
	assert.Equal(t, 0, char.AbilityMod(shared.AbilityWisdom))
}

func TestProficiencyBonus(t *testing.T) {
	wantByLevel := map[int]int{
		1: 2, 4: 2,
		5: 3, 8: 3,
		9: 4, 12: 4,
		13: 5, 16: 5,
		17: 6, 20: 6,
	}

	char := character.New("id-1", "Tester")
	for level, want := range wantByLevel {
		char.Level = level
		assert.Equal(t, want, char.ProficiencyBonus(), "level %d", level)
	}
}

func TestSavingThrowMod(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.Level = 5 // proficiency +3
	char.Abilities[shared.AbilityDexterity] = 16

	assert.Equal(t, 3, char.SavingThrowMod(shared.AbilityDexterity))

	char.SaveProficiencies[shared.AbilityDexterity] = true
	assert.Equal(t, 6, char.SavingThrowMod(shared.AbilityDexterity))
}

func TestSkillMod(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.Level = 5 // proficiency +3
	char.Abilities[shared.AbilityDexterity] = 16

	assert.Equal(t, 3, char.SkillMod("Stealth", shared.AbilityDexterity, false))

	char.SkillProficiencies["stealth"] = true
	assert.Equal(t, 6, char.SkillMod("Stealth", shared.AbilityDexterity, false))

	// Expertise doubles the proficiency bonus
	assert.Equal(t, 9, char.SkillMod("Stealth", shared.AbilityDexterity, true))
}

func TestApplyDamage_TempHPAbsorbsFirst(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.MaxHP = 10
	char.CurrentHP = 10
	char.TempHP = 5

	result := char.ApplyDamage(8, nil)

	assert.Equal(t, 0, result.TempHP)
	assert.Equal(t, 7, result.CurrentHP)
	assert.False(t, result.ConcentrationBroken)
}

func TestApplyDamage_NeverNegative(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.MaxHP = 10
	char.CurrentHP = 10

	result := char.ApplyDamage(20, nil)

	assert.Equal(t, 0, result.CurrentHP)
	assert.Equal(t, 0, char.CurrentHP)
}

func TestApplyDamage_ConcentrationCheck(t *testing.T) {
	newConcentrating := func() *character.Character {
		char := character.New("id-1", "Tester")
		char.MaxHP = 30
		char.CurrentHP = 30
		char.StartConcentration(spell.New("Hold Person", 2), 14, 1)
		return char
	}

	// DC for 10 damage is max(10, ceil(10/2)) = 10; a 9 fails
	char := newConcentrating()
	saveRoll := 9
	result := char.ApplyDamage(10, &saveRoll)
	assert.True(t, result.ConcentrationBroken)
	assert.Nil(t, char.Concentration)

	// A 10 meets the DC and holds
	char = newConcentrating()
	saveRoll = 10
	result = char.ApplyDamage(10, &saveRoll)
	assert.False(t, result.ConcentrationBroken)
	assert.NotNil(t, char.Concentration)

	// Bigger hits raise the DC: 30 damage needs 15
	char = newConcentrating()
	saveRoll = 14
	result = char.ApplyDamage(30, &saveRoll)
	assert.True(t, result.ConcentrationBroken)

	// No save roll supplied leaves concentration alone
	char = newConcentrating()
	result = char.ApplyDamage(10, nil)
	assert.False(t, result.ConcentrationBroken)
	assert.NotNil(t, char.Concentration)
}

func TestHeal_CappedAtMax(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.MaxHP = 20
	char.CurrentHP = 5

	assert.Equal(t, 15, char.Heal(10))
	assert.Equal(t, 20, char.Heal(100))
	assert.Equal(t, 20, char.Heal(-5))
}

func TestShortRest(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.MaxHP = 30
	char.CurrentHP = 10
	char.HitDiceRemaining = 2
	char.Abilities[shared.AbilityConstitution] = 14 // +2

	// Three rolls supplied but only two hit dice left
	healed := char.ShortRest([]int{6, 4, 8}, nil)

	assert.Equal(t, 14, healed) // (6+2) + (4+2)
	assert.Equal(t, 24, char.CurrentHP)
	assert.Equal(t, 0, char.HitDiceRemaining)
}

func TestShortRest_Overrides(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.MaxHP = 30
	char.CurrentHP = 10
	char.HitDiceRemaining = 2

	healed := char.ShortRest([]int{6, 4}, []int{3})

	// First die uses the override, second falls back to roll + CON mod (0)
	assert.Equal(t, 7, healed)
	assert.Equal(t, 17, char.CurrentHP)
}

func TestShortRest_NegativeConFlooredAtZero(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.MaxHP = 30
	char.CurrentHP = 10
	char.HitDiceRemaining = 1
	char.Abilities[shared.AbilityConstitution] = 3 // -4

	healed := char.ShortRest([]int{2}, nil)

	assert.Equal(t, 0, healed) // 2-4 floors at 0
	assert.Equal(t, 10, char.CurrentHP)
	assert.Equal(t, 0, char.HitDiceRemaining) // die still spent
}

func TestLongRest(t *testing.T) {
	newWounded := func() *character.Character {
		char := character.New("id-1", "Tester")
		char.MaxHP = 30
		char.CurrentHP = 3
		char.TempHP = 4
		char.SetSpellSlots(1, 0, 4)
		char.SetSpellSlots(2, 1, 3)
		char.AddCondition(shared.ConditionPoisoned, -1)
		char.StartConcentration(spell.New("Bless", 1), 13, 2)
		return char
	}

	char := newWounded()
	char.LongRest(true, true)
	assert.Equal(t, 30, char.CurrentHP)
	assert.Equal(t, 4, char.SpellSlots[1].Current)
	assert.Equal(t, 3, char.SpellSlots[2].Current)
	assert.Equal(t, 0, char.TempHP)
	assert.Nil(t, char.Concentration)
	assert.Empty(t, char.Conditions)

	// Flags off still clear temp HP, concentration, and conditions
	char = newWounded()
	char.LongRest(false, false)
	assert.Equal(t, 3, char.CurrentHP)
	assert.Equal(t, 0, char.SpellSlots[1].Current)
	assert.Equal(t, 0, char.TempHP)
	assert.Nil(t, char.Concentration)
	assert.Empty(t, char.Conditions)
}

func TestConditions(t *testing.T) {
	char := character.New("id-1", "Tester")

	assert.True(t, char.AddCondition(shared.ConditionPoisoned, 2))
	assert.False(t, char.AddCondition(shared.Condition("sleepy"), 2))
	assert.Len(t, char.Conditions, 1)

	char.RemoveCondition(shared.ConditionPoisoned)
	assert.Empty(t, char.Conditions)
}

func TestTickConditions(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.AddCondition(shared.ConditionPoisoned, 2)
	char.AddCondition(shared.ConditionStunned, 1)
	char.AddCondition(shared.ConditionProne, -1)

	expired := char.TickConditions()

	assert.Equal(t, []shared.Condition{shared.ConditionStunned}, expired)
	assert.Equal(t, 1, char.Conditions[shared.ConditionPoisoned])
	assert.Equal(t, -1, char.Conditions[shared.ConditionProne])
	assert.NotContains(t, char.Conditions, shared.ConditionStunned)

	expired = char.TickConditions()
	assert.Equal(t, []shared.Condition{shared.ConditionPoisoned}, expired)
	assert.Equal(t, -1, char.Conditions[shared.ConditionProne])
}

func TestUseSpellSlot(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.SetSpellSlots(1, 2, 4)

	assert.True(t, char.UseSpellSlot(1))
	assert.True(t, char.UseSpellSlot(1))
	assert.False(t, char.UseSpellSlot(1), "empty pool")
	assert.Equal(t, 0, char.SpellSlots[1].Current)

	assert.False(t, char.UseSpellSlot(3), "no pool for that level")
}

func TestSpellLookup(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.AddSpell(spell.New("Fire Bolt", 0))

	require.NotNil(t, char.Spell("fire bolt"))
	assert.Nil(t, char.Spell("Fireball"))
}

func TestTryLevelUp(t *testing.T) {
	char := character.New("id-1", "Tester")
	char.HitDie = 8
	char.MaxHP = 10

	// Not enough XP for level 2
	char.AddXP(299)
	assert.False(t, char.TryLevelUp())
	assert.Equal(t, 1, char.Level)

	// 300 XP reaches level 2; max HP gains ceil(8/2)+1 = 5
	char.AddXP(1)
	assert.True(t, char.TryLevelUp())
	assert.Equal(t, 2, char.Level)
	assert.Equal(t, 15, char.MaxHP)

	// A big award can jump several levels at once
	char.AddXP(6200) // total 6500 -> level 5
	assert.True(t, char.TryLevelUp())
	assert.Equal(t, 5, char.Level)
	assert.Equal(t, 30, char.MaxHP) // 15 + 3*5

	// No-op when already at the met threshold
	assert.False(t, char.TryLevelUp())
}

func TestItemUse(t *testing.T) {
	potion := &character.Item{Name: "Potion of Healing", Quantity: 2, Consumable: true}

	assert.True(t, potion.Use())
	assert.Equal(t, 1, potion.Quantity)
	assert.True(t, potion.Use())
	assert.False(t, potion.Use(), "empty consumable cannot be used")
	assert.Equal(t, 0, potion.Quantity)

	rope := &character.Item{Name: "Rope", Quantity: 1}
	assert.True(t, rope.Use())
	assert.Equal(t, 1, rope.Quantity, "non-consumables keep their quantity")

	none := &character.Item{Name: "Ghost", Quantity: 0}
	assert.False(t, none.Use())
}

func TestStartConcentration_ReplacesPrevious(t *testing.T) {
	char := character.New("id-1", "Tester")

	char.StartConcentration(spell.New("Bless", 1), 13, 1)
	char.StartConcentration(spell.New("Hold Person", 2), 14, 3)

	require.NotNil(t, char.Concentration)
	assert.Equal(t, "Hold Person", char.Concentration.Spell.Name)
	assert.Equal(t, 14, char.Concentration.SaveDC)
	assert.Equal(t, 3, char.Concentration.StartedAtRound)
}
