package campaigns

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/combat"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/game"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
)

// testCampaign builds a campaign mid-session: a wounded hero concentrating
// on a spell, a goblin, and a started encounter holding both.
func testCampaign() *game.Campaign {
	hero := character.New("hero-1", "Yara")
	hero.Class = "Wizard"
	hero.Level = 5
	hero.MaxHP = 32
	hero.CurrentHP = 21
	hero.TempHP = 4
	hero.Abilities[shared.AbilityIntelligence] = 16
	hero.SaveProficiencies[shared.AbilityIntelligence] = true
	hero.SkillProficiencies["arcana"] = true
	hero.SpellSlots = map[int]*character.SlotPool{
		1: {Current: 2, Max: 4},
		2: {Current: 1, Max: 3},
	}
	hero.Conditions[shared.ConditionPoisoned] = 2
	hero.Inventory = []*character.Item{
		{Name: "Healing Potion", Quantity: 2, Consumable: true},
	}

	holdPerson := spell.New("Hold Person", 2)
	holdPerson.Concentration = true
	hero.Spells = []*spell.Spell{holdPerson}
	hero.Concentration = &character.Concentration{Spell: holdPerson, SaveDC: 10, StartedAtRound: 1}
	hero.XP = 6500

	goblin := character.New("npc-1", "Goblin")
	goblin.MaxHP = 7
	goblin.CurrentHP = 7
	goblin.ArmorClass = 13

	c := game.New("Riverdale")
	c.AddCharacter(hero)
	c.AddCharacter(goblin)
	_ = c.AddToParty("hero-1")

	enc := combat.NewEncounter("enc-1", "Ambush")
	enc.AddCombatant(combat.NewCombatant(hero, false))
	enc.AddCombatant(combat.NewCombatant(goblin, true))
	enc.Start(map[string]int{"hero-1": 15, "npc-1": 9})
	c.AddEncounter(enc)

	return c
}

func TestCodec_RoundTrip(t *testing.T) {
	original := testCampaign()

	jsonData, err := json.Marshal(toCampaignData(original))
	require.NoError(t, err)

	var data CampaignData
	require.NoError(t, json.Unmarshal(jsonData, &data))
	loaded := fromCampaignData(&data)

	assert.Equal(t, "Riverdale", loaded.Name)
	assert.Equal(t, []string{"hero-1"}, loaded.Party)

	hero := loaded.Character("hero-1")
	require.NotNil(t, hero)
	assert.Equal(t, "Yara", hero.Name)
	assert.Equal(t, 5, hero.Level)
	assert.Equal(t, 21, hero.CurrentHP)
	assert.Equal(t, 4, hero.TempHP)
	assert.Equal(t, 16, hero.Abilities[shared.AbilityIntelligence])
	assert.True(t, hero.SaveProficiencies[shared.AbilityIntelligence])
	assert.True(t, hero.SkillProficiencies["arcana"])
	assert.Equal(t, 2, hero.Conditions[shared.ConditionPoisoned])
	assert.Equal(t, 6500, hero.XP)

	require.NotNil(t, hero.SpellSlots[1])
	assert.Equal(t, 2, hero.SpellSlots[1].Current)
	assert.Equal(t, 4, hero.SpellSlots[1].Max)
	require.NotNil(t, hero.SpellSlots[2])
	assert.Equal(t, 1, hero.SpellSlots[2].Current)

	require.Len(t, hero.Inventory, 1)
	assert.Equal(t, "Healing Potion", hero.Inventory[0].Name)
	assert.True(t, hero.Inventory[0].Consumable)

	require.Len(t, hero.Spells, 1)
	assert.Equal(t, "Hold Person", hero.Spells[0].Name)
	require.NotNil(t, hero.Concentration)
	assert.Equal(t, 10, hero.Concentration.SaveDC)

	enc := loaded.Encounter("enc-1")
	require.NotNil(t, enc)
	assert.Equal(t, "Ambush", enc.Name)
	assert.Equal(t, 1, enc.Round)
	require.Len(t, enc.Combatants, 2)
	assert.Equal(t, 15, enc.Combatants[0].InitiativeValue())
	assert.True(t, enc.Combatants[1].IsNPC)
}

func TestCodec_RelinkSharesCampaignCharacter(t *testing.T) {
	jsonData, err := json.Marshal(toCampaignData(testCampaign()))
	require.NoError(t, err)

	var data CampaignData
	require.NoError(t, json.Unmarshal(jsonData, &data))
	loaded := fromCampaignData(&data)

	enc := loaded.Encounter("enc-1")
	require.NotNil(t, enc)
	hero := loaded.Character("hero-1")
	require.NotNil(t, hero)

	heroCombatant := enc.Combatant("hero-1")
	require.NotNil(t, heroCombatant)
	assert.Same(t, hero, heroCombatant.Character)

	// Damage through the encounter lands on the campaign's sheet: the 4
	// temp HP absorb first, the last point comes off real HP.
	_, err = enc.PerformAttack("npc-1", "hero-1", 20, 5, false)
	require.NoError(t, err)
	assert.Equal(t, 0, hero.TempHP)
	assert.Equal(t, 20, hero.CurrentHP)
}

func TestCodec_TombstoneKeepsEmbeddedCopy(t *testing.T) {
	c := game.New("Orphans")
	stray := character.New("gone-1", "Forgotten NPC")

	enc := combat.NewEncounter("enc-9", "Leftovers")
	enc.AddCombatant(combat.NewCombatant(stray, true))
	c.AddEncounter(enc)

	jsonData, err := json.Marshal(toCampaignData(c))
	require.NoError(t, err)

	var data CampaignData
	require.NoError(t, json.Unmarshal(jsonData, &data))
	loaded := fromCampaignData(&data)

	assert.Nil(t, loaded.Character("gone-1"))

	loadedEnc := loaded.Encounter("enc-9")
	require.NotNil(t, loadedEnc)
	require.Len(t, loadedEnc.Combatants, 1)
	assert.Equal(t, "Forgotten NPC", loadedEnc.Combatants[0].Character.Name)
}

func TestCodec_SparseSnapshotGetsDefaults(t *testing.T) {
	raw := []byte(`{
		"name": "Bare",
		"characters": {"abc": {"name": "Ghost"}},
		"encounters": {"e1": {"combatants": [{"character": {"char_id": "abc", "name": "Ghost"}}]}}
	}`)

	var data CampaignData
	require.NoError(t, json.Unmarshal(raw, &data))
	loaded := fromCampaignData(&data)

	ghost := loaded.Character("abc")
	require.NotNil(t, ghost)
	assert.Equal(t, "abc", ghost.ID) // id filled from the map key
	assert.Equal(t, 1, ghost.Level)
	assert.Equal(t, 8, ghost.MaxHP)
	assert.Equal(t, 8, ghost.CurrentHP)
	assert.Equal(t, 8, ghost.HitDie)
	assert.Equal(t, 1, ghost.HitDiceRemaining)
	assert.Equal(t, 10, ghost.ArmorClass)
	assert.Equal(t, 30, ghost.Speed)

	// Maps are initialized, so the loaded character is safe to mutate.
	assert.True(t, ghost.AddCondition(shared.ConditionStunned, 1))

	enc := loaded.Encounter("e1")
	require.NotNil(t, enc)
	assert.Equal(t, "Encounter", enc.Name)
	require.Len(t, enc.Combatants, 1)
	assert.True(t, enc.Combatants[0].Alive) // defaults to alive
	assert.Nil(t, enc.Combatants[0].Initiative)
	assert.Same(t, ghost, enc.Combatants[0].Character)
}

func TestCodec_ExplicitZeroesSurvive(t *testing.T) {
	raw := []byte(`{
		"name": "Downed",
		"characters": {"abc": {"char_id": "abc", "name": "Flat", "current_hp": 0, "level": 3}}
	}`)

	var data CampaignData
	require.NoError(t, json.Unmarshal(raw, &data))
	loaded := fromCampaignData(&data)

	flat := loaded.Character("abc")
	require.NotNil(t, flat)
	assert.Equal(t, 0, flat.CurrentHP) // a downed character stays downed
	assert.Equal(t, 3, flat.Level)
	assert.Equal(t, 8, flat.MaxHP) // absent fields still default
}
