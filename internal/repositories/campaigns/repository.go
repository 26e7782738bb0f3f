// Package campaigns persists campaign snapshots. Three stores share one
// JSON codec: files on disk, Redis, and an in-memory map for tests.
package campaigns

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/combat"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/game"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcampaigns . Repository

// Repository stores campaign snapshots by campaign name.
type Repository interface {
	Save(ctx context.Context, campaign *game.Campaign) error
	Load(ctx context.Context, name string) (*game.Campaign, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}

// CharacterData is the stored form of one character. Fields mirror
// character.Character under the same json names.
type CharacterData struct {
	ID                 string                      `json:"char_id"`
	Name               string                      `json:"name"`
	PlayerName         string                      `json:"player_name,omitempty"`
	Level              int                         `json:"level"`
	Race               string                      `json:"race"`
	Class              string                      `json:"char_class"`
	MaxHP              int                         `json:"max_hp"`
	CurrentHP          int                         `json:"current_hp"`
	TempHP             int                         `json:"temp_hp"`
	HitDie             int                         `json:"hit_die"`
	HitDiceRemaining   int                         `json:"hit_die_total"`
	ArmorClass         int                         `json:"armor_class"`
	Speed              int                         `json:"speed"`
	Abilities          map[shared.Ability]int      `json:"abilities"`
	SaveProficiencies  map[shared.Ability]bool     `json:"saves_proficiency"`
	SkillProficiencies map[string]bool             `json:"skill_proficiency"`
	Inspiration        bool                        `json:"inspiration"`
	Conditions         map[shared.Condition]int    `json:"conditions"`
	Inventory          []*character.Item           `json:"inventory"`
	Spells             []*spell.Spell              `json:"spells"`
	SpellSlots         map[int]*character.SlotPool `json:"spell_slots"`
	Concentration      *character.Concentration    `json:"concentration,omitempty"`
	XP                 int                         `json:"xp"`
}

// UnmarshalJSON fills in creation defaults before decoding, so snapshots
// missing optional fields load the way a new character starts out. Fields
// present in the snapshot always win, including explicit zeroes.
func (d *CharacterData) UnmarshalJSON(raw []byte) error {
	type plain CharacterData
	tmp := plain{
		Level:            1,
		MaxHP:            8,
		CurrentHP:        8,
		HitDie:           8,
		HitDiceRemaining: 1,
		ArmorClass:       10,
		Speed:            30,
	}
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}
	*d = CharacterData(tmp)
	return nil
}

// CombatantData is the stored form of one encounter participant.
type CombatantData struct {
	Character  CharacterData `json:"character"`
	Initiative *int          `json:"initiative"`
	Alive      bool          `json:"alive"`
	IsNPC      bool          `json:"is_npc"`
	TokenID    string        `json:"token_id,omitempty"`
}

// UnmarshalJSON defaults alive to true for snapshots that omit it.
func (d *CombatantData) UnmarshalJSON(raw []byte) error {
	type plain CombatantData
	tmp := plain{Alive: true}
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}
	*d = CombatantData(tmp)
	return nil
}

// EncounterData is the stored form of one encounter. The encounter id is
// the campaign's encounters map key, not repeated here.
type EncounterData struct {
	Name       string           `json:"name"`
	Round      int              `json:"round"`
	TurnIndex  int              `json:"turn_index"`
	Combatants []*CombatantData `json:"combatants"`
}

// CampaignData is the stored form of a whole campaign.
type CampaignData struct {
	Name       string                    `json:"name"`
	Characters map[string]*CharacterData `json:"characters"`
	Encounters map[string]*EncounterData `json:"encounters"`
	Party      []string                  `json:"party"`
}

func toCharacterData(char *character.Character) *CharacterData {
	return &CharacterData{
		ID:                 char.ID,
		Name:               char.Name,
		PlayerName:         char.PlayerName,
		Level:              char.Level,
		Race:               char.Race,
		Class:              char.Class,
		MaxHP:              char.MaxHP,
		CurrentHP:          char.CurrentHP,
		TempHP:             char.TempHP,
		HitDie:             char.HitDie,
		HitDiceRemaining:   char.HitDiceRemaining,
		ArmorClass:         char.ArmorClass,
		Speed:              char.Speed,
		Abilities:          char.Abilities,
		SaveProficiencies:  char.SaveProficiencies,
		SkillProficiencies: char.SkillProficiencies,
		Inspiration:        char.Inspiration,
		Conditions:         char.Conditions,
		Inventory:          char.Inventory,
		Spells:             char.Spells,
		SpellSlots:         char.SpellSlots,
		Concentration:      char.Concentration,
		XP:                 char.XP,
	}
}

func fromCharacterData(d *CharacterData) *character.Character {
	// New initializes every map, so characters loaded from sparse
	// snapshots stay safe to mutate.
	char := character.New(d.ID, d.Name)
	char.PlayerName = d.PlayerName
	char.Level = d.Level
	char.Race = d.Race
	char.Class = d.Class
	char.MaxHP = d.MaxHP
	char.CurrentHP = d.CurrentHP
	char.TempHP = d.TempHP
	char.HitDie = d.HitDie
	char.HitDiceRemaining = d.HitDiceRemaining
	char.ArmorClass = d.ArmorClass
	char.Speed = d.Speed

	if d.Abilities != nil {
		char.Abilities = d.Abilities
	}
	if d.SaveProficiencies != nil {
		char.SaveProficiencies = d.SaveProficiencies
	}
	if d.SkillProficiencies != nil {
		char.SkillProficiencies = d.SkillProficiencies
	}
	if d.Conditions != nil {
		char.Conditions = d.Conditions
	}
	if d.SpellSlots != nil {
		char.SpellSlots = d.SpellSlots
	}

	char.Inspiration = d.Inspiration
	char.Inventory = d.Inventory
	char.Spells = d.Spells
	char.Concentration = d.Concentration
	char.XP = d.XP

	return char
}

func toCombatantData(c *combat.Combatant) *CombatantData {
	return &CombatantData{
		Character:  *toCharacterData(c.Character),
		Initiative: c.Initiative,
		Alive:      c.Alive,
		IsNPC:      c.IsNPC,
		TokenID:    c.TokenID,
	}
}

func fromCombatantData(d *CombatantData) *combat.Combatant {
	return &combat.Combatant{
		Character:  fromCharacterData(&d.Character),
		Initiative: d.Initiative,
		Alive:      d.Alive,
		IsNPC:      d.IsNPC,
		TokenID:    d.TokenID,
	}
}

func toEncounterData(e *combat.Encounter) *EncounterData {
	data := &EncounterData{
		Name:       e.Name,
		Round:      e.Round,
		TurnIndex:  e.TurnIndex,
		Combatants: make([]*CombatantData, 0, len(e.Combatants)),
	}
	for _, c := range e.Combatants {
		data.Combatants = append(data.Combatants, toCombatantData(c))
	}
	return data
}

func fromEncounterData(id string, d *EncounterData) *combat.Encounter {
	name := d.Name
	if name == "" {
		name = "Encounter"
	}

	enc := combat.NewEncounter(id, name)
	enc.Round = d.Round
	enc.TurnIndex = d.TurnIndex
	for _, cd := range d.Combatants {
		if cd == nil {
			continue
		}
		enc.Combatants = append(enc.Combatants, fromCombatantData(cd))
	}
	return enc
}

func toCampaignData(c *game.Campaign) *CampaignData {
	data := &CampaignData{
		Name:       c.Name,
		Characters: make(map[string]*CharacterData, len(c.Characters)),
		Encounters: make(map[string]*EncounterData, len(c.Encounters)),
		Party:      c.Party,
	}
	if data.Party == nil {
		data.Party = []string{}
	}

	for id, char := range c.Characters {
		data.Characters[id] = toCharacterData(char)
	}
	for id, enc := range c.Encounters {
		data.Encounters[id] = toEncounterData(enc)
	}
	return data
}

func fromCampaignData(d *CampaignData) *game.Campaign {
	c := game.New(d.Name)

	for id, cd := range d.Characters {
		if cd == nil {
			continue
		}
		if cd.ID == "" {
			cd.ID = id
		}
		c.Characters[id] = fromCharacterData(cd)
	}

	for id, ed := range d.Encounters {
		if ed == nil {
			continue
		}
		enc := fromEncounterData(id, ed)

		// Relink combatants to the campaign-owned character where the
		// id matches, so encounter damage keeps landing on the same
		// sheet the campaign saves. Unmatched combatants keep their
		// embedded copy.
		for _, cb := range enc.Combatants {
			if owned, ok := c.Characters[cb.Character.ID]; ok {
				cb.Character = owned
			}
		}
		c.Encounters[id] = enc
	}

	if d.Party != nil {
		c.Party = d.Party
	}

	return c
}
