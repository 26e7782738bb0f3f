package game

import (
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/combat"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// Campaign owns every character and encounter in one game. Encounters hold
// combatants that reference campaign characters by identity, so actions
// against an encounter mutate the same character the campaign snapshots.
type Campaign struct {
	Name       string                          `json:"name"`
	Characters map[string]*character.Character `json:"characters"`
	Encounters map[string]*combat.Encounter    `json:"encounters"`
	Party      []string                        `json:"party"`
}

// New creates an empty campaign
func New(name string) *Campaign {
	if name == "" {
		name = "Campaign"
	}
	return &Campaign{
		Name:       name,
		Characters: make(map[string]*character.Character),
		Encounters: make(map[string]*combat.Encounter),
		Party:      []string{},
	}
}

// AddCharacter registers a character and returns its id
func (c *Campaign) AddCharacter(char *character.Character) string {
	c.Characters[char.ID] = char
	return char.ID
}

// Character looks up a character by id
func (c *Campaign) Character(id string) *character.Character {
	return c.Characters[id]
}

// RemoveCharacter drops a character from the campaign and the party list.
// Encounters that already hold the character keep their combatants.
func (c *Campaign) RemoveCharacter(id string) bool {
	if _, ok := c.Characters[id]; !ok {
		return false
	}
	delete(c.Characters, id)
	c.RemoveFromParty(id)
	return true
}

// AddToParty marks a character as an active party member
func (c *Campaign) AddToParty(id string) error {
	if _, ok := c.Characters[id]; !ok {
		return dnderr.NotFoundf("character '%s' not found", id)
	}
	for _, member := range c.Party {
		if member == id {
			return nil
		}
	}
	c.Party = append(c.Party, id)
	return nil
}

// RemoveFromParty drops a character id from the party list
func (c *Campaign) RemoveFromParty(id string) {
	kept := c.Party[:0]
	for _, member := range c.Party {
		if member != id {
			kept = append(kept, member)
		}
	}
	c.Party = kept
}

// AddEncounter registers an encounter under its id
func (c *Campaign) AddEncounter(enc *combat.Encounter) {
	c.Encounters[enc.ID] = enc
}

// Encounter looks up an encounter by id
func (c *Campaign) Encounter(id string) *combat.Encounter {
	return c.Encounters[id]
}

// RemoveEncounter discards an encounter
func (c *Campaign) RemoveEncounter(id string) bool {
	if _, ok := c.Encounters[id]; !ok {
		return false
	}
	delete(c.Encounters, id)
	return true
}

// AddToEncounter wraps a campaign character in fresh combat state and
// appends it to an encounter's roster. The same character may join several
// encounters, or the same one more than once.
func (c *Campaign) AddToEncounter(encounterID, characterID string, isNPC bool) error {
	enc, ok := c.Encounters[encounterID]
	if !ok {
		return dnderr.NotFoundf("encounter '%s' not found", encounterID)
	}
	char, ok := c.Characters[characterID]
	if !ok {
		return dnderr.NotFoundf("character '%s' not found", characterID)
	}

	enc.AddCombatant(combat.NewCombatant(char, isNPC))
	return nil
}
