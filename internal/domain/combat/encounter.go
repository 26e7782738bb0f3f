package combat

import (
	"sort"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// Encounter owns an ordered roster of combatants and the round/turn cursor.
// Round 0 means the encounter has not started; Start moves it to round 1 and
// it stays active until the caller discards it.
type Encounter struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Combatants []*Combatant `json:"combatants"`
	Round      int          `json:"round"`
	TurnIndex  int          `json:"turn_index"`
}

// NewEncounter creates an empty unstarted encounter
func NewEncounter(id, name string) *Encounter {
	return &Encounter{
		ID:         id,
		Name:       name,
		Combatants: []*Combatant{},
	}
}

// AddCombatant appends a combatant to the roster. Allowed before or after
// the encounter starts; the same character may appear more than once.
func (e *Encounter) AddCombatant(c *Combatant) {
	e.Combatants = append(e.Combatants, c)
}

// RemoveCombatant drops every combatant wrapping the given character id.
// Returns true when at least one was removed.
func (e *Encounter) RemoveCombatant(characterID string) bool {
	kept := e.Combatants[:0]
	removed := false
	for _, c := range e.Combatants {
		if c.Character != nil && c.Character.ID == characterID {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	e.Combatants = kept
	return removed
}

// Combatant finds the first combatant wrapping the given character id
func (e *Encounter) Combatant(characterID string) *Combatant {
	for _, c := range e.Combatants {
		if c.Character != nil && c.Character.ID == characterID {
			return c
		}
	}
	return nil
}

// Start assigns initiative from the map (0 when absent), sorts the roster
// descending by initiative with DEX modifier as the tie-break, and begins
// round 1 at the top of the order.
func (e *Encounter) Start(initiatives map[string]int) {
	for _, c := range e.Combatants {
		value := initiatives[c.Character.ID]
		c.Initiative = &value
	}

	sort.SliceStable(e.Combatants, func(i, j int) bool {
		a, b := e.Combatants[i], e.Combatants[j]
		if a.InitiativeValue() != b.InitiativeValue() {
			return a.InitiativeValue() > b.InitiativeValue()
		}
		return a.Character.AbilityMod(shared.AbilityDexterity) > b.Character.AbilityMod(shared.AbilityDexterity)
	})

	e.Round = 1
	e.TurnIndex = 0
}

// NextTurn advances the cursor. Wrapping back to the top starts a new round
// and ticks every combatant's condition clocks. Returns the new current
// combatant.
func (e *Encounter) NextTurn() (*Combatant, error) {
	if len(e.Combatants) == 0 {
		return nil, dnderr.FailedPrecondition("encounter has no combatants")
	}

	e.TurnIndex = (e.TurnIndex + 1) % len(e.Combatants)
	if e.TurnIndex == 0 {
		e.Round++
		for _, c := range e.Combatants {
			c.Character.TickConditions()
		}
	}

	return e.Combatants[e.TurnIndex], nil
}

// PreviousTurn steps the cursor backward. No round or condition effects.
func (e *Encounter) PreviousTurn() (*Combatant, error) {
	if len(e.Combatants) == 0 {
		return nil, dnderr.FailedPrecondition("encounter has no combatants")
	}

	e.TurnIndex = (e.TurnIndex - 1 + len(e.Combatants)) % len(e.Combatants)
	return e.Combatants[e.TurnIndex], nil
}

// CurrentCombatant returns the combatant at the cursor, resetting an
// out-of-range cursor (possible after removals) to the top of the order.
// Returns nil when the roster is empty.
func (e *Encounter) CurrentCombatant() *Combatant {
	if len(e.Combatants) == 0 {
		return nil
	}
	if e.TurnIndex < 0 || e.TurnIndex >= len(e.Combatants) {
		e.TurnIndex = 0
	}
	return e.Combatants[e.TurnIndex]
}
