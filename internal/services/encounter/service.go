package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/dnd-session-tracker/internal/dice"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/combat"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-session-tracker/internal/services/session"
	"github.com/KirkDiggler/dnd-session-tracker/internal/uuid"
)

// Service runs combat encounters on the live campaign: rosters, initiative,
// the turn cursor, and attack and spell resolution.
type Service interface {
	// CreateEncounter registers a new empty encounter on the campaign
	CreateEncounter(ctx context.Context, name string) (*combat.Encounter, error)

	// GetEncounter retrieves an encounter by ID
	GetEncounter(ctx context.Context, encounterID string) (*combat.Encounter, error)

	// RemoveEncounter discards an encounter. Campaign characters that
	// fought in it are untouched.
	RemoveEncounter(ctx context.Context, encounterID string) error

	// AddCombatant wraps a campaign character in fresh combat state and
	// adds it to the roster
	AddCombatant(ctx context.Context, encounterID, characterID string, isNPC bool) (*combat.Combatant, error)

	// RemoveCombatant drops a character's combatants from the roster
	RemoveCombatant(ctx context.Context, encounterID, characterID string) error

	// Start assigns initiative and begins round one. A nil map rolls
	// d20 + DEX modifier for every combatant.
	Start(ctx context.Context, encounterID string, initiatives map[string]int) error

	// NextTurn advances the turn cursor, ticking condition clocks when a
	// new round begins
	NextTurn(ctx context.Context, encounterID string) (*combat.Combatant, error)

	// PreviousTurn steps the turn cursor backward to undo an overshoot
	PreviousTurn(ctx context.Context, encounterID string) (*combat.Combatant, error)

	// CurrentCombatant returns the combatant whose turn it is
	CurrentCombatant(ctx context.Context, encounterID string) (*combat.Combatant, error)

	// PerformAttack resolves an already-rolled attack against a defender
	PerformAttack(ctx context.Context, input *AttackInput) (*combat.AttackResult, error)

	// CastSpell resolves a spell cast against one or more targets,
	// consulting the spellbook for spells the caster does not know
	CastSpell(ctx context.Context, input *CastInput) (*combat.CastResult, error)

	// ApplyAreaDamage damages every listed combatant in one sweep
	ApplyAreaDamage(ctx context.Context, encounterID string, damage map[string]int, conSaves map[string]int) (map[string]*character.DamageResult, error)
}

// AttackInput contains data for resolving one attack
type AttackInput struct {
	EncounterID string
	AttackerID  string
	DefenderID  string
	AttackRoll  int
	Damage      int
	Critical    bool // doubles the damage on a hit
}

// CastInput contains data for resolving one spell cast
type CastInput struct {
	EncounterID   string
	CasterID      string
	SpellName     string
	SlotLevel     *int // Optional, defaults to the spell's own level
	TargetIDs     []string
	CasterAbility shared.Ability // Optional, defaults to intelligence
}

// service implements the Service interface
type service struct {
	sessions      session.Service
	roller        dice.Roller
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Sessions      session.Service // Required
	Roller        dice.Roller     // Optional, will use default if nil
	UUIDGenerator uuid.Generator  // Optional, will use default if nil
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Sessions == nil {
		panic("session service is required")
	}

	svc := &service{
		sessions: cfg.Sessions,
	}

	if cfg.Roller != nil {
		svc.roller = cfg.Roller
	} else {
		svc.roller = dice.NewRandomRoller()
	}

	// Use provided UUID generator or create default
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateEncounter registers a new empty encounter on the campaign
func (s *service) CreateEncounter(ctx context.Context, name string) (*combat.Encounter, error) {
	if strings.TrimSpace(name) == "" {
		name = "Encounter"
	}

	enc := combat.NewEncounter(s.uuidGenerator.New(), name)
	s.sessions.Campaign().AddEncounter(enc)

	log.Printf("[ENCOUNTER] created '%s' (%s)", enc.Name, enc.ID)
	return enc, nil
}

// GetEncounter retrieves an encounter by ID
func (s *service) GetEncounter(ctx context.Context, encounterID string) (*combat.Encounter, error) {
	return s.lookupEncounter(encounterID)
}

// RemoveEncounter discards an encounter
func (s *service) RemoveEncounter(ctx context.Context, encounterID string) error {
	if strings.TrimSpace(encounterID) == "" {
		return dnderr.InvalidArgument("encounter ID is required")
	}

	if !s.sessions.Campaign().RemoveEncounter(encounterID) {
		return dnderr.NotFoundf("encounter '%s' not found", encounterID)
	}

	log.Printf("[ENCOUNTER] removed %s", encounterID)
	return nil
}

// AddCombatant wraps a campaign character in fresh combat state and adds it
// to the roster
func (s *service) AddCombatant(ctx context.Context, encounterID, characterID string, isNPC bool) (*combat.Combatant, error) {
	enc, err := s.lookupEncounter(encounterID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(characterID) == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	if err := s.sessions.Campaign().AddToEncounter(encounterID, characterID, isNPC); err != nil {
		return nil, err
	}

	combatant := enc.Combatants[len(enc.Combatants)-1]
	log.Printf("[ENCOUNTER] %s joined '%s'", combatant.Character.Name, enc.Name)

	return combatant, nil
}

// RemoveCombatant drops a character's combatants from the roster
func (s *service) RemoveCombatant(ctx context.Context, encounterID, characterID string) error {
	enc, err := s.lookupEncounter(encounterID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(characterID) == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	if !enc.RemoveCombatant(characterID) {
		return dnderr.NotFoundf("character '%s' not in encounter", characterID)
	}

	log.Printf("[ENCOUNTER] %s left '%s'", characterID, enc.Name)
	return nil
}

// Start assigns initiative and begins round one
func (s *service) Start(ctx context.Context, encounterID string, initiatives map[string]int) error {
	enc, err := s.lookupEncounter(encounterID)
	if err != nil {
		return err
	}
	if len(enc.Combatants) == 0 {
		return dnderr.FailedPrecondition("encounter has no combatants")
	}

	if initiatives == nil {
		initiatives = make(map[string]int, len(enc.Combatants))
		for _, c := range enc.Combatants {
			rolled, err := s.roller.Roll(1, 20, c.Character.AbilityMod(shared.AbilityDexterity))
			if err != nil {
				return dnderr.Wrap(err, "failed to roll initiative")
			}
			initiatives[c.Character.ID] = rolled.Total
		}
	}

	enc.Start(initiatives)

	order := make([]string, 0, len(enc.Combatants))
	for _, c := range enc.Combatants {
		order = append(order, fmt.Sprintf("%s (%d)", c.Character.Name, c.InitiativeValue()))
	}
	log.Printf("[ENCOUNTER] '%s' started: %s", enc.Name, strings.Join(order, ", "))

	return nil
}

// NextTurn advances the turn cursor
func (s *service) NextTurn(ctx context.Context, encounterID string) (*combat.Combatant, error) {
	enc, err := s.lookupEncounter(encounterID)
	if err != nil {
		return nil, err
	}

	combatant, err := enc.NextTurn()
	if err != nil {
		return nil, err
	}

	log.Printf("[ENCOUNTER] '%s' round %d: %s's turn", enc.Name, enc.Round, combatant.Character.Name)
	return combatant, nil
}

// PreviousTurn steps the turn cursor backward
func (s *service) PreviousTurn(ctx context.Context, encounterID string) (*combat.Combatant, error) {
	enc, err := s.lookupEncounter(encounterID)
	if err != nil {
		return nil, err
	}

	combatant, err := enc.PreviousTurn()
	if err != nil {
		return nil, err
	}

	log.Printf("[ENCOUNTER] '%s' turn rewound to %s", enc.Name, combatant.Character.Name)
	return combatant, nil
}

// CurrentCombatant returns the combatant whose turn it is
func (s *service) CurrentCombatant(ctx context.Context, encounterID string) (*combat.Combatant, error) {
	enc, err := s.lookupEncounter(encounterID)
	if err != nil {
		return nil, err
	}

	combatant := enc.CurrentCombatant()
	if combatant == nil {
		return nil, dnderr.FailedPrecondition("encounter has no combatants")
	}

	return combatant, nil
}

// PerformAttack resolves an already-rolled attack against a defender
func (s *service) PerformAttack(ctx context.Context, input *AttackInput) (*combat.AttackResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	enc, err := s.lookupEncounter(input.EncounterID)
	if err != nil {
		return nil, err
	}

	result, err := enc.PerformAttack(input.AttackerID, input.DefenderID, input.AttackRoll, input.Damage, input.Critical)
	if err != nil {
		return nil, err
	}

	attacker := enc.Combatant(input.AttackerID)
	defender := enc.Combatant(input.DefenderID)
	if result.Hit {
		log.Printf("[ENCOUNTER] %s hits %s for %d (HP %d)",
			attacker.Character.Name, defender.Character.Name, result.AppliedDamage, result.DefenderHP)
	} else {
		log.Printf("[ENCOUNTER] %s misses %s (%d vs AC %d)",
			attacker.Character.Name, defender.Character.Name, input.AttackRoll, defender.Character.ArmorClass)
	}

	return result, nil
}

// CastSpell resolves a spell cast against one or more targets
func (s *service) CastSpell(ctx context.Context, input *CastInput) (*combat.CastResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	enc, err := s.lookupEncounter(input.EncounterID)
	if err != nil {
		return nil, err
	}

	ability := input.CasterAbility
	if ability == "" {
		ability = shared.AbilityIntelligence
	}

	result, err := enc.CastSpell(ctx, &combat.CastInput{
		CasterID:      input.CasterID,
		SpellName:     input.SpellName,
		SlotLevel:     input.SlotLevel,
		TargetIDs:     input.TargetIDs,
		CasterAbility: ability,
	}, s.sessions.Spellbook(), s.roller)
	if err != nil {
		return nil, err
	}

	log.Printf("[ENCOUNTER] %s casts %s (DC %d)", result.Caster, result.Spell.Name, result.SaveDC)
	for _, target := range result.Targets {
		switch {
		case target.Err != nil:
			log.Printf("[ENCOUNTER]   %s: %v", target.TargetID, target.Err)
		case target.SaveRequired && target.Saved:
			log.Printf("[ENCOUNTER]   %s saves (%d), takes %d (HP %d)",
				target.TargetName, target.SaveRoll, target.DamageApplied, target.CurrentHP)
		default:
			log.Printf("[ENCOUNTER]   %s takes %d (HP %d)",
				target.TargetName, target.DamageApplied, target.CurrentHP)
		}
	}

	return result, nil
}

// ApplyAreaDamage damages every listed combatant in one sweep
func (s *service) ApplyAreaDamage(ctx context.Context, encounterID string, damage map[string]int, conSaves map[string]int) (map[string]*character.DamageResult, error) {
	enc, err := s.lookupEncounter(encounterID)
	if err != nil {
		return nil, err
	}

	results := enc.ApplyAreaDamage(damage, conSaves)
	log.Printf("[ENCOUNTER] area damage hit %d combatants in '%s'", len(results), enc.Name)

	return results, nil
}

// lookupEncounter resolves an encounter id against the live campaign
func (s *service) lookupEncounter(encounterID string) (*combat.Encounter, error) {
	if strings.TrimSpace(encounterID) == "" {
		return nil, dnderr.InvalidArgument("encounter ID is required")
	}

	enc := s.sessions.Campaign().Encounter(encounterID)
	if enc == nil {
		return nil, dnderr.NotFoundf("encounter '%s' not found", encounterID)
	}

	return enc, nil
}
