package session

//go:generate mockgen -destination=mock/mock_service.go -package=mocksession -source=service.go

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/KirkDiggler/dnd-session-tracker/internal/dice"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/character"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/game"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-session-tracker/internal/repositories/campaigns"
	"github.com/KirkDiggler/dnd-session-tracker/internal/spellbook"
	"github.com/KirkDiggler/dnd-session-tracker/internal/uuid"
)

// Service manages the live campaign: its characters, their day-to-day state
// changes, and snapshot persistence through the campaign repository.
type Service interface {
	// CreateCharacter builds a character from the input and registers it
	// on the campaign
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error)

	// GetCharacter retrieves a campaign character by ID
	GetCharacter(ctx context.Context, characterID string) (*character.Character, error)

	// RemoveCharacter drops a character from the campaign and the party
	RemoveCharacter(ctx context.Context, characterID string) error

	// ListCharacters returns every campaign character, ordered by name
	ListCharacters(ctx context.Context) []*character.Character

	// AddToParty marks a character as an active party member
	AddToParty(ctx context.Context, characterID string) error

	// RemoveFromParty drops a character from the party list. Unknown ids
	// are ignored.
	RemoveFromParty(ctx context.Context, characterID string) error

	// ApplyDamage damages a character outside of any encounter. The
	// optional constitution save roll feeds the concentration check.
	ApplyDamage(ctx context.Context, characterID string, amount int, conSaveRoll *int) (*character.DamageResult, error)

	// Heal restores hit points, capped at max HP. Returns the new total.
	Heal(ctx context.Context, characterID string, amount int) (int, error)

	// ShortRest spends hit dice to heal. With no rolls supplied, one hit
	// die is rolled for the character. Returns the HP recovered.
	ShortRest(ctx context.Context, characterID string, rolls []int) (int, error)

	// LongRest restores the character to full HP and slots and clears
	// temporary state
	LongRest(ctx context.Context, characterID string) error

	// AddCondition applies a condition for a number of rounds, -1 meaning
	// until removed
	AddCondition(ctx context.Context, characterID string, cond shared.Condition, rounds int) error

	// RemoveCondition clears a condition from a character
	RemoveCondition(ctx context.Context, characterID string, cond shared.Condition) error

	// UseItem consumes one use of a named inventory item
	UseItem(ctx context.Context, characterID, itemName string) (*character.Item, error)

	// AddItem adds an item to a character's inventory
	AddItem(ctx context.Context, characterID string, item *character.Item) error

	// LearnSpell adds a spell to the character's known list, resolving it
	// through the spellbook
	LearnSpell(ctx context.Context, characterID, spellName string) (*spell.Spell, error)

	// SetSpellSlots replaces the slot pool for one spell level
	SetSpellSlots(ctx context.Context, characterID string, level, current, maxSlots int) error

	// AwardXP grants experience and reports whether the character
	// leveled up
	AwardXP(ctx context.Context, characterID string, amount int) (bool, error)

	// SaveCampaign snapshots the live campaign to the repository
	SaveCampaign(ctx context.Context) error

	// LoadCampaign replaces the live campaign with a stored snapshot
	LoadCampaign(ctx context.Context, name string) error

	// ListCampaigns lists the stored campaign names
	ListCampaigns(ctx context.Context) ([]string, error)

	// NewCampaign replaces the live campaign with a fresh one
	NewCampaign(name string) *game.Campaign

	// Campaign returns the live campaign aggregate
	Campaign() *game.Campaign

	// Spellbook returns the spell library backing LearnSpell and casts
	Spellbook() *spellbook.Library
}

// CreateCharacterInput contains data for creating a character. Zero fields
// fall back to the standard defaults.
type CreateCharacterInput struct {
	Name       string
	PlayerName string
	Race       string
	Class      string
	Level      int                    // Optional, defaults to 1
	HitDie     int                    // Optional, resolved from the class when unset
	MaxHP      int                    // Optional, defaults to one full hit die
	ArmorClass int                    // Optional, defaults to 10
	Speed      int                    // Optional, defaults to 30
	Abilities  map[shared.Ability]int // Optional, missing scores stay 10
}

// service implements the Service interface
type service struct {
	repository    campaigns.Repository
	spellbook     *spellbook.Library
	roller        dice.Roller
	uuidGenerator uuid.Generator

	// campaign is the live aggregate every operation acts on. Callers are
	// expected to be single-threaded, matching the interactive table-top
	// model; there is no locking here.
	campaign *game.Campaign
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    campaigns.Repository // Required
	Spellbook     *spellbook.Library   // Optional, defaults to an offline library
	Roller        dice.Roller          // Optional, will use default if nil
	UUIDGenerator uuid.Generator       // Optional, will use default if nil
}

// NewService creates a new session service with an empty campaign
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		spellbook:  cfg.Spellbook,
		campaign:   game.New(""),
	}

	if svc.spellbook == nil {
		svc.spellbook = spellbook.New(nil)
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

// CreateCharacter builds a character from the input and registers it on the
// campaign
func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, dnderr.InvalidArgument("character name is required")
	}

	char := character.New(s.uuidGenerator.New(), input.Name)
	char.PlayerName = input.PlayerName
	char.Race = input.Race
	char.Class = input.Class

	if input.Level > 0 {
		char.Level = input.Level
	}

	switch {
	case input.HitDie > 0:
		char.HitDie = input.HitDie
	case input.Class != "":
		// Best effort; an unknown class keeps the d8 default
		if hitDie, err := s.spellbook.ClassHitDie(ctx, input.Class); err == nil {
			char.HitDie = hitDie
		} else if !dnderr.IsFailedPrecondition(err) {
			log.Printf("[SESSION] hit die lookup for class '%s' failed: %v", input.Class, err)
		}
	}
	char.HitDiceRemaining = char.Level

	char.MaxHP = char.HitDie
	if input.MaxHP > 0 {
		char.MaxHP = input.MaxHP
	}
	char.CurrentHP = char.MaxHP

	if input.ArmorClass > 0 {
		char.ArmorClass = input.ArmorClass
	}
	if input.Speed > 0 {
		char.Speed = input.Speed
	}

	for ability, score := range input.Abilities {
		if ability.IsValid() {
			char.Abilities[ability] = score
		}
	}

	s.campaign.AddCharacter(char)
	log.Printf("[SESSION] created character '%s' (%s)", char.Name, char.ID)

	return char, nil
}

// GetCharacter retrieves a campaign character by ID
func (s *service) GetCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	return s.lookupCharacter(characterID)
}

// RemoveCharacter drops a character from the campaign and the party
func (s *service) RemoveCharacter(ctx context.Context, characterID string) error {
	if strings.TrimSpace(characterID) == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	if !s.campaign.RemoveCharacter(characterID) {
		return dnderr.NotFoundf("character '%s' not found", characterID)
	}

	log.Printf("[SESSION] removed character %s", characterID)
	return nil
}

// ListCharacters returns every campaign character, ordered by name with the
// id as tie-break
func (s *service) ListCharacters(ctx context.Context) []*character.Character {
	chars := make([]*character.Character, 0, len(s.campaign.Characters))
	for _, char := range s.campaign.Characters {
		chars = append(chars, char)
	}

	sort.Slice(chars, func(i, j int) bool {
		if chars[i].Name != chars[j].Name {
			return chars[i].Name < chars[j].Name
		}
		return chars[i].ID < chars[j].ID
	})

	return chars
}

// AddToParty marks a character as an active party member
func (s *service) AddToParty(ctx context.Context, characterID string) error {
	if strings.TrimSpace(characterID) == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	if err := s.campaign.AddToParty(characterID); err != nil {
		return err
	}

	log.Printf("[SESSION] %s joined the party", characterID)
	return nil
}

// RemoveFromParty drops a character from the party list
func (s *service) RemoveFromParty(ctx context.Context, characterID string) error {
	if strings.TrimSpace(characterID) == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	s.campaign.RemoveFromParty(characterID)
	return nil
}

// ApplyDamage damages a character outside of any encounter
func (s *service) ApplyDamage(ctx context.Context, characterID string, amount int, conSaveRoll *int) (*character.DamageResult, error) {
	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return nil, err
	}

	result := char.ApplyDamage(amount, conSaveRoll)
	log.Printf("[SESSION] %s takes %d damage (HP %d/%d)", char.Name, amount, result.CurrentHP, char.MaxHP)

	return result, nil
}

// Heal restores hit points, capped at max HP
func (s *service) Heal(ctx context.Context, characterID string, amount int) (int, error) {
	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return 0, err
	}

	hp := char.Heal(amount)
	log.Printf("[SESSION] %s heals %d (HP %d/%d)", char.Name, amount, hp, char.MaxHP)

	return hp, nil
}

// ShortRest spends hit dice to heal. With no rolls supplied, one hit die is
// rolled for the character.
func (s *service) ShortRest(ctx context.Context, characterID string, rolls []int) (int, error) {
	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return 0, err
	}

	if len(rolls) == 0 {
		if char.HitDiceRemaining <= 0 {
			return 0, dnderr.FailedPreconditionf("%s has no hit dice left", char.Name)
		}
		rolled, err := s.roller.Roll(1, char.HitDie, 0)
		if err != nil {
			return 0, dnderr.Wrap(err, "failed to roll hit die")
		}
		rolls = []int{rolled.Total}
	}

	healed := char.ShortRest(rolls, nil)
	log.Printf("[SESSION] %s short rests for %d HP (%d hit dice left)", char.Name, healed, char.HitDiceRemaining)

	return healed, nil
}

// LongRest restores the character to full HP and slots and clears temporary
// state
func (s *service) LongRest(ctx context.Context, characterID string) error {
	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return err
	}

	char.LongRest(true, true)
	log.Printf("[SESSION] %s completed a long rest", char.Name)

	return nil
}

// AddCondition applies a condition for a number of rounds
func (s *service) AddCondition(ctx context.Context, characterID string, cond shared.Condition, rounds int) error {
	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return err
	}

	if !char.AddCondition(cond, rounds) {
		return dnderr.InvalidArgumentf("unknown condition '%s'", cond)
	}

	log.Printf("[SESSION] %s is now %s", char.Name, cond)
	return nil
}

// RemoveCondition clears a condition from a character
func (s *service) RemoveCondition(ctx context.Context, characterID string, cond shared.Condition) error {
	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return err
	}

	char.RemoveCondition(cond)
	return nil
}

// UseItem consumes one use of a named inventory item
func (s *service) UseItem(ctx context.Context, characterID, itemName string) (*character.Item, error) {
	if strings.TrimSpace(itemName) == "" {
		return nil, dnderr.InvalidArgument("item name is required")
	}

	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return nil, err
	}

	item := char.Item(itemName)
	if item == nil {
		return nil, dnderr.NotFoundf("item '%s' not found", itemName)
	}
	if !item.Use() {
		return nil, dnderr.FailedPreconditionf("item '%s' is used up", item.Name)
	}

	log.Printf("[SESSION] %s used %s (%d left)", char.Name, item.Name, item.Quantity)
	return item, nil
}

// AddItem adds an item to a character's inventory. Quantity defaults to one.
func (s *service) AddItem(ctx context.Context, characterID string, item *character.Item) error {
	if item == nil {
		return dnderr.InvalidArgument("item cannot be nil")
	}
	if strings.TrimSpace(item.Name) == "" {
		return dnderr.InvalidArgument("item name is required")
	}

	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return err
	}

	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	char.AddItem(item)

	log.Printf("[SESSION] %s picked up %s x%d", char.Name, item.Name, item.Quantity)
	return nil
}

// LearnSpell adds a spell to the character's known list, resolving it
// through the spellbook. Learning an already-known spell is a no-op.
func (s *service) LearnSpell(ctx context.Context, characterID, spellName string) (*spell.Spell, error) {
	if strings.TrimSpace(spellName) == "" {
		return nil, dnderr.InvalidArgument("spell name is required")
	}

	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return nil, err
	}

	if known := char.Spell(spellName); known != nil {
		return known, nil
	}

	sp, err := s.spellbook.Resolve(ctx, spellName)
	if err != nil {
		return nil, err
	}

	char.AddSpell(sp)
	log.Printf("[SESSION] %s learned %s", char.Name, sp.Name)

	return sp, nil
}

// SetSpellSlots replaces the slot pool for one spell level
func (s *service) SetSpellSlots(ctx context.Context, characterID string, level, current, maxSlots int) error {
	if level < 1 {
		return dnderr.InvalidArgument("spell slot level must be at least 1")
	}
	if current < 0 || maxSlots < 0 {
		return dnderr.InvalidArgument("spell slot counts cannot be negative")
	}
	if current > maxSlots {
		return dnderr.InvalidArgument("current slots cannot exceed max")
	}

	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return err
	}

	char.SetSpellSlots(level, current, maxSlots)
	return nil
}

// AwardXP grants experience and reports whether the character leveled up
func (s *service) AwardXP(ctx context.Context, characterID string, amount int) (bool, error) {
	if amount < 0 {
		return false, dnderr.InvalidArgument("XP award cannot be negative")
	}

	char, err := s.lookupCharacter(characterID)
	if err != nil {
		return false, err
	}

	char.AddXP(amount)
	leveled := char.TryLevelUp()
	if leveled {
		log.Printf("[SESSION] %s reached level %d", char.Name, char.Level)
	}

	return leveled, nil
}

// SaveCampaign snapshots the live campaign to the repository
func (s *service) SaveCampaign(ctx context.Context) error {
	if err := s.repository.Save(ctx, s.campaign); err != nil {
		return dnderr.Wrapf(err, "failed to save campaign '%s'", s.campaign.Name)
	}

	log.Printf("[SESSION] saved campaign '%s'", s.campaign.Name)
	return nil
}

// LoadCampaign replaces the live campaign with a stored snapshot
func (s *service) LoadCampaign(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return dnderr.InvalidArgument("campaign name is required")
	}

	campaign, err := s.repository.Load(ctx, name)
	if err != nil {
		return dnderr.Wrapf(err, "failed to load campaign '%s'", name)
	}

	s.campaign = campaign
	log.Printf("[SESSION] loaded campaign '%s' (%d characters, %d encounters)",
		campaign.Name, len(campaign.Characters), len(campaign.Encounters))

	return nil
}

// ListCampaigns lists the stored campaign names
func (s *service) ListCampaigns(ctx context.Context) ([]string, error) {
	names, err := s.repository.List(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list campaigns")
	}
	return names, nil
}

// NewCampaign replaces the live campaign with a fresh one
func (s *service) NewCampaign(name string) *game.Campaign {
	s.campaign = game.New(name)
	log.Printf("[SESSION] started campaign '%s'", s.campaign.Name)
	return s.campaign
}

// Campaign returns the live campaign aggregate
func (s *service) Campaign() *game.Campaign {
	return s.campaign
}

// Spellbook returns the spell library backing LearnSpell and casts
func (s *service) Spellbook() *spellbook.Library {
	return s.spellbook
}

// lookupCharacter resolves a character id against the live campaign
func (s *service) lookupCharacter(characterID string) (*character.Character, error) {
	if strings.TrimSpace(characterID) == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	char := s.campaign.Character(characterID)
	if char == nil {
		return nil, dnderr.NotFoundf("character '%s' not found", characterID)
	}

	return char, nil
}
