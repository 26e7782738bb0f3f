package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"context"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
)

// Ref is one entry in a reference list, enough to map a display name to the
// API index used for detail lookups
type Ref struct {
	Index string `json:"index"`
	Name  string `json:"name"`
}

// Class carries the class fields the engine uses
type Class struct {
	Index  string `json:"index"`
	Name   string `json:"name"`
	HitDie int    `json:"hit_die"`
}

type Client interface {
	ListSpells(ctx context.Context) ([]*Ref, error)
	GetSpell(ctx context.Context, index string) (*spell.Spell, error)
	ListClasses(ctx context.Context) ([]*Ref, error)
	GetClass(ctx context.Context, index string) (*Class, error)
}
