package dnd5e

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
)

// spellDetail is the wire shape of a spell detail response. Every field is
// optional; the API schema has drifted before and lookups must not break
// over absent data.
type spellDetail struct {
	Name          string          `json:"name"`
	Level         int             `json:"level"`
	School        *Ref            `json:"school"`
	CastingTime   string          `json:"casting_time"`
	Range         string          `json:"range"`
	Duration      string          `json:"duration"`
	Components    []string        `json:"components"`
	Material      string          `json:"material"`
	Concentration bool            `json:"concentration"`
	Desc          json.RawMessage `json:"desc"`
	Damage        *spellDamage    `json:"damage"`
	DC            *spellDC        `json:"dc"`
}

type spellDamage struct {
	DamageType             *Ref              `json:"damage_type"`
	DamageAtSlotLevel      map[string]string `json:"damage_at_slot_level"`
	DamageAtCharacterLevel map[string]string `json:"damage_at_character_level"`
}

type spellDC struct {
	DCType *Ref `json:"dc_type"`
}

// GetSpell retrieves a spell by its API index
func (c *client) GetSpell(ctx context.Context, index string) (*spell.Spell, error) {
	var detail spellDetail
	if err := c.getJSON(ctx, "/spells/"+index, &detail); err != nil {
		return nil, err
	}
	return convertSpell(&detail), nil
}

// convertSpell converts a wire spell detail to the domain model
func convertSpell(detail *spellDetail) *spell.Spell {
	name := detail.Name
	if name == "" {
		name = "Unknown Spell"
	}

	sp := spell.New(name, detail.Level)
	if detail.School != nil {
		sp.School = detail.School.Name
	}
	if detail.CastingTime != "" {
		sp.CastTime = detail.CastingTime
	}
	if detail.Range != "" {
		sp.Range = detail.Range
	}
	if detail.Duration != "" {
		sp.Duration = detail.Duration
	}
	sp.Concentration = detail.Concentration
	sp.Components = parseComponents(detail.Components)
	sp.Description = buildDescription(detail.Desc, detail.Material)

	if detail.Damage != nil {
		if detail.Damage.DamageType != nil {
			sp.DamageType = detail.Damage.DamageType.Name
		}
		byLevel := detail.Damage.DamageAtSlotLevel
		if len(byLevel) == 0 {
			byLevel = detail.Damage.DamageAtCharacterLevel
		}
		sp.DamageExpr = pickDamageExpr(byLevel, detail.Level)
	}

	if detail.DC != nil && detail.DC.DCType != nil {
		if save, ok := shared.ParseAbility(detail.DC.DCType.Name); ok {
			sp.Save = save
		}
	}

	sp.SaveHalf = strings.Contains(strings.ToLower(sp.Description), "half")

	return sp
}

// parseComponents maps the API's component letters. Absent lists produce no
// components here, unlike library files where V+S is assumed.
func parseComponents(letters []string) spell.Components {
	var components spell.Components
	for _, letter := range letters {
		switch strings.ToUpper(strings.TrimSpace(letter)) {
		case "V":
			components.Verbal = true
		case "S":
			components.Somatic = true
		case "M":
			components.Material = true
		}
	}
	return components
}

// buildDescription joins a string-or-list desc field and appends any
// material text
func buildDescription(raw json.RawMessage, material string) string {
	desc := ""
	if len(raw) > 0 {
		var single string
		var lines []string
		if err := json.Unmarshal(raw, &single); err == nil {
			desc = single
		} else if err := json.Unmarshal(raw, &lines); err == nil {
			desc = strings.Join(lines, "\n\n")
		}
	}

	if material != "" {
		desc += "\n\nMaterial: " + material
	}
	return strings.TrimSpace(desc)
}

// pickDamageExpr selects the damage expression for a spell's own level,
// falling back to the lowest numeric key so the pick never depends on map
// order
func pickDamageExpr(byLevel map[string]string, level int) string {
	if len(byLevel) == 0 {
		return ""
	}
	if expr, ok := byLevel[strconv.Itoa(level)]; ok {
		return expr
	}

	found := false
	lowest := 0
	expr := ""
	for key, value := range byLevel {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if !found || n < lowest {
			found = true
			lowest = n
			expr = value
		}
	}
	return expr
}
