package spellbook

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/shared"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// objectEntry is one value of an object-shaped library file, keyed by spell
// name. Fields are raw where files disagree on types.
type objectEntry struct {
	Level          json.RawMessage `json:"level"`
	School         string          `json:"school"`
	CastingTime    string          `json:"casting_time"`
	CastingTimeAlt string          `json:"casting time"`
	Range          *string         `json:"range"`
	Duration       *string         `json:"duration"`
	Components     json.RawMessage `json:"components"`
	Description    string          `json:"description"`
	Desc           string          `json:"desc"`
}

// listEntry is one element of an array-shaped library file.
type listEntry struct {
	Name          string          `json:"name"`
	Spell         string          `json:"spell"`
	Level         json.RawMessage `json:"level"`
	School        string          `json:"school"`
	CastTime      string          `json:"cast_time"`
	CastingTime   string          `json:"casting_time"`
	Range         *string         `json:"range"`
	Duration      *string         `json:"duration"`
	Components    json.RawMessage `json:"components"`
	Concentration bool            `json:"concentration"`
	Description   string          `json:"description"`
	Desc          string          `json:"desc"`
	DamageExpr    string          `json:"damage_expr"`
	DamageType    string          `json:"damage_type"`
	Save          string          `json:"save"`
	SaveHalf      bool            `json:"save_half"`
}

// LoadFile reads a spell library file and caches every spell it defines
// under both key forms. It understands two document shapes: an object keyed
// by spell name, and an array of entries carrying their own name. The count
// of spells loaded is returned; a missing or malformed file is an error the
// caller can log and play on without.
func (l *Library) LoadFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, dnderr.Wrapf(err, "failed to read spell library '%s'", path)
	}

	spells, err := parseLibrary(raw)
	if err != nil {
		return 0, dnderr.Wrapf(err, "failed to parse spell library '%s'", path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, sp := range spells {
		l.add(sp)
	}

	return len(spells), nil
}

func parseLibrary(raw []byte) ([]*spell.Spell, error) {
	doc := json.RawMessage(raw)

	switch firstByte(doc) {
	case '{':
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(doc, &entries); err != nil {
			return nil, err
		}
		return parseObjectShape(entries), nil
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal(doc, &entries); err != nil {
			return nil, err
		}
		return parseListShape(entries), nil
	default:
		return nil, dnderr.InvalidArgument("spell library must be a JSON object or array")
	}
}

func firstByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return b
		}
	}
	return 0
}

// parseObjectShape handles files keyed by spell name. A value that is not an
// object still yields a spell, with every field at its default.
func parseObjectShape(entries map[string]json.RawMessage) []*spell.Spell {
	spells := make([]*spell.Spell, 0, len(entries))

	for name, raw := range entries {
		var e objectEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			e = objectEntry{}
		}

		sp := spell.New(name, coerceLevel(e.Level))
		sp.School = e.School

		if castTime := firstNonEmpty(e.CastingTime, e.CastingTimeAlt); castTime != "" {
			sp.CastTime = castTime
		}
		if e.Range != nil {
			sp.Range = *e.Range
		}
		if e.Duration != nil {
			sp.Duration = *e.Duration
		}

		// No components field means no components, not the usual V+S.
		sp.Components = parseComponentsValue(e.Components)
		sp.Concentration = strings.Contains(strings.ToLower(sp.Duration), "concentration")
		sp.Description = firstNonEmpty(e.Description, e.Desc)
		sp.SaveHalf = strings.Contains(strings.ToLower(sp.Description), "half")

		spells = append(spells, sp)
	}

	return spells
}

// parseListShape handles array files. Entries without a usable name, or that
// are not objects at all, are skipped.
func parseListShape(entries []json.RawMessage) []*spell.Spell {
	spells := make([]*spell.Spell, 0, len(entries))

	for _, raw := range entries {
		var e listEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}

		name := firstNonEmpty(e.Name, e.Spell)
		if name == "" {
			continue
		}

		sp := spell.New(name, coerceLevel(e.Level))
		sp.School = e.School

		if castTime := firstNonEmpty(e.CastTime, e.CastingTime); castTime != "" {
			sp.CastTime = castTime
		}
		if e.Range != nil {
			sp.Range = *e.Range
		}
		if e.Duration != nil {
			sp.Duration = *e.Duration
		}
		if e.Components != nil {
			sp.Components = parseComponentsValue(e.Components)
		}

		sp.Concentration = e.Concentration
		sp.Description = firstNonEmpty(e.Description, e.Desc)
		sp.DamageExpr = e.DamageExpr
		sp.DamageType = e.DamageType
		sp.SaveHalf = e.SaveHalf

		if ability, ok := shared.ParseAbility(e.Save); ok {
			sp.Save = ability
		}

		spells = append(spells, sp)
	}

	return spells
}

// coerceLevel reads a spell level that files variously store as a number or
// a numeric string. Anything else reads as 0.
func coerceLevel(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}

	return 0
}

// parseComponentsValue reads a components field that may be a string like
// "V, S, M", a list of letters, or an object with verbal/somatic/material
// flags. Anything unreadable means no components.
func parseComponentsValue(raw json.RawMessage) spell.Components {
	var comps spell.Components
	if len(raw) == 0 {
		return comps
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		upper := strings.ToUpper(s)
		comps.Verbal = strings.Contains(upper, "V")
		comps.Somatic = strings.Contains(upper, "S")
		comps.Material = strings.Contains(upper, "M")
		return comps
	}

	var letters []string
	if err := json.Unmarshal(raw, &letters); err == nil {
		for _, letter := range letters {
			switch strings.ToUpper(strings.TrimSpace(letter)) {
			case "V":
				comps.Verbal = true
			case "S":
				comps.Somatic = true
			case "M":
				comps.Material = true
			}
		}
		return comps
	}

	var flags map[string]bool
	if err := json.Unmarshal(raw, &flags); err == nil {
		for key, set := range flags {
			if !set {
				continue
			}
			switch strings.ToLower(key) {
			case "v", "verbal":
				comps.Verbal = true
			case "s", "somatic":
				comps.Somatic = true
			case "m", "material":
				comps.Material = true
			}
		}
	}

	return comps
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
