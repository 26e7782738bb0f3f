// Package spellbook caches spell definitions for offline play and resolves
// unknown names through the D&D 5e reference API when a client is configured.
package spellbook

import (
	"context"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-session-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/spell"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// Library is a spell cache with an optional remote lookup path. Entries are
// cached under both the lowercase spell name and its normalized key so that
// "Melf's Acid Arrow" and "melfs-acid-arrow" find the same spell.
type Library struct {
	mu          sync.RWMutex
	client      dnd5e.Client
	entries     map[string]*spell.Spell
	spellIndex  map[string]string // lookup key -> API index
	classIndex  map[string]string
	indexSynced bool
}

// Config holds the library dependencies.
type Config struct {
	// Client may be nil, which leaves the library offline. Lookups then
	// only ever see spells added locally or loaded from a file.
	Client dnd5e.Client
}

// New creates an empty spell library.
func New(cfg *Config) *Library {
	var client dnd5e.Client
	if cfg != nil {
		client = cfg.Client
	}

	return &Library{
		client:     client,
		entries:    make(map[string]*spell.Spell),
		spellIndex: make(map[string]string),
		classIndex: make(map[string]string),
	}
}

// normalizeKey converts a free-form spell name to the library's key form:
// trimmed, lowercased, spaces to hyphens, apostrophes and commas stripped.
func normalizeKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "-")
	key = strings.ReplaceAll(key, "'", "")
	key = strings.ReplaceAll(key, ",", "")

	return key
}

// Add caches a spell under both key forms of its name.
func (l *Library) Add(sp *spell.Spell) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.add(sp)
}

// add caches sp under both key forms. Callers must hold l.mu.
func (l *Library) add(sp *spell.Spell) {
	l.entries[strings.ToLower(strings.TrimSpace(sp.Name))] = sp
	l.entries[normalizeKey(sp.Name)] = sp
}

// Lookup returns the cached spell for name, or nil. It never goes remote.
func (l *Library) Lookup(name string) *spell.Spell {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if sp, ok := l.entries[strings.ToLower(strings.TrimSpace(name))]; ok {
		return sp
	}

	return l.entries[normalizeKey(name)]
}

// Resolve returns the spell for name, fetching it from the reference API on
// a cache miss. Every remote failure comes back as a not-found error so that
// gameplay degrades to whatever is already cached.
func (l *Library) Resolve(ctx context.Context, name string) (*spell.Spell, error) {
	if sp := l.Lookup(name); sp != nil {
		return sp, nil
	}

	if l.client == nil {
		return nil, dnderr.NotFoundf("spell '%s' not found", name)
	}

	if err := l.ensureIndexes(ctx); err != nil {
		log.Printf("[SPELLBOOK] index sync failed: %v", err)
		return nil, dnderr.NotFoundf("spell '%s' not found", name)
	}

	l.mu.RLock()
	index, ok := l.spellIndex[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		index, ok = l.spellIndex[normalizeKey(name)]
	}
	l.mu.RUnlock()

	if !ok {
		return nil, dnderr.NotFoundf("spell '%s' not found", name)
	}

	sp, err := l.client.GetSpell(ctx, index)
	if err != nil {
		log.Printf("[SPELLBOOK] fetch of spell '%s' failed: %v", index, err)
		return nil, dnderr.NotFoundf("spell '%s' not found", name)
	}

	// Cache under the API's canonical name, which may differ from the
	// name the caller asked with.
	l.Add(sp)

	return sp, nil
}

// ensureIndexes syncs the name indexes the first time a remote lookup
// needs them.
func (l *Library) ensureIndexes(ctx context.Context) error {
	l.mu.RLock()
	synced := l.indexSynced
	l.mu.RUnlock()

	if synced {
		return nil
	}

	return l.SyncIndexes(ctx)
}

// SyncIndexes fetches the spell and class listings from the reference API
// and rebuilds the name-to-index maps.
func (l *Library) SyncIndexes(ctx context.Context) error {
	if l.client == nil {
		return dnderr.FailedPrecondition("no reference API client configured")
	}

	var spellRefs, classRefs []*dnd5e.Ref

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		refs, err := l.client.ListSpells(ctx)
		if err != nil {
			return dnderr.Wrap(err, "failed to list spells")
		}
		spellRefs = refs
		return nil
	})

	g.Go(func() error {
		refs, err := l.client.ListClasses(ctx)
		if err != nil {
			return dnderr.Wrap(err, "failed to list classes")
		}
		classRefs = refs
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, ref := range spellRefs {
		if ref.Name == "" || ref.Index == "" {
			continue
		}
		l.spellIndex[strings.ToLower(ref.Name)] = ref.Index
		l.spellIndex[normalizeKey(ref.Name)] = ref.Index
	}

	for _, ref := range classRefs {
		if ref.Name == "" || ref.Index == "" {
			continue
		}
		l.classIndex[strings.ToLower(ref.Name)] = ref.Index
		l.classIndex[normalizeKey(ref.Name)] = ref.Index
	}

	l.indexSynced = true
	log.Printf("[SPELLBOOK] synced %d spells and %d classes from the reference API", len(spellRefs), len(classRefs))

	return nil
}

// ClassHitDie looks up the hit die size for a class name, e.g. 6 for wizard.
func (l *Library) ClassHitDie(ctx context.Context, className string) (int, error) {
	if l.client == nil {
		return 0, dnderr.FailedPrecondition("no reference API client configured")
	}

	if err := l.ensureIndexes(ctx); err != nil {
		return 0, err
	}

	l.mu.RLock()
	index, ok := l.classIndex[strings.ToLower(strings.TrimSpace(className))]
	if !ok {
		index, ok = l.classIndex[normalizeKey(className)]
	}
	l.mu.RUnlock()

	if !ok {
		return 0, dnderr.NotFoundf("class '%s' not found", className)
	}

	class, err := l.client.GetClass(ctx, index)
	if err != nil {
		return 0, err
	}

	return class.HitDie, nil
}
