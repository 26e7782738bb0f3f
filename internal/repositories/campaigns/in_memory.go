package campaigns

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/game"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// inMemoryRepo keeps marshaled snapshots in a map. Round-tripping through
// the codec means callers never share state with the store, the same
// isolation the real stores give.
type inMemoryRepo struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewInMemoryRepository creates an in-memory campaign repository.
func NewInMemoryRepository() Repository {
	return &inMemoryRepo{
		snapshots: make(map[string][]byte),
	}
}

func (r *inMemoryRepo) Save(ctx context.Context, campaign *game.Campaign) error {
	if campaign == nil {
		return dnderr.InvalidArgument("campaign cannot be nil")
	}
	if campaign.Name == "" {
		return dnderr.InvalidArgument("campaign name is required")
	}

	jsonData, err := json.Marshal(toCampaignData(campaign))
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[campaign.Name] = jsonData

	return nil
}

func (r *inMemoryRepo) Load(ctx context.Context, name string) (*game.Campaign, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("campaign name is required")
	}

	r.mu.RLock()
	jsonData, ok := r.snapshots[name]
	r.mu.RUnlock()

	if !ok {
		return nil, dnderr.NotFoundf("campaign '%s' not found", name)
	}

	var data CampaignData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}

	return fromCampaignData(&data), nil
}

func (r *inMemoryRepo) Delete(ctx context.Context, name string) error {
	if name == "" {
		return dnderr.InvalidArgument("campaign name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.snapshots[name]; !ok {
		return dnderr.NotFoundf("campaign '%s' not found", name)
	}
	delete(r.snapshots, name)

	return nil
}

func (r *inMemoryRepo) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.snapshots))
	for name := range r.snapshots {
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
