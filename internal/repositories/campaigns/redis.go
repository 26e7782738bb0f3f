package campaigns

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/game"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

// campaignSetKey is the set of every saved campaign name, kept for listing.
const campaignSetKey = "campaigns"

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed campaign repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{client: cfg.Client}
}

// key generates the Redis key for a campaign
func (r *redisRepo) key(name string) string {
	return fmt.Sprintf("campaign:%s", name)
}

func (r *redisRepo) Save(ctx context.Context, campaign *game.Campaign) error {
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

	// Store the snapshot and index its name in one round trip
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(campaign.Name), string(jsonData), 0)
	pipe.SAdd(ctx, campaignSetKey, campaign.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save campaign: %w", err)
	}

	return nil
}

func (r *redisRepo) Load(ctx context.Context, name string) (*game.Campaign, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("campaign name is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(name)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("campaign '%s' not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	var data CampaignData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}

	return fromCampaignData(&data), nil
}

func (r *redisRepo) Delete(ctx context.Context, name string) error {
	if name == "" {
		return dnderr.InvalidArgument("campaign name is required")
	}

	pipe := r.client.Pipeline()
	delCmd := pipe.Del(ctx, r.key(name))
	pipe.SRem(ctx, campaignSetKey, name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	if delCmd.Val() == 0 {
		return dnderr.NotFoundf("campaign '%s' not found", name)
	}

	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]string, error) {
	members, err := r.client.SMembers(ctx, campaignSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	// The set can hold names whose snapshot was deleted out of band;
	// sweep them out of the listing concurrently.
	present := make([]bool, len(members))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range members {
		g.Go(func() error {
			exists, err := r.client.Exists(ctx, r.key(name)).Result()
			if err != nil {
				return fmt.Errorf("failed to check campaign '%s': %w", name, err)
			}
			present[i] = exists > 0
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(members))
	for i, name := range members {
		if present[i] {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}
