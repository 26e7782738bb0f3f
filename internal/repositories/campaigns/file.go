package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/dnd-session-tracker/internal/domain/game"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
)

const (
	campaignFilePrefix = "campaign_"
	campaignFileSuffix = ".json"
)

// fileRepo stores one pretty-printed JSON file per campaign under a
// data directory.
type fileRepo struct {
	dir string
}

// FileRepoConfig holds configuration for the file repository.
type FileRepoConfig struct {
	// Dir is the data directory. Created on first save. Defaults to the
	// working directory.
	Dir string
}

// NewFileRepository creates a file-backed campaign repository.
func NewFileRepository(cfg *FileRepoConfig) Repository {
	if cfg == nil {
		panic("FileRepoConfig cannot be nil")
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	return &fileRepo{dir: dir}
}

// safeName keeps campaign names usable as file names. Anything outside
// letters, digits, hyphen and underscore becomes an underscore.
func safeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

func (r *fileRepo) path(name string) string {
	return filepath.Join(r.dir, campaignFilePrefix+safeName(name)+campaignFileSuffix)
}

func (r *fileRepo) Save(ctx context.Context, campaign *game.Campaign) error {
	if campaign == nil {
		return dnderr.InvalidArgument("campaign cannot be nil")
	}
	if campaign.Name == "" {
		return dnderr.InvalidArgument("campaign name is required")
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	jsonData, err := json.MarshalIndent(toCampaignData(campaign), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}

	if err := os.WriteFile(r.path(campaign.Name), jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write campaign file: %w", err)
	}

	return nil
}

func (r *fileRepo) Load(ctx context.Context, name string) (*game.Campaign, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("campaign name is required")
	}

	jsonData, err := os.ReadFile(r.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, dnderr.NotFoundf("campaign '%s' not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign file: %w", err)
	}

	var data CampaignData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}

	return fromCampaignData(&data), nil
}

func (r *fileRepo) Delete(ctx context.Context, name string) error {
	if name == "" {
		return dnderr.InvalidArgument("campaign name is required")
	}

	err := os.Remove(r.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return dnderr.NotFoundf("campaign '%s' not found", name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete campaign file: %w", err)
	}

	return nil
}

func (r *fileRepo) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		if !strings.HasPrefix(fileName, campaignFilePrefix) || !strings.HasSuffix(fileName, campaignFileSuffix) {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(fileName, campaignFilePrefix), campaignFileSuffix)
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
