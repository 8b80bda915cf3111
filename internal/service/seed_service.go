package service

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ramenmap/internal/db"
	"ramenmap/internal/entities"
)

// SeedFile is the YAML document read by cmd/seed.
type SeedFile struct {
	Shops []entities.ShopRequest `yaml:"shops"`
}

// SeedStore inserts the initial shops when the table is empty.
type SeedStore interface {
	SeedShops(ctx context.Context, shops []db.Shop) (int, error)
}

type SeedService struct {
	store SeedStore
}

func NewSeedService(store SeedStore) *SeedService {
	return &SeedService{store: store}
}

// LoadSeedFile parses a seed YAML file.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// Seed validates every entry and writes them only if no shop exists yet.
// Running it twice is harmless; the second run inserts nothing.
func (s *SeedService) Seed(ctx context.Context, f *SeedFile) (int, error) {
	shops := make([]db.Shop, 0, len(f.Shops))
	for i, req := range f.Shops {
		shop, err := shopFromRequest(req)
		if err != nil {
			return 0, fmt.Errorf("seed entry %d (%s): %w", i, req.Name, err)
		}
		shops = append(shops, *shop)
	}
	return s.store.SeedShops(ctx, shops)
}
