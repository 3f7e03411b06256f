package plan

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlSource loads plan definitions from a YAML file at deploy time.
//
// File format:
//
//	plans:
//	  - key: BASICO
//	    name: Basico
//	    tier_rank: 1
//	    limits:
//	      max_pets: 500
//	      max_users: 3
//	      max_monthly_messages: 1000
//	      max_storage_gib: 5
//	    features: [messaging]
//
// Omitted limit fields mean unlimited, so a catalog file never has to
// spell out a fake finite cap.
type yamlSource struct {
	path string
}

// NewYAMLSource returns a Source reading plans from the given file path.
func NewYAMLSource(path string) Source {
	return &yamlSource{path: path}
}

type yamlCatalogFile struct {
	Plans []yamlPlan `yaml:"plans"`
}

type yamlPlan struct {
	Key      string     `yaml:"key"`
	Name     string     `yaml:"name"`
	TierRank int        `yaml:"tier_rank"`
	Limits   yamlLimits `yaml:"limits"`
	Features []string   `yaml:"features"`
}

type yamlLimits struct {
	MaxPets            *int64 `yaml:"max_pets"`
	MaxUsers           *int64 `yaml:"max_users"`
	MaxMonthlyMessages *int64 `yaml:"max_monthly_messages"`
	MaxStorageGiB      *int64 `yaml:"max_storage_gib"`
}

// Load reads and parses the YAML catalog file.
func (s *yamlSource) Load(ctx context.Context) ([]Plan, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}

	var file yamlCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans,
			fmt.Errorf("parse %s: %w", s.path, err))
	}

	plans := make([]Plan, 0, len(file.Plans))
	for _, yp := range file.Plans {
		features := make([]Feature, 0, len(yp.Features))
		for _, f := range yp.Features {
			features = append(features, Feature(f))
		}

		plans = append(plans, Plan{
			Key:      yp.Key,
			Name:     yp.Name,
			TierRank: yp.TierRank,
			Limits: Limits{
				MaxPets:            limitOrUnlimited(yp.Limits.MaxPets, 1),
				MaxUsers:           limitOrUnlimited(yp.Limits.MaxUsers, 1),
				MaxMonthlyMessages: limitOrUnlimited(yp.Limits.MaxMonthlyMessages, 1),
				MaxStorageBytes:    limitOrUnlimited(yp.Limits.MaxStorageGiB, GiB),
			},
			Features: features,
		})
	}

	return plans, nil
}

func limitOrUnlimited(v *int64, unit int64) int64 {
	if v == nil {
		return Unlimited
	}
	return *v * unit
}
