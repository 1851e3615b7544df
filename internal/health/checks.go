package health

import (
	"context"
	"fmt"
	"time"

	"github.com/discool/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// Endpoints carries the probes that need live clients rather than a DSN.
type Endpoints struct {
	// Backend should make one cheap read against the storefront API.
	Backend func(ctx context.Context) error
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		},
		{
			Name:      "backend",
			Timeout:   cfg.Backend.Timeout,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if endpoints == nil || endpoints.Backend == nil {
					return fmt.Errorf("backend probe is not configured")
				}

				if err := endpoints.Backend(ctx); err != nil {
					return fmt.Errorf("storefront backend unreachable: %w", err)
				}

				return nil
			},
		},
	}

	// Only coupon lookups depend on Postgres; its failure reports degraded, not unavailable.
	if cfg.Database.Enabled {
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: true,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
