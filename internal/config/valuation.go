package config

import (
	"fmt"
	"time"

	"plate_appraiser/internal/domain/service/phone"
	"plate_appraiser/internal/domain/service/plate"
)

type Valuation struct {
	PhoneProfile  string        `env:"VALUATION_PHONE_PROFILE" envDefault:"extended"`
	PremiumRegion string        `env:"VALUATION_PREMIUM_REGION" envDefault:"京A"`
	Tier1Regions  []string      `env:"VALUATION_TIER1_REGIONS" envDefault:"沪A,粤A,粤B,浙A" envSeparator:","`
	CacheTTL      time.Duration `env:"VALUATION_CACHE_TTL" envDefault:"10m"`
	CacheCleanup  time.Duration `env:"VALUATION_CACHE_CLEANUP" envDefault:"1h"`
}

func (v Valuation) PlateProfile() plate.Profile {
	return plate.DefaultProfile().WithRegions(v.PremiumRegion, v.Tier1Regions)
}

func (v Valuation) Validate() error {
	if _, err := phone.ProfileByName(v.PhoneProfile); err != nil {
		return fmt.Errorf("phone profile: %w", err)
	}

	if err := v.PlateProfile().Validate(); err != nil {
		return fmt.Errorf("plate profile: %w", err)
	}

	if v.CacheTTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", v.CacheTTL)
	}

	return nil
}
