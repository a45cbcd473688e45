package plate

import (
	"fmt"
	"unicode/utf8"
)

const (
	defaultBaseValue = 3000

	premiumBaseBonus = 2000
	tier1BaseBonus   = 1500
)

// Profile региональная конфигурация движка номеров.
type Profile struct {
	BaseValue int64

	// PremiumRegion единственный самый престижный код региона.
	PremiumRegion string
	PremiumLabel  string

	// Tier1Regions получают меньшую надбавку городов первого уровня.
	Tier1Regions []string
	Tier1Label   string
}

func DefaultProfile() Profile {
	return Profile{
		BaseValue:     defaultBaseValue,
		PremiumRegion: "京A",
		PremiumLabel:  "京A车牌（首都精品，价值极高）",
		Tier1Regions:  []string{"沪A", "粤A", "粤B", "浙A"},
		Tier1Label:    "一线城市（价值更高，稀缺资源）",
	}
}

// WithRegions возвращает копию p с заданными кодами регионов. Подпись
// премиального региона пересобирается при его смене.
func (p Profile) WithRegions(premium string, tier1 []string) Profile {
	if premium != "" && premium != p.PremiumRegion {
		p.PremiumRegion = premium
		p.PremiumLabel = premium + "车牌（顶级精品，价值极高）"
	}
	if len(tier1) > 0 {
		p.Tier1Regions = append([]string(nil), tier1...)
	}
	return p
}

func (p Profile) Validate() error {
	if p.BaseValue <= 0 {
		return fmt.Errorf("base value must be positive, got %d", p.BaseValue)
	}
	if utf8.RuneCountInString(p.PremiumRegion) != 2 {
		return fmt.Errorf("premium region %q must be a province glyph and a letter", p.PremiumRegion)
	}
	for _, region := range p.Tier1Regions {
		if utf8.RuneCountInString(region) != 2 {
			return fmt.Errorf("tier1 region %q must be a province glyph and a letter", region)
		}
		if region == p.PremiumRegion {
			return fmt.Errorf("region %q is both premium and tier1", region)
		}
	}
	return nil
}

func (p Profile) isTier1(region string) bool {
	for _, r := range p.Tier1Regions {
		if r == region {
			return true
		}
	}
	return false
}
