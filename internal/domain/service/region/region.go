// Package region содержит таблицы провинций и городов для разбора номеров.
package region

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/value"
)

const (
	MatchCode     = "code"
	MatchName     = "name"
	MatchFullName = "fullName"
	MatchFuzzy    = "fuzzy"

	maxSearchResults = 10

	UnknownLocation = "未知地区"
)

// All возвращает копию таблицы провинций в фиксированном порядке.
func All() []entity.Province {
	return slices.Clone(provinces)
}

func ProvinceByCode(code string) (entity.Province, bool) {
	return lo.Find(provinces, func(p entity.Province) bool {
		return p.Code == code
	})
}

// CityName ищет город по иероглифу и букве. Регионы без буквенных кодов
// ищутся по иероглифу.
func CityName(provinceCode, letter string) (string, bool) {
	if provinceCode == "" {
		return "", false
	}
	if name, ok := cities[provinceCode+strings.ToUpper(letter)]; ok && letter != "" {
		return name, true
	}
	name, ok := cities[provinceCode]
	return name, ok
}

// Search оценивает каждую провинцию по keyword и возвращает до десяти
// лучших. При равном счёте сохраняется порядок таблицы.
func Search(keyword string) []entity.ProvinceMatch {
	kw := strings.ToUpper(strings.TrimSpace(keyword))
	if kw == "" {
		return []entity.ProvinceMatch{}
	}

	first, _ := utf8.DecodeRuneInString(kw)

	matches := lo.FilterMap(provinces, func(p entity.Province, _ int) (entity.ProvinceMatch, bool) {
		switch {
		case p.Code == kw:
			return entity.ProvinceMatch{Province: p, MatchType: MatchCode, Score: 10}, true
		case strings.Contains(p.Name, kw):
			return entity.ProvinceMatch{Province: p, MatchType: MatchName, Score: 8}, true
		case strings.Contains(p.FullName, kw):
			return entity.ProvinceMatch{Province: p, MatchType: MatchFullName, Score: 5}, true
		}

		nameFirst, _ := utf8.DecodeRuneInString(p.Name)
		codeFirst, _ := utf8.DecodeRuneInString(p.Code)
		if first == nameFirst || first == codeFirst {
			return entity.ProvinceMatch{Province: p, MatchType: MatchFuzzy, Score: 3}, true
		}

		return entity.ProvinceMatch{}, false
	})

	slices.SortStableFunc(matches, func(a, b entity.ProvinceMatch) int {
		return b.Score - a.Score
	})

	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}

	return matches
}

// Parse разбирает номер на провинцию и город. Для Valid достаточно
// провинции, длина номера не проверяется.
func Parse(raw string) entity.PlateInfo {
	plate := value.Plate(value.FormatPlate(raw))
	if plate == "" {
		return entity.PlateInfo{}
	}

	info := entity.PlateInfo{
		Plate:        plate.String(),
		ProvinceCode: plate.ProvinceCode(),
	}

	if utf8.RuneCountInString(plate.String()) < 2 {
		return info
	}

	if p, ok := ProvinceByCode(info.ProvinceCode); ok {
		info.Province = &p
		info.Valid = true
	}

	letter := []rune(plate.RegionCode())[1]
	if city, ok := CityName(info.ProvinceCode, string(letter)); ok {
		info.City = city
	}

	return info
}

// LocationName самое точное известное название места для info.
func LocationName(info entity.PlateInfo) string {
	switch {
	case info.City != "":
		return info.City
	case info.Province != nil:
		return info.Province.FullName
	default:
		return UnknownLocation
	}
}
