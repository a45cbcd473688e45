package plate

import (
	"strings"

	"plate_appraiser/internal/domain/entity"
)

// Виды правил. Поздние правила смотрят на ранние срабатывания по виду и
// фрагменту, а не по тексту фактора.
const (
	KindDigitDouble      entity.MatchKind = "digit-double"
	KindDigitRun         entity.MatchKind = "digit-run"
	KindDigitSequence    entity.MatchKind = "digit-sequence"
	KindLetterSequence   entity.MatchKind = "letter-sequence"
	KindReverseSequence  entity.MatchKind = "reverse-sequence"
	KindLeopard          entity.MatchKind = "leopard"
	KindLuckySubstring   entity.MatchKind = "lucky-substring"
	KindVIP              entity.MatchKind = "vip"
	KindLetterRun        entity.MatchKind = "letter-run"
	KindLetterDouble     entity.MatchKind = "letter-double"
	KindWord             entity.MatchKind = "word"
	KindLetterPalindrome entity.MatchKind = "letter-palindrome"
	KindPalindrome       entity.MatchKind = "palindrome"
	KindRepeatBlock      entity.MatchKind = "repeat-block"
	KindAllDigitBody     entity.MatchKind = "all-digit-body"
	KindUniqueDigits     entity.MatchKind = "unique-digits"
	KindPremiumRegion    entity.MatchKind = "premium-region"
	KindPremiumBody      entity.MatchKind = "premium-body"
	KindTier1Region      entity.MatchKind = "tier1-region"
	KindTier1Body        entity.MatchKind = "tier1-body"
	KindWealthCombo      entity.MatchKind = "wealth-combo"
	KindCareerCombo      entity.MatchKind = "career-combo"
	KindLuckyPair        entity.MatchKind = "lucky-pair"
	KindFixedPair        entity.MatchKind = "fixed-pair"
	KindDigitSum         entity.MatchKind = "digit-sum"
	KindParityBalance    entity.MatchKind = "parity-balance"
	KindThreePowers      entity.MatchKind = "three-powers"
	KindLuckyPrefix      entity.MatchKind = "lucky-prefix"
	KindRepeatedDigit    entity.MatchKind = "repeated-digit"
	KindAuspiciousDigit  entity.MatchKind = "auspicious-digit"
	KindPleasantLetters  entity.MatchKind = "pleasant-letters"
	KindAmplified        entity.MatchKind = "amplified"
	KindFiller           entity.MatchKind = "filler"
)

// accumulator создаётся на одну оценку и никуда не передаётся.
type accumulator struct {
	baseValue      int64
	multiplier     float64
	positivePoints int

	factors []string
	matches []entity.PatternMatch
}

func newAccumulator(baseValue int64) *accumulator {
	return &accumulator{
		baseValue:  baseValue,
		multiplier: 1.0,
	}
}

// hit записывает срабатывание правила, применяет его надбавки и добавляет
// factor, если он не пустой и ещё не встречался.
func (a *accumulator) hit(kind entity.MatchKind, span string, dm float64, dp int, factor string) {
	a.multiplier += dm
	a.positivePoints += dp
	a.matches = append(a.matches, entity.PatternMatch{
		Kind:        kind,
		Span:        span,
		Length:      len([]rune(span)),
		Description: factor,
	})
	a.addFactor(factor)
}

func (a *accumulator) addFactor(factor string) {
	if factor == "" {
		return
	}
	for _, f := range a.factors {
		if f == factor {
			return
		}
	}
	a.factors = append(a.factors, factor)
}

func (a *accumulator) fired(kinds ...entity.MatchKind) bool {
	for _, m := range a.matches {
		for _, k := range kinds {
			if m.Kind == k {
				return true
			}
		}
	}
	return false
}

func (a *accumulator) firedSpan(kind entity.MatchKind, span string) bool {
	for _, m := range a.matches {
		if m.Kind == kind && m.Span == span {
			return true
		}
	}
	return false
}

// spanCovered сообщает, покрывает ли sub уже найденный фрагмент одного из kinds.
func (a *accumulator) spanCovered(sub string, kinds ...entity.MatchKind) bool {
	for _, m := range a.matches {
		for _, k := range kinds {
			if m.Kind == k && strings.Contains(m.Span, sub) {
				return true
			}
		}
	}
	return false
}

// spansMention сообщает, есть ли хоть в одном фрагменте одна из runes.
func (a *accumulator) spansMention(runes string) bool {
	for _, m := range a.matches {
		if strings.ContainsAny(m.Span, runes) {
			return true
		}
	}
	return false
}
