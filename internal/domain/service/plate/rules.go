package plate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"plate_appraiser/internal/domain/service/pattern"
	"plate_appraiser/internal/domain/value"
)

type bonus struct {
	multiplier float64
	points     int
	desc       string
}

type keyedBonus struct {
	key string
	bonus
}

// runBonus надбавки за серии из 3, 4 и 5+ одинаковых символов.
type runBonus struct {
	three, four, longer bonus
}

var digitRunBonuses = map[rune]runBonus{
	'8': {
		three:  bonus{2.0, 60, "三连8，吉祥数字"},
		four:   bonus{3.5, 120, "四连8，价值很高"},
		longer: bonus{2.0, 80, "超级连号，价值极高"},
	},
	'6': {
		three:  bonus{1.5, 45, "三连6，顺利数字"},
		four:   bonus{2.5, 90, "四连6，价值很高"},
		longer: bonus{1.5, 60, "超级连号，价值很高"},
	},
	'9': {
		three:  bonus{1.2, 40, "三连9，长久数字"},
		four:   bonus{2.0, 75, "四连9，价值很高"},
		longer: bonus{1.3, 50, "超级连号，价值很高"},
	},
}

var plainRunBonus = runBonus{
	three:  bonus{0.8, 25, "三连号，价值较高"},
	four:   bonus{1.5, 50, "四连号，价值较高"},
	longer: bonus{1.0, 40, "超级连号，价值较高"},
}

var digitDoubleBonuses = map[rune]bonus{
	'8': {0.4, 15, "双8，吉祥数字"},
	'6': {0.3, 12, "双6，顺利数字"},
	'9': {0.25, 10, "双9，长久数字"},
}

var plainDoubleBonus = bonus{0.15, 8, "双号，易记"}

var reverseSequences = []string{"210", "321", "432", "543", "654", "765", "876", "987", "098"}

var luckySubstrings = []keyedBonus{
	{"520", bonus{1.0, 50, "520（我爱你，寓意美好）"}},
	{"1314", bonus{1.2, 60, "1314（一生一世，寓意美好）"}},
	{"888", bonus{2.0, 100, "888（发发发，价值很高）"}},
}

var specialWords = []keyedBonus{
	{"LOVE", bonus{1.2, 50, "LOVE（爱情寓意）"}},
	{"WIN", bonus{1.0, 40, "WIN（胜利寓意）"}},
	{"TOP", bonus{0.9, 35, "TOP（顶级寓意）"}},
	{"MAX", bonus{0.9, 35, "MAX（最大寓意）"}},
	{"ACE", bonus{0.8, 30, "ACE（王牌寓意）"}},
	{"ONE", bonus{0.7, 25, "ONE（第一寓意）"}},
}

// premiumSequences точные последовательности, которые считаются особыми для региона.
var premiumSequences = []string{"01234", "12345", "23456", "34567", "45678", "56789", "67890"}

var wealthCombos = []keyedBonus{
	{"168", bonus{1.5, 80, "168（一路发，财运亨通）"}},
	{"518", bonus{1.2, 60, "518（我要发，财运好）"}},
	{"618", bonus{1.3, 70, "618（顺要发，财运好）"}},
	{"668", bonus{1.2, 60, "668（顺顺发，财运好）"}},
	{"688", bonus{1.3, 70, "688（顺发发，财运好）"}},
	{"886", bonus{1.1, 50, "886（发发顺，财运好）"}},
	{"889", bonus{1.1, 50, "889（发发久，财运好）"}},
	{"998", bonus{1.0, 45, "998（久久发，财运好）"}},
}

var careerCombos = []keyedBonus{
	{"213", bonus{1.2, 60, "213（易成功，事业顺利）"}},
	{"369", bonus{1.1, 55, "369（事业顺，步步高）"}},
	{"789", bonus{1.0, 50, "789（事业顺，财气不减）"}},
}

var fixedPairBonuses = map[rune]bonus{
	'8': {0.5, 25, "双8，吉祥数字"},
	'6': {0.4, 20, "双6，顺利数字"},
	'9': {0.35, 18, "双9，长久数字"},
}

var plainPairBonus = bonus{0.2, 10, "固定搭配，吉利"}

const fixedPairDigits = "12346789"

var luckySums = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 8: {}, 9: {}, 11: {}, 13: {}, 15: {}, 17: {},
	23: {}, 24: {}, 31: {}, 33: {}, 35: {}, 37: {}, 39: {}, 41: {}, 45: {}, 48: {},
}

var luckyPrefixes = []keyedBonus{
	{"HY", bonus{0.8, 40, "HY（好运，寓意好）"}},
	{"FU", bonus{0.9, 45, "FU（福气，寓意好）"}},
}

const (
	auspiciousDigits = "0689"
	pleasantLetters  = "AEFHKLMNPRSTUVWXYZ"
)

// rule проверяет номер и записывает срабатывания в accumulator.
type rule func(acc *accumulator, plate value.Plate)

// rules возвращает детекторы в порядке вычисления. Порядок важен: поздние
// правила смотрят на ранние срабатывания.
func (e *Engine) rules() []rule {
	return []rule{
		digitDoubles,
		digitRuns,
		bodySequence,
		letterSequences,
		reverseSequence,
		leopard,
		luckySubstring,
		vip,
		letterRepeats,
		specialWord,
		letterPalindrome,
		palindrome,
		repeatBlock,
		allDigitBody,
		e.regionBonus,
		wealthCombo,
		careerCombo,
		fixedPairs,
		digitSum,
		parityBalance,
		threePowers,
		luckyPrefix,
		repeatedDigit,
		auspiciousDigit,
		letterCombination,
	}
}

func digitDoubles(acc *accumulator, plate value.Plate) {
	for _, run := range pattern.Runs(plate.String(), 2, pattern.IsDigit) {
		if run.Length != 2 {
			continue
		}
		b, ok := digitDoubleBonuses[run.Char]
		if !ok {
			b = plainDoubleBonus
		}
		acc.hit(KindDigitDouble, run.String(), b.multiplier, b.points,
			fmt.Sprintf("2个%c（%s）", run.Char, b.desc))
	}
}

func digitRuns(acc *accumulator, plate value.Plate) {
	for _, run := range pattern.Runs(plate.String(), 3, pattern.IsDigit) {
		rb, ok := digitRunBonuses[run.Char]
		if !ok {
			rb = plainRunBonus
		}

		b := rb.three
		switch {
		case run.Length >= 5:
			b = bonus{
				multiplier: rb.longer.multiplier * float64(run.Length),
				points:     rb.longer.points * run.Length,
				desc:       rb.longer.desc,
			}
		case run.Length == 4:
			b = rb.four
		}

		acc.hit(KindDigitRun, run.String(), b.multiplier, b.points,
			fmt.Sprintf("%d个%c（%s）", run.Length, run.Char, b.desc))
	}
}

func bodySequence(acc *accumulator, plate value.Plate) {
	seq, ok := pattern.LongestSequence(plate.Body(), 3, value.PlateMaxLen)
	if !ok {
		return
	}

	switch {
	case seq.Length >= 5:
		acc.hit(KindDigitSequence, seq.Digits, 1.5, 70,
			fmt.Sprintf("%d位数字顺子（超级顺子，价值很高）", seq.Length))
	case seq.Length == 4:
		acc.hit(KindDigitSequence, seq.Digits, 1.2, 50, "4位数字顺子（步步高升，价值很高）")
	default:
		acc.hit(KindDigitSequence, seq.Digits, 0.8, 30, "数字顺子（寓意步步高升）")
	}
}

// letterSequences ищет непересекающиеся тройки букв по возрастанию. I и O на
// номерах не выдаются и рвут последовательность.
func letterSequences(acc *accumulator, plate value.Plate) {
	runes := []rune(plate.String())

	usable := func(r rune) bool {
		return pattern.IsLetter(r) && r != 'I' && r != 'O'
	}

	for i := 0; i+2 < len(runes); {
		a, b, c := runes[i], runes[i+1], runes[i+2]
		if usable(a) && usable(b) && usable(c) && b == a+1 && c == b+1 {
			span := string(runes[i : i+3])
			acc.hit(KindLetterSequence, span, 0.6, 25, fmt.Sprintf("字母顺子%s（独特组合）", span))
			i += 3
			continue
		}
		i++
	}
}

func reverseSequence(acc *accumulator, plate value.Plate) {
	for _, seq := range reverseSequences {
		if strings.Contains(plate.String(), seq) {
			acc.hit(KindReverseSequence, seq, 0.7, 30, "倒序顺子（独特组合）")
			return
		}
	}
}

func leopard(acc *accumulator, plate value.Plate) {
	s := plate.String()
	if !pattern.IsSolidDigits(s, value.PlateMinLen) {
		return
	}

	switch s[0] {
	case '8':
		acc.hit(KindLeopard, s, 10.0, 500, "豹子号8888888（超级稀有，价值百万级）")
	case '6', '9':
		acc.hit(KindLeopard, s, 8.0, 400, "豹子号（超级稀有，价值数十万）")
	default:
		acc.hit(KindLeopard, s, 6.0, 300, "豹子号（超级稀有，价值很高）")
	}
}

func luckySubstring(acc *accumulator, plate value.Plate) {
	for _, sub := range luckySubstrings {
		if strings.Contains(plate.String(), sub.key) {
			acc.hit(KindLuckySubstring, sub.key, sub.multiplier, sub.points, sub.desc)
		}
	}
}

func vip(acc *accumulator, plate value.Plate) {
	if strings.Contains(plate.String(), "VIP") {
		acc.hit(KindVIP, "VIP", 1.0, 40, "VIP（尊贵标识）")
	}
}

// letterRepeats оценивает первую серию из трёх и более букв, а если её нет,
// то первую пару.
func letterRepeats(acc *accumulator, plate value.Plate) {
	runs := pattern.Runs(plate.String(), 2, pattern.IsLetter)

	for _, run := range runs {
		if run.Length < 3 {
			continue
		}
		if run.Length >= 4 {
			acc.hit(KindLetterRun, run.String(), 1.5, 60,
				fmt.Sprintf("%d个%c（字母连号，价值很高）", run.Length, run.Char))
		} else {
			acc.hit(KindLetterRun, run.String(), 0.8, 30,
				fmt.Sprintf("3个%c（字母三连，独特）", run.Char))
		}
		return
	}

	if len(runs) > 0 {
		run := runs[0]
		acc.hit(KindLetterDouble, run.String(), 0.3, 12,
			fmt.Sprintf("2个%c（字母双号，易记）", run.Char))
	}
}

func specialWord(acc *accumulator, plate value.Plate) {
	for _, w := range specialWords {
		if strings.Contains(plate.String(), w.key) {
			acc.hit(KindWord, w.key, w.multiplier, w.points, w.desc)
			return
		}
	}
}

// letterPalindrome читает иероглиф провинции, букву региона и все нецифровые
// символы тела.
func letterPalindrome(acc *accumulator, plate value.Plate) {
	letters := plate.RegionCode() + strings.Map(func(r rune) rune {
		if pattern.IsDigit(r) {
			return -1
		}
		return r
	}, plate.Body())

	if utf8.RuneCountInString(letters) >= 3 && pattern.IsPalindrome(letters) {
		acc.hit(KindLetterPalindrome, letters, 0.6, 25, "字母对称（美观独特）")
	}
}

func palindrome(acc *accumulator, plate value.Plate) {
	s := plate.String()
	if len([]rune(s)) >= 5 && pattern.IsPalindrome(s) {
		acc.hit(KindPalindrome, s, 0.7, 25, "对称号（平衡美观）")
	}
}

func repeatBlock(acc *accumulator, plate value.Plate) {
	s := plate.String()
	if pattern.IsRepeater(s, 2, 3, 3) {
		acc.hit(KindRepeatBlock, s, 0.6, 20, "重复模式（规律美观）")
	}
}

func allDigitBody(acc *accumulator, plate value.Plate) {
	body := plate.Body()
	if body == "" || strings.IndexFunc(body, func(r rune) bool { return !pattern.IsDigit(r) }) >= 0 {
		return
	}

	acc.hit(KindAllDigitBody, "", 0.3, 15, "全数字组合（简洁易记）")
	if !pattern.HasRepeatedDigit(body) {
		acc.hit(KindUniqueDigits, "", 0.2, 10, "数字无重复（独特）")
	}
}

func (e *Engine) regionBonus(acc *accumulator, plate value.Plate) {
	region, body := plate.RegionCode(), plate.Body()

	switch {
	case region == e.profile.PremiumRegion:
		acc.baseValue += premiumBaseBonus
		acc.hit(KindPremiumRegion, region, 0.5, 100, "")

		if pattern.IsSolidDigits(body, 5) {
			var b bonus
			switch body[0] {
			case '8':
				b = bonus{8.0, 500, "可遇不可求，超级富豪专属，价值百万级"}
			case '1', '2', '3':
				b = bonus{4.0, 300, "精品号，超级富豪拥有，价值极高"}
			case '6', '9':
				b = bonus{3.5, 250, "精品号，超级富豪拥有，价值极高"}
			default:
				b = bonus{2.5, 180, "精品号，价值极高"}
			}
			acc.hit(KindPremiumBody, body, b.multiplier, b.points, fmt.Sprintf("%s%s（%s）", region, body, b.desc))
		} else if isPremiumSequence(body) {
			acc.hit(KindPremiumBody, body, 3.0, 200, fmt.Sprintf("%s%s（精品顺子号，超级富豪拥有，价值极高）", region, body))
		}

		acc.addFactor(e.profile.PremiumLabel)

	case e.profile.isTier1(region):
		acc.baseValue += tier1BaseBonus
		acc.hit(KindTier1Region, region, 0.3, 80, e.profile.Tier1Label)

		if pattern.IsSolidDigits(body, 5) {
			switch body[0] {
			case '8':
				acc.hit(KindTier1Body, body, 40.0, 2500, fmt.Sprintf("%s%s（一线城市精品号，价值极高，超级稀缺）", region, body))
			case '6', '9':
				acc.hit(KindTier1Body, body, 25.0, 1800, fmt.Sprintf("%s%s（一线城市精品号，价值极高，超级稀缺）", region, body))
			default:
				acc.hit(KindTier1Body, body, 18.0, 1200, fmt.Sprintf("%s%s（一线城市精品号，价值极高）", region, body))
			}
		} else if isPremiumSequence(body) {
			acc.hit(KindTier1Body, body, 18.0, 1200, fmt.Sprintf("%s%s（一线城市顺子号，价值极高，超级稀缺）", region, body))
		}
	}
}

func isPremiumSequence(body string) bool {
	for _, seq := range premiumSequences {
		if body == seq {
			return true
		}
	}
	return false
}

func wealthCombo(acc *accumulator, plate value.Plate) {
	for _, c := range wealthCombos {
		if strings.Contains(plate.String(), c.key) {
			acc.hit(KindWealthCombo, c.key, c.multiplier, c.points, c.desc)
			return
		}
	}
}

// careerCombo пропускает комбинации, уже названные особым номером региона.
func careerCombo(acc *accumulator, plate value.Plate) {
	for _, c := range careerCombos {
		if !strings.Contains(plate.String(), c.key) {
			continue
		}
		if acc.spanCovered(c.key, KindPremiumBody, KindTier1Body) {
			continue
		}
		acc.hit(KindCareerCombo, c.key, c.multiplier, c.points, c.desc)
		return
	}
}

// fixedPairs оценивает каждую непересекающуюся пару цифр. Надбавки идут
// всегда, а фактор пропускается, если пара уже описана.
func fixedPairs(acc *accumulator, plate value.Plate) {
	runes := []rune(plate.String())

	for i := 0; i+1 < len(runes); {
		r := runes[i]
		if runes[i+1] != r || !strings.ContainsRune(fixedPairDigits, r) {
			i++
			continue
		}

		pair := string(runes[i : i+2])
		if b, ok := fixedPairBonuses[r]; ok {
			factor := fmt.Sprintf("%s（%s）", pair, b.desc)
			if acc.firedSpan(KindDigitDouble, pair) || acc.firedSpan(KindLuckyPair, pair) {
				factor = ""
			}
			acc.hit(KindLuckyPair, pair, b.multiplier, b.points, factor)
		} else {
			factor := fmt.Sprintf("%s（%s）", pair, plainPairBonus.desc)
			if acc.fired(KindFixedPair) {
				factor = ""
			}
			acc.hit(KindFixedPair, pair, plainPairBonus.multiplier, plainPairBonus.points, factor)
		}
		i += 2
	}
}

func digitSum(acc *accumulator, plate value.Plate) {
	sum := pattern.DigitSum(plate.Body())
	if _, ok := luckySums[sum]; ok {
		acc.hit(KindDigitSum, strconv.Itoa(sum), 0.4, 20, fmt.Sprintf("数字总和%d（吉利数字总和）", sum))
	}
}

func parityBalance(acc *accumulator, plate value.Plate) {
	var odd, even int
	for _, r := range plate.Body() {
		if !pattern.IsDigit(r) {
			continue
		}
		if (r-'0')%2 == 1 {
			odd++
		} else {
			even++
		}
	}

	if odd > 0 && even > 0 && odd+even >= 3 {
		acc.hit(KindParityBalance, "", 0.3, 15, "阴阳平衡（单双数搭配，能量平衡）")
	}
}

// threePowers для пятизначных тел, где средняя цифра не больше обеих
// соседних.
func threePowers(acc *accumulator, plate value.Plate) {
	body := plate.Body()
	if len(body) != 5 || strings.IndexFunc(body, func(r rune) bool { return !pattern.IsDigit(r) }) >= 0 {
		return
	}

	left, mid, right := body[1], body[2], body[3]
	if !(mid > left && mid > right) {
		acc.hit(KindThreePowers, "", 0.3, 15, "三才平衡（天地人和谐）")
	}
}

func luckyPrefix(acc *accumulator, plate value.Plate) {
	for _, p := range luckyPrefixes {
		if strings.Contains(plate.String(), p.key) {
			acc.hit(KindLuckyPrefix, p.key, p.multiplier, p.points, p.desc)
			return
		}
	}
}

func repeatedDigit(acc *accumulator, plate value.Plate) {
	if !pattern.HasRepeatedDigit(plate.String()) {
		return
	}
	if acc.fired(KindDigitDouble, KindDigitRun, KindLeopard, KindRepeatBlock,
		KindLetterRun, KindLetterDouble, KindLuckyPair, KindFixedPair) {
		return
	}
	acc.hit(KindRepeatedDigit, "", 0, 5, "数字重复（易记）")
}

func auspiciousDigit(acc *accumulator, plate value.Plate) {
	if !strings.ContainsAny(plate.String(), auspiciousDigits) {
		return
	}
	if acc.spansMention("689") || acc.fired(KindWealthCombo) {
		return
	}
	acc.hit(KindAuspiciousDigit, "", 0, 3, "包含吉祥数字")
}

func letterCombination(acc *accumulator, plate value.Plate) {
	if !strings.ContainsAny(plate.String(), pleasantLetters) {
		return
	}
	if acc.fired(KindLetterSequence, KindLetterRun, KindLetterDouble,
		KindLetterPalindrome, KindLuckyPrefix) {
		return
	}
	acc.hit(KindPleasantLetters, "", 0, 2, "字母组合（个性化）")
}
