package entity

type Grade string

const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

func (g Grade) String() string {
	return string(g)
}

// Rank упорядочивает грейды, S старший. Неизвестный грейд 0.
func (g Grade) Rank() int {
	switch g {
	case GradeS:
		return 5
	case GradeA:
		return 4
	case GradeB:
		return 3
	case GradeC:
		return 2
	case GradeD:
		return 1
	default:
		return 0
	}
}

type GradeInfo struct {
	Level    Grade
	Name     string
	Color    string
	MinPrice int64
	MaxPrice int64
}

// TailPattern единственный шаблон четырёхзначного хвоста.
type TailPattern string

const (
	TailPattern1314   TailPattern = "1314"
	TailPattern1688   TailPattern = "1688"
	TailPatternLove   TailPattern = "LOVE"
	TailPatternAAAA   TailPattern = "AAAA"
	TailPatternABCD   TailPattern = "ABCD"
	TailPatternDCBA   TailPattern = "DCBA"
	TailPatternAABB   TailPattern = "AABB"
	TailPatternABAB   TailPattern = "ABAB"
	TailPatternABBA   TailPattern = "ABBA"
	TailPatternBAAA   TailPattern = "BAAA"
	TailPatternAAAB   TailPattern = "AAAB"
	TailPatternAABA   TailPattern = "AABA"
	TailPatternABAA   TailPattern = "ABAA"
	TailPatternAABC   TailPattern = "AABC"
	TailPatternABBC   TailPattern = "ABBC"
	TailPatternABCC   TailPattern = "ABCC"
	TailPatternABAC   TailPattern = "ABAC"
	TailPatternYear   TailPattern = "YEAR"
	TailPatternNormal TailPattern = "NORMAL"

	TailPatternInvalid TailPattern = "INVALID"
)

func (p TailPattern) String() string {
	return string(p)
}

type TailValuation struct {
	TailNumber  string
	Pattern     TailPattern
	Description string
	Grade       Grade
	GradeInfo   GradeInfo
	Bonus       float64
	Price       int64
	PriceRange  [2]int64
	Profile     string

	// Заполняет advisory, движок их не трогает.
	Suggestion string
	Blessing   string
}
