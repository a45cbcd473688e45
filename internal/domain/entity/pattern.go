package entity

// MatchKind определяет правило, породившее PatternMatch.
type MatchKind string

// PatternMatch одно срабатывание правила.
type PatternMatch struct {
	Kind        MatchKind
	Span        string
	Length      int
	Description string
}
