package entity

type Province struct {
	Code     string
	Name     string
	FullName string
}

// PlateInfo номер, разобранный на части региона.
type PlateInfo struct {
	Valid        bool
	Province     *Province
	ProvinceCode string
	City         string
	Plate        string
}

// ProvinceMatch одно попадание нечёткого поиска.
type ProvinceMatch struct {
	Province
	MatchType string
	Score     int
}
