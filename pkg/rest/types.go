// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// PlateRequest Запрос оценки номера
type PlateRequest struct {
	Plate string `json:"plate" validate:"required,max=32"`
}

// PatternMatch Найденный шаблон
type PatternMatch struct {
	Kind        string `json:"kind"`
	Span        string `json:"span"`
	Length      int    `json:"length"`
	Description string `json:"description"`
}

// PlateValuation Результат оценки номера
type PlateValuation struct {
	Plate          string         `json:"plate"`
	Value          int64          `json:"value"`
	RawValue       int64          `json:"rawValue"`
	Level          string         `json:"level"`
	LevelClass     string         `json:"levelClass"`
	Stars          int            `json:"stars"`
	Comment        string         `json:"comment"`
	Factors        []string       `json:"factors"`
	IsRare         bool           `json:"isRare"`
	AnimationLevel int            `json:"animationLevel"`
	BaseValue      int64          `json:"baseValue"`
	Multiplier     float64        `json:"multiplier"`
	PositivePoints int            `json:"positivePoints"`
	Matches        []PatternMatch `json:"matches"`

	RegionCode   string `json:"regionCode"`
	Body         string `json:"body"`
	ProvinceCode string `json:"provinceCode"`
	Location     string `json:"location"`
}

// FormattedPlate Номер после нормализации
type FormattedPlate struct {
	Plate string `json:"plate"`
}

// Province Провинция
type Province struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
}

// PlateInfo Разбор номера по регионам
type PlateInfo struct {
	Valid        bool      `json:"valid"`
	Plate        string    `json:"plate"`
	ProvinceCode string    `json:"provinceCode"`
	Province     *Province `json:"province,omitempty"`
	City         string    `json:"city"`
	Location     string    `json:"location"`
}

// ProvinceMatch Результат поиска провинции
type ProvinceMatch struct {
	Province

	MatchType string `json:"matchType"`
	Score     int    `json:"score"`
}

// TailRequest Запрос оценки хвоста телефонного номера
type TailRequest struct {
	Number string `json:"number" validate:"required,max=32"`
}

// GradeInfo Описание грейда
type GradeInfo struct {
	Level    string `json:"level"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	MinPrice int64  `json:"minPrice"`
	MaxPrice int64  `json:"maxPrice"`
}

// TailValuation Результат оценки хвоста
type TailValuation struct {
	TailNumber  string    `json:"tailNumber"`
	Pattern     string    `json:"pattern"`
	Description string    `json:"description"`
	Grade       string    `json:"grade"`
	GradeInfo   GradeInfo `json:"gradeInfo"`
	Bonus       float64   `json:"bonus"`
	Price       int64     `json:"price"`
	PriceRange  [2]int64  `json:"priceRange"`
	Profile     string    `json:"profile"`
	Suggestion  string    `json:"suggestion"`
	Blessing    string    `json:"blessing"`
}

// KeypadState Состояние клавиатуры ввода номера
type KeypadState struct {
	Parts    []string `json:"parts" validate:"max=8"`
	Index    int      `json:"index" validate:"min=0,max=7"`
	Keyboard string   `json:"keyboard"`
	Hint     string   `json:"hint"`
	Keys     []string `json:"keys,omitempty"`
}

// KeypadRequest Действие с клавиатурой
type KeypadRequest struct {
	State KeypadState `json:"state"`
	Key   string      `json:"key" validate:"max=8"`
	Index int         `json:"index"`
}

// KeypadResult Новое состояние клавиатуры
type KeypadResult struct {
	State     KeypadState     `json:"state"`
	Plate     string          `json:"plate,omitempty"`
	Valuation *PlateValuation `json:"valuation,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
