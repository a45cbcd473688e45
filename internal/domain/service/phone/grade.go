package phone

import "plate_appraiser/internal/domain/entity"

var gradeInfos = map[entity.Grade]entity.GradeInfo{
	entity.GradeS: {Level: entity.GradeS, Name: "至尊", Color: "#FF6B6B", MinPrice: 5000, MaxPrice: 10000},
	entity.GradeA: {Level: entity.GradeA, Name: "极品", Color: "#4ECDC4", MinPrice: 2000, MaxPrice: 5000},
	entity.GradeB: {Level: entity.GradeB, Name: "优秀", Color: "#45B7D1", MinPrice: 500, MaxPrice: 2000},
	entity.GradeC: {Level: entity.GradeC, Name: "普通", Color: "#96CEB4", MinPrice: 100, MaxPrice: 500},
	entity.GradeD: {Level: entity.GradeD, Name: "普通", Color: "#FFEAA7", MinPrice: 0, MaxPrice: 100},
}

// GradeInfoFor возвращает статический диапазон g.
func GradeInfoFor(g entity.Grade) (entity.GradeInfo, bool) {
	info, ok := gradeInfos[g]
	return info, ok
}

// refineNormal оценивает хвост без шаблона по бонусу цифр.
func refineNormal(bonus float64) entity.Grade {
	switch {
	case bonus >= 1.3:
		return entity.GradeB
	case bonus >= 1.1:
		return entity.GradeC
	default:
		return entity.GradeD
	}
}
