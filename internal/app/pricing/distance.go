package pricing

import "strings"

// DefaultDistance используется, когда пара городов не найдена в матрице
const DefaultDistance = 250

// Фиксированные расстояния между основными городами Беларуси, км.
// Матрица симметричная.
var cityDistances = map[string]map[string]float64{
	"минск": {
		"гомель":  310,
		"брест":   350,
		"гродно":  280,
		"могилев": 200,
		"витебск": 250,
	},
	"гомель": {
		"минск":   310,
		"брест":   400,
		"гродно":  450,
		"могилев": 180,
		"витебск": 320,
	},
	"брест": {
		"минск":   350,
		"гомель":  400,
		"гродно":  230,
		"могилев": 420,
		"витебск": 480,
	},
	"гродно": {
		"минск":   280,
		"гомель":  450,
		"брест":   230,
		"могилев": 430,
		"витебск": 380,
	},
	"могилев": {
		"минск":   200,
		"гомель":  180,
		"брест":   420,
		"гродно":  430,
		"витебск": 170,
	},
	"витебск": {
		"минск":   250,
		"гомель":  320,
		"брест":   480,
		"гродно":  380,
		"могилев": 170,
	},
}

// Distance возвращает расстояние между городами в км.
// Регистр не учитывается; для совпадающих городов — 0,
// для неизвестной пары — DefaultDistance.
func Distance(from, to string) float64 {
	fromLower := strings.ToLower(strings.TrimSpace(from))
	toLower := strings.ToLower(strings.TrimSpace(to))

	if fromLower == toLower {
		return 0
	}

	if row, ok := cityDistances[fromLower]; ok {
		if d, ok := row[toLower]; ok {
			return d
		}
	}

	return DefaultDistance
}
