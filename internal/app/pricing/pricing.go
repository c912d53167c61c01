package pricing

import (
	"errors"
	"math"
)

// Тип груза
type CargoType string

const (
	Ordinary  CargoType = "ordinary"
	Fragile   CargoType = "fragile"
	Dangerous CargoType = "dangerous"
	Oversized CargoType = "oversized"
)

// Тарифы перевозки
const (
	BaseRatePerKm   = 2.5  // руб за км
	WeightRatePerKg = 0.15 // руб за кг
	MinCost         = 500  // минимальная стоимость, руб
)

var (
	ErrNonPositiveDistance = errors.New("расстояние должно быть больше нуля")
	ErrNonPositiveWeight   = errors.New("вес груза должен быть больше нуля")
)

// Breakdown — детализация стоимости перевозки. Все суммы округлены
// до целых рублей.
type Breakdown struct {
	BaseCost   float64 `json:"base_cost"`
	WeightCost float64 `json:"weight_cost"`
	TypeCost   float64 `json:"type_cost"`
	TotalCost  float64 `json:"total_cost"`
	Multiplier float64 `json:"multiplier"`
	TypeName   string  `json:"type_name"`
}

// Multiplier возвращает коэффициент надбавки за тип груза.
// Неизвестный тип считается обычным.
func Multiplier(t CargoType) float64 {
	switch t {
	case Fragile:
		return 1.8
	case Oversized:
		return 2.0
	case Dangerous:
		return 2.2
	default:
		return 1.0
	}
}

// TypeName возвращает русское название типа груза для отображения
func TypeName(t CargoType) string {
	switch t {
	case Fragile:
		return "Хрупкий"
	case Dangerous:
		return "Опасный"
	case Oversized:
		return "Негабаритный"
	default:
		return "Обычный"
	}
}

// Compute рассчитывает стоимость перевозки:
// база за километраж + надбавка за вес + надбавка за тип груза,
// но не меньше минимальной стоимости.
func Compute(distanceKm, weightKg float64, cargoType CargoType) (Breakdown, error) {
	if distanceKm <= 0 {
		return Breakdown{}, ErrNonPositiveDistance
	}
	if weightKg <= 0 {
		return Breakdown{}, ErrNonPositiveWeight
	}

	baseCost := distanceKm * BaseRatePerKm
	weightCost := weightKg * WeightRatePerKg

	multiplier := Multiplier(cargoType)
	typeCost := (baseCost + weightCost) * (multiplier - 1)

	totalCost := baseCost + weightCost + typeCost
	if totalCost < MinCost {
		totalCost = MinCost
	}

	return Breakdown{
		BaseCost:   math.Round(baseCost),
		WeightCost: math.Round(weightCost),
		TypeCost:   math.Round(typeCost),
		TotalCost:  math.Round(totalCost),
		Multiplier: multiplier,
		TypeName:   TypeName(cargoType),
	}, nil
}
