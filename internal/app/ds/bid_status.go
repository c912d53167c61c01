package ds

// BidStatus — статус заявки. Значения совпадают со строками,
// которые показывает админ-панель.
type BidStatus string

const (
	StatusNew        BidStatus = "новая"
	StatusInProgress BidStatus = "в работе"
	StatusCompleted  BidStatus = "выполнена"
	StatusCancelled  BidStatus = "отменена"
)

// AllowedTransitions описывает допустимые переходы статусов заявки.
// Терминальные статусы (выполнена, отменена) переходов не имеют.
var AllowedTransitions = map[BidStatus][]BidStatus{
	StatusNew:        {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValidStatus проверяет, что строка является известным статусом
func IsValidStatus(s BidStatus) bool {
	_, ok := AllowedTransitions[s]
	return ok
}

// CanTransition проверяет, допустим ли переход from -> to
func CanTransition(from, to BidStatus) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal сообщает, что из статуса нет дальнейших переходов
func IsTerminal(s BidStatus) bool {
	allowed, ok := AllowedTransitions[s]
	return ok && len(allowed) == 0
}

// IsActive — заявка числится в работе (транспорт занят ею)
func IsActive(s BidStatus) bool {
	return s == StatusNew || s == StatusInProgress
}
