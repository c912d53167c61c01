package repository

import "errors"

// Доменные ошибки. Обработчики переводят их в HTTP-коды.
var (
	ErrNotFound          = errors.New("запись не найдена")
	ErrLoginTaken        = errors.New("пользователь с таким логином уже существует")
	ErrPlateTaken        = errors.New("транспорт с таким номером уже зарегистрирован")
	ErrInvalidStatus     = errors.New("неизвестный статус заявки")
	ErrInvalidTransition = errors.New("недопустимый переход статуса заявки")
	ErrCapacityExceeded  = errors.New("грузоподъёмность транспорта меньше веса груза")
	ErrTruckUnavailable  = errors.New("транспорт занят другой заявкой")
)
