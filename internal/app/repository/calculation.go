package repository

import (
	"sync"
	"time"

	"cargotrans/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// Журнал расчётов калькулятора. История хранится в БД; при сбое записи
// расчёт не теряется, а попадает в запасное хранилище в памяти — для
// калькулятора ошибка хранилища не должна доходить до пользователя.

// historyLimit — сколько последних расчётов храним на пользователя
const historyLimit = 20

type historyFallback struct {
	mu      sync.Mutex
	byUser  map[uint][]ds.Calculation
	anon    []ds.Calculation
	counter uint
}

func (f *historyFallback) add(calc ds.Calculation) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.counter++
	calc.ID = f.counter

	if calc.UserID == nil {
		f.anon = prependCapped(f.anon, calc)
		return
	}
	if f.byUser == nil {
		f.byUser = make(map[uint][]ds.Calculation)
	}
	f.byUser[*calc.UserID] = prependCapped(f.byUser[*calc.UserID], calc)
}

func (f *historyFallback) list(userID uint) []ds.Calculation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ds.Calculation(nil), f.byUser[userID]...)
}

func prependCapped(list []ds.Calculation, calc ds.Calculation) []ds.Calculation {
	list = append([]ds.Calculation{calc}, list...)
	if len(list) > historyLimit {
		list = list[:historyLimit]
	}
	return list
}

// SaveCalculation записывает расчёт в журнал. Ошибки хранилища не
// возвращаются: расчёт уходит в запасное хранилище.
func (r *Repository) SaveCalculation(calc *ds.Calculation) {
	calc.CreatedAt = time.Now()

	if r.db == nil {
		r.history.add(*calc)
		return
	}

	if err := r.db.Create(calc).Error; err != nil {
		logrus.Warnf("не удалось сохранить расчёт в БД, пишем в память: %v", err)
		r.history.add(*calc)
		return
	}

	if calc.UserID != nil {
		r.trimHistory(*calc.UserID)
	}
}

// trimHistory оставляет в журнале не больше historyLimit последних
// расчётов пользователя
func (r *Repository) trimHistory(userID uint) {
	err := r.db.Exec(`DELETE FROM calculations
		WHERE user_id = ? AND id NOT IN (
			SELECT id FROM calculations WHERE user_id = ? ORDER BY id DESC LIMIT ?
		)`, userID, userID, historyLimit).Error
	if err != nil {
		logrus.Warnf("не удалось подрезать историю расчётов: %v", err)
	}
}

// GetUserCalculations возвращает последние расчёты пользователя
func (r *Repository) GetUserCalculations(userID uint) ([]ds.Calculation, error) {
	if r.db == nil {
		return r.history.list(userID), nil
	}

	var calcs []ds.Calculation
	err := r.db.Where("user_id = ?", userID).
		Order("id DESC").
		Limit(historyLimit).
		Find(&calcs).Error
	if err != nil {
		return r.history.list(userID), nil
	}
	return calcs, nil
}
