package repository

import (
	"fmt"
	"testing"

	"cargotrans/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestHistoryFallback_PerUser(t *testing.T) {
	var f historyFallback

	f.add(ds.Calculation{UserID: uintPtr(1), From: "Минск", To: "Гомель", Cost: 925})
	f.add(ds.Calculation{UserID: uintPtr(2), From: "Брест", To: "Гродно", Cost: 715})
	f.add(ds.Calculation{UserID: uintPtr(1), From: "Минск", To: "Брест", Cost: 1100})

	first := f.list(1)
	require.Len(t, first, 2)
	// свежие расчёты идут первыми
	assert.Equal(t, "Брест", first[0].To)
	assert.Equal(t, "Гомель", first[1].To)

	second := f.list(2)
	require.Len(t, second, 1)
	assert.Equal(t, float64(715), second[0].Cost)

	assert.Empty(t, f.list(42))
}

func TestHistoryFallback_CappedAtLimit(t *testing.T) {
	var f historyFallback

	for i := 0; i < historyLimit+7; i++ {
		f.add(ds.Calculation{UserID: uintPtr(1), From: fmt.Sprintf("город-%d", i)})
	}

	list := f.list(1)
	require.Len(t, list, historyLimit)
	// остаются только последние записи
	assert.Equal(t, fmt.Sprintf("город-%d", historyLimit+6), list[0].From)
}

func TestHistoryFallback_AnonymousNotMixedIn(t *testing.T) {
	var f historyFallback

	f.add(ds.Calculation{From: "Минск", To: "Витебск"})
	f.add(ds.Calculation{UserID: uintPtr(5), From: "Минск", To: "Гомель"})

	list := f.list(5)
	require.Len(t, list, 1)
	assert.Equal(t, "Гомель", list[0].To)
}

func TestHistoryFallback_AssignsIDs(t *testing.T) {
	var f historyFallback

	f.add(ds.Calculation{UserID: uintPtr(1)})
	f.add(ds.Calculation{UserID: uintPtr(1)})

	list := f.list(1)
	require.Len(t, list, 2)
	assert.Greater(t, list[0].ID, list[1].ID)
}

func TestSaveCalculation_WithoutDatabase(t *testing.T) {
	// без подключения к БД расчёты не теряются
	r := &Repository{}

	calc := ds.Calculation{UserID: uintPtr(3), From: "Минск", To: "Могилев", Cost: 500}
	r.SaveCalculation(&calc)

	list, err := r.GetUserCalculations(3)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Могилев", list[0].To)
	assert.False(t, list[0].CreatedAt.IsZero())
}
