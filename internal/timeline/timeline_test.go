package timeline_test

import (
	"testing"

	"gantt/internal/timeline"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *int
	}{
		{"nil", nil, nil},
		{"пустая строка", "", nil},
		{"строка null", "null", nil},
		{"строка с числом", "3", intPtr(3)},
		{"строка с отрицательным числом", "-2", intPtr(-2)},
		{"строка с мусором", "march", nil},
		{"целое JSON-число", float64(12), intPtr(12)},
		{"дробное JSON-число", 3.5, nil},
		{"int", 7, intPtr(7)},
		{"bool", true, nil},
		{"объект", map[string]any{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeline.ParseMonth(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestResolve_MonthsMode(t *testing.T) {
	// Валидный диапазон месяцев
	tl, err := timeline.Resolve(timeline.DurationMonths, intPtr(12), intPtr(2), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, timeline.DurationMonths, tl.DurationType)
	assert.Equal(t, 12, *tl.StartMonth)
	assert.Equal(t, 2, *tl.EndMonth)
	assert.Nil(t, tl.StartDate)
	assert.Nil(t, tl.EndDate)
}

func TestResolve_DefaultsToMonths(t *testing.T) {
	// Пустой duration_type означает режим месяцев
	tl, err := timeline.Resolve("", intPtr(1), intPtr(3), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, timeline.DurationMonths, tl.DurationType)

	// ...поэтому без месяцев валидация падает
	_, err = timeline.Resolve("", nil, nil, strPtr("2025-01-01"), strPtr("2025-02-01"))
	assert.Error(t, err)
	assert.IsType(t, &timeline.ValidationError{}, err)
}

func TestResolve_MonthsMode_Invalid(t *testing.T) {
	// Отсутствующий месяц начала
	_, err := timeline.Resolve(timeline.DurationMonths, nil, intPtr(3), nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Месяц начала")
	assert.Contains(t, err.Error(), "Декабрь")

	// Месяц вне отчетной оси
	_, err = timeline.Resolve(timeline.DurationMonths, intPtr(1), intPtr(9), nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Месяц конца")
}

func TestResolve_DaysMode(t *testing.T) {
	tl, err := timeline.Resolve(timeline.DurationDays, nil, nil, strPtr("2025-03-01"), strPtr("2025-03-15"))
	assert.NoError(t, err)
	assert.Equal(t, timeline.DurationDays, tl.DurationType)
	assert.Equal(t, "2025-03-01", *tl.StartDate)
	assert.Equal(t, "2025-03-15", *tl.EndDate)
	assert.Nil(t, tl.StartMonth)
	assert.Nil(t, tl.EndMonth)
}

func TestResolve_DaysMode_EqualDates(t *testing.T) {
	// Совпадающие даты допустимы
	_, err := timeline.Resolve(timeline.DurationDays, nil, nil, strPtr("2025-03-01"), strPtr("2025-03-01"))
	assert.NoError(t, err)
}

func TestResolve_DaysMode_Invalid(t *testing.T) {
	// Начало позже конца
	_, err := timeline.Resolve(timeline.DurationDays, nil, nil, strPtr("2025-03-15"), strPtr("2025-03-01"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "позже даты окончания")

	// Нет дат
	_, err = timeline.Resolve(timeline.DurationDays, nil, nil, nil, nil)
	assert.Error(t, err)

	// Неверный формат
	_, err = timeline.Resolve(timeline.DurationDays, nil, nil, strPtr("01.03.2025"), strPtr("2025-03-15"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestResolve_MonthsMode_DropsDateFields(t *testing.T) {
	// В режиме месяцев поля дат обнуляются
	tl, err := timeline.Resolve(timeline.DurationMonths, intPtr(12), intPtr(7), strPtr("2025-01-01"), strPtr("2025-02-01"))
	assert.NoError(t, err)
	assert.Nil(t, tl.StartDate)
	assert.Nil(t, tl.EndDate)
}
