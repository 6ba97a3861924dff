package timeline

import "strings"

// AvailableMonths — месяцы отчетного периода в порядке отображения
// (декабрь — июль). Порядок фиксированный и не совпадает с календарным.
var AvailableMonths = []int{12, 1, 2, 3, 4, 5, 6, 7}

// MonthNames содержит русские названия всех календарных месяцев.
var MonthNames = map[int]string{
	1: "Январь", 2: "Февраль", 3: "Март", 4: "Апрель",
	5: "Май", 6: "Июнь", 7: "Июль", 8: "Август",
	9: "Сентябрь", 10: "Октябрь", 11: "Ноябрь", 12: "Декабрь",
}

// IsPermitted reports whether m belongs to the reporting axis.
func IsPermitted(m int) bool {
	for _, am := range AvailableMonths {
		if am == m {
			return true
		}
	}
	return false
}

// IndexOf returns the position of m on the reporting axis.
func IndexOf(m int) (int, bool) {
	for i, am := range AvailableMonths {
		if am == m {
			return i, true
		}
	}
	return -1, false
}

// InRange reports whether check lies within [start, end] walking forward
// along the reporting axis. A range whose start position is after its end
// position wraps past the end of the axis back to its beginning.
func InRange(check, start, end int) bool {
	startIdx, ok := IndexOf(start)
	if !ok {
		return false
	}
	endIdx, ok := IndexOf(end)
	if !ok {
		return false
	}
	checkIdx, ok := IndexOf(check)
	if !ok {
		return false
	}

	if startIdx <= endIdx {
		return startIdx <= checkIdx && checkIdx <= endIdx
	}
	// Диапазон переходит через конец списка (например, декабрь -> январь)
	return checkIdx >= startIdx || checkIdx <= endIdx
}

// PermittedMonthNames returns the axis months as a comma-separated list of
// display names, used in validation messages.
func PermittedMonthNames() string {
	names := make([]string, len(AvailableMonths))
	for i, m := range AvailableMonths {
		names[i] = MonthNames[m]
	}
	return strings.Join(names, ", ")
}
