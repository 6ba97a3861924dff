package timeline

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Duration modes for a task timeline.
const (
	DurationMonths = "months"
	DurationDays   = "days"
)

// DateLayout is the wire format for day-mode dates.
const DateLayout = "2006-01-02"

// Timeline is a validated task period: either a month range on the reporting
// axis or a calendar date range, depending on DurationType.
type Timeline struct {
	DurationType string
	StartMonth   *int
	EndMonth     *int
	StartDate    *string
	EndDate      *string
}

// ValidationError describes a violated timeline rule. The message is meant
// for the API client as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ParseMonth leniently coerces a raw JSON value into a month number.
// nil, "", "null" and anything that is not a whole number become nil —
// malformed month fields are treated as unset, never as an error.
func ParseMonth(v any) *int {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if val == "" || val == "null" {
			return nil
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil
		}
		return &n
	case float64:
		// JSON числа приходят как float64
		if val != math.Trunc(val) {
			return nil
		}
		n := int(val)
		return &n
	case int:
		n := val
		return &n
	default:
		return nil
	}
}

// Resolve validates the candidate fields for the given duration mode and
// returns a normalized Timeline: month fields are kept and date fields
// dropped in months mode, and vice versa in days mode. An empty duration
// type defaults to months.
func Resolve(durationType string, startMonth, endMonth *int, startDate, endDate *string) (Timeline, error) {
	if durationType == "" {
		durationType = DurationMonths
	}

	if durationType == DurationMonths {
		if startMonth == nil || !IsPermitted(*startMonth) {
			return Timeline{}, &ValidationError{
				Message: fmt.Sprintf("Месяц начала должен быть одним из: %s", PermittedMonthNames()),
			}
		}
		if endMonth == nil || !IsPermitted(*endMonth) {
			return Timeline{}, &ValidationError{
				Message: fmt.Sprintf("Месяц конца должен быть одним из: %s", PermittedMonthNames()),
			}
		}
		return Timeline{
			DurationType: durationType,
			StartMonth:   startMonth,
			EndMonth:     endMonth,
		}, nil
	}

	// Режим дней
	if startDate == nil || *startDate == "" || endDate == nil || *endDate == "" {
		return Timeline{}, &ValidationError{
			Message: "Для режима дней необходимо указать дату начала и дату окончания",
		}
	}
	start, err := time.Parse(DateLayout, *startDate)
	if err != nil {
		return Timeline{}, &ValidationError{
			Message: "Неверный формат даты. Используйте формат YYYY-MM-DD",
		}
	}
	end, err := time.Parse(DateLayout, *endDate)
	if err != nil {
		return Timeline{}, &ValidationError{
			Message: "Неверный формат даты. Используйте формат YYYY-MM-DD",
		}
	}
	if start.After(end) {
		return Timeline{}, &ValidationError{
			Message: "Дата начала не может быть позже даты окончания",
		}
	}
	return Timeline{
		DurationType: durationType,
		StartDate:    startDate,
		EndDate:      endDate,
	}, nil
}
