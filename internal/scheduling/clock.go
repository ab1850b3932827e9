// Package scheduling — чистое ядро расчёта доступности и проверки конфликтов.
// Все функции детерминированы, не ходят в базу и не держат состояния между
// вызовами, поэтому пакет безопасно использовать из любого числа горутин.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"zapis/internal/domain"
)

// Interval — полуоткрытый интервал [Start, End) в минутах от полуночи.
type Interval struct {
	Start int
	End   int
}

// ToMinutes разбирает строку "HH:MM" в минуты от полуночи.
func ToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimeFormat, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimeFormat, s)
	}

	return hour*60 + minute, nil
}

// FromMinutes форматирует минуты от полуночи обратно в "HH:MM".
func FromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов.
// Интервалы нулевой длины ни с чем не пересекаются.
func Overlaps(a, b Interval) bool {
	if a.Start >= a.End || b.Start >= b.End {
		return false
	}
	return a.Start < b.End && b.Start < a.End
}
