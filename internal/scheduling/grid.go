package scheduling

import (
	"zapis/internal/domain"
)

// DefaultStepMinutes — шаг сетки по умолчанию. Значение политики деплоя,
// а не свойство предметной области, поэтому переопределяется конфигурацией.
const DefaultStepMinutes = 15

const ReasonOutsideHours = "выходит за пределы рабочего дня"

// BuildGrid проходит рабочее окно с фиксированным шагом и классифицирует
// каждого кандидата. Возвращается вся сетка, включая недоступные слоты с
// причиной: клиентская сторона рисует полный день, а не только свободные окна.
//
// Линейный проход по busy на каждый слот достаточен: занятых интервалов в
// пределах одного дня единицы.
func BuildGrid(work Interval, busy []BusyInterval, duration, step int) ([]domain.TimeOption, error) {
	if duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	if step <= 0 {
		step = DefaultStepMinutes
	}

	var options []domain.TimeOption
	for t := work.Start; t < work.End; t += step {
		option := domain.TimeOption{
			StartMinute: t,
			Time:        FromMinutes(t),
		}

		switch {
		case t+duration > work.End:
			option.Reason = ReasonOutsideHours
		default:
			if conflict := FirstConflict(Interval{Start: t, End: t + duration}, busy); conflict != nil {
				option.Reason = conflict.Reason
			} else {
				option.Available = true
			}
		}

		options = append(options, option)
	}

	return options, nil
}
