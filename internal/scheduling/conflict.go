package scheduling

// FirstConflict возвращает первый занятый интервал, пересекающийся с
// предложенным, или nil. В отличие от построения сетки, проверка обрывается
// на первом конфликте — путь записи не перечисляет весь день.
func FirstConflict(proposed Interval, busy []BusyInterval) *BusyInterval {
	for i := range busy {
		if Overlaps(proposed, busy[i].Interval) {
			return &busy[i]
		}
	}
	return nil
}
