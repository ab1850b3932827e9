package domain

// TimeOption — один кандидат на начало записи в сетке дня. Сетка возвращается
// целиком, включая недоступные слоты с причиной, чтобы клиент мог отрисовать
// полный день.
type TimeOption struct {
	StartMinute int    `json:"start_minute"`
	Time        string `json:"time"`
	Available   bool   `json:"available"`
	Reason      string `json:"reason,omitempty"`
}

type DayAvailability struct {
	StaffID int64        `json:"staff_id"`
	Date    string       `json:"date"`
	Working bool         `json:"working"`
	Slots   []TimeOption `json:"slots"`
}
