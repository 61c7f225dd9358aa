package ingest

import (
	"fmt"
	"strings"
)

// Columns ключевые слова, по которым распознаются колонки заголовка
type Columns struct {
	Count    string
	Time     string
	Location string
	Week     string
	OddEven  string
}

// header индексы распознанных колонок, -1 - колонка не найдена
type header struct {
	count    int
	time     int
	location int
	week     int
	oddEven  int
}

// classifyHeader сопоставляет заголовки колонок ключевым словам по подстроке
// Проверки идут по порядку: занятость, время, место, неделя, четность.
// При повторе побеждает последняя колонка
func classifyHeader(titles []string, columns Columns) header {
	h := header{count: -1, time: -1, location: -1, week: -1, oddEven: -1}

	for i, title := range titles {
		switch {
		case strings.Contains(title, columns.Count):
			h.count = i
		case strings.Contains(title, columns.Time):
			h.time = i
		case strings.Contains(title, columns.Location):
			h.location = i
		case strings.Contains(title, columns.Week):
			h.week = i
		case columns.OddEven != "" && strings.Contains(title, columns.OddEven):
			h.oddEven = i
		}
	}

	return h
}

// validate проверяет наличие обязательных колонок
func (h header) validate(columns Columns) error {
	missing := make([]string, 0, 4)
	if h.count < 0 {
		missing = append(missing, columns.Count)
	}
	if h.time < 0 {
		missing = append(missing, columns.Time)
	}
	if h.location < 0 {
		missing = append(missing, columns.Location)
	}
	if h.week < 0 {
		missing = append(missing, columns.Week)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

// maxRequired возвращает наибольший индекс среди обязательных колонок
func (h header) maxRequired() int {
	return max(h.count, h.time, h.location, h.week)
}
