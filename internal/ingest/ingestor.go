package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
	"github.com/m04kA/SMC-ClassroomCheck/internal/infra/storage/occupancy"
)

// Options настройки разбора расписания
type Options struct {
	Columns    Columns
	OddMarker  string
	EvenMarker string
	MaxWeek    int // Недели больше MaxWeek отбрасываются; <= 0 - domain.DefaultMaxWeek
}

// DefaultOptions настройки для выгрузок расписания по умолчанию
func DefaultOptions() Options {
	return Options{
		Columns: Columns{
			Count:    domain.ColumnCount,
			Time:     domain.ColumnTime,
			Location: domain.ColumnLocation,
			Week:     domain.ColumnWeek,
			OddEven:  domain.ColumnOddEven,
		},
		OddMarker:  domain.MarkerOdd,
		EvenMarker: domain.MarkerEven,
		MaxWeek:    domain.DefaultMaxWeek,
	}
}

// Ingestor собирает хранилище занятости из CSV-расписания
type Ingestor struct {
	opts   Options
	logger Logger
}

// NewIngestor создает новый экземпляр ingestor
func NewIngestor(opts Options, logger Logger) *Ingestor {
	if opts.MaxWeek <= 0 {
		opts.MaxWeek = domain.DefaultMaxWeek
	}
	return &Ingestor{
		opts:   opts,
		logger: logger,
	}
}

// Ingest читает CSV целиком и строит новое хранилище
// Отсутствие обязательных колонок или пустой файл отклоняют файл целиком,
// ошибки в отдельных строках только пропускают эти строки
func (i *Ingestor) Ingest(r io.Reader, sectionMax int) (*occupancy.Store, domain.IngestStats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.IngestStats{}, fmt.Errorf("ingest: read input: %w", err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, domain.IngestStats{}, err
	}

	lines := strings.Split(text, "\n")
	if strings.TrimSpace(lines[0]) == "" {
		return nil, domain.IngestStats{}, ErrEmptyFile
	}

	titles := SplitLine(strings.TrimRight(lines[0], "\r"))
	records := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		records = append(records, SplitLine(line))
	}

	return i.IngestRecords(titles, records, sectionMax)
}

// IngestRecords строит хранилище из уже разделенных на поля строк
func (i *Ingestor) IngestRecords(titles []string, records [][]string, sectionMax int) (*occupancy.Store, domain.IngestStats, error) {
	if len(titles) == 0 {
		return nil, domain.IngestStats{}, ErrEmptyFile
	}

	h := classifyHeader(titles, i.opts.Columns)
	if err := h.validate(i.opts.Columns); err != nil {
		i.logger.Warn("Ingest: header rejected: %v", err)
		return nil, domain.IngestStats{}, err
	}

	store := occupancy.NewStore(sectionMax)
	stats := domain.IngestStats{Lines: len(records)}

	for n, fields := range records {
		row, ok := i.parseRow(fields, h)
		if !ok || len(row.Weeks) == 0 || len(row.Sections) == 0 {
			i.logger.Debug("Ingest: skipped row %d: %q", n+1, fields)
			stats.Skipped++
			continue
		}

		store.Insert(row.Site, row.Room, row.Weeks, row.Weekday, row.Sections, row.Count)
		stats.Inserted++
	}

	i.logger.Info("Ingest: lines=%d, inserted=%d, skipped=%d, sites=%d",
		stats.Lines, stats.Inserted, stats.Skipped, len(store.Sites()))

	return store, stats, nil
}

// parseRow разбирает одну строку данных
func (i *Ingestor) parseRow(fields []string, h header) (domain.Row, bool) {
	if len(fields) <= h.maxRequired() {
		return domain.Row{}, false
	}

	weekday, sections, ok := ParseTime(fields[h.time])
	if !ok {
		return domain.Row{}, false
	}

	countField := fields[h.count]
	if !IsNumeric(countField) {
		return domain.Row{}, false
	}

	site, room := SplitLocation(fields[h.location])

	return domain.Row{
		Site:     site,
		Room:     room,
		Weeks:    ExpandWeeks(fields[h.week], i.parity(fields, h), i.opts.MaxWeek),
		Weekday:  weekday,
		Sections: sections,
		Count:    Atoi(countField),
	}, true
}

// parity определяет фильтр четности по необязательной колонке
func (i *Ingestor) parity(fields []string, h header) Parity {
	if h.oddEven < 0 || h.oddEven >= len(fields) {
		return ParityAny
	}

	marker := fields[h.oddEven]
	switch {
	case i.opts.OddMarker != "" && strings.Contains(marker, i.opts.OddMarker):
		return ParityOdd
	case i.opts.EvenMarker != "" && strings.Contains(marker, i.opts.EvenMarker):
		return ParityEven
	default:
		return ParityAny
	}
}
