package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ClassroomCheck/pkg/psqlbuilder"
)

// Колонки таблицы расписания
const (
	columnCount    = "count"
	columnTime     = "time"
	columnLocation = "location"
	columnWeek     = "week"
	columnOddEven  = "odd_even"
	columnTerm     = "term"
	columnID       = "id"
)

// Record строка таблицы расписания в сыром текстовом виде
// Разбор полей выполняет ingest, как и для CSV
type Record struct {
	Count    string
	Time     string
	Location string
	Week     string
	OddEven  string
}

// Fields возвращает поля записи в порядке колонок Columns
func (r Record) Fields() []string {
	return []string{r.Count, r.Time, r.Location, r.Week, r.OddEven}
}

// Repository репозиторий для чтения расписания из PostgreSQL
type Repository struct {
	db    DBExecutor
	table string
	term  string
}

// NewRepository создает новый экземпляр репозитория расписания
// Пустой term означает все строки таблицы
func NewRepository(db DBExecutor, table, term string) *Repository {
	return &Repository{
		db:    db,
		table: table,
		term:  term,
	}
}

// ListRecords читает все строки расписания
func (r *Repository) ListRecords(ctx context.Context) ([]Record, error) {
	query, args, err := r.selectQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecords - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecords - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var count, timeField, location, week, oddEven sql.NullString
		if err := rows.Scan(&count, &timeField, &location, &week, &oddEven); err != nil {
			return nil, fmt.Errorf("%w: ListRecords - scan record: %v", ErrScanRow, err)
		}

		records = append(records, Record{
			Count:    count.String,
			Time:     timeField.String,
			Location: location.String,
			Week:     week.String,
			OddEven:  oddEven.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecords - iterate rows: %v", ErrScanRow, err)
	}

	return records, nil
}

// selectQuery строит запрос; числовые колонки приводятся к тексту на стороне БД
func (r *Repository) selectQuery() squirrel.SelectBuilder {
	builder := psqlbuilder.Select(
		columnCount+"::text",
		columnTime+"::text",
		columnLocation,
		columnWeek,
		columnOddEven,
	).
		From(r.table).
		OrderBy(columnID)

	if r.term != "" {
		builder = builder.Where(squirrel.Eq{columnTerm: r.term})
	}

	return builder
}
