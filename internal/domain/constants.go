package domain

// Значения по умолчанию для набора данных
const (
	DefaultWeekMin    = 1
	DefaultWeekMax    = 0 // Min > Max: недели еще не заданы
	DefaultSectionMin = 1
	DefaultSectionMax = 12 // Полный учебный день для источника по умолчанию
	DefaultMaxWeek    = 60 // Верхняя граница номера недели при разборе
)

// Ключевые слова заголовков CSV (поиск по подстроке)
const (
	ColumnCount    = "人数"
	ColumnTime     = "时间"
	ColumnLocation = "地点"
	ColumnWeek     = "周次"
	ColumnOddEven  = "单双周"
)

// Маркеры нечетных/четных недель в колонке ColumnOddEven
const (
	MarkerOdd  = "单"
	MarkerEven = "双"
)

// DefaultPeriodLabels заголовки сетки для источника по умолчанию
var DefaultPeriodLabels = []string{
	"教室", "8:00", "9:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "19:00", "20:00",
}
