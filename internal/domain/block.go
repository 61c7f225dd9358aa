package domain

// Block непрерывный отрезок пар (занятий) в пределах одного дня недели
// с одним значением занятости
// Два блока с одинаковыми (First, Length) считаются одним блоком: их Count суммируется
type Block struct {
	Count  int // Количество человек (занятость), всегда >= 0
	First  int // Номер первой пары
	Length int // Количество пар подряд, >= 1
}

// Last возвращает номер последней пары блока
func (b Block) Last() int {
	return b.First + b.Length - 1
}

// Covers returns true if the block occupies the given period
func (b Block) Covers(period int) bool {
	return period >= b.First && period <= b.Last()
}

// SameSpan returns true if both blocks cover exactly the same periods
func (b Block) SameSpan(other Block) bool {
	return b.First == other.First && b.Length == other.Length
}

// Bounds диапазон номеров (недель или пар)
// Min > Max означает, что диапазон еще не задан
type Bounds struct {
	Min int
	Max int
}

// IsEmpty returns true if no value has been observed yet
func (b Bounds) IsEmpty() bool {
	return b.Min > b.Max
}

// Row одна нормализованная строка расписания, готовая к вставке в хранилище
type Row struct {
	Site     string
	Room     string
	Weeks    []int
	Weekday  int
	Sections []int
	Count    int
}
