package ingest

import "strings"

// maxDigits максимальное число цифр целой части; больше - уже не помещается в int32
const maxDigits = 9

// Parity фильтр недель по четности
type Parity int

const (
	ParityAny Parity = iota
	ParityOdd
	ParityEven
)

// IsNumeric проверяет, что строка - число: необязательный ведущий '-',
// цифры и не более одной десятичной точки. Нужна хотя бы одна цифра,
// целая часть не длиннее maxDigits
func IsNumeric(s string) bool {
	s = strings.TrimPrefix(s, "-")

	digits := 0
	intDigits := 0
	hasDecimal := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if hasDecimal {
				return false
			}
			hasDecimal = true
		case c >= '0' && c <= '9':
			digits++
			if !hasDecimal {
				intDigits++
			}
		default:
			return false
		}
	}
	return digits > 0 && intDigits <= maxDigits
}

// IsDigits проверяет, что строка непустая и состоит только из цифр 0-9
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Atoi переводит строку в целое, отбрасывая дробную часть
// Корректность входа проверяется заранее через IsNumeric; пустая строка
// и целая часть длиннее maxDigits дают 0
func Atoi(s string) int {
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	result := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			break
		}
		if i >= maxDigits {
			return 0
		}
		result = result*10 + int(s[i]-'0')
	}

	if negative {
		return -result
	}
	return result
}

// SplitLine делит строку CSV по запятым с учетом кавычек
// Кавычка переключает режим "внутри кавычек" и в результат не попадает
func SplitLine(line string) []string {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(fields, current.String())
}

// ExpandWeeks разворачивает список недель вида "1-3,5" в [1 2 3 5]
// Диапазоны включительные; некорректные части пропускаются.
// Части с неделей больше maxWeek или диапазоном длиннее maxWeek тоже пропускаются.
// parity оставляет только нечетные или только четные недели
func ExpandWeeks(field string, parity Parity, maxWeek int) []int {
	weeks := make([]int, 0)

	for _, part := range strings.Split(field, ",") {
		if strings.Contains(part, "-") {
			bounds := strings.Split(part, "-")
			if len(bounds) != 2 || !IsNumeric(bounds[0]) || !IsNumeric(bounds[1]) {
				continue
			}
			first, last := Atoi(bounds[0]), Atoi(bounds[1])
			if last > maxWeek || last-first > maxWeek {
				continue
			}
			for week := first; week <= last; week++ {
				weeks = append(weeks, week)
			}
			continue
		}
		if IsNumeric(part) {
			if week := Atoi(part); week <= maxWeek {
				weeks = append(weeks, week)
			}
		}
	}

	if parity == ParityAny {
		return weeks
	}

	filtered := weeks[:0]
	for _, week := range weeks {
		odd := week%2 != 0
		if odd == (parity == ParityOdd) {
			filtered = append(filtered, week)
		}
	}
	return filtered
}

// SplitLocation делит место проведения на площадку и аудиторию
//
// Строка просматривается справа налево до последнего символа, который
// не цифра и не '-'. Все до него включительно - площадка, остаток - аудитория.
// Если такого символа нет, вся строка - площадка, аудитория пустая
func SplitLocation(location string) (site, room string) {
	runes := []rune(location)
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if (r < '0' || r > '9') && r != '-' {
			return string(runes[:i+1]), string(runes[i+1:])
		}
	}
	return location, ""
}

// ParseTime разбирает поле времени: первая цифра - день недели,
// дальше номера пар по две цифры ("10910" -> день 1, пары [9 10]).
// Последний неполный фрагмент из одной цифры тоже считается парой.
// Поле принимается, только если состоит из одних цифр
func ParseTime(field string) (weekday int, sections []int, ok bool) {
	if !IsDigits(field) {
		return 0, nil, false
	}

	weekday = Atoi(field[:1])
	sections = make([]int, 0, len(field)/2)
	for i := 1; i < len(field); i += 2 {
		end := i + 2
		if end > len(field) {
			end = len(field)
		}
		sections = append(sections, Atoi(field[i:end]))
	}

	return weekday, sections, true
}
