package occupancy

import "github.com/m04kA/SMC-ClassroomCheck/internal/domain"

// mergeSections склеивает номера пар в минимальное число блоков одним проходом
//
// Текущий отрезок [first, first+length) расширяется, если следующая пара
// лежит внутри него, примыкает снизу (first-1) или сверху (first+length).
// Иначе отрезок закрывается и начинается новый. Вход не сортируется:
// при неупорядоченных парах результат зависит от порядка.
func mergeSections(sections []int, count int) []domain.Block {
	if len(sections) == 0 {
		return nil
	}

	blocks := make([]domain.Block, 0, 1)
	first := sections[0]
	length := 1

	for _, section := range sections[1:] {
		switch {
		case section >= first && section-first < length:
			// уже внутри отрезка
		case section == first-1:
			first--
			length++
		case section == first+length:
			length++
		default:
			blocks = append(blocks, domain.Block{Count: count, First: first, Length: length})
			first = section
			length = 1
		}
	}

	return append(blocks, domain.Block{Count: count, First: first, Length: length})
}
