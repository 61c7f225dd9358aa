package occupancy

import (
	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy/models"
)

const freeSlot = -1

// buildCells раскладывает блоки по парам от sections.Min до sections.Max
//
// Каждой паре назначается последний блок списка, который ее покрывает.
// Занятая ячейка растягивается на подряд идущие пары того же блока,
// свободная всегда занимает одну пару
func buildCells(blocks []domain.Block, sections domain.Bounds) []models.GridCell {
	if sections.IsEmpty() {
		return []models.GridCell{}
	}

	owner := make([]int, sections.Max-sections.Min+1)
	for i := range owner {
		owner[i] = freeSlot
	}
	for i, block := range blocks {
		for period := block.First; block.Covers(period) && period <= sections.Max; period++ {
			if idx := period - sections.Min; idx >= 0 {
				owner[idx] = i
			}
		}
	}

	cells := make([]models.GridCell, 0, len(owner))
	for idx := 0; idx < len(owner); {
		period := idx + sections.Min
		if owner[idx] == freeSlot {
			cells = append(cells, models.GridCell{Period: period, Span: 1})
			idx++
			continue
		}

		block := blocks[owner[idx]]
		span := 1
		for idx+span < len(owner) && owner[idx+span] == owner[idx] && span < block.Length {
			span++
		}

		cells = append(cells, models.GridCell{
			Period:   period,
			Span:     span,
			Occupied: true,
			Count:    block.Count,
		})
		idx += span
	}

	return cells
}
