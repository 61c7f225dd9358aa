package occupancy

import (
	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
)

// slotKey полный ключ списка блоков: площадка, аудитория, неделя, день недели
type slotKey struct {
	site    string
	room    string
	week    int
	weekday int
}

// Store in-memory индекс занятости аудиторий
// site -> room -> week -> weekday -> []Block
//
// Store собирается одним проходом при загрузке файла и дальше только читается.
// Конкурентная запись не поддерживается: при перезагрузке создается новый Store
type Store struct {
	blocks map[slotKey][]domain.Block
	rooms  map[string]map[string]struct{}

	weeks    domain.Bounds
	sections domain.Bounds
}

// NewStore создает пустое хранилище
// sectionMax задает правую границу пар, пока данных нет (12 для источника по умолчанию, 0 - не задана)
func NewStore(sectionMax int) *Store {
	return &Store{
		blocks: make(map[slotKey][]domain.Block),
		rooms:  make(map[string]map[string]struct{}),
		weeks: domain.Bounds{
			Min: domain.DefaultWeekMin,
			Max: domain.DefaultWeekMax,
		},
		sections: domain.Bounds{
			Min: domain.DefaultSectionMin,
			Max: sectionMax,
		},
	}
}

// Insert добавляет занятие для каждой недели из weeks
//
// Пары из sections склеиваются в блоки одним проходом слева направо (см. mergeSections),
// поэтому sections ожидаются в неубывающем порядке. Блок с теми же (First, Length)
// не дублируется: к нему прибавляется count. Отрицательный count приводится к нулю.
// Пустой sections - no-op.
func (s *Store) Insert(site, room string, weeks []int, weekday int, sections []int, count int) {
	if len(sections) == 0 {
		return
	}
	if count < 0 {
		count = 0
	}

	merged := mergeSections(sections, count)

	for _, week := range weeks {
		s.widenWeeks(week)
		s.addRoom(site, room)

		key := slotKey{site: site, room: room, week: week, weekday: weekday}
		list := s.blocks[key]
		for _, block := range merged {
			list = accumulate(list, block)
		}
		s.blocks[key] = list
	}

	for _, section := range sections {
		if section < s.sections.Min {
			s.sections.Min = section
		}
		if section > s.sections.Max {
			s.sections.Max = section
		}
	}
}

// Query возвращает копию блоков для точного ключа
// Отсутствующий ключ на любом уровне дает пустой список
func (s *Store) Query(site, room string, week, weekday int) []domain.Block {
	list := s.blocks[slotKey{site: site, room: room, week: week, weekday: weekday}]
	result := make([]domain.Block, len(list))
	copy(result, list)
	return result
}

// Sites возвращает все площадки в произвольном порядке
func (s *Store) Sites() []string {
	sites := make([]string, 0, len(s.rooms))
	for site := range s.rooms {
		sites = append(sites, site)
	}
	return sites
}

// Rooms возвращает аудитории площадки в произвольном порядке
func (s *Store) Rooms(site string) []string {
	rooms := make([]string, 0, len(s.rooms[site]))
	for room := range s.rooms[site] {
		rooms = append(rooms, room)
	}
	return rooms
}

// RoomCount возвращает общее количество аудиторий по всем площадкам
func (s *Store) RoomCount() int {
	total := 0
	for _, rooms := range s.rooms {
		total += len(rooms)
	}
	return total
}

// WeekBounds возвращает диапазон недель
// Пока ничего не вставлено, возвращается {1, 0}
func (s *Store) WeekBounds() domain.Bounds {
	return s.weeks
}

// SectionBounds возвращает диапазон пар
func (s *Store) SectionBounds() domain.Bounds {
	return s.sections
}

func (s *Store) widenWeeks(week int) {
	if s.weeks.IsEmpty() {
		s.weeks = domain.Bounds{Min: week, Max: week}
		return
	}
	if week < s.weeks.Min {
		s.weeks.Min = week
	}
	if week > s.weeks.Max {
		s.weeks.Max = week
	}
}

func (s *Store) addRoom(site, room string) {
	rooms, ok := s.rooms[site]
	if !ok {
		rooms = make(map[string]struct{})
		s.rooms[site] = rooms
	}
	rooms[room] = struct{}{}
}

// accumulate суммирует count в существующий блок с тем же отрезком или добавляет новый
func accumulate(list []domain.Block, block domain.Block) []domain.Block {
	for i := range list {
		if list[i].SameSpan(block) {
			list[i].Count += block.Count
			return list
		}
	}
	return append(list, block)
}
