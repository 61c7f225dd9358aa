package occupancy

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
)

func TestStore_Insert_MergesConsecutivePeriods(t *testing.T) {
	store := NewStore(0)

	store.Insert("教1", "101", []int{1, 2, 3}, 1, []int{1, 2, 3, 5}, 40)

	blocks := store.Query("教1", "101", 1, 1)
	require.Len(t, blocks, 2)
	assert.Equal(t, domain.Block{Count: 40, First: 1, Length: 3}, blocks[0])
	assert.Equal(t, domain.Block{Count: 40, First: 5, Length: 1}, blocks[1])

	for _, week := range []int{2, 3} {
		assert.Equal(t, blocks, store.Query("教1", "101", week, 1))
	}
	assert.Empty(t, store.Query("教1", "101", 4, 1))
}

func TestStore_Insert_CoversExactlyInputPeriods(t *testing.T) {
	cases := [][]int{
		{1},
		{1, 2},
		{1, 1, 2, 2, 3},
		{1, 3, 5, 7},
		{2, 3, 4, 8, 9, 11},
		{3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}

	for _, periods := range cases {
		store := NewStore(0)
		store.Insert("A", "1", []int{1}, 1, periods, 1)

		blocks := store.Query("A", "1", 1, 1)

		covered := make(map[int]int)
		for _, b := range blocks {
			require.GreaterOrEqual(t, b.Length, 1)
			for p := b.First; p <= b.Last(); p++ {
				covered[p]++
			}
		}

		want := make(map[int]int)
		for _, p := range periods {
			want[p] = 1
		}
		assert.Equal(t, want, covered, "periods %v", periods)
	}
}

func TestStore_Insert_AccumulatesSameBlock(t *testing.T) {
	store := NewStore(0)

	store.Insert("A", "1", []int{1}, 2, []int{3, 4, 6}, 30)
	store.Insert("A", "1", []int{1}, 2, []int{3, 4, 6}, 30)

	blocks := store.Query("A", "1", 1, 2)
	require.Len(t, blocks, 2)
	assert.Equal(t, domain.Block{Count: 60, First: 3, Length: 2}, blocks[0])
	assert.Equal(t, domain.Block{Count: 60, First: 6, Length: 1}, blocks[1])
}

func TestStore_Insert_DifferentSpanAppends(t *testing.T) {
	store := NewStore(0)

	store.Insert("A", "1", []int{1}, 1, []int{1, 2}, 10)
	store.Insert("A", "1", []int{1}, 1, []int{1, 2, 3}, 5)

	blocks := store.Query("A", "1", 1, 1)
	assert.Equal(t, []domain.Block{
		{Count: 10, First: 1, Length: 2},
		{Count: 5, First: 1, Length: 3},
	}, blocks)
}

func TestStore_Insert_ClampsNegativeCount(t *testing.T) {
	store := NewStore(0)

	store.Insert("A", "1", []int{1}, 1, []int{1}, -15)

	blocks := store.Query("A", "1", 1, 1)
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].Count)
}

func TestStore_Insert_EmptySectionsIsNoop(t *testing.T) {
	store := NewStore(0)

	store.Insert("A", "1", []int{5}, 1, nil, 10)

	assert.Empty(t, store.Sites())
	assert.Equal(t, domain.Bounds{Min: 1, Max: 0}, store.WeekBounds())
	assert.Equal(t, domain.Bounds{Min: 1, Max: 0}, store.SectionBounds())
}

func TestStore_Insert_EmptyWeeksKeepsIndexEmpty(t *testing.T) {
	store := NewStore(0)

	store.Insert("A", "1", nil, 1, []int{4, 5}, 10)

	assert.Empty(t, store.Sites())
	assert.True(t, store.WeekBounds().IsEmpty())
	// границы пар считаются по сырому списку, даже без недель
	assert.Equal(t, domain.Bounds{Min: 1, Max: 5}, store.SectionBounds())
}

func TestStore_Insert_UnsortedPeriodsAreOrderDependent(t *testing.T) {
	store := NewStore(0)

	store.Insert("A", "1", []int{1}, 1, []int{3, 2, 1, 5, 4}, 1)

	// 3 -> [3], 2 -> [2,3], 1 -> [1..3], 5 закрывает отрезок, 4 примыкает к 5 снизу
	assert.Equal(t, []domain.Block{
		{Count: 1, First: 1, Length: 3},
		{Count: 1, First: 4, Length: 2},
	}, store.Query("A", "1", 1, 1))

	store = NewStore(0)
	store.Insert("A", "1", []int{1}, 1, []int{1, 5, 2}, 1)

	// 2 не примыкает к [5], поэтому остается отдельным блоком
	assert.Equal(t, []domain.Block{
		{Count: 1, First: 1, Length: 1},
		{Count: 1, First: 5, Length: 1},
		{Count: 1, First: 2, Length: 1},
	}, store.Query("A", "1", 1, 1))
}

func TestStore_WeekBounds_TrackTrueMinMax(t *testing.T) {
	store := NewStore(0)
	assert.Equal(t, domain.Bounds{Min: 1, Max: 0}, store.WeekBounds())

	store.Insert("A", "1", []int{5, 7}, 1, []int{1}, 1)
	assert.Equal(t, domain.Bounds{Min: 5, Max: 7}, store.WeekBounds())

	store.Insert("A", "1", []int{3}, 1, []int{1}, 1)
	store.Insert("A", "1", []int{6}, 1, []int{1}, 1)
	assert.Equal(t, domain.Bounds{Min: 3, Max: 7}, store.WeekBounds())

	store.Insert("B", "2", []int{18}, 3, []int{1}, 1)
	assert.Equal(t, domain.Bounds{Min: 3, Max: 18}, store.WeekBounds())
}

func TestStore_SectionBounds_UsesDefaultMax(t *testing.T) {
	store := NewStore(domain.DefaultSectionMax)
	assert.Equal(t, domain.Bounds{Min: 1, Max: 12}, store.SectionBounds())

	store.Insert("A", "1", []int{1}, 1, []int{3, 4}, 1)
	assert.Equal(t, domain.Bounds{Min: 1, Max: 12}, store.SectionBounds())

	store.Insert("A", "1", []int{1}, 1, []int{13, 14}, 1)
	assert.Equal(t, domain.Bounds{Min: 1, Max: 14}, store.SectionBounds())
}

func TestStore_SitesAndRooms(t *testing.T) {
	store := NewStore(0)
	store.Insert("A", "101", []int{1}, 1, []int{1}, 1)
	store.Insert("A", "102", []int{1}, 1, []int{1}, 1)
	store.Insert("B", "", []int{1}, 1, []int{1}, 1)

	sites := store.Sites()
	sort.Strings(sites)
	assert.Equal(t, []string{"A", "B"}, sites)

	rooms := store.Rooms("A")
	sort.Strings(rooms)
	assert.Equal(t, []string{"101", "102"}, rooms)

	assert.Equal(t, []string{""}, store.Rooms("B"))
	assert.Empty(t, store.Rooms("missing"))
	assert.Equal(t, 3, store.RoomCount())
}

func TestStore_Query_MissReturnsEmpty(t *testing.T) {
	store := NewStore(0)
	store.Insert("A", "1", []int{1}, 1, []int{1}, 1)

	assert.NotNil(t, store.Query("nope", "1", 1, 1))
	assert.Empty(t, store.Query("nope", "1", 1, 1))
	assert.Empty(t, store.Query("A", "2", 1, 1))
	assert.Empty(t, store.Query("A", "1", 2, 1))
	assert.Empty(t, store.Query("A", "1", 1, 2))
}

func TestStore_Query_ReturnsCopy(t *testing.T) {
	store := NewStore(0)
	store.Insert("A", "1", []int{1}, 1, []int{1, 2}, 10)

	blocks := store.Query("A", "1", 1, 1)
	blocks[0].Count = 999

	assert.Equal(t, 10, store.Query("A", "1", 1, 1)[0].Count)
}

func TestMergeSections(t *testing.T) {
	tests := []struct {
		name     string
		sections []int
		want     []domain.Block
	}{
		{
			name:     "single",
			sections: []int{7},
			want:     []domain.Block{{Count: 2, First: 7, Length: 1}},
		},
		{
			name:     "duplicates inside run",
			sections: []int{1, 2, 2, 1, 3},
			want:     []domain.Block{{Count: 2, First: 1, Length: 3}},
		},
		{
			name:     "extends downwards",
			sections: []int{5, 4, 3},
			want:     []domain.Block{{Count: 2, First: 3, Length: 3}},
		},
		{
			name:     "gap splits",
			sections: []int{1, 2, 4, 5, 9},
			want: []domain.Block{
				{Count: 2, First: 1, Length: 2},
				{Count: 2, First: 4, Length: 2},
				{Count: 2, First: 9, Length: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeSections(tt.sections, 2))
		})
	}
}
