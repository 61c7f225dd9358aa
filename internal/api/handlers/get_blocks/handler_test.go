package get_blocks

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
	occupancyStore "github.com/m04kA/SMC-ClassroomCheck/internal/infra/storage/occupancy"
	"github.com/m04kA/SMC-ClassroomCheck/internal/service/occupancy"
	"github.com/m04kA/SMC-ClassroomCheck/pkg/logger"
)

func newRequest(site, query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/x/blocks?"+query, nil)
	return mux.SetURLVars(req, map[string]string{"site": site})
}

func newService() *occupancy.Service {
	store := occupancyStore.NewStore(0)
	store.Insert("教", "1101", []int{3}, 2, []int{1, 2, 5}, 40)
	store.Insert("教", "", []int{3}, 2, []int{4}, 6)

	svc := occupancy.NewService(logger.NewNop())
	svc.Replace(&occupancy.Dataset{Source: domain.Source{ID: "u"}, Store: store})
	return svc
}

func TestHandle_OK(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(newService(), logger.NewNop()).Handle(rec, newRequest("教", "room=1101&week=3&day=2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"site": "教", "room": "1101", "week": 3, "weekday": 2,
		"blocks": [
			{"count": 40, "first": 1, "length": 2},
			{"count": 40, "first": 5, "length": 1}
		]
	}`, rec.Body.String())
}

func TestHandle_EmptyRoom(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(newService(), logger.NewNop()).Handle(rec, newRequest("教", "week=3&day=2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"site": "教", "room": "", "week": 3, "weekday": 2,
		"blocks": [{"count": 6, "first": 4, "length": 1}]
	}`, rec.Body.String())
}

func TestHandle_MissIsEmptyList(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(newService(), logger.NewNop()).Handle(rec, newRequest("教", "room=1101&week=9&day=2"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"blocks":[]`)
}

func TestHandle_BadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing week", query: "room=1101&day=2"},
		{name: "bad week", query: "room=1101&week=three&day=2"},
		{name: "missing day", query: "room=1101&week=3"},
		{name: "bad day", query: "room=1101&week=3&day=mon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(newService(), logger.NewNop()).Handle(rec, newRequest("教", tt.query))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_NoDataset(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(occupancy.NewService(logger.NewNop()), logger.NewNop()).
		Handle(rec, newRequest("教", "week=1&day=1"))

	assert.Equal(t, http.StatusConflict, rec.Code)
}
