package get_rooms

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

func newRequest(site string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/x/rooms", nil)
	return mux.SetURLVars(req, map[string]string{"site": site})
}

func newService() *occupancy.Service {
	store := occupancyStore.NewStore(0)
	store.Insert("教", "1102", []int{1}, 1, []int{1}, 1)
	store.Insert("教", "1101", []int{1}, 1, []int{1}, 1)
	store.Insert("教", "", []int{1}, 1, []int{1}, 1)

	svc := occupancy.NewService(logger.NewNop())
	svc.Replace(&occupancy.Dataset{Source: domain.Source{ID: "u"}, Store: store})
	return svc
}

func TestHandle_SortedRooms(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(newService(), logger.NewNop()).Handle(rec, newRequest("教"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"site":"教","rooms":["","1101","1102"]}`, rec.Body.String())
}

func TestHandle_UnknownSiteIsEmpty(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(newService(), logger.NewNop()).Handle(rec, newRequest("理"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"site":"理","rooms":[]}`, rec.Body.String())
}

func TestHandle_NoDataset(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(occupancy.NewService(logger.NewNop()), logger.NewNop()).Handle(rec, newRequest("教"))

	assert.Equal(t, http.StatusConflict, rec.Code)
}
