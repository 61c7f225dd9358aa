package remotecsv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassroomCheck/pkg/logger"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("人数,时间,地点,周次\n10,10102,A1,1\n"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, 1<<20, logger.NewNop())

	data, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "人数"))
}

func TestClient_Fetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, 1<<20, logger.NewNop())

	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Fetch_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, 1<<20, logger.NewNop())

	_, err := client.Fetch(context.Background())
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Fetch_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, 32, logger.NewNop())

	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestClient_Fetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, 1<<20, logger.NewNop())

	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
