package upload

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
)

// Repository in-memory хранилище загруженных CSV-файлов
// Повторная загрузка с тем же именем заменяет содержимое и сохраняет ID
type Repository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.Upload
	byName map[string]string
	now    func() time.Time
}

// NewRepository создает новый экземпляр репозитория загрузок
func NewRepository() *Repository {
	return &Repository{
		byID:   make(map[string]*domain.Upload),
		byName: make(map[string]string),
		now:    time.Now,
	}
}

// Save сохраняет файл под именем name
func (r *Repository) Save(ctx context.Context, name string, data []byte) (*domain.Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byName[name]
	if !ok {
		id = uuid.NewString()
		r.byName[name] = id
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	upload := &domain.Upload{
		ID:         id,
		Name:       name,
		Data:       stored,
		UploadedAt: r.now(),
	}
	r.byID[id] = upload

	return cloneUpload(upload), nil
}

// GetByID возвращает загруженный файл по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	upload, ok := r.byID[id]
	if !ok {
		return nil, ErrUploadNotFound
	}
	return cloneUpload(upload), nil
}

// List возвращает загрузки в порядке загрузки (без содержимого)
func (r *Repository) List(ctx context.Context) ([]*domain.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uploads := make([]*domain.Upload, 0, len(r.byID))
	for _, upload := range r.byID {
		uploads = append(uploads, &domain.Upload{
			ID:         upload.ID,
			Name:       upload.Name,
			UploadedAt: upload.UploadedAt,
		})
	}

	sort.Slice(uploads, func(i, j int) bool {
		if uploads[i].UploadedAt.Equal(uploads[j].UploadedAt) {
			return uploads[i].Name < uploads[j].Name
		}
		return uploads[i].UploadedAt.Before(uploads[j].UploadedAt)
	})

	return uploads, nil
}

func cloneUpload(u *domain.Upload) *domain.Upload {
	data := make([]byte, len(u.Data))
	copy(data, u.Data)
	return &domain.Upload{
		ID:         u.ID,
		Name:       u.Name,
		Data:       data,
		UploadedAt: u.UploadedAt,
	}
}
