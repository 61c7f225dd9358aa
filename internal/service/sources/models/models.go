package models

import (
	"time"

	"github.com/m04kA/SMC-ClassroomCheck/internal/domain"
)

// SourceResponse источник расписания
type SourceResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Kind       string     `json:"kind"`
	UploadedAt *time.Time `json:"uploadedAt,omitempty"`
}

// SourceListResponse список источников
type SourceListResponse struct {
	Sources []SourceResponse `json:"sources"`
}

// FromDomainSource конвертирует domain модель в DTO
func FromDomainSource(s domain.Source) SourceResponse {
	return SourceResponse{
		ID:   s.ID,
		Name: s.Name,
		Kind: string(s.Kind),
	}
}

// FromDomainUpload конвертирует загрузку в DTO
func FromDomainUpload(u *domain.Upload) SourceResponse {
	uploadedAt := u.UploadedAt
	return SourceResponse{
		ID:         u.ID,
		Name:       u.Name,
		Kind:       string(domain.SourceUpload),
		UploadedAt: &uploadedAt,
	}
}
