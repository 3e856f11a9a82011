package repository

import (
	"strings"

	"uni_archive_backend/internal/model"

	"gorm.io/gorm"
)

type LibraryRepository struct {
	DB *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) *LibraryRepository {
	return &LibraryRepository{DB: db}
}

// PinSubject is idempotent: pinning an already-pinned code is a no-op.
func (r *LibraryRepository) PinSubject(email, code, name string) (*model.PinnedSubject, error) {
	pin := model.PinnedSubject{
		UserEmail: email,
		Code:      strings.ToUpper(code),
		Name:      name,
	}
	err := r.DB.Where("user_email = ? AND code = ?", email, pin.Code).
		FirstOrCreate(&pin).Error
	if err != nil {
		return nil, err
	}
	return &pin, nil
}

func (r *LibraryRepository) UnpinSubject(email, code string) error {
	return r.DB.Where("user_email = ? AND code = ?", email, strings.ToUpper(code)).
		Delete(&model.PinnedSubject{}).Error
}

func (r *LibraryRepository) ListPins(email string) ([]model.PinnedSubject, error) {
	var pins []model.PinnedSubject
	err := r.DB.Where("user_email = ?", email).
		Order("created_at ASC").
		Find(&pins).Error
	return pins, err
}

func (r *LibraryRepository) SaveResource(email, resourceID string) (*model.SavedResource, error) {
	saved := model.SavedResource{
		UserEmail:  email,
		ResourceID: resourceID,
	}
	err := r.DB.Where("user_email = ? AND resource_id = ?", email, resourceID).
		FirstOrCreate(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *LibraryRepository) UnsaveResource(email, resourceID string) error {
	return r.DB.Where("user_email = ? AND resource_id = ?", email, resourceID).
		Delete(&model.SavedResource{}).Error
}

func (r *LibraryRepository) ListSaved(email string) ([]model.SavedResource, error) {
	var saved []model.SavedResource
	err := r.DB.Where("user_email = ?", email).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}
