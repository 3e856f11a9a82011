package model

// PinnedSubject is a course a verified user keeps on their library shelf.
type PinnedSubject struct {
	BaseModel
	UserEmail string `gorm:"size:100;not null;uniqueIndex:idx_pin_user_code" json:"-"`
	Code      string `gorm:"size:20;not null;uniqueIndex:idx_pin_user_code" json:"code"`
	Name      string `gorm:"size:100" json:"name"`

	// Live per-course resource count, filled in by the library service.
	ResourcesCount int64 `gorm:"-" json:"resourcesCount"`
}

func (PinnedSubject) TableName() string {
	return "pinned_subjects"
}

// SavedResource bookmarks a resource in a verified user's library.
type SavedResource struct {
	BaseModel
	UserEmail  string `gorm:"size:100;not null;uniqueIndex:idx_save_user_res" json:"-"`
	ResourceID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_save_user_res" json:"resourceId"`
}

func (SavedResource) TableName() string {
	return "saved_resources"
}
