package repository

import (
	"uni_archive_backend/internal/model"

	"gorm.io/gorm"
)

// CourseStatsRepository reads the precomputed per-course snapshots. The
// collection is populated by seeding; no endpoint mutates it.
type CourseStatsRepository struct {
	DB *gorm.DB
}

func NewCourseStatsRepository(db *gorm.DB) *CourseStatsRepository {
	return &CourseStatsRepository{DB: db}
}

func (r *CourseStatsRepository) FindAll() ([]model.CourseStats, error) {
	var stats []model.CourseStats
	err := r.DB.Order("course_code ASC").Find(&stats).Error
	return stats, err
}
