package repository

import (
	"errors"
	"strings"

	"uni_archive_backend/internal/model"
	"uni_archive_backend/internal/util"

	"gorm.io/gorm"
)

// ResourceFilter is the normalized query over the resource store. Empty
// fields are no-ops; the service layer resolves the "ALL" sentinel before
// the filter reaches here.
type ResourceFilter struct {
	Type   string
	Slot   string
	Course string
	Search string
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied input so
// "%" or "_" in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) FindByID(id string) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp DESC, id DESC")
	}).First(&resource, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// List returns resources matching the filter, newest first. Free-text search
// matches any token against title, course code, topics or professor.
func (r *ResourceRepository) List(filter ResourceFilter) ([]model.Resource, error) {
	query := r.DB.Model(&model.Resource{})

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Slot != "" {
		query = query.Where("slot = ?", filter.Slot)
	}
	if filter.Course != "" {
		query = query.Where("course_code LIKE ?", likePattern(strings.ToUpper(filter.Course)))
	}

	if tokens := strings.Fields(filter.Search); len(tokens) > 0 {
		var clauses []string
		var args []interface{}
		for _, token := range tokens {
			pattern := likePattern(token)
			clauses = append(clauses, "(title LIKE ? OR course_code LIKE ? OR topics LIKE ? OR professor LIKE ?)")
			args = append(args, pattern, pattern, pattern, pattern)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	var resources []model.Resource
	err := query.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC, id DESC")
		}).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

// counterColumns whitelists the independently mutable counters.
var counterColumns = map[string]bool{
	"views":     true,
	"downloads": true,
	"upvotes":   true,
}

// IncrementCounter applies an atomic "column = column + delta" update and
// returns the new value. The single-statement update is what makes
// concurrent increments on the same resource lose no updates.
func (r *ResourceRepository) IncrementCounter(id, column string, delta int) (int, error) {
	if !counterColumns[column] {
		return 0, util.ErrInvalidAction
	}

	res := r.DB.Model(&model.Resource{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, util.ErrResourceNotFound
	}

	var value int
	err := r.DB.Model(&model.Resource{}).
		Where("id = ?", id).
		Select(column).
		Scan(&value).Error
	return value, err
}

func (r *ResourceRepository) AddComment(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *ResourceRepository) CountByCourse(courseCode string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Resource{}).
		Where("course_code = ?", strings.ToUpper(courseCode)).
		Count(&count).Error
	return count, err
}

// TopSlots groups live resources by slot. Ties in resource count break by
// slot name ascending so the ordering is deterministic.
func (r *ResourceRepository) TopSlots(limit int) ([]model.SlotAggregate, error) {
	var aggs []model.SlotAggregate
	err := r.DB.Model(&model.Resource{}).
		Select("slot, COUNT(*) AS resources, AVG(quality_score) AS avg_quality").
		Group("slot").
		Order("resources DESC, slot ASC").
		Limit(limit).
		Scan(&aggs).Error
	return aggs, err
}
