package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"uni_archive_backend/internal/model"
	"uni_archive_backend/internal/repository"
	"uni_archive_backend/internal/util"
)

// ResourceStore is the persistence surface the catalog needs. Implemented
// by repository.ResourceRepository; tests substitute an in-memory store.
type ResourceStore interface {
	Create(resource *model.Resource) error
	FindByID(id string) (*model.Resource, error)
	List(filter repository.ResourceFilter) ([]model.Resource, error)
	IncrementCounter(id, column string, delta int) (int, error)
	AddComment(comment *model.Comment) error
}

// FilterAll is the sentinel meaning "no filter" for type and slot.
const FilterAll = "ALL"

type CatalogService struct {
	Store   ResourceStore
	Storage *StorageService
}

func NewCatalogService(store ResourceStore, storage *StorageService) *CatalogService {
	return &CatalogService{
		Store:   store,
		Storage: storage,
	}
}

// UploadMetadata is the "data" part of the multipart upload form.
type UploadMetadata struct {
	Title        string   `json:"title"`
	CourseCode   string   `json:"courseCode"`
	Slot         string   `json:"slot"`
	Type         string   `json:"type"`
	Topics       []string `json:"topics"`
	Completeness int      `json:"completeness"`
	Professor    string   `json:"professor"`
	Semester     string   `json:"semester"`
	Year         string   `json:"year"`
	Description  string   `json:"description"`
}

// CreateResource validates metadata and the file together, stores the file,
// and persists the record. courseCode and slot are upper-cased on the way
// in; type must be one of the fixed enumeration.
func (s *CatalogService) CreateResource(ctx context.Context, file *multipart.FileHeader, meta UploadMetadata, author string) (*model.Resource, error) {
	if strings.TrimSpace(meta.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrValidation)
	}
	if strings.TrimSpace(meta.CourseCode) == "" {
		return nil, fmt.Errorf("%w: courseCode is required", util.ErrValidation)
	}
	if strings.TrimSpace(meta.Slot) == "" {
		return nil, fmt.Errorf("%w: slot is required", util.ErrValidation)
	}
	if !model.ResourceType(meta.Type).Valid() {
		return nil, fmt.Errorf("%w: unknown resource type %q", util.ErrValidation, meta.Type)
	}

	url, err := s.storeFile(ctx, file)
	if err != nil {
		return nil, err
	}

	if author == "" {
		author = "Anonymous"
	}

	completeness := meta.Completeness
	if completeness < 0 {
		completeness = 0
	}
	if completeness > 100 {
		completeness = 100
	}

	resource := &model.Resource{
		Title:        strings.TrimSpace(meta.Title),
		CourseCode:   strings.ToUpper(strings.TrimSpace(meta.CourseCode)),
		Slot:         strings.ToUpper(strings.TrimSpace(meta.Slot)),
		Type:         model.ResourceType(meta.Type),
		Topics:       meta.Topics,
		Completeness: completeness,
		QualityScore: deriveQualityScore(completeness, meta),
		Author:       author,
		Professor:    meta.Professor,
		Semester:     meta.Semester,
		Year:         meta.Year,
		Description:  meta.Description,
		PDFURL:       url,
	}

	if err := s.Store.Create(resource); err != nil {
		return nil, err
	}
	if resource.Comments == nil {
		resource.Comments = []model.Comment{}
	}
	return resource, nil
}

// storeFile checks extension, size and sniffed content before handing the
// upload to the storage provider.
func (s *CatalogService) storeFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext, err := util.ValidateUploadExtension(file.Filename)
	if err != nil {
		return "", fmt.Errorf("%w: %s", util.ErrValidation, err)
	}
	if file.Size > util.MaxUploadSize {
		return "", fmt.Errorf("%w: %s", util.ErrValidation, util.ErrFileTooLarge)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	allowed := []string{
		util.MimePDF,
		util.MimeImage,
		util.MimeDoc,
		util.MimeDocx,
		util.MimeZip,
		util.MimeOctetStream,
	}
	if _, err := util.ValidateMimeType(src, allowed); err != nil {
		return "", fmt.Errorf("%w: %s", util.ErrValidation, err)
	}
	// Rewind past the sniffed bytes; storing from the current offset would
	// truncate the file.
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	filename := "resources/" + time.Now().Format("20060102150405") + "_" + util.GenerateRandomString(6) + ext
	return s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
}

// deriveQualityScore assigns the 0-100 quality value at creation: baseline
// plus completeness and metadata richness, never client-supplied.
func deriveQualityScore(completeness int, meta UploadMetadata) int {
	score := 50 + completeness/4
	if len(meta.Topics) > 0 {
		bonus := len(meta.Topics) * 3
		if bonus > 12 {
			bonus = 12
		}
		score += bonus
	}
	if strings.TrimSpace(meta.Description) != "" {
		score += 7
	}
	if strings.TrimSpace(meta.Professor) != "" {
		score += 6
	}
	if score > 100 {
		score = 100
	}
	return score
}

// ListResources resolves the "ALL" sentinels and queries the store. Absent
// or "ALL" values are no-ops, never literal matches.
func (s *CatalogService) ListResources(resType, slot, course, search string) ([]model.Resource, error) {
	filter := repository.ResourceFilter{
		Course: strings.TrimSpace(course),
		Search: strings.TrimSpace(search),
	}
	if resType != "" && resType != FilterAll {
		filter.Type = resType
	}
	if slot != "" && slot != FilterAll {
		filter.Slot = slot
	}

	resources, err := s.Store.List(filter)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []model.Resource{}
	}
	return resources, nil
}

func (s *CatalogService) GetResource(id string) (*model.Resource, error) {
	return s.Store.FindByID(id)
}

// interactions maps an action to the counter column it mutates and the
// delta. Downvote decrements the upvote counter rather than tracking its
// own count, so upvotes can go negative.
var interactions = map[string]struct {
	column string
	delta  int
}{
	"view":     {"views", 1},
	"download": {"downloads", 1},
	"upvote":   {"upvotes", 1},
	"downvote": {"upvotes", -1},
}

// Interact applies one counter mutation and returns the response key
// ("<action>s") together with the new count.
func (s *CatalogService) Interact(id, action string) (string, int, error) {
	op, ok := interactions[action]
	if !ok {
		return "", 0, util.ErrInvalidAction
	}

	count, err := s.Store.IncrementCounter(id, op.column, op.delta)
	if err != nil {
		return "", 0, err
	}
	return action + "s", count, nil
}

// AddComment appends to a resource's thread. isOp is always computed here
// from the parent resource's author, never taken from the client.
func (s *CatalogService) AddComment(resourceID, author, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, util.ErrEmptyComment
	}

	resource, err := s.Store.FindByID(resourceID)
	if err != nil {
		return nil, err
	}

	if author == "" {
		author = "Anonymous"
	}

	now := time.Now()
	comment := &model.Comment{
		// Creation-time-derived id; nanoseconds keep it unique within the
		// resource even for rapid successive comments.
		ID:         strconv.FormatInt(now.UnixNano(), 10),
		ResourceID: resource.ID,
		Author:     author,
		Text:       text,
		Timestamp:  now,
		IsOp:       author == resource.Author,
	}

	if err := s.Store.AddComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}
