package service

import (
	"uni_archive_backend/internal/model"
)

// LibraryStore persists a verified user's pins and saved resources.
type LibraryStore interface {
	PinSubject(email, code, name string) (*model.PinnedSubject, error)
	UnpinSubject(email, code string) error
	ListPins(email string) ([]model.PinnedSubject, error)
	SaveResource(email, resourceID string) (*model.SavedResource, error)
	UnsaveResource(email, resourceID string) error
	ListSaved(email string) ([]model.SavedResource, error)
}

// CourseCounter supplies the live per-course resource count for pins.
type CourseCounter interface {
	CountByCourse(courseCode string) (int64, error)
	FindByID(id string) (*model.Resource, error)
}

type LibraryService struct {
	Store     LibraryStore
	Resources CourseCounter
}

func NewLibraryService(store LibraryStore, resources CourseCounter) *LibraryService {
	return &LibraryService{Store: store, Resources: resources}
}

func (s *LibraryService) Pin(email, code, name string) (*model.PinnedSubject, error) {
	pin, err := s.Store.PinSubject(email, code, name)
	if err != nil {
		return nil, err
	}
	pin.ResourcesCount, _ = s.Resources.CountByCourse(pin.Code)
	return pin, nil
}

func (s *LibraryService) Unpin(email, code string) error {
	return s.Store.UnpinSubject(email, code)
}

// Pins returns the shelf with live resource counts per pinned course.
func (s *LibraryService) Pins(email string) ([]model.PinnedSubject, error) {
	pins, err := s.Store.ListPins(email)
	if err != nil {
		return nil, err
	}
	for i := range pins {
		pins[i].ResourcesCount, _ = s.Resources.CountByCourse(pins[i].Code)
	}
	if pins == nil {
		pins = []model.PinnedSubject{}
	}
	return pins, nil
}

// Save bookmarks a resource; the resource must exist.
func (s *LibraryService) Save(email, resourceID string) (*model.SavedResource, error) {
	if _, err := s.Resources.FindByID(resourceID); err != nil {
		return nil, err
	}
	return s.Store.SaveResource(email, resourceID)
}

func (s *LibraryService) Unsave(email, resourceID string) error {
	return s.Store.UnsaveResource(email, resourceID)
}

// Saved returns the bookmarked resources, skipping any whose target has
// vanished from the store.
func (s *LibraryService) Saved(email string) ([]model.Resource, error) {
	saved, err := s.Store.ListSaved(email)
	if err != nil {
		return nil, err
	}

	resources := make([]model.Resource, 0, len(saved))
	for _, entry := range saved {
		resource, err := s.Resources.FindByID(entry.ResourceID)
		if err != nil {
			continue
		}
		resources = append(resources, *resource)
	}
	return resources, nil
}
