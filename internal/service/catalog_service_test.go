package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"uni_archive_backend/internal/config"
	"uni_archive_backend/internal/model"
	"uni_archive_backend/internal/repository"
	"uni_archive_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResourceStore is an in-memory ResourceStore. All mutations go through
// the mutex so concurrent counter tests measure real interleaving.
type fakeResourceStore struct {
	mu         sync.Mutex
	resources  map[string]*model.Resource
	comments   []model.Comment
	lastFilter repository.ResourceFilter
	listResult []model.Resource
}

func newFakeResourceStore() *fakeResourceStore {
	return &fakeResourceStore{resources: map[string]*model.Resource{}}
}

func (f *fakeResourceStore) Create(resource *model.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if resource.ID == "" {
		resource.ID = model.GenerateUUID()
	}
	f.resources[resource.ID] = resource
	return nil
}

func (f *fakeResourceStore) FindByID(id string) (*model.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resource, ok := f.resources[id]
	if !ok {
		return nil, util.ErrResourceNotFound
	}
	copied := *resource
	return &copied, nil
}

func (f *fakeResourceStore) List(filter repository.ResourceFilter) ([]model.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	return f.listResult, nil
}

func (f *fakeResourceStore) IncrementCounter(id, column string, delta int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resource, ok := f.resources[id]
	if !ok {
		return 0, util.ErrResourceNotFound
	}
	switch column {
	case "views":
		resource.Views += delta
		return resource.Views, nil
	case "downloads":
		resource.Downloads += delta
		return resource.Downloads, nil
	case "upvotes":
		resource.Upvotes += delta
		return resource.Upvotes, nil
	}
	return 0, errors.New("unknown column " + column)
}

func (f *fakeResourceStore) AddComment(comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments = append(f.comments, *comment)
	return nil
}

func newTestCatalog(t *testing.T, store ResourceStore) *CatalogService {
	t.Helper()
	storage := NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
	})
	return NewCatalogService(store, storage)
}

// fileUpload builds a real multipart file header carrying the given body.
func fileUpload(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func pdfUpload(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()
	return fileUpload(t, filename, []byte("%PDF-1.4 test payload"))
}

func TestCreateResourceNormalizesCourseAndSlot(t *testing.T) {
	store := newFakeResourceStore()
	catalog := newTestCatalog(t, store)

	resource, err := catalog.CreateResource(context.Background(), pdfUpload(t, "notes.pdf"), UploadMetadata{
		Title:      "DSA Module 3",
		CourseCode: "cse3001",
		Slot:       "a1",
		Type:       "Notes",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "CSE3001", resource.CourseCode)
	assert.Equal(t, "A1", resource.Slot)
	assert.Equal(t, "Anonymous", resource.Author)
	assert.NotEmpty(t, resource.PDFURL)
	assert.NotNil(t, resource.Comments)
	assert.Empty(t, resource.Comments)
}

func TestCreateResourceStoresFullFileContent(t *testing.T) {
	store := newFakeResourceStore()
	dir := t.TempDir()
	storage := NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: dir},
	})
	catalog := NewCatalogService(store, storage)

	// Larger than the 512-byte MIME sniff window; a missing rewind after
	// sniffing would truncate the stored copy.
	payload := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("a"), 2048)...)

	resource, err := catalog.CreateResource(context.Background(), fileUpload(t, "big.pdf", payload), UploadMetadata{
		Title:      "DSA Module 3",
		CourseCode: "CSE3001",
		Slot:       "A1",
		Type:       "Notes",
	}, "")
	require.NoError(t, err)

	relative := strings.TrimPrefix(resource.PDFURL, "/uploads/")
	stored, err := os.ReadFile(filepath.Join(dir, relative))
	require.NoError(t, err)
	assert.Equal(t, payload, stored)
}

func TestCreateResourceRejectsUnknownType(t *testing.T) {
	catalog := newTestCatalog(t, newFakeResourceStore())

	_, err := catalog.CreateResource(context.Background(), pdfUpload(t, "notes.pdf"), UploadMetadata{
		Title:      "DSA Module 3",
		CourseCode: "CSE3001",
		Slot:       "A1",
		Type:       "Podcast",
	}, "")
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestCreateResourceRequiresTitle(t *testing.T) {
	catalog := newTestCatalog(t, newFakeResourceStore())

	_, err := catalog.CreateResource(context.Background(), pdfUpload(t, "notes.pdf"), UploadMetadata{
		CourseCode: "CSE3001",
		Slot:       "A1",
		Type:       "Notes",
	}, "")
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestCreateResourceRejectsDisallowedExtension(t *testing.T) {
	catalog := newTestCatalog(t, newFakeResourceStore())

	_, err := catalog.CreateResource(context.Background(), pdfUpload(t, "payload.exe"), UploadMetadata{
		Title:      "DSA Module 3",
		CourseCode: "CSE3001",
		Slot:       "A1",
		Type:       "Notes",
	}, "")
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestDeriveQualityScoreIsServerControlled(t *testing.T) {
	bare := deriveQualityScore(0, UploadMetadata{})
	assert.Equal(t, 50, bare)

	rich := deriveQualityScore(100, UploadMetadata{
		Topics:      []string{"trees", "graphs", "heaps", "hashing", "sorting"},
		Description: "full module coverage",
		Professor:   "Dr. Kumar",
	})
	assert.Equal(t, 100, rich)

	mid := deriveQualityScore(80, UploadMetadata{Topics: []string{"trees"}})
	assert.Equal(t, 50+20+3, mid)
}

func TestListResourcesResolvesAllSentinel(t *testing.T) {
	store := newFakeResourceStore()
	catalog := newTestCatalog(t, store)

	_, err := catalog.ListResources(FilterAll, FilterAll, "", "")
	require.NoError(t, err)
	assert.Equal(t, repository.ResourceFilter{}, store.lastFilter)

	_, err = catalog.ListResources("Notes", "A1", "cse", "graphs")
	require.NoError(t, err)
	assert.Equal(t, repository.ResourceFilter{
		Type:   "Notes",
		Slot:   "A1",
		Course: "cse",
		Search: "graphs",
	}, store.lastFilter)
}

func TestListResourcesReturnsEmptySliceNotNil(t *testing.T) {
	store := newFakeResourceStore()
	catalog := newTestCatalog(t, store)

	resources, err := catalog.ListResources("", "", "", "")
	require.NoError(t, err)
	assert.NotNil(t, resources)
	assert.Empty(t, resources)
}

func TestInteractUpvoteDownvoteRoundTrip(t *testing.T) {
	store := newFakeResourceStore()
	catalog := newTestCatalog(t, store)
	resource := &model.Resource{Title: "t"}
	require.NoError(t, store.Create(resource))

	key, count, err := catalog.Interact(resource.ID, "upvote")
	require.NoError(t, err)
	assert.Equal(t, "upvotes", key)
	assert.Equal(t, 1, count)

	key, count, err = catalog.Interact(resource.ID, "downvote")
	require.NoError(t, err)
	assert.Equal(t, "downvotes", key)
	assert.Equal(t, 0, count)

	// downvotes decrement the shared counter, so it can go negative
	_, count, err = catalog.Interact(resource.ID, "downvote")
	require.NoError(t, err)
	assert.Equal(t, -1, count)
}

func TestInteractRejectsUnknownAction(t *testing.T) {
	store := newFakeResourceStore()
	catalog := newTestCatalog(t, store)
	resource := &model.Resource{Title: "t"}
	require.NoError(t, store.Create(resource))

	_, _, err := catalog.Interact(resource.ID, "boost")
	assert.ErrorIs(t, err, util.ErrInvalidAction)
	assert.Zero(t, store.resources[resource.ID].Views)
}

func TestInteractUnknownResource(t *testing.T) {
	catalog := newTestCatalog(t, newFakeResourceStore())

	_, _, err := catalog.Interact("missing", "view")
	assert.ErrorIs(t, err, util.ErrResourceNotFound)
}

func TestInteractConcurrentViewsAllLand(t *testing.T) {
	store := newFakeResourceStore()
	catalog := newTestCatalog(t, store)
	resource := &model.Resource{Title: "t"}
	require.NoError(t, store.Create(resource))

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _, err := catalog.Interact(resource.ID, "view")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, store.resources[resource.ID].Views)
}

func TestAddCommentMarksOriginalPoster(t *testing.T) {
	store := newFakeResourceStore()
	catalog := newTestCatalog(t, store)
	resource := &model.Resource{Title: "t", Author: "priya.s2022"}
	require.NoError(t, store.Create(resource))

	comment, err := catalog.AddComment(resource.ID, "priya.s2022", "  updated with module 5  ")
	require.NoError(t, err)
	assert.True(t, comment.IsOp)
	assert.Equal(t, "updated with module 5", comment.Text)
	assert.NotEmpty(t, comment.ID)

	other, err := catalog.AddComment(resource.ID, "rahul.k2023", "thanks!")
	require.NoError(t, err)
	assert.False(t, other.IsOp)
	assert.Equal(t, "rahul.k2023", other.Author)
}

func TestAddCommentDefaultsAuthor(t *testing.T) {
	store := newFakeResourceStore()
	catalog := newTestCatalog(t, store)
	resource := &model.Resource{Title: "t", Author: "someone"}
	require.NoError(t, store.Create(resource))

	comment, err := catalog.AddComment(resource.ID, "", "nice notes")
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", comment.Author)
}

func TestAddCommentRejectsEmptyText(t *testing.T) {
	store := newFakeResourceStore()
	catalog := newTestCatalog(t, store)
	resource := &model.Resource{Title: "t"}
	require.NoError(t, store.Create(resource))

	_, err := catalog.AddComment(resource.ID, "a", "   ")
	assert.ErrorIs(t, err, util.ErrEmptyComment)
	assert.Empty(t, store.comments)
}

func TestAddCommentUnknownResource(t *testing.T) {
	catalog := newTestCatalog(t, newFakeResourceStore())

	_, err := catalog.AddComment("missing", "a", "text")
	assert.ErrorIs(t, err, util.ErrResourceNotFound)
}
