package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/extract"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
)

type fakeDocRepo struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*domain.Document
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: map[uuid.UUID]*domain.Document{}}
}

func (r *fakeDocRepo) Create(_ context.Context, doc *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc.ID = uuid.New()
	doc.CreatedAt = time.Now().UTC()
	doc.UpdatedAt = doc.CreatedAt
	if doc.Status == "" {
		doc.Status = domain.ExtractionPending
	}
	stored := *doc
	r.docs[doc.ID] = &stored
	return nil
}

func (r *fakeDocRepo) GetByID(_ context.Context, orgID, docID uuid.UUID) (*domain.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok || doc.OrganizationID != orgID {
		return nil, domain.ErrDocumentNotFound
	}
	copied := *doc
	return &copied, nil
}

func (r *fakeDocRepo) ListByOrganization(_ context.Context, orgID uuid.UUID, docType string, _, _ int) ([]domain.Document, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Document
	for _, doc := range r.docs {
		if doc.OrganizationID != orgID {
			continue
		}
		if docType != "" && string(doc.DocumentType) != docType {
			continue
		}
		out = append(out, *doc)
	}
	return out, len(out), nil
}

func (r *fakeDocRepo) UpdateStatus(_ context.Context, docID uuid.UUID, status domain.ExtractionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return domain.ErrDocumentNotFound
	}
	doc.Status = status
	return nil
}

func (r *fakeDocRepo) SaveResult(_ context.Context, docID uuid.UUID, input port.SaveResultInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok {
		return domain.ErrDocumentNotFound
	}
	doc.Status = input.Status
	doc.ExtractedData = input.ExtractedData
	doc.ValidationErrors = input.ValidationErrors
	doc.ValidationWarnings = input.ValidationWarnings
	doc.IsValid = input.IsValid
	doc.Completeness = input.Completeness
	doc.ModelUsed = input.ModelUsed
	doc.ExtractedAt = input.ExtractedAt
	return nil
}

func (r *fakeDocRepo) Delete(_ context.Context, orgID, docID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[docID]
	if !ok || doc.OrganizationID != orgID {
		return domain.ErrDocumentNotFound
	}
	delete(r.docs, docID)
	return nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[input.Key] = data
	return &port.UploadOutput{Location: "s3://" + input.Bucket + "/" + input.Key}, nil
}

func (s *fakeStorage) Download(_ context.Context, _, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, domain.ErrRawTextMissing
	}
	return data, nil
}

func (s *fakeStorage) Delete(_ context.Context, _, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

type fakeCache struct {
	mu sync.Mutex
	m  map[string]interface{}
}

func newFakeCache() *fakeCache { return &fakeCache{m: map[string]interface{}{}} }

func (c *fakeCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *fakeCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
}

func (c *fakeCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}

type stubModel struct{}

func (stubModel) Generate(context.Context, port.GenerateRequest) (string, error) {
	return "{}", nil
}

func newTestDocumentService(repo *fakeDocRepo, storage *fakeStorage, cache *fakeCache) DocumentService {
	orch := extract.NewOrchestrator(stubModel{}, &config.ExtractConfig{Policy: "sequential"})
	return NewDocumentService(repo, storage, orch, cache,
		&config.S3Config{Bucket: "test-bucket"},
		&config.ExtractConfig{RequestTimeoutSecs: 30},
		"gpt-4o")
}

func TestDocumentService_CreateRejectsBadInput(t *testing.T) {
	svc := newTestDocumentService(newFakeDocRepo(), newFakeStorage(), newFakeCache())
	orgID, userID := uuid.New(), uuid.New()

	_, err := svc.Create(context.Background(), orgID, userID, CreateDocumentInput{
		DocumentType: "bill_of_lading",
		RawText:      "some text",
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedDocumentType)

	_, err = svc.Create(context.Background(), orgID, userID, CreateDocumentInput{
		DocumentType: "commercial_invoice",
		RawText:      "   \n\t  ",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestDocumentService_CreateRunsExtraction(t *testing.T) {
	repo := newFakeDocRepo()
	storage := newFakeStorage()
	svc := newTestDocumentService(repo, storage, newFakeCache())
	orgID, userID := uuid.New(), uuid.New()

	doc, err := svc.Create(context.Background(), orgID, userID, CreateDocumentInput{
		DocumentType: "packing_list",
		FileName:     "pl.pdf",
		RawText:      "PACKING LIST PL-01",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, doc.ID)

	// Raw text is stored before the document row is created.
	stored, err := storage.Download(context.Background(), "test-bucket", doc.RawTextKey)
	require.NoError(t, err)
	assert.Equal(t, "PACKING LIST PL-01", string(stored))

	// The background run completes and persists a result.
	require.Eventually(t, func() bool {
		got, err := repo.GetByID(context.Background(), orgID, doc.ID)
		return err == nil && got.Status == domain.ExtractionCompleted
	}, 2*time.Second, 10*time.Millisecond)

	result, err := svc.GetResult(context.Background(), orgID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, result.DocumentID)
	require.NotNil(t, result.IsValid)
	assert.False(t, *result.IsValid, "empty model output cannot satisfy required fields")
	assert.Equal(t, "gpt-4o", result.ModelUsed)
}

func TestDocumentService_GetResultStates(t *testing.T) {
	repo := newFakeDocRepo()
	svc := newTestDocumentService(repo, newFakeStorage(), newFakeCache())
	orgID := uuid.New()

	doc := &domain.Document{
		OrganizationID: orgID,
		UploadedBy:     uuid.New(),
		DocumentType:   domain.DocTypePackingList,
		Status:         domain.ExtractionPending,
	}
	require.NoError(t, repo.Create(context.Background(), doc))

	_, err := svc.GetResult(context.Background(), orgID, doc.ID)
	assert.ErrorIs(t, err, domain.ErrDocumentNotExtracted)

	require.NoError(t, repo.UpdateStatus(context.Background(), doc.ID, domain.ExtractionProcessing))
	_, err = svc.GetResult(context.Background(), orgID, doc.ID)
	assert.ErrorIs(t, err, domain.ErrExtractionInProgress)

	// Another organization never sees the document.
	_, err = svc.GetResult(context.Background(), uuid.New(), doc.ID)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestDocumentService_DeleteCleansUp(t *testing.T) {
	repo := newFakeDocRepo()
	storage := newFakeStorage()
	cache := newFakeCache()
	svc := newTestDocumentService(repo, storage, cache)
	orgID, userID := uuid.New(), uuid.New()

	doc, err := svc.Create(context.Background(), orgID, userID, CreateDocumentInput{
		DocumentType: "fumigation_certificate",
		RawText:      "CERTIFICATE FC-9",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := repo.GetByID(context.Background(), orgID, doc.ID)
		return err == nil && got.Status == domain.ExtractionCompleted
	}, 2*time.Second, 10*time.Millisecond)

	// Prime the cache, then delete.
	_, err = svc.GetResult(context.Background(), orgID, doc.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), orgID, doc.ID))

	_, err = svc.GetResult(context.Background(), orgID, doc.ID)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	assert.Contains(t, storage.deleted, doc.RawTextKey)
}

func TestDocumentService_ReextractRequiresRawText(t *testing.T) {
	repo := newFakeDocRepo()
	svc := newTestDocumentService(repo, newFakeStorage(), newFakeCache())
	orgID := uuid.New()

	doc := &domain.Document{
		OrganizationID: orgID,
		UploadedBy:     uuid.New(),
		DocumentType:   domain.DocTypePackingList,
		Status:         domain.ExtractionCompleted,
		RawTextKey:     "raw/gone.txt",
	}
	require.NoError(t, repo.Create(context.Background(), doc))

	_, err := svc.Reextract(context.Background(), orgID, doc.ID)
	assert.ErrorIs(t, err, domain.ErrRawTextMissing)
}
