package supabase

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, anonKey, bucket string) (*StorageClient, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", anonKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadProjectImage stores an image under a random name in the public
// bucket and returns its public URL, which the admin form places in the
// draft's image_url field. The original extension is kept so the CDN serves
// the right content type.
func (s *StorageClient) UploadProjectImage(filename, contentType string, data []byte) (string, error) {
	ext := path.Ext(filename)
	storagePath := fmt.Sprintf("projects/%s%s", uuid.New().String(), ext)

	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.PublicURL(storagePath), nil
}

func (s *StorageClient) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

// ObjectPath maps a public URL back to the object's path inside the bucket.
// Returns false for URLs that do not point into this bucket, such as
// externally hosted images pasted into the admin form.
func (s *StorageClient) ObjectPath(publicURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	storagePath := strings.TrimPrefix(publicURL, prefix)
	if storagePath == publicURL || storagePath == "" {
		return "", false
	}
	return storagePath, true
}

func (s *StorageClient) DeleteFile(storagePath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}
