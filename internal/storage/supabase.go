package storage

import (
	"bytes"
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// Supabase archives candidate answer audio in a Supabase storage bucket.
type Supabase struct {
	client *supabase.Client
	bucket string
}

// New constructs the storage client. Returns an error instead of a client
// when the project URL or key is rejected; callers treat archival as
// optional and run without it.
func New(url, serviceRoleKey, bucket string) (*Supabase, error) {
	client, err := supabase.NewClient(url, serviceRoleKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return &Supabase{client: client, bucket: bucket}, nil
}

func (s *Supabase) Upload(objectKey string, contentType string, body []byte) error {
	_, err := s.client.Storage.UploadFile(s.bucket, objectKey, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to upload to Supabase: %w", err)
	}
	return nil
}
