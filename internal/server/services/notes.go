// Package services contains the note use-cases sitting between the HTTP
// layer and the storage collaborators.
package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/common"
	"github.com/dmitrijs2005/noteapp/internal/server/blobstore"
	sc "github.com/dmitrijs2005/noteapp/internal/server/config"
	"github.com/dmitrijs2005/noteapp/internal/server/models"
	"github.com/dmitrijs2005/noteapp/internal/server/repositories/notes"
	"github.com/google/uuid"
)

// Uploaded images are always stored as JPEG; the API contract carries no
// content type for the payload.
const imageContentType = "image/jpeg"

var (
	newNoteID = uuid.NewString
	timeNow   = time.Now
)

// CreateNoteInput is the create request after JSON decoding. ImageBase64
// and ImageName are optional; the image side-flow runs only when both are
// present.
type CreateNoteInput struct {
	UserID      string
	Title       string
	Content     string
	ImageBase64 string
	ImageName   string
}

// NoteService implements the note operations over a Repository and an
// Uploader. It holds no request state; both collaborators are safe to share
// across requests.
type NoteService struct {
	repo   notes.Repository
	blobs  blobstore.Uploader
	config *sc.Config
}

func NewNoteService(repo notes.Repository, blobs blobstore.Uploader, config *sc.Config) *NoteService {
	return &NoteService{
		repo:   repo,
		blobs:  blobs,
		config: config,
	}
}

// imageStorageKey namespaces uploads by user and avoids collisions with a
// millisecond timestamp prefix, keeping the original image name visible.
func imageStorageKey(userID, imageName string) string {
	return fmt.Sprintf("%s/%d-%s", userID, timeNow().UnixMilli(), imageName)
}

// Create validates the input, runs the optional image side-flow and writes
// the note. If the upload or link minting fails the note is never written;
// an already-uploaded object is not cleaned up (no compensating delete).
func (s *NoteService) Create(ctx context.Context, in CreateNoteInput) (*models.Note, error) {

	if in.UserID == "" || in.Title == "" || in.Content == "" {
		return nil, fmt.Errorf("%w: userId, title and content are required", common.ErrorValidation)
	}

	var imageURL, imageKey *string

	if in.ImageBase64 != "" && in.ImageName != "" {
		data, err := base64.StdEncoding.DecodeString(in.ImageBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding image: %v", common.ErrorUpload, err)
		}

		key := imageStorageKey(in.UserID, in.ImageName)

		if err := s.blobs.Upload(ctx, key, data, imageContentType); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrorUpload, err)
		}

		url, err := s.blobs.PresignGet(ctx, key, s.config.PresignExpiry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrorUpload, err)
		}

		imageURL = &url
		imageKey = &key
	}

	note := &models.Note{
		UserID:    in.UserID,
		NoteID:    newNoteID(),
		Title:     in.Title,
		Content:   in.Content,
		ImageURL:  imageURL,
		ImageKey:  imageKey,
		CreatedAt: timeNow().UTC().Format(time.RFC3339),
	}

	if err := s.repo.Put(ctx, note); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}

	return note, nil
}

// List returns every note in the user's partition in one page. The result
// is never nil so it serializes as an empty array.
func (s *NoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	if result == nil {
		result = []*models.Note{}
	}
	return result, nil
}

// Get returns the note or common.ErrorNotFound.
func (s *NoteService) Get(ctx context.Context, userID, noteID string) (*models.Note, error) {
	return s.repo.Get(ctx, userID, noteID)
}

// Update replaces title and content only. Updating a missing note is a
// silent no-op; imageUrl and createdAt are never touched.
func (s *NoteService) Update(ctx context.Context, userID, noteID, title, content string) error {

	if title == "" || content == "" {
		return fmt.Errorf("%w: title and content are required", common.ErrorValidation)
	}

	if err := s.repo.UpdateContent(ctx, userID, noteID, title, content); err != nil {
		return fmt.Errorf("updating note: %w", err)
	}
	return nil
}

// Delete removes the note; deleting a missing note is a silent no-op.
func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	if err := s.repo.Delete(ctx, userID, noteID); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}
