package assistance

import (
	"fmt"
	"time"

	vo "zelo/internal/domain/assistance/valueobjects"
)

// Attachment is an immutable photo record on a ticket. The blob itself
// lives in external storage; this entity carries the metadata.
type Attachment struct {
	id           uint
	assistanceID uint
	storagePath  string
	publicURL    string
	category     vo.PhotoCategory
	uploaderName string
	uploaderRole AuthorRole
	mimeType     string
	sizeBytes    int64
	createdAt    time.Time
}

func NewAttachment(
	assistanceID uint,
	storagePath string,
	publicURL string,
	category vo.PhotoCategory,
	uploaderName string,
	uploaderRole AuthorRole,
	mimeType string,
	sizeBytes int64,
) (*Attachment, error) {
	if assistanceID == 0 {
		return nil, fmt.Errorf("assistance ID is required")
	}
	if len(storagePath) == 0 {
		return nil, fmt.Errorf("storage path is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid photo category")
	}
	if !uploaderRole.IsValid() {
		return nil, fmt.Errorf("invalid uploader role: %s", uploaderRole)
	}
	if sizeBytes < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	return &Attachment{
		assistanceID: assistanceID,
		storagePath:  storagePath,
		publicURL:    publicURL,
		category:     category,
		uploaderName: uploaderName,
		uploaderRole: uploaderRole,
		mimeType:     mimeType,
		sizeBytes:    sizeBytes,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	assistanceID uint,
	storagePath string,
	publicURL string,
	category vo.PhotoCategory,
	uploaderName string,
	uploaderRole AuthorRole,
	mimeType string,
	sizeBytes int64,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid photo category")
	}
	return &Attachment{
		id:           id,
		assistanceID: assistanceID,
		storagePath:  storagePath,
		publicURL:    publicURL,
		category:     category,
		uploaderName: uploaderName,
		uploaderRole: uploaderRole,
		mimeType:     mimeType,
		sizeBytes:    sizeBytes,
		createdAt:    createdAt,
	}, nil
}

func (at *Attachment) ID() uint                   { return at.id }
func (at *Attachment) AssistanceID() uint         { return at.assistanceID }
func (at *Attachment) StoragePath() string        { return at.storagePath }
func (at *Attachment) PublicURL() string          { return at.publicURL }
func (at *Attachment) Category() vo.PhotoCategory { return at.category }
func (at *Attachment) UploaderName() string       { return at.uploaderName }
func (at *Attachment) UploaderRole() AuthorRole   { return at.uploaderRole }
func (at *Attachment) MimeType() string           { return at.mimeType }
func (at *Attachment) SizeBytes() int64           { return at.sizeBytes }
func (at *Attachment) CreatedAt() time.Time       { return at.createdAt }

func (at *Attachment) SetID(id uint) error {
	if at.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	at.id = id
	return nil
}
