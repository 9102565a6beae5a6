package usecases

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type UploadAttachmentCommand struct {
	AssistanceID uint
	Content      []byte
	MimeType     string
	Category     string
	UploaderName string
	UploaderRole string
}

type UploadAttachmentResult struct {
	AttachmentID uint
	PublicURL    string
}

// UploadAttachmentUseCase stores a photo blob and records its metadata on
// the ticket. Used by the admin UI; supplier completion photos go through
// the portal pipeline instead.
type UploadAttachmentUseCase struct {
	assistanceRepo assistance.Repository
	attachRepo     assistance.AttachmentRepository
	photos         PhotoStore
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	assistanceRepo assistance.Repository,
	attachRepo assistance.AttachmentRepository,
	photos PhotoStore,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		assistanceRepo: assistanceRepo,
		attachRepo:     attachRepo,
		photos:         photos,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error) {
	if cmd.AssistanceID == 0 {
		return nil, errors.NewValidationError("assistance ID is required")
	}
	if len(cmd.Content) == 0 {
		return nil, errors.NewValidationError("fotografia vazia")
	}
	if len(cmd.Content) > maxPhotoBytes {
		return nil, errors.NewValidationError("fotografia excede o tamanho máximo")
	}

	category, err := vo.NewPhotoCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError("categoria de fotografia inválida")
	}

	a, err := uc.assistanceRepo.GetByID(ctx, cmd.AssistanceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get assistance", "assistance_id", cmd.AssistanceID, "error", err)
		return nil, errors.NewInternalError("erro interno")
	}

	mimeType := cmd.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	key := fmt.Sprintf("assistances/%d/%s.jpg", a.ID(), uuid.NewString())
	if err := uc.photos.Upload(ctx, key, bytes.NewReader(cmd.Content), mimeType, int64(len(cmd.Content))); err != nil {
		uc.logger.Errorw("failed to upload photo", "assistance_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("falha ao guardar a fotografia")
	}

	publicURL, err := uc.photos.PresignedURL(ctx, key, photoURLExpiry)
	if err != nil {
		uc.logger.Warnw("failed to presign photo URL", "assistance_id", a.ID(), "error", err)
	}

	at, err := assistance.NewAttachment(
		a.ID(),
		key,
		publicURL,
		category,
		cmd.UploaderName,
		assistance.AuthorRole(cmd.UploaderRole),
		mimeType,
		int64(len(cmd.Content)),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachRepo.Save(ctx, at); err != nil {
		uc.logger.Errorw("failed to save attachment", "assistance_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("falha ao registar a fotografia")
	}

	return &UploadAttachmentResult{
		AttachmentID: at.ID(),
		PublicURL:    at.PublicURL(),
	}, nil
}
