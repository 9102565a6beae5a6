package usecases

import (
	"context"
	"io"
	"time"

	"zelo/internal/application/assistance/dto"
)

// NotificationSender is the outbound email surface the usecases require.
// Satisfied by the SMTP email service.
type NotificationSender interface {
	SendAssignmentEmail(to, buildingName, description, acceptanceToken string) error
	SendSchedulingEmail(to, buildingName, schedulingToken string) error
	SendValidationRequestEmail(to, buildingName, validationToken string) error
}

// PhotoStore persists photo blobs and produces download links.
// Satisfied by the S3 photo store.
type PhotoStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type SupplierActionExecutor interface {
	Execute(ctx context.Context, cmd SupplierActionCommand) (*SupplierActionResult, error)
}

type ViewByTokenExecutor interface {
	Execute(ctx context.Context, query ViewByTokenQuery) (*dto.SupplierViewDTO, error)
}

type CreateAssistanceExecutor interface {
	Execute(ctx context.Context, cmd CreateAssistanceCommand) (*CreateAssistanceResult, error)
}

type GetAssistanceExecutor interface {
	Execute(ctx context.Context, query GetAssistanceQuery) (*dto.AssistanceDTO, error)
}

type ListAssistancesExecutor interface {
	Execute(ctx context.Context, query ListAssistancesQuery) (*ListAssistancesResult, error)
}

type AssignSupplierExecutor interface {
	Execute(ctx context.Context, cmd AssignSupplierCommand) (*AssignSupplierResult, error)
}

type CancelAssistanceExecutor interface {
	Execute(ctx context.Context, cmd CancelAssistanceCommand) (*CancelAssistanceResult, error)
}

type ValidateAssistanceExecutor interface {
	Execute(ctx context.Context, cmd ValidateAssistanceCommand) (*ValidateAssistanceResult, error)
}

type ReopenAssistanceExecutor interface {
	Execute(ctx context.Context, cmd ReopenAssistanceCommand) (*ReopenAssistanceResult, error)
}

type AddCommunicationExecutor interface {
	Execute(ctx context.Context, cmd AddCommunicationCommand) (*AddCommunicationResult, error)
}

type ListCommunicationsExecutor interface {
	Execute(ctx context.Context, query ListCommunicationsQuery) ([]dto.CommunicationDTO, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error)
}
