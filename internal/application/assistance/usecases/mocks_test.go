package usecases

import (
	"context"
	"io"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/domain/audit"
	"zelo/internal/domain/building"
	"zelo/internal/domain/supplier"
	"zelo/internal/shared/db"
	"zelo/internal/shared/errors"
	"zelo/internal/shared/logger"
)

type mockAssistanceRepository struct {
	SaveFunc                 func(ctx context.Context, a *assistance.Assistance) error
	UpdateFunc               func(ctx context.Context, a *assistance.Assistance) error
	GetByIDFunc              func(ctx context.Context, id uint) (*assistance.Assistance, error)
	GetByActionTokenFunc     func(ctx context.Context, scope vo.TokenScope, token vo.ActionToken) (*assistance.Assistance, error)
	GetByActionTokenCalls    int
	UpdateStatusFunc         func(ctx context.Context, a *assistance.Assistance, expected vo.Status) error
	ListFunc                 func(ctx context.Context, filter assistance.Filter) ([]*assistance.Assistance, int64, error)
	ListScheduledBetweenFunc func(ctx context.Context, from, to time.Time) ([]*assistance.Assistance, error)
}

func (m *mockAssistanceRepository) Save(ctx context.Context, a *assistance.Assistance) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssistanceRepository) Update(ctx context.Context, a *assistance.Assistance) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssistanceRepository) GetByID(ctx context.Context, id uint) (*assistance.Assistance, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssistanceRepository) GetByActionToken(ctx context.Context, scope vo.TokenScope, token vo.ActionToken) (*assistance.Assistance, error) {
	m.GetByActionTokenCalls++
	if m.GetByActionTokenFunc != nil {
		return m.GetByActionTokenFunc(ctx, scope, token)
	}
	return nil, nil
}

func (m *mockAssistanceRepository) UpdateStatus(ctx context.Context, a *assistance.Assistance, expected vo.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, a, expected)
	}
	return nil
}

func (m *mockAssistanceRepository) List(ctx context.Context, filter assistance.Filter) ([]*assistance.Assistance, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAssistanceRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*assistance.Assistance, error) {
	if m.ListScheduledBetweenFunc != nil {
		return m.ListScheduledBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

type mockCommunicationRepository struct {
	SaveFunc               func(ctx context.Context, c *assistance.Communication) error
	ListByAssistanceIDFunc func(ctx context.Context, assistanceID uint) ([]*assistance.Communication, error)
}

func (m *mockCommunicationRepository) Save(ctx context.Context, c *assistance.Communication) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommunicationRepository) ListByAssistanceID(ctx context.Context, assistanceID uint) ([]*assistance.Communication, error) {
	if m.ListByAssistanceIDFunc != nil {
		return m.ListByAssistanceIDFunc(ctx, assistanceID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc               func(ctx context.Context, at *assistance.Attachment) error
	ListByAssistanceIDFunc func(ctx context.Context, assistanceID uint) ([]*assistance.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, at *assistance.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, at)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByAssistanceID(ctx context.Context, assistanceID uint) ([]*assistance.Attachment, error) {
	if m.ListByAssistanceIDFunc != nil {
		return m.ListByAssistanceIDFunc(ctx, assistanceID)
	}
	return nil, nil
}

type mockBuildingRepository struct {
	SaveFunc    func(ctx context.Context, b *building.Building) error
	UpdateFunc  func(ctx context.Context, b *building.Building) error
	GetByIDFunc func(ctx context.Context, id uint) (*building.Building, error)
	ListFunc    func(ctx context.Context, activeOnly bool, page, pageSize int) ([]*building.Building, int64, error)
}

func (m *mockBuildingRepository) Save(ctx context.Context, b *building.Building) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return nil
}

func (m *mockBuildingRepository) Update(ctx context.Context, b *building.Building) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBuildingRepository) GetByID(ctx context.Context, id uint) (*building.Building, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("edifício não encontrado")
}

func (m *mockBuildingRepository) List(ctx context.Context, activeOnly bool, page, pageSize int) ([]*building.Building, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly, page, pageSize)
	}
	return nil, 0, nil
}

type mockSupplierRepository struct {
	SaveFunc    func(ctx context.Context, s *supplier.Supplier) error
	UpdateFunc  func(ctx context.Context, s *supplier.Supplier) error
	GetByIDFunc func(ctx context.Context, id uint) (*supplier.Supplier, error)
	ListFunc    func(ctx context.Context, activeOnly bool, page, pageSize int) ([]*supplier.Supplier, int64, error)
}

func (m *mockSupplierRepository) Save(ctx context.Context, s *supplier.Supplier) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSupplierRepository) GetByID(ctx context.Context, id uint) (*supplier.Supplier, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("fornecedor não encontrado")
}

func (m *mockSupplierRepository) List(ctx context.Context, activeOnly bool, page, pageSize int) ([]*supplier.Supplier, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly, page, pageSize)
	}
	return nil, 0, nil
}

// mockAuditor records every event so tests can assert on the trail.
type mockAuditor struct {
	Events []audit.Event
}

func (m *mockAuditor) Record(ctx context.Context, e audit.Event) {
	m.Events = append(m.Events, e)
}

func (m *mockAuditor) lastEventType() audit.EventType {
	if len(m.Events) == 0 {
		return ""
	}
	return m.Events[len(m.Events)-1].EventType
}

type mockRateLimiter struct {
	AllowFunc func(key string) (bool, error)
	Calls     []string
}

func (m *mockRateLimiter) Allow(key string) (bool, error) {
	m.Calls = append(m.Calls, key)
	if m.AllowFunc != nil {
		return m.AllowFunc(key)
	}
	return true, nil
}

type mockNotifier struct {
	SendAssignmentEmailFunc        func(to, buildingName, description, acceptanceToken string) error
	SendSchedulingEmailFunc        func(to, buildingName, schedulingToken string) error
	SendValidationRequestEmailFunc func(to, buildingName, validationToken string) error
}

func (m *mockNotifier) SendAssignmentEmail(to, buildingName, description, acceptanceToken string) error {
	if m.SendAssignmentEmailFunc != nil {
		return m.SendAssignmentEmailFunc(to, buildingName, description, acceptanceToken)
	}
	return nil
}

func (m *mockNotifier) SendSchedulingEmail(to, buildingName, schedulingToken string) error {
	if m.SendSchedulingEmailFunc != nil {
		return m.SendSchedulingEmailFunc(to, buildingName, schedulingToken)
	}
	return nil
}

func (m *mockNotifier) SendValidationRequestEmail(to, buildingName, validationToken string) error {
	if m.SendValidationRequestEmailFunc != nil {
		return m.SendValidationRequestEmailFunc(to, buildingName, validationToken)
	}
	return nil
}

type mockPhotoStore struct {
	UploadFunc       func(ctx context.Context, key string, body io.Reader, contentType string, size int64) error
	PresignedURLFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)
	Uploads          []string
}

func (m *mockPhotoStore) Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) error {
	m.Uploads = append(m.Uploads, key)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, body, contentType, size)
	}
	return nil
}

func (m *mockPhotoStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.PresignedURLFunc != nil {
		return m.PresignedURLFunc(ctx, key, expiry)
	}
	return "https://example.test/" + key, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

// newTestTxManager builds a transaction manager over an in-memory database
// so usecases exercise the real commit and rollback paths.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	return db.NewTransactionManager(gdb)
}
