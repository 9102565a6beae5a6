package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/infrastructure/persistence/models"
	apperrors "zelo/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.AssistanceModel{},
		&models.CommunicationModel{},
		&models.AttachmentModel{},
		&models.BuildingModel{},
		&models.SupplierModel{},
		&models.AuditEventModel{},
	)
	require.NoError(t, err)

	return gdb
}

func createTestAssistance(t *testing.T) *assistance.Assistance {
	t.Helper()

	a, err := assistance.NewAssistance(7, vo.CategoryPlumbing, vo.PriorityUrgent, "Fuga de água no segundo andar")
	require.NoError(t, err)
	return a
}

func TestAssistanceRepository_Save(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssistanceRepository(gdb)
	ctx := context.Background()

	t.Run("save assigns id", func(t *testing.T) {
		a := createTestAssistance(t)

		err := repo.Save(ctx, a)
		require.NoError(t, err)
		assert.NotZero(t, a.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		a := createTestAssistance(t)
		require.NoError(t, repo.Save(ctx, a))

		found, err := repo.GetByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, a.BuildingID(), found.BuildingID())
		assert.Equal(t, a.Category(), found.Category())
		assert.Equal(t, a.Priority(), found.Priority())
		assert.Equal(t, a.Description(), found.Description())
		assert.Equal(t, vo.StatusPendingInitialResponse, found.Status())
		assert.Equal(t, a.AcceptanceToken(), found.AcceptanceToken())
		assert.Equal(t, a.SchedulingToken(), found.SchedulingToken())
		assert.Equal(t, a.ValidationToken(), found.ValidationToken())
	})

	t.Run("duplicate token rejected by unique index", func(t *testing.T) {
		a := createTestAssistance(t)
		require.NoError(t, repo.Save(ctx, a))

		var clone models.AssistanceModel
		require.NoError(t, gdb.First(&clone, a.ID()).Error)
		clone.ID = 0
		clone.SchedulingToken = vo.GenerateActionToken().String()
		clone.ValidationToken = vo.GenerateActionToken().String()

		err := gdb.Create(&clone).Error
		assert.Error(t, err)
	})
}

func TestAssistanceRepository_GetByID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssistanceRepository(gdb)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 9999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAssistanceRepository_GetByActionToken(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssistanceRepository(gdb)
	ctx := context.Background()

	a := createTestAssistance(t)
	require.NoError(t, repo.Save(ctx, a))

	t.Run("scoped lookups hit only their column", func(t *testing.T) {
		found, err := repo.GetByActionToken(ctx, vo.ScopeAcceptance, a.AcceptanceToken())
		require.NoError(t, err)
		assert.Equal(t, a.ID(), found.ID())

		found, err = repo.GetByActionToken(ctx, vo.ScopeScheduling, a.SchedulingToken())
		require.NoError(t, err)
		assert.Equal(t, a.ID(), found.ID())

		found, err = repo.GetByActionToken(ctx, vo.ScopeValidation, a.ValidationToken())
		require.NoError(t, err)
		assert.Equal(t, a.ID(), found.ID())
	})

	t.Run("token from another scope is not found", func(t *testing.T) {
		_, err := repo.GetByActionToken(ctx, vo.ScopeAcceptance, a.SchedulingToken())
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("any scope matches all three columns", func(t *testing.T) {
		for _, token := range []vo.ActionToken{a.AcceptanceToken(), a.SchedulingToken(), a.ValidationToken()} {
			found, err := repo.GetByActionToken(ctx, vo.ScopeAny, token)
			require.NoError(t, err)
			assert.Equal(t, a.ID(), found.ID())
		}
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		_, err := repo.GetByActionToken(ctx, vo.ScopeAny, vo.GenerateActionToken())
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestAssistanceRepository_UpdateStatus(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssistanceRepository(gdb)
	ctx := context.Background()

	t.Run("guarded update succeeds on matching status", func(t *testing.T) {
		a := createTestAssistance(t)
		require.NoError(t, repo.Save(ctx, a))

		require.NoError(t, a.Accept(nil))

		err := repo.UpdateStatus(ctx, a, vo.StatusPendingInitialResponse)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusPendingScheduling, found.Status())
		assert.NotNil(t, found.RespondedAt())
	})

	t.Run("stale expected status returns conflict", func(t *testing.T) {
		a := createTestAssistance(t)
		require.NoError(t, repo.Save(ctx, a))

		require.NoError(t, a.Accept(nil))
		require.NoError(t, repo.UpdateStatus(ctx, a, vo.StatusPendingInitialResponse))

		// Second writer still believes the ticket is pending.
		err := repo.UpdateStatus(ctx, a, vo.StatusPendingInitialResponse)
		assert.ErrorIs(t, err, assistance.ErrStatusConflict)
	})

	t.Run("side effect fields persist with the status", func(t *testing.T) {
		a := createTestAssistance(t)
		require.NoError(t, repo.Save(ctx, a))

		scheduledAt := time.Now().Add(48 * time.Hour).Truncate(time.Millisecond)
		require.NoError(t, a.Accept(&scheduledAt))

		require.NoError(t, repo.UpdateStatus(ctx, a, vo.StatusPendingInitialResponse))

		found, err := repo.GetByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusScheduled, found.Status())
		require.NotNil(t, found.ScheduledAt())
		assert.Equal(t, scheduledAt.UnixMilli(), found.ScheduledAt().UnixMilli())
	})
}

func TestAssistanceRepository_List(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssistanceRepository(gdb)
	ctx := context.Background()

	urgent, err := assistance.NewAssistance(7, vo.CategoryPlumbing, vo.PriorityUrgent, "Fuga de água")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, urgent))

	normal, err := assistance.NewAssistance(8, vo.CategoryElectrical, vo.PriorityNormal, "Quadro elétrico a disparar")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, normal))

	t.Run("filter by priority", func(t *testing.T) {
		priority := vo.PriorityUrgent
		results, total, err := repo.List(ctx, assistance.Filter{Priority: &priority})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, urgent.ID(), results[0].ID())
	})

	t.Run("filter by building", func(t *testing.T) {
		buildingID := uint(8)
		results, total, err := repo.List(ctx, assistance.Filter{BuildingID: &buildingID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, normal.ID(), results[0].ID())
	})

	t.Run("pagination caps the page", func(t *testing.T) {
		results, total, err := repo.List(ctx, assistance.Filter{Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, results, 1)
	})

	t.Run("unknown sort column falls back to created_at", func(t *testing.T) {
		_, _, err := repo.List(ctx, assistance.Filter{SortBy: "id; DROP TABLE assistances"})
		require.NoError(t, err)

		// Table still there.
		_, _, err = repo.List(ctx, assistance.Filter{})
		require.NoError(t, err)
	})
}

func TestAssistanceRepository_ListScheduledBetween(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewAssistanceRepository(gdb)
	ctx := context.Background()

	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	saveScheduled := func(offset time.Duration) *assistance.Assistance {
		a := createTestAssistance(t)
		require.NoError(t, repo.Save(ctx, a))
		at := dayStart.Add(offset)
		require.NoError(t, a.Accept(&at))
		require.NoError(t, repo.UpdateStatus(ctx, a, vo.StatusPendingInitialResponse))
		return a
	}

	inWindow := saveScheduled(10 * time.Hour)
	saveScheduled(36 * time.Hour)
	saveScheduled(-2 * time.Hour)

	// A pending ticket inside the window must not show up.
	pending := createTestAssistance(t)
	require.NoError(t, repo.Save(ctx, pending))

	results, err := repo.ListScheduledBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, inWindow.ID(), results[0].ID())
}
