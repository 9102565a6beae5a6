package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/domain/audit"
	"zelo/internal/domain/building"
	"zelo/internal/shared/errors"
)

type viewByTokenFixture struct {
	assistanceRepo *mockAssistanceRepository
	commRepo       *mockCommunicationRepository
	attachRepo     *mockAttachmentRepository
	buildingRepo   *mockBuildingRepository
	auditor        *mockAuditor
	limiter        *mockRateLimiter
	useCase        *ViewByTokenUseCase
}

func newViewByTokenFixture(t *testing.T) *viewByTokenFixture {
	t.Helper()

	f := &viewByTokenFixture{
		assistanceRepo: &mockAssistanceRepository{},
		commRepo:       &mockCommunicationRepository{},
		attachRepo:     &mockAttachmentRepository{},
		buildingRepo:   &mockBuildingRepository{},
		auditor:        &mockAuditor{},
		limiter:        &mockRateLimiter{},
	}
	f.useCase = NewViewByTokenUseCase(
		f.assistanceRepo,
		f.commRepo,
		f.attachRepo,
		f.buildingRepo,
		f.auditor,
		f.limiter,
		&mockLogger{},
	)
	return f
}

func (f *viewByTokenFixture) returnAssistance(a *assistance.Assistance) {
	f.assistanceRepo.GetByActionTokenFunc = func(ctx context.Context, scope vo.TokenScope, token vo.ActionToken) (*assistance.Assistance, error) {
		if a.OwnsToken(scope, token) {
			return a, nil
		}
		return nil, errors.NewNotFoundError("assistência não encontrada")
	}
}

func TestViewByTokenReturnsRedactedView(t *testing.T) {
	f := newViewByTokenFixture(t)
	a := reconstructAssistance(t, vo.StatusPendingAcceptance)
	f.returnAssistance(a)

	b, err := building.NewBuilding("Edifício Aurora", "Rua das Flores 12", "4000-123", "Porto")
	require.NoError(t, err)
	f.buildingRepo.GetByIDFunc = func(ctx context.Context, id uint) (*building.Building, error) {
		assert.Equal(t, uint(7), id)
		return b, nil
	}

	view, err := f.useCase.Execute(context.Background(), ViewByTokenQuery{
		Action:   "accept",
		Token:    a.AcceptanceToken().String(),
		ClientIP: "203.0.113.7",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), view.ID)
	assert.Equal(t, a.Description(), view.Description)
	assert.Equal(t, vo.StatusPendingAcceptance.String(), view.Status)
	assert.Equal(t, "Edifício Aurora", view.BuildingName)
	assert.Equal(t, "Rua das Flores 12", view.BuildingAddress)
	assert.Equal(t, audit.EventTokenAccessSuccess, f.auditor.lastEventType())
}

func TestViewByTokenFiltersInternalCommunications(t *testing.T) {
	f := newViewByTokenFixture(t)
	a := reconstructAssistance(t, vo.StatusScheduled)
	f.returnAssistance(a)

	visible, err := assistance.NewCommunication(42, "Obrigado pela disponibilidade", "Gestor", assistance.RoleAdmin, true, false, false)
	require.NoError(t, err)
	internal, err := assistance.NewCommunication(42, "Fornecedor pouco fiável, vigiar", "Gestor", assistance.RoleAdmin, false, false, true)
	require.NoError(t, err)

	f.commRepo.ListByAssistanceIDFunc = func(ctx context.Context, assistanceID uint) ([]*assistance.Communication, error) {
		return []*assistance.Communication{visible, internal}, nil
	}

	view, err := f.useCase.Execute(context.Background(), ViewByTokenQuery{
		Action: "portal",
		Token:  a.SchedulingToken().String(),
	})

	require.NoError(t, err)
	require.Len(t, view.Communications, 1)
	assert.Equal(t, "Obrigado pela disponibilidade", view.Communications[0].Message)
}

func TestViewByTokenPortalActionMatchesAnyToken(t *testing.T) {
	f := newViewByTokenFixture(t)
	a := reconstructAssistance(t, vo.StatusPendingValidation)
	f.returnAssistance(a)

	for _, token := range []vo.ActionToken{a.AcceptanceToken(), a.SchedulingToken(), a.ValidationToken()} {
		view, err := f.useCase.Execute(context.Background(), ViewByTokenQuery{
			Action: "portal",
			Token:  token.String(),
		})
		require.NoError(t, err)
		assert.Equal(t, uint(42), view.ID)
	}
}

func TestViewByTokenIsRepeatable(t *testing.T) {
	f := newViewByTokenFixture(t)
	a := reconstructAssistance(t, vo.StatusScheduled)
	f.returnAssistance(a)

	query := ViewByTokenQuery{Action: "view", Token: a.AcceptanceToken().String()}

	first, err := f.useCase.Execute(context.Background(), query)
	require.NoError(t, err)
	second, err := f.useCase.Execute(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, vo.StatusScheduled, a.Status())
}

func TestViewByTokenRateLimited(t *testing.T) {
	f := newViewByTokenFixture(t)
	f.limiter.AllowFunc = func(key string) (bool, error) { return false, nil }

	_, err := f.useCase.Execute(context.Background(), ViewByTokenQuery{
		Action:   "view",
		Token:    vo.GenerateActionToken().String(),
		ClientIP: "203.0.113.7",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeRateLimited, appErr.Type)
	assert.Equal(t, 0, f.assistanceRepo.GetByActionTokenCalls)
}

func TestViewByTokenRejectsWriteOnlyActions(t *testing.T) {
	for _, action := range []string{"reject", "reschedule", "complete"} {
		t.Run(action, func(t *testing.T) {
			f := newViewByTokenFixture(t)

			_, err := f.useCase.Execute(context.Background(), ViewByTokenQuery{
				Action: action,
				Token:  vo.GenerateActionToken().String(),
			})

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, audit.EventInvalidAction, f.auditor.lastEventType())
			assert.Equal(t, 0, f.assistanceRepo.GetByActionTokenCalls)
		})
	}
}

func TestViewByTokenMalformedToken(t *testing.T) {
	f := newViewByTokenFixture(t)

	_, err := f.useCase.Execute(context.Background(), ViewByTokenQuery{
		Action: "view",
		Token:  "' OR 1=1 --",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, audit.EventInvalidTokenFormat, f.auditor.lastEventType())
	assert.Equal(t, 0, f.assistanceRepo.GetByActionTokenCalls)
}
