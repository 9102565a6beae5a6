package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zelo/internal/domain/assistance"
	vo "zelo/internal/domain/assistance/valueobjects"
	"zelo/internal/domain/building"
	"zelo/internal/shared/errors"
)

func activeBuilding(t *testing.T) *building.Building {
	t.Helper()
	b, err := building.NewBuilding("Edifício Aurora", "Rua das Flores 12", "4000-123", "Porto")
	require.NoError(t, err)
	require.NoError(t, b.SetID(7))
	return b
}

func TestCreateAssistanceSuccess(t *testing.T) {
	assistanceRepo := &mockAssistanceRepository{}
	buildingRepo := &mockBuildingRepository{}
	buildingRepo.GetByIDFunc = func(ctx context.Context, id uint) (*building.Building, error) {
		return activeBuilding(t), nil
	}
	assistanceRepo.SaveFunc = func(ctx context.Context, a *assistance.Assistance) error {
		return a.SetID(42)
	}

	useCase := NewCreateAssistanceUseCase(assistanceRepo, buildingRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateAssistanceCommand{
		BuildingID:  7,
		Category:    "canalizacao",
		Priority:    "urgente",
		Description: "Fuga de água no segundo andar",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.AssistanceID)
	assert.Equal(t, vo.StatusPendingInitialResponse.String(), result.Status)

	// Three capability tokens, all distinct, all well formed.
	tokens := []string{result.AcceptanceToken, result.SchedulingToken, result.ValidationToken}
	seen := map[string]bool{}
	for _, raw := range tokens {
		_, err := vo.NewActionToken(raw)
		require.NoError(t, err)
		assert.False(t, seen[raw])
		seen[raw] = true
	}
}

func TestCreateAssistanceDefaultsPriorityToNormal(t *testing.T) {
	assistanceRepo := &mockAssistanceRepository{}
	buildingRepo := &mockBuildingRepository{}
	buildingRepo.GetByIDFunc = func(ctx context.Context, id uint) (*building.Building, error) {
		return activeBuilding(t), nil
	}

	var saved *assistance.Assistance
	assistanceRepo.SaveFunc = func(ctx context.Context, a *assistance.Assistance) error {
		saved = a
		return a.SetID(42)
	}

	useCase := NewCreateAssistanceUseCase(assistanceRepo, buildingRepo, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateAssistanceCommand{
		BuildingID:  7,
		Category:    "eletricidade",
		Description: "Lâmpada fundida no hall",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, vo.PriorityNormal, saved.Priority())
}

func TestCreateAssistanceValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateAssistanceCommand
	}{
		{
			name: "invalid category",
			cmd:  CreateAssistanceCommand{BuildingID: 7, Category: "magia", Description: "x"},
		},
		{
			name: "invalid priority",
			cmd:  CreateAssistanceCommand{BuildingID: 7, Category: "canalizacao", Priority: "maxima", Description: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateAssistanceUseCase(&mockAssistanceRepository{}, &mockBuildingRepository{}, &mockLogger{})

			_, err := useCase.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateAssistanceBuildingNotFound(t *testing.T) {
	buildingRepo := &mockBuildingRepository{}
	buildingRepo.GetByIDFunc = func(ctx context.Context, id uint) (*building.Building, error) {
		return nil, errors.NewNotFoundError("edifício não encontrado")
	}

	useCase := NewCreateAssistanceUseCase(&mockAssistanceRepository{}, buildingRepo, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateAssistanceCommand{
		BuildingID:  99,
		Category:    "canalizacao",
		Description: "Fuga de água",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateAssistanceInactiveBuilding(t *testing.T) {
	buildingRepo := &mockBuildingRepository{}
	buildingRepo.GetByIDFunc = func(ctx context.Context, id uint) (*building.Building, error) {
		b := activeBuilding(t)
		b.Deactivate()
		return b, nil
	}

	useCase := NewCreateAssistanceUseCase(&mockAssistanceRepository{}, buildingRepo, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateAssistanceCommand{
		BuildingID:  7,
		Category:    "canalizacao",
		Description: "Fuga de água",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateAssistanceSaveFailure(t *testing.T) {
	assistanceRepo := &mockAssistanceRepository{}
	buildingRepo := &mockBuildingRepository{}
	buildingRepo.GetByIDFunc = func(ctx context.Context, id uint) (*building.Building, error) {
		return activeBuilding(t), nil
	}
	assistanceRepo.SaveFunc = func(ctx context.Context, a *assistance.Assistance) error {
		return fmt.Errorf("connection reset")
	}

	useCase := NewCreateAssistanceUseCase(assistanceRepo, buildingRepo, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateAssistanceCommand{
		BuildingID:  7,
		Category:    "canalizacao",
		Description: "Fuga de água",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
