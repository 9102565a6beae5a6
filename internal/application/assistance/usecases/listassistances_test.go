package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zelo/internal/domain/assistance"
	"zelo/internal/shared/constants"
	"zelo/internal/shared/errors"
)

func TestListAssistancesNormalizesPagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values fall back to defaults", 0, 0, constants.DefaultPage, constants.DefaultPageSize},
		{"negative values fall back to defaults", -3, -1, constants.DefaultPage, constants.DefaultPageSize},
		{"oversized page size is capped", 2, 10000, 2, constants.MaxPageSize},
		{"valid values pass through", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter assistance.Filter
			repo := &mockAssistanceRepository{
				ListFunc: func(ctx context.Context, filter assistance.Filter) ([]*assistance.Assistance, int64, error) {
					gotFilter = filter
					return nil, 0, nil
				},
			}
			uc := NewListAssistancesUseCase(repo, &mockLogger{})

			result, err := uc.Execute(context.Background(), ListAssistancesQuery{
				Page:     tt.page,
				PageSize: tt.pageSize,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, gotFilter.Page)
			assert.Equal(t, tt.wantPageSize, gotFilter.PageSize)
			assert.Equal(t, tt.wantPage, result.Page)
			assert.Equal(t, tt.wantPageSize, result.PageSize)
		})
	}
}

func TestListAssistancesRejectsUnknownFilterValues(t *testing.T) {
	uc := NewListAssistancesUseCase(&mockAssistanceRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListAssistancesQuery{Status: "Inexistente"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListAssistancesQuery{Priority: "altissima"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListAssistancesQuery{Category: "jardinagem-espacial"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
