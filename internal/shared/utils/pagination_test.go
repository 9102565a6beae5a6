package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"zelo/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{
			name:         "valid values - no adjustment needed",
			page:         2,
			pageSize:     20,
			wantPage:     2,
			wantPageSize: 20,
		},
		{
			name:         "page less than 1 - defaults to DefaultPage",
			page:         0,
			pageSize:     20,
			wantPage:     constants.DefaultPage,
			wantPageSize: 20,
		},
		{
			name:         "negative page - defaults to DefaultPage",
			page:         -1,
			pageSize:     20,
			wantPage:     constants.DefaultPage,
			wantPageSize: 20,
		},
		{
			name:         "pageSize less than 1 - defaults to DefaultPageSize",
			page:         1,
			pageSize:     0,
			wantPage:     1,
			wantPageSize: constants.DefaultPageSize,
		},
		{
			name:         "pageSize above cap - capped at MaxPageSize",
			page:         1,
			pageSize:     constants.MaxPageSize + 1,
			wantPage:     1,
			wantPageSize: constants.MaxPageSize,
		},
		{
			name:         "both less than 1 - both default",
			page:         0,
			pageSize:     0,
			wantPage:     constants.DefaultPage,
			wantPageSize: constants.DefaultPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)

			if got.Page != tt.wantPage {
				t.Errorf("ValidatePagination() page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.PageSize != tt.wantPageSize {
				t.Errorf("ValidatePagination() pageSize = %d, want %d", got.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{
			name:         "both parameters present",
			query:        "page=3&page_size=50",
			wantPage:     3,
			wantPageSize: 50,
		},
		{
			name:         "missing parameters - defaults",
			query:        "",
			wantPage:     constants.DefaultPage,
			wantPageSize: constants.DefaultPageSize,
		},
		{
			name:         "non-numeric parameters - defaults",
			query:        "page=abc&page_size=xyz",
			wantPage:     constants.DefaultPage,
			wantPageSize: constants.DefaultPageSize,
		},
		{
			name:         "page_size above cap - capped",
			query:        "page=1&page_size=9999",
			wantPage:     1,
			wantPageSize: constants.MaxPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			got := ParsePagination(c)

			if got.Page != tt.wantPage {
				t.Errorf("ParsePagination() page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.PageSize != tt.wantPageSize {
				t.Errorf("ParsePagination() pageSize = %d, want %d", got.PageSize, tt.wantPageSize)
			}
		})
	}
}
