package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Clamp(t *testing.T) {
	tests := []struct {
		name      string
		req       PageRequest
		wantPage  int
		wantLimit int
	}{
		{"zero values use defaults", PageRequest{}, DefaultPage, DefaultLimit},
		{"negative values use defaults", PageRequest{Page: -3, Limit: -1}, DefaultPage, DefaultLimit},
		{"valid values kept", PageRequest{Page: 4, Limit: 50}, 4, 50},
		{"limit capped", PageRequest{Page: 1, Limit: 5000}, 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Clamp()

			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, PageRequest{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 90, PageRequest{Page: 10, Limit: 10}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 0, Limit: 20}.Offset())
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		total         int64
		wantPageCount int
	}{
		{"exact multiple", 20, 40, 2},
		{"partial last page", 20, 41, 3},
		{"total below one page", 20, 5, 1},
		{"empty result", 20, 0, 0},
		{"single row single page", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(PageRequest{Page: 1, Limit: tt.limit}, tt.total)

			assert.Equal(t, tt.wantPageCount, meta.PageCount)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.limit, meta.Limit)
		})
	}
}
