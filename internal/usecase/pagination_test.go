package usecase

import "testing"

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, DefaultPage, DefaultLimit},
		{"negative", -5, -5, DefaultPage, DefaultLimit},
		{"above max limit", 2, MaxLimit + 1, 2, MaxLimit},
		{"at max limit", 2, MaxLimit, 2, MaxLimit},
		{"in range", 7, 42, 7, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePage(tt.page, tt.limit)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("NormalizePage(%d, %d) = %+v, want {%d %d}", tt.page, tt.limit, got, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		page Page
		want int
	}{
		{Page{Page: 1, Limit: 10}, 0},
		{Page{Page: 2, Limit: 10}, 10},
		{Page{Page: 5, Limit: 25}, 100},
	}

	for _, tt := range tests {
		if got := tt.page.Offset(); got != tt.want {
			t.Errorf("%+v.Offset() = %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      Page
		total     int64
		wantPages int64
	}{
		{"empty", Page{Page: 1, Limit: 10}, 0, 0},
		{"exact multiple", Page{Page: 1, Limit: 10}, 40, 4},
		{"partial last page", Page{Page: 1, Limit: 10}, 41, 5},
		{"single row", Page{Page: 1, Limit: 10}, 1, 1},
		{"total below limit", Page{Page: 1, Limit: 100}, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPagination(tt.page, tt.total)
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.Total != tt.total {
				t.Errorf("Total = %d, want %d", got.Total, tt.total)
			}
			if got.Page != tt.page.Page || got.Limit != tt.page.Limit {
				t.Errorf("page window = {%d %d}, want {%d %d}", got.Page, got.Limit, tt.page.Page, tt.page.Limit)
			}
		})
	}
}
