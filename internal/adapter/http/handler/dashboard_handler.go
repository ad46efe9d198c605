package handler

import (
	"context"
	"net/http"

	"github.com/iho/payledger/internal/adapter/http/dto"
	"github.com/iho/payledger/internal/domain"
)

// DashboardService defines the behavior needed by DashboardHandler.
type DashboardService interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

// DashboardHandler handles dashboard HTTP requests.
type DashboardHandler struct {
	dashboardUC DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Summary returns ledger-wide totals, recent payments, top accounts and the
// daily payment trend.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardUC.Summary(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to fetch dashboard data")
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardSummaryFromDomain(summary))
}
