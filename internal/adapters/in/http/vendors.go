package http

import (
	"net/http"

	"vendorflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetVendorPerformance handles GET /api/v1/vendors/:id/performance.
func (s *Server) GetVendorPerformance(c echo.Context) error {
	vendorID, err := parseID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetVendorPerformanceQuery(vendorID)
	if err != nil {
		return s.writeError(c, err)
	}

	perf, err := s.handlers.GetVendorPerformance.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, vendorPerformanceResponse{
		VendorID:            perf.VendorID,
		Name:                perf.Name,
		performanceResponse: newPerformanceResponse(perf.PerformanceMetrics),
	})
}

// GetVendorPerformanceHistory handles GET /api/v1/vendors/:id/performance/history.
func (s *Server) GetVendorPerformanceHistory(c echo.Context) error {
	vendorID, err := parseID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetVendorPerformanceHistoryQuery(vendorID)
	if err != nil {
		return s.writeError(c, err)
	}

	history, err := s.handlers.GetVendorPerformanceHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	resp := make([]performanceRecordResponse, 0, len(history))
	for _, record := range history {
		resp = append(resp, performanceRecordResponse{
			RecordedAt:          record.RecordedAt,
			performanceResponse: newPerformanceResponse(record.PerformanceMetrics),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
