package http

import (
	"net/http"

	"github.com/cmlabs-hris/worklog-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/worklog-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Get implements ReportHandler.
func (h *reportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	monthly, err := h.reportService.MonthlyReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly)
}

// ExportCSV implements ReportHandler.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	body, err := h.reportService.SummaryCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance_report.csv"`)
	_, _ = w.Write(body)
}

// ExportXLSX implements ReportHandler.
func (h *reportHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	body, err := h.reportService.SummaryWorkbook(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance_report.xlsx"`)
	_, _ = w.Write(body)
}
