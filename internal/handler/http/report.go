package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/report"
	"github.com/chamcong-vn/attendance-backend-go/internal/handler/http/response"
	reportservice "github.com/chamcong-vn/attendance-backend-go/internal/service/report"
)

type ReportHandler interface {
	SalarySummary(w http.ResponseWriter, r *http.Request)
	AttendanceDetail(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService *reportservice.Service
}

func NewReportHandler(reportService *reportservice.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) SalarySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.SalarySummary(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	serveExport(w, result)
}

func (h *reportHandlerImpl) AttendanceDetail(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AttendanceDetail(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	serveExport(w, result)
}

func periodFromQuery(r *http.Request) report.PeriodRequest {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return report.PeriodRequest{Month: month, Year: year}
}

func serveExport(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	_, _ = w.Write(export.Data)
}
