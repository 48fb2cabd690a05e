package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/worklog-backend-go/internal/repository/memory"
	ingestService "github.com/cmlabs-hris/worklog-backend-go/internal/service/ingest"
	reportService "github.com/cmlabs-hris/worklog-backend-go/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	attendanceSvc := ingestService.NewAttendanceService(nil, store.EmployeeRepository(), store.AttendanceRepository())
	reportSvc := reportService.NewReportService(store.AttendanceRepository())
	return NewRouter(NewAttendanceHandler(attendanceSvc), NewReportHandler(reportSvc))
}

func uploadRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "attendance.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadThenReport(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	csv := "Employee Name,Date,In-Time,Out-Time\n" +
		"Alice,2024-07-01,09:00,17:30\n" +
		"Alice,2024-07-02,,\n"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, csv))
	require.Equal(t, http.StatusCreated, rec.Code)

	var uploadResp struct {
		Success bool `json:"success"`
		Data    struct {
			RowsProcessed int `json:"rows_processed"`
			RowsSkipped   int `json:"rows_skipped"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uploadResp))
	assert.True(t, uploadResp.Success)
	assert.Equal(t, 2, uploadResp.Data.RowsProcessed)
	assert.Equal(t, 0, uploadResp.Data.RowsSkipped)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var reportResp struct {
		Success bool `json:"success"`
		Data    struct {
			Summary []struct {
				Name                string `json:"name"`
				LeavesTaken         int    `json:"leavesTaken"`
				ProductivityDisplay string `json:"productivityDisplay"`
			} `json:"summary"`
			Daily []struct {
				Date   string `json:"date"`
				Status string `json:"status"`
			} `json:"daily"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reportResp))
	require.Len(t, reportResp.Data.Summary, 1)
	assert.Equal(t, "Alice", reportResp.Data.Summary[0].Name)
	require.Len(t, reportResp.Data.Daily, 2)
	assert.Equal(t, "2024-07-02", reportResp.Data.Daily[0].Date)
	assert.Equal(t, "Absent/Leave", reportResp.Data.Daily[0].Status)
}

func TestUpload_MissingFileField(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_UnreadableWorkbook(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "attendance.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a spreadsheet"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReport_EmptyStore(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"summary":[]`)
	assert.Contains(t, rec.Body.String(), `"daily":[]`)
}

func TestReportExportCSV(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	csv := "Employee Name,Date,In-Time,Out-Time\nAlice,2024-07-01,09:00,17:30\n"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, csv))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report/export/csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance_report.csv")
	assert.Contains(t, rec.Body.String(), "Employee Name,Expected Hours,Actual Hours,Leaves Taken,Productivity %")
	assert.Contains(t, rec.Body.String(), "Alice")
}
