package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/worklog-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/worklog-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/worklog-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/worklog-backend-go/internal/repository/postgresql"
	ingestService "github.com/cmlabs-hris/worklog-backend-go/internal/service/ingest"
	reportService "github.com/cmlabs-hris/worklog-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	attendanceSvc := ingestService.NewAttendanceService(db, employeeRepo, attendanceRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(attendanceHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
