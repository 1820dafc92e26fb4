package main

import (
	"fmt"
	"net/http"

	"github.com/teamtrack-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/teamtrack-hq/attendance-backend-go/internal/handler/http"
	"github.com/teamtrack-hq/attendance-backend-go/internal/pkg/database"
	"github.com/teamtrack-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/teamtrack-hq/attendance-backend-go/internal/repository/postgresql"
	"github.com/teamtrack-hq/attendance-backend-go/internal/service/hierarchy"
	reportService "github.com/teamtrack-hq/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	resolver := hierarchy.NewResolver(employeeRepo, cfg.Aggregation.MaxSubtreeSize)
	reports := reportService.NewReportService(
		employeeRepo,
		attendanceRepo,
		holidayRepo,
		projectRepo,
		resolver,
		cfg.Aggregation.WorkHoursCeiling,
	)

	reportHandler := appHTTP.NewReportHandler(reports)
	router := appHTTP.NewRouter(jwtService, reportHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
