package app

import (
	"database/sql"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/allowance"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/attendance"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/award"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/bonus"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/config"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/disburse"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/employee"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/leave"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/ledger"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/messaging/kafka"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/middleware"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/providentfund"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	rules config.PayrollRules,
) error {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	allowanceRepo := allowance.NewRepository(gormDB)
	pfRepo := providentfund.NewRepository(gormDB)
	bonusRepo := bonus.NewRepository(gormDB)
	awardRepo := award.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	leaveService := leave.NewService(db, leaveRepo, rules.LeaveTypes)
	allowanceService := allowance.NewService(db, allowanceRepo)
	pfService := providentfund.NewService(db, pfRepo)
	bonusService := bonus.NewService(db, bonusRepo, employeeRepo, logger)
	awardService := award.NewService(awardRepo, logger)
	salaryService := salary.NewService(salary.ServiceDeps{
		DB:         db,
		Repo:       salaryRepo,
		Employees:  employeeRepo,
		Attendance: attendanceRepo,
		Leaves:     leaveRepo,
		Allowances: allowanceService,
		Bonuses:    bonusRepo,
		Awards:     awardRepo,
		PF:         pfRepo,
		Rules:      rules,
		Logger:     logger,
	})
	orchestrator := disburse.NewOrchestrator(disburse.OrchestratorDeps{
		DB:      db,
		Redis:   rdb,
		Records: salaryRepo,
		Salary:  salaryService,
		Bonuses: bonusRepo,
		Awards:  awardRepo,
		PF:      pfRepo,
		Outbox:  outboxRepo,
		Poster:  ledger.NewGormPoster(gormDB, logger),
		Rules:   rules.Disburse,
		Logger:  logger,
	})

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	allowanceHandler := allowance.NewHandler(allowanceService)
	pfHandler := providentfund.NewHandler(pfService)
	bonusHandler := bonus.NewHandler(bonusService)
	awardHandler := award.NewHandler(awardService)
	salaryHandler := salary.NewHandler(salaryService)
	disburseHandler := disburse.NewHandler(orchestrator)

	// --- Routes ---
	api := router.Group("/api/v1")
	api.Use(middleware.TenantContext(logger))
	api.Use(middleware.Idempotency(rdb))
	{
		attendance.RegisterRoutes(api, attendanceHandler)
		leave.RegisterRoutes(api, leaveHandler)
		allowance.RegisterRoutes(api, allowanceHandler)
		providentfund.RegisterRoutes(api, pfHandler)
		bonus.RegisterRoutes(api, bonusHandler)
		award.RegisterRoutes(api, awardHandler)
		salary.RegisterRoutes(api, salaryHandler)
		disburse.RegisterRoutes(api, disburseHandler)
	}

	return nil
}
