package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "personnel-records-service/internal/adapter/http"
	"personnel-records-service/internal/adapter/middleware"
	"personnel-records-service/internal/adapter/repository/mysql"
	"personnel-records-service/internal/config"
	"personnel-records-service/internal/domain/authz"
	"personnel-records-service/internal/infrastructure/cache"
	"personnel-records-service/internal/infrastructure/db"
	auditUC "personnel-records-service/internal/usecase/audit"
	ledgerUC "personnel-records-service/internal/usecase/ledger"
	lifecycleUC "personnel-records-service/internal/usecase/lifecycle"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories + unit of work
	assignments := mysql.NewAssignmentRepository(gdb)
	classifications := mysql.NewClassificationRepository(gdb)
	changes := mysql.NewLedgerRepository(gdb)
	audits := mysql.NewAuditRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	recorder := auditUC.NewRecorder(audits)
	// capability evaluation is upstream; every authenticated actor passes here
	var checker authz.Checker = authz.AllowAll{}

	ledger := ledgerUC.NewUsecase(tx, assignments, classifications, changes, checker, recorder)
	lifecycle := lifecycleUC.NewUsecase(tx, classifications, checker, recorder)

	h := httpadp.NewHandler()
	ledgerH := httpadp.NewLedgerHandler(ledger, cfg.AppDebug)
	levelH := httpadp.NewLevelHandler(lifecycle, cfg.AppDebug)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.RequestID(), echomw.Logger(), echomw.Recover())
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	g := e.Group("/assignments/:assignment_id/classifications/:kind")
	g.POST("/promotions", ledgerH.Promote)
	g.POST("/corrections", ledgerH.Correct)
	g.GET("/history", ledgerH.History)
	g.GET("/summary", ledgerH.Summary)

	e.POST("/classification-levels", levelH.Create)
	e.GET("/classification-levels", levelH.List)
	e.GET("/classification-levels/:level_id", levelH.Get)
	e.PATCH("/classification-levels/:level_id", levelH.Update)
	e.DELETE("/classification-levels/:level_id", levelH.Trash)
	e.POST("/classification-levels/:level_id/restore", levelH.Restore)
	e.DELETE("/classification-levels/:level_id/purge", levelH.Purge)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
