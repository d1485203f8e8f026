package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"kas-taruna/internal/config"
	"kas-taruna/internal/handler"
	applog "kas-taruna/internal/logger"
	"kas-taruna/internal/middleware"
	"kas-taruna/internal/model"
	"kas-taruna/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	err = db.AutoMigrate(
		&model.Profile{},
		&model.Member{},
		&model.Organization{},
		&model.MonthlyPayment{},
		&model.Transaction{},
		&model.Meeting{},
	)
	if err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	orgSvc := service.NewOrgService(db)
	if err := orgSvc.Seed(context.Background()); err != nil {
		slog.Error("organization seed failed", "err", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(db)
	memberSvc := service.NewMemberService(db)
	paymentSvc := service.NewPaymentService(db, orgSvc)
	txSvc := service.NewTransactionService(db, orgSvc)
	meetingSvc := service.NewMeetingService(db, memberSvc)
	reportSvc := service.NewReportService(db, orgSvc, memberSvc, paymentSvc)

	authH := handler.NewAuthHandler(authSvc)
	memberH := handler.NewMemberHandler(memberSvc, paymentSvc, orgSvc)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	txH := handler.NewTransactionHandler(txSvc)
	meetingH := handler.NewMeetingHandler(meetingSvc)
	reportH := handler.NewReportHandler(reportSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)
	api := r.Group("/api", middleware.JWTAuth())

	api.GET("/members", memberH.List)
	api.POST("/members", memberH.Add)
	api.DELETE("/members/:id", memberH.Delete)
	api.PUT("/balance/cash", memberH.SetCashBalance)
	api.PUT("/balance/bank", memberH.SetBankBalance)

	api.POST("/payments", paymentH.Pay)
	api.DELETE("/payments", paymentH.Unpay)

	api.GET("/transactions", txH.List)
	api.POST("/transactions", txH.Add)
	api.DELETE("/transactions/:id", txH.Delete)

	api.GET("/meetings", meetingH.List)
	api.POST("/meetings", meetingH.Add)
	api.DELETE("/meetings/:id", meetingH.Delete)
	api.POST("/wheel/spin", meetingH.Spin)
	api.POST("/wheel/commit", meetingH.CommitSpin)

	api.GET("/reports", reportH.Get)
	api.GET("/reports/export", reportH.Export)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
