package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"zelo/internal/application/reminder"
	"zelo/internal/infrastructure/config"
	"zelo/internal/infrastructure/database"
	"zelo/internal/infrastructure/email"
	"zelo/internal/infrastructure/repository"
	"zelo/internal/infrastructure/scheduler"
	"zelo/internal/shared/constants"
	"zelo/internal/shared/logger"
)

func main() {
	env := constants.EnvDevelopment
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting reminder worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	assistanceRepo := repository.NewAssistanceRepository(database.Get())
	supplierRepo := repository.NewSupplierRepository(database.Get())
	buildingRepo := repository.NewBuildingRepository(database.Get())

	emailSvc := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		PortalURL:   cfg.SupplierPortal.BaseURL,
	})

	remindersUC := reminder.NewProcessRemindersUseCase(assistanceRepo, supplierRepo, buildingRepo, emailSvc, log)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}

	if err := manager.RegisterReminderJob(cfg.Reminder.Cron, remindersUC); err != nil {
		log.Fatalw("failed to register reminder job", "error", err)
	}

	manager.Start()
	log.Infow("reminder scheduler started", "cron", cfg.Reminder.Cron)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Infow("shutting down reminder worker")
	if err := manager.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
	}
}
