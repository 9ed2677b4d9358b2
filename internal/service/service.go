package service

import (
	"github.com/minio/minio-go/v7"

	"admissions-portal/internal/config"
	"admissions-portal/internal/repository"
	"admissions-portal/internal/service/application"
	"admissions-portal/internal/service/auth"
	"admissions-portal/internal/service/email"
	"admissions-portal/internal/service/export"
	"admissions-portal/internal/service/inbox"
	"admissions-portal/internal/service/notification"
	"admissions-portal/internal/service/workflow"
	"admissions-portal/internal/store"
)

type Services struct {
	Auth         auth.Service
	Application  application.Service
	Workflow     workflow.Service
	Notification notification.Service
	Inbox        inbox.Service
	Export       export.Service
	Email        email.Service
}

func NewServices(repos *repository.Repositories, st *store.Store, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, cfg)
	applicationService := application.NewService(st)
	notificationService := notification.NewService(st)
	inboxService := inbox.NewService(st)
	exportService := export.NewService(st, repos.Directory, minioClient, cfg)

	workflowService := workflow.NewService(
		st,
		repos.Directory,
		inboxService,
		notificationService,
		emailService,
		exportService,
	)

	return &Services{
		Auth:         authService,
		Application:  applicationService,
		Workflow:     workflowService,
		Notification: notificationService,
		Inbox:        inboxService,
		Export:       exportService,
		Email:        emailService,
	}
}
