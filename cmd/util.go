package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"portfoliobook/api"
	"portfoliobook/internal"
	"portfoliobook/internal/repository"
	"portfoliobook/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	consultationRepository := repository.NewConsultationRepository(dbConn)
	requestLogRepository := repository.RequestLogRepositoryHandler{}

	emailRepository, err := repository.NewEmailRepository(
		secrets.SES.Region,
		secrets.SES.FromName,
		secrets.SES.FromAddress,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}

	mailService := service.NewMailService(emailRepository, secrets.SES.AdminEmail)
	intakeService := service.NewIntakeService(consultationRepository, mailService)

	apiHandler := &api.ApiHandler{
		Db:                     dbConn,
		IntakeService:          intakeService,
		MailService:            mailService,
		ConsultationRepository: consultationRepository,
		RequestLogRepository:   requestLogRepository,
		JwtDecodeToken:         secrets.Jwt,
	}

	return apiHandler, nil
}
