package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"portfoliobook/internal/db/models/postgres/public/model"
	"portfoliobook/internal/domain"
	"portfoliobook/internal/logger"
	"portfoliobook/internal/repository"
	"portfoliobook/pkg/apperr"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SubmitConsultationRequest struct {
	Name              string
	Email             string
	Phone             string
	Company           string
	Role              string
	About             string
	Goals             string
	PreferredDateTime string
	Timezone          string
	Source            string
	BookingType       string
	Subscribed        *bool
	Notify            []string
}

type SubmitConsultationResponse struct {
	ID                int32
	Email             string
	Status            string
	PreferredDateTime string
	CreatedAt         time.Time
}

// IntakeService owns the validate -> dedupe -> persist transaction for
// new consultation requests, plus the detached notification dispatch.
type IntakeService interface {
	Submit(ctx context.Context, req SubmitConsultationRequest) (*SubmitConsultationResponse, error)
}

type intakeServiceHandler struct {
	ConsultationRepository repository.ConsultationRepository
	MailService            MailService
}

func NewIntakeService(
	consultationRepository repository.ConsultationRepository,
	mailService MailService,
) IntakeService {
	return &intakeServiceHandler{
		ConsultationRepository: consultationRepository,
		MailService:            mailService,
	}
}

func (s *intakeServiceHandler) Submit(ctx context.Context, req SubmitConsultationRequest) (*SubmitConsultationResponse, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Company = strings.TrimSpace(req.Company)
	req.Role = strings.TrimSpace(req.Role)
	req.About = strings.TrimSpace(req.About)
	req.Goals = strings.TrimSpace(req.Goals)
	req.PreferredDateTime = strings.TrimSpace(req.PreferredDateTime)

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Company == "" ||
		req.Role == "" || req.About == "" || req.Goals == "" || req.PreferredDateTime == "" {
		return nil, apperr.New(apperr.CodeValidation, "Missing required fields")
	}

	if !emailRe.MatchString(req.Email) {
		return nil, apperr.New(apperr.CodeValidation, "Please provide a valid email address")
	}

	normalizedEmail := strings.ToLower(req.Email)

	existing, err := s.ConsultationRepository.FindByEmail(normalizedEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.CodeConflict, "A consultation request already exists for this email. We'll reach out shortly.")
	}

	record := model.Consultation{
		Name:              req.Name,
		Email:             normalizedEmail,
		Phone:             req.Phone,
		Company:           req.Company,
		Role:              req.Role,
		About:             req.About,
		Goals:             req.Goals,
		PreferredDateTime: req.PreferredDateTime,
		Status:            domain.StatusNew,
		Subscribed:        req.Subscribed == nil || *req.Subscribed,
	}
	if req.Timezone != "" {
		record.Timezone = &req.Timezone
	}
	if req.Source != "" {
		record.Source = &req.Source
	}

	// the repository maps a constraint rejection from a concurrent
	// insert to the same CONFLICT the existence check produces
	created, err := s.ConsultationRepository.Create(record)
	if err != nil {
		return nil, err
	}

	log.Infof("consultation submitted: id=%d email=%s", created.ID, created.Email)

	cfg := domain.BookingConfigFor(req.BookingType)
	payload := BookingPayload{
		Name:              created.Name,
		Email:             created.Email,
		Company:           created.Company,
		Role:              created.Role,
		PreferredDateTime: created.PreferredDateTime,
		Timezone:          req.Timezone,
		BookingType:       cfg.Label,
		Goals:             created.Goals,
		About:             created.About,
		Duration:          cfg.Duration,
		Tagline:           cfg.Tagline,
		Price:             cfg.PriceLabel(),
		Notify:            req.Notify,
	}

	// fire-and-forget: detached from the request context so the caller's
	// response never waits on, and cannot cancel, the email sends
	go func() {
		dispatchCtx := logger.WithContext(context.Background(), log)
		outcomes := s.MailService.SendBookingNotifications(dispatchCtx, payload)
		for _, outcome := range outcomes {
			if outcome.Err != nil {
				log.Warnf("booking notification not delivered for consultation %d: %v", created.ID, outcome.Err)
			}
		}
	}()

	return &SubmitConsultationResponse{
		ID:                created.ID,
		Email:             created.Email,
		Status:            created.Status,
		PreferredDateTime: created.PreferredDateTime,
		CreatedAt:         created.CreatedAt,
	}, nil
}
