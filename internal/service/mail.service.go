package service

import (
	"context"
	"fmt"
	"sync"

	"portfoliobook/internal/logger"
	"portfoliobook/internal/repository"
	"portfoliobook/internal/templates"
)

// BookingPayload is the data bag rendered into both notification
// templates. BookingType, Duration and Tagline carry the human-facing
// catalog values, not the raw type tag.
type BookingPayload struct {
	Name              string
	Email             string
	Company           string
	Role              string
	PreferredDateTime string
	Timezone          string
	BookingType       string
	Goals             string
	About             string
	Duration          string
	Tagline           string
	// Price is the display label for the session price ("Free", "$15").
	Price string
	// Notify lists extra recipients for the admin copy.
	Notify []string
}

// SendOutcome is the settled result of one send. Err is nil when the
// transport accepted the message.
type SendOutcome struct {
	Recipients []string
	Subject    string
	Err        error
}

// MailService renders templates and dispatches notification emails.
// Booking dispatch sends the user confirmation and the admin
// notification concurrently; neither send can fail the other.
type MailService interface {
	SendBookingNotifications(ctx context.Context, payload BookingPayload) []SendOutcome
	RenderNamedTemplate(name string, data map[string]interface{}) (string, error)
	SendMail(ctx context.Context, req repository.SendEmailRequest) error
}

type mailServiceHandler struct {
	EmailRepository repository.EmailRepository
	AdminEmail      string
}

func NewMailService(emailRepository repository.EmailRepository, adminEmail string) MailService {
	return &mailServiceHandler{
		EmailRepository: emailRepository,
		AdminEmail:      adminEmail,
	}
}

func (p BookingPayload) templateData() map[string]interface{} {
	timezone := p.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	bookingType := p.BookingType
	if bookingType == "" {
		bookingType = "Consultation"
	}
	price := p.Price
	if price == "" {
		price = "Free"
	}
	return map[string]interface{}{
		"name":              p.Name,
		"email":             p.Email,
		"company":           p.Company,
		"role":              p.Role,
		"preferredDateTime": p.PreferredDateTime,
		"timezone":          timezone,
		"bookingType":       bookingType,
		"goals":             p.Goals,
		"about":             p.About,
		"duration":          p.Duration,
		"tagline":           p.Tagline,
		"price":             price,
	}
}

func (h *mailServiceHandler) SendBookingNotifications(ctx context.Context, payload BookingPayload) []SendOutcome {
	log := logger.FromContext(ctx)

	userTpl, err := templates.Load("booking-user")
	if err != nil {
		return []SendOutcome{{Err: err}}
	}
	adminTpl, err := templates.Load("booking-admin")
	if err != nil {
		return []SendOutcome{{Err: err}}
	}

	data := payload.templateData()
	userHTML := templates.Render(userTpl, data)
	adminHTML := templates.Render(adminTpl, data)

	bookingLabel := data["bookingType"].(string)

	sends := []repository.SendEmailRequest{}
	if payload.Email != "" {
		sends = append(sends, repository.SendEmailRequest{
			To:      []string{payload.Email},
			Subject: fmt.Sprintf("Booking confirmation — %s", bookingLabel),
			HTML:    userHTML,
		})
	}

	name := payload.Name
	if name == "" {
		name = "(unknown)"
	}
	adminRecipients := append([]string{h.AdminEmail}, payload.Notify...)
	sends = append(sends, repository.SendEmailRequest{
		To:      adminRecipients,
		Subject: fmt.Sprintf("New booking: %s — %s", name, bookingLabel),
		HTML:    adminHTML,
	})

	outcomes := make([]SendOutcome, len(sends))
	var wg sync.WaitGroup
	for i, send := range sends {
		wg.Add(1)
		go func(i int, send repository.SendEmailRequest) {
			defer wg.Done()
			sendErr := h.EmailRepository.SendEmail(ctx, send)
			outcomes[i] = SendOutcome{
				Recipients: send.To,
				Subject:    send.Subject,
				Err:        sendErr,
			}
			if sendErr != nil {
				log.Warnf("booking notification send failed: to=%v subject=%q err=%v", send.To, send.Subject, sendErr)
			}
		}(i, send)
	}
	wg.Wait()

	return outcomes
}

func (h *mailServiceHandler) RenderNamedTemplate(name string, data map[string]interface{}) (string, error) {
	tpl, err := templates.Load(name)
	if err != nil {
		return "", err
	}
	return templates.Render(tpl, data), nil
}

func (h *mailServiceHandler) SendMail(ctx context.Context, req repository.SendEmailRequest) error {
	return h.EmailRepository.SendEmail(ctx, req)
}
