package api

import (
	"portfoliobook/internal/domain"
	"portfoliobook/internal/repository"
	"portfoliobook/internal/service"
	"portfoliobook/pkg/apperr"

	"github.com/gin-gonic/gin"
)

type sendMailRequest struct {
	// booking notification shape
	Name              string   `json:"name"`
	FullName          string   `json:"fullName"`
	DisplayName       string   `json:"displayName"`
	Email             string   `json:"email"`
	Company           string   `json:"company"`
	Role              string   `json:"role"`
	PreferredDateTime string   `json:"preferredDateTime"`
	Date              string   `json:"date"`
	Timezone          string   `json:"timezone"`
	BookingType       string   `json:"bookingType"`
	Type              string   `json:"type"`
	Goals             string   `json:"goals"`
	About             string   `json:"about"`
	Duration          string   `json:"duration"`
	Tagline           string   `json:"tagline"`
	Notify            []string `json:"notify"`

	// template / raw send shapes
	TemplateName string                 `json:"templateName"`
	TemplateData map[string]interface{} `json:"templateData"`
	Subject      string                 `json:"subject"`
	HTML         string                 `json:"html"`
	Recipients   []string               `json:"recipients"`
	FromName     string                 `json:"fromName"`
	FromAddress  string                 `json:"fromAddress"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (r sendMailRequest) isBookingShape() bool {
	return r.BookingType != "" || r.Type != "" ||
		r.PreferredDateTime != "" || r.Date != "" ||
		r.Email != ""
}

func (r sendMailRequest) toBookingPayload() service.BookingPayload {
	bookingType := firstNonEmpty(r.BookingType, r.Type)
	cfg := domain.BookingConfigFor(bookingType)
	return service.BookingPayload{
		Name:              firstNonEmpty(r.Name, r.FullName, r.DisplayName),
		Email:             r.Email,
		Company:           r.Company,
		Role:              r.Role,
		PreferredDateTime: firstNonEmpty(r.PreferredDateTime, r.Date),
		Timezone:          r.Timezone,
		BookingType:       cfg.Label,
		Goals:             r.Goals,
		About:             r.About,
		Duration:          firstNonEmpty(r.Duration, cfg.Duration),
		Tagline:           firstNonEmpty(r.Tagline, cfg.Tagline),
		Price:             cfg.PriceLabel(),
		Notify:            r.Notify,
	}
}

// sendMail accepts three payload shapes, checked in order: a booking
// notification (fans out to user and admin), a named template render
// and send, or a raw html send. Anything else is rejected.
func (m ApiHandler) sendMail(c *gin.Context) {
	var requestBody sendMailRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(apperr.Wrap(apperr.CodeValidation, "Invalid request body", err), c)
		return
	}

	ctx := c.Request.Context()

	if requestBody.isBookingShape() {
		outcomes := m.MailService.SendBookingNotifications(ctx, requestBody.toBookingPayload())
		results := make([]gin.H, 0, len(outcomes))
		for _, outcome := range outcomes {
			result := gin.H{
				"recipients": outcome.Recipients,
				"subject":    outcome.Subject,
				"status":     "sent",
			}
			if outcome.Err != nil {
				result["status"] = "failed"
				result["error"] = apperr.MessageOf(outcome.Err)
			}
			results = append(results, result)
		}
		c.JSON(200, gin.H{"success": true, "results": results})
		return
	}

	if requestBody.TemplateName != "" && requestBody.TemplateData != nil &&
		requestBody.Subject != "" && len(requestBody.Recipients) > 0 {
		html, err := m.MailService.RenderNamedTemplate(requestBody.TemplateName, requestBody.TemplateData)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		if err := m.MailService.SendMail(ctx, repository.SendEmailRequest{
			To:          requestBody.Recipients,
			Subject:     requestBody.Subject,
			HTML:        html,
			FromName:    requestBody.FromName,
			FromAddress: requestBody.FromAddress,
		}); err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(200, gin.H{"success": true, "result": "sent"})
		return
	}

	if requestBody.HTML != "" && requestBody.Subject != "" && len(requestBody.Recipients) > 0 {
		if err := m.MailService.SendMail(ctx, repository.SendEmailRequest{
			To:          requestBody.Recipients,
			Subject:     requestBody.Subject,
			HTML:        requestBody.HTML,
			FromName:    requestBody.FromName,
			FromAddress: requestBody.FromAddress,
		}); err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(200, gin.H{"success": true, "result": "sent"})
		return
	}

	returnErrorJson(apperr.New(apperr.CodeValidation, "Invalid payload"), c)
}
