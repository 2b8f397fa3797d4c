package repository

import (
	"context"
	"fmt"

	"portfoliobook/pkg/apperr"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SendEmailRequest is one outbound send. FromName/FromAddress override
// the configured sender when set.
type SendEmailRequest struct {
	To          []string
	Subject     string
	HTML        string
	FromName    string
	FromAddress string
}

// EmailRepository is responsible for sending emails.
// It's a thin wrapper around AWS SES - it only sends pre-rendered HTML.
// Template rendering is handled by the mail service.
type EmailRepository interface {
	// SendEmail wraps exactly one transport call.
	SendEmail(ctx context.Context, req SendEmailRequest) error
}

type emailRepositoryHandler struct {
	sesClient   *sesv2.Client
	fromName    string
	fromAddress string
}

// NewEmailRepository creates a new email repository using AWS SES.
// region should be the AWS region (e.g., "us-east-1"); fromAddress must
// be a verified sender.
func NewEmailRepository(region, fromName, fromAddress string) (EmailRepository, error) {
	if region == "" || fromAddress == "" {
		return nil, apperr.New(apperr.CodeTransport, "email transport is not configured")
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)

	return &emailRepositoryHandler{
		sesClient:   client,
		fromName:    fromName,
		fromAddress: fromAddress,
	}, nil
}

func (h *emailRepositoryHandler) SendEmail(ctx context.Context, req SendEmailRequest) error {
	if h.sesClient == nil {
		return apperr.New(apperr.CodeTransport, "email transport is not configured")
	}

	fromName := req.FromName
	if fromName == "" {
		fromName = h.fromName
	}
	fromAddress := req.FromAddress
	if fromAddress == "" {
		fromAddress = h.fromAddress
	}
	from := fromAddress
	if fromName != "" {
		from = fmt.Sprintf("%s <%s>", fromName, fromAddress)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: req.To,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(req.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(req.HTML),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	_, err := h.sesClient.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	return nil
}
