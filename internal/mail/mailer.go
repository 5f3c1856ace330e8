package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	"github.com/eventdesk/eventdesk-api/internal/config"
)

// Mailer sends invite notifications. The contact service depends on this
// through its own interface.
type Mailer interface {
	SendInvite(ctx context.Context, to, name, eventTitle string) error
}

// NewMailer picks the implementation by config. Provider "ses" uses AWS
// SES; "noop" and anything unknown falls back to a no-op mailer.
func NewMailer(conf *config.MailConfig) Mailer {
	if conf == nil {
		return &noopMailer{}
	}

	switch conf.Provider {
	case "ses":
		if conf.SES == nil {
			zap.L().Warn("mail provider is ses but the ses config block is missing, using noop")
			return &noopMailer{}
		}
		awsCfg := aws.Config{
			Region: conf.SES.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					conf.SES.AccessKeyID,
					conf.SES.SecretAccessKey,
					"",
				),
			),
		}
		return &sesMailer{
			client:      ses.NewFromConfig(awsCfg),
			fromAddress: conf.FromAddress,
			fromName:    conf.FromName,
		}
	case "noop":
		return &noopMailer{}
	default:
		zap.L().Warn("unknown mail provider, using noop", zap.String("provider", conf.Provider))
		return &noopMailer{}
	}
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
}

func (m *sesMailer) SendInvite(ctx context.Context, to, name, eventTitle string) error {
	subject := fmt.Sprintf("You are invited to %v", eventTitle)
	body := fmt.Sprintf("Hello %v,\n\nYou have been invited to %v. We look forward to seeing you there.\n", name, eventTitle)

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(fmt.Sprintf("%v <%v>", m.fromName, m.fromAddress)),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("m.client.SendEmail -> %w", err)
	}

	return nil
}

type noopMailer struct{}

func (m *noopMailer) SendInvite(_ context.Context, to, _, _ string) error {
	zap.L().Debug("noop mailer: skipping invite mail", zap.String("to", to))
	return nil
}
