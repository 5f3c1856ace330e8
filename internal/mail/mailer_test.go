package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventdesk/eventdesk-api/internal/config"
)

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name string
		conf *config.MailConfig
		want Mailer
	}{
		{name: "nil config", conf: nil, want: &noopMailer{}},
		{name: "noop provider", conf: &config.MailConfig{Provider: "noop"}, want: &noopMailer{}},
		{name: "unknown provider", conf: &config.MailConfig{Provider: "smtp"}, want: &noopMailer{}},
		{
			name: "ses provider without ses block falls back to noop",
			conf: &config.MailConfig{Provider: "ses"},
			want: &noopMailer{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, NewMailer(tt.conf))
		})
	}

	t.Run("ses provider with ses block", func(t *testing.T) {
		m := NewMailer(&config.MailConfig{
			Provider: "ses",
			SES:      &config.SESConfig{Region: "eu-west-1"},
		})
		assert.IsType(t, &sesMailer{}, m)
	})
}
