package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"ecommerce-auth/pkg/utils"
)

// SMSSender delivers one-time codes to a mobile number.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// messageCreator is the slice of the Twilio API used here.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type twilioSender struct {
	api        messageCreator
	fromNumber string
	log        *zap.Logger
}

// NewSMSSender returns a Twilio sender, or one that only logs the message
// when no credentials are configured.
func NewSMSSender(cfg utils.SMSConfig, log *zap.Logger) SMSSender {
	log = log.With(zap.String("notifier", "sms"))

	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		log.Warn("Twilio not configured, SMS will be logged only")
		return &logSender{log: log}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &twilioSender{
		api:        client.Api,
		fromNumber: cfg.FromNumber,
		log:        log,
	}
}

func (t *twilioSender) SendSMS(ctx context.Context, to, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toE164(to))
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	resp, err := t.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		t.log.Debug("SMS sent", zap.String("sid", *resp.Sid))
	}
	return nil
}

type logSender struct {
	log *zap.Logger
}

func (l *logSender) SendSMS(_ context.Context, to, message string) error {
	l.log.Info("[MOCK SMS]", zap.String("to", toE164(to)), zap.String("message", message))
	return nil
}

func toE164(number string) string {
	return "+" + strings.TrimPrefix(number, "+")
}
