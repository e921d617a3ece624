package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ecommerce-auth/pkg/utils"
)

type fakeCreator struct {
	params *twilioApi.CreateMessageParams
	err    error
}

func (f *fakeCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestNewSMSSender_FallsBackToLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sender := NewSMSSender(utils.SMSConfig{}, zap.New(core))

	require.IsType(t, &logSender{}, sender)
	require.NoError(t, sender.SendSMS(context.Background(), "8801955898711", "Your code is 123456"))

	entries := logs.FilterMessage("[MOCK SMS]").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "+8801955898711", entries[0].ContextMap()["to"])
}

func TestTwilioSender_SendSMS(t *testing.T) {
	creator := &fakeCreator{}
	sender := &twilioSender{api: creator, fromNumber: "+15550000000", log: zap.NewNop()}

	require.NoError(t, sender.SendSMS(context.Background(), "+8801955898711", "hello"))
	require.NotNil(t, creator.params)
	assert.Equal(t, "+8801955898711", *creator.params.To)
	assert.Equal(t, "+15550000000", *creator.params.From)
	assert.Equal(t, "hello", *creator.params.Body)
}

func TestTwilioSender_PropagatesErrors(t *testing.T) {
	sender := &twilioSender{api: &fakeCreator{err: errors.New("401")}, fromNumber: "+1", log: zap.NewNop()}

	err := sender.SendSMS(context.Background(), "123", "hello")
	assert.ErrorContains(t, err, "failed to send SMS")
}

func TestTwilioSender_CancelledContext(t *testing.T) {
	creator := &fakeCreator{}
	sender := &twilioSender{api: creator, fromNumber: "+1", log: zap.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sender.SendSMS(ctx, "123", "hello"), context.Canceled)
	assert.Nil(t, creator.params)
}
