// Package sms delivers verification codes to phones. Delivery is a narrow
// collaborator: the auth flow only needs a Sender and treats any failure as
// "code not delivered".
package sms

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Sender interface {
	SendVerificationCode(phoneNumber, code string) error
}

// TwilioSender sends codes through the Twilio messaging API.
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioSender(accountSID, authToken, fromNumber string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, fromNumber: fromNumber}
}

func (t *TwilioSender) SendVerificationCode(phoneNumber, code string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(t.fromNumber)
	params.SetBody(fmt.Sprintf("Your verification code is %s", code))

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	return nil
}

// LogSender logs codes instead of sending them. Used when Twilio credentials
// are not configured (local development).
type LogSender struct{}

func (LogSender) SendVerificationCode(phoneNumber, code string) error {
	log.Printf("sms_mock to=%s code=%s", phoneNumber, code)
	return nil
}
