package fanout

import (
	"github.com/Optum/guardduty-enabler/pkg/common"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/Optum/guardduty-enabler/pkg/organization"
	"github.com/Optum/guardduty-enabler/pkg/request"
	"github.com/sirupsen/logrus"
)

// AccountLister lists the accounts of the organization
type AccountLister interface {
	List() ([]*organization.Account, error)
}

// PublishInput are the items needed to publish enable messages
type PublishInput struct {
	Accounts       AccountLister
	Notificationer common.Notificationer
	TopicArn       string
	// Template is copied into every message; AccountID is overwritten
	Template request.Request
	Log      *logrus.Entry
}

// Publish sends one enable message per ACTIVE account and returns how many
// were published. A failed publish does not stop the others; the failures
// are returned together once every account was attempted.
func Publish(input *PublishInput) (int, error) {
	input.Log.Info("Looking up organization accounts...")
	accounts, err := input.Accounts.List()
	if err != nil {
		return 0, err
	}
	input.Log.Infof("Found %d accounts", len(accounts))

	publishErrors := []error{}
	published := 0
	for _, account := range accounts {
		if !account.IsActive() {
			input.Log.Infof("Account %s is inactive. No action being taken.", account)
			continue
		}

		msg := input.Template
		msg.AccountID = account.ID
		body, err := common.PrepareSNSMessageJSON(msg)
		if err != nil {
			publishErrors = append(publishErrors, err)
			continue
		}

		_, err = input.Notificationer.PublishMessage(&input.TopicArn, &body, true)
		if err != nil {
			input.Log.Errorf("Failed to publish enable message for %s: %s", account, err)
			publishErrors = append(publishErrors, err)
			continue
		}
		published++
	}

	// Combine any publish errors into a single error response
	if len(publishErrors) > 0 {
		return published, errors.NewMultiError(
			"Failed to publish some enable messages",
			publishErrors,
		)
	}

	input.Log.Infof("Successfully published enable messages for %d/%d accounts", published, len(accounts))
	return published, nil
}
