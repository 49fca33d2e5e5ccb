package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Optum/guardduty-enabler/pkg/arn"
	gdErrors "github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/Optum/guardduty-enabler/pkg/organization"
	"github.com/Optum/guardduty-enabler/pkg/request"
	"github.com/aws/aws-sdk-go/service/organizations"
	"github.com/gotidy/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPublishRun(t *testing.T) {
	t.Run("should publish the flags for every active account", func(t *testing.T) {
		ts := setup(t)
		ts.orgAPI.On("ListAccounts", mock.Anything).Return(&organizations.ListAccountsOutput{
			Accounts: []*organizations.Account{
				orgAccount("111111111111", "ACTIVE"),
				orgAccount("222222222222", "SUSPENDED"),
			},
		}, nil)
		ts.org.On("Directory", (*arn.ARN)(nil)).Return(organization.NewDirectory(ts.orgAPI), nil)

		var message string
		ts.notif.On("PublishMessage", mock.Anything, mock.Anything, true).
			Run(func(args mock.Arguments) {
				message = *args.Get(1).(*string)
			}).
			Return(ptr.String("message-id"), nil)

		run := &publishRun{
			opts: &options{
				TopicArn:   "arn:aws:sns:us-east-1:999999999999:enable",
				Regions:    []string{"us-east-1"},
				DryRun:     true,
				AcceptOnly: true,
			},
			services: ts.services,
			out:      ts.out,
			log:      ts.log,
		}
		err := run.run()
		require.Nil(t, err)

		ts.notif.AssertNumberOfCalls(t, "PublishMessage", 1)
		var envelope struct {
			Default string `json:"default"`
		}
		require.Nil(t, json.Unmarshal([]byte(message), &envelope))
		req, err := request.Parse(envelope.Default)
		require.Nil(t, err)
		assert.Equal(t, &request.Request{
			AccountID:  "111111111111",
			DryRun:     true,
			AcceptOnly: true,
			Regions:    request.Regions{"us-east-1"},
		}, req)
		assert.Equal(t, "Published 1 enable messages to arn:aws:sns:us-east-1:999999999999:enable\n", ts.out.String())
	})

	t.Run("should require a topic", func(t *testing.T) {
		ts := setup(t)

		run := &publishRun{
			opts:     &options{},
			services: ts.services,
			out:      ts.out,
			log:      ts.log,
		}
		err := run.run()
		require.NotNil(t, err)

		assert.Equal(t, 400, gdErrors.HTTPCodeForError(err))
		ts.org.AssertNotCalled(t, "Directory", mock.Anything)
	})

	t.Run("should return publish failures", func(t *testing.T) {
		ts := setup(t)
		ts.orgAPI.On("ListAccounts", mock.Anything).Return(&organizations.ListAccountsOutput{
			Accounts: []*organizations.Account{orgAccount("111111111111", "ACTIVE")},
		}, nil)
		ts.org.On("Directory", (*arn.ARN)(nil)).Return(organization.NewDirectory(ts.orgAPI), nil)
		ts.notif.On("PublishMessage", mock.Anything, mock.Anything, true).
			Return(nil, errors.New("NotFound: Topic does not exist"))

		run := &publishRun{
			opts:     &options{TopicArn: "arn:aws:sns:us-east-1:999999999999:missing"},
			services: ts.services,
			out:      ts.out,
			log:      ts.log,
		}
		err := run.run()

		assert.EqualError(t, err, "Failed to publish some enable messages: NotFound: Topic does not exist")
		assert.Contains(t, ts.out.String(), "Published 0 enable messages")
	})
}
