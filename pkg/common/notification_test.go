package common

import (
	"fmt"
	"testing"

	awsMocks "github.com/Optum/guardduty-enabler/pkg/awsiface/mocks"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPrepareSNSMessageJSON(t *testing.T) {

	t.Run("should prepare an SNS message as JSON", func(t *testing.T) {
		obj := struct {
			AccountID string `json:"account_id"`
		}{
			AccountID: "123456789012",
		}
		message, err := PrepareSNSMessageJSON(obj)

		require.Nil(t, err)
		require.Equal(t, message, `{"default":"{\"account_id\":\"123456789012\"}","Body":"{\"account_id\":\"123456789012\"}"}`)
	})

}

func TestPublishMessage(t *testing.T) {

	t.Run("should publish JSON messages with a message structure", func(t *testing.T) {
		snsMock := &awsMocks.SNSAPI{}
		snsMock.On("Publish", mock.MatchedBy(func(input *sns.PublishInput) bool {
			return *input.TopicArn == "arn:aws:sns:us-east-1:123456789012:enable" &&
				input.MessageStructure != nil && *input.MessageStructure == "json"
		})).Return(&sns.PublishOutput{MessageId: aws.String("msg-1")}, nil)

		notif := &SNS{Client: snsMock}
		id, err := notif.PublishMessage(aws.String("arn:aws:sns:us-east-1:123456789012:enable"), aws.String("{}"), true)

		require.Nil(t, err)
		assert.Equal(t, "msg-1", *id)
		snsMock.AssertExpectations(t)
	})

	t.Run("should return publish errors", func(t *testing.T) {
		snsMock := &awsMocks.SNSAPI{}
		snsMock.On("Publish", mock.MatchedBy(func(input *sns.PublishInput) bool {
			return input.MessageStructure == nil
		})).Return(nil, fmt.Errorf("throttled"))

		notif := &SNS{Client: snsMock}
		id, err := notif.PublishMessage(aws.String("topic"), aws.String("plain"), false)

		assert.Nil(t, id)
		assert.EqualError(t, err, "throttled")
	})
}
