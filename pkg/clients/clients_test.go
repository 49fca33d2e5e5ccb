package clients

import (
	"testing"

	"github.com/Optum/guardduty-enabler/pkg/broker"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/guardduty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {

	t.Run("own identity leaves credentials to the session", func(t *testing.T) {
		c := New(nil)
		config := c.Config("eu-west-1", nil)

		assert.Equal(t, "eu-west-1", aws.StringValue(config.Region))
		assert.Nil(t, config.Credentials)
	})

	t.Run("assumed role credentials are used as static credentials", func(t *testing.T) {
		c := New(nil)
		config := c.Config("", &broker.Credentials{
			AccessKeyID:     "AKID",
			SecretAccessKey: "SECRET",
			SessionToken:    "TOKEN",
		})

		assert.Nil(t, config.Region)
		require.NotNil(t, config.Credentials)
		value, err := config.Credentials.Get()
		require.Nil(t, err)
		assert.Equal(t, "AKID", value.AccessKeyID)
	})
}

func TestGuardDuty(t *testing.T) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String("us-east-1"),
	}))
	c := New(sess)

	gd := c.GuardDuty("ap-southeast-2", nil)

	client, ok := gd.(*guardduty.GuardDuty)
	require.True(t, ok)
	assert.Equal(t, "ap-southeast-2", client.SigningRegion)
}
