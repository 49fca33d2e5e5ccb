package broker

import (
	"time"

	"github.com/Optum/guardduty-enabler/pkg/arn"
	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/service/sts"
)

// DefaultSessionName is the role session name recorded in CloudTrail for
// every role this tool assumes.
const DefaultSessionName = "EnableGuardDuty"

// Credentials are temporary access credentials for one assumed role.
// They are used for the calls that need them and then dropped.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      *time.Time
	RoleArn         *arn.ARN
}

// Provider returns static SDK credentials for use in a client config
func (c *Credentials) Provider() *credentials.Credentials {
	return credentials.NewStaticCredentials(c.AccessKeyID, c.SecretAccessKey, c.SessionToken)
}

// Brokerer produces credentials for cross-account roles
type Brokerer interface {
	AssumeRole(roleArn *arn.ARN) (*Credentials, error)
	ForAccount(accountID string, roleName string) (*Credentials, error)
	CallerAccountID() (string, error)
}

// Broker implements Brokerer with AWS STS
type Broker struct {
	sts         awsiface.STSAPI
	sessionName string
}

// AssumeRole assumes roleArn and returns its credentials
func (b *Broker) AssumeRole(roleArn *arn.ARN) (*Credentials, error) {
	if roleArn == nil {
		return nil, errors.NewBadRequest("role arn is required to assume a role")
	}

	out, err := b.sts.AssumeRole(&sts.AssumeRoleInput{
		RoleArn:         aws.String(roleArn.String()),
		RoleSessionName: aws.String(b.sessionName),
	})
	if err != nil {
		return nil, errors.NewRoleNotAssumable(roleArn.String(), err)
	}
	if out.Credentials == nil {
		return nil, errors.NewInternalServer("sts returned no credentials for "+roleArn.String(), nil)
	}

	return &Credentials{
		AccessKeyID:     aws.StringValue(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.StringValue(out.Credentials.SecretAccessKey),
		SessionToken:    aws.StringValue(out.Credentials.SessionToken),
		Expiration:      out.Credentials.Expiration,
		RoleArn:         roleArn,
	}, nil
}

// ForAccount assumes the role named roleName in accountID
func (b *Broker) ForAccount(accountID string, roleName string) (*Credentials, error) {
	return b.AssumeRole(arn.NewRole(accountID, roleName))
}

// CallerAccountID returns the account of the identity the process runs as
func (b *Broker) CallerAccountID() (string, error) {
	out, err := b.sts.GetCallerIdentity(&sts.GetCallerIdentityInput{})
	if err != nil {
		return "", errors.NewInternalServer("unable to get caller identity", err)
	}
	return aws.StringValue(out.Account), nil
}

// NewBrokerInput are the items needed to create a new broker
type NewBrokerInput struct {
	Sts         awsiface.STSAPI
	SessionName string
}

// NewBroker creates a new credential broker
func NewBroker(input NewBrokerInput) *Broker {
	sessionName := input.SessionName
	if sessionName == "" {
		sessionName = DefaultSessionName
	}
	return &Broker{
		sts:         input.Sts,
		sessionName: sessionName,
	}
}
