package clients

import (
	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/Optum/guardduty-enabler/pkg/broker"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/guardduty"
	"github.com/aws/aws-sdk-go/service/organizations"
)

//go:generate mockery -name Clienter

// Clienter builds AWS clients scoped to one identity. A nil set of
// credentials means the identity the process runs as.
type Clienter interface {
	GuardDuty(region string, creds *broker.Credentials) awsiface.GuardDutyAPI
	Organizations(creds *broker.Credentials) awsiface.OrganizationsAPI
	EC2() awsiface.EC2API
}

// Client helps with client management testing and abstraction
type Client struct {
	session client.ConfigProvider
}

// Config returns the client config for the region and identity
func (c *Client) Config(region string, creds *broker.Credentials) *aws.Config {
	config := aws.NewConfig()
	if region != "" {
		config = config.WithRegion(region)
	}
	if creds != nil {
		config = config.WithCredentials(creds.Provider())
	}
	return config
}

// GuardDuty creates a GuardDuty client for one region
func (c *Client) GuardDuty(region string, creds *broker.Credentials) awsiface.GuardDutyAPI {
	return guardduty.New(c.session, c.Config(region, creds))
}

// Organizations creates an Organizations client
func (c *Client) Organizations(creds *broker.Credentials) awsiface.OrganizationsAPI {
	return organizations.New(c.session, c.Config("", creds))
}

// EC2 creates an EC2 client in the session's region
func (c *Client) EC2() awsiface.EC2API {
	return ec2.New(c.session)
}

// New creates a new client factory on top of an AWS session
func New(session client.ConfigProvider) *Client {
	return &Client{
		session: session,
	}
}
