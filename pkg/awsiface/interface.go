/*
awsiface package contains interfaces for AWS SDKs.

Wrapping AWS SDK interfaces in our own local interfaces allows
us to generate mocks for them using `mockery`.
Keeping this package separate from other services prevents
cyclical dependencies in generated mock packages.

Each interface is the subset of the matching SDK `*iface` package
that this repository calls, so the concrete SDK clients satisfy them.
*/

//go:generate mockery -all
package awsiface

import (
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/guardduty"
	"github.com/aws/aws-sdk-go/service/organizations"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/sts"
)

// GuardDutyAPI covers the detector, member and invitation primitives
type GuardDutyAPI interface {
	ListDetectors(*guardduty.ListDetectorsInput) (*guardduty.ListDetectorsOutput, error)
	CreateDetector(*guardduty.CreateDetectorInput) (*guardduty.CreateDetectorOutput, error)
	ListMembers(*guardduty.ListMembersInput) (*guardduty.ListMembersOutput, error)
	CreateMembers(*guardduty.CreateMembersInput) (*guardduty.CreateMembersOutput, error)
	InviteMembers(*guardduty.InviteMembersInput) (*guardduty.InviteMembersOutput, error)
	ListInvitations(*guardduty.ListInvitationsInput) (*guardduty.ListInvitationsOutput, error)
	AcceptAdministratorInvitation(*guardduty.AcceptAdministratorInvitationInput) (*guardduty.AcceptAdministratorInvitationOutput, error)
}

// OrganizationsAPI covers the organization directory calls
type OrganizationsAPI interface {
	DescribeOrganization(*organizations.DescribeOrganizationInput) (*organizations.DescribeOrganizationOutput, error)
	DescribeAccount(*organizations.DescribeAccountInput) (*organizations.DescribeAccountOutput, error)
	ListAccounts(*organizations.ListAccountsInput) (*organizations.ListAccountsOutput, error)
}

type STSAPI interface {
	AssumeRole(*sts.AssumeRoleInput) (*sts.AssumeRoleOutput, error)
	GetCallerIdentity(*sts.GetCallerIdentityInput) (*sts.GetCallerIdentityOutput, error)
}

type EC2API interface {
	DescribeRegions(*ec2.DescribeRegionsInput) (*ec2.DescribeRegionsOutput, error)
}

type SNSAPI interface {
	Publish(*sns.PublishInput) (*sns.PublishOutput, error)
}

type SSMAPI interface {
	GetParameters(*ssm.GetParametersInput) (*ssm.GetParametersOutput, error)
}

type AwsSession interface {
	client.ConfigProvider
}
