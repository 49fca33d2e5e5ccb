package arn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/aws/aws-sdk-go/aws/arn"
)

const defaultPartition = "aws"

// ARN - Custom ARN type for helping with formatting
type ARN struct {
	arn.ARN
}

// UnmarshalJSON - Custom unmarshalling of an ARN
func (a *ARN) UnmarshalJSON(data []byte) error {

	unquoted, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.NewValidation("arn", fmt.Errorf("unexpected error unquoting string: %w", err))
	}
	return a.parseString(unquoted)
}

// MarshalJSON for creating a JSON string of ARN
func (a *ARN) MarshalJSON() ([]byte, error) {
	quoted := strconv.Quote(a.String())
	return []byte(quoted), nil
}

func (a *ARN) parseString(arnString string) error {
	parsed, err := arn.Parse(arnString)
	if err != nil {
		return errors.NewValidation("arn", err)
	}
	a.Partition = parsed.Partition
	a.Service = parsed.Service
	a.Region = parsed.Region
	a.AccountID = parsed.AccountID
	a.Resource = parsed.Resource
	return nil
}

// IAMResourceName returns the value from beyond the last /
// it will return nil if its not an IAM based arn
func (a *ARN) IAMResourceName() *string {

	if a.Service != "iam" {
		return nil
	}

	resourceName := strings.Split(a.Resource, "/")

	return &resourceName[len(resourceName)-1]
}

// NewFromArn creates a new ARN instance
func NewFromArn(arnString string) (*ARN, error) {
	new := &ARN{}
	err := new.parseString(arnString)
	if err != nil {
		return nil, err
	}
	return new, nil
}

// New creates a new ARN instance
func New(partition string, service string, region string, accountID string, resource string) *ARN {
	return &ARN{
		arn.ARN{
			Partition: partition,
			Service:   service,
			Region:    region,
			AccountID: accountID,
			Resource:  resource,
		},
	}
}

// NewRole returns the ARN of the IAM role roleName in accountID,
// e.g. arn:aws:iam::123456789012:role/OrganizationAccountAccessRole
func NewRole(accountID string, roleName string) *ARN {
	return New(defaultPartition, "iam", "", accountID, "role/"+roleName)
}
