package organization

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/organizations"
)

// Status is the status of an account within the organization
type Status string

const (
	// StatusActive is an account that can be enrolled
	StatusActive Status = "ACTIVE"
	// StatusSuspended is a closed or suspended account
	StatusSuspended Status = "SUSPENDED"
)

// String returns the string value of the Status
func (s Status) String() string {
	return string(s)
}

// Account is a snapshot of one member account, read once per run
type Account struct {
	ID              string     `json:"id" yaml:"id"`
	ARN             string     `json:"arn,omitempty" yaml:"arn,omitempty"`
	Name            string     `json:"name" yaml:"name"`
	Email           string     `json:"email" yaml:"email"`
	Status          Status     `json:"status" yaml:"status"`
	JoinedMethod    string     `json:"joinedMethod,omitempty" yaml:"joinedMethod,omitempty"`
	JoinedTimestamp *time.Time `json:"joinedTimestamp,omitempty" yaml:"joinedTimestamp,omitempty"`
}

// IsActive reports whether the account can be enrolled
func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

// String formats the account as Name(ID)
func (a *Account) String() string {
	return a.Name + "(" + a.ID + ")"
}

func newAccount(in *organizations.Account) *Account {
	return &Account{
		ID:              aws.StringValue(in.Id),
		ARN:             aws.StringValue(in.Arn),
		Name:            aws.StringValue(in.Name),
		Email:           aws.StringValue(in.Email),
		Status:          Status(aws.StringValue(in.Status)),
		JoinedMethod:    aws.StringValue(in.JoinedMethod),
		JoinedTimestamp: in.JoinedTimestamp,
	}
}
