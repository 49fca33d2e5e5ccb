package organizationiface

import (
	"github.com/Optum/guardduty-enabler/pkg/arn"
	"github.com/Optum/guardduty-enabler/pkg/organization"
)

//go:generate mockery -name Servicer

// Servicer resolves organization directory data
type Servicer interface {
	Directory(payerArn *arn.ARN) (*organization.Directory, error)
	ResolveAdministratorAccountID(accountID string, roleName string) (string, error)
	DescribeAccount(adminAccountID string, roleName string, accountID string) (*organization.Account, error)
}
