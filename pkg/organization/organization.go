package organization

import (
	"github.com/Optum/guardduty-enabler/pkg/arn"
	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/Optum/guardduty-enabler/pkg/broker"
	"github.com/Optum/guardduty-enabler/pkg/clients"
	"github.com/Optum/guardduty-enabler/pkg/common"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/organizations"
	"github.com/sirupsen/logrus"
)

// ListAccountsPageSize is the page size used when listing the organization
const ListAccountsPageSize = 20

// Directory reads the organization through one Organizations client
type Directory struct {
	client awsiface.OrganizationsAPI
}

// NewDirectory binds a Directory to an Organizations client
func NewDirectory(client awsiface.OrganizationsAPI) *Directory {
	return &Directory{client: client}
}

// AdministratorAccountID returns the organization's management account id
func (d *Directory) AdministratorAccountID() (string, error) {
	out, err := d.client.DescribeOrganization(&organizations.DescribeOrganizationInput{})
	if err != nil {
		return "", errors.NewInternalServer("unable to describe organization", err)
	}
	if out.Organization == nil {
		return "", errors.NewNotFound("organization", "")
	}
	return aws.StringValue(out.Organization.MasterAccountId), nil
}

// Describe returns one account of the organization
func (d *Directory) Describe(accountID string) (*Account, error) {
	out, err := d.client.DescribeAccount(&organizations.DescribeAccountInput{
		AccountId: aws.String(accountID),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == organizations.ErrCodeAccountNotFoundException {
			return nil, errors.NewNotFound("account", accountID)
		}
		return nil, errors.NewInternalServer("unable to get account details from organizational parent", err)
	}
	return newAccount(out.Account), nil
}

// List returns every account of the organization
func (d *Directory) List() ([]*Account, error) {
	accounts, err := common.DrainPages(func(token *string) ([]*Account, *string, error) {
		out, err := d.client.ListAccounts(&organizations.ListAccountsInput{
			MaxResults: aws.Int64(ListAccountsPageSize),
			NextToken:  token,
		})
		if err != nil {
			return nil, nil, err
		}
		page := make([]*Account, 0, len(out.Accounts))
		for _, a := range out.Accounts {
			page = append(page, newAccount(a))
		}
		return page, out.NextToken, nil
	})
	if err != nil {
		return nil, errors.NewInternalServer("unable to list organization accounts", err)
	}
	return accounts, nil
}

// Service resolves directory data across account boundaries
type Service struct {
	broker  broker.Brokerer
	clients clients.Clienter
	log     *logrus.Entry
}

// Directory returns a Directory for the process identity, or for the
// role payerArn when it is set
func (s *Service) Directory(payerArn *arn.ARN) (*Directory, error) {
	if payerArn == nil {
		return NewDirectory(s.clients.Organizations(nil)), nil
	}
	creds, err := s.broker.AssumeRole(payerArn)
	if err != nil {
		s.log.Errorf("Unable to assume role in payer %s: %s", payerArn, err)
		return nil, err
	}
	return NewDirectory(s.clients.Organizations(creds)), nil
}

// ResolveAdministratorAccountID assumes roleName into accountID and asks
// the organization which account administers it
func (s *Service) ResolveAdministratorAccountID(accountID string, roleName string) (string, error) {
	creds, err := s.broker.ForAccount(accountID, roleName)
	if err != nil {
		s.log.Errorf("Failed to assume role %s in %s: %s", roleName, accountID, err)
		return "", err
	}
	adminID, err := NewDirectory(s.clients.Organizations(creds)).AdministratorAccountID()
	if err != nil {
		s.log.Errorf("Unable to find the organization of %s: %s", accountID, err)
		return "", err
	}
	return adminID, nil
}

// DescribeAccount assumes roleName into the administrator account and
// fetches one account's details
func (s *Service) DescribeAccount(adminAccountID string, roleName string, accountID string) (*Account, error) {
	creds, err := s.broker.ForAccount(adminAccountID, roleName)
	if err != nil {
		s.log.Errorf("Failed to assume role %s in %s: %s", roleName, adminAccountID, err)
		return nil, err
	}
	account, err := NewDirectory(s.clients.Organizations(creds)).Describe(accountID)
	if err != nil {
		s.log.Errorf("Unable to get account details from Organizational Parent: %s", err)
		return nil, err
	}
	return account, nil
}

// NewServiceInput are the items needed to create a new service
type NewServiceInput struct {
	Broker  broker.Brokerer
	Clients clients.Clienter
	Log     *logrus.Entry
}

// NewService creates a new organization service
func NewService(input NewServiceInput) *Service {
	log := input.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		broker:  input.Broker,
		clients: input.Clients,
		log:     log.WithField("component", "organization"),
	}
}
