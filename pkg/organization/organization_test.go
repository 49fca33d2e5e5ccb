package organization

import (
	"fmt"
	"testing"

	"github.com/Optum/guardduty-enabler/pkg/arn"
	awsMocks "github.com/Optum/guardduty-enabler/pkg/awsiface/mocks"
	"github.com/Optum/guardduty-enabler/pkg/broker"
	brokerMocks "github.com/Optum/guardduty-enabler/pkg/broker/mocks"
	clientMocks "github.com/Optum/guardduty-enabler/pkg/clients/mocks"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/organizations"
	"github.com/gotidy/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orgAccount(id string, status string) *organizations.Account {
	return &organizations.Account{
		Id:     ptr.String(id),
		Name:   ptr.String("account-" + id),
		Email:  ptr.String(id + "@example.com"),
		Status: ptr.String(status),
	}
}

func TestDirectoryList(t *testing.T) {

	t.Run("should drain every page of accounts", func(t *testing.T) {
		orgSvc := &awsMocks.OrganizationsAPI{}
		orgSvc.On("ListAccounts", mock.MatchedBy(func(input *organizations.ListAccountsInput) bool {
			return input.NextToken == nil && *input.MaxResults == ListAccountsPageSize
		})).Return(&organizations.ListAccountsOutput{
			Accounts:  []*organizations.Account{orgAccount("111111111111", "ACTIVE")},
			NextToken: ptr.String("page-2"),
		}, nil)
		orgSvc.On("ListAccounts", mock.MatchedBy(func(input *organizations.ListAccountsInput) bool {
			return input.NextToken != nil && *input.NextToken == "page-2"
		})).Return(&organizations.ListAccountsOutput{
			Accounts: []*organizations.Account{orgAccount("222222222222", "SUSPENDED")},
		}, nil)

		accounts, err := NewDirectory(orgSvc).List()

		require.Nil(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "111111111111", accounts[0].ID)
		assert.True(t, accounts[0].IsActive())
		assert.Equal(t, StatusSuspended, accounts[1].Status)
		assert.False(t, accounts[1].IsActive())
	})

	t.Run("should fail when a page fails", func(t *testing.T) {
		orgSvc := &awsMocks.OrganizationsAPI{}
		orgSvc.On("ListAccounts", mock.Anything).Return(nil, fmt.Errorf("AccessDenied"))

		accounts, err := NewDirectory(orgSvc).List()

		assert.Nil(t, accounts)
		assert.True(t, errors.Is(err, errors.NewInternalServer("unable to list organization accounts", nil)))
	})
}

func TestDirectoryDescribe(t *testing.T) {

	tests := []struct {
		name       string
		output     *organizations.DescribeAccountOutput
		err        error
		expAccount *Account
		expErr     error
	}{
		{
			name:   "should describe an account",
			output: &organizations.DescribeAccountOutput{Account: orgAccount("111111111111", "ACTIVE")},
			expAccount: &Account{
				ID:     "111111111111",
				Name:   "account-111111111111",
				Email:  "111111111111@example.com",
				Status: StatusActive,
			},
		},
		{
			name:   "should return not found for unknown accounts",
			err:    awserr.New(organizations.ErrCodeAccountNotFoundException, "not found", nil),
			expErr: errors.NewNotFound("account", "111111111111"),
		},
		{
			name:   "should return internal errors for other failures",
			err:    fmt.Errorf("throttled"),
			expErr: errors.NewInternalServer("unable to get account details from organizational parent", nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orgSvc := &awsMocks.OrganizationsAPI{}
			orgSvc.On("DescribeAccount", mock.MatchedBy(func(input *organizations.DescribeAccountInput) bool {
				return *input.AccountId == "111111111111"
			})).Return(tt.output, tt.err)

			account, err := NewDirectory(orgSvc).Describe("111111111111")

			assert.Equal(t, tt.expAccount, account)
			if tt.expErr != nil {
				assert.True(t, errors.Is(err, tt.expErr), "actual error %q doesn't match expected error %q", err, tt.expErr)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestResolveAdministratorAccountID(t *testing.T) {
	creds := &broker.Credentials{AccessKeyID: "AKID"}

	t.Run("should return the management account of the member's organization", func(t *testing.T) {
		brokerSvc := &brokerMocks.Brokerer{}
		brokerSvc.On("ForAccount", "111111111111", "Accept").Return(creds, nil)
		orgSvc := &awsMocks.OrganizationsAPI{}
		orgSvc.On("DescribeOrganization", mock.Anything).Return(&organizations.DescribeOrganizationOutput{
			Organization: &organizations.Organization{MasterAccountId: ptr.String("999999999999")},
		}, nil)
		clientSvc := &clientMocks.Clienter{}
		clientSvc.On("Organizations", creds).Return(orgSvc)

		svc := NewService(NewServiceInput{Broker: brokerSvc, Clients: clientSvc})
		adminID, err := svc.ResolveAdministratorAccountID("111111111111", "Accept")

		require.Nil(t, err)
		assert.Equal(t, "999999999999", adminID)
	})

	t.Run("should fail when the role cannot be assumed", func(t *testing.T) {
		roleErr := errors.NewRoleNotAssumable("arn:aws:iam::111111111111:role/Accept", fmt.Errorf("AccessDenied"))
		brokerSvc := &brokerMocks.Brokerer{}
		brokerSvc.On("ForAccount", "111111111111", "Accept").Return(nil, roleErr)
		clientSvc := &clientMocks.Clienter{}

		svc := NewService(NewServiceInput{Broker: brokerSvc, Clients: clientSvc})
		adminID, err := svc.ResolveAdministratorAccountID("111111111111", "Accept")

		assert.Equal(t, "", adminID)
		assert.True(t, errors.Is(err, roleErr))
		clientSvc.AssertNotCalled(t, "Organizations", mock.Anything)
	})
}

func TestDescribeAccount(t *testing.T) {
	creds := &broker.Credentials{AccessKeyID: "AKID"}
	brokerSvc := &brokerMocks.Brokerer{}
	brokerSvc.On("ForAccount", "999999999999", "Audit").Return(creds, nil)
	orgSvc := &awsMocks.OrganizationsAPI{}
	orgSvc.On("DescribeAccount", mock.Anything).Return(&organizations.DescribeAccountOutput{
		Account: orgAccount("111111111111", "ACTIVE"),
	}, nil)
	clientSvc := &clientMocks.Clienter{}
	clientSvc.On("Organizations", creds).Return(orgSvc)

	svc := NewService(NewServiceInput{Broker: brokerSvc, Clients: clientSvc})
	account, err := svc.DescribeAccount("999999999999", "Audit", "111111111111")

	require.Nil(t, err)
	assert.Equal(t, "account-111111111111(111111111111)", account.String())
}

func TestServiceDirectory(t *testing.T) {

	t.Run("should use the process identity without a payer role", func(t *testing.T) {
		orgSvc := &awsMocks.OrganizationsAPI{}
		clientSvc := &clientMocks.Clienter{}
		clientSvc.On("Organizations", (*broker.Credentials)(nil)).Return(orgSvc)
		brokerSvc := &brokerMocks.Brokerer{}

		svc := NewService(NewServiceInput{Broker: brokerSvc, Clients: clientSvc})
		dir, err := svc.Directory(nil)

		require.Nil(t, err)
		assert.NotNil(t, dir)
		brokerSvc.AssertNotCalled(t, "AssumeRole", mock.Anything)
	})

	t.Run("should fail when the payer role cannot be assumed", func(t *testing.T) {
		payer := arn.NewRole("999999999999", "Payer")
		brokerSvc := &brokerMocks.Brokerer{}
		brokerSvc.On("AssumeRole", payer).Return(nil, fmt.Errorf("AccessDenied"))

		svc := NewService(NewServiceInput{Broker: brokerSvc, Clients: &clientMocks.Clienter{}})
		dir, err := svc.Directory(payer)

		assert.Nil(t, dir)
		assert.NotNil(t, err)
	})
}
