package cmd

import (
	"bytes"
	"testing"

	awsMocks "github.com/Optum/guardduty-enabler/pkg/awsiface/mocks"
	brokerMocks "github.com/Optum/guardduty-enabler/pkg/broker/mocks"
	commonMocks "github.com/Optum/guardduty-enabler/pkg/common/mocks"
	"github.com/Optum/guardduty-enabler/pkg/config"
	enablerMocks "github.com/Optum/guardduty-enabler/pkg/enabler/enableriface/mocks"
	orgMocks "github.com/Optum/guardduty-enabler/pkg/organization/organizationiface/mocks"
	regionMocks "github.com/Optum/guardduty-enabler/pkg/region/regioniface/mocks"
	"github.com/aws/aws-sdk-go/service/organizations"
	"github.com/gotidy/ptr"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	broker   *brokerMocks.Brokerer
	org      *orgMocks.Servicer
	orgAPI   *awsMocks.OrganizationsAPI
	regions  *regionMocks.Resolver
	enabler  *enablerMocks.Servicer
	notif    *commonMocks.Notificationer
	services *config.ServiceBuilder
	out      *bytes.Buffer
	log      *logrus.Entry
	hook     *test.Hook
}

func setup(t *testing.T) *testServices {
	ts := &testServices{
		broker:  &brokerMocks.Brokerer{},
		org:     &orgMocks.Servicer{},
		orgAPI:  &awsMocks.OrganizationsAPI{},
		regions: &regionMocks.Resolver{},
		enabler: &enablerMocks.Servicer{},
		notif:   &commonMocks.Notificationer{},
		out:     &bytes.Buffer{},
	}
	logger, hook := test.NewNullLogger()
	ts.log = logrus.NewEntry(logger)
	ts.hook = hook

	cfgBldr := &config.ConfigurationBuilder{}
	svcBldr := &config.ServiceBuilder{Config: cfgBldr}
	svcBldr.Config.
		WithService(ts.broker).
		WithService(ts.org).
		WithService(ts.regions).
		WithService(ts.enabler).
		WithService(ts.notif)
	_, err := svcBldr.Build()
	require.Nil(t, err)
	ts.services = svcBldr
	return ts
}

func orgAccount(id string, status string) *organizations.Account {
	return &organizations.Account{
		Id:     ptr.String(id),
		Name:   ptr.String("account-" + id),
		Status: ptr.String(status),
	}
}
