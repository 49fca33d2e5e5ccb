package config

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/Optum/guardduty-enabler/pkg/broker"
	"github.com/Optum/guardduty-enabler/pkg/clients"
	"github.com/Optum/guardduty-enabler/pkg/common"
	"github.com/Optum/guardduty-enabler/pkg/enabler"
	"github.com/Optum/guardduty-enabler/pkg/enabler/enableriface"
	"github.com/Optum/guardduty-enabler/pkg/organization"
	"github.com/Optum/guardduty-enabler/pkg/organization/organizationiface"
	"github.com/Optum/guardduty-enabler/pkg/region"
	"github.com/Optum/guardduty-enabler/pkg/region/regioniface"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/sts"
	log "github.com/sirupsen/logrus"
)

// AWSCurrentRegionKey is the configuration key of the session region
const AWSCurrentRegionKey = "AWS_CURRENT_REGION"

// ServiceConfigurationError is returned when an AWS service cannot be properly configured.
type ServiceConfigurationError error

// createrFunc internal functions for handling the creation of the services
type createrFunc func(config *ConfigurationBuilder) error

// ServiceBuilder is the default implementation of the `ServiceBuilder`
type ServiceBuilder struct {
	handlers []createrFunc
	Config   *ConfigurationBuilder
}

// WithSTS tells the builder to add an AWS STS service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithSTS() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createSTS)
	return bldr
}

// WithSNS tells the builder to add an AWS SNS service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithSNS() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createSNS)
	return bldr
}

// WithSSM tells the builder to add an AWS SSM service to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithSSM() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createSSM)
	return bldr
}

// WithNotificationer tells the builder to add the SNS Notificationer to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithNotificationer() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createNotificationer)
	return bldr
}

// WithBroker tells the builder to add the credential broker to the `ConfigurationBuilder`.
// Requires WithSTS.
func (bldr *ServiceBuilder) WithBroker() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createBroker)
	return bldr
}

// WithClients tells the builder to add the AWS client factory to the `ConfigurationBuilder`
func (bldr *ServiceBuilder) WithClients() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createClients)
	return bldr
}

// WithOrganizationService tells the builder to add the organization service to the `ConfigurationBuilder`.
// Requires WithBroker and WithClients.
func (bldr *ServiceBuilder) WithOrganizationService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createOrganizationService)
	return bldr
}

// WithRegionService tells the builder to add the region enumerator to the `ConfigurationBuilder`.
// Requires WithClients.
func (bldr *ServiceBuilder) WithRegionService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createRegionService)
	return bldr
}

// WithEnablerService tells the builder to add the GuardDuty enabler to the `ConfigurationBuilder`.
// Requires WithBroker and WithClients.
func (bldr *ServiceBuilder) WithEnablerService() *ServiceBuilder {
	bldr.handlers = append(bldr.handlers, bldr.createEnablerService)
	return bldr
}

// Build creates and returns a structue with AWS services
func (bldr *ServiceBuilder) Build() (*ConfigurationBuilder, error) {
	if bldr.Config == nil {
		bldr.Config = &ConfigurationBuilder{}
	}

	err := bldr.Config.Build()
	if err != nil {
		// We failed to build the configuration, so honestly there is no
		// point in continuating...
		return bldr.Config, ServiceConfigurationError(err)
	}

	// Create session is done first, and explicitly, because everything else
	// uses it
	err = bldr.createSession(bldr.Config)
	if err != nil {
		log.Errorf("Could not create session: %s", err.Error())
		return bldr.Config, ServiceConfigurationError(err)
	}

	for _, f := range bldr.handlers {
		err := f(bldr.Config)
		if err != nil {
			log.Errorf("Error while trying to execute handler: %s", runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name())
			return bldr.Config, ServiceConfigurationError(err)
		}
	}

	// Setting config values from parameter store requires services to be configured first
	if err := bldr.Config.RetrieveParameterStoreVals(); err != nil {
		return bldr.Config, ServiceConfigurationError(err)
	}

	return bldr.Config, nil
}

// Session returns the AWS session the services were built on
func (bldr *ServiceBuilder) Session() (*session.Session, error) {
	var awsSession *session.Session
	err := bldr.Config.GetService(&awsSession)
	return awsSession, err
}

// Logger returns the log entry registered with the configuration, or
// one on the standard logger
func (bldr *ServiceBuilder) Logger() *log.Entry {
	var entry *log.Entry
	if err := bldr.Config.GetService(&entry); err != nil {
		return log.NewEntry(log.StandardLogger())
	}
	return entry
}

// Broker returns the credential broker
func (bldr *ServiceBuilder) Broker() broker.Brokerer {
	var svc broker.Brokerer
	if err := bldr.Config.GetService(&svc); err != nil {
		log.Errorf("Could not find the credential broker: %s", err)
	}
	return svc
}

// Clients returns the AWS client factory
func (bldr *ServiceBuilder) Clients() clients.Clienter {
	var svc clients.Clienter
	if err := bldr.Config.GetService(&svc); err != nil {
		log.Errorf("Could not find the client factory: %s", err)
	}
	return svc
}

// OrganizationService returns the organization service
func (bldr *ServiceBuilder) OrganizationService() organizationiface.Servicer {
	var svc organizationiface.Servicer
	if err := bldr.Config.GetService(&svc); err != nil {
		log.Errorf("Could not find the organization service: %s", err)
	}
	return svc
}

// RegionService returns the region enumerator
func (bldr *ServiceBuilder) RegionService() regioniface.Resolver {
	var svc regioniface.Resolver
	if err := bldr.Config.GetService(&svc); err != nil {
		log.Errorf("Could not find the region service: %s", err)
	}
	return svc
}

// EnablerService returns the GuardDuty enabler
func (bldr *ServiceBuilder) EnablerService() enableriface.Servicer {
	var svc enableriface.Servicer
	if err := bldr.Config.GetService(&svc); err != nil {
		log.Errorf("Could not find the enabler service: %s", err)
	}
	return svc
}

// Notificationer returns the SNS publisher
func (bldr *ServiceBuilder) Notificationer() common.Notificationer {
	var svc common.Notificationer
	if err := bldr.Config.GetService(&svc); err != nil {
		log.Errorf("Could not find the notificationer: %s", err)
	}
	return svc
}

func (bldr *ServiceBuilder) createSession(config *ConfigurationBuilder) error {
	if _, err := bldr.Session(); err == nil {
		return nil
	}

	var err error
	var awsSession *session.Session
	region, regionErr := config.GetStringVal(AWSCurrentRegionKey)
	if regionErr == nil && region != "" {
		log.Debugf("Using AWS region \"%s\" to create session...", region)
		awsSession, err = session.NewSession(
			&aws.Config{
				Region: aws.String(region),
			},
		)
	} else {
		log.Debug("Creating AWS session using defaults...")
		awsSession, err = session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		})
	}
	if err != nil {
		return err
	}
	config.WithService(awsSession)
	return nil
}

func (bldr *ServiceBuilder) createSTS(config *ConfigurationBuilder) error {
	awsSession, err := bldr.Session()
	if err != nil {
		return err
	}
	var stsSvc awsiface.STSAPI = sts.New(awsSession)
	config.WithService(stsSvc)
	return nil
}

func (bldr *ServiceBuilder) createSNS(config *ConfigurationBuilder) error {
	awsSession, err := bldr.Session()
	if err != nil {
		return err
	}
	var snsSvc awsiface.SNSAPI = sns.New(awsSession)
	config.WithService(snsSvc)
	return nil
}

func (bldr *ServiceBuilder) createSSM(config *ConfigurationBuilder) error {
	awsSession, err := bldr.Session()
	if err != nil {
		return err
	}
	var ssmSvc awsiface.SSMAPI = ssm.New(awsSession)
	config.WithService(ssmSvc)
	return nil
}

func (bldr *ServiceBuilder) createNotificationer(config *ConfigurationBuilder) error {
	var snsSvc awsiface.SNSAPI
	if err := config.GetService(&snsSvc); err != nil {
		log.Error("Could not find SNS service. Call WithSNS() before WithNotificationer()")
		return err
	}
	config.WithService(&common.SNS{Client: snsSvc})
	return nil
}

func (bldr *ServiceBuilder) createBroker(config *ConfigurationBuilder) error {
	var stsSvc awsiface.STSAPI
	if err := config.GetService(&stsSvc); err != nil {
		log.Error("Could not find STS service. Call WithSTS() before WithBroker()")
		return err
	}
	config.WithService(broker.NewBroker(broker.NewBrokerInput{
		Sts: stsSvc,
	}))
	return nil
}

func (bldr *ServiceBuilder) createClients(config *ConfigurationBuilder) error {
	awsSession, err := bldr.Session()
	if err != nil {
		return err
	}
	config.WithService(clients.New(awsSession))
	return nil
}

func (bldr *ServiceBuilder) createOrganizationService(config *ConfigurationBuilder) error {
	config.WithService(organization.NewService(organization.NewServiceInput{
		Broker:  bldr.Broker(),
		Clients: bldr.Clients(),
		Log:     bldr.Logger(),
	}))
	return nil
}

func (bldr *ServiceBuilder) createRegionService(config *ConfigurationBuilder) error {
	clientSvc := bldr.Clients()
	if clientSvc == nil {
		return ServiceConfigurationError(fmt.Errorf("call WithClients() before WithRegionService()"))
	}
	config.WithService(region.NewEnumerator(clientSvc.EC2()))
	return nil
}

func (bldr *ServiceBuilder) createEnablerService(config *ConfigurationBuilder) error {
	enablerConfig := enabler.ServiceConfig{}
	if err := config.Unmarshal(&enablerConfig); err != nil {
		log.Errorf("Error while trying to create the enabler from env: %s", err.Error())
		return err
	}

	config.WithService(enabler.NewService(enabler.NewServiceInput{
		Broker:  bldr.Broker(),
		Clients: bldr.Clients(),
		Config:  enablerConfig,
		Log:     bldr.Logger(),
	}))
	return nil
}
