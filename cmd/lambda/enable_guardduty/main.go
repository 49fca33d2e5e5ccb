// Enable GuardDuty for the account named in each SNS message
package main

import (
	"context"

	"github.com/Optum/guardduty-enabler/pkg/config"
	"github.com/Optum/guardduty-enabler/pkg/enabler"
	"github.com/Optum/guardduty-enabler/pkg/organization"
	"github.com/Optum/guardduty-enabler/pkg/request"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"
)

type configuration struct {
	AcceptRole     string   `env:"ACCEPT_ROLE" envDefault:"OrganizationAccountAccessRole"`
	AuditRole      string   `env:"AUDIT_ROLE" envDefault:"OrganizationAccountAccessRole"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"debug"`
	DefaultRegions []string `env:"DEFAULT_REGIONS"`
}

var (
	services *config.ServiceBuilder
	// settings - the configuration settings for the handler
	settings *configuration
	logger   *log.Entry
)

func init() {
	cfgBldr := &config.ConfigurationBuilder{}
	settings = &configuration{}
	if err := cfgBldr.Unmarshal(settings); err != nil {
		log.Fatalf("Could not load configuration: %s", err.Error())
	}
	logger = newLogger(settings.LogLevel)

	cfgBldr.
		WithEnv(config.AWSCurrentRegionKey, config.AWSCurrentRegionKey, "us-east-1").
		WithParameterStoreEnv("ACCEPT_ROLE", "ACCEPT_ROLE_PARAMETER", settings.AcceptRole).
		WithParameterStoreEnv("AUDIT_ROLE", "AUDIT_ROLE_PARAMETER", settings.AuditRole).
		WithService(logger)
	svcBldr := &config.ServiceBuilder{Config: cfgBldr}

	_, err := svcBldr.
		WithSSM().
		WithSTS().
		WithBroker().
		WithClients().
		WithOrganizationService().
		WithRegionService().
		WithEnablerService().
		Build()
	if err != nil {
		panic(err)
	}
	if err := cfgBldr.Dump(settings); err != nil {
		log.Fatalf("Could not load configuration: %s", err.Error())
	}

	services = svcBldr
}

func newLogger(level string) *log.Entry {
	l := log.New()
	l.SetFormatter(&log.JSONFormatter{})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.DebugLevel
	}
	l.SetLevel(lvl)
	return log.NewEntry(l).WithField("handler", "enable_guardduty")
}

func handler(ctx context.Context, snsEvent events.SNSEvent) error {
	for _, record := range snsEvent.Records {
		if err := processMessage(record.SNS.Message); err != nil {
			return err
		}
	}
	return nil
}

// processMessage enables GuardDuty for one account. Only a bad message or
// a failure to learn about the account fails the invocation.
func processMessage(message string) error {
	logger.Debugf("Received message: %s", message)

	req, err := request.Parse(message)
	if err != nil {
		logger.Errorf("%s", err)
		return err
	}
	if err := req.WithDefaults(request.Request{Regions: settings.DefaultRegions}); err != nil {
		return err
	}
	entry := logger.WithField("account", req.AccountID)

	orgSvc := services.OrganizationService()
	adminID, err := orgSvc.ResolveAdministratorAccountID(req.AccountID, settings.AcceptRole)
	if err != nil {
		return err
	}
	entry.Infof("Found payer account_id: %s", adminID)

	account, err := orgSvc.DescribeAccount(adminID, settings.AuditRole, req.AccountID)
	if err != nil {
		return err
	}

	if len(req.Regions) == 0 {
		entry.Info("message['region'] not specified; default = all regions")
	}
	regions, err := services.RegionService().Resolve(req.Regions)
	if err != nil {
		entry.Errorf("Unable to list regions: %s", err)
		return err
	}

	report, err := services.EnablerService().Enable(&enabler.EnableInput{
		AdministratorID: adminID,
		AcceptRoleName:  settings.AcceptRole,
		Accounts:        []*organization.Account{account},
		Regions:         regions,
		DryRun:          req.DryRun,
		AcceptOnly:      req.AcceptOnly,
	})
	if err != nil {
		return err
	}

	fields := entry.WithFields(log.Fields{
		"run":            report.RunID,
		"dryRun":         report.DryRun,
		"skippedRegions": len(report.SkippedRegions),
	})
	if runErr := report.Err(); runErr != nil {
		fields.Warnf("Finished with errors: %s", runErr)
		return nil
	}
	fields.Info("Finished")
	return nil
}

func main() {
	lambda.Start(handler)
}
