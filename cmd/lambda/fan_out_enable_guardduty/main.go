package main

import (
	"github.com/Optum/guardduty-enabler/pkg/config"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/Optum/guardduty-enabler/pkg/fanout"
	"github.com/Optum/guardduty-enabler/pkg/request"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	validation "github.com/go-ozzo/ozzo-validation"
	log "github.com/sirupsen/logrus"
)

/*
This lambda spreads enabling GuardDuty over the whole organization. It:

- Runs on a CloudWatch scheduled event (eg. once a day)
- Lists every account of the organization
- For each ACTIVE account, publishes an enable message to the SNS topic
  the `enable_guardduty` lambda is subscribed to

A publish failure for one account does not stop the others.
*/

type configuration struct {
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	DryRun         bool     `env:"DRY_RUN" envDefault:"false"`
	DefaultRegions []string `env:"DEFAULT_REGIONS"`
	TopicArn       string   `env:"ENABLE_TOPIC_ARN,required"`
}

// loadSettings reads the configuration at cold start so a misconfigured
// function fails before any account is listed
func loadSettings(cfgBldr *config.ConfigurationBuilder) (*configuration, error) {
	settings := &configuration{}
	if err := cfgBldr.Unmarshal(settings); err != nil {
		return nil, err
	}
	if err := validation.Validate(settings.TopicArn, validation.Required); err != nil {
		return nil, errors.NewValidation("ENABLE_TOPIC_ARN", err)
	}
	return settings, nil
}

func main() {
	cfgBldr := &config.ConfigurationBuilder{}
	settings, err := loadSettings(cfgBldr)
	if err != nil {
		log.Fatalf("Could not load configuration: %s", err.Error())
	}

	lambda.Start(func(cloudWatchEvent events.CloudWatchEvent) error {
		logger := log.New()
		logger.SetFormatter(&log.JSONFormatter{})
		if lvl, err := log.ParseLevel(settings.LogLevel); err == nil {
			logger.SetLevel(lvl)
		}
		entry := log.NewEntry(logger).WithField("handler", "fan_out_enable_guardduty")
		entry.Info("Initializing GuardDuty enable fan out")

		cfgBldr.WithService(entry)
		svcBldr := &config.ServiceBuilder{Config: cfgBldr}
		_, err := svcBldr.
			WithSTS().
			WithSNS().
			WithNotificationer().
			WithBroker().
			WithClients().
			WithOrganizationService().
			Build()
		if err != nil {
			entry.Fatalf("Failed to configure services: %s", err)
		}

		directory, err := svcBldr.OrganizationService().Directory(nil)
		if err != nil {
			return err
		}

		_, err = fanout.Publish(&fanout.PublishInput{
			Accounts:       directory,
			Notificationer: svcBldr.Notificationer(),
			TopicArn:       settings.TopicArn,
			Template: request.Request{
				DryRun:  settings.DryRun,
				Regions: settings.DefaultRegions,
			},
			Log: entry,
		})
		return err
	})
}
