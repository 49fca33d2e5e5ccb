package main

import (
	"context"

	"github.com/Optum/guardduty-enabler/pkg/api"
	"github.com/Optum/guardduty-enabler/pkg/api/response"
	"github.com/Optum/guardduty-enabler/pkg/config"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/gorillamux"
	log "github.com/sirupsen/logrus"
)

type statusConfiguration struct {
	AcceptRole string `env:"ACCEPT_ROLE" envDefault:"OrganizationAccountAccessRole"`
	AuditRole  string `env:"AUDIT_ROLE" envDefault:"OrganizationAccountAccessRole"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

var (
	muxLambda *gorillamux.GorillaMuxAdapter
	// Services handles the configuration of the AWS services
	Services *config.ServiceBuilder
	// Settings - the configuration settings for the controller
	Settings *statusConfiguration
)

func init() {
	initConfig()

	log.Debug("Cold start; creating router for /guardduty")
	statusRoutes := api.Routes{
		api.Route{
			Name:        "GetStatus",
			Method:      "GET",
			Pattern:     "/guardduty/{accountId}",
			Queries:     api.EmptyQueryString,
			HandlerFunc: GetStatus,
		},
	}
	r := api.NewRouter(statusRoutes)
	muxLambda = gorillamux.New(r)
}

// initConfig configures package-level variables
// loaded from env vars.
func initConfig() {
	cfgBldr := &config.ConfigurationBuilder{}
	Settings = &statusConfiguration{}
	if err := cfgBldr.Unmarshal(Settings); err != nil {
		log.Fatalf("Could not load configuration: %s", err.Error())
	}
	log.SetFormatter(&log.JSONFormatter{})
	if lvl, err := log.ParseLevel(Settings.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	cfgBldr.
		WithEnv(config.AWSCurrentRegionKey, config.AWSCurrentRegionKey, "us-east-1").
		WithParameterStoreEnv("ACCEPT_ROLE", "ACCEPT_ROLE_PARAMETER", Settings.AcceptRole).
		WithParameterStoreEnv("AUDIT_ROLE", "AUDIT_ROLE_PARAMETER", Settings.AuditRole).
		WithService(log.WithField("handler", "guardduty_status"))
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
		log.Errorf("Could not configure services: %s", err)
		return
	}
	if err := cfgBldr.Dump(Settings); err != nil {
		log.Errorf("Could not load configuration: %s", err)
	}
	Services = svcBldr
}

// Handler - Handle the lambda function
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := muxLambda.ProxyWithContext(ctx, req)
	if err != nil {
		log.Errorf("Unable to proxy the request: %s", err)
		return response.ServerError(), nil
	}
	return resp, nil
}

func main() {
	lambda.Start(Handler)
}
