package enabler

import (
	"time"

	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/Optum/guardduty-enabler/pkg/broker"
	"github.com/Optum/guardduty-enabler/pkg/clients"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ServiceConfig has the tunables of the handshake
type ServiceConfig struct {
	InviteDelaySeconds     int `env:"INVITE_DELAY_SECONDS" envDefault:"3"`
	InvitationAttempts     int `env:"INVITATION_ATTEMPTS" envDefault:"5"`
	InvitationDelaySeconds int `env:"INVITATION_DELAY_SECONDS" envDefault:"2"`
}

// Service enables GuardDuty for organization accounts
type Service struct {
	broker   broker.Brokerer
	clients  clients.Clienter
	config   ServiceConfig
	log      *logrus.Entry
	sleep    func(time.Duration)
	// pollUnit scales InvitationDelaySeconds
	pollUnit time.Duration
}

// regionRun is the administrator side of one region
type regionRun struct {
	region     string
	admin      awsiface.GuardDutyAPI
	detectorID string
	members    Members
	log        *logrus.Entry
}

// Enable reconciles every account in every region of the input. Region
// and account failures are recorded in the report and never stop the
// run. Only an invalid input fails the whole run.
func (s *Service) Enable(input *EnableInput) (*Report, error) {
	if input == nil {
		return nil, errors.NewBadRequest("enable input is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:      uuid.New().String(),
		DryRun:     input.DryRun,
		AcceptOnly: input.AcceptOnly,
		Results:    []*Result{},
	}
	log := s.log.WithField("run", report.RunID)
	log.Infof("Enabling GuardDuty for %d accounts in %d regions (dry_run=%t, accept_only=%t)",
		len(input.Accounts), len(input.Regions), input.DryRun, input.AcceptOnly)

	for _, region := range input.Regions {
		run, err := s.prepareRegion(region, input, log.WithField("region", region))
		if err != nil {
			regionErr := errors.NewRegionUnavailable(region, err)
			log.WithField("region", region).Errorf("%v. Skipping this region.", regionErr)
			report.skipRegion(region, regionErr)
			continue
		}

		for _, account := range input.Accounts {
			report.add(s.reconcile(run, account, input))
		}
	}

	log.Infof("Finished: %d enabled, %d accepted, %d would enable, %d enrolled, %d pending, %d unexpected, %d failed, %d regions skipped",
		report.CountAction(ActionEnabled), report.CountAction(ActionAccepted), report.CountAction(ActionWouldEnable),
		report.CountState(StateEnrolled), report.CountState(StatePending), report.CountState(StateUnexpected),
		report.CountAction(ActionFailed), len(report.SkippedRegions))
	return report, nil
}

// prepareRegion ensures the administrator detector and reads every
// membership record of the region
func (s *Service) prepareRegion(region string, input *EnableInput, log *logrus.Entry) (*regionRun, error) {
	log.Infof("Processing Region: %s", region)
	run := &regionRun{
		region:  region,
		admin:   s.clients.GuardDuty(region, nil),
		members: Members{},
		log:     log,
	}

	detectorID, err := ensureDetector(run.admin, region, "Master", input.DryRun, log)
	if err != nil {
		return nil, err
	}
	run.detectorID = detectorID
	if detectorID == "" {
		return run, nil
	}

	run.members, err = listMembers(run.admin, detectorID)
	if err != nil {
		return nil, err
	}
	log.Debugf("Found %d members of detector %s", len(run.members), detectorID)
	return run, nil
}

// NewServiceInput are the items needed to create a new service
type NewServiceInput struct {
	Broker  broker.Brokerer
	Clients clients.Clienter
	Config  ServiceConfig
	Log     *logrus.Entry
	// Sleep waits between invite and accept, defaults to time.Sleep
	Sleep func(time.Duration)
}

// NewService creates a new instance of the service
func NewService(input NewServiceInput) *Service {
	sleep := input.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	log := input.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	config := input.Config
	if config.InvitationAttempts < 1 {
		config.InvitationAttempts = 1
	}

	return &Service{
		broker:   input.Broker,
		clients:  input.Clients,
		config:   config,
		log:      log.WithField("component", "enabler"),
		sleep:    sleep,
		pollUnit: time.Second,
	}
}
