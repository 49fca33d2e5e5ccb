package cmd

import (
	"fmt"
	"os"

	"github.com/Optum/guardduty-enabler/cli/configs"
	"github.com/Optum/guardduty-enabler/pkg/config"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/Optum/guardduty-enabler/pkg/region"
	validation "github.com/go-ozzo/ozzo-validation"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// options are the values of the command line flags, after the
// --config file filled in the ones not given
type options struct {
	AccountID  string
	PayerArn   string
	AssumeRole string
	Regions    []string
	AcceptOnly bool
	DryRun     bool
	Debug      bool
	Error      bool
	Output     string
	TopicArn   string
}

var (
	cfgFile string
	opts    = &options{}
	logger  *log.Entry
	// newServices is replaced in tests
	newServices = buildServices
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML file with defaults for payer_arn, assume_role, region, topic_arn and output")
	flags.StringVar(&opts.PayerArn, "payer_arn", "", "role to assume in the payer account to read the organization")
	flags.StringVar(&opts.AssumeRole, "assume_role", "OrganizationAccountAccessRole", "role assumed in each member account to accept the invitation")
	flags.StringSliceVar(&opts.Regions, "region", []string{region.All}, "region to enable GuardDuty in, may be repeated; ALL for every region")
	flags.BoolVar(&opts.AcceptOnly, "accept_only", false, "accept existing invitations without inviting")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "log what would change without changing anything")
	flags.BoolVar(&opts.Debug, "debug", false, "log at debug level")
	flags.BoolVar(&opts.Error, "error", false, "log errors only")

	rootCmd.Flags().StringVar(&opts.AccountID, "account_id", "", "enable GuardDuty for this account only")
	rootCmd.Flags().StringVar(&opts.Output, "output", outputText, "report format: text or yaml")
}

var rootCmd = &cobra.Command{
	Use:   "enable-guardduty",
	Short: "Enable GuardDuty for the accounts of an AWS Organization",
	Long: `Enable GuardDuty for every member account of the organization, or for one
account, from the GuardDuty administrator account the command runs as.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := newServices(logger)
		if err != nil {
			return err
		}
		run := &enableRun{
			opts:     opts,
			services: svcs,
			out:      cmd.OutOrStdout(),
			log:      logger,
		}
		return run.run()
	},
}

// Execute runs the command line and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Errorf("%s", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func preRun(cmd *cobra.Command, args []string) error {
	if opts.Debug && opts.Error {
		return fmt.Errorf("--debug and --error cannot be used together")
	}
	logger = newLogger(opts)

	if cfgFile != "" {
		cfg, err := configs.Load(cfgFile)
		if err != nil {
			return err
		}
		applyConfig(cmd.Flags(), opts, cfg)
		logger.Debugf("Loaded defaults from %s", cfgFile)
	}

	err := validation.Validate(opts.Output,
		validation.In(outputText, outputYAML).Error("must be text or yaml"),
	)
	if err != nil {
		return errors.NewValidation("output", err)
	}
	return nil
}

func newLogger(o *options) *log.Entry {
	l := log.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	switch {
	case o.Debug:
		l.SetLevel(log.DebugLevel)
	case o.Error:
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
	return log.NewEntry(l).WithField("name", "enable-guardduty")
}

// applyConfig fills the flags the user did not give from the config file
func applyConfig(flags *pflag.FlagSet, o *options, cfg *configs.Config) {
	if !flags.Changed("payer_arn") && cfg.PayerArn != "" {
		o.PayerArn = cfg.PayerArn
	}
	if !flags.Changed("assume_role") && cfg.AssumeRole != "" {
		o.AssumeRole = cfg.AssumeRole
	}
	if !flags.Changed("region") && len(cfg.Regions) > 0 {
		o.Regions = cfg.Regions
	}
	if !flags.Changed("topic_arn") && cfg.TopicArn != "" {
		o.TopicArn = cfg.TopicArn
	}
	if !flags.Changed("output") && cfg.Output != "" {
		o.Output = cfg.Output
	}
}

func buildServices(entry *log.Entry) (*config.ServiceBuilder, error) {
	cfgBldr := &config.ConfigurationBuilder{}
	cfgBldr.WithService(entry)
	svcBldr := &config.ServiceBuilder{Config: cfgBldr}
	_, err := svcBldr.
		WithSTS().
		WithSNS().
		WithNotificationer().
		WithBroker().
		WithClients().
		WithOrganizationService().
		WithRegionService().
		WithEnablerService().
		Build()
	if err != nil {
		return nil, err
	}
	return svcBldr, nil
}
