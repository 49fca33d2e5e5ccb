package cmd

import (
	"fmt"
	"io"

	"github.com/Optum/guardduty-enabler/pkg/config"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/Optum/guardduty-enabler/pkg/fanout"
	"github.com/Optum/guardduty-enabler/pkg/request"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	publishCmd.Flags().StringVar(&opts.TopicArn, "topic_arn", "", "SNS topic the enable_guardduty lambda is subscribed to")
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish an enable message for every active account",
	Long: `List the organization and publish one enable message per ACTIVE account to
the topic, so the enable_guardduty lambda enables the accounts one by one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := newServices(logger)
		if err != nil {
			return err
		}
		run := &publishRun{
			opts:     opts,
			services: svcs,
			out:      cmd.OutOrStdout(),
			log:      logger,
		}
		return run.run()
	},
}

type publishRun struct {
	opts     *options
	services *config.ServiceBuilder
	out      io.Writer
	log      *log.Entry
}

func (r *publishRun) run() error {
	if r.opts.TopicArn == "" {
		return errors.NewBadRequest("--topic_arn is required")
	}
	payerArn, err := parsePayerArn(r.opts.PayerArn)
	if err != nil {
		return err
	}

	directory, err := r.services.OrganizationService().Directory(payerArn)
	if err != nil {
		return err
	}

	published, err := fanout.Publish(&fanout.PublishInput{
		Accounts:       directory,
		Notificationer: r.services.Notificationer(),
		TopicArn:       r.opts.TopicArn,
		Template: request.Request{
			DryRun:     r.opts.DryRun,
			AcceptOnly: r.opts.AcceptOnly,
			Regions:    r.opts.Regions,
		},
		Log: r.log,
	})
	fmt.Fprintf(r.out, "Published %d enable messages to %s\n", published, r.opts.TopicArn)
	return err
}
