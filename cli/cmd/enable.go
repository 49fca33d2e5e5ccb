package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Optum/guardduty-enabler/pkg/arn"
	"github.com/Optum/guardduty-enabler/pkg/config"
	"github.com/Optum/guardduty-enabler/pkg/enabler"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/Optum/guardduty-enabler/pkg/organization"
	"github.com/Optum/guardduty-enabler/pkg/request"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type enableRun struct {
	opts     *options
	services *config.ServiceBuilder
	out      io.Writer
	log      *log.Entry
}

// run enables GuardDuty for the organization, or the one account
// given, and writes the report. Only failures that stop the whole run
// are returned; region and account failures are in the report.
func (r *enableRun) run() error {
	payerArn, err := parsePayerArn(r.opts.PayerArn)
	if err != nil {
		return err
	}

	adminID, err := r.services.Broker().CallerAccountID()
	if err != nil {
		return err
	}
	r.log.Infof("Running as GuardDuty administrator %s", adminID)

	accounts, err := r.accounts(payerArn)
	if err != nil {
		return err
	}

	regions, err := r.services.RegionService().Resolve(r.opts.Regions)
	if err != nil {
		return err
	}

	report, err := r.services.EnablerService().Enable(&enabler.EnableInput{
		AdministratorID: adminID,
		AcceptRoleName:  r.opts.AssumeRole,
		Accounts:        accounts,
		Regions:         regions,
		DryRun:          r.opts.DryRun,
		AcceptOnly:      r.opts.AcceptOnly,
	})
	if err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		r.log.Warnf("%s", err)
	}

	return writeReport(r.out, report, r.opts.Output)
}

func (r *enableRun) accounts(payerArn *arn.ARN) ([]*organization.Account, error) {
	directory, err := r.services.OrganizationService().Directory(payerArn)
	if err != nil {
		return nil, err
	}

	if r.opts.AccountID == "" {
		return directory.List()
	}

	req := &request.Request{AccountID: r.opts.AccountID}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	account, err := directory.Describe(r.opts.AccountID)
	if err != nil {
		return nil, err
	}
	return []*organization.Account{account}, nil
}

func parsePayerArn(payerArn string) (*arn.ARN, error) {
	if payerArn == "" {
		return nil, nil
	}
	a, err := arn.NewFromArn(payerArn)
	if err != nil {
		return nil, errors.NewValidation("payer_arn", err)
	}
	return a, nil
}

func writeReport(w io.Writer, report *enabler.Report, format string) error {
	if format == outputYAML {
		out, err := yaml.Marshal(report)
		if err != nil {
			return errors.NewInternalServer("unable to write report", err)
		}
		_, err = w.Write(out)
		return err
	}

	mode := "run"
	if report.DryRun {
		mode = "dry run"
	}
	fmt.Fprintf(w, "GuardDuty %s %s\n\n", mode, report.RunID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "REGION\tACCOUNT\tNAME\tSTATE\tACTION\tERROR")
	for _, res := range report.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			res.Region, res.AccountID, res.AccountName, res.State, res.Action, res.Error)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nenrolled: %d, enabled: %d, accepted: %d, would enable: %d, pending: %d, unexpected: %d, failed: %d, inactive: %d\n",
		report.CountState(enabler.StateEnrolled),
		report.CountAction(enabler.ActionEnabled),
		report.CountAction(enabler.ActionAccepted),
		report.CountAction(enabler.ActionWouldEnable),
		report.CountState(enabler.StatePending),
		report.CountState(enabler.StateUnexpected),
		report.CountAction(enabler.ActionFailed),
		report.CountState(enabler.StateInactive),
	)
	for _, skipped := range report.SkippedRegions {
		fmt.Fprintf(w, "skipped %s: %s\n", skipped.Region, skipped.Error)
	}
	return nil
}
