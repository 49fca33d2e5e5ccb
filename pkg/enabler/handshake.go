package enabler

import (
	"fmt"
	"time"

	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/Optum/guardduty-enabler/pkg/common"
	"github.com/Optum/guardduty-enabler/pkg/organization"
	"github.com/avast/retry-go"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/guardduty"
	"github.com/pkg/errors"
)

// errNoInvitation is returned while the administrator's invitation is
// not yet visible in the member account
var errNoInvitation = errors.New("no invitation from the administrator is visible yet")

// invite registers the account as a member of the administrator detector
// and sends it an invitation without an email notification
func (s *Service) invite(run *regionRun, account *organization.Account, dryRun bool) error {
	log := run.log.WithField("account", account.ID)
	if dryRun {
		log.Infof("Need to Invite %s to this GuardDuty Master", account)
		return nil
	}

	log.Infof("Inviting %s to this GuardDuty Master", account)
	created, err := run.admin.CreateMembers(&guardduty.CreateMembersInput{
		DetectorId: aws.String(run.detectorID),
		AccountDetails: []*guardduty.AccountDetail{
			{
				AccountId: aws.String(account.ID),
				Email:     aws.String(account.Email),
			},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to create member %s in %s", account.ID, run.region)
	}
	if err := unprocessed(created.UnprocessedAccounts); err != nil {
		return errors.Wrapf(err, "failed to create member %s in %s", account.ID, run.region)
	}

	invited, err := run.admin.InviteMembers(&guardduty.InviteMembersInput{
		DetectorId:               aws.String(run.detectorID),
		AccountIds:               aws.StringSlice([]string{account.ID}),
		DisableEmailNotification: aws.Bool(true),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to invite member %s in %s", account.ID, run.region)
	}
	if err := unprocessed(invited.UnprocessedAccounts); err != nil {
		return errors.Wrapf(err, "failed to invite member %s in %s", account.ID, run.region)
	}

	s.sleep(time.Duration(s.config.InviteDelaySeconds) * time.Second)
	return nil
}

// accept accepts, from inside the member account, every invitation the
// administrator sent it
func (s *Service) accept(run *regionRun, account *organization.Account, input *EnableInput) error {
	log := run.log.WithField("account", account.ID)
	if input.DryRun {
		log.Infof("Need to accept invite in %s", account)
		return nil
	}

	log.Infof("Accepting invite in %s", account)
	creds, err := s.broker.ForAccount(account.ID, input.AcceptRoleName)
	if err != nil {
		return err
	}
	member := s.clients.GuardDuty(run.region, creds)

	detectorID, err := ensureDetector(member, run.region, account.String(), false, log)
	if err != nil {
		return err
	}

	var invitations []*guardduty.Invitation
	err = retry.Do(
		func() error {
			invitations, err = s.administratorInvitations(run, member, input.AdministratorID)
			if err != nil {
				return err
			}
			if len(invitations) == 0 {
				return errNoInvitation
			}
			return nil
		},
		retry.Attempts(uint(s.config.InvitationAttempts)),
		retry.Delay(time.Duration(s.config.InvitationDelaySeconds)*s.pollUnit),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(func(err error) bool {
			return err == errNoInvitation
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return errors.Wrapf(err, "unable to find an invitation for %s in %s", account.ID, run.region)
	}

	for _, invitation := range invitations {
		_, err := member.AcceptAdministratorInvitation(&guardduty.AcceptAdministratorInvitationInput{
			AdministratorId: invitation.AccountId,
			DetectorId:      aws.String(detectorID),
			InvitationId:    invitation.InvitationId,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to accept invitation %s in %s",
				aws.StringValue(invitation.InvitationId), account.ID)
		}
		log.Debugf("Accepted invitation %s in %s", aws.StringValue(invitation.InvitationId), run.region)
	}
	return nil
}

// administratorInvitations lists every invitation of the member account
// and keeps those sent by the administrator
func (s *Service) administratorInvitations(run *regionRun, member awsiface.GuardDutyAPI, administratorID string) ([]*guardduty.Invitation, error) {
	all, err := common.DrainPages(func(token *string) ([]*guardduty.Invitation, *string, error) {
		out, err := member.ListInvitations(&guardduty.ListInvitationsInput{
			NextToken: token,
		})
		if err != nil {
			return nil, nil, err
		}
		return out.Invitations, out.NextToken, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to list invitations in %s", run.region)
	}

	invitations := []*guardduty.Invitation{}
	for _, invitation := range all {
		if aws.StringValue(invitation.AccountId) == administratorID {
			invitations = append(invitations, invitation)
		}
	}
	return invitations, nil
}

func unprocessed(accounts []*guardduty.UnprocessedAccount) error {
	if len(accounts) == 0 {
		return nil
	}
	return fmt.Errorf("account %s was not processed: %s",
		aws.StringValue(accounts[0].AccountId), aws.StringValue(accounts[0].Result))
}
