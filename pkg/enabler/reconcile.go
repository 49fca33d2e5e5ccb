package enabler

import (
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/Optum/guardduty-enabler/pkg/organization"
)

// Classify derives the state of an account in one region from the
// administrator's membership records
func Classify(account *organization.Account, administratorID string, members Members) (State, string) {
	if !account.IsActive() {
		return StateInactive, ""
	}
	if account.ID == administratorID {
		return StateAdministrator, ""
	}

	status, ok := members.RelationshipStatus(account.ID)
	if !ok {
		return StateNotEnrolled, ""
	}
	switch status {
	case RelationshipEnabled:
		return StateEnrolled, status
	case RelationshipCreated, RelationshipInvited, RelationshipEmailVerificationInProgress:
		return StatePending, status
	default:
		return StateUnexpected, status
	}
}

// reconcile classifies one account and drives it towards enrollment.
// Only a NotEnrolled account is ever mutated.
func (s *Service) reconcile(run *regionRun, account *organization.Account, input *EnableInput) (*Result, error) {
	log := run.log.WithField("account", account.ID)
	state, status := Classify(account, input.AdministratorID, run.members)
	res := &Result{
		Region:             run.region,
		AccountID:          account.ID,
		AccountName:        account.Name,
		State:              state,
		RelationshipStatus: status,
		Action:             ActionNone,
	}

	switch state {
	case StateInactive:
		log.Infof("Account %s is inactive. No action being taken.", account)
		return res, nil
	case StateAdministrator:
		log.Debugf("Account %s is the GuardDuty Master in %s", account, run.region)
		return res, nil
	case StateEnrolled:
		log.Infof("%s is already GuardDuty-enabled in %s", account, run.region)
		return res, nil
	case StatePending:
		log.Warnf("%s has a GuardDuty membership in progress in %s (%s). %s",
			account, run.region, status, pendingHint(status))
		return res, nil
	case StateUnexpected:
		err := errors.NewUnexpectedMembership(account.ID, status)
		log.Errorf("%s is in unexpected GuardDuty state %s in %s. Investigate manually.", account, status, run.region)
		return res, err
	}

	if input.DryRun {
		log.Infof("Need to enable GuardDuty for %s", account)
	} else {
		log.Infof("Enabling GuardDuty for %s", account)
	}

	if !input.AcceptOnly {
		if err := s.invite(run, account, input.DryRun); err != nil {
			log.Errorf("Unable to invite %s: %v", account, err)
			res.Action = ActionFailed
			return res, err
		}
	}
	if err := s.accept(run, account, input); err != nil {
		log.Errorf("Unable to accept invite in %s: %v", account, err)
		res.Action = ActionFailed
		return res, err
	}

	switch {
	case input.DryRun:
		res.Action = ActionWouldEnable
	case input.AcceptOnly:
		res.Action = ActionAccepted
	default:
		res.Action = ActionEnabled
	}
	return res, nil
}

// pendingHint tells the operator how to finish a handshake left in flight.
// A run never mutates a pending membership, with or without accept_only.
func pendingHint(status string) string {
	if status == RelationshipCreated {
		return "No invitation was sent; delete the member so the next run re-invites it."
	}
	return "Accept the invitation in the member account, or delete the member so the next run re-invites it."
}
