package enabler

import (
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/Optum/guardduty-enabler/pkg/organization"
	validation "github.com/go-ozzo/ozzo-validation"
)

// State is the enrollment state of one account in one region.
// It is derived on every run and never stored.
type State string

const (
	// StateInactive accounts are not ACTIVE in the organization and are skipped
	StateInactive State = "Inactive"
	// StateAdministrator is the administrator account itself
	StateAdministrator State = "Administrator"
	// StateNotEnrolled accounts have no membership record
	StateNotEnrolled State = "NotEnrolled"
	// StateEnrolled accounts have an Enabled membership record
	StateEnrolled State = "Enrolled"
	// StatePending accounts have a handshake still in flight
	StatePending State = "Pending"
	// StateUnexpected accounts need manual investigation
	StateUnexpected State = "Unexpected"
)

// Action is what the run did for one account in one region
type Action string

const (
	// ActionNone means nothing needed doing
	ActionNone Action = "None"
	// ActionEnabled means the account was invited and accepted the invitation
	ActionEnabled Action = "Enabled"
	// ActionAccepted means an existing invitation was accepted
	ActionAccepted Action = "Accepted"
	// ActionWouldEnable is the dry-run stand-in for ActionEnabled/ActionAccepted
	ActionWouldEnable Action = "WouldEnable"
	// ActionFailed means the handshake failed and the account was skipped
	ActionFailed Action = "Failed"
)

// Relationship statuses reported by GuardDuty for a member account
const (
	RelationshipEnabled                     = "Enabled"
	RelationshipCreated                     = "Created"
	RelationshipInvited                     = "Invited"
	RelationshipEmailVerificationInProgress = "EmailVerificationInProgress"
)

// EnableInput is one run of the enabler
type EnableInput struct {
	// AdministratorID is the account whose detectors own the memberships
	AdministratorID string
	// AcceptRoleName is assumed in each member account to accept invitations
	AcceptRoleName string
	Accounts       []*organization.Account
	Regions        []string
	DryRun         bool
	AcceptOnly     bool
}

// Validate the enable input
func (i *EnableInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.AdministratorID, validation.Required, accountIDRule),
		validation.Field(&i.AcceptRoleName, validation.Required),
		validation.Field(&i.Regions, validation.Required),
	)
	if err != nil {
		return errors.NewValidation("enable input", err)
	}
	return nil
}

// Result is the outcome for one account in one region
type Result struct {
	Region             string `json:"region" yaml:"region"`
	AccountID          string `json:"accountId" yaml:"accountId"`
	AccountName        string `json:"accountName" yaml:"accountName"`
	State              State  `json:"state" yaml:"state"`
	RelationshipStatus string `json:"relationshipStatus,omitempty" yaml:"relationshipStatus,omitempty"`
	Action             Action `json:"action" yaml:"action"`
	Error              string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RegionError is a region the run skipped
type RegionError struct {
	Region string `json:"region" yaml:"region"`
	Error  string `json:"error" yaml:"error"`
}

// Report is the outcome of one run
type Report struct {
	RunID          string         `json:"runId" yaml:"runId"`
	DryRun         bool           `json:"dryRun" yaml:"dryRun"`
	AcceptOnly     bool           `json:"acceptOnly" yaml:"acceptOnly"`
	Results        []*Result      `json:"results" yaml:"results"`
	SkippedRegions []*RegionError `json:"skippedRegions,omitempty" yaml:"skippedRegions,omitempty"`
	errs           []error
}

// CountState counts the results in state s
func (r *Report) CountState(s State) int {
	n := 0
	for _, res := range r.Results {
		if res.State == s {
			n++
		}
	}
	return n
}

// CountAction counts the results with action a
func (r *Report) CountAction(a Action) int {
	n := 0
	for _, res := range r.Results {
		if res.Action == a {
			n++
		}
	}
	return n
}

// Find returns the result for the account in the region, if any
func (r *Report) Find(region string, accountID string) *Result {
	for _, res := range r.Results {
		if res.Region == region && res.AccountID == accountID {
			return res
		}
	}
	return nil
}

// Err returns every region, account and anomaly failure of the run,
// or nil when there were none
func (r *Report) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return errors.NewMultiError("GuardDuty could not be enabled everywhere", r.errs)
}

func (r *Report) add(res *Result, err error) {
	if err != nil {
		res.Error = err.Error()
		r.errs = append(r.errs, err)
	}
	r.Results = append(r.Results, res)
}

func (r *Report) skipRegion(region string, err error) {
	r.SkippedRegions = append(r.SkippedRegions, &RegionError{Region: region, Error: err.Error()})
	r.errs = append(r.errs, err)
}
