package request

import (
	"encoding/json"
	"regexp"

	"github.com/Optum/guardduty-enabler/pkg/errors"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/imdario/mergo"
)

// Regions accepts either a list of region names or a single name
type Regions []string

// UnmarshalJSON reads a list of regions or a single region
func (r *Regions) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*r = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return errors.NewValidation("region", err)
	}
	if single == "" {
		*r = nil
		return nil
	}
	*r = Regions{single}
	return nil
}

// Request is one unit of work: enable GuardDuty for one account
type Request struct {
	AccountID  string  `json:"account_id" yaml:"account_id"`
	DryRun     bool    `json:"dry_run" yaml:"dry_run"`
	Regions    Regions `json:"region,omitempty" yaml:"region,omitempty"`
	AcceptOnly bool    `json:"accept_only" yaml:"accept_only"`
}

var validateAccountID = []validation.Rule{
	validation.Required.Error("must be set"),
	validation.Match(regexp.MustCompile("^[0-9]{12}$")).Error("must be a string with 12 digits"),
}

// Validate the request
func (r *Request) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.AccountID, validateAccountID...),
	)
	if err != nil {
		return errors.NewValidation("request", err)
	}
	return nil
}

// WithDefaults fills the unset fields of the request from defaults
func (r *Request) WithDefaults(defaults Request) error {
	if err := mergo.Merge(r, defaults); err != nil {
		return errors.NewInternalServer("unable to apply request defaults", err)
	}
	return nil
}

// Parse reads a request from a JSON message and validates it
func Parse(message string) (*Request, error) {
	r := &Request{}
	if err := json.Unmarshal([]byte(message), r); err != nil {
		return nil, errors.NewValidation("request", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
