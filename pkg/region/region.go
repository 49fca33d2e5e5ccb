package region

import (
	"strings"

	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/Optum/guardduty-enabler/pkg/errors"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// All selects every region available to the account
const All = "ALL"

// Enumerator lists the regions a run operates in
type Enumerator struct {
	ec2 awsiface.EC2API
}

// NewEnumerator creates a region enumerator
func NewEnumerator(ec2 awsiface.EC2API) *Enumerator {
	return &Enumerator{ec2: ec2}
}

// Resolve returns the requested regions, or every available region when
// nothing or ALL was requested. Duplicates are dropped, order is kept.
func (e *Enumerator) Resolve(requested []string) ([]string, error) {
	if len(requested) == 0 || (len(requested) == 1 && strings.EqualFold(requested[0], All)) {
		return e.Available()
	}
	return dedupe(requested), nil
}

// Available lists every region enabled for the account
func (e *Enumerator) Available() ([]string, error) {
	out, err := e.ec2.DescribeRegions(&ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, errors.NewInternalServer("unable to describe regions", err)
	}
	regions := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		regions = append(regions, aws.StringValue(r.RegionName))
	}
	return regions, nil
}

func dedupe(regions []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		r = strings.TrimSpace(r)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
