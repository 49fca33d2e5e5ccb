package enabler

import (
	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/Optum/guardduty-enabler/pkg/common"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/guardduty"
	"github.com/pkg/errors"
)

// ListMembersPageSize is the page size used when listing members
const ListMembersPageSize = 50

// Members maps member account ids to their membership record under one
// administrator detector
type Members map[string]*guardduty.Member

// RelationshipStatus returns the relationship status of accountID and
// whether the account has a membership record at all
func (m Members) RelationshipStatus(accountID string) (string, bool) {
	member, ok := m[accountID]
	if !ok {
		return "", false
	}
	return aws.StringValue(member.RelationshipStatus), true
}

// listMembers reads every membership record of the detector. Every page
// is read before returning, so a record on a later page is never
// mistaken for a missing one.
func listMembers(gd awsiface.GuardDutyAPI, detectorID string) (Members, error) {
	members, err := common.DrainPages(func(token *string) ([]*guardduty.Member, *string, error) {
		out, err := gd.ListMembers(&guardduty.ListMembersInput{
			DetectorId:     aws.String(detectorID),
			MaxResults:     aws.Int64(ListMembersPageSize),
			NextToken:      token,
			OnlyAssociated: aws.String("false"),
		})
		if err != nil {
			return nil, nil, err
		}
		return out.Members, out.NextToken, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to list members of detector %s", detectorID)
	}

	return common.IndexBy(members, func(m *guardduty.Member) string {
		return aws.StringValue(m.AccountId)
	}), nil
}
