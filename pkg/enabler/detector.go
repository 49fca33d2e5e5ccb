package enabler

import (
	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/Optum/guardduty-enabler/pkg/common"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/guardduty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ensureDetector returns the detector of the account behind gd, creating
// one when the account has none. An account has at most one detector per
// region, so an existing detector is always reused.
//
// In dry-run mode a missing detector is reported and "" is returned.
func ensureDetector(gd awsiface.GuardDutyAPI, region string, owner string, dryRun bool, log *logrus.Entry) (string, error) {
	ids, err := common.DrainPages(func(token *string) ([]string, *string, error) {
		out, err := gd.ListDetectors(&guardduty.ListDetectorsInput{
			NextToken: token,
		})
		if err != nil {
			return nil, nil, err
		}
		return aws.StringValueSlice(out.DetectorIds), out.NextToken, nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "unable to list detectors in region %s", region)
	}
	if len(ids) > 0 {
		log.Debugf("Found detector %s in %s for the GuardDuty %s account", ids[0], region, owner)
		return ids[0], nil
	}

	if dryRun {
		log.Infof("Need to create a Detector in %s for the GuardDuty %s account", region, owner)
		return "", nil
	}

	log.Infof("Creating a Detector in %s for the GuardDuty %s account", region, owner)
	out, err := gd.CreateDetector(&guardduty.CreateDetectorInput{
		Enable: aws.Bool(true),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to create detector in %s", region)
	}
	return aws.StringValue(out.DetectorId), nil
}
