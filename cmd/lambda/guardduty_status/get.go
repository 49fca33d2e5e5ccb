package main

import (
	"net/http"

	"github.com/Optum/guardduty-enabler/pkg/api"
	"github.com/Optum/guardduty-enabler/pkg/enabler"
	"github.com/Optum/guardduty-enabler/pkg/organization"
	"github.com/Optum/guardduty-enabler/pkg/request"
	"github.com/gorilla/mux"
)

type statusQuery struct {
	Regions []string `schema:"region"`
}

// GetStatus reports what enabling GuardDuty would do for one account.
// The run is always a dry run.
func GetStatus(w http.ResponseWriter, r *http.Request) {
	query := &statusQuery{}
	if err := api.GetStructFromQuery(query, r.URL.Query()); err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	req := &request.Request{
		AccountID: mux.Vars(r)["accountId"],
		DryRun:    true,
		Regions:   query.Regions,
	}
	if err := req.Validate(); err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	orgSvc := Services.OrganizationService()
	adminID, err := orgSvc.ResolveAdministratorAccountID(req.AccountID, Settings.AcceptRole)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}
	account, err := orgSvc.DescribeAccount(adminID, Settings.AuditRole, req.AccountID)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	regions, err := Services.RegionService().Resolve(req.Regions)
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	report, err := Services.EnablerService().Enable(&enabler.EnableInput{
		AdministratorID: adminID,
		AcceptRoleName:  Settings.AcceptRole,
		Accounts:        []*organization.Account{account},
		Regions:         regions,
		DryRun:          req.DryRun,
	})
	if err != nil {
		api.WriteAPIErrorResponse(w, err)
		return
	}

	api.WriteAPIResponse(w, http.StatusOK, report)
}
