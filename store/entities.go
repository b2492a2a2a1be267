package store

import (
	"context"
	"encoding/json"
	"fmt"

	"Employee-Onboarding-System/client"
	"Employee-Onboarding-System/models"
)

// Employees is the employee store plus the operations that only exist for
// employees.
type Employees struct {
	*Store[models.Employee]
}

func NewEmployees(c *client.Client, notify Notifier) *Employees {
	return &Employees{Store: New[models.Employee](c, Endpoints{
		Key:               "employee",
		Create:            "/createemployee",
		Approve:           "/makrkapprove/%s",
		Reject:            "/markreject/%s",
		EditPending:       "/editpendingemployee/%s",
		EditApproved:      "/editapprovedemployee/%s",
		Delete:            "/deleteemployee/%s",
		FetchByID:         "/fetchemployeebyid/%s",
		FetchApprovedByID: "/fetchapprovemployeebyid/%s",
		AllPending:        "/allpendingemployee",
		AllApproved:       "/allapprovedemployee",
		AllRejected:       "/allrejectedemployee",
	}, notify)}
}

// ToggleWorkStatus flips an approved employee between Active and Inactive.
func (s *Employees) ToggleWorkStatus(ctx context.Context, id, workStatus string) (models.Employee, bool) {
	s.Loading = true
	var envelope map[string]json.RawMessage
	body := map[string]string{"workstatus": workStatus}
	err := s.client.Post(ctx, fmt.Sprintf("/changeworkstatus/%s", id), body, &envelope)
	return s.applyMutation(envelope, err, ScopeApproved)
}

func NewAadhars(c *client.Client, notify Notifier) *Store[models.Aadhar] {
	return New[models.Aadhar](c, Endpoints{
		Key:               "aadhar",
		Create:            "/createaadhar",
		Approve:           "/approvaadhar/%s",
		Reject:            "/rejectaadhar/%s",
		EditPending:       "/editpendingaadhar/%s",
		EditApproved:      "/editapprovedaadhar/%s",
		Delete:            "/deleteaadhar/%s",
		FetchByID:         "/fetchbyitsownid/%s",
		FetchApprovedByID: "/fetchapprovaadharbyid/%s",
		AllPending:        "/allpendingaadhar",
		AllApproved:       "/allapprovedaadhar",
		AllRejected:       "/allrejectedaadhar",
	}, notify)
}

func NewPans(c *client.Client, notify Notifier) *Store[models.Pan] {
	return New[models.Pan](c, Endpoints{
		Key:               "pan",
		Create:            "/createpan",
		Approve:           "/approvepan/%s",
		Reject:            "/rejectpan/%s",
		EditPending:       "/editpendingpan/%s",
		EditApproved:      "/editapprovedpan/%s",
		Delete:            "/deletepan/%s",
		FetchByID:         "/fetchpanbyitsownid/%s",
		FetchApprovedByID: "/fetchapprovpanbyid/%s",
		AllPending:        "/allpendingpan",
		AllApproved:       "/allapprovedpan",
		AllRejected:       "/allrejectedpan",
	}, notify)
}

func NewBankDetails(c *client.Client, notify Notifier) *Store[models.BankDetail] {
	return New[models.BankDetail](c, Endpoints{
		Key:               "bankDetail",
		Create:            "/createbank",
		Approve:           "/approvebank/%s",
		Reject:            "/rejectbank/%s",
		EditPending:       "/editpendingbank/%s",
		EditApproved:      "/editapprovedbank/%s",
		Delete:            "/deletebank/%s",
		FetchByID:         "/fetchbankbyitsownid/%s",
		FetchApprovedByID: "/fetchapprovbankbyid/%s",
		AllPending:        "/allpendingbank",
		AllApproved:       "/allapprovedbank",
		AllRejected:       "/allrejectedbank",
	}, notify)
}
