package models

// Lifecycle states of an Employee or Document record. A record is in exactly
// one of these at a time; Rejected always carries a non-empty Reply.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Operational flag on an approved Employee, independent of the approval status.
const (
	WorkStatusActive   = "Active"
	WorkStatusInactive = "Inactive"
)

// Panel roles.
const (
	RoleAdmin           = "admin"
	RoleEmployeeManager = "employeemanager"
	RoleSupervisor      = "supervisor"
)
