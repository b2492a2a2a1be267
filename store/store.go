// Package store holds the client-side state for each approval-tracked entity:
// the pending, approved and rejected collections plus the loading and error
// flags a panel view binds to. A Store is not safe for concurrent use; it
// mirrors a single view's state.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"Employee-Onboarding-System/client"
)

// Record is anything the approval workflow tracks.
type Record interface {
	RecordID() string
	RecordStatus() string
}

// Scope selects one of the three collections.
type Scope int

const (
	ScopePending Scope = iota
	ScopeApproved
	ScopeRejected
)

func (s Scope) String() string {
	switch s {
	case ScopeApproved:
		return "approved"
	case ScopeRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Notifier receives the outcome of every mutating operation, typically to
// drive a toast. success carries the server message, failure the error text.
type Notifier func(success bool, message string)

// Endpoints maps a record family to its API paths. Paths with an :id segment
// are fmt patterns taking the record (or owning employee) id.
type Endpoints struct {
	Key               string // envelope field holding the record in responses
	Create            string
	Approve           string
	Reject            string
	EditPending       string
	EditApproved      string
	Delete            string
	FetchByID         string
	FetchApprovedByID string
	AllPending        string
	AllApproved       string
	AllRejected       string
}

type Store[T Record] struct {
	client *client.Client
	eps    Endpoints
	notify Notifier

	Pending  []T
	Approved []T
	Rejected []T
	Loading  bool
	Err      string
}

func New[T Record](c *client.Client, eps Endpoints, notify Notifier) *Store[T] {
	if notify == nil {
		notify = func(bool, string) {}
	}
	return &Store[T]{client: c, eps: eps, notify: notify}
}

// ClearError resets the error flag, e.g. when a view dismisses its banner.
func (s *Store[T]) ClearError() { s.Err = "" }

// ResetLoading force-clears the loading flag. Views use it when they unmount
// mid-request and remount.
func (s *Store[T]) ResetLoading() { s.Loading = false }

// Collection returns the slice backing the given scope.
func (s *Store[T]) Collection(scope Scope) []T {
	switch scope {
	case ScopeApproved:
		return s.Approved
	case ScopeRejected:
		return s.Rejected
	default:
		return s.Pending
	}
}

// Create submits a new record. The server stores it as pending, so the
// returned record lands in the pending collection.
func (s *Store[T]) Create(ctx context.Context, form client.Form) (T, bool) {
	s.Loading = true
	var envelope map[string]json.RawMessage
	err := s.client.PostForm(ctx, s.eps.Create, form, &envelope)
	return s.applyMutation(envelope, err, ScopePending)
}

// Approve moves the record with the given id from pending to approved.
func (s *Store[T]) Approve(ctx context.Context, id string) (T, bool) {
	s.Loading = true
	var envelope map[string]json.RawMessage
	err := s.client.Post(ctx, fmt.Sprintf(s.eps.Approve, id), nil, &envelope)
	return s.applyMutation(envelope, err, ScopeApproved)
}

// Reject moves the record to rejected, storing the reviewer's reason on it.
// An empty reason is a precondition failure: no request is made and no
// collection changes.
func (s *Store[T]) Reject(ctx context.Context, id, reason string) (T, bool) {
	var zero T
	if strings.TrimSpace(reason) == "" {
		s.notify(false, "a rejection reason is required")
		return zero, false
	}
	s.Loading = true
	var envelope map[string]json.RawMessage
	err := s.client.Post(ctx, fmt.Sprintf(s.eps.Reject, id), map[string]string{"reply": reason}, &envelope)
	return s.applyMutation(envelope, err, ScopeRejected)
}

// EditPending updates a pending record in place.
func (s *Store[T]) EditPending(ctx context.Context, id string, payload any) (T, bool) {
	s.Loading = true
	var envelope map[string]json.RawMessage
	err := s.client.Put(ctx, fmt.Sprintf(s.eps.EditPending, id), payload, &envelope)
	return s.applyMutation(envelope, err, ScopePending)
}

// EditApproved submits a correction to an approved record. The server answers
// with a brand new pending record; the approved one stays where it is until
// the new version is reviewed.
func (s *Store[T]) EditApproved(ctx context.Context, id string, payload any) (T, bool) {
	s.Loading = true
	var envelope map[string]json.RawMessage
	err := s.client.Put(ctx, fmt.Sprintf(s.eps.EditApproved, id), payload, &envelope)
	return s.applyMutation(envelope, err, ScopePending)
}

// FetchAll replaces the scoped collection wholesale with the server's list.
// On failure the previous contents stay in place and Err is set.
func (s *Store[T]) FetchAll(ctx context.Context, scope Scope) bool {
	s.Loading = true
	var records []T
	if err := s.client.Get(ctx, s.listPath(scope), &records); err != nil {
		s.fail(err, false)
		return false
	}
	switch scope {
	case ScopeApproved:
		s.Approved = records
	case ScopeRejected:
		s.Rejected = records
	default:
		s.Pending = records
	}
	s.Loading = false
	s.Err = ""
	return true
}

// FetchByID fetches a single record without touching the collections. For
// document stores the id is the owning employee's id.
func (s *Store[T]) FetchByID(ctx context.Context, id string) (T, bool) {
	return s.fetchOne(ctx, fmt.Sprintf(s.eps.FetchByID, id))
}

// FetchApprovedByID fetches a single approved record by its own id, again
// without touching the collections.
func (s *Store[T]) FetchApprovedByID(ctx context.Context, id string) (T, bool) {
	return s.fetchOne(ctx, fmt.Sprintf(s.eps.FetchApprovedByID, id))
}

// Delete removes the record from the given scope, on the server and then from
// the matching local collection. Deleting an id the server does not know sets
// Err and leaves the collections unchanged.
func (s *Store[T]) Delete(ctx context.Context, id string, scope Scope) bool {
	s.Loading = true
	path := fmt.Sprintf(s.eps.Delete, id) + "?scope=" + scope.String()
	var envelope map[string]json.RawMessage
	if err := s.client.Delete(ctx, path, &envelope); err != nil {
		s.fail(err, true)
		return false
	}
	switch scope {
	case ScopeApproved:
		s.Approved = removeByID(s.Approved, id)
	case ScopeRejected:
		s.Rejected = removeByID(s.Rejected, id)
	default:
		s.Pending = removeByID(s.Pending, id)
	}
	s.Loading = false
	s.Err = ""
	s.notify(true, envelopeMessage(envelope))
	return true
}

// applyMutation finishes a mutating call: on success the returned record is
// decoded and placed into the target collection, replacing any copy of the
// same id held anywhere else.
func (s *Store[T]) applyMutation(envelope map[string]json.RawMessage, err error, target Scope) (T, bool) {
	var zero T
	if err != nil {
		s.fail(err, true)
		return zero, false
	}
	record, err := s.decodeRecord(envelope)
	if err != nil {
		s.fail(err, true)
		return zero, false
	}
	s.place(record, target)
	s.Loading = false
	s.Err = ""
	s.notify(true, envelopeMessage(envelope))
	return record, true
}

func (s *Store[T]) fetchOne(ctx context.Context, path string) (T, bool) {
	s.Loading = true
	var record T
	if err := s.client.Get(ctx, path, &record); err != nil {
		var zero T
		s.fail(err, false)
		return zero, false
	}
	s.Loading = false
	s.Err = ""
	return record, true
}

func (s *Store[T]) decodeRecord(envelope map[string]json.RawMessage) (T, error) {
	var record T
	raw, ok := envelope[s.eps.Key]
	if !ok {
		return record, fmt.Errorf("response is missing the %q field", s.eps.Key)
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return record, fmt.Errorf("failed to decode %s record: %w", s.eps.Key, err)
	}
	return record, nil
}

func (s *Store[T]) fail(err error, notify bool) {
	s.Loading = false
	s.Err = err.Error()
	if apiErr, ok := err.(*client.APIError); ok {
		s.Err = apiErr.Message
	}
	if notify {
		s.notify(false, s.Err)
	}
}

// place puts the record into the target collection. The other two collections
// drop any copy of the same id, so a record always lives in exactly one place.
// Within the target, an existing copy is replaced in position.
func (s *Store[T]) place(record T, target Scope) {
	id := record.RecordID()
	if target != ScopePending {
		s.Pending = removeByID(s.Pending, id)
	}
	if target != ScopeApproved {
		s.Approved = removeByID(s.Approved, id)
	}
	if target != ScopeRejected {
		s.Rejected = removeByID(s.Rejected, id)
	}
	switch target {
	case ScopeApproved:
		s.Approved = upsert(s.Approved, record)
	case ScopeRejected:
		s.Rejected = upsert(s.Rejected, record)
	default:
		s.Pending = upsert(s.Pending, record)
	}
}

func upsert[T Record](records []T, record T) []T {
	id := record.RecordID()
	for i := range records {
		if records[i].RecordID() == id {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}

func (s *Store[T]) listPath(scope Scope) string {
	switch scope {
	case ScopeApproved:
		return s.eps.AllApproved
	case ScopeRejected:
		return s.eps.AllRejected
	default:
		return s.eps.AllPending
	}
}

func removeByID[T Record](records []T, id string) []T {
	for i, record := range records {
		if record.RecordID() == id {
			return append(records[:i:i], records[i+1:]...)
		}
	}
	return records
}

func envelopeMessage(envelope map[string]json.RawMessage) string {
	var message string
	if raw, ok := envelope["message"]; ok {
		if err := json.Unmarshal(raw, &message); err == nil {
			return message
		}
	}
	return "done"
}
