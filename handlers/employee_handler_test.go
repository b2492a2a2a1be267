package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Employee-Onboarding-System/config"
	"Employee-Onboarding-System/models"
	"Employee-Onboarding-System/pkg/mailer"
	"Employee-Onboarding-System/repository"
)

// fakeEmployeeRepo keeps employees in a map and mirrors the status
// preconditions of the mongo implementation.
type fakeEmployeeRepo struct {
	employees map[primitive.ObjectID]*models.Employee
}

func newFakeEmployeeRepo(seed ...*models.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: map[primitive.ObjectID]*models.Employee{}}
	for _, employee := range seed {
		repo.employees[employee.ID] = employee
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *models.Employee) (*mongo.InsertOneResult, error) {
	r.employees[employee.ID] = employee
	return &mongo.InsertOneResult{InsertedID: employee.ID}, nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, nil
	}
	copied := *employee
	return &copied, nil
}

func (r *fakeEmployeeRepo) FindByIDAndStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Employee, error) {
	employee, ok := r.employees[id]
	if !ok || employee.Status != status {
		return nil, nil
	}
	copied := *employee
	return &copied, nil
}

func (r *fakeEmployeeRepo) FindAllByStatus(_ context.Context, status string) ([]models.Employee, error) {
	matched := []models.Employee{}
	for _, employee := range r.employees {
		if employee.Status == status {
			matched = append(matched, *employee)
		}
	}
	return matched, nil
}

func (r *fakeEmployeeRepo) TransitionStatus(_ context.Context, id primitive.ObjectID, from, to, reply string) (*models.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if employee.Status != from {
		return nil, repository.ErrStatusConflict
	}
	employee.Status = to
	employee.Reply = reply
	if to == models.StatusApproved {
		employee.WorkStatus = models.WorkStatusActive
	}
	employee.UpdatedAt = time.Now()
	copied := *employee
	return &copied, nil
}

func (r *fakeEmployeeRepo) UpdatePendingFields(_ context.Context, id primitive.ObjectID, updateData bson.M) (*models.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if employee.Status != models.StatusPending {
		return nil, repository.ErrStatusConflict
	}
	if name, ok := updateData["name"].(string); ok {
		employee.Name = name
	}
	if email, ok := updateData["email"].(string); ok {
		employee.Email = email
	}
	if phone, ok := updateData["phone"].(string); ok {
		employee.Phone = phone
	}
	copied := *employee
	return &copied, nil
}

func (r *fakeEmployeeRepo) UpdateWorkStatus(_ context.Context, id primitive.ObjectID, workStatus string) (*models.Employee, error) {
	employee, ok := r.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if employee.Status != models.StatusApproved {
		return nil, repository.ErrStatusConflict
	}
	employee.WorkStatus = workStatus
	copied := *employee
	return &copied, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id primitive.ObjectID, status string) (*mongo.DeleteResult, error) {
	employee, ok := r.employees[id]
	if !ok || employee.Status != status {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(r.employees, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type fakeWorkplaceRepo struct {
	workplaces map[primitive.ObjectID]*models.Workplace
}

func (r *fakeWorkplaceRepo) CreateWorkplace(_ context.Context, workplace *models.Workplace) (*mongo.InsertOneResult, error) {
	r.workplaces[workplace.ID] = workplace
	return &mongo.InsertOneResult{InsertedID: workplace.ID}, nil
}

func (r *fakeWorkplaceRepo) GetAllWorkplaces(_ context.Context) ([]models.Workplace, error) {
	all := []models.Workplace{}
	for _, workplace := range r.workplaces {
		all = append(all, *workplace)
	}
	return all, nil
}

func (r *fakeWorkplaceRepo) GetWorkplaceByID(_ context.Context, id primitive.ObjectID) (*models.Workplace, error) {
	workplace, ok := r.workplaces[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return workplace, nil
}

func (r *fakeWorkplaceRepo) UpdateWorkplace(_ context.Context, id primitive.ObjectID, _ bson.M) (*mongo.UpdateResult, error) {
	if _, ok := r.workplaces[id]; !ok {
		return &mongo.UpdateResult{MatchedCount: 0}, nil
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeWorkplaceRepo) DeleteWorkplace(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if _, ok := r.workplaces[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(r.workplaces, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (r *fakeWorkplaceRepo) FindWorkplaceByName(_ context.Context, name string) (*models.Workplace, error) {
	for _, workplace := range r.workplaces {
		if workplace.Name == name {
			return workplace, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newEmployeeTestApp(repo repository.EmployeeRepository) *fiber.App {
	app := fiber.New()
	handler := NewEmployeeHandler(repo, &fakeWorkplaceRepo{workplaces: map[primitive.ObjectID]*models.Workplace{}}, mailer.New(&config.AppConfig{}))

	app.Post("/makrkapprove/:id", handler.ApproveEmployee)
	app.Post("/markreject/:id", handler.RejectEmployee)
	app.Post("/changeworkstatus/:id", handler.ChangeWorkStatus)
	app.Get("/allpendingemployee", handler.AllPendingEmployees)
	app.Put("/editapprovedemployee/:id", handler.EditApprovedEmployee)
	app.Delete("/deleteemployee/:id", handler.DeleteEmployee)
	return app
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestApproveEmployee(t *testing.T) {
	pending := &models.Employee{ID: primitive.NewObjectID(), Name: "Bimal", Email: "bimal@example.com", Status: models.StatusPending}

	t.Run("approves a pending employee", func(t *testing.T) {
		repo := newFakeEmployeeRepo(pending)
		app := newEmployeeTestApp(repo)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/makrkapprove/"+pending.ID.Hex(), nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeBody(t, resp)
		employee := body["employee"].(map[string]any)
		if employee["status"] != models.StatusApproved {
			t.Errorf("status = %v, want Approved", employee["status"])
		}
		if employee["workstatus"] != models.WorkStatusActive {
			t.Errorf("workstatus = %v, want Active on approval", employee["workstatus"])
		}
	})

	t.Run("second approve answers 409", func(t *testing.T) {
		repo := newFakeEmployeeRepo(&models.Employee{ID: pending.ID, Name: "Bimal", Status: models.StatusApproved})
		app := newEmployeeTestApp(repo)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/makrkapprove/"+pending.ID.Hex(), nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("status = %d, want 409", resp.StatusCode)
		}
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		app := newEmployeeTestApp(newFakeEmployeeRepo())

		resp, err := app.Test(jsonRequest(http.MethodPost, "/makrkapprove/"+primitive.NewObjectID().Hex(), nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestRejectEmployee(t *testing.T) {
	t.Run("stores the reply", func(t *testing.T) {
		pending := &models.Employee{ID: primitive.NewObjectID(), Name: "Bimal", Status: models.StatusPending}
		repo := newFakeEmployeeRepo(pending)
		app := newEmployeeTestApp(repo)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/markreject/"+pending.ID.Hex(), models.RejectPayload{Reply: "photo is blurry"}))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeBody(t, resp)
		employee := body["employee"].(map[string]any)
		if employee["reply"] != "photo is blurry" {
			t.Errorf("reply = %v, want the rejection reason", employee["reply"])
		}
	})

	t.Run("missing reply answers 400 without touching the record", func(t *testing.T) {
		pending := &models.Employee{ID: primitive.NewObjectID(), Name: "Bimal", Status: models.StatusPending}
		repo := newFakeEmployeeRepo(pending)
		app := newEmployeeTestApp(repo)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/markreject/"+pending.ID.Hex(), models.RejectPayload{}))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if repo.employees[pending.ID].Status != models.StatusPending {
			t.Error("record left the pending status")
		}
	})
}

func TestEditApprovedEmployee(t *testing.T) {
	approved := &models.Employee{
		ID:         primitive.NewObjectID(),
		Name:       "Bimal",
		Email:      "bimal@example.com",
		Status:     models.StatusApproved,
		WorkStatus: models.WorkStatusActive,
	}
	repo := newFakeEmployeeRepo(approved)
	app := newEmployeeTestApp(repo)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/editapprovedemployee/"+approved.ID.Hex(), models.EmployeeUpdatePayload{Name: "Bimal Kumar"}))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	resubmission := body["employee"].(map[string]any)
	if resubmission["id"] == approved.ID.Hex() {
		t.Error("resubmission reused the approved record's id")
	}
	if resubmission["status"] != models.StatusPending {
		t.Errorf("resubmission status = %v, want Pending", resubmission["status"])
	}

	original := repo.employees[approved.ID]
	if original.Status != models.StatusApproved || original.Name != "Bimal" {
		t.Errorf("approved record was modified: %+v", original)
	}
	if len(repo.employees) != 2 {
		t.Errorf("repo has %d records, want the original plus the clone", len(repo.employees))
	}
}

func TestChangeWorkStatus(t *testing.T) {
	t.Run("toggles an approved employee", func(t *testing.T) {
		approved := &models.Employee{ID: primitive.NewObjectID(), Name: "Bimal", Status: models.StatusApproved, WorkStatus: models.WorkStatusActive}
		app := newEmployeeTestApp(newFakeEmployeeRepo(approved))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/changeworkstatus/"+approved.ID.Hex(), models.WorkStatusPayload{WorkStatus: models.WorkStatusInactive}))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeBody(t, resp)
		if body["employee"].(map[string]any)["workstatus"] != models.WorkStatusInactive {
			t.Error("workstatus was not updated")
		}
	})

	t.Run("pending employee answers 409", func(t *testing.T) {
		pending := &models.Employee{ID: primitive.NewObjectID(), Name: "Bimal", Status: models.StatusPending}
		app := newEmployeeTestApp(newFakeEmployeeRepo(pending))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/changeworkstatus/"+pending.ID.Hex(), models.WorkStatusPayload{WorkStatus: models.WorkStatusInactive}))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("status = %d, want 409", resp.StatusCode)
		}
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Run("deletes within the addressed scope", func(t *testing.T) {
		rejected := &models.Employee{ID: primitive.NewObjectID(), Name: "Bimal", Status: models.StatusRejected}
		repo := newFakeEmployeeRepo(rejected)
		app := newEmployeeTestApp(repo)

		resp, err := app.Test(jsonRequest(http.MethodDelete, "/deleteemployee/"+rejected.ID.Hex()+"?scope=rejected", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if len(repo.employees) != 0 {
			t.Error("record survived the delete")
		}
	})

	t.Run("wrong scope answers 404 and deletes nothing", func(t *testing.T) {
		rejected := &models.Employee{ID: primitive.NewObjectID(), Name: "Bimal", Status: models.StatusRejected}
		repo := newFakeEmployeeRepo(rejected)
		app := newEmployeeTestApp(repo)

		resp, err := app.Test(jsonRequest(http.MethodDelete, "/deleteemployee/"+rejected.ID.Hex()+"?scope=pending", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
		if len(repo.employees) != 1 {
			t.Error("record was deleted from the wrong scope")
		}
	})

	t.Run("unknown scope answers 400", func(t *testing.T) {
		app := newEmployeeTestApp(newFakeEmployeeRepo())

		resp, err := app.Test(jsonRequest(http.MethodDelete, "/deleteemployee/"+primitive.NewObjectID().Hex()+"?scope=archived", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}
