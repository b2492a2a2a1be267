package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Employee-Onboarding-System/models"
	"Employee-Onboarding-System/repository"
)

type fakeAadharRepo struct {
	aadhars map[primitive.ObjectID]models.Aadhar
}

func newFakeAadharRepo(seed ...models.Aadhar) *fakeAadharRepo {
	repo := &fakeAadharRepo{aadhars: map[primitive.ObjectID]models.Aadhar{}}
	for _, aadhar := range seed {
		repo.aadhars[aadhar.ID] = aadhar
	}
	return repo
}

func (r *fakeAadharRepo) Create(_ context.Context, document *models.Aadhar) (*mongo.InsertOneResult, error) {
	r.aadhars[document.ID] = *document
	return &mongo.InsertOneResult{InsertedID: document.ID}, nil
}

func (r *fakeAadharRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Aadhar, error) {
	aadhar, ok := r.aadhars[id]
	if !ok {
		return nil, nil
	}
	return &aadhar, nil
}

func (r *fakeAadharRepo) FindByIDAndStatus(_ context.Context, id primitive.ObjectID, status string) (*models.Aadhar, error) {
	aadhar, ok := r.aadhars[id]
	if !ok || aadhar.Status != status {
		return nil, nil
	}
	return &aadhar, nil
}

func (r *fakeAadharRepo) FindByOwnerAndStatus(_ context.Context, employeeID primitive.ObjectID, status string) (*models.Aadhar, error) {
	for _, aadhar := range r.aadhars {
		if aadhar.EmployeeID == employeeID && aadhar.Status == status {
			return &aadhar, nil
		}
	}
	return nil, nil
}

func (r *fakeAadharRepo) FindAllByStatus(_ context.Context, status string) ([]models.Aadhar, error) {
	matched := []models.Aadhar{}
	for _, aadhar := range r.aadhars {
		if aadhar.Status == status {
			matched = append(matched, aadhar)
		}
	}
	return matched, nil
}

func (r *fakeAadharRepo) TransitionStatus(_ context.Context, id primitive.ObjectID, from, to, reply string) (*models.Aadhar, error) {
	aadhar, ok := r.aadhars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if aadhar.Status != from {
		return nil, repository.ErrStatusConflict
	}
	aadhar.Status = to
	aadhar.Reply = reply
	aadhar.UpdatedAt = time.Now()
	r.aadhars[id] = aadhar
	return &aadhar, nil
}

func (r *fakeAadharRepo) UpdatePendingFields(_ context.Context, id primitive.ObjectID, updateData bson.M) (*models.Aadhar, error) {
	aadhar, ok := r.aadhars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if aadhar.Status != models.StatusPending {
		return nil, repository.ErrStatusConflict
	}
	if name, ok := updateData["aadhar_name"].(string); ok {
		aadhar.AadharName = name
	}
	if no, ok := updateData["aadhar_no"].(string); ok {
		aadhar.AadharNo = no
	}
	r.aadhars[id] = aadhar
	return &aadhar, nil
}

func (r *fakeAadharRepo) Delete(_ context.Context, id primitive.ObjectID, status string) (*mongo.DeleteResult, error) {
	aadhar, ok := r.aadhars[id]
	if !ok || aadhar.Status != status {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(r.aadhars, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type notification struct {
	employeeID primitive.ObjectID
	status     string
	reply      string
}

func newAadharTestApp(repo repository.DocumentRepository[models.Aadhar], notifications *[]notification) *fiber.App {
	notify := func(_ context.Context, employeeID primitive.ObjectID, status, reply string) {
		if notifications != nil {
			*notifications = append(*notifications, notification{employeeID, status, reply})
		}
	}
	handler := NewDocumentHandler(repo, "aadhar", "Aadhar", notify)

	app := fiber.New()
	app.Post("/approvaadhar/:id", handler.Approve)
	app.Post("/rejectaadhar/:id", handler.Reject)
	app.Get("/allpendingaadhar", handler.AllPending)
	app.Get("/fetchbyitsownid/:id", handler.FetchByOwner)
	app.Get("/fetchapprovaadharbyid/:id", handler.FetchApprovedByID)
	app.Delete("/deleteaadhar/:id", handler.Delete)
	return app
}

func TestApproveDocument(t *testing.T) {
	owner := primitive.NewObjectID()
	pending := models.Aadhar{ID: primitive.NewObjectID(), EmployeeID: owner, AadharName: "Bimal Kumar", AadharNo: "123456789012", Status: models.StatusPending}

	t.Run("moves the record to approved and notifies the owner", func(t *testing.T) {
		repo := newFakeAadharRepo(pending)
		var notifications []notification
		app := newAadharTestApp(repo, &notifications)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/approvaadhar/"+pending.ID.Hex(), nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body := decodeBody(t, resp)
		if body["message"] != "Aadhar approved" {
			t.Errorf("message = %v", body["message"])
		}
		if body["aadhar"].(map[string]any)["status"] != models.StatusApproved {
			t.Error("record not approved in the response")
		}
		if len(notifications) != 1 || notifications[0].employeeID != owner || notifications[0].status != models.StatusApproved {
			t.Errorf("notifications = %+v, want one approval for the owner", notifications)
		}
	})

	t.Run("second approve answers 409 and does not notify again", func(t *testing.T) {
		repo := newFakeAadharRepo(pending)
		var notifications []notification
		app := newAadharTestApp(repo, &notifications)

		if _, err := app.Test(jsonRequest(http.MethodPost, "/approvaadhar/"+pending.ID.Hex(), nil)); err != nil {
			t.Fatalf("first approve failed: %v", err)
		}
		resp, err := app.Test(jsonRequest(http.MethodPost, "/approvaadhar/"+pending.ID.Hex(), nil))
		if err != nil {
			t.Fatalf("second approve failed: %v", err)
		}
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("status = %d, want 409", resp.StatusCode)
		}
		if len(notifications) != 1 {
			t.Errorf("owner was notified %d times, want 1", len(notifications))
		}
	})
}

func TestRejectDocument(t *testing.T) {
	pending := models.Aadhar{ID: primitive.NewObjectID(), EmployeeID: primitive.NewObjectID(), AadharName: "Bimal Kumar", Status: models.StatusPending}

	t.Run("stores the reply", func(t *testing.T) {
		repo := newFakeAadharRepo(pending)
		app := newAadharTestApp(repo, nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/rejectaadhar/"+pending.ID.Hex(), models.RejectPayload{Reply: "number is illegible"}))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if repo.aadhars[pending.ID].Reply != "number is illegible" {
			t.Error("reply not stored on the record")
		}
	})

	t.Run("missing reply answers 400", func(t *testing.T) {
		repo := newFakeAadharRepo(pending)
		app := newAadharTestApp(repo, nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/rejectaadhar/"+pending.ID.Hex(), models.RejectPayload{}))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
		if repo.aadhars[pending.ID].Status != models.StatusPending {
			t.Error("record left pending despite the validation failure")
		}
	})
}

func TestFetchDocumentByOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	repo := newFakeAadharRepo(
		models.Aadhar{ID: primitive.NewObjectID(), EmployeeID: owner, AadharName: "Bimal Kumar", Status: models.StatusPending},
		models.Aadhar{ID: primitive.NewObjectID(), EmployeeID: primitive.NewObjectID(), AadharName: "Riya Sharma", Status: models.StatusPending},
	)
	app := newAadharTestApp(repo, nil)

	t.Run("finds the owner's pending record", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/fetchbyitsownid/"+owner.Hex(), nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var aadhar models.Aadhar
		if err := json.NewDecoder(resp.Body).Decode(&aadhar); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if aadhar.AadharName != "Bimal Kumar" {
			t.Errorf("got %q, want the owner's record", aadhar.AadharName)
		}
	})

	t.Run("unknown owner answers 404", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/fetchbyitsownid/"+primitive.NewObjectID().Hex(), nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestDeleteDocumentScope(t *testing.T) {
	approved := models.Aadhar{ID: primitive.NewObjectID(), EmployeeID: primitive.NewObjectID(), Status: models.StatusApproved}
	repo := newFakeAadharRepo(approved)
	app := newAadharTestApp(repo, nil)

	resp, err := app.Test(jsonRequest(http.MethodDelete, "/deleteaadhar/"+approved.ID.Hex()+"?scope=approved", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(repo.aadhars) != 0 {
		t.Error("record survived the delete")
	}
}
