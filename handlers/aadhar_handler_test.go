package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Onboarding-System/models"
)

func newAadharCreateApp(t *testing.T, aadharRepo *fakeAadharRepo, employeeRepo *fakeEmployeeRepo) *fiber.App {
	t.Helper()
	handler := NewAadharHandler(NewDocumentHandler(aadharRepo, "aadhar", "Aadhar", nil), employeeRepo)

	app := fiber.New()
	app.Post("/createaadhar", handler.Create)
	return app
}

func multipartAadharRequest(t *testing.T, fields map[string]string, withCard bool) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write form field %s: %v", key, err)
		}
	}
	if withCard {
		part, err := writer.CreateFormFile("aadhar_card", "card.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write([]byte("fake-png-bytes"))
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/createaadhar", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCreateAadhar(t *testing.T) {
	if err := os.MkdirAll("./uploads/aadhar", 0o755); err != nil {
		t.Fatalf("prepare uploads dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll("./uploads") })

	employee := &models.Employee{ID: primitive.NewObjectID(), Name: "Bimal", Email: "bimal@example.com", Status: models.StatusApproved}
	validFields := func() map[string]string {
		return map[string]string{
			"employee_id": employee.ID.Hex(),
			"aadhar_name": "Bimal Kumar",
			"aadhar_no":   "123456789012",
		}
	}

	t.Run("stores a pending record with the card image", func(t *testing.T) {
		aadharRepo := newFakeAadharRepo()
		app := newAadharCreateApp(t, aadharRepo, newFakeEmployeeRepo(employee))

		resp, err := app.Test(multipartAadharRequest(t, validFields(), true))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}

		body := decodeBody(t, resp)
		created := body["aadhar"].(map[string]any)
		if created["status"] != models.StatusPending {
			t.Errorf("status = %v, want Pending", created["status"])
		}
		if created["aadhar_no"] != "123456789012" {
			t.Errorf("aadhar_no = %v", created["aadhar_no"])
		}

		if len(aadharRepo.aadhars) != 1 {
			t.Fatalf("repo holds %d records, want 1", len(aadharRepo.aadhars))
		}
		for _, stored := range aadharRepo.aadhars {
			if stored.Status != models.StatusPending || stored.EmployeeID != employee.ID {
				t.Errorf("stored record = %+v", stored)
			}
			if stored.AadharCard == "" {
				t.Error("card image path was not stored")
			}
		}
	})

	t.Run("missing card image answers 400", func(t *testing.T) {
		aadharRepo := newFakeAadharRepo()
		app := newAadharCreateApp(t, aadharRepo, newFakeEmployeeRepo(employee))

		resp, err := app.Test(multipartAadharRequest(t, validFields(), false))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
		if len(aadharRepo.aadhars) != 0 {
			t.Error("a record was stored without its card image")
		}
	})

	t.Run("unknown employee answers 400", func(t *testing.T) {
		aadharRepo := newFakeAadharRepo()
		app := newAadharCreateApp(t, aadharRepo, newFakeEmployeeRepo())

		resp, err := app.Test(multipartAadharRequest(t, validFields(), true))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("invalid aadhaar number answers 400", func(t *testing.T) {
		aadharRepo := newFakeAadharRepo()
		app := newAadharCreateApp(t, aadharRepo, newFakeEmployeeRepo(employee))

		fields := validFields()
		fields["aadhar_no"] = "12345"
		resp, err := app.Test(multipartAadharRequest(t, fields, true))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
		if len(aadharRepo.aadhars) != 0 {
			t.Error("an invalid record was stored")
		}
	})
}
