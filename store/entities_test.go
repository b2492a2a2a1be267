package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"Employee-Onboarding-System/client"
	"Employee-Onboarding-System/models"
)

const idAadhar = "64b000000000000000000031"

func aadharCreateForm() client.Form {
	return client.Form{
		Fields: map[string]string{
			"employee_id": idBimal,
			"aadhar_name": "Bimal Kumar",
			"aadhar_no":   "123456789012",
		},
		Files: []client.File{{Field: "aadhar_card", Name: "card.png", Content: []byte("fake-png-bytes")}},
	}
}

func TestAadharStoreCreateThenApprove(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/createaadhar", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("aadhar_no"); got != "123456789012" {
			t.Errorf("aadhar_no = %q", got)
		}
		if _, _, err := r.FormFile("aadhar_card"); err != nil {
			t.Errorf("aadhar_card file missing: %v", err)
		}
		jsonEnvelope(w, "Aadhar created and queued for approval", "aadhar", models.Aadhar{
			ID:         oid(t, idAadhar),
			EmployeeID: oid(t, idBimal),
			AadharName: "Bimal Kumar",
			AadharNo:   "123456789012",
			AadharCard: "/uploads/aadhar/card.png",
			Status:     models.StatusPending,
		})
	})
	mux.HandleFunc("/approvaadhar/"+idAadhar, func(w http.ResponseWriter, r *http.Request) {
		jsonEnvelope(w, "Aadhar approved", "aadhar", models.Aadhar{
			ID:         oid(t, idAadhar),
			EmployeeID: oid(t, idBimal),
			AadharName: "Bimal Kumar",
			AadharNo:   "123456789012",
			AadharCard: "/uploads/aadhar/card.png",
			Status:     models.StatusApproved,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := NewAadhars(client.New(server.URL), nil)

	record, ok := store.Create(context.Background(), aadharCreateForm())
	if !ok {
		t.Fatalf("create failed: %s", store.Err)
	}
	if record.AadharNo != "123456789012" {
		t.Errorf("returned aadhar_no = %q", record.AadharNo)
	}
	if len(store.Pending) != 1 || store.Pending[0].AadharNo != "123456789012" {
		t.Fatalf("pending = %+v, want the submitted record", store.Pending)
	}
	if len(store.Approved) != 0 || len(store.Rejected) != 0 {
		t.Error("create touched another collection")
	}

	if _, ok := store.Approve(context.Background(), idAadhar); !ok {
		t.Fatalf("approve failed: %s", store.Err)
	}
	if len(store.Pending) != 0 {
		t.Errorf("pending still has %d records after the approve", len(store.Pending))
	}
	if len(store.Approved) != 1 || store.Approved[0].RecordID() != idAadhar {
		t.Errorf("approved = %+v, want the approved record", store.Approved)
	}
	if store.Approved[0].Status != models.StatusApproved {
		t.Errorf("status = %q, want Approved", store.Approved[0].Status)
	}
}

func TestAadharStoreCreateFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"employee does not exist"}`))
	}))
	t.Cleanup(server.Close)

	store := NewAadhars(client.New(server.URL), nil)

	if _, ok := store.Create(context.Background(), aadharCreateForm()); ok {
		t.Fatal("create against an unknown employee reported success")
	}
	if store.Err != "employee does not exist" {
		t.Errorf("Err = %q, want the server message", store.Err)
	}
	if len(store.Pending) != 0 {
		t.Error("a failed create added to pending")
	}
}

func TestPanStoreCreate(t *testing.T) {
	panID := "64b000000000000000000041"
	mux := http.NewServeMux()
	mux.HandleFunc("/createpan", func(w http.ResponseWriter, r *http.Request) {
		jsonEnvelope(w, "PAN created and queued for approval", "pan", models.Pan{
			ID:         oid(t, panID),
			EmployeeID: oid(t, idBimal),
			PanName:    "Bimal Kumar",
			PanNo:      "ABCDE1234F",
			Status:     models.StatusPending,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := NewPans(client.New(server.URL), nil)

	form := client.Form{
		Fields: map[string]string{"employee_id": idBimal, "pan_name": "Bimal Kumar", "pan_no": "ABCDE1234F"},
		Files:  []client.File{{Field: "pan_card", Name: "card.png", Content: []byte("fake-png-bytes")}},
	}
	record, ok := store.Create(context.Background(), form)
	if !ok {
		t.Fatalf("create failed: %s", store.Err)
	}
	if record.PanNo != "ABCDE1234F" {
		t.Errorf("returned pan_no = %q", record.PanNo)
	}
	if len(store.Pending) != 1 || store.Pending[0].RecordID() != panID {
		t.Errorf("pending = %+v, want the submitted record", store.Pending)
	}
}

func TestBankDetailStoreCreate(t *testing.T) {
	bankID := "64b000000000000000000051"
	mux := http.NewServeMux()
	mux.HandleFunc("/createbank", func(w http.ResponseWriter, r *http.Request) {
		jsonEnvelope(w, "Bank detail created and queued for approval", "bankDetail", models.BankDetail{
			ID:         oid(t, bankID),
			EmployeeID: oid(t, idBimal),
			HolderName: "Bimal Kumar",
			AccountNo:  "123400005678",
			IFSCCode:   "SBIN0001234",
			BankName:   "State Bank of India",
			Status:     models.StatusPending,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := NewBankDetails(client.New(server.URL), nil)

	form := client.Form{
		Fields: map[string]string{
			"employee_id": idBimal,
			"holder_name": "Bimal Kumar",
			"account_no":  "123400005678",
			"ifsc_code":   "SBIN0001234",
			"bank_name":   "State Bank of India",
		},
		Files: []client.File{{Field: "passbook_image", Name: "passbook.png", Content: []byte("fake-png-bytes")}},
	}
	record, ok := store.Create(context.Background(), form)
	if !ok {
		t.Fatalf("create failed: %s", store.Err)
	}
	if record.IFSCCode != "SBIN0001234" {
		t.Errorf("returned ifsc_code = %q", record.IFSCCode)
	}
	if len(store.Pending) != 1 || store.Pending[0].HolderName != "Bimal Kumar" {
		t.Errorf("pending = %+v, want the submitted record", store.Pending)
	}
}
