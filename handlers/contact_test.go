package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"homebuddy/models"
	"homebuddy/store"
)

type mockContactStore struct {
	createFunc func(ctx context.Context, contact *models.Contact) error
	listFunc   func(ctx context.Context) ([]models.Contact, error)
	getFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	statusFunc func(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error)
	deleteFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockContactStore) Create(ctx context.Context, contact *models.Contact) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, contact)
	}
	return nil
}

func (m *mockContactStore) List(ctx context.Context) ([]models.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockContactStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, id, status)
	}
	return nil, store.ErrNotFound
}

func (m *mockContactStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestSubmitContact_Success(t *testing.T) {
	var captured *models.Contact
	mock := &mockContactStore{
		createFunc: func(ctx context.Context, contact *models.Contact) error {
			contact.ID = primitive.NewObjectID()
			contact.CreatedAt = time.Now()
			captured = contact
			return nil
		},
	}
	cc := NewContactController(mock)

	body := `{"name":"Ravi","email":"ravi@example.com","subject":"Viewing","message":"Is the flat still available?"}`
	c, rec := newTestContext(http.MethodPost, "/api/contact", body)

	if err := cc.SubmitContact(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("store.Create was not called")
	}
	if captured.Status != "pending" {
		t.Errorf("status = %q, want pending", captured.Status)
	}
	if captured.Name != "Ravi" || captured.Subject != "Viewing" {
		t.Errorf("captured = %+v", captured)
	}
}

func TestSubmitContact_EmptySubjectRejected(t *testing.T) {
	createCalled := false
	mock := &mockContactStore{
		createFunc: func(ctx context.Context, contact *models.Contact) error {
			createCalled = true
			return nil
		},
	}
	cc := NewContactController(mock)

	body := `{"name":"Ravi","email":"ravi@example.com","subject":"  ","message":"hello"}`
	c, rec := newTestContext(http.MethodPost, "/api/contact", body)

	if err := cc.SubmitContact(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if createCalled {
		t.Error("no record may be created when a field is empty")
	}
}

func TestSubmitContact_TrimsFields(t *testing.T) {
	var captured *models.Contact
	mock := &mockContactStore{
		createFunc: func(ctx context.Context, contact *models.Contact) error {
			captured = contact
			return nil
		},
	}
	cc := NewContactController(mock)

	body := `{"name":"  Ravi  ","email":" ravi@example.com ","subject":" Hi ","message":" hello "}`
	c, _ := newTestContext(http.MethodPost, "/api/contact", body)

	if err := cc.SubmitContact(c); err != nil {
		t.Fatal(err)
	}
	if captured == nil {
		t.Fatal("store.Create was not called")
	}
	if captured.Name != "Ravi" || captured.Email != "ravi@example.com" {
		t.Errorf("fields not trimmed: %+v", captured)
	}
}

func TestGetAllContacts_ReturnsMessages(t *testing.T) {
	now := time.Now()
	mock := &mockContactStore{
		listFunc: func(ctx context.Context) ([]models.Contact, error) {
			return []models.Contact{
				{Subject: "newest", CreatedAt: now},
				{Subject: "older", CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	cc := NewContactController(mock)

	c, rec := newTestContext(http.MethodGet, "/api/contact", "")
	if err := cc.GetAllContacts(c); err != nil {
		t.Fatal(err)
	}

	var got []models.Contact
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Subject != "newest" {
		t.Errorf("got %+v", got)
	}
}

func TestUpdateContactStatus_InvalidStatus(t *testing.T) {
	statusCalled := false
	mock := &mockContactStore{
		statusFunc: func(ctx context.Context, id primitive.ObjectID, status string) (*models.Contact, error) {
			statusCalled = true
			return nil, nil
		},
	}
	cc := NewContactController(mock)

	id := primitive.NewObjectID()
	c, rec := newTestContext(http.MethodPut, "/api/contact/"+id.Hex(), `{"status":"archived"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	if err := cc.UpdateContactStatus(c); err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if statusCalled {
		t.Error("store.UpdateStatus must not be called for an invalid status")
	}
}

func TestUpdateContactStatus_Success(t *testing.T) {
	id := primitive.NewObjectID()
	mock := &mockContactStore{
		statusFunc: func(ctx context.Context, gotID primitive.ObjectID, status string) (*models.Contact, error) {
			if gotID != id {
				t.Errorf("id = %s, want %s", gotID.Hex(), id.Hex())
			}
			return &models.Contact{ID: id, Status: status}, nil
		},
	}
	cc := NewContactController(mock)

	c, rec := newTestContext(http.MethodPut, "/api/contact/"+id.Hex(), `{"status":"read"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	if err := cc.UpdateContactStatus(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateContactStatus_NotFound(t *testing.T) {
	cc := NewContactController(&mockContactStore{})

	id := primitive.NewObjectID()
	c, rec := newTestContext(http.MethodPut, "/api/contact/"+id.Hex(), `{"status":"read"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	if err := cc.UpdateContactStatus(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteContact_NotFound(t *testing.T) {
	mock := &mockContactStore{
		deleteFunc: func(ctx context.Context, id primitive.ObjectID) error {
			return store.ErrNotFound
		},
	}
	cc := NewContactController(mock)

	id := primitive.NewObjectID()
	c, rec := newTestContext(http.MethodDelete, "/api/contact/"+id.Hex(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	if err := cc.DeleteContact(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteContact_Success(t *testing.T) {
	cc := NewContactController(&mockContactStore{})

	id := primitive.NewObjectID()
	c, rec := newTestContext(http.MethodDelete, "/api/contact/"+id.Hex(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	if err := cc.DeleteContact(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
