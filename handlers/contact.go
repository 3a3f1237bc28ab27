package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"homebuddy/models"
	"homebuddy/store"
)

type ContactController struct {
	store store.ContactStore
}

func NewContactController(s store.ContactStore) *ContactController {
	return &ContactController{store: s}
}

// SubmitContact handles the public contact form. All four fields must be
// non-empty after trimming; nothing is written otherwise.
func (cc *ContactController) SubmitContact(c echo.Context) error {
	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "All fields are required"})
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  "pending",
	}
	if err := cc.store.Create(context.Background(), &contact); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to send message. Please try again."})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Message sent successfully! We will get back to you soon.",
		"contact": contact,
	})
}

func (cc *ContactController) GetAllContacts(c echo.Context) error {
	contacts, err := cc.store.List(context.Background())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch messages"})
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return c.JSON(http.StatusOK, contacts)
}

func (cc *ContactController) GetContact(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid message ID"})
	}

	contact, err := cc.store.Get(context.Background(), id)
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Message not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch message"})
	}
	return c.JSON(http.StatusOK, contact)
}

func (cc *ContactController) UpdateContactStatus(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid message ID"})
	}

	var req models.ContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if !models.IsValidContactStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid status: must be pending, read or replied"})
	}

	contact, err := cc.store.UpdateStatus(context.Background(), id, req.Status)
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Message not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update status"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Status updated",
		"contact": contact,
	})
}

func (cc *ContactController) DeleteContact(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid message ID"})
	}

	err = cc.store.Delete(context.Background(), id)
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Message not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete message"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
