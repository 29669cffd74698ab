package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/elve-agency/backend/internal/content"
)

// SubmitContact stores a contact form submission. Contact messages carry no
// sequential id; they are addressed by their native identifier only.
func (a *API) SubmitContact(c *gin.Context) {
	var req content.ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc := req.Fields()
	doc["created_at"] = time.Now().UTC()
	id, err := a.store.Insert(c.Request.Context(), "contact_messages", doc)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Contact form submitted successfully", "id": id})
}

// ListContactMessages returns all contact messages, newest first.
func (a *API) ListContactMessages(c *gin.Context) {
	docs, err := a.store.ListNewest(c.Request.Context(), "contact_messages")
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (a *API) UpdateContactMessage(c *gin.Context) {
	ref, err := content.ParseRef(c.Param("ref"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return
	}
	var body bson.M
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(body, "_id")
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}
	if err := a.store.UpdateByRef(c.Request.Context(), "contact_messages", ref, body); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact message updated successfully"})
}

func (a *API) DeleteContactMessage(c *gin.Context) {
	ref, err := content.ParseRef(c.Param("ref"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return
	}
	if err := a.store.DeleteByRef(c.Request.Context(), "contact_messages", ref); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact message not found"})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact message deleted successfully"})
}
