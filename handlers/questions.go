package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/elve-agency/backend/internal/content"
	"github.com/elve-agency/backend/pkg/logger"
)

// SubmitQuestion stores a visitor question as unanswered, with the next
// sequential id.
func (a *API) SubmitQuestion(c *gin.Context) {
	var req content.Question
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id, err := a.store.NextID(ctx, "questions")
	if err != nil {
		storeError(c, err)
		return
	}
	doc := req.Fields()
	doc["id"] = id
	doc["submitted_at"] = time.Now().UTC()
	if _, err := a.store.Insert(ctx, "questions", doc); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Question submitted successfully", "id": id})
}

// ListQuestions returns all submitted questions. Admin-only: submissions
// carry visitor email addresses.
func (a *API) ListQuestions(c *gin.Context) {
	docs, err := a.store.List(c.Request.Context(), "questions", bson.M{})
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// AnswerQuestion attaches an answer to a submitted question and publishes
// it into the FAQ collection. The two writes are independent; a failure
// after the first leaves the question answered without a FAQ entry.
func (a *API) AnswerQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return
	}
	var req struct {
		Answer string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	ref := content.SequentialRef(id)
	q, err := a.store.FindByRef(ctx, "questions", ref)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		storeError(c, err)
		return
	}

	now := time.Now().UTC()
	set := bson.M{"answer": req.Answer, "answered": true, "answered_at": now}
	if err := a.store.UpdateByRef(ctx, "questions", ref, set); err != nil {
		storeError(c, err)
		return
	}

	faqID, err := a.store.NextID(ctx, "faqs")
	if err != nil {
		logger.Errorf("question %d answered but FAQ publish failed: %v", id, err)
		storeError(c, err)
		return
	}
	question, _ := q["question"].(string)
	faq := bson.M{"id": faqID, "question": question, "answer": req.Answer, "open": false}
	if _, err := a.store.Insert(ctx, "faqs", faq); err != nil {
		logger.Errorf("question %d answered but FAQ publish failed: %v", id, err)
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question answered successfully"})
}
