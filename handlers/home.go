package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/elve-agency/backend/internal/content"
)

// GetHome returns the home page singleton, materializing it from the
// bundled seed file on first read.
func (a *API) GetHome(c *gin.Context) {
	doc, err := a.seeder.LoadOrSeedSingleton(c.Request.Context(), "home", "home.json")
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Home data not found"})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateHome merges the supplied fields into the home singleton, creating
// it when absent.
func (a *API) UpdateHome(c *gin.Context) {
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
	if err := a.store.UpsertSingleton(c.Request.Context(), "home", body); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Home data updated successfully"})
}

// UpdateHomeSection sets a single named top-level field of the home
// singleton without disturbing its siblings.
func (a *API) UpdateHomeSection(c *gin.Context) {
	section := c.Param("section")
	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.store.UpsertSingleton(c.Request.Context(), "home", bson.M{section: body}); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": section + " section updated successfully"})
}
