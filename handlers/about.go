package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/elve-agency/backend/internal/content"
)

// aboutSections maps the kebab-case path segments to the camelCase field
// names stored in the about document.
var aboutSections = map[string]string{
	"learn-container": "learnContainer",
	"story-section":   "storySection",
	"core-values":     "coreValues",
	"team":            "team",
	"services":        "services",
	"testimonials":    "testimonials",
	"awards":          "awards",
	"faqs":            "faqs",
}

// defaultAbout is served when no about document has been written yet.
func defaultAbout() bson.M {
	return bson.M{
		"learnContainer": bson.M{
			"heading":    "Learn More\nAbout Us",
			"videoImage": "/images/Frame (4).png",
		},
		"storySection": bson.M{
			"mainHeading": "The story of who we are\nand the vision that drives\nus forward",
			"paragraphs":  []string{"Default paragraph 1", "Default paragraph 2"},
			"images":      []string{"/images/default1.png", "/images/default2.png"},
		},
		"coreValues":   []bson.M{},
		"team":         []bson.M{},
		"services":     []bson.M{},
		"testimonials": []bson.M{},
		"awards":       []bson.M{},
		"faqs":         []bson.M{},
	}
}

// GetAbout returns the about page singleton, or the default structure when
// none exists yet.
func (a *API) GetAbout(c *gin.Context) {
	doc, err := a.store.FindSingleton(c.Request.Context(), "about")
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.JSON(http.StatusOK, defaultAbout())
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (a *API) GetAboutAdmin(c *gin.Context) {
	doc, err := a.store.FindSingleton(c.Request.Context(), "about")
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "About data not found"})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateAbout replaces the entire about document. This is the one
// full-document write in the system; section updates below merge instead.
func (a *API) UpdateAbout(c *gin.Context) {
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
	if err := a.store.ReplaceSingleton(c.Request.Context(), "about", body); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "About page updated successfully"})
}

// UpdateAboutSection sets one named section of the about singleton.
func (a *API) UpdateAboutSection(c *gin.Context) {
	section := c.Param("section")
	field, ok := aboutSections[section]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown section"})
		return
	}
	var body interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.store.UpsertSingleton(c.Request.Context(), "about", bson.M{field: body}); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": section + " updated successfully"})
}
