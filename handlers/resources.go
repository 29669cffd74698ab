package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/elve-agency/backend/internal/content"
)

// resource describes one content collection exposed through the uniform
// list/get/create/update/delete shape.
type resource struct {
	path        string
	collection  string
	label       string
	timestamps  bool
	seedFile    string // seed-on-empty when set
	filterParam string // optional equality-filter query parameter
	filterField string
	filterAll   string // sentinel value that bypasses the filter
	newBody     func() content.CreateRequest
}

var resources = []resource{
	{path: "services", collection: "services", label: "Service", timestamps: true, seedFile: "services.json",
		newBody: func() content.CreateRequest { return &content.Service{} }},
	{path: "projects", collection: "projects", label: "Project", timestamps: true,
		filterParam: "category", filterField: "category", filterAll: "All Blog",
		newBody: func() content.CreateRequest { return &content.Project{} }},
	{path: "pricing", collection: "pricing", label: "Pricing plan", timestamps: true,
		newBody: func() content.CreateRequest { return &content.PricingPlan{} }},
	{path: "blogs", collection: "blogs", label: "Blog", timestamps: true,
		newBody: func() content.CreateRequest { return &content.Blog{} }},
	{path: "testimonials", collection: "testimonials", label: "Testimonial", timestamps: true,
		newBody: func() content.CreateRequest { return &content.Testimonial{} }},
	{path: "clients", collection: "clients", label: "Client", timestamps: true,
		newBody: func() content.CreateRequest { return &content.Client{} }},
	{path: "faqs", collection: "faqs", label: "FAQ",
		newBody: func() content.CreateRequest { return &content.FAQ{} }},
}

func (a *API) list(res resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if res.seedFile != "" {
			docs, err := a.seeder.LoadOrSeed(ctx, res.collection, res.seedFile)
			if err != nil {
				storeError(c, err)
				return
			}
			c.JSON(http.StatusOK, docs)
			return
		}
		filter := bson.M{}
		if res.filterParam != "" {
			if v := c.Query(res.filterParam); v != "" && v != res.filterAll {
				filter[res.filterField] = v
			}
		}
		docs, err := a.store.List(ctx, res.collection, filter)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

func (a *API) getOne(res resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref, err := content.ParseRef(c.Param("ref"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
			return
		}
		doc, err := a.store.FindByRef(c.Request.Context(), res.collection, ref)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": res.label + " not found"})
				return
			}
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func (a *API) create(res resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := res.newBody()
		if err := c.ShouldBindJSON(body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := body.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx := c.Request.Context()
		id, err := a.store.NextID(ctx, res.collection)
		if err != nil {
			storeError(c, err)
			return
		}
		doc := body.Fields()
		doc["id"] = id
		if res.timestamps {
			now := time.Now().UTC()
			doc["created_at"] = now
			doc["updated_at"] = now
		}
		if _, err := a.store.Insert(ctx, res.collection, doc); err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": res.label + " added successfully", "id": id})
	}
}

func (a *API) update(res resource) gin.HandlerFunc {
	return func(c *gin.Context) {
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
		// field-level merge: only supplied fields are set; identifiers are
		// never client-writable
		delete(body, "_id")
		delete(body, "id")
		if len(body) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}
		if res.timestamps {
			body["updated_at"] = time.Now().UTC()
		}
		if err := a.store.UpdateByRef(c.Request.Context(), res.collection, ref, body); err != nil {
			if errors.Is(err, content.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": res.label + " not found"})
				return
			}
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": res.label + " updated successfully"})
	}
}

func (a *API) remove(res resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref, err := content.ParseRef(c.Param("ref"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
			return
		}
		if err := a.store.DeleteByRef(c.Request.Context(), res.collection, ref); err != nil {
			if errors.Is(err, content.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": res.label + " not found"})
				return
			}
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": res.label + " deleted successfully"})
	}
}

// ProjectFilters returns the category filter values for the projects page,
// with the bypass sentinel first.
func (a *API) ProjectFilters(c *gin.Context) {
	categories, err := a.store.Distinct(c.Request.Context(), "projects", "category")
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, append([]string{"All Blog"}, categories...))
}
