package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elve-agency/backend/internal/auth"
	"github.com/elve-agency/backend/internal/config"
	"github.com/elve-agency/backend/internal/content"
	"github.com/elve-agency/backend/pkg/middleware"
)

// API holds the shared dependencies for all resource handlers. The store is
// handed in explicitly so tests can substitute the in-memory double.
type API struct {
	cfg    *config.Config
	store  content.Store
	auth   *auth.Authenticator
	seeder *content.Seeder
}

func NewAPI(cfg *config.Config, store content.Store, authn *auth.Authenticator) *API {
	return &API{
		cfg:    cfg,
		store:  store,
		auth:   authn,
		seeder: content.NewSeeder(store, cfg.Seed.Dir),
	}
}

// Register wires every route. Mutations are gated uniformly: every write on
// every resource requires the admin bearer credential.
func (a *API) Register(r *gin.Engine) {
	admin := middleware.RequireAdmin(a.auth)
	api := r.Group("/api")

	// the content collections share one handler shape
	for _, res := range resources {
		res := res
		api.GET("/"+res.path, a.list(res))
		api.GET("/"+res.path+"/:ref", a.getOne(res))
		api.POST("/"+res.path, admin, a.create(res))
		api.PUT("/"+res.path+"/:ref", admin, a.update(res))
		api.DELETE("/"+res.path+"/:ref", admin, a.remove(res))
	}
	api.GET("/filters", a.ProjectFilters)

	// singleton pages
	api.GET("/home", a.GetHome)
	api.GET("/about", a.GetAbout)

	// visitor submissions
	api.POST("/contact", a.SubmitContact)
	api.POST("/submit-question", a.SubmitQuestion)

	adm := api.Group("/admin")
	adm.POST("/login", a.Login)
	adm.GET("/verify", admin, a.Verify)
	adm.PUT("/home", admin, a.UpdateHome)
	adm.PUT("/home/section/:section", admin, a.UpdateHomeSection)
	adm.GET("/about", admin, a.GetAboutAdmin)
	adm.PUT("/about", admin, a.UpdateAbout)
	adm.PUT("/about/:section", admin, a.UpdateAboutSection)
	adm.GET("/questions", admin, a.ListQuestions)
	adm.PUT("/answer-question/:id", admin, a.AnswerQuestion)
	adm.GET("/contact-messages", admin, a.ListContactMessages)
	adm.PUT("/contact-messages/:ref", admin, a.UpdateContactMessage)
	adm.DELETE("/contact-messages/:ref", admin, a.DeleteContactMessage)
}

func storeError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
