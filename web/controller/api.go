package controller

import (
	"portfolio/database/model"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// APIController exposes read-only JSON listings of the public content.
type APIController struct {
	projectService service.ContentService[model.Project]
	bookService    service.ContentService[model.Book]
	galleryService service.ContentService[model.GalleryImage]
	skillService   service.ContentService[model.Skill]
}

func NewAPIController(g *gin.RouterGroup) *APIController {
	a := &APIController{}
	a.initRouter(g)
	return a
}

func (a *APIController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/api")

	g.GET("/projects", a.projects)
	g.GET("/books", a.books)
	g.GET("/gallery", a.gallery)
	g.GET("/skills", a.skills)
}

func (a *APIController) projects(c *gin.Context) {
	projects, err := a.projectService.List()
	jsonObj(c, projects, err)
}

func (a *APIController) books(c *gin.Context) {
	books, err := a.bookService.List()
	jsonObj(c, books, err)
}

func (a *APIController) gallery(c *gin.Context) {
	gallery, err := a.galleryService.List()
	jsonObj(c, gallery, err)
}

func (a *APIController) skills(c *gin.Context) {
	skills, err := a.skillService.List()
	jsonObj(c, skills, err)
}
