package controller

import (
	"net/http"
	"strconv"

	"portfolio/database/model"
	"portfolio/logger"
	"portfolio/web/service"

	"github.com/gin-gonic/gin"
)

// AdminController handles the session-gated admin panel: the combined listing
// view and add/edit/delete for each of the four record kinds.
type AdminController struct {
	BaseController

	projectService service.ContentService[model.Project]
	bookService    service.ContentService[model.Book]
	galleryService service.ContentService[model.GalleryImage]
	skillService   service.ContentService[model.Skill]
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/admin")
	g.Use(a.checkLogin)

	g.GET("", a.index)
	g.GET("/", a.index)
	g.GET("/logs", a.logs)

	g.POST("/add-project", a.addProject)
	g.POST("/edit", a.editProject)
	g.POST("/delete", a.deleteProject)

	g.POST("/add-book", a.addBook)
	g.POST("/edit-book", a.editBook)
	g.POST("/delete-book", a.deleteBook)

	g.POST("/add-gallery", a.addGallery)
	g.POST("/edit-gallery", a.editGallery)
	g.POST("/delete-gallery", a.deleteGallery)

	g.POST("/add-skill", a.addSkill)
	g.POST("/edit-skill", a.editSkill)
	g.POST("/delete-skill", a.deleteSkill)
}

// index renders all four record listings, newest first.
func (a *AdminController) index(c *gin.Context) {
	projects, err := a.projectService.List()
	if err != nil {
		failPage(c, "Error getting stored projects from db", err)
		return
	}
	books, err := a.bookService.List()
	if err != nil {
		failPage(c, "Error getting stored books from db", err)
		return
	}
	gallery, err := a.galleryService.List()
	if err != nil {
		failPage(c, "Error getting stored gallery from db", err)
		return
	}
	skills, err := a.skillService.List()
	if err != nil {
		failPage(c, "Error getting stored skills from db", err)
		return
	}

	html(c, "admin.html", "Admin", gin.H{
		"projects": projects,
		"books":    books,
		"gallery":  gallery,
		"skills":   skills,
	})
}

// logs returns recent panel log lines from the in-memory buffer.
func (a *AdminController) logs(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "50"))
	if err != nil || count < 1 {
		count = 50
	}
	level := c.DefaultQuery("level", "INFO")
	jsonObj(c, logger.GetLogs(count, level), nil)
}

func (a *AdminController) addProject(c *gin.Context) {
	addRecord(c, &a.projectService, "error inserting project")
}

func (a *AdminController) editProject(c *gin.Context) {
	editRecord(c, &a.projectService, "projectID", "error editing project")
}

func (a *AdminController) deleteProject(c *gin.Context) {
	deleteRecord(c, &a.projectService, "projectID", "Error deleting your project")
}

func (a *AdminController) addBook(c *gin.Context) {
	addRecord(c, &a.bookService, "error inserting book, Check: ISBN number cannot duplicate")
}

func (a *AdminController) editBook(c *gin.Context) {
	editRecord(c, &a.bookService, "book_id", "error editing book")
}

func (a *AdminController) deleteBook(c *gin.Context) {
	deleteRecord(c, &a.bookService, "book_id", "Error deleting your book")
}

func (a *AdminController) addGallery(c *gin.Context) {
	addRecord(c, &a.galleryService, "Error adding image")
}

func (a *AdminController) editGallery(c *gin.Context) {
	editRecord(c, &a.galleryService, "img_id", "Error updating description")
}

func (a *AdminController) deleteGallery(c *gin.Context) {
	deleteRecord(c, &a.galleryService, "img_id", "Error deleting image")
}

func (a *AdminController) addSkill(c *gin.Context) {
	addRecord(c, &a.skillService, "Error adding skill")
}

func (a *AdminController) editSkill(c *gin.Context) {
	editRecord(c, &a.skillService, "skill_id", "Error editing skill")
}

func (a *AdminController) deleteSkill(c *gin.Context) {
	deleteRecord(c, &a.skillService, "skill_id", "Error deleting skill")
}

// addRecord binds the submitted form to a fresh record and inserts it.
func addRecord[T service.Record](c *gin.Context, svc *service.ContentService[T], failMsg string) {
	record := new(T)
	if err := c.ShouldBind(record); err != nil {
		failPage(c, failMsg, err)
		return
	}
	if err := svc.Add(record); err != nil {
		failPage(c, failMsg, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// editRecord merges the submitted form over the stored row keyed by the id
// form field. Fields left empty keep their stored values.
func editRecord[T service.Record](c *gin.Context, svc *service.ContentService[T], idField, failMsg string) {
	id, err := strconv.Atoi(c.PostForm(idField))
	if err != nil {
		failPage(c, failMsg, err)
		return
	}
	record := new(T)
	if err := c.ShouldBind(record); err != nil {
		failPage(c, failMsg, err)
		return
	}
	if err := svc.Edit(id, record); err != nil {
		failPage(c, failMsg, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// deleteRecord removes the row keyed by the id form field. A missing row is
// still a success: the delete is idempotent.
func deleteRecord[T service.Record](c *gin.Context, svc *service.ContentService[T], idField, failMsg string) {
	id, err := strconv.Atoi(c.PostForm(idField))
	if err != nil {
		failPage(c, failMsg, err)
		return
	}
	if err := svc.Delete(id); err != nil {
		failPage(c, failMsg, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// failPage logs the cause and answers with a generic inline message; internal
// detail never reaches the client.
func failPage(c *gin.Context, msg string, err error) {
	logger.Warning(msg+": ", err)
	c.String(http.StatusOK, msg)
}
