package controller

import (
	"html/template"
	"net/http"

	"portfolio/config"
	"portfolio/database/model"
	"portfolio/logger"
	"portfolio/web/service"
	"portfolio/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the public page and the login flow.
type IndexController struct {
	BaseController

	userService service.UserService

	projectService service.ContentService[model.Project]
	bookService    service.ContentService[model.Book]
	galleryService service.ContentService[model.GalleryImage]
	skillService   service.ContentService[model.Skill]
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// index renders the public listing. The live store queries sit behind a
// toggle; when disabled the template receives empty placeholder lists.
func (a *IndexController) index(c *gin.Context) {
	var (
		projects []*model.Project
		books    []*model.Book
		gallery  []*model.GalleryImage
		skills   []*model.Skill
	)

	if config.IsPublicListingEnabled() {
		var err error
		if projects, err = a.projectService.List(); err == nil {
			if books, err = a.bookService.List(); err == nil {
				if gallery, err = a.galleryService.List(); err == nil {
					skills, err = a.skillService.List()
				}
			}
		}
		if err != nil {
			logger.Warning("public listing err:", err)
			c.String(http.StatusOK, "DatabaseError")
			return
		}
	}

	html(c, "index.html", "Portfolio", gin.H{
		"projects": projects,
		"books":    books,
		"gallery":  gallery,
		"skills":   skills,
	})
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	html(c, "login.html", "Login", gin.H{"error": ""})
}

// login verifies credentials and establishes the session. Every failure shows
// the same generic message so usernames cannot be probed.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "Login", gin.H{"error": "Invalid credentials"})
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		safeUser := template.HTMLEscapeString(form.Username)
		logger.Warningf("failed login for %q from %s", safeUser, getRemoteIp(c))
		html(c, "login.html", "Login", gin.H{"error": "Invalid credentials"})
		return
	}

	session.SetMaxAge(c, session.MaxAge, config.IsSecureCookie())
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
		html(c, "login.html", "Login", gin.H{"error": "An error occurred"})
		return
	}

	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/admin")
}

func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
