// Package controller provides the HTTP handlers for the portfolio site: the
// public pages, the login flow and the session-gated admin panel.
package controller

import (
	"net/http"

	"portfolio/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication check shared by admin routes.
type BaseController struct{}

// checkLogin permits the request only when the session carries a logged-in
// user; everything else is sent to the login page (401 JSON for XHR callers).
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "please log in again")
		} else {
			c.Redirect(http.StatusFound, "/login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}
