package web

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionUserKey = "user_id"

func currentUserID(c *gin.Context) uint {
	sess := sessions.Default(c)
	id, _ := sess.Get(sessionUserKey).(uint)
	return id
}

// RequireLogin redirects to the login form when no identity is attached
// to the session.
func (s *Server) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUserID(c) == 0 {
			flashError(c, "يجب تسجيل الدخول أولاً")
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin loads the session's user and sends non-admins back to the
// public home page. Implies RequireLogin.
func (s *Server) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := currentUserID(c)
		if uid == 0 {
			flashError(c, "يجب تسجيل الدخول أولاً")
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}
		u, err := s.users.Get(c.Request.Context(), uid)
		if err != nil || !u.IsAdmin {
			flashError(c, "ليس لديك صلاحية للوصول إلى هذه الصفحة")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Set("currentUser", u)
		c.Next()
	}
}
