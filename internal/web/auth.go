package web

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"gothicshop/internal/models"
)

func (s *Server) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", s.view(c, nil))
}

func (s *Server) login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	u, err := s.users.FindByUsername(c.Request.Context(), username)
	if err != nil || !models.CheckPassword(u.PasswordHash, password) || !u.IsAdmin {
		// одна и та же ошибка для неизвестного логина, неверного пароля
		// и не-админа
		c.HTML(http.StatusUnauthorized, "login.tmpl", s.view(c, ViewData{
			"Error": "اسم المستخدم أو كلمة المرور غير صحيحة",
		}))
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionUserKey, u.ID)
	_ = sess.Save()
	flashSuccess(c, "تم تسجيل الدخول بنجاح")
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

func (s *Server) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Delete(sessionUserKey)
	_ = sess.Save()
	flashSuccess(c, "تم تسجيل الخروج بنجاح")
	c.Redirect(http.StatusSeeOther, "/")
}
