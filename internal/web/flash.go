package web

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ViewData is what every template receives.
type ViewData map[string]any

func flashSuccess(c *gin.Context, msg string) { addFlash(c, "success", msg) }
func flashError(c *gin.Context, msg string)   { addFlash(c, "error", msg) }

func addFlash(c *gin.Context, kind, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, kind)
	_ = sess.Save()
}

// view drains pending flash messages and attaches the common keys every
// page expects.
func (s *Server) view(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	sess := sessions.Default(c)
	data["Success"] = flashStrings(sess.Flashes("success"))
	data["Errors"] = flashStrings(sess.Flashes("error"))
	_ = sess.Save() // persists the drained flashes

	if u, ok := c.Get("currentUser"); ok {
		data["User"] = u
	}
	data["LoggedIn"] = currentUserID(c) != 0
	return data
}

func flashStrings(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
