package session

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
	csrf "github.com/utrack/gin-csrf"

	"github.com/filmrank-io/filmrank/services/common"
	"github.com/filmrank-io/filmrank/services/web"
)

// RegisterHandler attaches cookie sessions and CSRF protection keyed
// by the shared app secret. The token is exposed on the gin context so
// views can embed it into their forms.
func RegisterHandler(c *cli.Context, r *gin.Engine) error {
	secret := c.String(common.SessionSecretFlag)
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("session", store))
	r.Use(csrf.Middleware(csrf.Options{
		Secret: secret,
		ErrorFunc: func(c *gin.Context) {
			c.AbortWithStatus(http.StatusForbidden)
		},
	}))
	r.Use(func(c *gin.Context) {
		c.Set(web.CSRFKey, csrf.GetToken(c))
		c.Next()
	})
	return nil
}
