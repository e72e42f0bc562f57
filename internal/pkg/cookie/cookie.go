package cookie

import (
	"github.com/gin-gonic/gin"
)

// The identity service sets the session cookie; this service only reads it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
