package middleware

import "github.com/gin-gonic/gin"

// playerUsernameKey is the key used to store the authenticated player's
// username in the request context.
const playerUsernameKey = contextKey("playerUsername")

// GetAuthenticatedUsername retrieves the authenticated player's username from
// the request. It returns the username and a boolean indicating if it was found.
func GetAuthenticatedUsername(c *gin.Context) (string, bool) {
	usernameVal := c.Request.Context().Value(playerUsernameKey)
	if usernameVal == nil {
		return "", false
	}

	username, ok := usernameVal.(string)
	if !ok {
		return "", false
	}

	return username, true
}
