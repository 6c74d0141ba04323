package middleware

import "github.com/gin-gonic/gin"

const adminIDKey = contextKey("adminID")
const adminEmailKey = contextKey("adminEmail")

// GetAdminIDFromContext retrieves the authenticated admin id set by
// AdminAuthMiddleware.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	v := c.Request.Context().Value(adminIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// GetAdminEmailFromContext retrieves the authenticated admin email set by
// AdminAuthMiddleware.
func GetAdminEmailFromContext(c *gin.Context) (string, bool) {
	v := c.Request.Context().Value(adminEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
