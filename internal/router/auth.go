package router

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"getsbiplay.ru/store/api/pkg/global"
)

const (
	adminCookieName  = "admin-auth"
	adminCookieValue = "authenticated"
	adminCookieTTL   = 60 * 60 * 24 * 7 // seconds
	adminLoginPath   = "/admin/login"
)

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func isAdmin(c *gin.Context) bool {
	value, err := c.Cookie(adminCookieName)
	return err == nil && value == adminCookieValue
}

// AdminLogin checks the password against the bcrypt hash in
// ADMIN_PASSWORD_HASH and sets the session cookie.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "password", Message: "password is required", Code: "required"},
		}))
		return
	}

	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Admin login is not configured", nil))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid password", nil))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminCookieName, adminCookieValue, adminCookieTTL, "/", "", os.Getenv("ENV") == "production", true)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "authenticated"}))
}

func (h *Handler) AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminCookieName, "", -1, "/", "", os.Getenv("ENV") == "production", true)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "logged_out"}))
}

// AdminLoginPage is the redirect target for unauthenticated admin requests.
func (h *Handler) AdminLoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
		"message": "POST /api/admin/login with the admin password to authenticate",
	}))
}

// AdminPageGate redirects requests under /admin to the login page unless the
// session cookie is present. The login page itself is exempt.
func AdminPageGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == adminLoginPath {
			c.Next()
			return
		}
		if !isAdmin(c) {
			c.Redirect(http.StatusFound, adminLoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin guards the product-mutation API with the same session cookie,
// answering 401 instead of redirecting.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Admin authentication required", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}
