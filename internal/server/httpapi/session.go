package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// sessionKey stores the verified *auth.Claims in the gin context.
const sessionKey = "bankportal_session"

// requireAdmin rejects requests without a valid session cookie or whose
// session user no longer exists.
func (h *Handler) requireAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	claims, err := h.sessionClaims(c)
	if err != nil {
		h.log.Debug(ctx, "session rejected", "path", c.FullPath(), "error", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	if _, err := h.storage.Users.Get(ctx, claims.UserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			h.log.Info(ctx, "session of unknown user rejected", "user_id", claims.UserID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		h.fail(c, userResource, "verify session", err)
		c.Abort()
		return
	}

	c.Set(sessionKey, claims)
	c.Next()
}

func (h *Handler) sessionClaims(c *gin.Context) (*auth.Claims, error) {
	token, err := c.Cookie(common.SessionCookieName)
	if err != nil || token == "" {
		return nil, common.ErrorUnauthorized
	}
	return auth.ParseToken(token, h.cfg.SecretKey)
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(common.SessionCookieName, token, maxAge, "/", "", h.cfg.SecureCookie, true)
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if !h.bind(c, loginResource, &req) {
		return
	}
	ctx := c.Request.Context()

	u, err := h.storage.Users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			h.metrics.ObserveLogin("invalid")
			h.log.Info(ctx, "admin login rejected", "username", req.Username)
			message(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.metrics.ObserveLogin("error")
		h.fail(c, loginResource, "log in", err)
		return
	}

	token, err := auth.GenerateToken(u.ID, u.Username, h.cfg.SecretKey, h.cfg.SessionTTL)
	if err != nil {
		h.metrics.ObserveLogin("error")
		h.fail(c, loginResource, "log in", err)
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.SessionTTL.Seconds()))
	h.metrics.ObserveLogin("success")
	h.log.Info(ctx, "admin logged in", "user_id", u.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    sessionUser{ID: u.ID, Username: u.Username},
	})
}

func (h *Handler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	message(c, http.StatusOK, "Logged out successfully")
}

// authUser reports the signed-in account. A session whose user has since
// been deleted is treated as signed out.
func (h *Handler) authUser(c *gin.Context) {
	claims, err := h.sessionClaims(c)
	if err != nil {
		message(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	u, err := h.storage.Users.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			message(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		h.fail(c, userResource, "fetch user", err)
		return
	}
	c.JSON(http.StatusOK, sessionUser{ID: u.ID, Username: u.Username})
}
