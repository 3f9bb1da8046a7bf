package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/gin-gonic/gin"
)

// resource names an entity in user-facing messages.
type resource struct {
	name   string // "Scheme", "News item"
	label  string // as in "Invalid scheme data"
	plural string // as in "Failed to fetch schemes"
	metric string
}

var (
	schemeResource   = resource{name: "Scheme", label: "scheme", plural: "schemes", metric: "scheme"}
	newsResource     = resource{name: "News item", label: "news", plural: "news", metric: "news"}
	documentResource = resource{name: "Document", label: "document", plural: "documents", metric: "document"}
	settingResource  = resource{name: "Setting", label: "setting", plural: "settings", metric: "setting"}
	branchResource   = resource{name: "Branch", label: "branch", plural: "branches", metric: "branch"}
	userResource     = resource{name: "User", label: "user", plural: "users", metric: "user"}
	loginResource    = resource{name: "User", label: "request", plural: "sessions", metric: "session"}
)

func message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}

// bind decodes the JSON body into req and validates it. On failure it
// writes a 400 and returns false.
func (h *Handler) bind(c *gin.Context, res resource, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.log.Debug(c.Request.Context(), "malformed request body", "resource", res.plural, "error", err)
		message(c, http.StatusBadRequest, "Invalid "+res.label+" data")
		return false
	}
	if err := validate.Struct(req); err != nil {
		h.log.Debug(c.Request.Context(), "request validation failed", "resource", res.plural, "error", validationMessage(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid " + res.label + " data",
			"error":   validationMessage(err),
		})
		return false
	}
	return true
}

// fail maps a service error to a status code. action completes the
// "Failed to ..." message used for unexpected errors.
func (h *Handler) fail(c *gin.Context, res resource, action string, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		message(c, http.StatusNotFound, res.name+" not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		message(c, http.StatusBadRequest, res.name+" already exists")
	case errors.Is(err, common.ErrorValidation):
		message(c, http.StatusBadRequest, "Invalid "+res.label+" data")
	case errors.Is(err, common.ErrorUnauthorized):
		message(c, http.StatusUnauthorized, "Unauthorized")
	default:
		h.log.Error(c.Request.Context(), "request failed", "resource", res.plural, "action", action, "error", err)
		message(c, http.StatusInternalServerError, "Failed to "+action)
	}
}

func (h *Handler) deleted(c *gin.Context, res resource, ok bool) {
	if !ok {
		message(c, http.StatusNotFound, res.name+" not found")
		return
	}
	h.metrics.ObserveMutation(res.metric, "delete")
	message(c, http.StatusOK, res.name+" deleted successfully")
}
