package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listUsers(c *gin.Context) {
	list, err := h.storage.Users.List(c.Request.Context())
	if err != nil {
		h.fail(c, userResource, "fetch users", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) createUser(c *gin.Context) {
	var req userCreateRequest
	if !h.bind(c, userResource, &req) {
		return
	}
	u, err := h.storage.Users.Create(c.Request.Context(), models.UserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, userResource, "create user", err)
		return
	}
	h.metrics.ObserveMutation(userResource.metric, "create")
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) updateUser(c *gin.Context) {
	var req userUpdateRequest
	if !h.bind(c, userResource, &req) {
		return
	}
	u, err := h.storage.Users.Update(c.Request.Context(), c.Param("id"), models.UserPatch{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, userResource, "update user", err)
		return
	}
	h.metrics.ObserveMutation(userResource.metric, "update")
	c.JSON(http.StatusOK, u)
}

func (h *Handler) deleteUser(c *gin.Context) {
	ok, err := h.storage.Users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, userResource, "delete user", err)
		return
	}
	h.deleted(c, userResource, ok)
}
