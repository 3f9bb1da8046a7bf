package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listBranches(c *gin.Context) {
	list, err := h.storage.Branches.List(c.Request.Context())
	if err != nil {
		h.fail(c, branchResource, "fetch branches", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getBranch(c *gin.Context) {
	b, err := h.storage.Branches.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, branchResource, "fetch branch", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) createBranch(c *gin.Context) {
	var req branchCreateRequest
	if !h.bind(c, branchResource, &req) {
		return
	}
	b, err := h.storage.Branches.Create(c.Request.Context(), req.input())
	if err != nil {
		h.fail(c, branchResource, "create branch", err)
		return
	}
	h.metrics.ObserveMutation(branchResource.metric, "create")
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) updateBranch(c *gin.Context) {
	var req branchUpdateRequest
	if !h.bind(c, branchResource, &req) {
		return
	}
	b, err := h.storage.Branches.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		h.fail(c, branchResource, "update branch", err)
		return
	}
	h.metrics.ObserveMutation(branchResource.metric, "update")
	c.JSON(http.StatusOK, b)
}

func (h *Handler) deleteBranch(c *gin.Context) {
	ok, err := h.storage.Branches.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, branchResource, "delete branch", err)
		return
	}
	h.deleted(c, branchResource, ok)
}
