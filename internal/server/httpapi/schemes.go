package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listSchemes(c *gin.Context) {
	list, err := h.storage.Schemes.List(c.Request.Context())
	if err != nil {
		h.fail(c, schemeResource, "fetch schemes", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getScheme(c *gin.Context) {
	s, err := h.storage.Schemes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, schemeResource, "fetch scheme", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) createScheme(c *gin.Context) {
	var req schemeCreateRequest
	if !h.bind(c, schemeResource, &req) {
		return
	}
	s, err := h.storage.Schemes.Create(c.Request.Context(), req.input())
	if err != nil {
		h.fail(c, schemeResource, "create scheme", err)
		return
	}
	h.metrics.ObserveMutation(schemeResource.metric, "create")
	c.JSON(http.StatusOK, s)
}

func (h *Handler) updateScheme(c *gin.Context) {
	var req schemeUpdateRequest
	if !h.bind(c, schemeResource, &req) {
		return
	}
	s, err := h.storage.Schemes.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		h.fail(c, schemeResource, "update scheme", err)
		return
	}
	h.metrics.ObserveMutation(schemeResource.metric, "update")
	c.JSON(http.StatusOK, s)
}

func (h *Handler) deleteScheme(c *gin.Context) {
	ok, err := h.storage.Schemes.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, schemeResource, "delete scheme", err)
		return
	}
	h.deleted(c, schemeResource, ok)
}
