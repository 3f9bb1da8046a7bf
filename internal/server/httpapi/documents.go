package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listDocuments(c *gin.Context) {
	list, err := h.storage.Documents.List(c.Request.Context())
	if err != nil {
		h.fail(c, documentResource, "fetch documents", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getDocument(c *gin.Context) {
	d, err := h.storage.Documents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, documentResource, "fetch document", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) createDocument(c *gin.Context) {
	var req documentCreateRequest
	if !h.bind(c, documentResource, &req) {
		return
	}
	d, err := h.storage.Documents.Create(c.Request.Context(), req.input())
	if err != nil {
		h.fail(c, documentResource, "create document", err)
		return
	}
	h.metrics.ObserveMutation(documentResource.metric, "create")
	c.JSON(http.StatusOK, d)
}

func (h *Handler) updateDocument(c *gin.Context) {
	var req documentUpdateRequest
	if !h.bind(c, documentResource, &req) {
		return
	}
	d, err := h.storage.Documents.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		h.fail(c, documentResource, "update document", err)
		return
	}
	h.metrics.ObserveMutation(documentResource.metric, "update")
	c.JSON(http.StatusOK, d)
}

func (h *Handler) deleteDocument(c *gin.Context) {
	ok, err := h.storage.Documents.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, documentResource, "delete document", err)
		return
	}
	h.deleted(c, documentResource, ok)
}
