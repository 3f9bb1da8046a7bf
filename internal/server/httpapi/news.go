package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listNews(c *gin.Context) {
	list, err := h.storage.News.List(c.Request.Context())
	if err != nil {
		h.fail(c, newsResource, "fetch news", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getNews(c *gin.Context) {
	n, err := h.storage.News.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, newsResource, "fetch news item", err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) createNews(c *gin.Context) {
	var req newsCreateRequest
	if !h.bind(c, newsResource, &req) {
		return
	}
	n, err := h.storage.News.Create(c.Request.Context(), req.input())
	if err != nil {
		h.fail(c, newsResource, "create news item", err)
		return
	}
	h.metrics.ObserveMutation(newsResource.metric, "create")
	c.JSON(http.StatusOK, n)
}

func (h *Handler) updateNews(c *gin.Context) {
	var req newsUpdateRequest
	if !h.bind(c, newsResource, &req) {
		return
	}
	n, err := h.storage.News.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		h.fail(c, newsResource, "update news item", err)
		return
	}
	h.metrics.ObserveMutation(newsResource.metric, "update")
	c.JSON(http.StatusOK, n)
}

func (h *Handler) deleteNews(c *gin.Context) {
	ok, err := h.storage.News.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, newsResource, "delete news item", err)
		return
	}
	h.deleted(c, newsResource, ok)
}
