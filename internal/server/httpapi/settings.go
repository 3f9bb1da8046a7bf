package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/gin-gonic/gin"
)

// listSettings returns every setting, or only one category when
// ?category= is given.
func (h *Handler) listSettings(c *gin.Context) {
	var (
		list []models.Setting
		err  error
	)
	if category := c.Query("category"); category != "" {
		list, err = h.storage.Settings.ListByCategory(c.Request.Context(), category)
	} else {
		list, err = h.storage.Settings.List(c.Request.Context())
	}
	if err != nil {
		h.fail(c, settingResource, "fetch settings", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getSettingByKey(c *gin.Context) {
	s, err := h.storage.Settings.FindByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.fail(c, settingResource, "fetch setting", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// upsertSetting writes the value of an existing key or creates the setting.
func (h *Handler) upsertSetting(c *gin.Context) {
	var req settingUpsertRequest
	if !h.bind(c, settingResource, &req) {
		return
	}
	s, created, err := h.storage.Settings.UpsertByKey(c.Request.Context(), req.input())
	if err != nil {
		h.fail(c, settingResource, "save setting", err)
		return
	}
	if created {
		h.metrics.ObserveMutation(settingResource.metric, "create")
	} else {
		h.metrics.ObserveMutation(settingResource.metric, "update")
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) updateSetting(c *gin.Context) {
	var req settingUpdateRequest
	if !h.bind(c, settingResource, &req) {
		return
	}
	s, err := h.storage.Settings.Update(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		h.fail(c, settingResource, "update setting", err)
		return
	}
	h.metrics.ObserveMutation(settingResource.metric, "update")
	c.JSON(http.StatusOK, s)
}
