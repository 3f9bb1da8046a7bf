package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with every route of the portal.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger, h.observe)

	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	api := r.Group("/api")

	api.POST("/admin/login", h.login)
	api.POST("/admin/logout", h.logout)
	api.GET("/auth/user", h.authUser)

	api.GET("/schemes", h.listSchemes)
	api.GET("/schemes/:id", h.getScheme)
	api.GET("/news", h.listNews)
	api.GET("/news/:id", h.getNews)
	api.GET("/documents", h.listDocuments)
	api.GET("/documents/:id", h.getDocument)
	api.GET("/settings", h.listSettings)
	api.GET("/settings/:key", h.getSettingByKey)
	api.GET("/branches", h.listBranches)
	api.GET("/branches/:id", h.getBranch)

	admin := api.Group("", h.requireAdmin)

	admin.POST("/schemes", h.createScheme)
	admin.PUT("/schemes/:id", h.updateScheme)
	admin.DELETE("/schemes/:id", h.deleteScheme)

	admin.POST("/news", h.createNews)
	admin.PUT("/news/:id", h.updateNews)
	admin.DELETE("/news/:id", h.deleteNews)

	admin.POST("/documents", h.createDocument)
	admin.PUT("/documents/:id", h.updateDocument)
	admin.DELETE("/documents/:id", h.deleteDocument)

	admin.POST("/settings", h.upsertSetting)
	admin.PUT("/settings/:id", h.updateSetting)

	admin.POST("/branches", h.createBranch)
	admin.PUT("/branches/:id", h.updateBranch)
	admin.DELETE("/branches/:id", h.deleteBranch)

	admin.GET("/users", h.listUsers)
	admin.POST("/users", h.createUser)
	admin.PUT("/users/:id", h.updateUser)
	admin.DELETE("/users/:id", h.deleteUser)

	r.NoRoute(func(c *gin.Context) {
		message(c, http.StatusNotFound, "Not found")
	})

	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
