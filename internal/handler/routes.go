package handler

import "github.com/gin-gonic/gin"

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Pages    *PageHandler
	Students *StudentHandler
	Reports  *ReportHandler
	Metrics  *MetricsHandler
}

// Register mounts every endpoint on r.
func Register(r gin.IRoutes, h Handlers) {
	r.GET("/", h.Pages.Index)
	r.GET("/students/:classId/:sectionId", h.Students.List)
	r.GET("/report/:studentId", h.Reports.HTML)
	r.GET("/pdf/:registerNo", h.Reports.PDF)
	r.GET("/xlsx/:registerNo", h.Reports.XLSX)

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
}
