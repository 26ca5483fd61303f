package api

import (
	stdhttp "net/http"

	intconfig "taxifare/internal/config"
	"taxifare/internal/domain/models"
	h "taxifare/internal/http/handlers"
	"taxifare/internal/http/middleware"
	"taxifare/internal/utils"
	"taxifare/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the report routes over one loaded table.
func NewRouter(env intconfig.Env, table *models.TripTable) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))
	r.SetHTMLTemplate(tmpl)

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	hs := h.New(table)
	r.GET("/", hs.Index)

	api := r.Group("/api")
	{
		api.GET("/health", hs.Health)
		api.GET("/estimate", hs.GetEstimate)
		api.GET("/trips", hs.GetTrips)
		api.GET("/scatter", hs.GetScatter)
		api.GET("/chart.png", hs.GetChartPNG)
		api.GET("/report.pdf", hs.GetFareReportPDF)
	}

	return r, nil
}
