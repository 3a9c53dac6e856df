package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"nutrilog/controllers"
	"nutrilog/metrics"
	"nutrilog/middlewares"
	"nutrilog/repositories"
)

type Dependencies struct {
	Products *controllers.ProductController
	Users    *controllers.UserController
	Eaten    *controllers.EatenProductController

	UserRepo  repositories.UserRepository
	JWTSecret []byte

	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	CORSOrigins []string
}

func SetupRouter(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(
		middlewares.Recovery(d.Logger),
		middlewares.RequestLogger(d.Logger, d.Metrics),
		cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		middlewares.ErrorHandler(d.Logger),
	)

	auth := middlewares.AuthMiddleware(d.JWTSecret, d.UserRepo)

	// Public catalog and norm preview
	r.GET("/products", d.Products.SearchProducts)
	r.POST("/users/daily-rate", d.Users.DailyRatePreview)

	// Protected user routes
	me := r.Group("/users/me")
	me.Use(auth)
	{
		me.POST("/daily-rate", d.Users.DailyRateCommit)
	}

	eaten := r.Group("/eaten-products")
	eaten.Use(auth)
	{
		eaten.POST("", d.Eaten.AddProduct)
		eaten.GET("/:date", d.Eaten.ListProducts)
		eaten.GET("/:date/summary", d.Eaten.DaySummary)
		eaten.DELETE("/:id", d.Eaten.RemoveProduct)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	return r
}
