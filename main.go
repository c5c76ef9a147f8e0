package main

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Zachkp/scroll-portfolio/internal/config"
	"github.com/Zachkp/scroll-portfolio/internal/metrics"
	"github.com/Zachkp/scroll-portfolio/internal/section"
	"github.com/Zachkp/scroll-portfolio/internal/theme"
	"github.com/Zachkp/scroll-portfolio/internal/tracker"
)

type app struct {
	cfg       config.Config
	visitors  *visitors
	analytics *analytics
	auth      *adminAuth
	metrics   *metrics.Metrics
	registry  *prometheus.Registry
	upgrader  websocket.Upgrader
}

func newApp(cfg config.Config, an *analytics) (*app, error) {
	reg := prometheus.NewRegistry()
	m := metrics.MustNew(reg)

	v, err := newVisitors(cfg.SessionCacheSize, cfg.DefaultSection, m)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		visitors:  v,
		analytics: an,
		auth:      newAdminAuth(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminDefaulted),
		metrics:   m,
		registry:  reg,
		upgrader:  newUpgrader(cfg.CORSOrigins),
	}, nil
}

func (a *app) router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(a.corsConfig()))
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		start := theme.For(a.cfg.DefaultSection)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"navItems":       navItems(),
			"initialSection": a.cfg.DefaultSection,
			"themeCSS":       template.CSS(theme.CSSVars(start)),
			"theme":          start,
			"aboutMeContent": AboutMe,
			"jobs":           Jobs,
			"education":      Education,
			"skills":         Skills,
			"projects":       Projects,
			"layers":         tracker.DefaultLayers,
		})
	})

	r.GET("/theme/:file", func(c *gin.Context) {
		name := strings.TrimSuffix(c.Param("file"), ".css")
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(theme.CSSVars(theme.Resolve(name))))
	})

	api := r.Group("/api")

	api.GET("/sections", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"sections": section.Order,
			"default":  a.cfg.DefaultSection,
			"layers":   tracker.DefaultLayers,
		})
	})

	// Unknown sections get the home theme rather than a 404.
	api.GET("/theme/:section", func(c *gin.Context) {
		c.JSON(http.StatusOK, theme.Resolve(c.Param("section")))
	})

	api.POST("/viewport", a.handleViewport)
	r.GET("/ws/viewport", a.handleViewportStream)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	setupAdminRoutes(r, a.analytics, a.auth)
	return r
}

func (a *app) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if len(a.cfg.CORSOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = a.cfg.CORSOrigins
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type"}
	cfg.AllowCredentials = len(a.cfg.CORSOrigins) > 0
	return cfg
}

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	an, err := newAnalytics(db, cfg.RetentionMonths)
	if err != nil {
		log.Fatal("Failed to initialize analytics: ", err)
	}
	// Clean up old view data for privacy compliance (run in background)
	go func() {
		if _, err := an.cleanup(context.Background()); err != nil {
			log.Printf("Error cleaning up old section views: %v", err)
		}
	}()

	a, err := newApp(cfg, an)
	if err != nil {
		log.Fatal("Failed to initialize server: ", err)
	}

	log.Printf("Tracking sections %v, starting on %s", section.Order, cfg.DefaultSection)
	if err := a.router().Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
