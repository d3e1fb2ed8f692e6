package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hydepark-apt/amenity-api/config"
	"github.com/hydepark-apt/amenity-api/external/geocoder"
	"github.com/hydepark-apt/amenity-api/geo"
	"github.com/hydepark-apt/amenity-api/inspection"
	"github.com/hydepark-apt/amenity-api/logmodule"
	"github.com/hydepark-apt/amenity-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore
	violations *store.ViolationStore

	// Core services
	settings   *config.Settings
	distance   *geo.DistanceResolver
	aggregator *inspection.Aggregator

	// External services
	geocoder geocoder.Geocoder
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	geoClient geocoder.Geocoder,
	settings *config.Settings) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	violations := store.NewViolationStore(ormDB)

	return &Server{
		mongoStore: mongoStore,
		violations: violations,
		settings:   settings,
		distance:   geo.NewDistanceResolver(settings),
		aggregator: inspection.NewAggregator(violations, settings),
		geocoder:   geoClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(logmodule.RequestID())
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/")
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.POST("/fetch_all_data", s.fetchAllData)
		apiRoute.GET("/fetch_bus_stops", s.fetchBusStops)
		apiRoute.GET("/fetch_bus_routes", s.fetchBusRoutes)
		apiRoute.GET("/fetch_groceries", s.fetchGroceries)
		apiRoute.GET("/fetch_inspections", s.fetchInspections)
		apiRoute.GET("/fetch_crimes", s.fetchCrimes)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both stores
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.violations.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
