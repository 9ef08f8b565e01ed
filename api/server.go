package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/campus-aid/campus-aid-api/lifecycle"
	"github.com/campus-aid/campus-aid-api/logmodule"
	"github.com/campus-aid/campus-aid-api/store"
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

	// Lifecycle coordinator for the accept/chat/finalize flow
	coordinator *lifecycle.Coordinator

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(mongoStore store.MongoStore, jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		mongoStore:    mongoStore,
		coordinator:   lifecycle.New(mongoStore, mongoStore),
		jwtPrivateKey: jwtKey,
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
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	apiRoute.GET("/categories", s.listHelpCategories)

	helpRoute := apiRoute.Group("/help-requests")
	{
		helpRoute.POST("", s.createHelpRequest)
		helpRoute.GET("", s.listHelpRequests)
		helpRoute.GET("/:requestID", s.getHelpRequest)
		helpRoute.DELETE("/:requestID", s.deleteHelpRequest)
		helpRoute.PATCH("/:requestID/accept", s.acceptHelpRequest)
		helpRoute.PATCH("/:requestID/finalize", s.finalizeHelpRequest)
	}

	chatRoute := apiRoute.Group("/chats")
	{
		chatRoute.GET("", s.listMyChats)
		chatRoute.GET("/:chatID", s.getChat)
		chatRoute.POST("/:chatID/messages", s.sendChatMessage)
	}

	questionRoute := apiRoute.Group("/questions")
	{
		questionRoute.POST("", s.createQuestion)
		questionRoute.GET("", s.listQuestions)
		questionRoute.GET("/:questionID", s.getQuestion)
		questionRoute.POST("/:questionID/answers", s.appendAnswer)
	}

	wsRoute := apiRoute.Group("/ws")
	{
		wsRoute.GET("/help-requests", s.watchHelpRequests)
		wsRoute.GET("/chats", s.watchMyChats)
		wsRoute.GET("/chats/:chatID", s.watchChat)
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
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "CampusAid 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
