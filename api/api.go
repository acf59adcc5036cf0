package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tradediag/internal/app"
	"tradediag/internal/logger"
)

type ApiHandler struct {
	DiagnosisService app.DiagnosisService
}

func (m ApiHandler) StartApi(port int) error {
	return m.buildRouter().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) buildRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to tradediag"})
	})
	router.POST("/diagnose", m.diagnose)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware tags every request with an id and puts a
// request-scoped logger in the context for the pipeline to pick up.
func logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.New()
	log := logger.New().With("requestID", requestID.String())

	requestCtx := context.WithValue(ctx.Request.Context(), logger.ContextKey, log)
	ctx.Request = ctx.Request.WithContext(requestCtx)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request complete",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
