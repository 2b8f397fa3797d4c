package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"time"

	"portfoliobook/internal/db/models/postgres/public/model"
	"portfoliobook/internal/logger"
	"portfoliobook/internal/repository"
	"portfoliobook/internal/service"
	"portfoliobook/pkg/apperr"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                     *sql.DB
	IntakeService          service.IntakeService
	MailService            service.MailService
	ConsultationRepository repository.ConsultationRepository
	RequestLogRepository   repository.RequestLogRepository
	JwtDecodeToken         string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(attachLoggerMiddleware)
	if m.Db != nil && m.RequestLogRepository != nil {
		router.Use(m.logRequestMiddleware)
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"success": true, "message": "portfolio booking api"})
	})

	router.POST("/consult", m.scheduleConsultation)
	router.POST("/mail/send", m.sendMail)

	admin := router.Group("/consult", m.adminAuthMiddleware)
	admin.GET("", m.getAllConsultations)
	admin.GET("/:id", m.getConsultationByID)
	admin.PATCH("/:id/status", m.updateConsultationStatus)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson maps a coded error to its HTTP status and the
// {success:false, message} envelope. Uncoded errors become a generic
// 500 so internals never leak to callers.
func returnErrorJson(err error, c *gin.Context) {
	log := logger.FromContext(c.Request.Context())
	if apperr.HTTPStatus(err) >= 500 {
		log.Errorf("request failed: %v", err)
	} else {
		log.Infof("request rejected: %v", err)
	}
	c.AbortWithStatusJSON(apperr.HTTPStatus(err), gin.H{
		"success": false,
		"message": apperr.MessageOf(err),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Infof("request rejected: %v", err)
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"message": apperr.MessageOf(err),
	})
}

func attachLoggerMiddleware(c *gin.Context) {
	ctx := logger.WithContext(c.Request.Context(), zap.S())
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddleware persists one audit row per call: request line
// and body up front, status/duration/response after. Best-effort - an
// audit failure never touches the response.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := logger.FromContext(ctx.Request.Context())

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Warnf("failed to read request body for audit: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.RequestLogRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Warnf("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		if err := m.RequestLogRepository.Update(m.Db, *req); err != nil {
			log.Warnf("failed to finalize api request audit: %v", err)
		}
	}
}
