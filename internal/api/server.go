package api

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ainews-journalist/internal/model"
	"ainews-journalist/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler serves the latest generated document.
type Handler struct {
	docs storage.Reader
}

func NewHandler(docs storage.Reader) *Handler {
	return &Handler{docs: docs}
}

// NewServer creates the gin engine with all routes configured.
func NewServer(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(p gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s\" %d %s\n",
				p.ClientIP, p.TimeStamp.Format(time.RFC3339), p.Method, p.Path, p.StatusCode, p.Latency)
		},
	}))
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", h.Health)
	r.GET("/api/news", h.GetNews)
	r.GET("/"+model.DefaultFileName, h.GetDocumentFile)
	return r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetNews returns the document, optionally limited with ?limit=N.
func (h *Handler) GetNews(c *gin.Context) {
	doc, ok := h.latest(c)
	if !ok {
		return
	}
	var q struct {
		Limit int `form:"limit" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}
	if q.Limit > 0 {
		items := doc.Preview(q.Limit)
		doc = model.NewsDocument{UpdateTime: doc.UpdateTime, TotalNews: len(items), Source: doc.Source, News: items}
	}
	c.JSON(http.StatusOK, doc)
}

// GetDocumentFile serves the document byte-for-byte as it is written to disk.
func (h *Handler) GetDocumentFile(c *gin.Context) {
	doc, ok := h.latest(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := model.Encode(&buf, doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", buf.Bytes())
}

func (h *Handler) latest(c *gin.Context) (model.NewsDocument, bool) {
	doc, err := h.docs.LatestDocument(c.Request.Context())
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no document generated yet"})
		return doc, false
	}
	if err != nil {
		slog.Error("api: load document failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load document failed"})
		return doc, false
	}
	return doc, true
}
