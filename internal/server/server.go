// Package server exposes the encoder and decoder over HTTP.
package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/rankcode"
	"github.com/chronos-tachyon/rankcode/internal/config"
	"github.com/chronos-tachyon/rankcode/internal/logger"
	"github.com/chronos-tachyon/rankcode/internal/report"
)

const octetStream = "application/octet-stream"

type Handler struct {
	cfg config.Config
	log logger.Logger
}

func NewHandler(cfg config.Config, log logger.Logger) *Handler {
	return &Handler{cfg: cfg, log: log}
}

// Register mounts the handler's routes on r.
func Register(r gin.IRouter, h *Handler) {
	r.GET("/healthz", h.Health)
	v1 := r.Group("/v1")
	v1.POST("/encode", h.Encode)
	v1.POST("/decode", h.Decode)
	v1.POST("/stat", h.Stat)
	v1.POST("/rank", h.Rank)
}

// New returns a gin engine with every route registered.
func New(cfg config.Config, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	Register(r, NewHandler(cfg, log))
	return r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Encode(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	container, err := rankcode.EncodeContainer(body)
	if err != nil {
		h.fail(c, "encode", err)
		return
	}
	raw, err := container.MarshalBinary()
	if err != nil {
		h.fail(c, "encode", err)
		return
	}
	c.Header("X-Rankcode-Padding", strconv.Itoa(int(container.Padding)))
	c.Header("X-Rankcode-Tree-Size", strconv.Itoa(len(container.Tree)))
	c.Data(http.StatusOK, octetStream, raw)
}

func (h *Handler) Decode(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	out, err := rankcode.Decode(body)
	if err != nil {
		h.fail(c, "decode", err)
		return
	}
	c.Data(http.StatusOK, octetStream, out)
}

func (h *Handler) Stat(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	container, err := rankcode.EncodeContainer(body)
	if err != nil {
		h.fail(c, "stat", err)
		return
	}
	r, err := report.Build(body, container, h.cfg.ZstdLevel)
	if err != nil {
		h.fail(c, "stat", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) Rank(c *gin.Context) {
	body, ok := h.readBody(c)
	if !ok {
		return
	}
	order, err := rankcode.Rank(body)
	if err != nil {
		h.fail(c, "rank", err)
		return
	}
	symbols := make([]int, len(order))
	for index, symbol := range order {
		symbols[index] = int(symbol)
	}
	c.JSON(http.StatusOK, gin.H{"order": symbols})
}

func (h *Handler) readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return nil, false
		}
		h.log.Errorf("read body: %v", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Errorf("%s: %v", op, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, rankcode.ErrEmptyInput),
		errors.Is(err, rankcode.ErrInsufficientSymbols):
		return http.StatusUnprocessableEntity
	case errors.Is(err, rankcode.ErrMalformedContainer),
		errors.Is(err, rankcode.ErrMalformedTree),
		errors.Is(err, rankcode.ErrTruncatedBitstream):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
