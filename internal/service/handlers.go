package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pavitra-programmers/Resume-Parser/internal/export"
	"github.com/Pavitra-programmers/Resume-Parser/internal/model"
	"github.com/Pavitra-programmers/Resume-Parser/internal/store"
)

var pdfMagic = []byte("%PDF-")

// Handler wires the parser service into gin routes.
type Handler struct {
	parser        *ParserService
	exporter      *export.Service
	maxUploadSize int64
	logger        *slog.Logger
}

func NewHandler(parser *ParserService, exporter *export.Service, maxUploadSize int64, logger *slog.Logger) *Handler {
	if maxUploadSize <= 0 {
		maxUploadSize = 5 << 20
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{parser: parser, exporter: exporter, maxUploadSize: maxUploadSize, logger: logger}
}

// Register mounts all routes on the engine.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.POST("/upload", h.Upload)
	router.GET("/candidate/:id", h.GetCandidate)
	router.PUT("/candidate/:id", h.UpdateCandidate)
	router.GET("/candidates", h.ListCandidates)
	router.GET("/candidates/export", h.ExportCandidates)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Upload accepts a multipart PDF, runs the parsing pipeline and returns the
// stored record. Extraction failures degrade to a Fallback record with 200;
// only persistence failures surface as 502.
func (h *Handler) Upload(c *gin.Context) {
	header, err := resumeFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if header.Size > h.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file exceeds %d byte limit", h.maxUploadSize),
		})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	if int64(len(data)) > h.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file exceeds %d byte limit", h.maxUploadSize),
		})
		return
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file is not a PDF"})
		return
	}

	rec, err := h.parser.ParseAndStore(c.Request.Context(), data)
	if err != nil {
		h.logger.Error("upload.persist.failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save candidate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"candidateId":   rec.ID,
		"parsingMethod": rec.ParsingMethod,
		"data":          rec,
	})
}

// resumeFile accepts either form field name used by known clients.
func resumeFile(c *gin.Context) (*multipart.FileHeader, error) {
	if header, err := c.FormFile("resume"); err == nil {
		return header, nil
	}
	if header, err := c.FormFile("file"); err == nil {
		return header, nil
	}
	return nil, errors.New("multipart field \"resume\" is required")
}

func (h *Handler) GetCandidate(c *gin.Context) {
	rec, err := h.parser.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
			return
		}
		h.logger.Error("candidate.get.failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to read candidate"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateCandidate applies a partial update: only non-empty fields of the
// request body overwrite the stored record.
func (h *Handler) UpdateCandidate(c *gin.Context) {
	var patch model.CandidateRecord
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.parser.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
			return
		}
		h.logger.Error("candidate.update.failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update candidate"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListCandidates returns a page of records, or search results when the q
// query parameter is present and a search index is configured.
func (h *Handler) ListCandidates(c *gin.Context) {
	ctx := c.Request.Context()

	if query := c.Query("q"); query != "" {
		limit, _ := strconv.Atoi(c.DefaultQuery("pageSize", "25"))
		recs, err := h.parser.Search(ctx, query, limit)
		if err != nil {
			h.logger.Error("candidates.search.failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "search failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"candidates": recs})
		return
	}

	pageSize, _ := strconv.ParseInt(c.DefaultQuery("pageSize", "100"), 10, 32)
	recs, next, err := h.parser.List(ctx, int32(pageSize), c.Query("pageToken"))
	if err != nil {
		h.logger.Error("candidates.list.failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list candidates"})
		return
	}

	resp := gin.H{"candidates": recs}
	if next != "" {
		resp["nextPageToken"] = next
	}
	c.JSON(http.StatusOK, resp)
}

// ExportCandidates streams all stored candidates as an XLSX workbook.
func (h *Handler) ExportCandidates(c *gin.Context) {
	data, err := h.exporter.ExportCandidatesXLSX(c.Request.Context())
	if err != nil {
		h.logger.Error("candidates.export.failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "export failed"})
		return
	}

	filename := fmt.Sprintf("candidates-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
