package analysis

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-analyzer/internal/extract"
	"resume-analyzer/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.create)
	rg.POST("/summaries", h.quickSummary)
	rg.POST("/rewrites", h.rewriteSingle)
}

type analysisResponse struct {
	AnalysisID          string       `json:"analysisId"`
	FileInfo            extract.Info `json:"fileInfo"`
	Result              *Result      `json:"result"`
	OverallScore        float64      `json:"overallScore"`
	Grade               string       `json:"grade"`
	ImprovementPriority []string     `json:"improvementPriority"`
	Views               Views        `json:"views"`
}

// readUpload pulls the multipart file into memory. A false return means the
// error response was already written.
func readUpload(c *gin.Context) (string, []byte, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return "", nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return "", nil, false
	}
	return fileHeader.Filename, data, true
}

func respondPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, "unsupported_format", "supported formats are pdf, docx, doc, and txt", nil)
	case errors.Is(err, ErrNoText):
		respond.Error(c, http.StatusUnprocessableEntity, "no_readable_text", "could not extract text from the file; please ensure it contains readable text", nil)
	case errors.Is(err, extract.ErrExtractionFailed):
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "the file could not be parsed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze document", nil)
	}
}

func (h *Handler) create(c *gin.Context) {
	fileName, data, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), fileName, data)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	analysisID := uuid.NewString()
	c.Set("analysisId", analysisID)

	respond.OK(c, analysisResponse{
		AnalysisID:          analysisID,
		FileInfo:            extract.FileInfo(data, fileName),
		Result:              result,
		OverallScore:        result.Scores.Overall(),
		Grade:               result.Scores.Grade(),
		ImprovementPriority: ImprovementPriority(result.Scores),
		Views:               RenderViews(result),
	})
}

func (h *Handler) quickSummary(c *gin.Context) {
	fileName, data, ok := readUpload(c)
	if !ok {
		return
	}

	summary, err := h.Svc.QuickSummary(c.Request.Context(), fileName, data)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	respond.OK(c, gin.H{"summary": summary})
}

type rewriteRequest struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

func (h *Handler) rewriteSingle(c *gin.Context) {
	var req rewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	respond.OK(c, h.Svc.Rewriter.RewriteSingle(c.Request.Context(), req.Text, strings.TrimSpace(req.Context)))
}
