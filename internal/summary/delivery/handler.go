package delivery

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	summarydto "meetnotes-backend/internal/summary/dto"
	"meetnotes-backend/internal/summary/usecase"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps the transcript file size accepted by the upload route
const maxUploadSize = 10 << 20 // 10 MiB

// SummaryHandler handles summary-related HTTP requests
type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
	}
}

// Summarize generates an AI summary of a transcript
// POST /api/summarize
func (h *SummaryHandler) Summarize(c *gin.Context) {
	userID := c.GetString("userID")

	var req summarydto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Transcript) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcript is required"})
		return
	}

	summaryText, err := h.summaryUsecase.Summarize(c.Request.Context(), userID, req.Transcript, req.Prompt)
	if err != nil {
		log.Printf("[Summary] Failed to summarize transcript: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, summarydto.SummarizeResponse{Summary: summaryText})
}

// SaveSummary persists a named summary for the caller
// POST /api/save-summary
func (h *SummaryHandler) SaveSummary(c *gin.Context) {
	userID := c.GetString("userID")

	var req summarydto.SaveSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.summaryUsecase.Save(userID, req.Name, req.Transcript, req.Prompt, req.Summary); err != nil {
		log.Printf("[Summary] Failed to save summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Summary saved."})
}

// ListSummaries returns one page of the caller's summaries, newest first
// GET /api/summaries?limit=50&offset=0
func (h *SummaryHandler) ListSummaries(c *gin.Context) {
	userID := c.GetString("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	summaries, total, err := h.summaryUsecase.List(userID, limit, offset)
	if err != nil {
		log.Printf("[Summary] Failed to list summaries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list summaries"})
		return
	}

	c.JSON(http.StatusOK, summarydto.ListSummariesResponse{
		Summaries: summaries,
		Total:     total,
		Limit:     len(summaries),
		Offset:    offset,
	})
}

// DeleteSummary removes one of the caller's summaries. Ids owned by another
// user, or unknown ids, report success without revealing anything.
// DELETE /api/summaries/:id
func (h *SummaryHandler) DeleteSummary(c *gin.Context) {
	userID := c.GetString("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid summary ID"})
		return
	}

	if err := h.summaryUsecase.Delete(userID, uint(id)); err != nil {
		log.Printf("[Summary] Failed to delete summary %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Share emails a summary to a list of recipients with a .docx attachment
// POST /api/share
func (h *SummaryHandler) Share(c *gin.Context) {
	var req summarydto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.summaryUsecase.Share(c.Request.Context(), req.Summary, req.Recipients); err != nil {
		log.Printf("[Summary] Failed to share summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to share summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Search finds the caller's summaries semantically closest to a query
// POST /api/summaries/search
func (h *SummaryHandler) Search(c *gin.Context) {
	userID := c.GetString("userID")

	var req summarydto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries, total, err := h.summaryUsecase.Search(c.Request.Context(), userID, req.Query, req.Limit)
	if err != nil {
		if errors.Is(err, usecase.ErrSearchUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "semantic search is not available"})
			return
		}
		log.Printf("[Summary] Search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, summarydto.SearchResponse{Summaries: summaries, Total: total})
}

// Upload reads an uploaded transcript file and returns its text
// POST /api/upload
func (h *SummaryHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is too large"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open file"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		log.Printf("[Summary] Failed to read uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to read file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": string(content)})
}

// GetPrompts returns the fixed preset prompts
// GET /api/prompts
func (h *SummaryHandler) GetPrompts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prompts": usecase.PresetPrompts()})
}
