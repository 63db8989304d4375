package dto

import summarydomain "meetnotes-backend/internal/summary/domain"

type SummarizeRequest struct {
	Transcript string `json:"transcript"`
	Prompt     string `json:"prompt"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type SaveSummaryRequest struct {
	Name       string `json:"name"`
	Transcript string `json:"transcript" binding:"required"`
	Prompt     string `json:"prompt" binding:"required"`
	Summary    string `json:"summary" binding:"required"`
}

type ListSummariesResponse struct {
	Summaries []*summarydomain.Summary `json:"summaries"`
	Total     int64                    `json:"total"`
	Limit     int                      `json:"limit"`
	Offset    int                      `json:"offset"`
}

type ShareRequest struct {
	Summary    string   `json:"summary" binding:"required"`
	Recipients []string `json:"recipients" binding:"required,min=1,dive,email"`
}

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

type SearchResponse struct {
	Summaries []*summarydomain.Summary `json:"summaries"`
	Total     int                      `json:"total"`
}
