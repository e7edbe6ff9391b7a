package analyze

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bill-analyzer/internal/analyzer"
	"github.com/carson-networks/bill-analyzer/internal/extract"
	"github.com/carson-networks/bill-analyzer/internal/logging"
)

// RowBody is one raw scraped table row in an analysis request.
type RowBody struct {
	Cells   []string `json:"cells" required:"true" doc:"Text content of the row's cells, in order"`
	RowText string   `json:"rowText,omitempty" doc:"Full row text; defaults to the concatenated cells"`
}

// AnalyzeRowsBody is the request body for analyzing raw scraped rows.
type AnalyzeRowsBody struct {
	Rows []RowBody `json:"rows" required:"true" doc:"Scraped table rows; structural rows are skipped"`
}

// AnalyzeRowsInput is the Huma input for analyzing raw scraped rows.
type AnalyzeRowsInput struct {
	Body AnalyzeRowsBody
}

// AnalyzeRowsResponseBody is the analysis result plus extraction counters.
type AnalyzeRowsResponseBody struct {
	AnalysisResponse
	SkippedRows int `json:"skippedRows" doc:"Rows that did not yield a transaction"`
}

// AnalyzeRowsOutput is the Huma output for analyzing raw scraped rows.
type AnalyzeRowsOutput struct {
	Body AnalyzeRowsResponseBody
}

// rowAnalyzer is the interface for extracting and analyzing raw rows.
type rowAnalyzer interface {
	AnalyzeRows(ctx context.Context, rows []extract.Row) (*analyzer.AnalysisResult, int)
}

// AnalyzeRowsHandler handles POST /v1/analysis/rows.
type AnalyzeRowsHandler struct {
	AnalysisService rowAnalyzer
}

// NewAnalyzeRowsHandler creates a new AnalyzeRowsHandler.
func NewAnalyzeRowsHandler(svc rowAnalyzer) *AnalyzeRowsHandler {
	return &AnalyzeRowsHandler{AnalysisService: svc}
}

// Register registers the analyze rows endpoint with the Huma API.
func (h *AnalyzeRowsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-rows",
		Method:      http.MethodPost,
		Path:        "/v1/analysis/rows",
		Summary:     "Analyze scraped rows",
		Description: "Extracts transactions from raw scraped table rows, then classifies and aggregates them.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

func (h *AnalyzeRowsHandler) handle(ctx context.Context, input *AnalyzeRowsInput) (*AnalyzeRowsOutput, error) {
	logData := logging.GetLogData(ctx)

	rows := make([]extract.Row, len(input.Body.Rows))
	for i, body := range input.Body.Rows {
		rows[i] = extract.Row{Cells: body.Cells, Text: body.RowText}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("analyzeRowsMs")
	}
	result, skipped := h.AnalysisService.AnalyzeRows(ctx, rows)
	if stopTimer != nil {
		stopTimer()
	}

	if logData != nil {
		logData.AddData("rowCount", len(rows))
		logData.AddData("skippedRows", skipped)
	}

	return &AnalyzeRowsOutput{Body: AnalyzeRowsResponseBody{
		AnalysisResponse: newAnalysisResponse(result),
		SkippedRows:      skipped,
	}}, nil
}
