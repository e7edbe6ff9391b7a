package analyze

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bill-analyzer/internal/export"
	"github.com/carson-networks/bill-analyzer/internal/logging"
)

// utf8BOM keeps spreadsheet applications from misreading the Chinese headers.
const utf8BOM = "\uFEFF"

// ExportCSVInput is the Huma input for exporting analyzed transactions as CSV.
type ExportCSVInput struct {
	Body AnalyzeTransactionsBody
}

// ExportCSVOutput is the raw CSV response.
type ExportCSVOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// ExportCSVHandler handles POST /v1/analysis/csv.
type ExportCSVHandler struct {
	AnalysisService transactionAnalyzer
}

// NewExportCSVHandler creates a new ExportCSVHandler.
func NewExportCSVHandler(svc transactionAnalyzer) *ExportCSVHandler {
	return &ExportCSVHandler{AnalysisService: svc}
}

// Register registers the CSV export endpoint with the Huma API.
func (h *ExportCSVHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-analysis-csv",
		Method:      http.MethodPost,
		Path:        "/v1/analysis/csv",
		Summary:     "Export analysis as CSV",
		Description: "Classifies the given transactions and returns them as a CSV document.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

func (h *ExportCSVHandler) handle(ctx context.Context, input *ExportCSVInput) (*ExportCSVOutput, error) {
	logData := logging.GetLogData(ctx)

	transactions, err := parseAnalyzeTransactionsInput(&AnalyzeTransactionsInput{Body: input.Body})
	if err != nil {
		return nil, err
	}

	result := h.AnalysisService.AnalyzeTransactions(ctx, transactions)

	if logData != nil {
		logData.AddData("transactionCount", result.Summary.TotalTransactions)
	}

	return &ExportCSVOutput{
		ContentType: "text/csv; charset=utf-8",
		Body:        []byte(utf8BOM + export.ToCSV(result.Records)),
	}, nil
}
