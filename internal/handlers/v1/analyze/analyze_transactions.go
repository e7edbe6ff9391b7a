package analyze

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/bill-analyzer/internal/analyzer"
	"github.com/carson-networks/bill-analyzer/internal/logging"
)

// AnalyzeTransactionsBody is the request body for analyzing transactions.
type AnalyzeTransactionsBody struct {
	Transactions []TransactionBody `json:"transactions" required:"true" doc:"Transactions to analyze; may be empty"`
}

// AnalyzeTransactionsInput is the Huma input for analyzing transactions.
type AnalyzeTransactionsInput struct {
	Body AnalyzeTransactionsBody
}

// AnalyzeTransactionsOutput is the Huma output for analyzing transactions.
type AnalyzeTransactionsOutput struct {
	Body AnalysisResponse
}

// transactionAnalyzer is the interface for running the analysis pipeline over
// structured transactions.
type transactionAnalyzer interface {
	AnalyzeTransactions(ctx context.Context, transactions []analyzer.Transaction) *analyzer.AnalysisResult
}

// AnalyzeTransactionsHandler handles POST /v1/analysis.
type AnalyzeTransactionsHandler struct {
	AnalysisService transactionAnalyzer
}

// NewAnalyzeTransactionsHandler creates a new AnalyzeTransactionsHandler.
func NewAnalyzeTransactionsHandler(svc transactionAnalyzer) *AnalyzeTransactionsHandler {
	return &AnalyzeTransactionsHandler{AnalysisService: svc}
}

// Register registers the analyze transactions endpoint with the Huma API.
func (h *AnalyzeTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/analysis",
		Summary:     "Analyze transactions",
		Description: "Classifies and aggregates a batch of transactions into a summary, top expenses, and a report.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

// parseAnalyzeTransactionsInput parses and validates the API input. Amounts
// arrive as decimal strings so no precision is lost in transit.
func parseAnalyzeTransactionsInput(input *AnalyzeTransactionsInput) ([]analyzer.Transaction, error) {
	transactions := make([]analyzer.Transaction, len(input.Body.Transactions))
	for i, body := range input.Body.Transactions {
		amount, err := decimal.NewFromString(body.Amount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		transactions[i] = analyzer.Transaction{
			TransactionDate: body.TransactionDate,
			Merchant:        body.Merchant,
			Amount:          amount,
		}
	}
	return transactions, nil
}

func (h *AnalyzeTransactionsHandler) handle(ctx context.Context, input *AnalyzeTransactionsInput) (*AnalyzeTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	transactions, err := parseAnalyzeTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("analyzeMs")
	}
	result := h.AnalysisService.AnalyzeTransactions(ctx, transactions)
	if stopTimer != nil {
		stopTimer()
	}

	if logData != nil {
		logData.AddData("transactionCount", result.Summary.TotalTransactions)
	}

	return &AnalyzeTransactionsOutput{Body: newAnalysisResponse(result)}, nil
}
