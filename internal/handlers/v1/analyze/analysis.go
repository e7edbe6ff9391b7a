package analyze

import (
	"github.com/carson-networks/bill-analyzer/internal/analyzer"
)

// TransactionBody is one transaction in an analysis request.
type TransactionBody struct {
	TransactionDate string `json:"transactionDate" required:"true" doc:"Transaction date, YYYY-MM-DD"`
	Merchant        string `json:"merchant" doc:"Merchant text as scraped; may be empty"`
	Amount          string `json:"amount" required:"true" doc:"Signed decimal amount; negative means money leaving the account"`
}

// RecordResponse is one enriched transaction in an analysis response.
// It is used only for responses, not for request bodies.
type RecordResponse struct {
	TransactionDate string  `json:"transactionDate" doc:"Transaction date, YYYY-MM-DD"`
	Merchant        string  `json:"merchant" doc:"Merchant text, 未知商户 when unknown"`
	Amount          string  `json:"amount" doc:"Signed decimal amount with two decimal places"`
	Category        string  `json:"category" doc:"Assigned spending category"`
	Flow            string  `json:"flow" doc:"expense or income"`
	IncomeType      *string `json:"incomeType" doc:"repayment or refund for income records, null for expenses"`
}

// SummaryResponse mirrors the aggregate counters of one analysis run.
type SummaryResponse struct {
	TotalTransactions int               `json:"totalTransactions" doc:"Number of analyzed transactions"`
	TotalExpense      string            `json:"totalExpense" doc:"Sum of absolute expense amounts"`
	TotalIncome       string            `json:"totalIncome" doc:"Sum of income amounts, refunds and repayments"`
	RepaymentAmount   string            `json:"repaymentAmount" doc:"Income subtotal matched by repayment keywords"`
	RefundAmount      string            `json:"refundAmount" doc:"Income subtotal not matched by repayment keywords"`
	NetExpense        string            `json:"netExpense" doc:"Total expense minus refunds"`
	CategorySummary   map[string]string `json:"categorySummary" doc:"Expense total per category; categories without expenses are absent"`
}

// AnalysisResponse is the complete result of one analysis run.
type AnalysisResponse struct {
	Records     []RecordResponse `json:"records" doc:"Enriched transactions in input order"`
	Summary     SummaryResponse  `json:"summary" doc:"Aggregate counters"`
	TopExpenses []RecordResponse `json:"topExpenses" doc:"Largest expenses, at most 5, by descending amount"`
	Report      string           `json:"report" doc:"Formatted multi-line text report"`
}

func newRecordResponse(record analyzer.EnrichedTransaction) RecordResponse {
	response := RecordResponse{
		TransactionDate: record.TransactionDate,
		Merchant:        record.Merchant,
		Amount:          record.Amount.StringFixed(2),
		Category:        record.Category,
		Flow:            string(record.Flow),
	}
	if record.IncomeType != "" {
		incomeType := string(record.IncomeType)
		response.IncomeType = &incomeType
	}
	return response
}

func newAnalysisResponse(result *analyzer.AnalysisResult) AnalysisResponse {
	records := make([]RecordResponse, len(result.Records))
	for i, record := range result.Records {
		records[i] = newRecordResponse(record)
	}

	topExpenses := make([]RecordResponse, len(result.TopExpenses))
	for i, record := range result.TopExpenses {
		topExpenses[i] = newRecordResponse(record)
	}

	categorySummary := make(map[string]string, len(result.Summary.CategorySummary))
	for category, amount := range result.Summary.CategorySummary {
		categorySummary[category] = amount.StringFixed(2)
	}

	return AnalysisResponse{
		Records: records,
		Summary: SummaryResponse{
			TotalTransactions: result.Summary.TotalTransactions,
			TotalExpense:      result.Summary.TotalExpense.StringFixed(2),
			TotalIncome:       result.Summary.TotalIncome.StringFixed(2),
			RepaymentAmount:   result.Summary.RepaymentAmount.StringFixed(2),
			RefundAmount:      result.Summary.RefundAmount.StringFixed(2),
			NetExpense:        result.Summary.NetExpense.StringFixed(2),
			CategorySummary:   categorySummary,
		},
		TopExpenses: topExpenses,
		Report:      result.Report,
	}
}
