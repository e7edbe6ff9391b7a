package service

import (
	"context"

	"github.com/carson-networks/bill-analyzer/internal/analyzer"
	"github.com/carson-networks/bill-analyzer/internal/catalog"
	"github.com/carson-networks/bill-analyzer/internal/extract"
)

// AnalysisService handles bill analysis business logic. It is stateless apart
// from the immutable dictionary and safe for concurrent use.
type AnalysisService struct {
	parser   *extract.RowParser
	analyzer *analyzer.Analyzer
}

// NewAnalysisService creates a new AnalysisService classifying against the
// given dictionary.
func NewAnalysisService(dictionary catalog.Dictionary) *AnalysisService {
	return &AnalysisService{
		parser:   extract.NewRowParser(),
		analyzer: analyzer.New(dictionary),
	}
}

// AnalyzeTransactions runs the analysis pipeline over already-structured
// transactions, as supplied by external collaborators holding persisted state.
func (s *AnalysisService) AnalyzeTransactions(_ context.Context, transactions []analyzer.Transaction) *analyzer.AnalysisResult {
	return s.analyzer.Analyze(transactions)
}

// AnalyzeRows extracts transactions from raw scraped rows and analyzes them.
// The second return value is the number of rows that did not yield a
// transaction: structural rows, rows without a date, rows without a parseable
// amount.
func (s *AnalysisService) AnalyzeRows(_ context.Context, rows []extract.Row) (*analyzer.AnalysisResult, int) {
	transactions := make([]analyzer.Transaction, 0, len(rows))
	for _, row := range rows {
		if transaction, ok := s.parser.Parse(row); ok {
			transactions = append(transactions, transaction)
		}
	}
	return s.analyzer.Analyze(transactions), len(rows) - len(transactions)
}
