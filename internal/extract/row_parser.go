// Package extract turns scraped statement-table rows into transactions.
// Statement markup is inconsistent: metadata rows sit between data rows with
// no reliable row-type marker, and cash-flow direction is implied by a mix of
// annotations, surrounding words, and sign. The parser re-derives everything
// from the cell text and silently skips rows it cannot use.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bill-analyzer/internal/analyzer"
)

// Row is the scraped text content of one table row: the individual cell texts
// in order, plus the row's full concatenated text used for marker matching.
// An empty Text defaults to the joined cells.
type Row struct {
	Cells []string
	Text  string
}

var (
	dateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

	// amountRe matches a two-fraction-digit decimal, optionally annotated with
	// the statement's currency and direction, e.g. 1,280.00/RMB(支出).
	amountRe = regexp.MustCompile(`(-?[\d,]+\.\d{2})(?:/RMB\((支出|存入|收入|退款)\))?`)

	// typeMarkerRe matches transaction-type cells that belong to neither the
	// merchant nor the amount.
	typeMarkerRe = regexp.MustCompile(`消费|跨行消费|退款|转账|缴费`)

	// cardSuffixRe matches bare card-number suffix cells.
	cardSuffixRe = regexp.MustCompile(`^\d{4}$`)
)

// headerMarkers identify structural rows: column headers, totals, separators.
var headerMarkers = []string{"交易日", "商户名称", "合计", "---"}

// RowParser extracts transactions from scraped rows. The zero value is ready
// to use.
type RowParser struct{}

// NewRowParser creates a new RowParser.
func NewRowParser() *RowParser {
	return &RowParser{}
}

// Parse decides whether row represents a transaction and, if so, extracts it.
// Structural rows and rows missing a date or a parseable amount return
// ok=false; Parse never errors, a rejected row simply contributes nothing.
func (p *RowParser) Parse(row Row) (transaction analyzer.Transaction, ok bool) {
	text := row.Text
	if text == "" {
		text = strings.Join(row.Cells, "")
	}
	text = strings.ToLower(text)
	for _, marker := range headerMarkers {
		if strings.Contains(text, marker) {
			return analyzer.Transaction{}, false
		}
	}

	date := ""
	dateIndex, amountIndex := -1, -1
	var amountMatch []string
	for i, cell := range row.Cells {
		if date == "" {
			if m := dateRe.FindString(cell); m != "" {
				date = m
				dateIndex = i
			}
		}
		if amountMatch == nil {
			if m := amountRe.FindStringSubmatch(cell); m != nil {
				amountMatch = m
				amountIndex = i
			}
		}
	}
	if date == "" || amountMatch == nil {
		return analyzer.Transaction{}, false
	}

	magnitude, err := decimal.NewFromString(strings.ReplaceAll(amountMatch[1], ",", ""))
	if err != nil {
		return analyzer.Transaction{}, false
	}

	amount := magnitude.Abs()
	if inferDirection(rowSignals{annotation: amountMatch[2], cells: row.Cells}) == directionExpense {
		amount = amount.Neg()
	}

	return analyzer.Transaction{
		TransactionDate: date,
		Merchant:        merchantFrom(row.Cells, dateIndex, amountIndex),
		Amount:          amount,
	}, true
}

// merchantFrom joins the cells not consumed by other columns: the date and
// amount cells, transaction-type markers, card-number suffixes, and one-rune
// cells are excluded. An empty result falls back to the unknown-merchant
// sentinel.
func merchantFrom(cells []string, dateIndex, amountIndex int) string {
	var parts []string
	for i, cell := range cells {
		if i == dateIndex || i == amountIndex {
			continue
		}
		if typeMarkerRe.MatchString(cell) || cardSuffixRe.MatchString(cell) {
			continue
		}
		if utf8.RuneCountInString(cell) <= 1 {
			continue
		}
		parts = append(parts, cell)
	}

	merchant := strings.TrimSpace(strings.Join(parts, " "))
	if merchant == "" {
		return analyzer.UnknownMerchant
	}
	return merchant
}
