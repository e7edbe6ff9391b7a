// Command analyze runs the bill analysis pipeline offline over a JSON export:
// either structured transactions or raw scraped rows (-rows). The report goes
// to stdout; -csv additionally writes the records as CSV.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bill-analyzer/internal/analyzer"
	"github.com/carson-networks/bill-analyzer/internal/catalog"
	"github.com/carson-networks/bill-analyzer/internal/export"
	"github.com/carson-networks/bill-analyzer/internal/extract"
	"github.com/carson-networks/bill-analyzer/internal/logging"
	"github.com/carson-networks/bill-analyzer/internal/service"
)

const utf8BOM = "\uFEFF"

type transactionFile struct {
	Transactions []struct {
		TransactionDate string          `json:"transactionDate"`
		Merchant        string          `json:"merchant"`
		Amount          decimal.Decimal `json:"amount"`
	} `json:"transactions"`
}

type rowFile struct {
	Rows []struct {
		Cells   []string `json:"cells"`
		RowText string   `json:"rowText"`
	} `json:"rows"`
}

func main() {
	inputPath := flag.String("input", "", "JSON file to analyze (required)")
	rowsMode := flag.Bool("rows", false, "treat the input as raw scraped rows instead of transactions")
	csvPath := flag.String("csv", "", "also write the analyzed records as CSV to this path")
	categoriesPath := flag.String("categories", "", "category dictionary JSON; empty uses the bundled default")
	flag.Parse()

	logger := logging.SetupLogging()

	if *inputPath == "" {
		flag.Usage()
		logrus.Fatal("missing -input")
		return
	}

	contents, err := os.ReadFile(*inputPath)
	if err != nil {
		logrus.WithError(err).Fatal("os.ReadFile")
		return
	}

	dictionary := catalog.NewLoader(*categoriesPath, logger).Load()
	svc := service.NewService(dictionary)

	var result *analyzer.AnalysisResult
	skipped := 0
	if *rowsMode {
		var file rowFile
		if err = json.Unmarshal(contents, &file); err != nil {
			logrus.WithError(err).Fatal("json.Unmarshal rows")
			return
		}
		rows := make([]extract.Row, len(file.Rows))
		for i, row := range file.Rows {
			rows[i] = extract.Row{Cells: row.Cells, Text: row.RowText}
		}
		result, skipped = svc.Analysis.AnalyzeRows(context.Background(), rows)
	} else {
		var file transactionFile
		if err = json.Unmarshal(contents, &file); err != nil {
			logrus.WithError(err).Fatal("json.Unmarshal transactions")
			return
		}
		transactions := make([]analyzer.Transaction, len(file.Transactions))
		for i, transaction := range file.Transactions {
			transactions[i] = analyzer.Transaction{
				TransactionDate: transaction.TransactionDate,
				Merchant:        transaction.Merchant,
				Amount:          transaction.Amount,
			}
		}
		result = svc.Analysis.AnalyzeTransactions(context.Background(), transactions)
	}

	fmt.Println(result.Report)

	if *csvPath != "" {
		if err = os.WriteFile(*csvPath, []byte(utf8BOM+export.ToCSV(result.Records)), 0o644); err != nil {
			logrus.WithError(err).Fatal("os.WriteFile csv")
			return
		}
	}

	logrus.WithFields(logrus.Fields{
		"transactions": result.Summary.TotalTransactions,
		"skippedRows":  skipped,
	}).Info("Analysis complete")
}
