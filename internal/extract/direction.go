package extract

import "strings"

type direction int

const (
	directionUnknown direction = iota
	directionExpense
	directionIncome
)

// rowSignals carries the textual cues a row offers about cash-flow direction.
type rowSignals struct {
	annotation string
	cells      []string
}

var (
	expenseKeywords = []string{"支出", "消费", "跨行消费", "缴费"}
	incomeKeywords  = []string{"存入", "收入", "退款"}

	annotationDirections = map[string]direction{
		"支出": directionExpense,
		"存入": directionIncome,
		"收入": directionIncome,
		"退款": directionIncome,
	}
)

// directionRules are evaluated in order and the first verdict wins. Statement
// rows carry competing direction signals, so this precedence is the contract:
// an annotation attached to the amount is authoritative, loose keywords in
// other cells come second, and an unlabeled amount is assumed to be a charge.
var directionRules = []struct {
	name  string
	infer func(signals rowSignals) direction
}{
	{name: "amount-annotation", infer: annotationDirection},
	{name: "cell-keyword", infer: keywordDirection},
	{name: "pessimistic-default", infer: defaultDirection},
}

func inferDirection(signals rowSignals) direction {
	for _, rule := range directionRules {
		if verdict := rule.infer(signals); verdict != directionUnknown {
			return verdict
		}
	}
	return directionExpense
}

func annotationDirection(signals rowSignals) direction {
	return annotationDirections[signals.annotation]
}

func keywordDirection(signals rowSignals) direction {
	for _, cell := range signals.cells {
		normalized := strings.ToLower(cell)
		for _, keyword := range expenseKeywords {
			if strings.Contains(normalized, keyword) {
				return directionExpense
			}
		}
		for _, keyword := range incomeKeywords {
			if strings.Contains(normalized, keyword) {
				return directionIncome
			}
		}
	}
	return directionUnknown
}

// defaultDirection treats unlabeled amounts as charges. Negative literals land
// here too and keep their sign, which is the same expense verdict.
func defaultDirection(rowSignals) direction {
	return directionExpense
}
