package tools

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"smart-travel-planner/internal/agent"
)

// ErrUnparseableAmount is returned when the argument has no amount to convert.
var ErrUnparseableAmount = errors.New("no amount to convert")

// "$2,000 USD to Costa Rica", "150 to JPY", "$150 per day in Tokyo"
var conversionRe = regexp.MustCompile(`(?i)\$?\s*(\d[\d,]*(?:\.\d+)?)\b.*?\b(?:to|in|into)\s+(.+)$`)

// CurrencyTool converts US dollars into the local currency of a destination
// using fixed reference rates.
type CurrencyTool struct{}

// NewCurrencyTool creates the currency tool.
func NewCurrencyTool() agent.EnvironmentTool {
	return &CurrencyTool{}
}

func (t *CurrencyTool) Name() string {
	return CurrencyToolName
}

func (t *CurrencyTool) Description() string {
	return "Convert US dollars to a destination's currency. Argument: \"<amount> USD to <destination or currency code>\"."
}

func (t *CurrencyTool) Invoke(ctx context.Context, argument string) (string, error) {
	m := conversionRe.FindStringSubmatch(strings.TrimSpace(argument))
	if m == nil {
		return "", fmt.Errorf("%w in %q", ErrUnparseableAmount, argument)
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return "", fmt.Errorf("%w in %q", ErrUnparseableAmount, argument)
	}
	target := strings.TrimSpace(strings.TrimRight(m[2], ".!?"))

	cur, ok := lookupCurrency(target)
	if !ok {
		return fmt.Sprintf("No reference rate for %s; budget %s USD and check the local exchange rate on arrival.", target, formatAmount(amount)), nil
	}
	return fmt.Sprintf("%s USD ≈ %s %s (%s, reference rate %s per USD)",
		formatAmount(amount), formatAmount(amount*cur.perUSD), cur.code, cur.name, strconv.FormatFloat(cur.perUSD, 'f', -1, 64)), nil
}

func lookupCurrency(target string) (currency, bool) {
	if cur, ok := currencyTable[strings.ToLower(target)]; ok {
		return cur, true
	}
	for _, cur := range currencyTable {
		if strings.EqualFold(cur.code, target) {
			return cur, true
		}
	}
	return currency{}, false
}

// formatAmount renders n with thousands separators and at most two decimals.
func formatAmount(n float64) string {
	s := strconv.FormatFloat(n, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String() + frac
}
