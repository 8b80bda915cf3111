package utils

import "strings"

const (
	CashlessSupported   = "対応"
	CashlessUnsupported = "非対応"
	CashlessPartial     = "一部対応"
)

// NormalizeCashless maps form and seed spellings onto the three stored values.
func NormalizeCashless(value string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case CashlessSupported, "可", "yes", "true":
		return CashlessSupported, true
	case CashlessUnsupported, "不可", "no", "false":
		return CashlessUnsupported, true
	case CashlessPartial, "一部", "partial":
		return CashlessPartial, true
	}
	return "", false
}
