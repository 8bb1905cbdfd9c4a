package items

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// 全角英数・半角カナなどを NFKC で揃える
func normalizeText(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// normalizeCategory folds case so "Books" and "ＢＯＯＫＳ" land in one category.
// cases.Caser は状態を持つので呼び出しごとに作る
func normalizeCategory(s string) string {
	return cases.Fold().String(normalizeText(s))
}
