package cart

import (
	"regexp"

	"github.com/brioches/storefront/pkg/domain"
	"github.com/brioches/storefront/pkg/money"
)

// Line items persisted by older storefront clients carry only a
// pre-formatted display label ("Bs. 40,11 ($0.25)", "Bs. 56,16",
// "$0.35"). These patterns recover the amounts from such labels.
var (
	vesLabelRe  = regexp.MustCompile(`Bs\.?\s*S?\s*([\d.]+(?:,\d+)?)`)
	usdLabelRe  = regexp.MustCompile(`\(\s*\$?\s*([\d.]+(?:,\d+)?)\s*\)`)
	bareAmounRe = regexp.MustCompile(`([\d.]+(?:,\d+)?)`)
)

// bareUSDThreshold classifies an unmarked amount: below it the number
// is almost certainly dollars, above it bolívares.
const bareUSDThreshold = 10

// ParsePriceLabel extracts the VES and/or USD amounts from a
// free-form display price. When neither currency marker is present,
// the first bare number is classified by magnitude. A label with no
// number at all yields zero totals.
func ParsePriceLabel(label string) domain.Totals {
	var totals domain.Totals

	if m := vesLabelRe.FindStringSubmatch(label); m != nil {
		totals.VES = money.ParseDecimal(m[1])
	}
	if m := usdLabelRe.FindStringSubmatch(label); m != nil {
		totals.USD = money.ParseDecimal(m[1])
	}

	if totals.VES == 0 && totals.USD == 0 {
		if m := bareAmounRe.FindStringSubmatch(label); m != nil {
			amount := money.ParseDecimal(m[1])
			if amount < bareUSDThreshold {
				totals.USD = amount
			} else {
				totals.VES = amount
			}
		}
	}
	return totals
}
