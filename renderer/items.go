package renderer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/neromancy/hasilbumi"
)

// Items renders the catalog with the current stock of each item. Items that
// are still in stock but no longer in the catalog are listed apart.
func Items(catalog []string, stock map[string]hasilbumi.Quantity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Items\n\n")
	if len(catalog) == 0 {
		fmt.Fprintf(&b, "The catalog is empty.\n")
	} else {
		fmt.Fprintf(&b, "| Item | Stock (kg) |\n|:-----|-----------:|\n")
		for _, item := range catalog {
			q, ok := stock[item]
			if !ok {
				fmt.Fprintf(&b, "| %s | - |\n", cell(item))
				continue
			}
			fmt.Fprintf(&b, "| %s | %s |\n", cell(item), q)
		}
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Not in the catalog\n\n| Item | Stock (kg) |\n|:-----|-----------:|\n")
		found := false
		for _, s := range hasilbumi.SortedStock(stock) {
			if slices.Contains(catalog, s.Item) || s.Qty.IsZero() {
				continue
			}
			found = true
			fmt.Fprintf(w, "| %s | %s |\n", cell(s.Item), s.Qty)
		}
		return found
	})
	return b.String()
}
