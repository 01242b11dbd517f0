// Package renderer formats ledger views as markdown, and markdown as HTML.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/neromancy/hasilbumi"
)

//go:embed templates/*.md
var templates embed.FS

// Options holds configuration for rendering.
type Options struct {
	Currency string // ISO 4217 code amounts are formatted in, hasilbumi.DefaultCurrency if empty.
}

func (o Options) funcs() template.FuncMap {
	cur := o.Currency
	if cur == "" {
		cur = hasilbumi.DefaultCurrency
	}
	return template.FuncMap{
		"money": func(m hasilbumi.Money) string { return m.Format(cur) },
		"profitLabel": func(m hasilbumi.Money) string {
			if m.IsNegative() {
				return "Deficit"
			}
			return "Profit"
		},
		"abs":   func(m hasilbumi.Money) hasilbumi.Money { return m.Abs() },
		"empty": func(q hasilbumi.Quantity) bool { return !q.IsPositive() },
		"title": func(s fmt.Stringer) string {
			str := s.String()
			if str == "" {
				return str
			}
			return strings.ToUpper(str[:1]) + str[1:]
		},
		"isAll": func(item string) bool { return item == hasilbumi.AllItems },
		"cell":  cell,
	}
}

// cell escapes s for use inside a markdown table cell.
func cell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// Dashboard renders the overview of the ledger.
func Dashboard(d *hasilbumi.Dashboard, o Options) string {
	partials := map[string]string{
		"stock":        "stock.md",
		"cashflow":     "cashflow.md",
		"transactions": "transactions.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, o, d)
}

// Report renders a filtered report.
func Report(r *hasilbumi.Report, o Options) string {
	partials := map[string]string{
		"summary":      "summary.md",
		"transactions": "transactions.md",
	}
	return renderTemplate("report", "report.md", partials, o, r)
}

// Transactions renders a table of transactions, in the given order.
func Transactions(txs []hasilbumi.Transaction, o Options) string {
	return renderTemplate("transactions", "transactions.md", nil, o, txs)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, o Options, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(o.funcs()).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
