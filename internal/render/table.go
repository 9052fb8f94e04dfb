package render

import (
	"fmt"
	"strings"
)

// Param is one entry of a callable's ordered parameter list. Type and
// Default may be empty; the table renderer substitutes "Any" and
// "No default" for missing values.
type Param struct {
	Name    string
	Type    string
	Default string
}

// skippedParams are parameter names excluded from argument tables. The
// catch-all "kwargs" convention carries no information worth a table row.
var skippedParams = map[string]struct{}{
	"kwargs": {},
}

// ArgsTable renders a GitHub-flavored Markdown table of a callable's
// parameters. Descriptions are looked up by parameter name; absent entries
// render as an empty cell. A callable with no eligible parameters still
// yields the header and separator rows.
func ArgsTable(params []Param, descriptions map[string]string) string {
	headers := []string{"Name", "Type", "Default", "Description"}
	var b strings.Builder
	fmt.Fprintf(&b, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(&b, "| %s |\n", strings.Join([]string{"---", "---", "---", "---"}, " | "))
	for _, p := range params {
		if _, skip := skippedParams[p.Name]; skip {
			continue
		}
		typ := p.Type
		if typ == "" {
			typ = "Any"
		}
		def := p.Default
		if def == "" {
			def = "No default"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Name, typ, def, descriptions[p.Name])
	}
	return b.String()
}

// FuncDoc renders the full Markdown body for one callable: the argument
// table, a blank line, then the doc comment with its Args section stripped
// (the table already carries that information).
func FuncDoc(params []Param, doc string) string {
	return ArgsTable(params, ParseArgsSection(doc)) + "\n\n" + StripArgsSection(doc)
}
