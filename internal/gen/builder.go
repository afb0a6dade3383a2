package gen

import (
	"strconv"
	"strings"

	geminizod "github.com/Elransh/gemini-zod"
)

// exprBuilder builds zod construction expressions as Go source text.
type exprBuilder struct{}

var _ geminizod.Builder[string] = exprBuilder{}

func (exprBuilder) Array(elem string) string { return "zod.Array(" + elem + ")" }

func (exprBuilder) Object(fields []geminizod.Field[string]) string {
	if len(fields) == 0 {
		return "zod.Object()"
	}
	var b strings.Builder
	b.WriteString("zod.Object(\n")
	for _, f := range fields {
		b.WriteString("zod.Field(")
		b.WriteString(strconv.Quote(f.Name))
		b.WriteString(", ")
		b.WriteString(f.Node)
		b.WriteString("),\n")
	}
	b.WriteString(")")
	return b.String()
}

func (exprBuilder) String() string              { return "zod.String()" }
func (exprBuilder) Number() string              { return "zod.Number()" }
func (exprBuilder) Boolean() string             { return "zod.Boolean()" }
func (exprBuilder) Any() string                 { return "zod.Any()" }
func (exprBuilder) Optional(n string) string    { return "zod.Optional(" + n + ")" }
func (exprBuilder) Nullable(n string) string    { return "zod.Nullable(" + n + ")" }
func (exprBuilder) Describe(n, d string) string { return "zod.Describe(" + n + ", " + strconv.Quote(d) + ")" }
