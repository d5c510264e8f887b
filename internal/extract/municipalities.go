package extract

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed municipalities.json
var municipalitiesJSON []byte

// municipalitySchema guards the embedded reference table: a malformed entry
// is a build artifact problem and should fail loudly at startup, not match
// garbage at runtime.
const municipalitySchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "additionalProperties": false,
    "required": ["city", "department"],
    "properties": {
      "city": {"type": "string", "minLength": 2},
      "department": {"type": "string", "minLength": 2}
    }
  }
}`

// Municipality is one row of the city/department reference table.
type Municipality struct {
	City       string `json:"city"`
	Department string `json:"department"`
}

type municipalityMatcher struct {
	row Municipality
	re  *regexp.Regexp // whole-word match over accent-folded text
}

var municipalityTable = mustLoadMunicipalities()

func mustLoadMunicipalities() []municipalityMatcher {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("municipalities.schema.json", strings.NewReader(municipalitySchema)); err != nil {
		panic(fmt.Sprintf("extract: add municipality schema: %v", err))
	}
	schema, err := compiler.Compile("municipalities.schema.json")
	if err != nil {
		panic(fmt.Sprintf("extract: compile municipality schema: %v", err))
	}
	var v any
	if err := json.Unmarshal(municipalitiesJSON, &v); err != nil {
		panic(fmt.Sprintf("extract: unmarshal municipalities: %v", err))
	}
	if err := schema.Validate(v); err != nil {
		panic(fmt.Sprintf("extract: municipality table invalid: %v", err))
	}

	var rows []Municipality
	if err := json.Unmarshal(municipalitiesJSON, &rows); err != nil {
		panic(fmt.Sprintf("extract: decode municipalities: %v", err))
	}
	table := make([]municipalityMatcher, 0, len(rows))
	for _, row := range rows {
		folded := foldAccents(row.City)
		table = append(table, municipalityMatcher{
			row: row,
			re:  regexp.MustCompile(`\b` + regexp.QuoteMeta(folded) + `\b`),
		})
	}
	return table
}

// lookupCity scans the reference table against accent-folded text.
// The first table hit wins and supplies both city and department.
func lookupCity(foldedText string) (Municipality, bool) {
	for _, m := range municipalityTable {
		if m.re.MatchString(foldedText) {
			return m.row, true
		}
	}
	return Municipality{}, false
}
