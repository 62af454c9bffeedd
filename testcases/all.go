package testcases

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]Scenario{
	"basic":   basicCases,
	"pattern": patternCases,
	"edge":    edgeCases,
}
