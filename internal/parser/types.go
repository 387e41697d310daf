package parser

// ColumnRole is the semantic role of a header column.
type ColumnRole string

const (
	RoleIdentifier ColumnRole = "identifier"
	RoleRegion     ColumnRole = "region"
	RoleMetric     ColumnRole = "metric"
	RoleSubtotal   ColumnRole = "subtotal"
	RoleGrandTotal ColumnRole = "grandTotal"
)

// ColumnRule is one declarative header-matching rule. Rules are evaluated
// in order per cell and the first matching rule wins for that cell. Because
// the header scan runs left to right and assignment is unconditional, a
// later cell matching the same role overwrites an earlier assignment.
type ColumnRule struct {
	Role  ColumnRole
	Match func(cell string) bool
}

// columnRules is the full rule table. Keeping it as data rather than
// embedded conditionals makes each rule testable on its own and lets new
// layouts be supported without touching the merge logic.
var columnRules = []ColumnRule{
	{Role: RoleIdentifier, Match: containsAnyOf("embassy", "post", "city")},
	{Role: RoleRegion, Match: containsAnyOf("country")},
	{Role: RoleMetric, Match: matchMetric},
	{Role: RoleGrandTotal, Match: containsAnyOf("grand total")},
	{Role: RoleSubtotal, Match: matchSubtotal},
}
