package parser

import "sivportal/internal/model"

// MapColumns infers the semantic role of each header column via the
// declarative rule table. Per cell the first matching rule wins; per role
// the rightmost matching cell wins. If nothing claimed the identifier role,
// column 0 is assigned as a safety default, so a misdetected sheet still
// produces output instead of failing. That permissiveness is intentional:
// the upstream report layouts vary too much for a strict schema.
func MapColumns(header []string) model.ColumnMap {
	cm := model.ColumnMap{
		Identifier: -1,
		Region:     -1,
		Metric:     -1,
		Subtotal:   -1,
		GrandTotal: -1,
	}

	for idx, cell := range header {
		cell = NormalizeCell(cell)
		if cell == "" {
			continue
		}
		for _, rule := range columnRules {
			if !rule.Match(cell) {
				continue
			}
			switch rule.Role {
			case RoleIdentifier:
				cm.Identifier = idx
			case RoleRegion:
				cm.Region = idx
			case RoleMetric:
				cm.Metric = idx
			case RoleSubtotal:
				cm.Subtotal = idx
			case RoleGrandTotal:
				cm.GrandTotal = idx
			}
			break
		}
	}

	if cm.Identifier < 0 {
		cm.Identifier = 0
	}
	return cm
}
