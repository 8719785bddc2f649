package llm

import "github.com/forecourt-labs/shiftscan/internal/extract"

// BuildShiftReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the shape the completion service must return: the extract's sections without
// rawText/extractionMethod/extractionConfidence, which the pipeline stamps on
// afterward. The same map is sent to the model as a constraint and used
// locally to validate its response.
func BuildShiftReportJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"storeMetadata":   storeMetadataSchema(),
			"balances":        balancesSchema(),
			"salesSummary":    salesSummarySchema(),
			"fuel":            fuelSchema(),
			"insideSales":     insideSalesSchema(),
			"tenders":         tendersSchema(),
			"safeActivity":    safeActivitySchema(),
			"departmentSales": lineItemsSchema(),
			"itemSales":       lineItemsSchema(),
			"exceptions":      exceptionsSchema(),
		},
	}
}

// BuildStoredReportJSONSchema is the schema for a fully stamped extract: the
// section shapes above plus the required rawText / extractionMethod /
// extractionConfidence trio. Every tier's output is validated against this
// before it is returned to the caller.
func BuildStoredReportJSONSchema() map[string]any {
	s := BuildShiftReportJSONSchema()
	props := s["properties"].(map[string]any)
	props["rawText"] = map[string]any{"type": "string"}
	props["extractionMethod"] = map[string]any{"type": "string", "enum": extract.Methods}
	props["extractionConfidence"] = confidenceProp()
	s["required"] = []string{"rawText", "extractionMethod", "extractionConfidence"}
	return s
}

func section(props map[string]any) map[string]any {
	props["confidence"] = confidenceProp()
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"confidence"},
	}
}

func storeMetadataSchema() map[string]any {
	return section(map[string]any{
		"registerId": stringProp(),
		"operatorId": stringProp(),
		"tillId":     stringProp(),
		"shiftStart": stringProp(),
		"shiftEnd":   stringProp(),
		"printedAt":  stringProp(),
		"reportDate": stringProp(),
	})
}

func balancesSchema() map[string]any {
	return section(map[string]any{
		"beginningBalance":      moneyProp(),
		"endingBalance":         moneyProp(),
		"closingAccountability": moneyProp(),
		"countedCash":           moneyProp(),
		"cashVariance":          moneyProp(),
	})
}

func salesSummarySchema() map[string]any {
	return section(map[string]any{
		"grossSales":       moneyProp(),
		"netSales":         moneyProp(),
		"refunds":          moneyProp(),
		"discounts":        moneyProp(),
		"tax":              moneyProp(),
		"transactionCount": countProp(),
	})
}

func fuelSchema() map[string]any {
	return section(map[string]any{
		"fuelSales": moneyProp(),
		"fuelGross": moneyProp(),
		"gallons":   moneyProp(),
	})
}

func insideSalesSchema() map[string]any {
	return section(map[string]any{
		"insideSales":     moneyProp(),
		"merchandise":     moneyProp(),
		"prepayInitiated": moneyProp(),
		"prepayPumped":    moneyProp(),
	})
}

func tendersSchema() map[string]any {
	tenderLine := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"count":  countProp(),
			"amount": moneyProp(),
		},
	}
	return section(map[string]any{
		"cash":   tenderLine,
		"credit": tenderLine,
		"debit":  tenderLine,
		"check":  tenderLine,
		"ebt":    tenderLine,
		"other":  tenderLine,
		"total":  moneyProp(),
	})
}

func safeActivitySchema() map[string]any {
	return section(map[string]any{
		"dropCount":     countProp(),
		"dropAmount":    moneyProp(),
		"loanCount":     countProp(),
		"loanAmount":    moneyProp(),
		"paidInCount":   countProp(),
		"paidInAmount":  moneyProp(),
		"paidOutCount":  countProp(),
		"paidOutAmount": moneyProp(),
	})
}

func lineItemsSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"name":       map[string]any{"type": "string", "minLength": 1},
				"quantity":   map[string]any{"type": "number"},
				"amount":     moneyProp(),
				"confidence": confidenceProp(),
			},
			"required": []string{"name", "amount", "confidence"},
		},
	}
}

func exceptionsSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"type":   map[string]any{"type": "string", "minLength": 1},
				"count":  countProp(),
				"amount": moneyProp(),
			},
			"required": []string{"type", "count"},
		},
	}
}

func stringProp() map[string]any {
	return map[string]any{"type": "string"}
}

func moneyProp() map[string]any {
	return map[string]any{"type": "number"}
}

func countProp() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0}
}

func confidenceProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}
