// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DepartmentSale is the predicate function for departmentsale builders.
type DepartmentSale func(*sql.Selector)

// ItemSale is the predicate function for itemsale builders.
type ItemSale func(*sql.Selector)

// ReportException is the predicate function for reportexception builders.
type ReportException func(*sql.Selector)

// ShiftReport is the predicate function for shiftreport builders.
type ShiftReport func(*sql.Selector)

// Store is the predicate function for store builders.
type Store func(*sql.Selector)
