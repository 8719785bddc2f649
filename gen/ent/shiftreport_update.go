// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/forecourt-labs/shiftscan/gen/ent/store"
	"github.com/forecourt-labs/shiftscan/internal/extract"
	"github.com/google/uuid"
)

// ShiftReportUpdate is the builder for updating ShiftReport entities.
type ShiftReportUpdate struct {
	config
	hooks    []Hook
	mutation *ShiftReportMutation
}

// Where appends a list predicates to the ShiftReportUpdate builder.
func (sru *ShiftReportUpdate) Where(ps ...predicate.ShiftReport) *ShiftReportUpdate {
	sru.mutation.Where(ps...)
	return sru
}

// SetStoreID sets the "store_id" field.
func (sru *ShiftReportUpdate) SetStoreID(u uuid.UUID) *ShiftReportUpdate {
	sru.mutation.SetStoreID(u)
	return sru
}

// SetNillableStoreID sets the "store_id" field if the given value is not nil.
func (sru *ShiftReportUpdate) SetNillableStoreID(u *uuid.UUID) *ShiftReportUpdate {
	if u != nil {
		sru.SetStoreID(*u)
	}
	return sru
}

// SetReceiptHash sets the "receipt_hash" field.
func (sru *ShiftReportUpdate) SetReceiptHash(s string) *ShiftReportUpdate {
	sru.mutation.SetReceiptHash(s)
	return sru
}

// SetNillableReceiptHash sets the "receipt_hash" field if the given value is not nil.
func (sru *ShiftReportUpdate) SetNillableReceiptHash(s *string) *ShiftReportUpdate {
	if s != nil {
		sru.SetReceiptHash(*s)
	}
	return sru
}

// SetReportDate sets the "report_date" field.
func (sru *ShiftReportUpdate) SetReportDate(t time.Time) *ShiftReportUpdate {
	sru.mutation.SetReportDate(t)
	return sru
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (sru *ShiftReportUpdate) SetNillableReportDate(t *time.Time) *ShiftReportUpdate {
	if t != nil {
		sru.SetReportDate(*t)
	}
	return sru
}

// SetRawText sets the "raw_text" field.
func (sru *ShiftReportUpdate) SetRawText(s string) *ShiftReportUpdate {
	sru.mutation.SetRawText(s)
	return sru
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (sru *ShiftReportUpdate) SetNillableRawText(s *string) *ShiftReportUpdate {
	if s != nil {
		sru.SetRawText(*s)
	}
	return sru
}

// SetExtractionMethod sets the "extraction_method" field.
func (sru *ShiftReportUpdate) SetExtractionMethod(s string) *ShiftReportUpdate {
	sru.mutation.SetExtractionMethod(s)
	return sru
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (sru *ShiftReportUpdate) SetNillableExtractionMethod(s *string) *ShiftReportUpdate {
	if s != nil {
		sru.SetExtractionMethod(*s)
	}
	return sru
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (sru *ShiftReportUpdate) SetExtractionConfidence(f float32) *ShiftReportUpdate {
	sru.mutation.ResetExtractionConfidence()
	sru.mutation.SetExtractionConfidence(f)
	return sru
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (sru *ShiftReportUpdate) SetNillableExtractionConfidence(f *float32) *ShiftReportUpdate {
	if f != nil {
		sru.SetExtractionConfidence(*f)
	}
	return sru
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (sru *ShiftReportUpdate) AddExtractionConfidence(f float32) *ShiftReportUpdate {
	sru.mutation.AddExtractionConfidence(f)
	return sru
}

// SetUploadCount sets the "upload_count" field.
func (sru *ShiftReportUpdate) SetUploadCount(i int) *ShiftReportUpdate {
	sru.mutation.ResetUploadCount()
	sru.mutation.SetUploadCount(i)
	return sru
}

// SetNillableUploadCount sets the "upload_count" field if the given value is not nil.
func (sru *ShiftReportUpdate) SetNillableUploadCount(i *int) *ShiftReportUpdate {
	if i != nil {
		sru.SetUploadCount(*i)
	}
	return sru
}

// AddUploadCount adds i to the "upload_count" field.
func (sru *ShiftReportUpdate) AddUploadCount(i int) *ShiftReportUpdate {
	sru.mutation.AddUploadCount(i)
	return sru
}

// SetLastUploadReason sets the "last_upload_reason" field.
func (sru *ShiftReportUpdate) SetLastUploadReason(s string) *ShiftReportUpdate {
	sru.mutation.SetLastUploadReason(s)
	return sru
}

// SetNillableLastUploadReason sets the "last_upload_reason" field if the given value is not nil.
func (sru *ShiftReportUpdate) SetNillableLastUploadReason(s *string) *ShiftReportUpdate {
	if s != nil {
		sru.SetLastUploadReason(*s)
	}
	return sru
}

// SetStoreMetadata sets the "store_metadata" field.
func (sru *ShiftReportUpdate) SetStoreMetadata(em *extract.StoreMetadata) *ShiftReportUpdate {
	sru.mutation.SetStoreMetadata(em)
	return sru
}

// ClearStoreMetadata clears the value of the "store_metadata" field.
func (sru *ShiftReportUpdate) ClearStoreMetadata() *ShiftReportUpdate {
	sru.mutation.ClearStoreMetadata()
	return sru
}

// SetBalances sets the "balances" field.
func (sru *ShiftReportUpdate) SetBalances(e *extract.Balances) *ShiftReportUpdate {
	sru.mutation.SetBalances(e)
	return sru
}

// ClearBalances clears the value of the "balances" field.
func (sru *ShiftReportUpdate) ClearBalances() *ShiftReportUpdate {
	sru.mutation.ClearBalances()
	return sru
}

// SetSalesSummary sets the "sales_summary" field.
func (sru *ShiftReportUpdate) SetSalesSummary(es *extract.SalesSummary) *ShiftReportUpdate {
	sru.mutation.SetSalesSummary(es)
	return sru
}

// ClearSalesSummary clears the value of the "sales_summary" field.
func (sru *ShiftReportUpdate) ClearSalesSummary() *ShiftReportUpdate {
	sru.mutation.ClearSalesSummary()
	return sru
}

// SetFuel sets the "fuel" field.
func (sru *ShiftReportUpdate) SetFuel(e *extract.Fuel) *ShiftReportUpdate {
	sru.mutation.SetFuel(e)
	return sru
}

// ClearFuel clears the value of the "fuel" field.
func (sru *ShiftReportUpdate) ClearFuel() *ShiftReportUpdate {
	sru.mutation.ClearFuel()
	return sru
}

// SetInsideSales sets the "inside_sales" field.
func (sru *ShiftReportUpdate) SetInsideSales(es *extract.InsideSales) *ShiftReportUpdate {
	sru.mutation.SetInsideSales(es)
	return sru
}

// ClearInsideSales clears the value of the "inside_sales" field.
func (sru *ShiftReportUpdate) ClearInsideSales() *ShiftReportUpdate {
	sru.mutation.ClearInsideSales()
	return sru
}

// SetTenders sets the "tenders" field.
func (sru *ShiftReportUpdate) SetTenders(e *extract.Tenders) *ShiftReportUpdate {
	sru.mutation.SetTenders(e)
	return sru
}

// ClearTenders clears the value of the "tenders" field.
func (sru *ShiftReportUpdate) ClearTenders() *ShiftReportUpdate {
	sru.mutation.ClearTenders()
	return sru
}

// SetSafeActivity sets the "safe_activity" field.
func (sru *ShiftReportUpdate) SetSafeActivity(ea *extract.SafeActivity) *ShiftReportUpdate {
	sru.mutation.SetSafeActivity(ea)
	return sru
}

// ClearSafeActivity clears the value of the "safe_activity" field.
func (sru *ShiftReportUpdate) ClearSafeActivity() *ShiftReportUpdate {
	sru.mutation.ClearSafeActivity()
	return sru
}

// SetCreatedAt sets the "created_at" field.
func (sru *ShiftReportUpdate) SetCreatedAt(t time.Time) *ShiftReportUpdate {
	sru.mutation.SetCreatedAt(t)
	return sru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sru *ShiftReportUpdate) SetNillableCreatedAt(t *time.Time) *ShiftReportUpdate {
	if t != nil {
		sru.SetCreatedAt(*t)
	}
	return sru
}

// SetUpdatedAt sets the "updated_at" field.
func (sru *ShiftReportUpdate) SetUpdatedAt(t time.Time) *ShiftReportUpdate {
	sru.mutation.SetUpdatedAt(t)
	return sru
}

// SetStore sets the "store" edge to the Store entity.
func (sru *ShiftReportUpdate) SetStore(s *Store) *ShiftReportUpdate {
	return sru.SetStoreID(s.ID)
}

// AddDepartmentIDs adds the "departments" edge to the DepartmentSale entity by IDs.
func (sru *ShiftReportUpdate) AddDepartmentIDs(ids ...uuid.UUID) *ShiftReportUpdate {
	sru.mutation.AddDepartmentIDs(ids...)
	return sru
}

// AddDepartments adds the "departments" edges to the DepartmentSale entity.
func (sru *ShiftReportUpdate) AddDepartments(d ...*DepartmentSale) *ShiftReportUpdate {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return sru.AddDepartmentIDs(ids...)
}

// AddItemIDs adds the "items" edge to the ItemSale entity by IDs.
func (sru *ShiftReportUpdate) AddItemIDs(ids ...uuid.UUID) *ShiftReportUpdate {
	sru.mutation.AddItemIDs(ids...)
	return sru
}

// AddItems adds the "items" edges to the ItemSale entity.
func (sru *ShiftReportUpdate) AddItems(i ...*ItemSale) *ShiftReportUpdate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return sru.AddItemIDs(ids...)
}

// AddExceptionIDs adds the "exceptions" edge to the ReportException entity by IDs.
func (sru *ShiftReportUpdate) AddExceptionIDs(ids ...uuid.UUID) *ShiftReportUpdate {
	sru.mutation.AddExceptionIDs(ids...)
	return sru
}

// AddExceptions adds the "exceptions" edges to the ReportException entity.
func (sru *ShiftReportUpdate) AddExceptions(r ...*ReportException) *ShiftReportUpdate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return sru.AddExceptionIDs(ids...)
}

// Mutation returns the ShiftReportMutation object of the builder.
func (sru *ShiftReportUpdate) Mutation() *ShiftReportMutation {
	return sru.mutation
}

// ClearStore clears the "store" edge to the Store entity.
func (sru *ShiftReportUpdate) ClearStore() *ShiftReportUpdate {
	sru.mutation.ClearStore()
	return sru
}

// ClearDepartments clears all "departments" edges to the DepartmentSale entity.
func (sru *ShiftReportUpdate) ClearDepartments() *ShiftReportUpdate {
	sru.mutation.ClearDepartments()
	return sru
}

// RemoveDepartmentIDs removes the "departments" edge to DepartmentSale entities by IDs.
func (sru *ShiftReportUpdate) RemoveDepartmentIDs(ids ...uuid.UUID) *ShiftReportUpdate {
	sru.mutation.RemoveDepartmentIDs(ids...)
	return sru
}

// RemoveDepartments removes "departments" edges to DepartmentSale entities.
func (sru *ShiftReportUpdate) RemoveDepartments(d ...*DepartmentSale) *ShiftReportUpdate {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return sru.RemoveDepartmentIDs(ids...)
}

// ClearItems clears all "items" edges to the ItemSale entity.
func (sru *ShiftReportUpdate) ClearItems() *ShiftReportUpdate {
	sru.mutation.ClearItems()
	return sru
}

// RemoveItemIDs removes the "items" edge to ItemSale entities by IDs.
func (sru *ShiftReportUpdate) RemoveItemIDs(ids ...uuid.UUID) *ShiftReportUpdate {
	sru.mutation.RemoveItemIDs(ids...)
	return sru
}

// RemoveItems removes "items" edges to ItemSale entities.
func (sru *ShiftReportUpdate) RemoveItems(i ...*ItemSale) *ShiftReportUpdate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return sru.RemoveItemIDs(ids...)
}

// ClearExceptions clears all "exceptions" edges to the ReportException entity.
func (sru *ShiftReportUpdate) ClearExceptions() *ShiftReportUpdate {
	sru.mutation.ClearExceptions()
	return sru
}

// RemoveExceptionIDs removes the "exceptions" edge to ReportException entities by IDs.
func (sru *ShiftReportUpdate) RemoveExceptionIDs(ids ...uuid.UUID) *ShiftReportUpdate {
	sru.mutation.RemoveExceptionIDs(ids...)
	return sru
}

// RemoveExceptions removes "exceptions" edges to ReportException entities.
func (sru *ShiftReportUpdate) RemoveExceptions(r ...*ReportException) *ShiftReportUpdate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return sru.RemoveExceptionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sru *ShiftReportUpdate) Save(ctx context.Context) (int, error) {
	sru.defaults()
	return withHooks(ctx, sru.sqlSave, sru.mutation, sru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sru *ShiftReportUpdate) SaveX(ctx context.Context) int {
	affected, err := sru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sru *ShiftReportUpdate) Exec(ctx context.Context) error {
	_, err := sru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sru *ShiftReportUpdate) ExecX(ctx context.Context) {
	if err := sru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sru *ShiftReportUpdate) defaults() {
	if _, ok := sru.mutation.UpdatedAt(); !ok {
		v := shiftreport.UpdateDefaultUpdatedAt()
		sru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sru *ShiftReportUpdate) check() error {
	if v, ok := sru.mutation.ReceiptHash(); ok {
		if err := shiftreport.ReceiptHashValidator(v); err != nil {
			return &ValidationError{Name: "receipt_hash", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.receipt_hash": %w`, err)}
		}
	}
	if v, ok := sru.mutation.ExtractionMethod(); ok {
		if err := shiftreport.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.extraction_method": %w`, err)}
		}
	}
	if v, ok := sru.mutation.ExtractionConfidence(); ok {
		if err := shiftreport.ExtractionConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "extraction_confidence", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.extraction_confidence": %w`, err)}
		}
	}
	if v, ok := sru.mutation.UploadCount(); ok {
		if err := shiftreport.UploadCountValidator(v); err != nil {
			return &ValidationError{Name: "upload_count", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.upload_count": %w`, err)}
		}
	}
	if v, ok := sru.mutation.LastUploadReason(); ok {
		if err := shiftreport.LastUploadReasonValidator(v); err != nil {
			return &ValidationError{Name: "last_upload_reason", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.last_upload_reason": %w`, err)}
		}
	}
	if _, ok := sru.mutation.StoreID(); sru.mutation.StoreCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ShiftReport.store"`)
	}
	return nil
}

func (sru *ShiftReportUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := sru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftreport.Table, shiftreport.Columns, sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID))
	if ps := sru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sru.mutation.ReceiptHash(); ok {
		_spec.SetField(shiftreport.FieldReceiptHash, field.TypeString, value)
	}
	if value, ok := sru.mutation.ReportDate(); ok {
		_spec.SetField(shiftreport.FieldReportDate, field.TypeTime, value)
	}
	if value, ok := sru.mutation.RawText(); ok {
		_spec.SetField(shiftreport.FieldRawText, field.TypeString, value)
	}
	if value, ok := sru.mutation.ExtractionMethod(); ok {
		_spec.SetField(shiftreport.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := sru.mutation.ExtractionConfidence(); ok {
		_spec.SetField(shiftreport.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := sru.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(shiftreport.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := sru.mutation.UploadCount(); ok {
		_spec.SetField(shiftreport.FieldUploadCount, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AddedUploadCount(); ok {
		_spec.AddField(shiftreport.FieldUploadCount, field.TypeInt, value)
	}
	if value, ok := sru.mutation.LastUploadReason(); ok {
		_spec.SetField(shiftreport.FieldLastUploadReason, field.TypeString, value)
	}
	if value, ok := sru.mutation.StoreMetadata(); ok {
		_spec.SetField(shiftreport.FieldStoreMetadata, field.TypeJSON, value)
	}
	if sru.mutation.StoreMetadataCleared() {
		_spec.ClearField(shiftreport.FieldStoreMetadata, field.TypeJSON)
	}
	if value, ok := sru.mutation.Balances(); ok {
		_spec.SetField(shiftreport.FieldBalances, field.TypeJSON, value)
	}
	if sru.mutation.BalancesCleared() {
		_spec.ClearField(shiftreport.FieldBalances, field.TypeJSON)
	}
	if value, ok := sru.mutation.SalesSummary(); ok {
		_spec.SetField(shiftreport.FieldSalesSummary, field.TypeJSON, value)
	}
	if sru.mutation.SalesSummaryCleared() {
		_spec.ClearField(shiftreport.FieldSalesSummary, field.TypeJSON)
	}
	if value, ok := sru.mutation.Fuel(); ok {
		_spec.SetField(shiftreport.FieldFuel, field.TypeJSON, value)
	}
	if sru.mutation.FuelCleared() {
		_spec.ClearField(shiftreport.FieldFuel, field.TypeJSON)
	}
	if value, ok := sru.mutation.InsideSales(); ok {
		_spec.SetField(shiftreport.FieldInsideSales, field.TypeJSON, value)
	}
	if sru.mutation.InsideSalesCleared() {
		_spec.ClearField(shiftreport.FieldInsideSales, field.TypeJSON)
	}
	if value, ok := sru.mutation.Tenders(); ok {
		_spec.SetField(shiftreport.FieldTenders, field.TypeJSON, value)
	}
	if sru.mutation.TendersCleared() {
		_spec.ClearField(shiftreport.FieldTenders, field.TypeJSON)
	}
	if value, ok := sru.mutation.SafeActivity(); ok {
		_spec.SetField(shiftreport.FieldSafeActivity, field.TypeJSON, value)
	}
	if sru.mutation.SafeActivityCleared() {
		_spec.ClearField(shiftreport.FieldSafeActivity, field.TypeJSON)
	}
	if value, ok := sru.mutation.CreatedAt(); ok {
		_spec.SetField(shiftreport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := sru.mutation.UpdatedAt(); ok {
		_spec.SetField(shiftreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if sru.mutation.StoreCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shiftreport.StoreTable,
			Columns: []string{shiftreport.StoreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(store.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sru.mutation.StoreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shiftreport.StoreTable,
			Columns: []string{shiftreport.StoreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(store.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if sru.mutation.DepartmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.DepartmentsTable,
			Columns: []string{shiftreport.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sru.mutation.RemovedDepartmentsIDs(); len(nodes) > 0 && !sru.mutation.DepartmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.DepartmentsTable,
			Columns: []string{shiftreport.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sru.mutation.DepartmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.DepartmentsTable,
			Columns: []string{shiftreport.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if sru.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ItemsTable,
			Columns: []string{shiftreport.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sru.mutation.RemovedItemsIDs(); len(nodes) > 0 && !sru.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ItemsTable,
			Columns: []string{shiftreport.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sru.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ItemsTable,
			Columns: []string{shiftreport.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if sru.mutation.ExceptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ExceptionsTable,
			Columns: []string{shiftreport.ExceptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sru.mutation.RemovedExceptionsIDs(); len(nodes) > 0 && !sru.mutation.ExceptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ExceptionsTable,
			Columns: []string{shiftreport.ExceptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sru.mutation.ExceptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ExceptionsTable,
			Columns: []string{shiftreport.ExceptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sru.mutation.done = true
	return n, nil
}

// ShiftReportUpdateOne is the builder for updating a single ShiftReport entity.
type ShiftReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShiftReportMutation
}

// SetStoreID sets the "store_id" field.
func (sruo *ShiftReportUpdateOne) SetStoreID(u uuid.UUID) *ShiftReportUpdateOne {
	sruo.mutation.SetStoreID(u)
	return sruo
}

// SetNillableStoreID sets the "store_id" field if the given value is not nil.
func (sruo *ShiftReportUpdateOne) SetNillableStoreID(u *uuid.UUID) *ShiftReportUpdateOne {
	if u != nil {
		sruo.SetStoreID(*u)
	}
	return sruo
}

// SetReceiptHash sets the "receipt_hash" field.
func (sruo *ShiftReportUpdateOne) SetReceiptHash(s string) *ShiftReportUpdateOne {
	sruo.mutation.SetReceiptHash(s)
	return sruo
}

// SetNillableReceiptHash sets the "receipt_hash" field if the given value is not nil.
func (sruo *ShiftReportUpdateOne) SetNillableReceiptHash(s *string) *ShiftReportUpdateOne {
	if s != nil {
		sruo.SetReceiptHash(*s)
	}
	return sruo
}

// SetReportDate sets the "report_date" field.
func (sruo *ShiftReportUpdateOne) SetReportDate(t time.Time) *ShiftReportUpdateOne {
	sruo.mutation.SetReportDate(t)
	return sruo
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (sruo *ShiftReportUpdateOne) SetNillableReportDate(t *time.Time) *ShiftReportUpdateOne {
	if t != nil {
		sruo.SetReportDate(*t)
	}
	return sruo
}

// SetRawText sets the "raw_text" field.
func (sruo *ShiftReportUpdateOne) SetRawText(s string) *ShiftReportUpdateOne {
	sruo.mutation.SetRawText(s)
	return sruo
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (sruo *ShiftReportUpdateOne) SetNillableRawText(s *string) *ShiftReportUpdateOne {
	if s != nil {
		sruo.SetRawText(*s)
	}
	return sruo
}

// SetExtractionMethod sets the "extraction_method" field.
func (sruo *ShiftReportUpdateOne) SetExtractionMethod(s string) *ShiftReportUpdateOne {
	sruo.mutation.SetExtractionMethod(s)
	return sruo
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (sruo *ShiftReportUpdateOne) SetNillableExtractionMethod(s *string) *ShiftReportUpdateOne {
	if s != nil {
		sruo.SetExtractionMethod(*s)
	}
	return sruo
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (sruo *ShiftReportUpdateOne) SetExtractionConfidence(f float32) *ShiftReportUpdateOne {
	sruo.mutation.ResetExtractionConfidence()
	sruo.mutation.SetExtractionConfidence(f)
	return sruo
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (sruo *ShiftReportUpdateOne) SetNillableExtractionConfidence(f *float32) *ShiftReportUpdateOne {
	if f != nil {
		sruo.SetExtractionConfidence(*f)
	}
	return sruo
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (sruo *ShiftReportUpdateOne) AddExtractionConfidence(f float32) *ShiftReportUpdateOne {
	sruo.mutation.AddExtractionConfidence(f)
	return sruo
}

// SetUploadCount sets the "upload_count" field.
func (sruo *ShiftReportUpdateOne) SetUploadCount(i int) *ShiftReportUpdateOne {
	sruo.mutation.ResetUploadCount()
	sruo.mutation.SetUploadCount(i)
	return sruo
}

// SetNillableUploadCount sets the "upload_count" field if the given value is not nil.
func (sruo *ShiftReportUpdateOne) SetNillableUploadCount(i *int) *ShiftReportUpdateOne {
	if i != nil {
		sruo.SetUploadCount(*i)
	}
	return sruo
}

// AddUploadCount adds i to the "upload_count" field.
func (sruo *ShiftReportUpdateOne) AddUploadCount(i int) *ShiftReportUpdateOne {
	sruo.mutation.AddUploadCount(i)
	return sruo
}

// SetLastUploadReason sets the "last_upload_reason" field.
func (sruo *ShiftReportUpdateOne) SetLastUploadReason(s string) *ShiftReportUpdateOne {
	sruo.mutation.SetLastUploadReason(s)
	return sruo
}

// SetNillableLastUploadReason sets the "last_upload_reason" field if the given value is not nil.
func (sruo *ShiftReportUpdateOne) SetNillableLastUploadReason(s *string) *ShiftReportUpdateOne {
	if s != nil {
		sruo.SetLastUploadReason(*s)
	}
	return sruo
}

// SetStoreMetadata sets the "store_metadata" field.
func (sruo *ShiftReportUpdateOne) SetStoreMetadata(em *extract.StoreMetadata) *ShiftReportUpdateOne {
	sruo.mutation.SetStoreMetadata(em)
	return sruo
}

// ClearStoreMetadata clears the value of the "store_metadata" field.
func (sruo *ShiftReportUpdateOne) ClearStoreMetadata() *ShiftReportUpdateOne {
	sruo.mutation.ClearStoreMetadata()
	return sruo
}

// SetBalances sets the "balances" field.
func (sruo *ShiftReportUpdateOne) SetBalances(e *extract.Balances) *ShiftReportUpdateOne {
	sruo.mutation.SetBalances(e)
	return sruo
}

// ClearBalances clears the value of the "balances" field.
func (sruo *ShiftReportUpdateOne) ClearBalances() *ShiftReportUpdateOne {
	sruo.mutation.ClearBalances()
	return sruo
}

// SetSalesSummary sets the "sales_summary" field.
func (sruo *ShiftReportUpdateOne) SetSalesSummary(es *extract.SalesSummary) *ShiftReportUpdateOne {
	sruo.mutation.SetSalesSummary(es)
	return sruo
}

// ClearSalesSummary clears the value of the "sales_summary" field.
func (sruo *ShiftReportUpdateOne) ClearSalesSummary() *ShiftReportUpdateOne {
	sruo.mutation.ClearSalesSummary()
	return sruo
}

// SetFuel sets the "fuel" field.
func (sruo *ShiftReportUpdateOne) SetFuel(e *extract.Fuel) *ShiftReportUpdateOne {
	sruo.mutation.SetFuel(e)
	return sruo
}

// ClearFuel clears the value of the "fuel" field.
func (sruo *ShiftReportUpdateOne) ClearFuel() *ShiftReportUpdateOne {
	sruo.mutation.ClearFuel()
	return sruo
}

// SetInsideSales sets the "inside_sales" field.
func (sruo *ShiftReportUpdateOne) SetInsideSales(es *extract.InsideSales) *ShiftReportUpdateOne {
	sruo.mutation.SetInsideSales(es)
	return sruo
}

// ClearInsideSales clears the value of the "inside_sales" field.
func (sruo *ShiftReportUpdateOne) ClearInsideSales() *ShiftReportUpdateOne {
	sruo.mutation.ClearInsideSales()
	return sruo
}

// SetTenders sets the "tenders" field.
func (sruo *ShiftReportUpdateOne) SetTenders(e *extract.Tenders) *ShiftReportUpdateOne {
	sruo.mutation.SetTenders(e)
	return sruo
}

// ClearTenders clears the value of the "tenders" field.
func (sruo *ShiftReportUpdateOne) ClearTenders() *ShiftReportUpdateOne {
	sruo.mutation.ClearTenders()
	return sruo
}

// SetSafeActivity sets the "safe_activity" field.
func (sruo *ShiftReportUpdateOne) SetSafeActivity(ea *extract.SafeActivity) *ShiftReportUpdateOne {
	sruo.mutation.SetSafeActivity(ea)
	return sruo
}

// ClearSafeActivity clears the value of the "safe_activity" field.
func (sruo *ShiftReportUpdateOne) ClearSafeActivity() *ShiftReportUpdateOne {
	sruo.mutation.ClearSafeActivity()
	return sruo
}

// SetCreatedAt sets the "created_at" field.
func (sruo *ShiftReportUpdateOne) SetCreatedAt(t time.Time) *ShiftReportUpdateOne {
	sruo.mutation.SetCreatedAt(t)
	return sruo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sruo *ShiftReportUpdateOne) SetNillableCreatedAt(t *time.Time) *ShiftReportUpdateOne {
	if t != nil {
		sruo.SetCreatedAt(*t)
	}
	return sruo
}

// SetUpdatedAt sets the "updated_at" field.
func (sruo *ShiftReportUpdateOne) SetUpdatedAt(t time.Time) *ShiftReportUpdateOne {
	sruo.mutation.SetUpdatedAt(t)
	return sruo
}

// SetStore sets the "store" edge to the Store entity.
func (sruo *ShiftReportUpdateOne) SetStore(s *Store) *ShiftReportUpdateOne {
	return sruo.SetStoreID(s.ID)
}

// AddDepartmentIDs adds the "departments" edge to the DepartmentSale entity by IDs.
func (sruo *ShiftReportUpdateOne) AddDepartmentIDs(ids ...uuid.UUID) *ShiftReportUpdateOne {
	sruo.mutation.AddDepartmentIDs(ids...)
	return sruo
}

// AddDepartments adds the "departments" edges to the DepartmentSale entity.
func (sruo *ShiftReportUpdateOne) AddDepartments(d ...*DepartmentSale) *ShiftReportUpdateOne {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return sruo.AddDepartmentIDs(ids...)
}

// AddItemIDs adds the "items" edge to the ItemSale entity by IDs.
func (sruo *ShiftReportUpdateOne) AddItemIDs(ids ...uuid.UUID) *ShiftReportUpdateOne {
	sruo.mutation.AddItemIDs(ids...)
	return sruo
}

// AddItems adds the "items" edges to the ItemSale entity.
func (sruo *ShiftReportUpdateOne) AddItems(i ...*ItemSale) *ShiftReportUpdateOne {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return sruo.AddItemIDs(ids...)
}

// AddExceptionIDs adds the "exceptions" edge to the ReportException entity by IDs.
func (sruo *ShiftReportUpdateOne) AddExceptionIDs(ids ...uuid.UUID) *ShiftReportUpdateOne {
	sruo.mutation.AddExceptionIDs(ids...)
	return sruo
}

// AddExceptions adds the "exceptions" edges to the ReportException entity.
func (sruo *ShiftReportUpdateOne) AddExceptions(r ...*ReportException) *ShiftReportUpdateOne {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return sruo.AddExceptionIDs(ids...)
}

// Mutation returns the ShiftReportMutation object of the builder.
func (sruo *ShiftReportUpdateOne) Mutation() *ShiftReportMutation {
	return sruo.mutation
}

// ClearStore clears the "store" edge to the Store entity.
func (sruo *ShiftReportUpdateOne) ClearStore() *ShiftReportUpdateOne {
	sruo.mutation.ClearStore()
	return sruo
}

// ClearDepartments clears all "departments" edges to the DepartmentSale entity.
func (sruo *ShiftReportUpdateOne) ClearDepartments() *ShiftReportUpdateOne {
	sruo.mutation.ClearDepartments()
	return sruo
}

// RemoveDepartmentIDs removes the "departments" edge to DepartmentSale entities by IDs.
func (sruo *ShiftReportUpdateOne) RemoveDepartmentIDs(ids ...uuid.UUID) *ShiftReportUpdateOne {
	sruo.mutation.RemoveDepartmentIDs(ids...)
	return sruo
}

// RemoveDepartments removes "departments" edges to DepartmentSale entities.
func (sruo *ShiftReportUpdateOne) RemoveDepartments(d ...*DepartmentSale) *ShiftReportUpdateOne {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return sruo.RemoveDepartmentIDs(ids...)
}

// ClearItems clears all "items" edges to the ItemSale entity.
func (sruo *ShiftReportUpdateOne) ClearItems() *ShiftReportUpdateOne {
	sruo.mutation.ClearItems()
	return sruo
}

// RemoveItemIDs removes the "items" edge to ItemSale entities by IDs.
func (sruo *ShiftReportUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *ShiftReportUpdateOne {
	sruo.mutation.RemoveItemIDs(ids...)
	return sruo
}

// RemoveItems removes "items" edges to ItemSale entities.
func (sruo *ShiftReportUpdateOne) RemoveItems(i ...*ItemSale) *ShiftReportUpdateOne {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return sruo.RemoveItemIDs(ids...)
}

// ClearExceptions clears all "exceptions" edges to the ReportException entity.
func (sruo *ShiftReportUpdateOne) ClearExceptions() *ShiftReportUpdateOne {
	sruo.mutation.ClearExceptions()
	return sruo
}

// RemoveExceptionIDs removes the "exceptions" edge to ReportException entities by IDs.
func (sruo *ShiftReportUpdateOne) RemoveExceptionIDs(ids ...uuid.UUID) *ShiftReportUpdateOne {
	sruo.mutation.RemoveExceptionIDs(ids...)
	return sruo
}

// RemoveExceptions removes "exceptions" edges to ReportException entities.
func (sruo *ShiftReportUpdateOne) RemoveExceptions(r ...*ReportException) *ShiftReportUpdateOne {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return sruo.RemoveExceptionIDs(ids...)
}

// Where appends a list predicates to the ShiftReportUpdate builder.
func (sruo *ShiftReportUpdateOne) Where(ps ...predicate.ShiftReport) *ShiftReportUpdateOne {
	sruo.mutation.Where(ps...)
	return sruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sruo *ShiftReportUpdateOne) Select(field string, fields ...string) *ShiftReportUpdateOne {
	sruo.fields = append([]string{field}, fields...)
	return sruo
}

// Save executes the query and returns the updated ShiftReport entity.
func (sruo *ShiftReportUpdateOne) Save(ctx context.Context) (*ShiftReport, error) {
	sruo.defaults()
	return withHooks(ctx, sruo.sqlSave, sruo.mutation, sruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sruo *ShiftReportUpdateOne) SaveX(ctx context.Context) *ShiftReport {
	node, err := sruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sruo *ShiftReportUpdateOne) Exec(ctx context.Context) error {
	_, err := sruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sruo *ShiftReportUpdateOne) ExecX(ctx context.Context) {
	if err := sruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sruo *ShiftReportUpdateOne) defaults() {
	if _, ok := sruo.mutation.UpdatedAt(); !ok {
		v := shiftreport.UpdateDefaultUpdatedAt()
		sruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sruo *ShiftReportUpdateOne) check() error {
	if v, ok := sruo.mutation.ReceiptHash(); ok {
		if err := shiftreport.ReceiptHashValidator(v); err != nil {
			return &ValidationError{Name: "receipt_hash", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.receipt_hash": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.ExtractionMethod(); ok {
		if err := shiftreport.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.extraction_method": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.ExtractionConfidence(); ok {
		if err := shiftreport.ExtractionConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "extraction_confidence", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.extraction_confidence": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.UploadCount(); ok {
		if err := shiftreport.UploadCountValidator(v); err != nil {
			return &ValidationError{Name: "upload_count", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.upload_count": %w`, err)}
		}
	}
	if v, ok := sruo.mutation.LastUploadReason(); ok {
		if err := shiftreport.LastUploadReasonValidator(v); err != nil {
			return &ValidationError{Name: "last_upload_reason", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.last_upload_reason": %w`, err)}
		}
	}
	if _, ok := sruo.mutation.StoreID(); sruo.mutation.StoreCleared() && !ok {
		return errors.New(`ent: clearing a required unique edge "ShiftReport.store"`)
	}
	return nil
}

func (sruo *ShiftReportUpdateOne) sqlSave(ctx context.Context) (_node *ShiftReport, err error) {
	if err := sruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shiftreport.Table, shiftreport.Columns, sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID))
	id, ok := sruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ShiftReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shiftreport.FieldID)
		for _, f := range fields {
			if !shiftreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != shiftreport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sruo.mutation.ReceiptHash(); ok {
		_spec.SetField(shiftreport.FieldReceiptHash, field.TypeString, value)
	}
	if value, ok := sruo.mutation.ReportDate(); ok {
		_spec.SetField(shiftreport.FieldReportDate, field.TypeTime, value)
	}
	if value, ok := sruo.mutation.RawText(); ok {
		_spec.SetField(shiftreport.FieldRawText, field.TypeString, value)
	}
	if value, ok := sruo.mutation.ExtractionMethod(); ok {
		_spec.SetField(shiftreport.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := sruo.mutation.ExtractionConfidence(); ok {
		_spec.SetField(shiftreport.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := sruo.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(shiftreport.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := sruo.mutation.UploadCount(); ok {
		_spec.SetField(shiftreport.FieldUploadCount, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AddedUploadCount(); ok {
		_spec.AddField(shiftreport.FieldUploadCount, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.LastUploadReason(); ok {
		_spec.SetField(shiftreport.FieldLastUploadReason, field.TypeString, value)
	}
	if value, ok := sruo.mutation.StoreMetadata(); ok {
		_spec.SetField(shiftreport.FieldStoreMetadata, field.TypeJSON, value)
	}
	if sruo.mutation.StoreMetadataCleared() {
		_spec.ClearField(shiftreport.FieldStoreMetadata, field.TypeJSON)
	}
	if value, ok := sruo.mutation.Balances(); ok {
		_spec.SetField(shiftreport.FieldBalances, field.TypeJSON, value)
	}
	if sruo.mutation.BalancesCleared() {
		_spec.ClearField(shiftreport.FieldBalances, field.TypeJSON)
	}
	if value, ok := sruo.mutation.SalesSummary(); ok {
		_spec.SetField(shiftreport.FieldSalesSummary, field.TypeJSON, value)
	}
	if sruo.mutation.SalesSummaryCleared() {
		_spec.ClearField(shiftreport.FieldSalesSummary, field.TypeJSON)
	}
	if value, ok := sruo.mutation.Fuel(); ok {
		_spec.SetField(shiftreport.FieldFuel, field.TypeJSON, value)
	}
	if sruo.mutation.FuelCleared() {
		_spec.ClearField(shiftreport.FieldFuel, field.TypeJSON)
	}
	if value, ok := sruo.mutation.InsideSales(); ok {
		_spec.SetField(shiftreport.FieldInsideSales, field.TypeJSON, value)
	}
	if sruo.mutation.InsideSalesCleared() {
		_spec.ClearField(shiftreport.FieldInsideSales, field.TypeJSON)
	}
	if value, ok := sruo.mutation.Tenders(); ok {
		_spec.SetField(shiftreport.FieldTenders, field.TypeJSON, value)
	}
	if sruo.mutation.TendersCleared() {
		_spec.ClearField(shiftreport.FieldTenders, field.TypeJSON)
	}
	if value, ok := sruo.mutation.SafeActivity(); ok {
		_spec.SetField(shiftreport.FieldSafeActivity, field.TypeJSON, value)
	}
	if sruo.mutation.SafeActivityCleared() {
		_spec.ClearField(shiftreport.FieldSafeActivity, field.TypeJSON)
	}
	if value, ok := sruo.mutation.CreatedAt(); ok {
		_spec.SetField(shiftreport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := sruo.mutation.UpdatedAt(); ok {
		_spec.SetField(shiftreport.FieldUpdatedAt, field.TypeTime, value)
	}
	if sruo.mutation.StoreCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shiftreport.StoreTable,
			Columns: []string{shiftreport.StoreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(store.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sruo.mutation.StoreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shiftreport.StoreTable,
			Columns: []string{shiftreport.StoreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(store.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if sruo.mutation.DepartmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.DepartmentsTable,
			Columns: []string{shiftreport.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sruo.mutation.RemovedDepartmentsIDs(); len(nodes) > 0 && !sruo.mutation.DepartmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.DepartmentsTable,
			Columns: []string{shiftreport.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sruo.mutation.DepartmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.DepartmentsTable,
			Columns: []string{shiftreport.DepartmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(departmentsale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if sruo.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ItemsTable,
			Columns: []string{shiftreport.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sruo.mutation.RemovedItemsIDs(); len(nodes) > 0 && !sruo.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ItemsTable,
			Columns: []string{shiftreport.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sruo.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ItemsTable,
			Columns: []string{shiftreport.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(itemsale.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if sruo.mutation.ExceptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ExceptionsTable,
			Columns: []string{shiftreport.ExceptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sruo.mutation.RemovedExceptionsIDs(); len(nodes) > 0 && !sruo.mutation.ExceptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ExceptionsTable,
			Columns: []string{shiftreport.ExceptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := sruo.mutation.ExceptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   shiftreport.ExceptionsTable,
			Columns: []string{shiftreport.ExceptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportexception.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ShiftReport{config: sruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shiftreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sruo.mutation.done = true
	return _node, nil
}
