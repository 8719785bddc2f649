// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/forecourt-labs/shiftscan/gen/ent/store"
	"github.com/forecourt-labs/shiftscan/internal/extract"
	"github.com/google/uuid"
)

// ShiftReportCreate is the builder for creating a ShiftReport entity.
type ShiftReportCreate struct {
	config
	mutation *ShiftReportMutation
	hooks    []Hook
}

// SetStoreID sets the "store_id" field.
func (src *ShiftReportCreate) SetStoreID(u uuid.UUID) *ShiftReportCreate {
	src.mutation.SetStoreID(u)
	return src
}

// SetReceiptHash sets the "receipt_hash" field.
func (src *ShiftReportCreate) SetReceiptHash(s string) *ShiftReportCreate {
	src.mutation.SetReceiptHash(s)
	return src
}

// SetReportDate sets the "report_date" field.
func (src *ShiftReportCreate) SetReportDate(t time.Time) *ShiftReportCreate {
	src.mutation.SetReportDate(t)
	return src
}

// SetRawText sets the "raw_text" field.
func (src *ShiftReportCreate) SetRawText(s string) *ShiftReportCreate {
	src.mutation.SetRawText(s)
	return src
}

// SetExtractionMethod sets the "extraction_method" field.
func (src *ShiftReportCreate) SetExtractionMethod(s string) *ShiftReportCreate {
	src.mutation.SetExtractionMethod(s)
	return src
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (src *ShiftReportCreate) SetExtractionConfidence(f float32) *ShiftReportCreate {
	src.mutation.SetExtractionConfidence(f)
	return src
}

// SetUploadCount sets the "upload_count" field.
func (src *ShiftReportCreate) SetUploadCount(i int) *ShiftReportCreate {
	src.mutation.SetUploadCount(i)
	return src
}

// SetNillableUploadCount sets the "upload_count" field if the given value is not nil.
func (src *ShiftReportCreate) SetNillableUploadCount(i *int) *ShiftReportCreate {
	if i != nil {
		src.SetUploadCount(*i)
	}
	return src
}

// SetLastUploadReason sets the "last_upload_reason" field.
func (src *ShiftReportCreate) SetLastUploadReason(s string) *ShiftReportCreate {
	src.mutation.SetLastUploadReason(s)
	return src
}

// SetStoreMetadata sets the "store_metadata" field.
func (src *ShiftReportCreate) SetStoreMetadata(em *extract.StoreMetadata) *ShiftReportCreate {
	src.mutation.SetStoreMetadata(em)
	return src
}

// SetBalances sets the "balances" field.
func (src *ShiftReportCreate) SetBalances(e *extract.Balances) *ShiftReportCreate {
	src.mutation.SetBalances(e)
	return src
}

// SetSalesSummary sets the "sales_summary" field.
func (src *ShiftReportCreate) SetSalesSummary(es *extract.SalesSummary) *ShiftReportCreate {
	src.mutation.SetSalesSummary(es)
	return src
}

// SetFuel sets the "fuel" field.
func (src *ShiftReportCreate) SetFuel(e *extract.Fuel) *ShiftReportCreate {
	src.mutation.SetFuel(e)
	return src
}

// SetInsideSales sets the "inside_sales" field.
func (src *ShiftReportCreate) SetInsideSales(es *extract.InsideSales) *ShiftReportCreate {
	src.mutation.SetInsideSales(es)
	return src
}

// SetTenders sets the "tenders" field.
func (src *ShiftReportCreate) SetTenders(e *extract.Tenders) *ShiftReportCreate {
	src.mutation.SetTenders(e)
	return src
}

// SetSafeActivity sets the "safe_activity" field.
func (src *ShiftReportCreate) SetSafeActivity(ea *extract.SafeActivity) *ShiftReportCreate {
	src.mutation.SetSafeActivity(ea)
	return src
}

// SetCreatedAt sets the "created_at" field.
func (src *ShiftReportCreate) SetCreatedAt(t time.Time) *ShiftReportCreate {
	src.mutation.SetCreatedAt(t)
	return src
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (src *ShiftReportCreate) SetNillableCreatedAt(t *time.Time) *ShiftReportCreate {
	if t != nil {
		src.SetCreatedAt(*t)
	}
	return src
}

// SetUpdatedAt sets the "updated_at" field.
func (src *ShiftReportCreate) SetUpdatedAt(t time.Time) *ShiftReportCreate {
	src.mutation.SetUpdatedAt(t)
	return src
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (src *ShiftReportCreate) SetNillableUpdatedAt(t *time.Time) *ShiftReportCreate {
	if t != nil {
		src.SetUpdatedAt(*t)
	}
	return src
}

// SetID sets the "id" field.
func (src *ShiftReportCreate) SetID(u uuid.UUID) *ShiftReportCreate {
	src.mutation.SetID(u)
	return src
}

// SetNillableID sets the "id" field if the given value is not nil.
func (src *ShiftReportCreate) SetNillableID(u *uuid.UUID) *ShiftReportCreate {
	if u != nil {
		src.SetID(*u)
	}
	return src
}

// SetStore sets the "store" edge to the Store entity.
func (src *ShiftReportCreate) SetStore(s *Store) *ShiftReportCreate {
	return src.SetStoreID(s.ID)
}

// AddDepartmentIDs adds the "departments" edge to the DepartmentSale entity by IDs.
func (src *ShiftReportCreate) AddDepartmentIDs(ids ...uuid.UUID) *ShiftReportCreate {
	src.mutation.AddDepartmentIDs(ids...)
	return src
}

// AddDepartments adds the "departments" edges to the DepartmentSale entity.
func (src *ShiftReportCreate) AddDepartments(d ...*DepartmentSale) *ShiftReportCreate {
	ids := make([]uuid.UUID, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return src.AddDepartmentIDs(ids...)
}

// AddItemIDs adds the "items" edge to the ItemSale entity by IDs.
func (src *ShiftReportCreate) AddItemIDs(ids ...uuid.UUID) *ShiftReportCreate {
	src.mutation.AddItemIDs(ids...)
	return src
}

// AddItems adds the "items" edges to the ItemSale entity.
func (src *ShiftReportCreate) AddItems(i ...*ItemSale) *ShiftReportCreate {
	ids := make([]uuid.UUID, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return src.AddItemIDs(ids...)
}

// AddExceptionIDs adds the "exceptions" edge to the ReportException entity by IDs.
func (src *ShiftReportCreate) AddExceptionIDs(ids ...uuid.UUID) *ShiftReportCreate {
	src.mutation.AddExceptionIDs(ids...)
	return src
}

// AddExceptions adds the "exceptions" edges to the ReportException entity.
func (src *ShiftReportCreate) AddExceptions(r ...*ReportException) *ShiftReportCreate {
	ids := make([]uuid.UUID, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}
	return src.AddExceptionIDs(ids...)
}

// Mutation returns the ShiftReportMutation object of the builder.
func (src *ShiftReportCreate) Mutation() *ShiftReportMutation {
	return src.mutation
}

// Save creates the ShiftReport in the database.
func (src *ShiftReportCreate) Save(ctx context.Context) (*ShiftReport, error) {
	src.defaults()
	return withHooks(ctx, src.sqlSave, src.mutation, src.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (src *ShiftReportCreate) SaveX(ctx context.Context) *ShiftReport {
	v, err := src.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (src *ShiftReportCreate) Exec(ctx context.Context) error {
	_, err := src.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (src *ShiftReportCreate) ExecX(ctx context.Context) {
	if err := src.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (src *ShiftReportCreate) defaults() {
	if _, ok := src.mutation.UploadCount(); !ok {
		v := shiftreport.DefaultUploadCount
		src.mutation.SetUploadCount(v)
	}
	if _, ok := src.mutation.CreatedAt(); !ok {
		v := shiftreport.DefaultCreatedAt()
		src.mutation.SetCreatedAt(v)
	}
	if _, ok := src.mutation.UpdatedAt(); !ok {
		v := shiftreport.DefaultUpdatedAt()
		src.mutation.SetUpdatedAt(v)
	}
	if _, ok := src.mutation.ID(); !ok {
		v := shiftreport.DefaultID()
		src.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (src *ShiftReportCreate) check() error {
	if _, ok := src.mutation.StoreID(); !ok {
		return &ValidationError{Name: "store_id", err: errors.New(`ent: missing required field "ShiftReport.store_id"`)}
	}
	if _, ok := src.mutation.ReceiptHash(); !ok {
		return &ValidationError{Name: "receipt_hash", err: errors.New(`ent: missing required field "ShiftReport.receipt_hash"`)}
	}
	if v, ok := src.mutation.ReceiptHash(); ok {
		if err := shiftreport.ReceiptHashValidator(v); err != nil {
			return &ValidationError{Name: "receipt_hash", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.receipt_hash": %w`, err)}
		}
	}
	if _, ok := src.mutation.ReportDate(); !ok {
		return &ValidationError{Name: "report_date", err: errors.New(`ent: missing required field "ShiftReport.report_date"`)}
	}
	if _, ok := src.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "ShiftReport.raw_text"`)}
	}
	if _, ok := src.mutation.ExtractionMethod(); !ok {
		return &ValidationError{Name: "extraction_method", err: errors.New(`ent: missing required field "ShiftReport.extraction_method"`)}
	}
	if v, ok := src.mutation.ExtractionMethod(); ok {
		if err := shiftreport.ExtractionMethodValidator(v); err != nil {
			return &ValidationError{Name: "extraction_method", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.extraction_method": %w`, err)}
		}
	}
	if _, ok := src.mutation.ExtractionConfidence(); !ok {
		return &ValidationError{Name: "extraction_confidence", err: errors.New(`ent: missing required field "ShiftReport.extraction_confidence"`)}
	}
	if v, ok := src.mutation.ExtractionConfidence(); ok {
		if err := shiftreport.ExtractionConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "extraction_confidence", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.extraction_confidence": %w`, err)}
		}
	}
	if _, ok := src.mutation.UploadCount(); !ok {
		return &ValidationError{Name: "upload_count", err: errors.New(`ent: missing required field "ShiftReport.upload_count"`)}
	}
	if v, ok := src.mutation.UploadCount(); ok {
		if err := shiftreport.UploadCountValidator(v); err != nil {
			return &ValidationError{Name: "upload_count", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.upload_count": %w`, err)}
		}
	}
	if _, ok := src.mutation.LastUploadReason(); !ok {
		return &ValidationError{Name: "last_upload_reason", err: errors.New(`ent: missing required field "ShiftReport.last_upload_reason"`)}
	}
	if v, ok := src.mutation.LastUploadReason(); ok {
		if err := shiftreport.LastUploadReasonValidator(v); err != nil {
			return &ValidationError{Name: "last_upload_reason", err: fmt.Errorf(`ent: validator failed for field "ShiftReport.last_upload_reason": %w`, err)}
		}
	}
	if _, ok := src.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ShiftReport.created_at"`)}
	}
	if _, ok := src.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ShiftReport.updated_at"`)}
	}
	if _, ok := src.mutation.StoreID(); !ok {
		return &ValidationError{Name: "store", err: errors.New(`ent: missing required edge "ShiftReport.store"`)}
	}
	return nil
}

func (src *ShiftReportCreate) sqlSave(ctx context.Context) (*ShiftReport, error) {
	if err := src.check(); err != nil {
		return nil, err
	}
	_node, _spec := src.createSpec()
	if err := sqlgraph.CreateNode(ctx, src.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	src.mutation.id = &_node.ID
	src.mutation.done = true
	return _node, nil
}

func (src *ShiftReportCreate) createSpec() (*ShiftReport, *sqlgraph.CreateSpec) {
	var (
		_node = &ShiftReport{config: src.config}
		_spec = sqlgraph.NewCreateSpec(shiftreport.Table, sqlgraph.NewFieldSpec(shiftreport.FieldID, field.TypeUUID))
	)
	if id, ok := src.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := src.mutation.ReceiptHash(); ok {
		_spec.SetField(shiftreport.FieldReceiptHash, field.TypeString, value)
		_node.ReceiptHash = value
	}
	if value, ok := src.mutation.ReportDate(); ok {
		_spec.SetField(shiftreport.FieldReportDate, field.TypeTime, value)
		_node.ReportDate = value
	}
	if value, ok := src.mutation.RawText(); ok {
		_spec.SetField(shiftreport.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := src.mutation.ExtractionMethod(); ok {
		_spec.SetField(shiftreport.FieldExtractionMethod, field.TypeString, value)
		_node.ExtractionMethod = value
	}
	if value, ok := src.mutation.ExtractionConfidence(); ok {
		_spec.SetField(shiftreport.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = value
	}
	if value, ok := src.mutation.UploadCount(); ok {
		_spec.SetField(shiftreport.FieldUploadCount, field.TypeInt, value)
		_node.UploadCount = value
	}
	if value, ok := src.mutation.LastUploadReason(); ok {
		_spec.SetField(shiftreport.FieldLastUploadReason, field.TypeString, value)
		_node.LastUploadReason = value
	}
	if value, ok := src.mutation.StoreMetadata(); ok {
		_spec.SetField(shiftreport.FieldStoreMetadata, field.TypeJSON, value)
		_node.StoreMetadata = value
	}
	if value, ok := src.mutation.Balances(); ok {
		_spec.SetField(shiftreport.FieldBalances, field.TypeJSON, value)
		_node.Balances = value
	}
	if value, ok := src.mutation.SalesSummary(); ok {
		_spec.SetField(shiftreport.FieldSalesSummary, field.TypeJSON, value)
		_node.SalesSummary = value
	}
	if value, ok := src.mutation.Fuel(); ok {
		_spec.SetField(shiftreport.FieldFuel, field.TypeJSON, value)
		_node.Fuel = value
	}
	if value, ok := src.mutation.InsideSales(); ok {
		_spec.SetField(shiftreport.FieldInsideSales, field.TypeJSON, value)
		_node.InsideSales = value
	}
	if value, ok := src.mutation.Tenders(); ok {
		_spec.SetField(shiftreport.FieldTenders, field.TypeJSON, value)
		_node.Tenders = value
	}
	if value, ok := src.mutation.SafeActivity(); ok {
		_spec.SetField(shiftreport.FieldSafeActivity, field.TypeJSON, value)
		_node.SafeActivity = value
	}
	if value, ok := src.mutation.CreatedAt(); ok {
		_spec.SetField(shiftreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := src.mutation.UpdatedAt(); ok {
		_spec.SetField(shiftreport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := src.mutation.StoreIDs(); len(nodes) > 0 {
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
		_node.StoreID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := src.mutation.DepartmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := src.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := src.mutation.ExceptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ShiftReportCreateBulk is the builder for creating many ShiftReport entities in bulk.
type ShiftReportCreateBulk struct {
	config
	err      error
	builders []*ShiftReportCreate
}

// Save creates the ShiftReport entities in the database.
func (srcb *ShiftReportCreateBulk) Save(ctx context.Context) ([]*ShiftReport, error) {
	if srcb.err != nil {
		return nil, srcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(srcb.builders))
	nodes := make([]*ShiftReport, len(srcb.builders))
	mutators := make([]Mutator, len(srcb.builders))
	for i := range srcb.builders {
		func(i int, root context.Context) {
			builder := srcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShiftReportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, srcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, srcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, srcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (srcb *ShiftReportCreateBulk) SaveX(ctx context.Context) []*ShiftReport {
	v, err := srcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (srcb *ShiftReportCreateBulk) Exec(ctx context.Context) error {
	_, err := srcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (srcb *ShiftReportCreateBulk) ExecX(ctx context.Context) {
	if err := srcb.Exec(ctx); err != nil {
		panic(err)
	}
}
