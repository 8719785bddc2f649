// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/predicate"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/forecourt-labs/shiftscan/gen/ent/store"
	"github.com/forecourt-labs/shiftscan/internal/extract"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDepartmentSale  = "DepartmentSale"
	TypeItemSale        = "ItemSale"
	TypeReportException = "ReportException"
	TypeShiftReport     = "ShiftReport"
	TypeStore           = "Store"
)

// DepartmentSaleMutation represents an operation that mutates the DepartmentSale nodes in the graph.
type DepartmentSaleMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	quantity      *float64
	addquantity   *float64
	amount        *float64
	addamount     *float64
	confidence    *float32
	addconfidence *float32
	clearedFields map[string]struct{}
	report        *uuid.UUID
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*DepartmentSale, error)
	predicates    []predicate.DepartmentSale
}

var _ ent.Mutation = (*DepartmentSaleMutation)(nil)

// departmentsaleOption allows management of the mutation configuration using functional options.
type departmentsaleOption func(*DepartmentSaleMutation)

// newDepartmentSaleMutation creates new mutation for the DepartmentSale entity.
func newDepartmentSaleMutation(c config, op Op, opts ...departmentsaleOption) *DepartmentSaleMutation {
	m := &DepartmentSaleMutation{
		config:        c,
		op:            op,
		typ:           TypeDepartmentSale,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDepartmentSaleID sets the ID field of the mutation.
func withDepartmentSaleID(id uuid.UUID) departmentsaleOption {
	return func(m *DepartmentSaleMutation) {
		var (
			err   error
			once  sync.Once
			value *DepartmentSale
		)
		m.oldValue = func(ctx context.Context) (*DepartmentSale, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DepartmentSale.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDepartmentSale sets the old DepartmentSale of the mutation.
func withDepartmentSale(node *DepartmentSale) departmentsaleOption {
	return func(m *DepartmentSaleMutation) {
		m.oldValue = func(context.Context) (*DepartmentSale, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DepartmentSaleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DepartmentSaleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DepartmentSale entities.
func (m *DepartmentSaleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DepartmentSaleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DepartmentSaleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DepartmentSale.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *DepartmentSaleMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *DepartmentSaleMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the DepartmentSale entity.
// If the DepartmentSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentSaleMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *DepartmentSaleMutation) ResetReportID() {
	m.report = nil
}

// SetName sets the "name" field.
func (m *DepartmentSaleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DepartmentSaleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DepartmentSale entity.
// If the DepartmentSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentSaleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DepartmentSaleMutation) ResetName() {
	m.name = nil
}

// SetQuantity sets the "quantity" field.
func (m *DepartmentSaleMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *DepartmentSaleMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the DepartmentSale entity.
// If the DepartmentSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentSaleMutation) OldQuantity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *DepartmentSaleMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *DepartmentSaleMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantity clears the value of the "quantity" field.
func (m *DepartmentSaleMutation) ClearQuantity() {
	m.quantity = nil
	m.addquantity = nil
	m.clearedFields[departmentsale.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *DepartmentSaleMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[departmentsale.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *DepartmentSaleMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
	delete(m.clearedFields, departmentsale.FieldQuantity)
}

// SetAmount sets the "amount" field.
func (m *DepartmentSaleMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *DepartmentSaleMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the DepartmentSale entity.
// If the DepartmentSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentSaleMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *DepartmentSaleMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *DepartmentSaleMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *DepartmentSaleMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetConfidence sets the "confidence" field.
func (m *DepartmentSaleMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DepartmentSaleMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DepartmentSale entity.
// If the DepartmentSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DepartmentSaleMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DepartmentSaleMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DepartmentSaleMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DepartmentSaleMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// ClearReport clears the "report" edge to the ShiftReport entity.
func (m *DepartmentSaleMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[departmentsale.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the ShiftReport entity was cleared.
func (m *DepartmentSaleMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *DepartmentSaleMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *DepartmentSaleMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the DepartmentSaleMutation builder.
func (m *DepartmentSaleMutation) Where(ps ...predicate.DepartmentSale) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DepartmentSaleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DepartmentSaleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DepartmentSale, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DepartmentSaleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DepartmentSaleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DepartmentSale).
func (m *DepartmentSaleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DepartmentSaleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.report != nil {
		fields = append(fields, departmentsale.FieldReportID)
	}
	if m.name != nil {
		fields = append(fields, departmentsale.FieldName)
	}
	if m.quantity != nil {
		fields = append(fields, departmentsale.FieldQuantity)
	}
	if m.amount != nil {
		fields = append(fields, departmentsale.FieldAmount)
	}
	if m.confidence != nil {
		fields = append(fields, departmentsale.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DepartmentSaleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case departmentsale.FieldReportID:
		return m.ReportID()
	case departmentsale.FieldName:
		return m.Name()
	case departmentsale.FieldQuantity:
		return m.Quantity()
	case departmentsale.FieldAmount:
		return m.Amount()
	case departmentsale.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DepartmentSaleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case departmentsale.FieldReportID:
		return m.OldReportID(ctx)
	case departmentsale.FieldName:
		return m.OldName(ctx)
	case departmentsale.FieldQuantity:
		return m.OldQuantity(ctx)
	case departmentsale.FieldAmount:
		return m.OldAmount(ctx)
	case departmentsale.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown DepartmentSale field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentSaleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case departmentsale.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case departmentsale.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case departmentsale.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case departmentsale.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case departmentsale.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DepartmentSale field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DepartmentSaleMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, departmentsale.FieldQuantity)
	}
	if m.addamount != nil {
		fields = append(fields, departmentsale.FieldAmount)
	}
	if m.addconfidence != nil {
		fields = append(fields, departmentsale.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DepartmentSaleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case departmentsale.FieldQuantity:
		return m.AddedQuantity()
	case departmentsale.FieldAmount:
		return m.AddedAmount()
	case departmentsale.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DepartmentSaleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case departmentsale.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case departmentsale.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case departmentsale.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DepartmentSale numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DepartmentSaleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(departmentsale.FieldQuantity) {
		fields = append(fields, departmentsale.FieldQuantity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DepartmentSaleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DepartmentSaleMutation) ClearField(name string) error {
	switch name {
	case departmentsale.FieldQuantity:
		m.ClearQuantity()
		return nil
	}
	return fmt.Errorf("unknown DepartmentSale nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DepartmentSaleMutation) ResetField(name string) error {
	switch name {
	case departmentsale.FieldReportID:
		m.ResetReportID()
		return nil
	case departmentsale.FieldName:
		m.ResetName()
		return nil
	case departmentsale.FieldQuantity:
		m.ResetQuantity()
		return nil
	case departmentsale.FieldAmount:
		m.ResetAmount()
		return nil
	case departmentsale.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown DepartmentSale field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DepartmentSaleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, departmentsale.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DepartmentSaleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case departmentsale.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DepartmentSaleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DepartmentSaleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DepartmentSaleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, departmentsale.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DepartmentSaleMutation) EdgeCleared(name string) bool {
	switch name {
	case departmentsale.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DepartmentSaleMutation) ClearEdge(name string) error {
	switch name {
	case departmentsale.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown DepartmentSale unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DepartmentSaleMutation) ResetEdge(name string) error {
	switch name {
	case departmentsale.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown DepartmentSale edge %s", name)
}

// ItemSaleMutation represents an operation that mutates the ItemSale nodes in the graph.
type ItemSaleMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	quantity      *float64
	addquantity   *float64
	amount        *float64
	addamount     *float64
	confidence    *float32
	addconfidence *float32
	clearedFields map[string]struct{}
	report        *uuid.UUID
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*ItemSale, error)
	predicates    []predicate.ItemSale
}

var _ ent.Mutation = (*ItemSaleMutation)(nil)

// itemsaleOption allows management of the mutation configuration using functional options.
type itemsaleOption func(*ItemSaleMutation)

// newItemSaleMutation creates new mutation for the ItemSale entity.
func newItemSaleMutation(c config, op Op, opts ...itemsaleOption) *ItemSaleMutation {
	m := &ItemSaleMutation{
		config:        c,
		op:            op,
		typ:           TypeItemSale,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemSaleID sets the ID field of the mutation.
func withItemSaleID(id uuid.UUID) itemsaleOption {
	return func(m *ItemSaleMutation) {
		var (
			err   error
			once  sync.Once
			value *ItemSale
		)
		m.oldValue = func(ctx context.Context) (*ItemSale, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ItemSale.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItemSale sets the old ItemSale of the mutation.
func withItemSale(node *ItemSale) itemsaleOption {
	return func(m *ItemSaleMutation) {
		m.oldValue = func(context.Context) (*ItemSale, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemSaleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemSaleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ItemSale entities.
func (m *ItemSaleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemSaleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemSaleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ItemSale.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *ItemSaleMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *ItemSaleMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the ItemSale entity.
// If the ItemSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemSaleMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *ItemSaleMutation) ResetReportID() {
	m.report = nil
}

// SetName sets the "name" field.
func (m *ItemSaleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ItemSaleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ItemSale entity.
// If the ItemSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemSaleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ItemSaleMutation) ResetName() {
	m.name = nil
}

// SetQuantity sets the "quantity" field.
func (m *ItemSaleMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ItemSaleMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the ItemSale entity.
// If the ItemSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemSaleMutation) OldQuantity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *ItemSaleMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ItemSaleMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantity clears the value of the "quantity" field.
func (m *ItemSaleMutation) ClearQuantity() {
	m.quantity = nil
	m.addquantity = nil
	m.clearedFields[itemsale.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *ItemSaleMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[itemsale.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ItemSaleMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
	delete(m.clearedFields, itemsale.FieldQuantity)
}

// SetAmount sets the "amount" field.
func (m *ItemSaleMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ItemSaleMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the ItemSale entity.
// If the ItemSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemSaleMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ItemSaleMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ItemSaleMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *ItemSaleMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetConfidence sets the "confidence" field.
func (m *ItemSaleMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ItemSaleMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ItemSale entity.
// If the ItemSale object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemSaleMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ItemSaleMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ItemSaleMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ItemSaleMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// ClearReport clears the "report" edge to the ShiftReport entity.
func (m *ItemSaleMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[itemsale.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the ShiftReport entity was cleared.
func (m *ItemSaleMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *ItemSaleMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *ItemSaleMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the ItemSaleMutation builder.
func (m *ItemSaleMutation) Where(ps ...predicate.ItemSale) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemSaleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemSaleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ItemSale, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemSaleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemSaleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ItemSale).
func (m *ItemSaleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemSaleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.report != nil {
		fields = append(fields, itemsale.FieldReportID)
	}
	if m.name != nil {
		fields = append(fields, itemsale.FieldName)
	}
	if m.quantity != nil {
		fields = append(fields, itemsale.FieldQuantity)
	}
	if m.amount != nil {
		fields = append(fields, itemsale.FieldAmount)
	}
	if m.confidence != nil {
		fields = append(fields, itemsale.FieldConfidence)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemSaleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case itemsale.FieldReportID:
		return m.ReportID()
	case itemsale.FieldName:
		return m.Name()
	case itemsale.FieldQuantity:
		return m.Quantity()
	case itemsale.FieldAmount:
		return m.Amount()
	case itemsale.FieldConfidence:
		return m.Confidence()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemSaleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case itemsale.FieldReportID:
		return m.OldReportID(ctx)
	case itemsale.FieldName:
		return m.OldName(ctx)
	case itemsale.FieldQuantity:
		return m.OldQuantity(ctx)
	case itemsale.FieldAmount:
		return m.OldAmount(ctx)
	case itemsale.FieldConfidence:
		return m.OldConfidence(ctx)
	}
	return nil, fmt.Errorf("unknown ItemSale field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemSaleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case itemsale.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case itemsale.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case itemsale.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case itemsale.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case itemsale.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ItemSale field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemSaleMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, itemsale.FieldQuantity)
	}
	if m.addamount != nil {
		fields = append(fields, itemsale.FieldAmount)
	}
	if m.addconfidence != nil {
		fields = append(fields, itemsale.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemSaleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case itemsale.FieldQuantity:
		return m.AddedQuantity()
	case itemsale.FieldAmount:
		return m.AddedAmount()
	case itemsale.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemSaleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case itemsale.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case itemsale.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case itemsale.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ItemSale numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemSaleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(itemsale.FieldQuantity) {
		fields = append(fields, itemsale.FieldQuantity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemSaleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemSaleMutation) ClearField(name string) error {
	switch name {
	case itemsale.FieldQuantity:
		m.ClearQuantity()
		return nil
	}
	return fmt.Errorf("unknown ItemSale nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemSaleMutation) ResetField(name string) error {
	switch name {
	case itemsale.FieldReportID:
		m.ResetReportID()
		return nil
	case itemsale.FieldName:
		m.ResetName()
		return nil
	case itemsale.FieldQuantity:
		m.ResetQuantity()
		return nil
	case itemsale.FieldAmount:
		m.ResetAmount()
		return nil
	case itemsale.FieldConfidence:
		m.ResetConfidence()
		return nil
	}
	return fmt.Errorf("unknown ItemSale field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemSaleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, itemsale.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemSaleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case itemsale.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemSaleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemSaleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemSaleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, itemsale.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemSaleMutation) EdgeCleared(name string) bool {
	switch name {
	case itemsale.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemSaleMutation) ClearEdge(name string) error {
	switch name {
	case itemsale.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown ItemSale unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemSaleMutation) ResetEdge(name string) error {
	switch name {
	case itemsale.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown ItemSale edge %s", name)
}

// ReportExceptionMutation represents an operation that mutates the ReportException nodes in the graph.
type ReportExceptionMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	_type         *string
	count         *int
	addcount      *int
	amount        *float64
	addamount     *float64
	clearedFields map[string]struct{}
	report        *uuid.UUID
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*ReportException, error)
	predicates    []predicate.ReportException
}

var _ ent.Mutation = (*ReportExceptionMutation)(nil)

// reportexceptionOption allows management of the mutation configuration using functional options.
type reportexceptionOption func(*ReportExceptionMutation)

// newReportExceptionMutation creates new mutation for the ReportException entity.
func newReportExceptionMutation(c config, op Op, opts ...reportexceptionOption) *ReportExceptionMutation {
	m := &ReportExceptionMutation{
		config:        c,
		op:            op,
		typ:           TypeReportException,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportExceptionID sets the ID field of the mutation.
func withReportExceptionID(id uuid.UUID) reportexceptionOption {
	return func(m *ReportExceptionMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportException
		)
		m.oldValue = func(ctx context.Context) (*ReportException, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportException.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportException sets the old ReportException of the mutation.
func withReportException(node *ReportException) reportexceptionOption {
	return func(m *ReportExceptionMutation) {
		m.oldValue = func(context.Context) (*ReportException, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportExceptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportExceptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportException entities.
func (m *ReportExceptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportExceptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportExceptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportException.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *ReportExceptionMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *ReportExceptionMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the ReportException entity.
// If the ReportException object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportExceptionMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *ReportExceptionMutation) ResetReportID() {
	m.report = nil
}

// SetType sets the "type" field.
func (m *ReportExceptionMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ReportExceptionMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the ReportException entity.
// If the ReportException object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportExceptionMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ReportExceptionMutation) ResetType() {
	m._type = nil
}

// SetCount sets the "count" field.
func (m *ReportExceptionMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *ReportExceptionMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the ReportException entity.
// If the ReportException object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportExceptionMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *ReportExceptionMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *ReportExceptionMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *ReportExceptionMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetAmount sets the "amount" field.
func (m *ReportExceptionMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ReportExceptionMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the ReportException entity.
// If the ReportException object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportExceptionMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *ReportExceptionMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *ReportExceptionMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *ReportExceptionMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[reportexception.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *ReportExceptionMutation) AmountCleared() bool {
	_, ok := m.clearedFields[reportexception.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *ReportExceptionMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, reportexception.FieldAmount)
}

// ClearReport clears the "report" edge to the ShiftReport entity.
func (m *ReportExceptionMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[reportexception.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the ShiftReport entity was cleared.
func (m *ReportExceptionMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *ReportExceptionMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *ReportExceptionMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the ReportExceptionMutation builder.
func (m *ReportExceptionMutation) Where(ps ...predicate.ReportException) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportExceptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportExceptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportException, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportExceptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportExceptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportException).
func (m *ReportExceptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportExceptionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.report != nil {
		fields = append(fields, reportexception.FieldReportID)
	}
	if m._type != nil {
		fields = append(fields, reportexception.FieldType)
	}
	if m.count != nil {
		fields = append(fields, reportexception.FieldCount)
	}
	if m.amount != nil {
		fields = append(fields, reportexception.FieldAmount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportExceptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportexception.FieldReportID:
		return m.ReportID()
	case reportexception.FieldType:
		return m.GetType()
	case reportexception.FieldCount:
		return m.Count()
	case reportexception.FieldAmount:
		return m.Amount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportExceptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportexception.FieldReportID:
		return m.OldReportID(ctx)
	case reportexception.FieldType:
		return m.OldType(ctx)
	case reportexception.FieldCount:
		return m.OldCount(ctx)
	case reportexception.FieldAmount:
		return m.OldAmount(ctx)
	}
	return nil, fmt.Errorf("unknown ReportException field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportExceptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportexception.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case reportexception.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case reportexception.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case reportexception.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	}
	return fmt.Errorf("unknown ReportException field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportExceptionMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, reportexception.FieldCount)
	}
	if m.addamount != nil {
		fields = append(fields, reportexception.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportExceptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reportexception.FieldCount:
		return m.AddedCount()
	case reportexception.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportExceptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reportexception.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	case reportexception.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown ReportException numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportExceptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reportexception.FieldAmount) {
		fields = append(fields, reportexception.FieldAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportExceptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportExceptionMutation) ClearField(name string) error {
	switch name {
	case reportexception.FieldAmount:
		m.ClearAmount()
		return nil
	}
	return fmt.Errorf("unknown ReportException nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportExceptionMutation) ResetField(name string) error {
	switch name {
	case reportexception.FieldReportID:
		m.ResetReportID()
		return nil
	case reportexception.FieldType:
		m.ResetType()
		return nil
	case reportexception.FieldCount:
		m.ResetCount()
		return nil
	case reportexception.FieldAmount:
		m.ResetAmount()
		return nil
	}
	return fmt.Errorf("unknown ReportException field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportExceptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, reportexception.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportExceptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reportexception.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportExceptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportExceptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportExceptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, reportexception.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportExceptionMutation) EdgeCleared(name string) bool {
	switch name {
	case reportexception.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportExceptionMutation) ClearEdge(name string) error {
	switch name {
	case reportexception.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown ReportException unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportExceptionMutation) ResetEdge(name string) error {
	switch name {
	case reportexception.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown ReportException edge %s", name)
}

// ShiftReportMutation represents an operation that mutates the ShiftReport nodes in the graph.
type ShiftReportMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	receipt_hash             *string
	report_date              *time.Time
	raw_text                 *string
	extraction_method        *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	upload_count             *int
	addupload_count          *int
	last_upload_reason       *string
	store_metadata           **extract.StoreMetadata
	balances                 **extract.Balances
	sales_summary            **extract.SalesSummary
	fuel                     **extract.Fuel
	inside_sales             **extract.InsideSales
	tenders                  **extract.Tenders
	safe_activity            **extract.SafeActivity
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	store                    *uuid.UUID
	clearedstore             bool
	departments              map[uuid.UUID]struct{}
	removeddepartments       map[uuid.UUID]struct{}
	cleareddepartments       bool
	items                    map[uuid.UUID]struct{}
	removeditems             map[uuid.UUID]struct{}
	cleareditems             bool
	exceptions               map[uuid.UUID]struct{}
	removedexceptions        map[uuid.UUID]struct{}
	clearedexceptions        bool
	done                     bool
	oldValue                 func(context.Context) (*ShiftReport, error)
	predicates               []predicate.ShiftReport
}

var _ ent.Mutation = (*ShiftReportMutation)(nil)

// shiftreportOption allows management of the mutation configuration using functional options.
type shiftreportOption func(*ShiftReportMutation)

// newShiftReportMutation creates new mutation for the ShiftReport entity.
func newShiftReportMutation(c config, op Op, opts ...shiftreportOption) *ShiftReportMutation {
	m := &ShiftReportMutation{
		config:        c,
		op:            op,
		typ:           TypeShiftReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShiftReportID sets the ID field of the mutation.
func withShiftReportID(id uuid.UUID) shiftreportOption {
	return func(m *ShiftReportMutation) {
		var (
			err   error
			once  sync.Once
			value *ShiftReport
		)
		m.oldValue = func(ctx context.Context) (*ShiftReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ShiftReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShiftReport sets the old ShiftReport of the mutation.
func withShiftReport(node *ShiftReport) shiftreportOption {
	return func(m *ShiftReportMutation) {
		m.oldValue = func(context.Context) (*ShiftReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShiftReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShiftReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ShiftReport entities.
func (m *ShiftReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShiftReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShiftReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ShiftReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStoreID sets the "store_id" field.
func (m *ShiftReportMutation) SetStoreID(u uuid.UUID) {
	m.store = &u
}

// StoreID returns the value of the "store_id" field in the mutation.
func (m *ShiftReportMutation) StoreID() (r uuid.UUID, exists bool) {
	v := m.store
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreID returns the old "store_id" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldStoreID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreID: %w", err)
	}
	return oldValue.StoreID, nil
}

// ResetStoreID resets all changes to the "store_id" field.
func (m *ShiftReportMutation) ResetStoreID() {
	m.store = nil
}

// SetReceiptHash sets the "receipt_hash" field.
func (m *ShiftReportMutation) SetReceiptHash(s string) {
	m.receipt_hash = &s
}

// ReceiptHash returns the value of the "receipt_hash" field in the mutation.
func (m *ShiftReportMutation) ReceiptHash() (r string, exists bool) {
	v := m.receipt_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptHash returns the old "receipt_hash" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldReceiptHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptHash: %w", err)
	}
	return oldValue.ReceiptHash, nil
}

// ResetReceiptHash resets all changes to the "receipt_hash" field.
func (m *ShiftReportMutation) ResetReceiptHash() {
	m.receipt_hash = nil
}

// SetReportDate sets the "report_date" field.
func (m *ShiftReportMutation) SetReportDate(t time.Time) {
	m.report_date = &t
}

// ReportDate returns the value of the "report_date" field in the mutation.
func (m *ShiftReportMutation) ReportDate() (r time.Time, exists bool) {
	v := m.report_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReportDate returns the old "report_date" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldReportDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportDate: %w", err)
	}
	return oldValue.ReportDate, nil
}

// ResetReportDate resets all changes to the "report_date" field.
func (m *ShiftReportMutation) ResetReportDate() {
	m.report_date = nil
}

// SetRawText sets the "raw_text" field.
func (m *ShiftReportMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ShiftReportMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ShiftReportMutation) ResetRawText() {
	m.raw_text = nil
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *ShiftReportMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *ShiftReportMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldExtractionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *ShiftReportMutation) ResetExtractionMethod() {
	m.extraction_method = nil
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ShiftReportMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ShiftReportMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldExtractionConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ShiftReportMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ShiftReportMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ShiftReportMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
}

// SetUploadCount sets the "upload_count" field.
func (m *ShiftReportMutation) SetUploadCount(i int) {
	m.upload_count = &i
	m.addupload_count = nil
}

// UploadCount returns the value of the "upload_count" field in the mutation.
func (m *ShiftReportMutation) UploadCount() (r int, exists bool) {
	v := m.upload_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadCount returns the old "upload_count" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldUploadCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadCount: %w", err)
	}
	return oldValue.UploadCount, nil
}

// AddUploadCount adds i to the "upload_count" field.
func (m *ShiftReportMutation) AddUploadCount(i int) {
	if m.addupload_count != nil {
		*m.addupload_count += i
	} else {
		m.addupload_count = &i
	}
}

// AddedUploadCount returns the value that was added to the "upload_count" field in this mutation.
func (m *ShiftReportMutation) AddedUploadCount() (r int, exists bool) {
	v := m.addupload_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUploadCount resets all changes to the "upload_count" field.
func (m *ShiftReportMutation) ResetUploadCount() {
	m.upload_count = nil
	m.addupload_count = nil
}

// SetLastUploadReason sets the "last_upload_reason" field.
func (m *ShiftReportMutation) SetLastUploadReason(s string) {
	m.last_upload_reason = &s
}

// LastUploadReason returns the value of the "last_upload_reason" field in the mutation.
func (m *ShiftReportMutation) LastUploadReason() (r string, exists bool) {
	v := m.last_upload_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUploadReason returns the old "last_upload_reason" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldLastUploadReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUploadReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUploadReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUploadReason: %w", err)
	}
	return oldValue.LastUploadReason, nil
}

// ResetLastUploadReason resets all changes to the "last_upload_reason" field.
func (m *ShiftReportMutation) ResetLastUploadReason() {
	m.last_upload_reason = nil
}

// SetStoreMetadata sets the "store_metadata" field.
func (m *ShiftReportMutation) SetStoreMetadata(em *extract.StoreMetadata) {
	m.store_metadata = &em
}

// StoreMetadata returns the value of the "store_metadata" field in the mutation.
func (m *ShiftReportMutation) StoreMetadata() (r *extract.StoreMetadata, exists bool) {
	v := m.store_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreMetadata returns the old "store_metadata" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldStoreMetadata(ctx context.Context) (v *extract.StoreMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreMetadata: %w", err)
	}
	return oldValue.StoreMetadata, nil
}

// ClearStoreMetadata clears the value of the "store_metadata" field.
func (m *ShiftReportMutation) ClearStoreMetadata() {
	m.store_metadata = nil
	m.clearedFields[shiftreport.FieldStoreMetadata] = struct{}{}
}

// StoreMetadataCleared returns if the "store_metadata" field was cleared in this mutation.
func (m *ShiftReportMutation) StoreMetadataCleared() bool {
	_, ok := m.clearedFields[shiftreport.FieldStoreMetadata]
	return ok
}

// ResetStoreMetadata resets all changes to the "store_metadata" field.
func (m *ShiftReportMutation) ResetStoreMetadata() {
	m.store_metadata = nil
	delete(m.clearedFields, shiftreport.FieldStoreMetadata)
}

// SetBalances sets the "balances" field.
func (m *ShiftReportMutation) SetBalances(e *extract.Balances) {
	m.balances = &e
}

// Balances returns the value of the "balances" field in the mutation.
func (m *ShiftReportMutation) Balances() (r *extract.Balances, exists bool) {
	v := m.balances
	if v == nil {
		return
	}
	return *v, true
}

// OldBalances returns the old "balances" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldBalances(ctx context.Context) (v *extract.Balances, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalances is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalances requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalances: %w", err)
	}
	return oldValue.Balances, nil
}

// ClearBalances clears the value of the "balances" field.
func (m *ShiftReportMutation) ClearBalances() {
	m.balances = nil
	m.clearedFields[shiftreport.FieldBalances] = struct{}{}
}

// BalancesCleared returns if the "balances" field was cleared in this mutation.
func (m *ShiftReportMutation) BalancesCleared() bool {
	_, ok := m.clearedFields[shiftreport.FieldBalances]
	return ok
}

// ResetBalances resets all changes to the "balances" field.
func (m *ShiftReportMutation) ResetBalances() {
	m.balances = nil
	delete(m.clearedFields, shiftreport.FieldBalances)
}

// SetSalesSummary sets the "sales_summary" field.
func (m *ShiftReportMutation) SetSalesSummary(es *extract.SalesSummary) {
	m.sales_summary = &es
}

// SalesSummary returns the value of the "sales_summary" field in the mutation.
func (m *ShiftReportMutation) SalesSummary() (r *extract.SalesSummary, exists bool) {
	v := m.sales_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSalesSummary returns the old "sales_summary" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldSalesSummary(ctx context.Context) (v *extract.SalesSummary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalesSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalesSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalesSummary: %w", err)
	}
	return oldValue.SalesSummary, nil
}

// ClearSalesSummary clears the value of the "sales_summary" field.
func (m *ShiftReportMutation) ClearSalesSummary() {
	m.sales_summary = nil
	m.clearedFields[shiftreport.FieldSalesSummary] = struct{}{}
}

// SalesSummaryCleared returns if the "sales_summary" field was cleared in this mutation.
func (m *ShiftReportMutation) SalesSummaryCleared() bool {
	_, ok := m.clearedFields[shiftreport.FieldSalesSummary]
	return ok
}

// ResetSalesSummary resets all changes to the "sales_summary" field.
func (m *ShiftReportMutation) ResetSalesSummary() {
	m.sales_summary = nil
	delete(m.clearedFields, shiftreport.FieldSalesSummary)
}

// SetFuel sets the "fuel" field.
func (m *ShiftReportMutation) SetFuel(e *extract.Fuel) {
	m.fuel = &e
}

// Fuel returns the value of the "fuel" field in the mutation.
func (m *ShiftReportMutation) Fuel() (r *extract.Fuel, exists bool) {
	v := m.fuel
	if v == nil {
		return
	}
	return *v, true
}

// OldFuel returns the old "fuel" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldFuel(ctx context.Context) (v *extract.Fuel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFuel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFuel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFuel: %w", err)
	}
	return oldValue.Fuel, nil
}

// ClearFuel clears the value of the "fuel" field.
func (m *ShiftReportMutation) ClearFuel() {
	m.fuel = nil
	m.clearedFields[shiftreport.FieldFuel] = struct{}{}
}

// FuelCleared returns if the "fuel" field was cleared in this mutation.
func (m *ShiftReportMutation) FuelCleared() bool {
	_, ok := m.clearedFields[shiftreport.FieldFuel]
	return ok
}

// ResetFuel resets all changes to the "fuel" field.
func (m *ShiftReportMutation) ResetFuel() {
	m.fuel = nil
	delete(m.clearedFields, shiftreport.FieldFuel)
}

// SetInsideSales sets the "inside_sales" field.
func (m *ShiftReportMutation) SetInsideSales(es *extract.InsideSales) {
	m.inside_sales = &es
}

// InsideSales returns the value of the "inside_sales" field in the mutation.
func (m *ShiftReportMutation) InsideSales() (r *extract.InsideSales, exists bool) {
	v := m.inside_sales
	if v == nil {
		return
	}
	return *v, true
}

// OldInsideSales returns the old "inside_sales" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldInsideSales(ctx context.Context) (v *extract.InsideSales, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsideSales is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsideSales requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsideSales: %w", err)
	}
	return oldValue.InsideSales, nil
}

// ClearInsideSales clears the value of the "inside_sales" field.
func (m *ShiftReportMutation) ClearInsideSales() {
	m.inside_sales = nil
	m.clearedFields[shiftreport.FieldInsideSales] = struct{}{}
}

// InsideSalesCleared returns if the "inside_sales" field was cleared in this mutation.
func (m *ShiftReportMutation) InsideSalesCleared() bool {
	_, ok := m.clearedFields[shiftreport.FieldInsideSales]
	return ok
}

// ResetInsideSales resets all changes to the "inside_sales" field.
func (m *ShiftReportMutation) ResetInsideSales() {
	m.inside_sales = nil
	delete(m.clearedFields, shiftreport.FieldInsideSales)
}

// SetTenders sets the "tenders" field.
func (m *ShiftReportMutation) SetTenders(e *extract.Tenders) {
	m.tenders = &e
}

// Tenders returns the value of the "tenders" field in the mutation.
func (m *ShiftReportMutation) Tenders() (r *extract.Tenders, exists bool) {
	v := m.tenders
	if v == nil {
		return
	}
	return *v, true
}

// OldTenders returns the old "tenders" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldTenders(ctx context.Context) (v *extract.Tenders, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenders: %w", err)
	}
	return oldValue.Tenders, nil
}

// ClearTenders clears the value of the "tenders" field.
func (m *ShiftReportMutation) ClearTenders() {
	m.tenders = nil
	m.clearedFields[shiftreport.FieldTenders] = struct{}{}
}

// TendersCleared returns if the "tenders" field was cleared in this mutation.
func (m *ShiftReportMutation) TendersCleared() bool {
	_, ok := m.clearedFields[shiftreport.FieldTenders]
	return ok
}

// ResetTenders resets all changes to the "tenders" field.
func (m *ShiftReportMutation) ResetTenders() {
	m.tenders = nil
	delete(m.clearedFields, shiftreport.FieldTenders)
}

// SetSafeActivity sets the "safe_activity" field.
func (m *ShiftReportMutation) SetSafeActivity(ea *extract.SafeActivity) {
	m.safe_activity = &ea
}

// SafeActivity returns the value of the "safe_activity" field in the mutation.
func (m *ShiftReportMutation) SafeActivity() (r *extract.SafeActivity, exists bool) {
	v := m.safe_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldSafeActivity returns the old "safe_activity" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldSafeActivity(ctx context.Context) (v *extract.SafeActivity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSafeActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSafeActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSafeActivity: %w", err)
	}
	return oldValue.SafeActivity, nil
}

// ClearSafeActivity clears the value of the "safe_activity" field.
func (m *ShiftReportMutation) ClearSafeActivity() {
	m.safe_activity = nil
	m.clearedFields[shiftreport.FieldSafeActivity] = struct{}{}
}

// SafeActivityCleared returns if the "safe_activity" field was cleared in this mutation.
func (m *ShiftReportMutation) SafeActivityCleared() bool {
	_, ok := m.clearedFields[shiftreport.FieldSafeActivity]
	return ok
}

// ResetSafeActivity resets all changes to the "safe_activity" field.
func (m *ShiftReportMutation) ResetSafeActivity() {
	m.safe_activity = nil
	delete(m.clearedFields, shiftreport.FieldSafeActivity)
}

// SetCreatedAt sets the "created_at" field.
func (m *ShiftReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ShiftReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ShiftReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ShiftReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ShiftReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ShiftReport entity.
// If the ShiftReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShiftReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ShiftReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearStore clears the "store" edge to the Store entity.
func (m *ShiftReportMutation) ClearStore() {
	m.clearedstore = true
	m.clearedFields[shiftreport.FieldStoreID] = struct{}{}
}

// StoreCleared reports if the "store" edge to the Store entity was cleared.
func (m *ShiftReportMutation) StoreCleared() bool {
	return m.clearedstore
}

// StoreIDs returns the "store" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StoreID instead. It exists only for internal usage by the builders.
func (m *ShiftReportMutation) StoreIDs() (ids []uuid.UUID) {
	if id := m.store; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStore resets all changes to the "store" edge.
func (m *ShiftReportMutation) ResetStore() {
	m.store = nil
	m.clearedstore = false
}

// AddDepartmentIDs adds the "departments" edge to the DepartmentSale entity by ids.
func (m *ShiftReportMutation) AddDepartmentIDs(ids ...uuid.UUID) {
	if m.departments == nil {
		m.departments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.departments[ids[i]] = struct{}{}
	}
}

// ClearDepartments clears the "departments" edge to the DepartmentSale entity.
func (m *ShiftReportMutation) ClearDepartments() {
	m.cleareddepartments = true
}

// DepartmentsCleared reports if the "departments" edge to the DepartmentSale entity was cleared.
func (m *ShiftReportMutation) DepartmentsCleared() bool {
	return m.cleareddepartments
}

// RemoveDepartmentIDs removes the "departments" edge to the DepartmentSale entity by IDs.
func (m *ShiftReportMutation) RemoveDepartmentIDs(ids ...uuid.UUID) {
	if m.removeddepartments == nil {
		m.removeddepartments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.departments, ids[i])
		m.removeddepartments[ids[i]] = struct{}{}
	}
}

// RemovedDepartments returns the removed IDs of the "departments" edge to the DepartmentSale entity.
func (m *ShiftReportMutation) RemovedDepartmentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddepartments {
		ids = append(ids, id)
	}
	return
}

// DepartmentsIDs returns the "departments" edge IDs in the mutation.
func (m *ShiftReportMutation) DepartmentsIDs() (ids []uuid.UUID) {
	for id := range m.departments {
		ids = append(ids, id)
	}
	return
}

// ResetDepartments resets all changes to the "departments" edge.
func (m *ShiftReportMutation) ResetDepartments() {
	m.departments = nil
	m.cleareddepartments = false
	m.removeddepartments = nil
}

// AddItemIDs adds the "items" edge to the ItemSale entity by ids.
func (m *ShiftReportMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the ItemSale entity.
func (m *ShiftReportMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the ItemSale entity was cleared.
func (m *ShiftReportMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the ItemSale entity by IDs.
func (m *ShiftReportMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the ItemSale entity.
func (m *ShiftReportMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *ShiftReportMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *ShiftReportMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddExceptionIDs adds the "exceptions" edge to the ReportException entity by ids.
func (m *ShiftReportMutation) AddExceptionIDs(ids ...uuid.UUID) {
	if m.exceptions == nil {
		m.exceptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.exceptions[ids[i]] = struct{}{}
	}
}

// ClearExceptions clears the "exceptions" edge to the ReportException entity.
func (m *ShiftReportMutation) ClearExceptions() {
	m.clearedexceptions = true
}

// ExceptionsCleared reports if the "exceptions" edge to the ReportException entity was cleared.
func (m *ShiftReportMutation) ExceptionsCleared() bool {
	return m.clearedexceptions
}

// RemoveExceptionIDs removes the "exceptions" edge to the ReportException entity by IDs.
func (m *ShiftReportMutation) RemoveExceptionIDs(ids ...uuid.UUID) {
	if m.removedexceptions == nil {
		m.removedexceptions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.exceptions, ids[i])
		m.removedexceptions[ids[i]] = struct{}{}
	}
}

// RemovedExceptions returns the removed IDs of the "exceptions" edge to the ReportException entity.
func (m *ShiftReportMutation) RemovedExceptionsIDs() (ids []uuid.UUID) {
	for id := range m.removedexceptions {
		ids = append(ids, id)
	}
	return
}

// ExceptionsIDs returns the "exceptions" edge IDs in the mutation.
func (m *ShiftReportMutation) ExceptionsIDs() (ids []uuid.UUID) {
	for id := range m.exceptions {
		ids = append(ids, id)
	}
	return
}

// ResetExceptions resets all changes to the "exceptions" edge.
func (m *ShiftReportMutation) ResetExceptions() {
	m.exceptions = nil
	m.clearedexceptions = false
	m.removedexceptions = nil
}

// Where appends a list predicates to the ShiftReportMutation builder.
func (m *ShiftReportMutation) Where(ps ...predicate.ShiftReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShiftReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShiftReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ShiftReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShiftReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShiftReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ShiftReport).
func (m *ShiftReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShiftReportMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.store != nil {
		fields = append(fields, shiftreport.FieldStoreID)
	}
	if m.receipt_hash != nil {
		fields = append(fields, shiftreport.FieldReceiptHash)
	}
	if m.report_date != nil {
		fields = append(fields, shiftreport.FieldReportDate)
	}
	if m.raw_text != nil {
		fields = append(fields, shiftreport.FieldRawText)
	}
	if m.extraction_method != nil {
		fields = append(fields, shiftreport.FieldExtractionMethod)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, shiftreport.FieldExtractionConfidence)
	}
	if m.upload_count != nil {
		fields = append(fields, shiftreport.FieldUploadCount)
	}
	if m.last_upload_reason != nil {
		fields = append(fields, shiftreport.FieldLastUploadReason)
	}
	if m.store_metadata != nil {
		fields = append(fields, shiftreport.FieldStoreMetadata)
	}
	if m.balances != nil {
		fields = append(fields, shiftreport.FieldBalances)
	}
	if m.sales_summary != nil {
		fields = append(fields, shiftreport.FieldSalesSummary)
	}
	if m.fuel != nil {
		fields = append(fields, shiftreport.FieldFuel)
	}
	if m.inside_sales != nil {
		fields = append(fields, shiftreport.FieldInsideSales)
	}
	if m.tenders != nil {
		fields = append(fields, shiftreport.FieldTenders)
	}
	if m.safe_activity != nil {
		fields = append(fields, shiftreport.FieldSafeActivity)
	}
	if m.created_at != nil {
		fields = append(fields, shiftreport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, shiftreport.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShiftReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case shiftreport.FieldStoreID:
		return m.StoreID()
	case shiftreport.FieldReceiptHash:
		return m.ReceiptHash()
	case shiftreport.FieldReportDate:
		return m.ReportDate()
	case shiftreport.FieldRawText:
		return m.RawText()
	case shiftreport.FieldExtractionMethod:
		return m.ExtractionMethod()
	case shiftreport.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case shiftreport.FieldUploadCount:
		return m.UploadCount()
	case shiftreport.FieldLastUploadReason:
		return m.LastUploadReason()
	case shiftreport.FieldStoreMetadata:
		return m.StoreMetadata()
	case shiftreport.FieldBalances:
		return m.Balances()
	case shiftreport.FieldSalesSummary:
		return m.SalesSummary()
	case shiftreport.FieldFuel:
		return m.Fuel()
	case shiftreport.FieldInsideSales:
		return m.InsideSales()
	case shiftreport.FieldTenders:
		return m.Tenders()
	case shiftreport.FieldSafeActivity:
		return m.SafeActivity()
	case shiftreport.FieldCreatedAt:
		return m.CreatedAt()
	case shiftreport.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShiftReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case shiftreport.FieldStoreID:
		return m.OldStoreID(ctx)
	case shiftreport.FieldReceiptHash:
		return m.OldReceiptHash(ctx)
	case shiftreport.FieldReportDate:
		return m.OldReportDate(ctx)
	case shiftreport.FieldRawText:
		return m.OldRawText(ctx)
	case shiftreport.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case shiftreport.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case shiftreport.FieldUploadCount:
		return m.OldUploadCount(ctx)
	case shiftreport.FieldLastUploadReason:
		return m.OldLastUploadReason(ctx)
	case shiftreport.FieldStoreMetadata:
		return m.OldStoreMetadata(ctx)
	case shiftreport.FieldBalances:
		return m.OldBalances(ctx)
	case shiftreport.FieldSalesSummary:
		return m.OldSalesSummary(ctx)
	case shiftreport.FieldFuel:
		return m.OldFuel(ctx)
	case shiftreport.FieldInsideSales:
		return m.OldInsideSales(ctx)
	case shiftreport.FieldTenders:
		return m.OldTenders(ctx)
	case shiftreport.FieldSafeActivity:
		return m.OldSafeActivity(ctx)
	case shiftreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case shiftreport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ShiftReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShiftReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case shiftreport.FieldStoreID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreID(v)
		return nil
	case shiftreport.FieldReceiptHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptHash(v)
		return nil
	case shiftreport.FieldReportDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportDate(v)
		return nil
	case shiftreport.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case shiftreport.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case shiftreport.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case shiftreport.FieldUploadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadCount(v)
		return nil
	case shiftreport.FieldLastUploadReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUploadReason(v)
		return nil
	case shiftreport.FieldStoreMetadata:
		v, ok := value.(*extract.StoreMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreMetadata(v)
		return nil
	case shiftreport.FieldBalances:
		v, ok := value.(*extract.Balances)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalances(v)
		return nil
	case shiftreport.FieldSalesSummary:
		v, ok := value.(*extract.SalesSummary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalesSummary(v)
		return nil
	case shiftreport.FieldFuel:
		v, ok := value.(*extract.Fuel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFuel(v)
		return nil
	case shiftreport.FieldInsideSales:
		v, ok := value.(*extract.InsideSales)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsideSales(v)
		return nil
	case shiftreport.FieldTenders:
		v, ok := value.(*extract.Tenders)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenders(v)
		return nil
	case shiftreport.FieldSafeActivity:
		v, ok := value.(*extract.SafeActivity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSafeActivity(v)
		return nil
	case shiftreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case shiftreport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ShiftReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShiftReportMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, shiftreport.FieldExtractionConfidence)
	}
	if m.addupload_count != nil {
		fields = append(fields, shiftreport.FieldUploadCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShiftReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case shiftreport.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	case shiftreport.FieldUploadCount:
		return m.AddedUploadCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShiftReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case shiftreport.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	case shiftreport.FieldUploadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUploadCount(v)
		return nil
	}
	return fmt.Errorf("unknown ShiftReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShiftReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(shiftreport.FieldStoreMetadata) {
		fields = append(fields, shiftreport.FieldStoreMetadata)
	}
	if m.FieldCleared(shiftreport.FieldBalances) {
		fields = append(fields, shiftreport.FieldBalances)
	}
	if m.FieldCleared(shiftreport.FieldSalesSummary) {
		fields = append(fields, shiftreport.FieldSalesSummary)
	}
	if m.FieldCleared(shiftreport.FieldFuel) {
		fields = append(fields, shiftreport.FieldFuel)
	}
	if m.FieldCleared(shiftreport.FieldInsideSales) {
		fields = append(fields, shiftreport.FieldInsideSales)
	}
	if m.FieldCleared(shiftreport.FieldTenders) {
		fields = append(fields, shiftreport.FieldTenders)
	}
	if m.FieldCleared(shiftreport.FieldSafeActivity) {
		fields = append(fields, shiftreport.FieldSafeActivity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShiftReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShiftReportMutation) ClearField(name string) error {
	switch name {
	case shiftreport.FieldStoreMetadata:
		m.ClearStoreMetadata()
		return nil
	case shiftreport.FieldBalances:
		m.ClearBalances()
		return nil
	case shiftreport.FieldSalesSummary:
		m.ClearSalesSummary()
		return nil
	case shiftreport.FieldFuel:
		m.ClearFuel()
		return nil
	case shiftreport.FieldInsideSales:
		m.ClearInsideSales()
		return nil
	case shiftreport.FieldTenders:
		m.ClearTenders()
		return nil
	case shiftreport.FieldSafeActivity:
		m.ClearSafeActivity()
		return nil
	}
	return fmt.Errorf("unknown ShiftReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShiftReportMutation) ResetField(name string) error {
	switch name {
	case shiftreport.FieldStoreID:
		m.ResetStoreID()
		return nil
	case shiftreport.FieldReceiptHash:
		m.ResetReceiptHash()
		return nil
	case shiftreport.FieldReportDate:
		m.ResetReportDate()
		return nil
	case shiftreport.FieldRawText:
		m.ResetRawText()
		return nil
	case shiftreport.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case shiftreport.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case shiftreport.FieldUploadCount:
		m.ResetUploadCount()
		return nil
	case shiftreport.FieldLastUploadReason:
		m.ResetLastUploadReason()
		return nil
	case shiftreport.FieldStoreMetadata:
		m.ResetStoreMetadata()
		return nil
	case shiftreport.FieldBalances:
		m.ResetBalances()
		return nil
	case shiftreport.FieldSalesSummary:
		m.ResetSalesSummary()
		return nil
	case shiftreport.FieldFuel:
		m.ResetFuel()
		return nil
	case shiftreport.FieldInsideSales:
		m.ResetInsideSales()
		return nil
	case shiftreport.FieldTenders:
		m.ResetTenders()
		return nil
	case shiftreport.FieldSafeActivity:
		m.ResetSafeActivity()
		return nil
	case shiftreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case shiftreport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ShiftReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShiftReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.store != nil {
		edges = append(edges, shiftreport.EdgeStore)
	}
	if m.departments != nil {
		edges = append(edges, shiftreport.EdgeDepartments)
	}
	if m.items != nil {
		edges = append(edges, shiftreport.EdgeItems)
	}
	if m.exceptions != nil {
		edges = append(edges, shiftreport.EdgeExceptions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShiftReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case shiftreport.EdgeStore:
		if id := m.store; id != nil {
			return []ent.Value{*id}
		}
	case shiftreport.EdgeDepartments:
		ids := make([]ent.Value, 0, len(m.departments))
		for id := range m.departments {
			ids = append(ids, id)
		}
		return ids
	case shiftreport.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case shiftreport.EdgeExceptions:
		ids := make([]ent.Value, 0, len(m.exceptions))
		for id := range m.exceptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShiftReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeddepartments != nil {
		edges = append(edges, shiftreport.EdgeDepartments)
	}
	if m.removeditems != nil {
		edges = append(edges, shiftreport.EdgeItems)
	}
	if m.removedexceptions != nil {
		edges = append(edges, shiftreport.EdgeExceptions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShiftReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case shiftreport.EdgeDepartments:
		ids := make([]ent.Value, 0, len(m.removeddepartments))
		for id := range m.removeddepartments {
			ids = append(ids, id)
		}
		return ids
	case shiftreport.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case shiftreport.EdgeExceptions:
		ids := make([]ent.Value, 0, len(m.removedexceptions))
		for id := range m.removedexceptions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShiftReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedstore {
		edges = append(edges, shiftreport.EdgeStore)
	}
	if m.cleareddepartments {
		edges = append(edges, shiftreport.EdgeDepartments)
	}
	if m.cleareditems {
		edges = append(edges, shiftreport.EdgeItems)
	}
	if m.clearedexceptions {
		edges = append(edges, shiftreport.EdgeExceptions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShiftReportMutation) EdgeCleared(name string) bool {
	switch name {
	case shiftreport.EdgeStore:
		return m.clearedstore
	case shiftreport.EdgeDepartments:
		return m.cleareddepartments
	case shiftreport.EdgeItems:
		return m.cleareditems
	case shiftreport.EdgeExceptions:
		return m.clearedexceptions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShiftReportMutation) ClearEdge(name string) error {
	switch name {
	case shiftreport.EdgeStore:
		m.ClearStore()
		return nil
	}
	return fmt.Errorf("unknown ShiftReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShiftReportMutation) ResetEdge(name string) error {
	switch name {
	case shiftreport.EdgeStore:
		m.ResetStore()
		return nil
	case shiftreport.EdgeDepartments:
		m.ResetDepartments()
		return nil
	case shiftreport.EdgeItems:
		m.ResetItems()
		return nil
	case shiftreport.EdgeExceptions:
		m.ResetExceptions()
		return nil
	}
	return fmt.Errorf("unknown ShiftReport edge %s", name)
}

// StoreMutation represents an operation that mutates the Store nodes in the graph.
type StoreMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	timezone       *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	reports        map[uuid.UUID]struct{}
	removedreports map[uuid.UUID]struct{}
	clearedreports bool
	done           bool
	oldValue       func(context.Context) (*Store, error)
	predicates     []predicate.Store
}

var _ ent.Mutation = (*StoreMutation)(nil)

// storeOption allows management of the mutation configuration using functional options.
type storeOption func(*StoreMutation)

// newStoreMutation creates new mutation for the Store entity.
func newStoreMutation(c config, op Op, opts ...storeOption) *StoreMutation {
	m := &StoreMutation{
		config:        c,
		op:            op,
		typ:           TypeStore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoreID sets the ID field of the mutation.
func withStoreID(id uuid.UUID) storeOption {
	return func(m *StoreMutation) {
		var (
			err   error
			once  sync.Once
			value *Store
		)
		m.oldValue = func(ctx context.Context) (*Store, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Store.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStore sets the old Store of the mutation.
func withStore(node *Store) storeOption {
	return func(m *StoreMutation) {
		m.oldValue = func(context.Context) (*Store, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Store entities.
func (m *StoreMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoreMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoreMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Store.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *StoreMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StoreMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Store entity.
// If the Store object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoreMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StoreMutation) ResetName() {
	m.name = nil
}

// SetTimezone sets the "timezone" field.
func (m *StoreMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *StoreMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Store entity.
// If the Store object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoreMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *StoreMutation) ResetTimezone() {
	m.timezone = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Store entity.
// If the Store object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Store entity.
// If the Store object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddReportIDs adds the "reports" edge to the ShiftReport entity by ids.
func (m *StoreMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the ShiftReport entity.
func (m *StoreMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the ShiftReport entity was cleared.
func (m *StoreMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the ShiftReport entity by IDs.
func (m *StoreMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the ShiftReport entity.
func (m *StoreMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *StoreMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *StoreMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the StoreMutation builder.
func (m *StoreMutation) Where(ps ...predicate.Store) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Store, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Store).
func (m *StoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoreMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, store.FieldName)
	}
	if m.timezone != nil {
		fields = append(fields, store.FieldTimezone)
	}
	if m.created_at != nil {
		fields = append(fields, store.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, store.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case store.FieldName:
		return m.Name()
	case store.FieldTimezone:
		return m.Timezone()
	case store.FieldCreatedAt:
		return m.CreatedAt()
	case store.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case store.FieldName:
		return m.OldName(ctx)
	case store.FieldTimezone:
		return m.OldTimezone(ctx)
	case store.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case store.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Store field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case store.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case store.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case store.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case store.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Store field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoreMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoreMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Store numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Store nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoreMutation) ResetField(name string) error {
	switch name {
	case store.FieldName:
		m.ResetName()
		return nil
	case store.FieldTimezone:
		m.ResetTimezone()
		return nil
	case store.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case store.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Store field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.reports != nil {
		edges = append(edges, store.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case store.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedreports != nil {
		edges = append(edges, store.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoreMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case store.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreports {
		edges = append(edges, store.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoreMutation) EdgeCleared(name string) bool {
	switch name {
	case store.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoreMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Store unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoreMutation) ResetEdge(name string) error {
	switch name {
	case store.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Store edge %s", name)
}
