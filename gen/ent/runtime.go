// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/forecourt-labs/shiftscan/db/ent/schema"
	"github.com/forecourt-labs/shiftscan/gen/ent/departmentsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/itemsale"
	"github.com/forecourt-labs/shiftscan/gen/ent/reportexception"
	"github.com/forecourt-labs/shiftscan/gen/ent/shiftreport"
	"github.com/forecourt-labs/shiftscan/gen/ent/store"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	departmentsaleFields := schema.DepartmentSale{}.Fields()
	_ = departmentsaleFields
	// departmentsaleDescName is the schema descriptor for name field.
	departmentsaleDescName := departmentsaleFields[2].Descriptor()
	// departmentsale.NameValidator is a validator for the "name" field. It is called by the builders before save.
	departmentsale.NameValidator = departmentsaleDescName.Validators[0].(func(string) error)
	// departmentsaleDescConfidence is the schema descriptor for confidence field.
	departmentsaleDescConfidence := departmentsaleFields[5].Descriptor()
	// departmentsale.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	departmentsale.ConfidenceValidator = func() func(float32) error {
		validators := departmentsaleDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// departmentsaleDescID is the schema descriptor for id field.
	departmentsaleDescID := departmentsaleFields[0].Descriptor()
	// departmentsale.DefaultID holds the default value on creation for the id field.
	departmentsale.DefaultID = departmentsaleDescID.Default.(func() uuid.UUID)
	itemsaleFields := schema.ItemSale{}.Fields()
	_ = itemsaleFields
	// itemsaleDescName is the schema descriptor for name field.
	itemsaleDescName := itemsaleFields[2].Descriptor()
	// itemsale.NameValidator is a validator for the "name" field. It is called by the builders before save.
	itemsale.NameValidator = itemsaleDescName.Validators[0].(func(string) error)
	// itemsaleDescConfidence is the schema descriptor for confidence field.
	itemsaleDescConfidence := itemsaleFields[5].Descriptor()
	// itemsale.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	itemsale.ConfidenceValidator = func() func(float32) error {
		validators := itemsaleDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// itemsaleDescID is the schema descriptor for id field.
	itemsaleDescID := itemsaleFields[0].Descriptor()
	// itemsale.DefaultID holds the default value on creation for the id field.
	itemsale.DefaultID = itemsaleDescID.Default.(func() uuid.UUID)
	reportexceptionFields := schema.ReportException{}.Fields()
	_ = reportexceptionFields
	// reportexceptionDescType is the schema descriptor for type field.
	reportexceptionDescType := reportexceptionFields[2].Descriptor()
	// reportexception.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	reportexception.TypeValidator = reportexceptionDescType.Validators[0].(func(string) error)
	// reportexceptionDescCount is the schema descriptor for count field.
	reportexceptionDescCount := reportexceptionFields[3].Descriptor()
	// reportexception.CountValidator is a validator for the "count" field. It is called by the builders before save.
	reportexception.CountValidator = reportexceptionDescCount.Validators[0].(func(int) error)
	// reportexceptionDescID is the schema descriptor for id field.
	reportexceptionDescID := reportexceptionFields[0].Descriptor()
	// reportexception.DefaultID holds the default value on creation for the id field.
	reportexception.DefaultID = reportexceptionDescID.Default.(func() uuid.UUID)
	shiftreportFields := schema.ShiftReport{}.Fields()
	_ = shiftreportFields
	// shiftreportDescReceiptHash is the schema descriptor for receipt_hash field.
	shiftreportDescReceiptHash := shiftreportFields[2].Descriptor()
	// shiftreport.ReceiptHashValidator is a validator for the "receipt_hash" field. It is called by the builders before save.
	shiftreport.ReceiptHashValidator = func() func(string) error {
		validators := shiftreportDescReceiptHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(receipt_hash string) error {
			for _, fn := range fns {
				if err := fn(receipt_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// shiftreportDescExtractionMethod is the schema descriptor for extraction_method field.
	shiftreportDescExtractionMethod := shiftreportFields[5].Descriptor()
	// shiftreport.ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	shiftreport.ExtractionMethodValidator = shiftreportDescExtractionMethod.Validators[0].(func(string) error)
	// shiftreportDescExtractionConfidence is the schema descriptor for extraction_confidence field.
	shiftreportDescExtractionConfidence := shiftreportFields[6].Descriptor()
	// shiftreport.ExtractionConfidenceValidator is a validator for the "extraction_confidence" field. It is called by the builders before save.
	shiftreport.ExtractionConfidenceValidator = func() func(float32) error {
		validators := shiftreportDescExtractionConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(extraction_confidence float32) error {
			for _, fn := range fns {
				if err := fn(extraction_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// shiftreportDescUploadCount is the schema descriptor for upload_count field.
	shiftreportDescUploadCount := shiftreportFields[7].Descriptor()
	// shiftreport.DefaultUploadCount holds the default value on creation for the upload_count field.
	shiftreport.DefaultUploadCount = shiftreportDescUploadCount.Default.(int)
	// shiftreport.UploadCountValidator is a validator for the "upload_count" field. It is called by the builders before save.
	shiftreport.UploadCountValidator = shiftreportDescUploadCount.Validators[0].(func(int) error)
	// shiftreportDescLastUploadReason is the schema descriptor for last_upload_reason field.
	shiftreportDescLastUploadReason := shiftreportFields[8].Descriptor()
	// shiftreport.LastUploadReasonValidator is a validator for the "last_upload_reason" field. It is called by the builders before save.
	shiftreport.LastUploadReasonValidator = shiftreportDescLastUploadReason.Validators[0].(func(string) error)
	// shiftreportDescCreatedAt is the schema descriptor for created_at field.
	shiftreportDescCreatedAt := shiftreportFields[16].Descriptor()
	// shiftreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	shiftreport.DefaultCreatedAt = shiftreportDescCreatedAt.Default.(func() time.Time)
	// shiftreportDescUpdatedAt is the schema descriptor for updated_at field.
	shiftreportDescUpdatedAt := shiftreportFields[17].Descriptor()
	// shiftreport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shiftreport.DefaultUpdatedAt = shiftreportDescUpdatedAt.Default.(func() time.Time)
	// shiftreport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shiftreport.UpdateDefaultUpdatedAt = shiftreportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// shiftreportDescID is the schema descriptor for id field.
	shiftreportDescID := shiftreportFields[0].Descriptor()
	// shiftreport.DefaultID holds the default value on creation for the id field.
	shiftreport.DefaultID = shiftreportDescID.Default.(func() uuid.UUID)
	storeFields := schema.Store{}.Fields()
	_ = storeFields
	// storeDescName is the schema descriptor for name field.
	storeDescName := storeFields[1].Descriptor()
	// store.NameValidator is a validator for the "name" field. It is called by the builders before save.
	store.NameValidator = storeDescName.Validators[0].(func(string) error)
	// storeDescTimezone is the schema descriptor for timezone field.
	storeDescTimezone := storeFields[2].Descriptor()
	// store.DefaultTimezone holds the default value on creation for the timezone field.
	store.DefaultTimezone = storeDescTimezone.Default.(string)
	// storeDescCreatedAt is the schema descriptor for created_at field.
	storeDescCreatedAt := storeFields[3].Descriptor()
	// store.DefaultCreatedAt holds the default value on creation for the created_at field.
	store.DefaultCreatedAt = storeDescCreatedAt.Default.(func() time.Time)
	// storeDescUpdatedAt is the schema descriptor for updated_at field.
	storeDescUpdatedAt := storeFields[4].Descriptor()
	// store.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	store.DefaultUpdatedAt = storeDescUpdatedAt.Default.(func() time.Time)
	// store.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	store.UpdateDefaultUpdatedAt = storeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// storeDescID is the schema descriptor for id field.
	storeDescID := storeFields[0].Descriptor()
	// store.DefaultID holds the default value on creation for the id field.
	store.DefaultID = storeDescID.Default.(func() uuid.UUID)
}
