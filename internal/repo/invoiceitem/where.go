// Code generated by ent, DO NOT EDIT.

package invoiceitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/physiofit/clinic_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldCreatedAt, v))
}

// InvoiceID applies equality check predicate on the "invoice_id" field. It's identical to InvoiceIDEQ.
func InvoiceID(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldInvoiceID, v))
}

// ServiceID applies equality check predicate on the "service_id" field. It's identical to ServiceIDEQ.
func ServiceID(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldServiceID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldDescription, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldUnitPrice, v))
}

// LineTotal applies equality check predicate on the "line_total" field. It's identical to LineTotalEQ.
func LineTotal(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldLineTotal, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLTE(FieldCreatedAt, v))
}

// InvoiceIDEQ applies the EQ predicate on the "invoice_id" field.
func InvoiceIDEQ(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldInvoiceID, v))
}

// InvoiceIDNEQ applies the NEQ predicate on the "invoice_id" field.
func InvoiceIDNEQ(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNEQ(FieldInvoiceID, v))
}

// InvoiceIDIn applies the In predicate on the "invoice_id" field.
func InvoiceIDIn(vs ...uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldIn(FieldInvoiceID, vs...))
}

// InvoiceIDNotIn applies the NotIn predicate on the "invoice_id" field.
func InvoiceIDNotIn(vs ...uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNotIn(FieldInvoiceID, vs...))
}

// InvoiceIDGT applies the GT predicate on the "invoice_id" field.
func InvoiceIDGT(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGT(FieldInvoiceID, v))
}

// InvoiceIDGTE applies the GTE predicate on the "invoice_id" field.
func InvoiceIDGTE(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGTE(FieldInvoiceID, v))
}

// InvoiceIDLT applies the LT predicate on the "invoice_id" field.
func InvoiceIDLT(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLT(FieldInvoiceID, v))
}

// InvoiceIDLTE applies the LTE predicate on the "invoice_id" field.
func InvoiceIDLTE(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLTE(FieldInvoiceID, v))
}

// ServiceIDEQ applies the EQ predicate on the "service_id" field.
func ServiceIDEQ(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldServiceID, v))
}

// ServiceIDNEQ applies the NEQ predicate on the "service_id" field.
func ServiceIDNEQ(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNEQ(FieldServiceID, v))
}

// ServiceIDIn applies the In predicate on the "service_id" field.
func ServiceIDIn(vs ...uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldIn(FieldServiceID, vs...))
}

// ServiceIDNotIn applies the NotIn predicate on the "service_id" field.
func ServiceIDNotIn(vs ...uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNotIn(FieldServiceID, vs...))
}

// ServiceIDGT applies the GT predicate on the "service_id" field.
func ServiceIDGT(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGT(FieldServiceID, v))
}

// ServiceIDGTE applies the GTE predicate on the "service_id" field.
func ServiceIDGTE(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGTE(FieldServiceID, v))
}

// ServiceIDLT applies the LT predicate on the "service_id" field.
func ServiceIDLT(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLT(FieldServiceID, v))
}

// ServiceIDLTE applies the LTE predicate on the "service_id" field.
func ServiceIDLTE(v uuid.UUID) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLTE(FieldServiceID, v))
}

// ServiceIDIsNil applies the IsNil predicate on the "service_id" field.
func ServiceIDIsNil() predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldIsNull(FieldServiceID))
}

// ServiceIDNotNil applies the NotNil predicate on the "service_id" field.
func ServiceIDNotNil() predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNotNull(FieldServiceID))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldContainsFold(FieldDescription, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLTE(FieldUnitPrice, v))
}

// LineTotalEQ applies the EQ predicate on the "line_total" field.
func LineTotalEQ(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldEQ(FieldLineTotal, v))
}

// LineTotalNEQ applies the NEQ predicate on the "line_total" field.
func LineTotalNEQ(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNEQ(FieldLineTotal, v))
}

// LineTotalIn applies the In predicate on the "line_total" field.
func LineTotalIn(vs ...int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldIn(FieldLineTotal, vs...))
}

// LineTotalNotIn applies the NotIn predicate on the "line_total" field.
func LineTotalNotIn(vs ...int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldNotIn(FieldLineTotal, vs...))
}

// LineTotalGT applies the GT predicate on the "line_total" field.
func LineTotalGT(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGT(FieldLineTotal, v))
}

// LineTotalGTE applies the GTE predicate on the "line_total" field.
func LineTotalGTE(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldGTE(FieldLineTotal, v))
}

// LineTotalLT applies the LT predicate on the "line_total" field.
func LineTotalLT(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLT(FieldLineTotal, v))
}

// LineTotalLTE applies the LTE predicate on the "line_total" field.
func LineTotalLTE(v int64) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.FieldLTE(FieldLineTotal, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceItem) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceItem) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceItem) predicate.InvoiceItem {
	return predicate.InvoiceItem(sql.NotPredicates(p))
}
