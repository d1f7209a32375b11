// Code generated by ent, DO NOT EDIT.

package inventoryitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/physiofit/clinic_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldName, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCategory, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldQuantity, v))
}

// ReorderLevel applies equality check predicate on the "reorder_level" field. It's identical to ReorderLevelEQ.
func ReorderLevel(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldReorderLevel, v))
}

// UnitCost applies equality check predicate on the "unit_cost" field. It's identical to UnitCostEQ.
func UnitCost(v int64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUnitCost, v))
}

// Supplier applies equality check predicate on the "supplier" field. It's identical to SupplierEQ.
func Supplier(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldSupplier, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldName, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldCategory, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldQuantity, v))
}

// ReorderLevelEQ applies the EQ predicate on the "reorder_level" field.
func ReorderLevelEQ(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldReorderLevel, v))
}

// ReorderLevelNEQ applies the NEQ predicate on the "reorder_level" field.
func ReorderLevelNEQ(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldReorderLevel, v))
}

// ReorderLevelIn applies the In predicate on the "reorder_level" field.
func ReorderLevelIn(vs ...int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldReorderLevel, vs...))
}

// ReorderLevelNotIn applies the NotIn predicate on the "reorder_level" field.
func ReorderLevelNotIn(vs ...int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldReorderLevel, vs...))
}

// ReorderLevelGT applies the GT predicate on the "reorder_level" field.
func ReorderLevelGT(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldReorderLevel, v))
}

// ReorderLevelGTE applies the GTE predicate on the "reorder_level" field.
func ReorderLevelGTE(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldReorderLevel, v))
}

// ReorderLevelLT applies the LT predicate on the "reorder_level" field.
func ReorderLevelLT(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldReorderLevel, v))
}

// ReorderLevelLTE applies the LTE predicate on the "reorder_level" field.
func ReorderLevelLTE(v int) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldReorderLevel, v))
}

// UnitCostEQ applies the EQ predicate on the "unit_cost" field.
func UnitCostEQ(v int64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldUnitCost, v))
}

// UnitCostNEQ applies the NEQ predicate on the "unit_cost" field.
func UnitCostNEQ(v int64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldUnitCost, v))
}

// UnitCostIn applies the In predicate on the "unit_cost" field.
func UnitCostIn(vs ...int64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldUnitCost, vs...))
}

// UnitCostNotIn applies the NotIn predicate on the "unit_cost" field.
func UnitCostNotIn(vs ...int64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldUnitCost, vs...))
}

// UnitCostGT applies the GT predicate on the "unit_cost" field.
func UnitCostGT(v int64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldUnitCost, v))
}

// UnitCostGTE applies the GTE predicate on the "unit_cost" field.
func UnitCostGTE(v int64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldUnitCost, v))
}

// UnitCostLT applies the LT predicate on the "unit_cost" field.
func UnitCostLT(v int64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldUnitCost, v))
}

// UnitCostLTE applies the LTE predicate on the "unit_cost" field.
func UnitCostLTE(v int64) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldUnitCost, v))
}

// SupplierEQ applies the EQ predicate on the "supplier" field.
func SupplierEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEQ(FieldSupplier, v))
}

// SupplierNEQ applies the NEQ predicate on the "supplier" field.
func SupplierNEQ(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNEQ(FieldSupplier, v))
}

// SupplierIn applies the In predicate on the "supplier" field.
func SupplierIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIn(FieldSupplier, vs...))
}

// SupplierNotIn applies the NotIn predicate on the "supplier" field.
func SupplierNotIn(vs ...string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotIn(FieldSupplier, vs...))
}

// SupplierGT applies the GT predicate on the "supplier" field.
func SupplierGT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGT(FieldSupplier, v))
}

// SupplierGTE applies the GTE predicate on the "supplier" field.
func SupplierGTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldGTE(FieldSupplier, v))
}

// SupplierLT applies the LT predicate on the "supplier" field.
func SupplierLT(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLT(FieldSupplier, v))
}

// SupplierLTE applies the LTE predicate on the "supplier" field.
func SupplierLTE(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldLTE(FieldSupplier, v))
}

// SupplierContains applies the Contains predicate on the "supplier" field.
func SupplierContains(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContains(FieldSupplier, v))
}

// SupplierHasPrefix applies the HasPrefix predicate on the "supplier" field.
func SupplierHasPrefix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasPrefix(FieldSupplier, v))
}

// SupplierHasSuffix applies the HasSuffix predicate on the "supplier" field.
func SupplierHasSuffix(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldHasSuffix(FieldSupplier, v))
}

// SupplierIsNil applies the IsNil predicate on the "supplier" field.
func SupplierIsNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldIsNull(FieldSupplier))
}

// SupplierNotNil applies the NotNil predicate on the "supplier" field.
func SupplierNotNil() predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldNotNull(FieldSupplier))
}

// SupplierEqualFold applies the EqualFold predicate on the "supplier" field.
func SupplierEqualFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldEqualFold(FieldSupplier, v))
}

// SupplierContainsFold applies the ContainsFold predicate on the "supplier" field.
func SupplierContainsFold(v string) predicate.InventoryItem {
	return predicate.InventoryItem(sql.FieldContainsFold(FieldSupplier, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InventoryItem) predicate.InventoryItem {
	return predicate.InventoryItem(sql.NotPredicates(p))
}
