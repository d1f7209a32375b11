// Code generated by ent, DO NOT EDIT.

package inventoryitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the inventoryitem type in the database.
	Label = "inventory_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldReorderLevel holds the string denoting the reorder_level field in the database.
	FieldReorderLevel = "reorder_level"
	// FieldUnitCost holds the string denoting the unit_cost field in the database.
	FieldUnitCost = "unit_cost"
	// FieldSupplier holds the string denoting the supplier field in the database.
	FieldSupplier = "supplier"
	// Table holds the table name of the inventoryitem in the database.
	Table = "inventory_items"
)

// Columns holds all SQL columns for inventoryitem fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldCategory,
	FieldQuantity,
	FieldReorderLevel,
	FieldUnitCost,
	FieldSupplier,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultQuantity holds the default value on creation for the "quantity" field.
	DefaultQuantity int
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(int) error
	// DefaultReorderLevel holds the default value on creation for the "reorder_level" field.
	DefaultReorderLevel int
	// ReorderLevelValidator is a validator for the "reorder_level" field. It is called by the builders before save.
	ReorderLevelValidator func(int) error
	// DefaultUnitCost holds the default value on creation for the "unit_cost" field.
	DefaultUnitCost int64
	// UnitCostValidator is a validator for the "unit_cost" field. It is called by the builders before save.
	UnitCostValidator func(int64) error
	// SupplierValidator is a validator for the "supplier" field. It is called by the builders before save.
	SupplierValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InventoryItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByReorderLevel orders the results by the reorder_level field.
func ByReorderLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReorderLevel, opts...).ToFunc()
}

// ByUnitCost orders the results by the unit_cost field.
func ByUnitCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitCost, opts...).ToFunc()
}

// BySupplier orders the results by the supplier field.
func BySupplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplier, opts...).ToFunc()
}
