// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/physiofit/clinic_backend/internal/repo/inventoryitem"
)

// InventoryItem is the model entity for the InventoryItem schema.
type InventoryItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Category holds the value of the "category" field.
	Category *string `json:"category,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Restock when quantity drops to or below this
	ReorderLevel int `json:"reorder_level,omitempty"`
	// Purchase cost per unit in euro cents
	UnitCost int64 `json:"unit_cost,omitempty"`
	// Supplier holds the value of the "supplier" field.
	Supplier     *string `json:"supplier,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InventoryItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case inventoryitem.FieldQuantity, inventoryitem.FieldReorderLevel, inventoryitem.FieldUnitCost:
			values[i] = new(sql.NullInt64)
		case inventoryitem.FieldName, inventoryitem.FieldCategory, inventoryitem.FieldSupplier:
			values[i] = new(sql.NullString)
		case inventoryitem.FieldCreatedAt, inventoryitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case inventoryitem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InventoryItem fields.
func (_m *InventoryItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case inventoryitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case inventoryitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case inventoryitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case inventoryitem.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case inventoryitem.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(string)
				*_m.Category = value.String
			}
		case inventoryitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case inventoryitem.FieldReorderLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reorder_level", values[i])
			} else if value.Valid {
				_m.ReorderLevel = int(value.Int64)
			}
		case inventoryitem.FieldUnitCost:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_cost", values[i])
			} else if value.Valid {
				_m.UnitCost = value.Int64
			}
		case inventoryitem.FieldSupplier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier", values[i])
			} else if value.Valid {
				_m.Supplier = new(string)
				*_m.Supplier = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InventoryItem.
// This includes values selected through modifiers, order, etc.
func (_m *InventoryItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InventoryItem.
// Note that you need to call InventoryItem.Unwrap() before calling this method if this InventoryItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InventoryItem) Update() *InventoryItemUpdateOne {
	return NewInventoryItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InventoryItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InventoryItem) Unwrap() *InventoryItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: InventoryItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InventoryItem) String() string {
	var builder strings.Builder
	builder.WriteString("InventoryItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("reorder_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReorderLevel))
	builder.WriteString(", ")
	builder.WriteString("unit_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitCost))
	builder.WriteString(", ")
	if v := _m.Supplier; v != nil {
		builder.WriteString("supplier=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// InventoryItems is a parsable slice of InventoryItem.
type InventoryItems []*InventoryItem
