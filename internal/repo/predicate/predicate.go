// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// InventoryItem is the predicate function for inventoryitem builders.
type InventoryItem func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceItem is the predicate function for invoiceitem builders.
type InvoiceItem func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// Room is the predicate function for room builders.
type Room func(*sql.Selector)

// Service is the predicate function for service builders.
type Service func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
