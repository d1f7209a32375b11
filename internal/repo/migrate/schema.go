// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "physio_id", Type: field.TypeUUID, Nullable: true},
		{Name: "service_id", Type: field.TypeUUID},
		{Name: "room_id", Type: field.TypeUUID, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "completed", "cancelled", "no_show"}, Default: "scheduled"},
		{Name: "reminder_sent", Type: field.TypeBool, Default: false},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_physio_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_room_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[6], AppointmentsColumns[7]},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[9]},
			},
			{
				Name:    "appointment_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[9], AppointmentsColumns[7]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "action", Type: field.TypeString, Size: 50},
		{Name: "entity_type", Type: field.TypeString, Size: 100},
		{Name: "entity_id", Type: field.TypeUUID},
		{Name: "changes", Type: field.TypeJSON, Nullable: true},
		{Name: "request_id", Type: field.TypeString, Nullable: true, Size: 64},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[4], AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_actor_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// InventoryItemsColumns holds the columns for the "inventory_items" table.
	InventoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "quantity", Type: field.TypeInt, Default: 0},
		{Name: "reorder_level", Type: field.TypeInt, Default: 0},
		{Name: "unit_cost", Type: field.TypeInt64, Default: 0},
		{Name: "supplier", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// InventoryItemsTable holds the schema information for the "inventory_items" table.
	InventoryItemsTable = &schema.Table{
		Name:       "inventory_items",
		Columns:    InventoryItemsColumns,
		PrimaryKey: []*schema.Column{InventoryItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inventoryitem_category",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[4]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "number", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "issued", "paid", "partial", "cancelled"}, Default: "draft"},
		{Name: "total_amount", Type: field.TypeInt64, Default: 0},
		{Name: "amount_paid", Type: field.TypeInt64, Default: 0},
		{Name: "issued_at", Type: field.TypeTime, Nullable: true},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[3], InvoicesColumns[6]},
			},
			{
				Name:    "invoice_appointment_id",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[4]},
			},
			{
				Name:    "invoice_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[6]},
			},
		},
	}
	// InvoiceItemsColumns holds the columns for the "invoice_items" table.
	InvoiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID},
		{Name: "service_id", Type: field.TypeUUID, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 500},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "unit_price", Type: field.TypeInt64},
		{Name: "line_total", Type: field.TypeInt64},
	}
	// InvoiceItemsTable holds the schema information for the "invoice_items" table.
	InvoiceItemsTable = &schema.Table{
		Name:       "invoice_items",
		Columns:    InvoiceItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceitem_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{InvoiceItemsColumns[2]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "tax_id_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "discharged"}, Default: "active"},
		{Name: "medical_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "referral_source", Type: field.TypeString, Nullable: true, Size: 255},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_last_name_first_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[6], PatientsColumns[5]},
			},
			{
				Name:    "patient_status",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[11]},
			},
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
		},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"cash", "card", "transfer", "insurance"}},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "reference", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "recorded_by", Type: field.TypeUUID, Nullable: true},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "payment_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[2]},
			},
			{
				Name:    "payment_received_at",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[5]},
			},
		},
	}
	// RoomsColumns holds the columns for the "rooms" table.
	RoomsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "capacity", Type: field.TypeInt, Default: 1},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// RoomsTable holds the schema information for the "rooms" table.
	RoomsTable = &schema.Table{
		Name:       "rooms",
		Columns:    RoomsColumns,
		PrimaryKey: []*schema.Column{RoomsColumns[0]},
	}
	// ServicesColumns holds the columns for the "services" table.
	ServicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "unit_price", Type: field.TypeInt64},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 60},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ServicesTable holds the schema information for the "services" table.
	ServicesTable = &schema.Table{
		Name:       "services",
		Columns:    ServicesColumns,
		PrimaryKey: []*schema.Column{ServicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "service_active",
				Unique:  false,
				Columns: []*schema.Column{ServicesColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "physio", "receptionist", "patient"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "suspended"}, Default: "active"},
		{Name: "must_change_password", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
			{
				Name:    "user_status",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AuditLogsTable,
		InventoryItemsTable,
		InvoicesTable,
		InvoiceItemsTable,
		PatientsTable,
		PaymentsTable,
		RoomsTable,
		ServicesTable,
		UsersTable,
	}
)

func init() {
}
