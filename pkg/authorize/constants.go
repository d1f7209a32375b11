package authorize

type Action string
type Resource string
type Role string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ManageActions are the concrete actions implied by ActionManage.
// Seeding expands manage into these so exact-match enforcement works.
var ManageActions = []Action{
	ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Clinical records
	ResourcePatient Resource = "patient"

	// Scheduling
	ResourceAppointment Resource = "appointment"
	ResourceRoom        Resource = "room"

	// Catalog
	ResourceService Resource = "service"

	// Billing
	ResourceInvoice Resource = "invoice"
	ResourcePayment Resource = "payment"

	// Operations
	ResourceInventory Resource = "inventory"
	ResourceAnalytics Resource = "analytics"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourcePatient:     {},
	ResourceAppointment: {}, ResourceRoom: {},
	ResourceService: {},
	ResourceInvoice: {}, ResourcePayment: {},
	ResourceInventory: {}, ResourceAnalytics: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	RoleAdmin        Role = "role:admin"
	RolePhysio       Role = "role:physio"
	RoleReceptionist Role = "role:receptionist"
	RolePatient      Role = "role:patient"
)

var KnownRoles = map[Role]struct{}{
	RoleAdmin:        {},
	RolePhysio:       {},
	RoleReceptionist: {},
	RolePatient:      {},
}

// Staff role strings (stored in the users.role column)
const (
	UserRoleAdmin        = "admin"
	UserRolePhysio       = "physio"
	UserRoleReceptionist = "receptionist"
	UserRolePatient      = "patient"
)

// UserRoleToRBACRole maps DB role values to Casbin roles
var UserRoleToRBACRole = map[string]Role{
	UserRoleAdmin:        RoleAdmin,
	UserRolePhysio:       RolePhysio,
	UserRoleReceptionist: RoleReceptionist,
	UserRolePatient:      RolePatient,
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id).
type GroupSubject string

// Grouping rows: g, user_id, role
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
}

// Permission rows: p, role, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
