package auth

// Role names recognized by the portal
const (
	RoleSuperAdmin   = "super_admin"
	RoleAdmin        = "admin"
	RoleAdminRW      = "admin_rw"
	RoleKetuaRW      = "ketua_rw"
	RoleAdminRT      = "admin_rt"
	RoleKetuaRT      = "ketua_rt"
	RoleAdminLembaga = "admin_lembaga"
	RoleWarga        = "warga"
	RoleDeveloper    = "developer"
)

// Capability is a role capability that can be queried via HasPermission
type Capability string

const (
	// CanViewPhone allows seeing resident phone numbers unmasked
	CanViewPhone Capability = "can_view_hp"
	// AllRW allows access across every RW
	AllRW Capability = "all_rw"
	// AllRT allows access across every RT within the accessible RW scope
	AllRT Capability = "all_rt"
)

// rolePermissions is the fixed capability triple assigned to a role
type rolePermissions struct {
	CanViewPhone bool
	AllRW        bool
	AllRT        bool
}

// permissionTable is static for the process lifetime. Roles missing from it
// fail every permission check.
var permissionTable = map[string]rolePermissions{
	RoleSuperAdmin:   {CanViewPhone: true, AllRW: true, AllRT: true},
	RoleAdmin:        {CanViewPhone: true, AllRW: true, AllRT: true},
	RoleDeveloper:    {CanViewPhone: true, AllRW: true, AllRT: true},
	RoleAdminRW:      {CanViewPhone: true, AllRW: false, AllRT: true},
	RoleKetuaRW:      {CanViewPhone: true, AllRW: false, AllRT: true},
	RoleAdminRT:      {CanViewPhone: true, AllRW: false, AllRT: false},
	RoleKetuaRT:      {CanViewPhone: false, AllRW: false, AllRT: false},
	RoleAdminLembaga: {CanViewPhone: false, AllRW: false, AllRT: false},
	RoleWarga:        {CanViewPhone: false, AllRW: false, AllRT: false},
}

// dashboardPaths maps each role to its default landing dashboard
var dashboardPaths = map[string]string{
	RoleSuperAdmin:   "/dashboard/super-admin",
	RoleAdmin:        "/dashboard/admin",
	RoleAdminRW:      "/dashboard/rw",
	RoleKetuaRW:      "/dashboard/rw",
	RoleAdminRT:      "/dashboard/rt",
	RoleKetuaRT:      "/dashboard/rt",
	RoleAdminLembaga: "/dashboard/lembaga",
	RoleWarga:        "/dashboard/warga",
	RoleDeveloper:    "/dashboard/developer",
}

// HasPermission reports whether the session user's role grants the capability.
// Nil sessions and unknown roles are denied.
func HasPermission(user *SessionUser, capability Capability) bool {
	if user == nil {
		return false
	}

	perms, ok := permissionTable[user.Role]
	if !ok {
		return false
	}

	switch capability {
	case CanViewPhone:
		return perms.CanViewPhone
	case AllRW:
		return perms.AllRW
	case AllRT:
		return perms.AllRT
	default:
		return false
	}
}

// KnownRole reports whether the role name is part of the portal enumeration
func KnownRole(role string) bool {
	_, ok := dashboardPaths[role]
	return ok
}

// DashboardPathFor returns the default landing path for a role, or the login
// page for roles outside the enumeration
func DashboardPathFor(role string) string {
	if path, ok := dashboardPaths[role]; ok {
		return path
	}
	return "/login"
}
