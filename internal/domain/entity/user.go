package entity

import "time"

// Roles de aplicación cliente de la API.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// PermissionAll concede acceso a todos los recursos.
const PermissionAll = "all"

// User representa una aplicación cliente de la API con su clave (hasheada) y
// permisos por recurso. La clave en claro solo se entrega al crearla.
type User struct {
	ID          int64
	AppName     string
	KeyHash     string
	Role        string
	Permissions []string // kinds permitidos, o PermissionAll
	ReadOnly    bool
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanAccess indica si la aplicación puede operar sobre el recurso dado.
// write exige además que la aplicación no sea de solo lectura.
func (u *User) CanAccess(kind Kind, write bool) bool {
	if write && u.ReadOnly {
		return false
	}
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == PermissionAll || p == string(kind) {
			return true
		}
	}
	return false
}
