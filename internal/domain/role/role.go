// Package role define el conjunto ordenado de roles del sistema y las reglas
// de autorización sobre cambios de rol como una tabla de decisión pura.
package role

// Role nivel de privilegio de un usuario.
type Role string

// Roles válidos, de menor a mayor privilegio.
const (
	User       Role = "user"
	Admin      Role = "admin"
	Superadmin Role = "superadmin"
)

// rank orden de privilegio; roles desconocidos quedan por debajo de User.
var rank = map[Role]int{
	User:       1,
	Admin:      2,
	Superadmin: 3,
}

// Valid indica si el rol pertenece al conjunto conocido.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// AtLeast indica si r tiene al menos el privilegio de min.
// Un rol desconocido nunca alcanza un mínimo válido.
func (r Role) AtLeast(min Role) bool {
	return rank[r] >= rank[min] && rank[min] > 0
}

// changeKey tripleta (caller, target actual, solicitado) de la tabla de decisión.
type changeKey struct {
	caller    Role
	target    Role
	requested Role
}

// allowedChanges tabla de decisión explícita para cambios de rol.
// Solo se listan las combinaciones permitidas; todo lo demás se niega.
// superadmin puede cambiar cualquier rol; admin solo puede tocar usuarios
// sin promoverlos; el resto de roles no puede cambiar roles.
var allowedChanges = buildAllowedChanges()

func buildAllowedChanges() map[changeKey]bool {
	all := []Role{User, Admin, Superadmin}
	m := make(map[changeKey]bool)
	for _, target := range all {
		for _, requested := range all {
			m[changeKey{Superadmin, target, requested}] = true
		}
	}
	m[changeKey{Admin, User, User}] = true
	return m
}

// CanChange decide si caller puede cambiar el rol de un usuario con rol target
// al rol requested. Consulta pura sobre la tabla; sin efectos.
func CanChange(caller, target, requested Role) bool {
	return allowedChanges[changeKey{caller, target, requested}]
}

// CanAssignAtCreate decide si caller puede crear un usuario con el rol requested.
// Un admin no puede crear admins ni superadmins; superadmin puede todo.
// Llamadores sin rol (registro público) solo pueden crear usuarios rasos.
func CanAssignAtCreate(caller, requested Role) bool {
	switch caller {
	case Superadmin:
		return true
	case Admin:
		return requested == User
	default:
		return requested == User
	}
}

// CanDestroy decide si caller puede eliminar (lógicamente) a un usuario con rol
// target. Un admin no puede eliminar admins ni superadmins.
func CanDestroy(caller, target Role) bool {
	switch caller {
	case Superadmin:
		return true
	case Admin:
		return target == User
	default:
		return false
	}
}
