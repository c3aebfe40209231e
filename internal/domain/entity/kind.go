package entity

// Kind identifica el tipo de registro dentro del almacén de datos.
// El guard de archivado y el protocolo de ajuste operan sobre esta
// representación única, independiente del backend de persistencia.
type Kind string

const (
	KindItem      Kind = "items"
	KindItemGroup Kind = "item_groups"
	KindItemLine  Kind = "item_lines"
	KindItemType  Kind = "item_types"
	KindSupplier  Kind = "suppliers"
	KindClient    Kind = "clients"
	KindWarehouse Kind = "warehouses"
	KindLocation  Kind = "locations"
	KindInventory Kind = "inventories"
	KindOrder     Kind = "orders"
	KindShipment  Kind = "shipments"
	KindTransfer  Kind = "transfers"
	KindUser      Kind = "users"
)

// AllKinds enumera todos los kinds del almacén de datos.
var AllKinds = []Kind{
	KindItem, KindItemGroup, KindItemLine, KindItemType,
	KindSupplier, KindClient, KindWarehouse, KindLocation,
	KindInventory, KindOrder, KindShipment, KindTransfer, KindUser,
}

// IsValidKind indica si kind corresponde a un tipo de registro conocido.
func IsValidKind(kind Kind) bool {
	for _, k := range AllKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Ref es una referencia tipada a otro registro (kind + id).
type Ref struct {
	Kind Kind
	ID   int64
}

// Referenced lo implementan las entidades cuyas referencias salientes
// valida el guard de archivado antes de persistir.
type Referenced interface {
	References() []Ref
}

// NewRefs devuelve las referencias de current que no existían en previous.
// Con previous == nil (registro nuevo) devuelve todas: una referencia ya
// existente hacia un registro archivado después no se rechaza retroactivamente.
func NewRefs(current, previous Referenced) []Ref {
	if previous == nil {
		return current.References()
	}
	seen := make(map[Ref]struct{})
	for _, r := range previous.References() {
		seen[r] = struct{}{}
	}
	var out []Ref
	for _, r := range current.References() {
		if _, ok := seen[r]; !ok {
			out = append(out, r)
		}
	}
	return out
}
