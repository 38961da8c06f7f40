package entity

// Estados de máquina. El grafo de transiciones es completo: el operador puede
// pasar de cualquier estado a cualquier otro.
const (
	StatusProducing  = "producing"   // produciendo
	StatusMoldChange = "mold_change" // cambio de molde
	StatusMinorStop  = "minor_stop"  // paro menor / alarma
	StatusMajorStop  = "major_stop"  // paro mayor / mantenimiento
)

// ValidStatus indica si s es uno de los cuatro estados de máquina.
func ValidStatus(s string) bool {
	switch s {
	case StatusProducing, StatusMoldChange, StatusMinorStop, StatusMajorStop:
		return true
	}
	return false
}

// Machine representa una máquina de la planta (ISBM o INY).
// QuantityProduced solo tiene sentido relativo al producto/orden asignado
// actualmente: se reinicia a 0 en cada reasignación.
type Machine struct {
	ID               string
	Name             string
	Cavities         int64 // >= 1
	Status           string
	CurrentProductID *string
	QuantityOrdered  int64
	QuantityProduced int64

	// Campo de lectura (join); vacío al escribir.
	CurrentProductName string
}
