package constants

// Carrier is a shipping company whose guide documents we recognize.
type Carrier string

// Stable values (store these exact strings in DB).
const (
	Servientrega    Carrier = "Servientrega"
	Interrapidisima Carrier = "Interrapidisima"
	Envia           Carrier = "Envia"
	Coordinadora    Carrier = "Coordinadora"
	Deprisa         Carrier = "Deprisa"
	TCC             Carrier = "TCC"
	UnknownCarrier  Carrier = "Unknown"
)

var allCarriers = []Carrier{
	Servientrega,
	Interrapidisima,
	Envia,
	Coordinadora,
	Deprisa,
	TCC,
}

// AllCarriers returns the recognized carrier set, excluding Unknown.
func AllCarriers() []Carrier {
	out := make([]Carrier, len(allCarriers))
	copy(out, allCarriers)
	return out
}
