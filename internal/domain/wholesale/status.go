package wholesale

// Estados de aprobación financiera de una orden al mayoreo.
// El grafo canónico es el de seis estados de la última revisión del flujo:
//
//	pending → received → validation → partially_collected → collected
//	                     validation ─────────────────────→ collected
//	                     {validation, partially_collected} → rejected
//
// Una transición desde un estado origen no permitido NO es error: se ignora
// en silencio y la orden queda como estaba.
const (
	StatusPending            = "pending"
	StatusReceived           = "received"
	StatusValidation         = "validation"
	StatusPartiallyCollected = "partially_collected"
	StatusCollected          = "collected"
	StatusRejected           = "rejected"
)

// allowedSources estados origen permitidos por estado destino.
var allowedSources = map[string][]string{
	StatusReceived:           {StatusPending},
	StatusValidation:         {StatusReceived},
	StatusPartiallyCollected: {StatusValidation},
	StatusCollected:          {StatusValidation, StatusPartiallyCollected},
	StatusRejected:           {StatusValidation, StatusPartiallyCollected},
}

// labels etiquetas visibles de cada estado.
var labels = map[string]string{
	StatusPending:            "Pendiente de pago",
	StatusReceived:           "Pago recibido",
	StatusValidation:         "En validación",
	StatusPartiallyCollected: "Parcialmente cobrado",
	StatusCollected:          "Pago cobrado",
	StatusRejected:           "Pago rechazado",
}

// CanTransition indica si el paso from → to está en el grafo.
// from == "" (sin flujo iniciado) nunca permite transiciones manuales:
// el estado inicial "pending" solo lo asigna el hook de confirmación.
func CanTransition(from, to string) bool {
	for _, src := range allowedSources[to] {
		if src == from {
			return true
		}
	}
	return false
}

// Valid indica si s es un estado financiero conocido.
func Valid(s string) bool {
	_, ok := labels[s]
	return ok
}

// Label devuelve la etiqueta visible del estado ("" si no hay flujo o es desconocido).
func Label(s string) string {
	return labels[s]
}
