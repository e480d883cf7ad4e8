package wholesale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-dev/mayoreo-api/internal/domain/wholesale"
)

// TestCanTransition_GrafoCompleto recorre todos los pares (origen, destino) y
// verifica que solo los arcos del grafo canónico están permitidos. Cualquier
// otro par debe rechazarse: así ninguna secuencia de llamadas puede sacar el
// estado financiero del grafo.
func TestCanTransition_GrafoCompleto(t *testing.T) {
	states := []string{
		"", // sin flujo iniciado
		wholesale.StatusPending,
		wholesale.StatusReceived,
		wholesale.StatusValidation,
		wholesale.StatusPartiallyCollected,
		wholesale.StatusCollected,
		wholesale.StatusRejected,
	}

	allowed := map[[2]string]bool{
		{wholesale.StatusPending, wholesale.StatusReceived}:              true,
		{wholesale.StatusReceived, wholesale.StatusValidation}:           true,
		{wholesale.StatusValidation, wholesale.StatusPartiallyCollected}: true,
		{wholesale.StatusValidation, wholesale.StatusCollected}:          true,
		{wholesale.StatusPartiallyCollected, wholesale.StatusCollected}:  true,
		{wholesale.StatusValidation, wholesale.StatusRejected}:           true,
		{wholesale.StatusPartiallyCollected, wholesale.StatusRejected}:   true,
	}

	for _, from := range states {
		for _, to := range states {
			got := wholesale.CanTransition(from, to)
			want := allowed[[2]string{from, to}]
			assert.Equalf(t, want, got,
				"transición %q → %q: esperado %v", from, to, want)
		}
	}
}

// TestCanTransition_EstadosFinales verifica que collected y rejected son
// terminales: no hay transición posible desde ellos.
func TestCanTransition_EstadosFinales(t *testing.T) {
	finales := []string{wholesale.StatusCollected, wholesale.StatusRejected}
	destinos := []string{
		wholesale.StatusPending, wholesale.StatusReceived, wholesale.StatusValidation,
		wholesale.StatusPartiallyCollected, wholesale.StatusCollected, wholesale.StatusRejected,
	}
	for _, from := range finales {
		for _, to := range destinos {
			assert.Falsef(t, wholesale.CanTransition(from, to),
				"%q es estado final, no debe permitir %q", from, to)
		}
	}
}

// TestCanTransition_SinFlujoNoAvanza: una orden sin flujo iniciado ("") no
// acepta transiciones manuales; solo el hook de confirmación asigna pending.
func TestCanTransition_SinFlujoNoAvanza(t *testing.T) {
	assert.False(t, wholesale.CanTransition("", wholesale.StatusReceived))
	assert.False(t, wholesale.CanTransition("", wholesale.StatusCollected))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Pendiente de pago", wholesale.Label(wholesale.StatusPending))
	assert.Equal(t, "Pago rechazado", wholesale.Label(wholesale.StatusRejected))
	assert.Equal(t, "", wholesale.Label(""), "sin flujo no tiene etiqueta")
	assert.Equal(t, "", wholesale.Label("otro"), "estado desconocido no tiene etiqueta")
}

func TestValid(t *testing.T) {
	assert.True(t, wholesale.Valid(wholesale.StatusPartiallyCollected))
	assert.False(t, wholesale.Valid(""))
	assert.False(t, wholesale.Valid("paid"))
}
