package wholesale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Barrido de cancelación automática (144 horas sin confirmación de pago)
// ──────────────────────────────────────────────────────────────────────────────

// seedConfirmedAt ajusta la antigüedad de la confirmación de una orden sembrada.
func (e *testEnv) seedConfirmedAt(orderID string, confirmedAt time.Time) {
	order, _ := e.orders.GetByID(orderID)
	order.ConfirmedAt = &confirmedAt
	_ = e.orders.Update(order)
}

func TestAutoCancel_OrdenVencida_SeCancela(t *testing.T) {
	env := newTestEnv()
	now := time.Now()

	stale := env.seedOrder("sw1", entity.OrderStateSale, "pending", true)
	env.seedConfirmedAt(stale.ID, now.Add(-150*time.Hour))

	cancelled, err := env.uc.AutoCancelStaleOrders(now)
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)

	got, _ := env.orders.GetByID(stale.ID)
	assert.Equal(t, entity.OrderStateCancel, got.State)
	assert.Empty(t, got.FinanceStatus, "la cancelación automática limpia el estado financiero")

	notes := env.chat.notesFor(stale.ID)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Body, "144 horas")
	assert.Equal(t, entity.MessageTypeNotification, notes[0].Type)
}

func TestAutoCancel_OrdenFresca_NoSeToca(t *testing.T) {
	env := newTestEnv()
	now := time.Now()

	fresh := env.seedOrder("sw2", entity.OrderStateSale, "pending", true)
	env.seedConfirmedAt(fresh.ID, now.Add(-100*time.Hour))

	cancelled, err := env.uc.AutoCancelStaleOrders(now)
	require.NoError(t, err)
	assert.Zero(t, cancelled)

	got, _ := env.orders.GetByID(fresh.ID)
	assert.Equal(t, entity.OrderStateSale, got.State)
	assert.Equal(t, "pending", got.FinanceStatus)
	assert.Empty(t, env.chat.notesFor(fresh.ID))
}

func TestAutoCancel_SoloPendientes(t *testing.T) {
	env := newTestEnv()
	now := time.Now()

	// Misma antigüedad pero con pago ya recibido: no debe cancelarse.
	received := env.seedOrder("sw3", entity.OrderStateSale, "received", true)
	env.seedConfirmedAt(received.ID, now.Add(-200*time.Hour))

	cancelled, err := env.uc.AutoCancelStaleOrders(now)
	require.NoError(t, err)
	assert.Zero(t, cancelled)

	got, _ := env.orders.GetByID(received.ID)
	assert.Equal(t, entity.OrderStateSale, got.State)
}

func TestAutoCancel_Idempotente(t *testing.T) {
	env := newTestEnv()
	now := time.Now()

	stale := env.seedOrder("sw4", entity.OrderStateSale, "pending", true)
	env.seedConfirmedAt(stale.ID, now.Add(-150*time.Hour))

	first, err := env.uc.AutoCancelStaleOrders(now)
	require.NoError(t, err)
	second, err := env.uc.AutoCancelStaleOrders(now)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Zero(t, second, "la segunda corrida no encuentra nada que cancelar")
	assert.Len(t, env.chat.notesFor(stale.ID), 1, "una sola nota aunque corra dos veces")
}

// ──────────────────────────────────────────────────────────────────────────────
// Barrido de recordatorios de pago
// ──────────────────────────────────────────────────────────────────────────────

// seedOverdueActivity agenda una actividad de revisión vencida sobre la orden.
func (e *testEnv) seedOverdueActivity(id, orderID string, due time.Time) {
	_ = e.acts.Create(&entity.Activity{
		ID:      id,
		OrderID: orderID,
		Type:    entity.ActivityTypeTodo,
		Summary: "Revisión de aprobación financiera",
		UserID:  tFinUserID,
		DueDate: due,
	})
}

func TestReminders_NotaANombreDelVendedor(t *testing.T) {
	env := newTestEnv()
	now := time.Now()

	order := env.seedOrder("sw5", entity.OrderStateSale, "pending", true)
	env.seedOverdueActivity("act1", order.ID, now.Add(-2*time.Hour))

	sent, err := env.uc.SendPaymentReminders(now)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	notes := env.chat.notesFor(order.ID)
	require.Len(t, notes, 1)
	assert.Equal(t, tSellerID, notes[0].AuthorID, "el recordatorio se publica a nombre del vendedor")
	assert.Equal(t, entity.MessageTypeComment, notes[0].Type)
	assert.Contains(t, notes[0].Body, "vencido")
}

func TestReminders_SinVendedor_SeOmiteYContinua(t *testing.T) {
	env := newTestEnv()
	now := time.Now()

	sinVendedor := env.seedOrder("sw6", entity.OrderStateSale, "pending", true)
	sinVendedor.UserID = nil
	_ = env.orders.Update(sinVendedor)
	env.seedOverdueActivity("act2", sinVendedor.ID, now.Add(-time.Hour))

	conVendedor := env.seedOrder("sw7", entity.OrderStateSale, "pending", true)
	env.seedOverdueActivity("act3", conVendedor.ID, now.Add(-time.Hour))

	sent, err := env.uc.SendPaymentReminders(now)
	require.NoError(t, err, "una orden sin vendedor no aborta el barrido")
	assert.Equal(t, 1, sent)

	assert.Empty(t, env.chat.notesFor(sinVendedor.ID))
	assert.Len(t, env.chat.notesFor(conVendedor.ID), 1)
}

func TestReminders_ActividadNoVencida_NoAvisa(t *testing.T) {
	env := newTestEnv()
	now := time.Now()

	order := env.seedOrder("sw8", entity.OrderStateSale, "pending", true)
	env.seedOverdueActivity("act4", order.ID, now.Add(24*time.Hour)) // aún no vence

	sent, err := env.uc.SendPaymentReminders(now)
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, env.chat.notesFor(order.ID))
}

func TestReminders_OrdenYaCobrada_NoAvisa(t *testing.T) {
	env := newTestEnv()
	now := time.Now()

	// La actividad venció pero la orden ya salió de "pending".
	order := env.seedOrder("sw9", entity.OrderStateSale, "collected", true)
	env.seedOverdueActivity("act5", order.ID, now.Add(-time.Hour))

	sent, err := env.uc.SendPaymentReminders(now)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestReminders_SinActividades_CeroEnviados(t *testing.T) {
	env := newTestEnv()

	sent, err := env.uc.SendPaymentReminders(time.Now())
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestReminders_VariasActividadesMismaOrden_UnaSolaNota(t *testing.T) {
	env := newTestEnv()
	now := time.Now()

	order := env.seedOrder("sw10", entity.OrderStateSale, "pending", true)
	env.seedOverdueActivity("act6", order.ID, now.Add(-3*time.Hour))
	env.seedOverdueActivity("act7", order.ID, now.Add(-time.Hour))

	sent, err := env.uc.SendPaymentReminders(now)
	require.NoError(t, err)
	assert.Equal(t, 1, sent, "las actividades se deduplican por orden")
	assert.Len(t, env.chat.notesFor(order.ID), 1)
}
