package wholesale

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-dev/mayoreo-api/internal/application/dto"
	"github.com/wb-dev/mayoreo-api/internal/domain"
	"github.com/wb-dev/mayoreo-api/internal/domain/credit"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
	"github.com/wb-dev/mayoreo-api/internal/domain/repository"
	domwholesale "github.com/wb-dev/mayoreo-api/internal/domain/wholesale"
	"github.com/wb-dev/mayoreo-api/pkg/logger"
)

// Textos del flujo (actividad de revisión y notas de rechazo).
const (
	reviewSummary = "Revisión de aprobación financiera"
	reviewNote    = "Revisar y aprobar el estado financiero de esta orden de venta al mayoreo."

	rejectedCancelBody = "Pago rechazado: la orden fue cancelada porque aún no había sido despachada."
	rejectedKeptBody   = "Pago rechazado: la orden ya fue despachada; revisar el caso manualmente."
)

// UseCase flujo de aprobación financiera de ventas al mayoreo: creación y
// edición de órdenes, hooks de confirmación/cancelación, botones de cambio de
// estado y barridos periódicos (en sweeps.go).
type UseCase struct {
	orderRepo     repository.OrderRepository
	customerRepo  repository.CustomerRepository
	companyRepo   repository.CompanyRepository
	activityRepo  repository.ActivityRepository
	userRepo      repository.UserRepository
	teamRepo      repository.TeamRepository
	warehouseRepo repository.WarehouseRepository
	chatter       Chatter
	cfg           Config
	log           *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	activityRepo repository.ActivityRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	warehouseRepo repository.WarehouseRepository,
	chatter Chatter,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		companyRepo:   companyRepo,
		activityRepo:  activityRepo,
		userRepo:      userRepo,
		teamRepo:      teamRepo,
		warehouseRepo: warehouseRepo,
		chatter:       chatter,
		cfg:           cfg,
		log:           log,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación y edición
// ──────────────────────────────────────────────────────────────────────────────

// CreateOrder crea una cotización. Si viene marcada como mayoreo se fuerza el
// equipo de ventas configurado, aunque la petición traiga otro TeamID.
func (uc *UseCase) CreateOrder(actor domain.Actor, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" || in.AmountTotal.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != actor.CompanyID {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(actor.CompanyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}

	creditAmount := decimal.Zero
	if in.CreditAmount != nil {
		creditAmount = *in.CreditAmount
	}
	if err := credit.Validate(in.IsCreditSale, creditAmount, in.AmountTotal, customer.CreditLimit); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.SalesOrder{
		ID:             uuid.New().String(),
		CompanyID:      actor.CompanyID,
		Name:           "SO-" + strings.ToUpper(uuid.New().String()[:8]),
		CustomerID:     customer.ID,
		UserID:         nilIfEmpty(in.UserID),
		TeamID:         nilIfEmpty(in.TeamID),
		WarehouseID:    nilIfEmpty(in.WarehouseID),
		CurrencyCode:   company.CurrencyCode,
		State:          entity.OrderStateDraft,
		AmountTotal:    in.AmountTotal,
		IsWholesale:    in.IsWholesale,
		IsCreditSale:   in.IsCreditSale,
		CreditAmount:   creditAmount,
		CarrierName:    in.CarrierName,
		DeliveryStatus: entity.DeliveryStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if order.IsWholesale {
		uc.forceWholesaleTeam(order)
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return uc.toResponse(order, customer), nil
}

// UpdateOrder edita una orden. Marcar is_wholesale fuerza el equipo de mayoreo
// sobre cualquier team_id de la misma escritura. Desmarcarlo NO resetea
// finance_status ni confirmed_at: el origen no define ese comportamiento y se
// deja documentado como hueco conocido.
func (uc *UseCase) UpdateOrder(actor domain.Actor, orderID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.getOwnedOrder(actor, orderID)
	if err != nil {
		return nil, err
	}
	if in.UserID != nil {
		order.UserID = nilIfEmpty(*in.UserID)
	}
	if in.TeamID != nil {
		order.TeamID = nilIfEmpty(*in.TeamID)
	}
	if in.WarehouseID != nil {
		order.WarehouseID = nilIfEmpty(*in.WarehouseID)
	}
	if in.CarrierName != nil {
		order.CarrierName = *in.CarrierName
	}
	if in.IsCreditSale != nil {
		order.IsCreditSale = *in.IsCreditSale
	}
	if in.CreditAmount != nil {
		order.CreditAmount = *in.CreditAmount
	}
	if in.IsWholesale != nil {
		order.IsWholesale = *in.IsWholesale
		if order.IsWholesale {
			uc.forceWholesaleTeam(order)
		}
	}

	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if err := credit.Validate(order.IsCreditSale, order.CreditAmount, order.AmountTotal, customer.CreditLimit); err != nil {
		return nil, err
	}

	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return uc.toResponse(order, customer), nil
}

// GetOrder devuelve una orden con sus campos calculados.
func (uc *UseCase) GetOrder(actor domain.Actor, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.getOwnedOrder(actor, orderID)
	if err != nil {
		return nil, err
	}
	customer, _ := uc.customerRepo.GetByID(order.CustomerID)
	return uc.toResponse(order, customer), nil
}

// ListOrders lista las órdenes de la empresa del actor.
func (uc *UseCase) ListOrders(actor domain.Actor, limit, offset int) ([]*dto.OrderResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	orders, err := uc.orderRepo.ListByCompany(actor.CompanyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		// En listados no se resuelve el límite del cliente (evita N+1);
		// el detalle sí lo incluye.
		out = append(out, uc.toResponse(o, nil))
	}
	return out, nil
}

// WholesaleDefaults sugerencias de equipo y bodega al marcar mayoreo en la UI.
// Asistencia de captura: no se valida ni se impone al guardar.
func (uc *UseCase) WholesaleDefaults(actor domain.Actor) (*dto.WholesaleDefaultsResponse, error) {
	resp := &dto.WholesaleDefaultsResponse{}
	if team, err := uc.teamRepo.FindByName(actor.CompanyID, uc.cfg.TeamName); err == nil && team != nil {
		resp.TeamID = &team.ID
		resp.TeamName = team.Name
	}
	if wh, err := uc.warehouseRepo.FindByName(actor.CompanyID, uc.cfg.WarehouseName); err == nil && wh != nil {
		resp.WarehouseID = &wh.ID
		resp.WarehouseName = wh.Name
	}
	return resp, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Hooks de ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

// Confirm confirma la orden (draft → sale). Para órdenes de mayoreo estampa la
// fecha de confirmación, inicia el flujo en "pending", agenda la actividad de
// revisión financiera y suscribe a los grupos interesados. Los efectos
// secundarios fallidos se registran en el log pero no revierten la
// confirmación.
func (uc *UseCase) Confirm(actor domain.Actor, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.getOwnedOrder(actor, orderID)
	if err != nil {
		return nil, err
	}
	if order.State != entity.OrderStateDraft {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	order.State = entity.OrderStateSale
	if order.IsWholesale {
		order.ConfirmedAt = &now
		order.FinanceStatus = domwholesale.StatusPending
	}
	order.UpdatedAt = now
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if order.IsWholesale {
		uc.scheduleFinanceReview(actor, order, now)
		uc.subscribeInterestedGroups(order)
	}

	customer, _ := uc.customerRepo.GetByID(order.CustomerID)
	return uc.toResponse(order, customer), nil
}

// Cancel cancela la orden. Para órdenes de mayoreo primero completa las
// actividades abiertas y limpia el estado financiero.
func (uc *UseCase) Cancel(actor domain.Actor, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.getOwnedOrder(actor, orderID)
	if err != nil {
		return nil, err
	}
	if order.State != entity.OrderStateCancel {
		if err := uc.cancelOrder(order, true); err != nil {
			return nil, err
		}
	}
	customer, _ := uc.customerRepo.GetByID(order.CustomerID)
	return uc.toResponse(order, customer), nil
}

// cancelOrder hook de cancelación compartido con el barrido automático.
// clearFinance limpia el estado financiero (flujo abandonado); el rechazo lo
// deja en "rejected" para que quede visible el motivo.
func (uc *UseCase) cancelOrder(order *entity.SalesOrder, clearFinance bool) error {
	now := time.Now()
	if order.IsWholesale {
		uc.completeOpenActivities(order.ID, now)
		if clearFinance {
			order.FinanceStatus = ""
		}
	}
	order.State = entity.OrderStateCancel
	order.UpdatedAt = now
	return uc.orderRepo.Update(order)
}

// ──────────────────────────────────────────────────────────────────────────────
// Botones de cambio de estado financiero
// Invocar desde un estado origen no permitido NO es error: se ignora en
// silencio y se devuelve la orden sin cambios (comportamiento heredado).
// ──────────────────────────────────────────────────────────────────────────────

// SetToReceived pending → received. Si el transportista es "Pick up" estampa
// la guía de recolección; completa la actividad de revisión pendiente.
func (uc *UseCase) SetToReceived(actor domain.Actor, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.getOwnedOrder(actor, orderID)
	if err != nil {
		return nil, err
	}
	if !domwholesale.CanTransition(order.FinanceStatus, domwholesale.StatusReceived) {
		return uc.responseFor(order), nil
	}

	order.FinanceStatus = domwholesale.StatusReceived
	if order.CarrierName == entity.CarrierPickup {
		order.CarrierTrackingRef = "Pick-up"
		order.TotalCarrierTracking = 1
	}
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	uc.completeOpenActivities(order.ID, time.Now())
	return uc.responseFor(order), nil
}

// SetToValidation received → validation.
func (uc *UseCase) SetToValidation(actor domain.Actor, orderID string) (*dto.OrderResponse, error) {
	return uc.transition(actor, orderID, domwholesale.StatusValidation)
}

// SetToPartiallyCollected validation → partially_collected.
func (uc *UseCase) SetToPartiallyCollected(actor domain.Actor, orderID string) (*dto.OrderResponse, error) {
	return uc.transition(actor, orderID, domwholesale.StatusPartiallyCollected)
}

// SetToCollected {validation, partially_collected} → collected.
func (uc *UseCase) SetToCollected(actor domain.Actor, orderID string) (*dto.OrderResponse, error) {
	return uc.transition(actor, orderID, domwholesale.StatusCollected)
}

// SetToRejected {validation, partially_collected} → rejected. Si la orden aún
// no fue despachada (sin fecha efectiva y bodega sin despachar) se cancela;
// en ambos casos se publica una nota explicando el resultado.
func (uc *UseCase) SetToRejected(actor domain.Actor, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.getOwnedOrder(actor, orderID)
	if err != nil {
		return nil, err
	}
	if !domwholesale.CanTransition(order.FinanceStatus, domwholesale.StatusRejected) {
		return uc.responseFor(order), nil
	}

	order.FinanceStatus = domwholesale.StatusRejected
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}

	body := rejectedKeptBody
	if !order.IsDispatched() {
		if err := uc.cancelOrder(order, false); err != nil {
			uc.log.Warn().Err(err).Str("order", order.Name).Msg("no se pudo cancelar la orden rechazada")
		} else {
			body = rejectedCancelBody
		}
	}
	if err := uc.chatter.PostNote(order.ID, body, "", entity.MessageTypeNotification); err != nil {
		uc.log.Warn().Err(err).Str("order", order.Name).Msg("no se pudo publicar la nota de rechazo")
	}
	return uc.responseFor(order), nil
}

// transition aplica un cambio de estado sin efectos secundarios adicionales.
func (uc *UseCase) transition(actor domain.Actor, orderID, target string) (*dto.OrderResponse, error) {
	order, err := uc.getOwnedOrder(actor, orderID)
	if err != nil {
		return nil, err
	}
	if !domwholesale.CanTransition(order.FinanceStatus, target) {
		return uc.responseFor(order), nil
	}
	order.FinanceStatus = target
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return uc.responseFor(order), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Efectos secundarios de la confirmación
// ──────────────────────────────────────────────────────────────────────────────

// scheduleFinanceReview agenda la actividad de revisión financiera con plazo
// configurable (72h por defecto). Asignada al primer usuario de finanzas; si
// el grupo no resuelve, al actor que confirma.
func (uc *UseCase) scheduleFinanceReview(actor domain.Actor, order *entity.SalesOrder, now time.Time) {
	assignee := actor.UserID
	if users, err := uc.userRepo.ListByGroup(entity.GroupFinanzas); err == nil && len(users) > 0 {
		assignee = users[0].ID
	}
	activity := &entity.Activity{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Type:      entity.ActivityTypeTodo,
		Summary:   reviewSummary,
		Note:      reviewNote,
		UserID:    assignee,
		DueDate:   now.Add(time.Duration(uc.cfg.ReviewDueHours) * time.Hour),
		CreatedAt: now,
	}
	if err := uc.activityRepo.Create(activity); err != nil {
		uc.log.Warn().Err(err).Str("order", order.Name).Msg("no se pudo agendar la revisión financiera")
	}
}

// subscribeInterestedGroups suscribe a los miembros de ventas_mayoreo,
// finanzas y ventas_comercial como seguidores de la orden. Si algún grupo no
// resuelve se abandona toda la suscripción sin propagar el error: la
// confirmación ya quedó hecha.
func (uc *UseCase) subscribeInterestedGroups(order *entity.SalesOrder) {
	groups := []string{entity.GroupVentasMayoreo, entity.GroupFinanzas, entity.GroupVentasComercial}
	seen := make(map[string]bool)
	var userIDs []string
	for _, g := range groups {
		users, err := uc.userRepo.ListByGroup(g)
		if err != nil {
			uc.log.Warn().Err(err).Str("group", g).Str("order", order.Name).
				Msg("grupo no resuelto; se omite la suscripción de seguidores")
			return
		}
		for _, u := range users {
			if !seen[u.ID] {
				seen[u.ID] = true
				userIDs = append(userIDs, u.ID)
			}
		}
	}
	if len(userIDs) == 0 {
		return
	}
	if err := uc.chatter.Subscribe(order.ID, userIDs); err != nil {
		uc.log.Warn().Err(err).Str("order", order.Name).Msg("no se pudieron suscribir seguidores")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func (uc *UseCase) getOwnedOrder(actor domain.Actor, orderID string) (*entity.SalesOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != actor.CompanyID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// forceWholesaleTeam asigna el equipo de mayoreo configurado. Si el equipo no
// existe se deja la asignación actual (solo se registra el aviso).
func (uc *UseCase) forceWholesaleTeam(order *entity.SalesOrder) {
	team, err := uc.teamRepo.FindByName(order.CompanyID, uc.cfg.TeamName)
	if err != nil || team == nil {
		uc.log.Warn().Str("team", uc.cfg.TeamName).Str("order", order.Name).
			Msg("equipo de mayoreo no encontrado; se conserva la asignación actual")
		return
	}
	order.TeamID = &team.ID
}

// completeOpenActivities marca como hechas las actividades "todo" abiertas de
// la orden. Errores se registran, no se propagan.
func (uc *UseCase) completeOpenActivities(orderID string, doneAt time.Time) {
	activities, err := uc.activityRepo.ListOpenTodoByOrder(orderID)
	if err != nil {
		uc.log.Warn().Err(err).Str("order_id", orderID).Msg("no se pudieron listar actividades abiertas")
		return
	}
	if len(activities) == 0 {
		return
	}
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	if err := uc.activityRepo.MarkDone(ids, doneAt); err != nil {
		uc.log.Warn().Err(err).Str("order_id", orderID).Msg("no se pudieron completar actividades")
	}
}

// responseFor arma la respuesta resolviendo el cliente para el límite de crédito.
func (uc *UseCase) responseFor(order *entity.SalesOrder) *dto.OrderResponse {
	customer, _ := uc.customerRepo.GetByID(order.CustomerID)
	return uc.toResponse(order, customer)
}

// toResponse calcula los campos derivados: división crédito/débito, etiqueta
// del estado financiero y límite de crédito del cliente (espejo, solo lectura).
func (uc *UseCase) toResponse(order *entity.SalesOrder, customer *entity.Customer) *dto.OrderResponse {
	creditOut, debitOut := credit.Split(order.AmountTotal, order.CreditAmount, order.IsCreditSale)
	partnerLimit := decimal.Zero
	if customer != nil {
		partnerLimit = customer.CreditLimit
	}
	return &dto.OrderResponse{
		ID:           order.ID,
		CompanyID:    order.CompanyID,
		Name:         order.Name,
		CustomerID:   order.CustomerID,
		UserID:       order.UserID,
		TeamID:       order.TeamID,
		WarehouseID:  order.WarehouseID,
		CurrencyCode: order.CurrencyCode,
		State:        order.State,
		AmountTotal:  order.AmountTotal,

		IsWholesale:        order.IsWholesale,
		WholesaleDisplay:   order.WholesaleDisplay(),
		FinanceStatus:      order.FinanceStatus,
		FinanceStatusLabel: domwholesale.Label(order.FinanceStatus),
		ConfirmedAt:        order.ConfirmedAt,

		IsCreditSale:       order.IsCreditSale,
		CreditAmount:       creditOut,
		DebitAmount:        debitOut,
		TotalAmount:        order.AmountTotal,
		PartnerCreditLimit: partnerLimit,

		CarrierName:          order.CarrierName,
		CarrierTrackingRef:   order.CarrierTrackingRef,
		TotalCarrierTracking: order.TotalCarrierTracking,
		DeliveryStatus:       order.DeliveryStatus,
		EffectiveDate:        order.EffectiveDate,

		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
