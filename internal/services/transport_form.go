package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/platform/metrics"
	"logistik-dashboard/internal/ports"
)

const (
	MsgFillAllFields   = "Bitte füllen Sie alle Felder aus."
	MsgInvalidSchedule = "Bitte geben Sie ein gültiges Datum und eine gültige Startzeit an."
	MsgOrderCreated    = "Transport wurde erfolgreich erstellt!"
)

// FormState is a snapshot of the transport order form.
// TravelTime is empty when no travel time is known for the current route.
type FormState struct {
	Draft        domain.TransportOrderDraft
	VehicleTypes []domain.VehicleType
	TravelTime   string
}

// SlotOption is one entry of the start time selector.
type SlotOption struct {
	Time   string
	Booked bool
}

// TransportForm holds the state of one transport order form view and runs its
// backend interactions.
//
// The draft is replaced wholesale on every change. A change of origin or
// destination triggers a travel time lookup. Lookups carry a token: when a
// newer lookup (or a reset) happened while a request was in flight, the older
// result is dropped, so the displayed value always belongs to the latest route.
//
// Methods are safe for concurrent use.
type TransportForm struct {
	backend ports.LogisticsBackend
	log     logger.ILogger
	metrics *metrics.Metrics

	mu           sync.Mutex
	draft        domain.TransportOrderDraft
	vehicleTypes []domain.VehicleType
	travelTime   string
	lookupToken  uint64
}

// NewTransportForm returns an empty form. m may be nil.
func NewTransportForm(b ports.LogisticsBackend, log logger.ILogger, m *metrics.Metrics) *TransportForm {
	if log == nil {
		log = logger.Nop()
	}
	return &TransportForm{
		backend: b,
		log:     log,
		metrics: m,
	}
}

func (f *TransportForm) Snapshot() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return FormState{
		Draft:        f.draft,
		VehicleTypes: slices.Clone(f.vehicleTypes),
		TravelTime:   f.travelTime,
	}
}

// Restore replaces the draft without triggering a lookup, e.g. when a posted
// form is rebuilt on the server.
func (f *TransportForm) Restore(draft domain.TransportOrderDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft = draft
}

// LoadVehicleTypes fills the vehicle type selector. A failure is logged and
// leaves the list empty; the form then cannot be completed.
func (f *TransportForm) LoadVehicleTypes(ctx context.Context) {
	types, err := f.backend.ListVehicleTypes(ctx)
	if err != nil {
		f.log.Warning("Fehler beim Laden der Fahrzeugtypen", logger.Error(err))
		types = nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.vehicleTypes = types
}

// Update applies change to the current draft. When the route changed, the
// travel time is resolved before Update returns.
func (f *TransportForm) Update(ctx context.Context, change func(domain.TransportOrderDraft) domain.TransportOrderDraft) {
	f.mu.Lock()
	prev := f.draft
	f.draft = change(prev)
	routeChanged := prev.Origin != f.draft.Origin || prev.Destination != f.draft.Destination
	f.mu.Unlock()

	if routeChanged {
		f.ResolveTravelTime(ctx)
	}
}

// ResolveTravelTime sets the travel time for the current origin and destination.
// Without a valid route the value is cleared and no request is made. A failed
// request or a missing matrix entry also clears it.
func (f *TransportForm) ResolveTravelTime(ctx context.Context) {
	f.mu.Lock()
	f.lookupToken++
	token := f.lookupToken
	draft := f.draft.Normalized()

	if !draft.HasRoute() {
		f.travelTime = ""
		f.mu.Unlock()
		f.countLookup(metrics.LookupSkipped)
		return
	}
	f.mu.Unlock()

	minutes, found, err := LookupTravelTime(ctx, f.backend, draft.Origin, draft.Destination)

	f.mu.Lock()
	defer f.mu.Unlock()

	if token != f.lookupToken {
		f.countLookup(metrics.LookupStale)
		return
	}

	switch {
	case err != nil:
		f.log.Warning("travel time lookup failed",
			logger.String("von", draft.Origin),
			logger.String("nach", draft.Destination),
			logger.Error(err),
		)
		f.travelTime = ""
		f.countLookup(metrics.LookupFailed)
	case !found:
		f.travelTime = ""
		f.countLookup(metrics.LookupMiss)
	default:
		f.travelTime = minutes
		f.countLookup(metrics.LookupHit)
	}
}

// Submit validates the draft and creates the transport order.
// Only a successful create resets the draft and the travel time.
func (f *TransportForm) Submit(ctx context.Context) Notice {
	f.mu.Lock()
	draft := f.draft
	f.mu.Unlock()

	payload, err := draft.Payload()
	switch {
	case errors.Is(err, domain.ErrIncompleteDraft):
		f.countSubmission(metrics.OutcomeValidation)
		return Notice{Kind: NoticeValidation, Message: MsgFillAllFields}
	case err != nil:
		f.countSubmission(metrics.OutcomeValidation)
		return Notice{Kind: NoticeValidation, Message: MsgInvalidSchedule}
	}

	if err := f.backend.CreateTransportOrder(ctx, payload); err != nil {
		var se *ports.StatusError
		if errors.As(err, &se) {
			f.log.Warning("transport order rejected",
				logger.Int("status", se.Code),
				logger.String("body", se.Body),
			)
			f.countSubmission(metrics.OutcomeRejected)
			return Notice{Kind: NoticeError, Message: fmt.Sprintf("Fehler %d: %s", se.Code, se.Body)}
		}

		f.log.Error("transport order request failed", logger.Error(err))
		f.countSubmission(metrics.OutcomeNetwork)
		return Notice{Kind: NoticeError, Message: "Netzwerkfehler: " + err.Error()}
	}

	f.mu.Lock()
	f.draft = domain.TransportOrderDraft{}
	f.travelTime = ""
	f.lookupToken++
	f.mu.Unlock()

	f.log.Info("transport order created",
		logger.String("von", payload.From),
		logger.String("nach", payload.To),
		logger.String("fahrzeugtyp", payload.VehicleType),
		logger.String("zeitfenster", payload.TimeWindow),
	)
	f.countSubmission(metrics.OutcomeSuccess)

	return Notice{Kind: NoticeSuccess, Message: MsgOrderCreated}
}

// TimeSlotOptions lists all 48 start times. When vehicle type and date are
// set, slots the backend does not report as free are marked booked. Any
// failure is logged and every slot is offered as free.
func (f *TransportForm) TimeSlotOptions(ctx context.Context) []SlotOption {
	f.mu.Lock()
	draft := f.draft.Normalized()
	f.mu.Unlock()

	slots := domain.TimeSlots()
	out := make([]SlotOption, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotOption{Time: s})
	}

	if draft.VehicleType == "" || draft.Date == "" {
		return out
	}

	free, err := f.backend.AvailableTimeSlots(ctx, draft.VehicleType, draft.Date)
	if err != nil {
		f.log.Warning("time slot availability unavailable",
			logger.String("fahrzeugtyp", draft.VehicleType),
			logger.String("datum", draft.Date),
			logger.Error(err),
		)
		return out
	}

	freeSet := make(map[string]struct{}, len(free))
	for _, s := range free {
		freeSet[s] = struct{}{}
	}
	for i := range out {
		if _, ok := freeSet[out[i].Time]; !ok {
			out[i].Booked = true
		}
	}

	return out
}

func (f *TransportForm) countLookup(result string) {
	if f.metrics != nil {
		f.metrics.TravelTimeLookups.WithLabelValues(result).Inc()
	}
}

func (f *TransportForm) countSubmission(outcome string) {
	if f.metrics != nil {
		f.metrics.OrderSubmissions.WithLabelValues(outcome).Inc()
	}
}
