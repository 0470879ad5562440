package handlers

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"logistik-dashboard/internal/api/dto"
	"logistik-dashboard/internal/api/views"
	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/platform/metrics"
	"logistik-dashboard/internal/ports"
	"logistik-dashboard/internal/services"
)

// TransportHandler serves the transport order form. Every request builds its
// own form from the posted or queried fields; nothing is kept between requests.
type TransportHandler struct {
	Backend ports.LogisticsBackend
	Views   *views.Renderer
	Log     logger.ILogger
	Metrics *metrics.Metrics
}

func (h *TransportHandler) Page(w http.ResponseWriter, r *http.Request) {
	form := h.newForm()
	h.render(w, r, http.StatusOK, form, services.Notice{})
}

// Submit creates the order from the posted form. On success the page comes
// back empty; otherwise the entered values are kept.
func (h *TransportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(h.Log, w, r, http.StatusBadRequest, "invalid form body")
		return
	}

	form := h.newForm()
	form.Restore(domain.TransportOrderDraft{
		VehicleType: r.PostForm.Get("fahrzeugtyp"),
		Origin:      r.PostForm.Get("abholort"),
		Destination: r.PostForm.Get("zielort"),
		Date:        r.PostForm.Get("datum"),
		StartTime:   r.PostForm.Get("startzeit"),
	})

	notice := form.Submit(r.Context())

	status := http.StatusOK
	switch notice.Kind {
	case services.NoticeValidation:
		status = http.StatusUnprocessableEntity
	case services.NoticeError:
		status = http.StatusBadGateway
	}

	h.render(w, r, status, form, notice)
}

// TravelTime answers the reactive lookup of the form page.
func (h *TransportHandler) TravelTime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	form := h.newForm()
	form.Update(r.Context(), func(d domain.TransportOrderDraft) domain.TransportOrderDraft {
		return d.WithOrigin(q.Get("abholort")).WithDestination(q.Get("zielort"))
	})

	writeJSON(h.Log, w, r, http.StatusOK, dto.TravelTimeResponse{
		Minutes: form.Snapshot().TravelTime,
	})
}

func (h *TransportHandler) TimeSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	form := h.newForm()
	form.Restore(domain.TransportOrderDraft{
		VehicleType: q.Get("fahrzeugtyp"),
		Date:        q.Get("datum"),
	})

	opts := form.TimeSlotOptions(r.Context())

	res := dto.ListTimeSlotsResponse{Slots: make([]dto.TimeSlotResponse, 0, len(opts))}
	for _, o := range opts {
		res.Slots = append(res.Slots, dto.TimeSlotResponse{Time: o.Time, Booked: o.Booked})
	}

	writeJSON(h.Log, w, r, http.StatusOK, res)
}

func (h *TransportHandler) newForm() *services.TransportForm {
	return services.NewTransportForm(h.Backend, h.Log, h.Metrics)
}

// render loads vehicle types, travel time and slot availability concurrently.
// None of them fails the page: each degrades to an empty value on its own.
func (h *TransportHandler) render(w http.ResponseWriter, r *http.Request, status int, form *services.TransportForm, notice services.Notice) {
	var slots []services.SlotOption

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		form.LoadVehicleTypes(ctx)
		return nil
	})
	g.Go(func() error {
		form.ResolveTravelTime(ctx)
		return nil
	})
	g.Go(func() error {
		slots = form.TimeSlotOptions(ctx)
		return nil
	})
	_ = g.Wait()

	s := form.Snapshot()
	writePage(h.Log, h.Views, w, r, status, views.PageTransport, views.TransportPage{
		Facilities:   domain.Facilities(),
		VehicleTypes: s.VehicleTypes,
		Slots:        slots,
		Draft:        s.Draft,
		TravelTime:   s.TravelTime,
		Notice:       notice,
	})
}
