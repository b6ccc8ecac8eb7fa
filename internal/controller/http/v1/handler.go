package v1

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/port_assigner/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type PortsRepository interface {
	Racks(ctx context.Context) ([]string, error)
	SlotsByRack(ctx context.Context, rack string, limit, offset uint64) ([]*domain.Slot, int, error)
}

type RacksHandler struct {
	log   *slog.Logger
	ports PortsRepository
}

func NewRacksHandler(log *slog.Logger, ports PortsRepository) *RacksHandler {
	return &RacksHandler{
		log:   log,
		ports: ports,
	}
}

type GetRacksResponse struct {
	Racks []string `json:"racks"`
}

func (h *RacksHandler) GetRacks(w http.ResponseWriter, r *http.Request) {
	racks, err := h.ports.Racks(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	if racks == nil {
		racks = []string{}
	}

	h.writeJSON(w, r, GetRacksResponse{Racks: racks})
}

type GetPortsByRackResponse struct {
	Rack       string         `json:"rack"`
	Slots      []*domain.Slot `json:"slots"`
	Pagination Pagination     `json:"pagination"`
}

func (h *RacksHandler) GetPortsByRack(w http.ResponseWriter, r *http.Request) {
	rack := chi.URLParam(r, "rack")

	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slots, total, err := h.ports.SlotsByRack(r.Context(), rack, limit, (page-1)*limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	if total == 0 {
		http.Error(w, "rack not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, r, GetPortsByRackResponse{
		Rack:       rack,
		Slots:      slots,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *RacksHandler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data) //nolint:errcheck
}

func (h *RacksHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.String("err", err.Error()),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = defaultPage, defaultLimit

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page, must be a positive integer")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	if page-1 > math.MaxInt64/limit {
		return 0, 0, errors.New("invalid page, out of range")
	}

	return page, limit, nil
}
