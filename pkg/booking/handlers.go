// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/monitoring"
	"github.com/glambook/salon-service/internal/tracing"
	"github.com/glambook/salon-service/internal/types"
	"github.com/glambook/salon-service/pkg/authentication"
)

type createAppointmentRequest struct {
	ClientName      string  `json:"clientName" validate:"required"`
	ClientEmail     string  `json:"clientEmail" validate:"omitempty,email"`
	ClientPhone     string  `json:"clientPhone"`
	Service         string  `json:"service" validate:"required"`
	StylistName     string  `json:"stylistName" validate:"required"`
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string  `json:"time" validate:"required"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,gt=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	Notes           string  `json:"notes"`
}

type updateAppointmentRequest struct {
	ClientName      *string  `json:"clientName" validate:"omitempty,min=1"`
	ClientEmail     *string  `json:"clientEmail" validate:"omitempty,email"`
	ClientPhone     *string  `json:"clientPhone"`
	Service         *string  `json:"service" validate:"omitempty,min=1"`
	StylistName     *string  `json:"stylistName" validate:"omitempty,min=1"`
	Date            *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time            *string  `json:"time"`
	DurationMinutes *int     `json:"durationMinutes" validate:"omitempty,gt=0"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	Notes           *string  `json:"notes"`
	Status          *string  `json:"status" validate:"omitempty,oneof=pending confirmed completed"`
}

type addStaffMemberRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Specialization       string  `json:"specialization" validate:"required"`
	Rating               float64 `json:"rating" validate:"gte=0,lte=5"`
	NextAppointmentLabel string  `json:"nextAppointmentLabel"`
	AvatarRef            string  `json:"avatarRef"`
}

type addClientRequest struct {
	Name      string `json:"name" validate:"required"`
	LastVisit string `json:"lastVisit" validate:"omitempty,datetime=2006-01-02"`
	AvatarRef string `json:"avatarRef"`
}

type createCampaignRequest struct {
	Channel string `json:"channel" validate:"required,oneof=email sms push"`
	Segment string `json:"segment" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the gateway routes; the router passed in must
// already carry the authentication middleware.
func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v0/appointments", a.listAppointments)
	router.Post("/api/v0/appointments", a.createAppointment)
	router.Put("/api/v0/appointments/{id}", a.updateAppointment)
	router.Get("/api/v0/staff", a.listStaff)
	router.Post("/api/v0/staff", a.addStaffMember)
	router.Get("/api/v0/clients", a.listClients)
	router.Post("/api/v0/clients", a.addClient)
	router.Get("/api/v0/campaigns", a.listCampaigns)
	router.Post("/api/v0/campaigns", a.createCampaign)
}

func (a *API) listAppointments(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	appointments, err := a.service.ListAppointments(r.Context(), tenantID)
	if err != nil {
		a.logger.Errorf("failed to list appointments: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"appointments": appointments})
}

func (a *API) createAppointment(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid fields")
		return
	}

	appointment, err := a.service.CreateAppointment(r.Context(), tenantID, CreateAppointmentParams{
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		Service:         req.Service,
		StylistName:     req.StylistName,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Notes:           req.Notes,
	})
	if err != nil {
		a.logger.Errorf("failed to create appointment: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "appointment": appointment})
}

func (a *API) updateAppointment(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")

	var req updateAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid fields")
		return
	}

	params := UpdateAppointmentParams{
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		Service:         req.Service,
		StylistName:     req.StylistName,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Notes:           req.Notes,
	}
	if req.Status != nil {
		status := types.AppointmentStatus(*req.Status)
		params.Status = &status
	}

	appointment, err := a.service.UpdateAppointment(r.Context(), tenantID, id, params)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "appointment not found")
			return
		}
		a.logger.Errorf("failed to update appointment: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "appointment": appointment})
}

func (a *API) listStaff(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	staff, err := a.service.ListStaff(r.Context(), tenantID)
	if err != nil {
		a.logger.Errorf("failed to list staff: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"staff": staff})
}

func (a *API) addStaffMember(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req addStaffMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid fields")
		return
	}

	member, err := a.service.AddStaffMember(r.Context(), tenantID, AddStaffMemberParams{
		Name:                 req.Name,
		Specialization:       req.Specialization,
		Rating:               req.Rating,
		NextAppointmentLabel: req.NextAppointmentLabel,
		AvatarRef:            req.AvatarRef,
	})
	if err != nil {
		a.logger.Errorf("failed to add staff member: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "staffMember": member})
}

func (a *API) listClients(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	clients, err := a.service.ListClients(r.Context(), tenantID)
	if err != nil {
		a.logger.Errorf("failed to list clients: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"clients": clients})
}

func (a *API) addClient(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req addClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid fields")
		return
	}

	client, err := a.service.AddClient(r.Context(), tenantID, AddClientParams{
		Name:      req.Name,
		LastVisit: req.LastVisit,
		AvatarRef: req.AvatarRef,
	})
	if err != nil {
		a.logger.Errorf("failed to add client: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "client": client})
}

func (a *API) listCampaigns(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	campaigns, err := a.service.ListCampaigns(r.Context(), tenantID)
	if err != nil {
		a.logger.Errorf("failed to list campaigns: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"campaigns": campaigns})
}

func (a *API) createCampaign(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid fields")
		return
	}

	campaign, err := a.service.CreateCampaign(r.Context(), tenantID, CreateCampaignParams{
		Channel: types.CampaignChannel(req.Channel),
		Segment: req.Segment,
		Message: req.Message,
	})
	if err != nil {
		a.logger.Errorf("failed to create campaign: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "campaign": campaign})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
