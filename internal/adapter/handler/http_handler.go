package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/controlhs/datacore/internal/core/domain"
	"github.com/controlhs/datacore/internal/core/service"
	"github.com/controlhs/datacore/internal/port"
)

type HTTPHandler struct {
	auth       *service.AuthService
	selections *service.SelectionService
	reports    *service.ReportService
	access     *service.AccessService
	catalog    port.CatalogRepository
	log        *logrus.Logger
}

func NewHTTPHandler(
	auth *service.AuthService,
	selections *service.SelectionService,
	reports *service.ReportService,
	access *service.AccessService,
	catalog port.CatalogRepository,
	log *logrus.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		auth:       auth,
		selections: selections,
		reports:    reports,
		access:     access,
		catalog:    catalog,
		log:        log,
	}
}

// Register wires all routes onto the mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/health", h.HealthCheck)
	mux.HandleFunc("/api/login", h.Login)
	mux.HandleFunc("/api/logout", h.withAuth(h.Logout))
	mux.HandleFunc("/api/password", h.withAuth(h.ChangePassword))
	mux.HandleFunc("/api/products", h.withAuth(h.ListProducts))
	mux.HandleFunc("/api/selection", h.withAuth(h.Selection))
	mux.HandleFunc("/api/report", h.withAdmin(h.GenerateReport))
	mux.HandleFunc("/api/users", h.withAdmin(h.CreateUser))
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	session, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.log.WithError(err).Error("login failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:     session.Token,
		Username:  session.Username,
		Role:      string(session.Role),
		ExpiresAt: session.ExpiresAt.Unix(),
	})
}

func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.auth.Logout(r.Context(), bearerToken(r)); err != nil {
		h.log.WithError(err).Error("logout failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *HTTPHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	user := sessionFromContext(r.Context())
	err := h.auth.ChangePassword(r.Context(), user.Username, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "current password does not match")
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		h.log.WithError(err).Error("password change failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

type ProductResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.log.WithError(err).Error("list products failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{ID: p.ID, Name: p.Name, Balance: p.Balance})
	}

	writeJSON(w, http.StatusOK, out)
}

type SetSelectionRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type SelectionEntryResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Selection dispatches the draft endpoints: PUT upserts a quantity, GET
// returns the draft snapshot, DELETE discards the draft.
func (h *HTTPHandler) Selection(w http.ResponseWriter, r *http.Request) {
	user := sessionFromContext(r.Context())

	switch r.Method {
	case http.MethodPut:
		var req SetSelectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ProductID == "" {
			writeError(w, http.StatusBadRequest, "missing product_id")
			return
		}
		if req.Quantity < 0 {
			writeError(w, http.StatusBadRequest, "quantity must not be negative")
			return
		}

		h.selections.SetQuantity(user.ID, req.ProductID, req.Quantity)
		writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})

	case http.MethodGet:
		entries := h.selections.Entries(user.ID)
		out := make([]SelectionEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, SelectionEntryResponse{ProductID: e.ProductID, Quantity: e.Quantity})
		}
		writeJSON(w, http.StatusOK, out)

	case http.MethodDelete:
		h.selections.Clear(user.ID)
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// GenerateReport builds the caller's purchase request, streams the
// rendered workbook and discards the draft. An empty draft still
// produces a document with headers and no rows.
func (h *HTTPHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user := sessionFromContext(r.Context())
	entries := h.selections.Entries(user.ID)

	asOf := time.Now()
	_, artifact, err := h.reports.Generate(r.Context(), entries, user.Username, asOf)
	if err != nil {
		h.log.WithError(err).Error("report generation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.selections.Clear(user.ID)

	filename := fmt.Sprintf("purchase-request-%s.xlsx", asOf.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact); err != nil {
		h.log.WithError(err).Error("report download interrupted")
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreateUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *HTTPHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	role := domain.Role(req.Role)
	if role != domain.RoleAdmin && role != domain.RoleUser {
		writeError(w, http.StatusBadRequest, "unknown role")
		return
	}

	user, err := h.auth.CreateUser(r.Context(), req.Username, req.Password, role)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			writeError(w, http.StatusConflict, "username taken")
			return
		}
		h.log.WithError(err).Error("user creation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, CreateUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
