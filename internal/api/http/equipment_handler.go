package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"agroverse-backend/internal/domain"
	"agroverse-backend/internal/service"
	"agroverse-backend/internal/storage"
)

// EquipmentHandler serves equipment listings. Create and Update accept
// multipart forms so an image can ride along with the fields.
type EquipmentHandler struct {
	equipment service.EquipmentService
	files     storage.FileStore
	maxUpload int64 // bytes
}

func NewEquipmentHandler(equipment service.EquipmentService, files storage.FileStore, maxUploadMB int64) *EquipmentHandler {
	return &EquipmentHandler{
		equipment: equipment,
		files:     files,
		maxUpload: maxUploadMB << 20,
	}
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipment.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Equipment not found")
		return
	}

	eq, err := h.equipment.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) MyEquipment(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	items, err := h.equipment.ListMine(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	eq := &domain.Equipment{
		Name:        r.FormValue("name"),
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		Terms:       r.FormValue("terms"),
		IsAvailable: true,
	}

	if v := r.FormValue("pricePerDay"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid price")
			return
		}
		eq.PricePerDay = price
	}
	if v := r.FormValue("isAvailable"); v != "" {
		eq.IsAvailable = v == "true"
	}
	if v := r.FormValue("specifications"); v != "" {
		if err := json.Unmarshal([]byte(v), &eq.Specifications); err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid specifications")
			return
		}
	}

	imagePath, err := h.saveImage(r)
	if errors.Is(err, errUnsupportedImage) {
		respondMessage(w, http.StatusBadRequest, "Only JPEG and PNG images are allowed")
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	eq.Image = imagePath

	if err := h.equipment.Create(r.Context(), claims.UserID, claims.Role, eq); err != nil {
		if imagePath != "" {
			h.files.Remove(imagePath)
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Equipment not found")
		return
	}

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	upd := &service.EquipmentUpdate{}
	if v, ok := formField(r, "name"); ok {
		upd.Name = &v
	}
	if v, ok := formField(r, "category"); ok {
		upd.Category = &v
	}
	if v, ok := formField(r, "description"); ok {
		upd.Description = &v
	}
	if v, ok := formField(r, "location"); ok {
		upd.Location = &v
	}
	if v, ok := formField(r, "terms"); ok {
		upd.Terms = &v
	}
	if v, ok := formField(r, "pricePerDay"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid price")
			return
		}
		upd.PricePerDay = &price
	}
	if v, ok := formField(r, "isAvailable"); ok {
		avail := v == "true"
		upd.IsAvailable = &avail
	}
	if v, ok := formField(r, "specifications"); ok && v != "" {
		if err := json.Unmarshal([]byte(v), &upd.Specifications); err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid specifications")
			return
		}
	}

	imagePath, err := h.saveImage(r)
	if errors.Is(err, errUnsupportedImage) {
		respondMessage(w, http.StatusBadRequest, "Only JPEG and PNG images are allowed")
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	if imagePath != "" {
		upd.Image = &imagePath
	}

	eq, err := h.equipment.Update(r.Context(), claims.UserID, id, upd)
	if err != nil {
		if imagePath != "" {
			h.files.Remove(imagePath)
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eq)
}

type toggleAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

func (h *EquipmentHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Equipment not found")
		return
	}

	var req toggleAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	eq, err := h.equipment.ToggleAvailability(r.Context(), claims.UserID, id, req.IsAvailable)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "No token, authorization denied")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Equipment not found")
		return
	}

	if err := h.equipment.Delete(r.Context(), claims.UserID, id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Equipment removed")
}

var errUnsupportedImage = errors.New("unsupported image type")

// saveImage stores an uploaded "image" part, if present, and returns its
// public path. Absence of the part is not an error.
func (h *EquipmentHandler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read image upload: %w", err)
	}
	defer file.Close()

	if !allowedImageType(header) {
		return "", errUnsupportedImage
	}

	return h.files.SaveEquipmentImage(header.Filename, file)
}

func allowedImageType(header *multipart.FileHeader) bool {
	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}

// formField reports whether a multipart field was present at all, so absent
// fields can be distinguished from empty ones.
func formField(r *http.Request, name string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals, ok := r.MultipartForm.Value[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return int32(id), nil
}
