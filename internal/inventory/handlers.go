package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/farmfresh/inventory-api/internal/common"
)

// Handler exposes the inventory CRUD endpoints.
type Handler struct {
	service *Service
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{service: cfg.Service}
}

// formValue decodes a JSON field that may arrive as a string or a bare
// number. The browser form posts strings; API clients tend to send numbers.
type formValue string

// UnmarshalJSON accepts both string and numeric JSON values.
func (v *formValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*v = formValue(n.String())
		return nil
	}
	return fmt.Errorf("value must be a string or number")
}

type submitPayload struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Category    string    `json:"category"`
	Quantity    formValue `json:"quantity"`
	Rate        formValue `json:"rate"`
	Location    string    `json:"location"`
}

func (p submitPayload) toInput() Input {
	return Input{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Category:    p.Category,
		Quantity:    string(p.Quantity),
		Rate:        string(p.Rate),
		Location:    p.Location,
	}
}

// SubmitForm handles POST /submit-form.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "inventory service not configured")
		return
	}
	in, err := decodeSubmission(r, true)
	if err != nil {
		h.writeError(w, err, "Failed to store form data!")
		return
	}
	if _, err := h.service.Create(r.Context(), in); err != nil {
		h.writeError(w, err, "Failed to store form data!")
		return
	}
	common.JSONSuccess(w, http.StatusOK, common.Envelope{Message: "Form data stored successfully!"})
}

// GetStock handles GET /get-stock.
func (h *Handler) GetStock(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "inventory service not configured")
		return
	}
	records, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to fetch stock items!")
		return
	}
	common.JSONSuccess(w, http.StatusOK, common.Envelope{Data: records})
}

// GetProductDetails handles GET /get-product-details/{productId}.
func (h *Handler) GetProductDetails(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "inventory service not configured")
		return
	}
	rec, err := h.service.Get(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		h.writeError(w, err, "Failed to fetch product details!")
		return
	}
	common.JSONSuccess(w, http.StatusOK, common.Envelope{Product: rec})
}

// UpdateProduct handles PUT /update-product/{productId}.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "inventory service not configured")
		return
	}
	in, err := decodeSubmission(r, false)
	if err != nil {
		h.writeError(w, err, "Failed to update product!")
		return
	}
	rec, err := h.service.Update(r.Context(), chi.URLParam(r, "productId"), in)
	if err != nil {
		h.writeError(w, err, "Failed to update product!")
		return
	}
	common.JSONSuccess(w, http.StatusOK, common.Envelope{Message: "Product updated successfully!", Data: rec})
}

// DeleteProduct handles DELETE /delete-product/{productId}.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "inventory service not configured")
		return
	}
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "productId")); err != nil {
		h.writeError(w, err, "Failed to delete product!")
		return
	}
	common.JSONSuccess(w, http.StatusOK, common.Envelope{Message: "Product deleted successfully!"})
}

// decodeSubmission reads a create/update body from either a JSON or a
// urlencoded form request. withID controls whether productId is read from the
// body (create) or ignored because it comes from the URL (update).
func decodeSubmission(r *http.Request, withID bool) (Input, error) {
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	if strings.HasPrefix(ct, "application/json") {
		var payload submitPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return Input{}, common.ValidationError("invalid request payload", err)
		}
		in := payload.toInput()
		if !withID {
			in.ProductID = ""
		}
		return in, nil
	}
	if err := r.ParseForm(); err != nil {
		return Input{}, common.ValidationError("invalid request payload", err)
	}
	in := Input{
		ProductName: r.PostFormValue("productName"),
		Category:    r.PostFormValue("category"),
		Quantity:    r.PostFormValue("quantity"),
		Rate:        r.PostFormValue("rate"),
		Location:    r.PostFormValue("location"),
	}
	if withID {
		in.ProductID = r.PostFormValue("productId")
	}
	return in, nil
}

func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		message := appErr.Message
		if message == "" {
			message = fallback
		}
		common.JSONError(w, status, message)
		return
	}
	common.JSONError(w, http.StatusInternalServerError, fallback)
}
