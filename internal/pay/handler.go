package pay

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Hetgajjar1/MEP-Flow-Designer/internal/auth"
	"github.com/Hetgajjar1/MEP-Flow-Designer/internal/repo"
)

const premiumPriceKopecks = 49900 // 499 ₽ за месяц

type Handler struct {
	Client *Client
	Repo   repo.Repository
}

type CheckoutResponse struct {
	PaymentURL string `json:"payment_url"`
	PaymentID  string `json:"payment_id"`
}

// Checkout starts a premium subscription payment and returns the provider
// payment page URL. The order id encodes the user so the notification can
// activate the right account.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := fmt.Sprintf("premium-%d-%d", userID, time.Now().Unix())
	resp, err := h.Client.Init(InitRequest{
		Amount:      premiumPriceKopecks,
		OrderID:     orderID,
		Description: "MEP Flow Designer Premium (1 month)",
	})
	if err != nil {
		log.Printf("payment init error: %v", err)
		http.Error(w, "Payment error", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CheckoutResponse{
		PaymentURL: resp.PaymentURL,
		PaymentID:  resp.PaymentID,
	})
}

// Notify handles the provider callback. On CONFIRMED payments the user from
// the order id gets a month of premium.
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	token, _ := data["Token"].(string)
	if !h.Client.VerifyToken(data, token) {
		http.Error(w, "Bad signature", http.StatusForbidden)
		return
	}

	status, _ := data["Status"].(string)
	orderID, _ := data["OrderId"].(string)
	if status == "CONFIRMED" {
		userID, err := userFromOrder(orderID)
		if err != nil {
			log.Printf("bad order id %q: %v", orderID, err)
		} else if err := h.Repo.SetPremium(r.Context(), userID, time.Now().Add(30*24*time.Hour)); err != nil {
			log.Printf("SetPremium error: %v", err)
		}
	}

	// Провайдер ждет именно OK
	w.Write([]byte("OK"))
}

func userFromOrder(orderID string) (int, error) {
	parts := strings.Split(orderID, "-")
	if len(parts) != 3 || parts[0] != "premium" {
		return 0, fmt.Errorf("unexpected order format")
	}
	return strconv.Atoi(parts[1])
}
