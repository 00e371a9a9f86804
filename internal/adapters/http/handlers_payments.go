package web

import (
	"net/http"
	"strconv"

	paymentStore "clubdesk/internal/adapters/storage/payment"
	"clubdesk/internal/application/orchestrators"
	paymentDomain "clubdesk/internal/domain/payment"
)

// paymentView is a payment plus its notes rendered from markdown.
type paymentView struct {
	paymentDomain.Payment
	NotesHTML string
}

func toPaymentView(p paymentDomain.Payment) paymentView {
	v := paymentView{Payment: p}
	if p.Notes != "" {
		v.NotesHTML = renderMarkdown(p.Notes)
	}
	return v
}

// handlePayments handles GET (list) and POST (create/update) for /api/payments.
func handlePayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		filter := paymentStore.ListFilter{
			PlayerID: r.URL.Query().Get("player_id"),
			Category: r.URL.Query().Get("category"),
			Status:   r.URL.Query().Get("status"),
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				filter.Limit = n
			}
		}
		if v := r.URL.Query().Get("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				filter.Offset = n
			}
		}

		payments, err := stores.PaymentStore.List(ctx, filter)
		if err != nil {
			internalError(w, err)
			return
		}
		views := make([]paymentView, 0, len(payments))
		for _, p := range payments {
			views = append(views, toPaymentView(p))
		}
		writeJSON(w, views)
		return
	}

	if r.Method == "POST" {
		input := orchestrators.SavePaymentInput{}
		if err := strictDecode(r, &input.Payment); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		p, err := orchestrators.ExecuteSavePayment(ctx, input, orchestrators.SavePaymentDeps{
			PaymentStore: stores.PaymentStore,
			PlayerStore:  stores.PlayerStore,
			GenerateID:   generateID,
		})
		if err != nil {
			orchestratorErrorOrValidation(w, err)
			return
		}
		writeJSON(w, toPaymentView(p))
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePaymentPaid handles POST /api/payments/paid.
// Settles a pending charge; settling twice is refused.
func handlePaymentPaid(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.MarkPaymentPaidInput{}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	p, err := orchestrators.ExecuteMarkPaymentPaid(r.Context(), input, orchestrators.MarkPaymentPaidDeps{
		PaymentStore: stores.PaymentStore,
	})
	if err != nil {
		orchestratorErrorOrValidation(w, err)
		return
	}
	writeJSON(w, toPaymentView(p))
}

// handlePaymentDelete handles POST /api/payments/delete?id=X.
func handlePaymentDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	deps := orchestrators.DeletePaymentDeps{PaymentStore: stores.PaymentStore}
	if err := orchestrators.ExecuteDeletePayment(r.Context(), id, deps); err != nil {
		orchestratorError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
