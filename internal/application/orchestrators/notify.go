package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"clubdesk/internal/adapters/email"
	"clubdesk/internal/domain/alert"
	"clubdesk/internal/domain/document"
)

// ExpiryDigestDeps holds dependencies for the expiry digest email.
type ExpiryDigestDeps struct {
	PlayerStore   PlayerStoreForOrchestrator
	SettingsStore SettingsStoreForOrchestrator
	Sender        email.Sender
	From          string
	ReplyTo       string
	Now           func() time.Time
}

// ExpiryDigestInput carries the recipients for the digest.
type ExpiryDigestInput struct {
	To []string
}

// ExecuteSendExpiryDigest emails the current document alert list to club
// staff. No email is sent when every document is current.
// PRE: at least one recipient
// POST: Returns the number of alerts included (0 means nothing was sent)
func ExecuteSendExpiryDigest(ctx context.Context, input ExpiryDigestInput, deps ExpiryDigestDeps) (int, error) {
	if len(input.To) == 0 {
		return 0, fmt.Errorf("digest needs at least one recipient")
	}

	alerts, err := ExecuteListAlerts(ctx, ListAlertsDeps{
		PlayerStore:   deps.PlayerStore,
		SettingsStore: deps.SettingsStore,
		Now:           deps.Now,
	})
	if err != nil {
		return 0, err
	}
	if len(alerts) == 0 {
		slog.Info("digest_event", "event", "digest_skipped", "reason", "no_alerts")
		return 0, nil
	}

	subject := fmt.Sprintf("Documentos por vencer: %d avisos", len(alerts))
	_, err = deps.Sender.Send(ctx, email.SendRequest{
		To:      input.To,
		From:    deps.From,
		ReplyTo: deps.ReplyTo,
		Subject: subject,
		HTML:    digestHTML(alerts),
	})
	if err != nil {
		return 0, err
	}

	slog.Info("digest_event", "event", "digest_sent", "alerts", len(alerts), "recipients", len(input.To))
	return len(alerts), nil
}

var digestDocLabels = map[string]string{
	document.TypeIDCard:     "Cédula",
	document.TypeHealthCard: "Carné de salud",
}

var digestStatusLabels = map[document.Status]string{
	document.StatusMissing:      "faltante",
	document.StatusExpired:      "vencido",
	document.StatusExpiringSoon: "por vencer",
}

// digestHTML renders the alert table. Player names are user input and are
// escaped.
func digestHTML(alerts []alert.Alert) string {
	var sb strings.Builder
	sb.WriteString("<h2>Documentos que necesitan atención</h2>\n<table>\n")
	sb.WriteString("<tr><th>Jugador</th><th>Documento</th><th>Estado</th><th>Contacto</th></tr>\n")
	for _, a := range alerts {
		phone := a.ContactPhone
		if phone == "" {
			phone = "sin teléfono"
		}
		fmt.Fprintf(&sb, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(a.PlayerName),
			digestDocLabels[a.DocType],
			digestStatusLabels[a.Status],
			html.EscapeString(phone),
		)
	}
	sb.WriteString("</table>\n")
	return sb.String()
}
