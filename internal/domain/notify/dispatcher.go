// Package notify composes and delivers the daily report e-mail.
// Delivery is best effort: one blocking send, failure logged and
// returned to the caller, never retried or buffered here.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dezporcento/internal/domain/records"
	"dezporcento/internal/domain/report"
)

// Mailer is the external transport contract. Attachments map filename
// to raw content.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, htmlBody string, attachments map[string][]byte) error
}

// DeliveryLog persists a trace of each successful send. The records
// store satisfies it.
type DeliveryLog interface {
	RecordDelivery(ctx context.Context, delivery records.Delivery) (records.Delivery, error)
}

type Dispatcher struct {
	Mailer    Mailer
	Log       DeliveryLog
	From      string
	DefaultTo string
	Now       func() time.Time
}

func NewDispatcher(mailer Mailer, log DeliveryLog, from, defaultTo string) *Dispatcher {
	return &Dispatcher{Mailer: mailer, Log: log, From: from, DefaultTo: defaultTo, Now: time.Now}
}

// SendDailyReport builds the HTML summary for the day and sends it with
// the rendered report files attached. A nil attachment map sends the
// summary alone.
func (d *Dispatcher) SendDailyReport(
	ctx context.Context,
	input []records.WorkRecord,
	day time.Time,
	weekday, recipient string,
	attachments map[report.Format][]byte,
	generalNote string,
) error {
	if recipient == "" {
		recipient = d.DefaultTo
	}
	if recipient == "" {
		return fmt.Errorf("no report recipient configured")
	}

	subject := fmt.Sprintf("Relatório Salários Garçons - %s, %s", weekday, day.Format("02/01/2006"))
	body := BuildEmailBody(input, day, weekday, generalNote, d.Now())

	var files map[string][]byte
	if len(attachments) > 0 {
		files = make(map[string][]byte, len(attachments))
		for format, content := range attachments {
			name := fmt.Sprintf("relatorio_%s.%s", day.Format("2006-01-02"), format.Ext())
			files[name] = content
		}
	}

	if err := d.Mailer.Send(ctx, d.From, recipient, subject, body, files); err != nil {
		slog.Warn("daily report send failed", "date", day.Format("2006-01-02"), "to", recipient, "err", err)
		return err
	}

	if d.Log != nil {
		var total float64
		for _, record := range input {
			total += record.SalesShare
		}
		workDate := day
		if _, err := d.Log.RecordDelivery(ctx, records.Delivery{
			WorkDate:      &workDate,
			WeekdayLabel:  weekday,
			EmployeeCount: len(input),
			Total:         total,
		}); err != nil {
			slog.Warn("delivery log write failed", "date", day.Format("2006-01-02"), "err", err)
		}
	}
	return nil
}
