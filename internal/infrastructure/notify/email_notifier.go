package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/metasoft/restyle-platform/internal/api/metrics"
	"github.com/metasoft/restyle-platform/internal/core/ports"
)

// Deduper decides whether a notification for a request already went out.
type Deduper interface {
	IsDuplicate(ctx context.Context, requestID string) (bool, error)
	Mark(ctx context.Context, requestID string) error
}

// EmailNotifier delivers contractor notifications. Delivery is currently a
// structured log entry standing in for the mail gateway; the dedup check
// keeps the send-once guarantee either way.
type EmailNotifier struct {
	dedup Deduper
	log   zerolog.Logger
}

func NewEmailNotifier(dedup Deduper, log zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{dedup: dedup, log: log}
}

func (n *EmailNotifier) Notify(ctx context.Context, msg ports.RequestNotification) error {
	dup, err := n.dedup.IsDuplicate(ctx, msg.RequestID)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		return err
	}
	if dup {
		metrics.NotificationsTotal.WithLabelValues("duplicate").Inc()
		n.log.Debug().Str("request_id", msg.RequestID).Msg("notification already sent")
		return nil
	}

	n.log.Info().
		Str("request_id", msg.RequestID).
		Str("request_name", msg.RequestName).
		Int("contractor_id", msg.ContractorID).
		Str("email", msg.Email).
		Msg("project request notification sent")

	if err := n.dedup.Mark(ctx, msg.RequestID); err != nil {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	return nil
}
