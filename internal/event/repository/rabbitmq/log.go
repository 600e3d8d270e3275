package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/internal/model"
)

const publishTimeout = 5 * time.Second

type logMessage struct {
	ReceivedAt  time.Time `json:"receivedAt"`
	Text        string    `json:"text"`
	Email       string    `json:"email"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	Recurrence  string    `json:"recurrence"`
	CalendarURL string    `json:"calendarUrl"`
	ICSURL      string    `json:"icsUrl"`
}

func newLogMessage(row model.LogRow) logMessage {
	return logMessage{
		ReceivedAt:  row.ReceivedAt,
		Text:        row.Text,
		Email:       row.Email,
		Title:       row.Title,
		Date:        row.Date,
		Time:        row.Time,
		Description: row.Description,
		Recurrence:  string(row.Recurrence),
		CalendarURL: row.CalendarURL,
		ICSURL:      row.ICSURL,
	}
}

// Append publishes row as a persistent JSON message.
func (s *implLogSink) Append(ctx context.Context, row model.LogRow) error {
	body, err := json.Marshal(newLogMessage(row))
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = s.channel.PublishWithContext(ctx,
		s.exchange,   // exchange
		s.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    row.ReceivedAt,
			MessageId:    uuid.NewString(),
		},
	)
	if err != nil {
		s.l.Errorf(ctx, "event/repository/rabbitmq.Append: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToAppend, err)
	}

	s.l.Debugf(ctx, "event/repository/rabbitmq.Append: published %d bytes to %s/%s", len(body), s.exchange, s.routingKey)
	return nil
}
