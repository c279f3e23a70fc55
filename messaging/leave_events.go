// Package messaging publishes leave lifecycle events to Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"leave-tracking/models"

	"github.com/segmentio/kafka-go"
)

const (
	EventLeaveSubmitted = "leave.submitted"
	EventLeaveApproved  = "leave.approved"
	EventLeaveRejected  = "leave.rejected"
	EventLeaveCancelled = "leave.cancelled"
)

type LeaveEvent struct {
	EventType   string             `json:"event_type"`
	RequestID   string             `json:"request_id"`
	RequesterID string             `json:"requester_id"`
	ManagerID   string             `json:"manager_id"`
	Status      models.LeaveStatus `json:"status"`
	LeaveType   models.LeaveType   `json:"leave_type"`
	Days        int                `json:"days"`
	FromDate    string             `json:"from_date"`
	ToDate      string             `json:"to_date"`
	DecidedBy   string             `json:"decided_by,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

func NewLeaveEvent(eventType string, req *models.LeaveRequest, at time.Time) LeaveEvent {
	event := LeaveEvent{
		EventType:   eventType,
		RequestID:   req.ID.Hex(),
		RequesterID: req.RequesterID.Hex(),
		ManagerID:   req.ManagerID.Hex(),
		Status:      req.Status,
		LeaveType:   req.LeaveType,
		Days:        req.Days,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		OccurredAt:  at,
	}
	if req.DecidedBy != nil {
		event.DecidedBy = req.DecidedBy.Hex()
	}
	return event
}

type EventPublisher interface {
	PublishLeaveEvent(ctx context.Context, event LeaveEvent) error
}

type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishLeaveEvent(context.Context, LeaveEvent) error {
	return nil
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaEventPublisher struct {
	writer MessageWriter
	topic  string
}

func NewKafkaEventPublisher(writer MessageWriter, topic string) EventPublisher {
	return &kafkaEventPublisher{writer: writer, topic: topic}
}

func (p *kafkaEventPublisher) PublishLeaveEvent(ctx context.Context, event LeaveEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode leave event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.RequestID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte("leave_request")},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.EventType, err)
	}
	return nil
}
