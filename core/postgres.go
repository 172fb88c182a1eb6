package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"connectsphere/pkg/resources"
)

// Repository is the archive side of the event model: created events are
// mirrored into the relational backend, and the adjacent surfaces read
// them back from there. The in-memory store never consults it.
type Repository interface {
	ArchiveEvents(ctx context.Context, events []CalendarEvent) error
	GetEventById(ctx context.Context, id string) (*CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

type repository struct {
	tracer  trace.Tracer
	metrics *DBMetrics
	pool    resources.DBInstance
}

func NewRepository(pool resources.DBInstance) Repository {
	return &repository{
		tracer:  otel.GetTracerProvider().Tracer("connectsphere/core"),
		metrics: NewDBMetrics(),
		pool:    pool,
	}
}

func (r *repository) ArchiveEvents(ctx context.Context, events []CalendarEvent) error {
	start := time.Now()

	var err error

	defer func() { r.metrics.Observe(ctx, "archive_events", start, err) }()

	ctx, span := r.tracer.Start(ctx, "repository.ArchiveEvents")
	defer span.End()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, event := range events {
		attendees, merr := json.Marshal(event.Attendees)
		if merr != nil {
			_ = tx.Rollback(ctx)
			err = fmt.Errorf("failed to marshal attendees: %w", merr)

			return err
		}

		_, err = tx.Exec(ctx,
			"INSERT INTO events (id, title, event_date, display_time, type, location, description, "+
				"attendees, max_participants, tags, image, is_host, status) "+
				"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)",
			event.Id, event.Title, event.Date, event.Time, string(event.Type), event.Location,
			event.Description, attendees, event.MaxParticipants, event.Tags, event.Image,
			event.IsHost, string(event.Status))
		if err != nil {
			_ = tx.Rollback(ctx)
			err = fmt.Errorf("failed to insert event: %w", err)

			return err
		}
	}

	err = tx.Commit(ctx)
	if err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *repository) GetEventById(ctx context.Context, id string) (*CalendarEvent, error) {
	start := time.Now()

	var err error

	defer func() { r.metrics.Observe(ctx, "get_event_by_id", start, err) }()

	ctx, span := r.tracer.Start(ctx, "repository.GetEventById")
	defer span.End()

	var (
		e         CalendarEvent
		eventType string
		status    string
		attendees []byte
	)

	err = r.pool.QueryRow(
		ctx,
		`SELECT id, title, event_date, display_time, type, location, description,
		        attendees, max_participants, tags, image, is_host, status
		 FROM events
		 WHERE id = $1`,
		id,
	).Scan(
		&e.Id,
		&e.Title,
		&e.Date,
		&e.Time,
		&eventType,
		&e.Location,
		&e.Description,
		&attendees,
		&e.MaxParticipants,
		&e.Tags,
		&e.Image,
		&e.IsHost,
		&status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}

	e.Type = EventType(eventType)
	e.Status = EventStatus(status)

	err = json.Unmarshal(attendees, &e.Attendees)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal attendees: %w", err)
	}

	return &e, nil
}

func (r *repository) DeleteEvent(ctx context.Context, id string) error {
	start := time.Now()

	var err error

	defer func() { r.metrics.Observe(ctx, "delete_event", start, err) }()

	ctx, span := r.tracer.Start(ctx, "repository.DeleteEvent")
	defer span.End()

	_, err = r.pool.Exec(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

/*

 */

type DBMetrics struct {
	qTotal   metric.Int64Counter
	qErrors  metric.Int64Counter
	qLatency metric.Float64Histogram
}

func NewDBMetrics() *DBMetrics {
	meter := otel.Meter("connectsphere/db")

	qTotal, _ := meter.Int64Counter("db.query.total")
	qErrors, _ := meter.Int64Counter("db.query.errors.total")
	qLatency, _ := meter.Float64Histogram("db.query.duration.ms")

	return &DBMetrics{qTotal: qTotal, qErrors: qErrors, qLatency: qLatency}
}

func (m *DBMetrics) Observe(ctx context.Context, op string, start time.Time, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("db.system", "postgres"),
		attribute.String("db.operation", op),
	}

	m.qTotal.Add(ctx, 1, metric.WithAttributes(attrs...))

	ms := float64(time.Since(start).Milliseconds())
	m.qLatency.Record(ctx, ms, metric.WithAttributes(attrs...))

	if err != nil {
		m.qErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
