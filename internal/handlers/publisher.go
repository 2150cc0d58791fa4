package handlers

import (
	"context"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/events"
	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/metrics"

	"go.uber.org/zap"
)

// eventRecorder publishes events after a committed mutation. Publish
// failures are logged and never undo the mutation.
type eventRecorder struct {
	logger   *zap.Logger
	eventBus events.EventPublisher
	metrics  *metrics.Metrics
}

// publish outlives the request: a client hanging up after the commit
// must not drop the event.
func (r eventRecorder) publish(ctx context.Context, event events.Event) {
	if err := r.eventBus.Publish(context.WithoutCancel(ctx), event); err != nil {
		r.logger.Error("Failed to publish event",
			zap.String("event-type", event.EventType()),
			zap.String("key", event.PartitionKey()),
			zap.Error(err),
		)
	}
}

func (r eventRecorder) recordMovement(ctx context.Context, movement *domain.Movement) {
	if movement == nil {
		return
	}
	r.metrics.ObserveMovement(*movement)
	r.publish(ctx, events.NewMovementRecordedEvent(*movement))
}
