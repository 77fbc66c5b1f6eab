package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// WriterSource opens a storage transaction. *storage.Storage satisfies it.
type WriterSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	writers WriterSource
	queue   chan ActionItem
	log     *logrus.Logger
}

func NewOperator(writers WriterSource, queue chan ActionItem, log *logrus.Logger) *Operator {
	return &Operator{
		writers: writers,
		queue:   queue,
		log:     log,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	if err := item.ctx.Err(); err != nil {
		return err
	}

	// A dequeued action always runs to commit or rollback, so the caller's
	// result matches what was written.
	ctx := context.WithoutCancel(item.ctx)

	writer, err := o.writers.Write(ctx)
	if err != nil {
		return err
	}

	if err := item.action.Perform(ctx, writer); err != nil {
		if rbErr := writer.Rollback(ctx); rbErr != nil {
			o.log.WithError(rbErr).WithField("action", fmt.Sprintf("%T", item.action)).
				Error("Operator.Rollback")
		}
		return err
	}

	if err := writer.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
