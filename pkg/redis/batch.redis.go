// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	libRedis "github.com/LerianStudio/lib-commons/v3/commons/redis"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
)

// BatchRepository keeps the progress, cancellation flag and idempotency lock of batches.
//
//go:generate mockgen --destination=batch.redis.mock.go --package=redis --copyright_file=../../COPYRIGHT . BatchRepository
type BatchRepository interface {
	SaveStatus(ctx context.Context, status *model.BatchStatus) error
	GetStatus(ctx context.Context, batchID uuid.UUID) (*model.BatchStatus, error)
	RequestCancel(ctx context.Context, batchID uuid.UUID) error
	IsCancelRequested(ctx context.Context, batchID uuid.UUID) (bool, error)
	AcquireLock(ctx context.Context, batchID uuid.UUID, owner string) (bool, error)
	ReleaseLock(ctx context.Context, batchID uuid.UUID) error
	Ping(ctx context.Context) error
}

// BatchRedisRepository is the Redis implementation of BatchRepository.
type BatchRedisRepository struct {
	client func(ctx context.Context) (goredis.UniversalClient, error)
	ttl    time.Duration
}

// Compile-time interface satisfaction check.
var _ BatchRepository = (*BatchRedisRepository)(nil)

// NewBatchRedisRepository returns a new instance of BatchRedisRepository using the given Redis connection.
func NewBatchRedisRepository(rc *libRedis.RedisConnection) (*BatchRedisRepository, error) {
	r := &BatchRedisRepository{
		client: rc.GetClient,
		ttl:    constant.BatchStateTTL,
	}
	if _, err := rc.GetClient(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return r, nil
}

// NewBatchRedisRepositoryFromClient wraps an already connected client.
func NewBatchRedisRepositoryFromClient(client goredis.UniversalClient) *BatchRedisRepository {
	return &BatchRedisRepository{
		client: func(context.Context) (goredis.UniversalClient, error) { return client, nil },
		ttl:    constant.BatchStateTTL,
	}
}

// StatusKey is the key of the progress record of a batch.
func StatusKey(batchID uuid.UUID) string {
	return constant.BatchKeyPrefix + ":" + batchID.String()
}

// CancelKey is the key of the cancellation flag of a batch.
func CancelKey(batchID uuid.UUID) string {
	return StatusKey(batchID) + ":" + constant.BatchCancelKeySuffix
}

// LockKey is the idempotency key guarding the processing of a batch.
func LockKey(batchID uuid.UUID) string {
	return constant.IdempotencyKeyPrefix + ":" + StatusKey(batchID)
}

// SaveStatus overwrites the progress record of a batch and refreshes its expiry.
func (rr *BatchRedisRepository) SaveStatus(ctx context.Context, status *model.BatchStatus) error {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.redis.save_batch_status")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", status.BatchID.String()),
		attribute.String("app.request.status", status.Status),
		attribute.Int("app.request.processed", status.Processed),
	)

	payload, err := json.Marshal(status)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to marshal batch status", err)
		return err
	}

	rds, err := rr.client(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get redis", err)
		return err
	}

	if err := rds.Set(ctx, StatusKey(status.BatchID), payload, rr.ttl).Err(); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to set batch status on redis", err)
		return err
	}

	return nil
}

// GetStatus returns the progress record of a batch, or an error wrapping constant.ErrEntityNotFound.
func (rr *BatchRedisRepository) GetStatus(ctx context.Context, batchID uuid.UUID) (*model.BatchStatus, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.redis.get_batch_status")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", batchID.String()),
	)

	rds, err := rr.client(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get redis", err)
		return nil, err
	}

	raw, err := rds.Get(ctx, StatusKey(batchID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, "Batch")
		}

		libOpentelemetry.HandleSpanError(&span, "Failed to get batch status on redis", err)

		return nil, err
	}

	var status model.BatchStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to unmarshal batch status", err)
		return nil, err
	}

	return &status, nil
}

// RequestCancel raises the cancellation flag of a batch.
func (rr *BatchRedisRepository) RequestCancel(ctx context.Context, batchID uuid.UUID) error {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.redis.request_batch_cancel")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", batchID.String()),
	)

	rds, err := rr.client(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get redis", err)
		return err
	}

	if err := rds.Set(ctx, CancelKey(batchID), time.Now().UTC().Format(time.RFC3339), rr.ttl).Err(); err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to set cancel flag on redis", err)
		return err
	}

	logger.Infof("Cancellation requested for batch %s", batchID)

	return nil
}

// IsCancelRequested reports whether the cancellation flag of a batch is raised.
func (rr *BatchRedisRepository) IsCancelRequested(ctx context.Context, batchID uuid.UUID) (bool, error) {
	rds, err := rr.client(ctx)
	if err != nil {
		return false, err
	}

	n, err := rds.Exists(ctx, CancelKey(batchID)).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// AcquireLock takes the processing lock of a batch. It returns false when another owner holds it.
func (rr *BatchRedisRepository) AcquireLock(ctx context.Context, batchID uuid.UUID, owner string) (bool, error) {
	_, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "repository.redis.acquire_batch_lock")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.batch_id", batchID.String()),
	)

	rds, err := rr.client(ctx)
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to get redis", err)
		return false, err
	}

	acquired, err := rds.SetNX(ctx, LockKey(batchID), owner, constant.IdempotencyTTL).Result()
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Failed to set idempotency lock on redis", err)
		return false, err
	}

	return acquired, nil
}

// ReleaseLock drops the processing lock of a batch so a redelivery can retry it.
func (rr *BatchRedisRepository) ReleaseLock(ctx context.Context, batchID uuid.UUID) error {
	rds, err := rr.client(ctx)
	if err != nil {
		return err
	}

	return rds.Del(ctx, LockKey(batchID)).Err()
}

// Ping checks that Redis answers.
func (rr *BatchRedisRepository) Ping(ctx context.Context) error {
	rds, err := rr.client(ctx)
	if err != nil {
		return err
	}

	return rds.Ping(ctx).Err()
}
