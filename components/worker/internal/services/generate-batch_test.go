// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/batch"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/mongodb/template"
	"github.com/LerianStudio/condo-docs/pkg/redis"
	"github.com/LerianStudio/condo-docs/pkg/resolver"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	templates *template.MockRepository
	batches   *redis.MockBatchRepository
	resolver  *batch.MockResolver
	store     *batch.MockDocumentStore
	post      *batch.MockPostProcessor
	uc        *UseCase

	mu       sync.Mutex
	statuses []model.BatchStatus
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := &testDeps{
		templates: template.NewMockRepository(ctrl),
		batches:   redis.NewMockBatchRepository(ctrl),
		resolver:  batch.NewMockResolver(ctrl),
		store:     batch.NewMockDocumentStore(ctrl),
		post:      batch.NewMockPostProcessor(ctrl),
	}

	gen := batch.NewGenerator(d.resolver, d.store, batch.Config{})
	gen.PostProcessor = d.post
	gen.Now = func() time.Time { return fixedNow }

	d.uc = &UseCase{
		TemplateRepo:       d.templates,
		BatchRepo:          d.batches,
		Generator:          gen,
		Owner:              "worker-test",
		CancelPollInterval: 10 * time.Millisecond,
		Now:                func() time.Time { return fixedNow },
	}

	return d
}

// recordStatuses captures a copy of every saved status.
func (d *testDeps) recordStatuses() {
	d.batches.EXPECT().SaveStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *model.BatchStatus) error {
		d.mu.Lock()
		defer d.mu.Unlock()

		d.statuses = append(d.statuses, *s)

		return nil
	}).AnyTimes()
}

func (d *testDeps) lastStatus(t *testing.T) model.BatchStatus {
	t.Helper()

	d.mu.Lock()
	defer d.mu.Unlock()

	require.NotEmpty(t, d.statuses)

	return d.statuses[len(d.statuses)-1]
}

func activeTemplate() *model.DocumentTemplate {
	return &model.DocumentTemplate{
		ID:           uuid.New(),
		BuildingID:   uuid.New(),
		Name:         "Arrears letter",
		DocumentType: constant.DocumentTypeReceipt,
		Content:      "<p>Dear {{memberName}}</p>",
		IsActive:     true,
		Version:      2,
	}
}

func batchBody(t *testing.T, tpl *model.DocumentTemplate, sendMethod string, n int) (model.BatchMessage, []byte) {
	t.Helper()

	msg := model.BatchMessage{
		BatchID:    uuid.New(),
		TemplateID: tpl.ID,
		Title:      "March letters",
		SendMethod: sendMethod,
	}

	for i := 0; i < n; i++ {
		msg.Subjects = append(msg.Subjects, model.Subject{MemberID: uuid.New(), BuildingID: tpl.BuildingID})
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return msg, body
}

func memberVars(name string) resolver.Vars {
	return resolver.ReceiptVars{BaseVars: resolver.BaseVars{MemberName: name}}
}

func saveWithID(_ context.Context, doc *model.GeneratedDocument) error {
	doc.ID = uuid.New()

	return nil
}

func TestGenerateBatch_DownloadRendersPDFs(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	tpl := activeTemplate()
	msg, body := batchBody(t, tpl, constant.SendMethodDownload, 2)

	d.batches.EXPECT().AcquireLock(gomock.Any(), msg.BatchID, "worker-test").Return(true, nil)
	d.batches.EXPECT().GetStatus(gomock.Any(), msg.BatchID).Return(&model.BatchStatus{
		BatchID: msg.BatchID, Status: constant.BatchStatusQueued, CreatedAt: fixedNow,
	}, nil)
	d.batches.EXPECT().IsCancelRequested(gomock.Any(), msg.BatchID).Return(false, nil).AnyTimes()
	d.batches.EXPECT().ReleaseLock(gomock.Any(), gomock.Any()).Times(0)
	d.recordStatuses()

	d.templates.EXPECT().FindByID(gomock.Any(), tpl.ID).Return(tpl, nil)
	d.resolver.EXPECT().Resolve(gomock.Any(), tpl.DocumentType, gomock.Any()).Return(memberVars("João Silva"), nil).Times(2)
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveWithID).Times(2)
	d.post.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, doc *model.GeneratedDocument) (string, error) {
		return "documents/" + doc.Metadata.BatchID.String() + "/" + doc.ID.String() + ".pdf", nil
	}).Times(2)
	d.store.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, d.uc.GenerateBatch(context.Background(), body))

	final := d.lastStatus(t)
	assert.Equal(t, constant.BatchStatusCompleted, final.Status)
	assert.Equal(t, 2, final.Total)
	assert.Equal(t, 2, final.Processed)
	assert.Equal(t, 2, final.Succeeded)
	assert.Equal(t, 0, final.Failed)
	assert.InDelta(t, 1.0, final.Progress, 0.0001)
	assert.Len(t, final.DocumentIDs, 2)
	assert.Empty(t, final.Failures)
	require.NotNil(t, final.CompletedAt)

	d.mu.Lock()
	defer d.mu.Unlock()

	assert.Equal(t, constant.BatchStatusRunning, d.statuses[0].Status)
}

func TestGenerateBatch_EmailSkipsPDF(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	tpl := activeTemplate()
	msg, body := batchBody(t, tpl, constant.SendMethodEmail, 1)

	d.batches.EXPECT().AcquireLock(gomock.Any(), msg.BatchID, gomock.Any()).Return(true, nil)
	d.batches.EXPECT().GetStatus(gomock.Any(), msg.BatchID).Return(nil, errors.New("redis: nil"))
	d.batches.EXPECT().IsCancelRequested(gomock.Any(), msg.BatchID).Return(false, nil).AnyTimes()
	d.recordStatuses()

	d.templates.EXPECT().FindByID(gomock.Any(), tpl.ID).Return(tpl, nil)
	d.resolver.EXPECT().Resolve(gomock.Any(), tpl.DocumentType, msg.Subjects[0]).Return(memberVars("Ana Costa"), nil)
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, doc *model.GeneratedDocument) error {
		assert.Equal(t, constant.DocumentStatusGenerated, doc.Status)
		assert.Equal(t, constant.SendMethodEmail, doc.Metadata.SendMethod)

		return saveWithID(context.Background(), doc)
	})

	require.NoError(t, d.uc.GenerateBatch(context.Background(), body))

	final := d.lastStatus(t)
	assert.Equal(t, constant.BatchStatusCompleted, final.Status)
	assert.Equal(t, msg.BatchID, final.BatchID)
	assert.Equal(t, msg.TemplateID, final.TemplateID)
	assert.Equal(t, 1, final.Succeeded)
	assert.NotNil(t, d.uc.Generator.PostProcessor, "shared generator must keep its post processor")
}

func TestGenerateBatch_SubjectFailuresAreRecorded(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	tpl := activeTemplate()
	msg, body := batchBody(t, tpl, constant.SendMethodEmail, 2)

	d.batches.EXPECT().AcquireLock(gomock.Any(), msg.BatchID, gomock.Any()).Return(true, nil)
	d.batches.EXPECT().GetStatus(gomock.Any(), msg.BatchID).Return(&model.BatchStatus{BatchID: msg.BatchID}, nil)
	d.batches.EXPECT().IsCancelRequested(gomock.Any(), msg.BatchID).Return(false, nil).AnyTimes()
	d.recordStatuses()

	notFound := pkg.SubjectNotFoundError{MemberID: msg.Subjects[1].MemberID.String(), Err: constant.ErrEntityNotFound}

	d.templates.EXPECT().FindByID(gomock.Any(), tpl.ID).Return(tpl, nil)
	d.resolver.EXPECT().Resolve(gomock.Any(), tpl.DocumentType, msg.Subjects[0]).Return(memberVars("Ana Costa"), nil)
	d.resolver.EXPECT().Resolve(gomock.Any(), tpl.DocumentType, msg.Subjects[1]).Return(nil, notFound)
	d.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(saveWithID)

	require.NoError(t, d.uc.GenerateBatch(context.Background(), body))

	final := d.lastStatus(t)
	assert.Equal(t, constant.BatchStatusCompleted, final.Status)
	assert.Equal(t, 1, final.Succeeded)
	assert.Equal(t, 1, final.Failed)
	require.Len(t, final.Failures, 1)
	assert.Equal(t, msg.Subjects[1].MemberID, final.Failures[0].MemberID)
	assert.Equal(t, constant.ErrSubjectNotFound.Error(), final.Failures[0].Code)
}

func TestGenerateBatch_Cancelled(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	tpl := activeTemplate()
	msg, body := batchBody(t, tpl, constant.SendMethodEmail, 3)

	d.batches.EXPECT().AcquireLock(gomock.Any(), msg.BatchID, gomock.Any()).Return(true, nil)
	d.batches.EXPECT().GetStatus(gomock.Any(), msg.BatchID).Return(&model.BatchStatus{BatchID: msg.BatchID}, nil)
	d.batches.EXPECT().IsCancelRequested(gomock.Any(), msg.BatchID).Return(true, nil).AnyTimes()
	d.recordStatuses()

	d.templates.EXPECT().FindByID(gomock.Any(), tpl.ID).Return(tpl, nil)
	d.resolver.EXPECT().Resolve(gomock.Any(), tpl.DocumentType, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ model.Subject) (resolver.Vars, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		}).AnyTimes()

	require.NoError(t, d.uc.GenerateBatch(context.Background(), body))

	final := d.lastStatus(t)
	assert.Equal(t, constant.BatchStatusCancelled, final.Status)
	assert.Equal(t, 0, final.Succeeded)
	assert.Equal(t, 3, final.Failed)
	assert.Equal(t, 3, final.Processed)
	assert.Equal(t, constant.ErrBatchCancelled.Error(), final.Failures[2].Code)
}

func TestGenerateBatch_LockHeldElsewhere(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	tpl := activeTemplate()
	msg, body := batchBody(t, tpl, constant.SendMethodDownload, 1)

	d.batches.EXPECT().AcquireLock(gomock.Any(), msg.BatchID, gomock.Any()).Return(false, nil)

	require.NoError(t, d.uc.GenerateBatch(context.Background(), body))
}

func TestGenerateBatch_LockError(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	tpl := activeTemplate()
	msg, body := batchBody(t, tpl, constant.SendMethodDownload, 1)

	lockErr := errors.New("redis unavailable")
	d.batches.EXPECT().AcquireLock(gomock.Any(), msg.BatchID, gomock.Any()).Return(false, lockErr)

	assert.ErrorIs(t, d.uc.GenerateBatch(context.Background(), body), lockErr)
}

func TestGenerateBatch_InvalidMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body []byte
	}{
		{name: "malformed json", body: []byte("{not json")},
		{name: "missing ids", body: []byte(`{"title":"x","sendMethod":"email"}`)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newTestDeps(t)

			err := d.uc.GenerateBatch(context.Background(), tt.body)

			var validationErr pkg.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestGenerateBatch_TemplateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		templateErr  error
		expectFailed bool
	}{
		{
			name:         "template not found marks the batch failed",
			templateErr:  pkg.ValidateBusinessError(constant.ErrEntityNotFound, constant.MongoCollectionTemplate),
			expectFailed: true,
		},
		{
			name:         "transient error leaves the batch for a retry",
			templateErr:  errors.New("mongo timeout"),
			expectFailed: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newTestDeps(t)
			tpl := activeTemplate()
			msg, body := batchBody(t, tpl, constant.SendMethodDownload, 1)

			d.batches.EXPECT().AcquireLock(gomock.Any(), msg.BatchID, gomock.Any()).Return(true, nil)
			d.batches.EXPECT().GetStatus(gomock.Any(), msg.BatchID).Return(&model.BatchStatus{BatchID: msg.BatchID, Status: constant.BatchStatusQueued}, nil)
			d.batches.EXPECT().ReleaseLock(gomock.Any(), msg.BatchID).Return(nil)
			d.recordStatuses()

			d.templates.EXPECT().FindByID(gomock.Any(), tpl.ID).Return(nil, tt.templateErr)

			err := d.uc.GenerateBatch(context.Background(), body)
			require.ErrorIs(t, err, tt.templateErr)

			d.mu.Lock()
			defer d.mu.Unlock()

			if tt.expectFailed {
				require.Len(t, d.statuses, 1)
				assert.Equal(t, constant.BatchStatusFailed, d.statuses[0].Status)
			} else {
				assert.Empty(t, d.statuses)
			}
		})
	}
}

func TestGenerateBatch_InactiveTemplate(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	tpl := activeTemplate()
	tpl.IsActive = false
	msg, body := batchBody(t, tpl, constant.SendMethodDownload, 1)

	d.batches.EXPECT().AcquireLock(gomock.Any(), msg.BatchID, gomock.Any()).Return(true, nil)
	d.batches.EXPECT().GetStatus(gomock.Any(), msg.BatchID).Return(&model.BatchStatus{BatchID: msg.BatchID}, nil)
	d.batches.EXPECT().IsCancelRequested(gomock.Any(), msg.BatchID).Return(false, nil).AnyTimes()
	d.batches.EXPECT().ReleaseLock(gomock.Any(), msg.BatchID).Return(nil)
	d.recordStatuses()

	d.templates.EXPECT().FindByID(gomock.Any(), tpl.ID).Return(tpl, nil)

	err := d.uc.GenerateBatch(context.Background(), body)
	require.ErrorIs(t, err, constant.ErrTemplateInactive)

	assert.Equal(t, constant.BatchStatusFailed, d.lastStatus(t).Status)
}

func TestProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		processed int
		total     int
		expected  float64
	}{
		{name: "empty batch is complete", processed: 0, total: 0, expected: 1},
		{name: "halfway", processed: 1, total: 2, expected: 0.5},
		{name: "done", processed: 3, total: 3, expected: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, progress(tt.processed, tt.total), 0.0001)
		})
	}
}

func TestGeneratorFor(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)

	assert.Same(t, d.uc.Generator, d.uc.generatorFor(constant.SendMethodDownload))
	assert.Same(t, d.uc.Generator, d.uc.generatorFor(constant.SendMethodPrint))

	email := d.uc.generatorFor(constant.SendMethodEmail)
	assert.NotSame(t, d.uc.Generator, email)
	assert.Nil(t, email.PostProcessor)
}
