// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	"github.com/LerianStudio/condo-docs/pkg/templating"

	libOtel "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

// Config paces a batch run.
type Config struct {
	// Interval is the minimum delay between two subjects. Zero disables pacing.
	Interval time.Duration

	// Burst is how many subjects may start without waiting. Values below 1 mean 1.
	Burst int
}

// DefaultConfig returns the pacing used when none is configured.
func DefaultConfig() Config {
	return Config{
		Interval: constant.DefaultBatchInterval,
		Burst:    constant.DefaultBatchBurst,
	}
}

func (c Config) limiter() *rate.Limiter {
	if c.Interval <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	burst := c.Burst
	if burst < 1 {
		burst = 1
	}

	return rate.NewLimiter(rate.Every(c.Interval), burst)
}

// Options describes one batch run.
type Options struct {
	BatchID    uuid.UUID
	Title      string
	SendMethod string

	// OnProgress is called after every subject with the number of subjects done so far.
	OnProgress func(processed, total int)
}

// Failure is a subject that produced no usable document.
type Failure struct {
	Subject model.Subject
	Err     error
}

// Code returns the DOC-xxxx code of the failure, or "" when the error carries none.
func (f Failure) Code() string {
	for _, sentinel := range failureCodes {
		if errors.Is(f.Err, sentinel) {
			return sentinel.Error()
		}
	}

	return ""
}

// ToModel converts the failure to its API representation.
func (f Failure) ToModel() model.BatchFailure {
	reason := ""
	if f.Err != nil {
		reason = f.Err.Error()
	}

	return model.BatchFailure{
		MemberID: f.Subject.MemberID,
		Reason:   reason,
		Code:     f.Code(),
	}
}

var failureCodes = []error{
	constant.ErrBatchCancelled,
	constant.ErrSubjectNotFound,
	constant.ErrUnknownDocumentType,
	constant.ErrPersistence,
	constant.ErrEntityNotFound,
}

// Report is the outcome of a batch run. Every subject ends up in exactly one of the lists.
type Report struct {
	Succeeded []*model.GeneratedDocument
	Failed    []Failure
}

// Total is the number of subjects the report accounts for.
func (r *Report) Total() int {
	return len(r.Succeeded) + len(r.Failed)
}

// Generator produces one document per subject of a batch.
type Generator struct {
	Resolver Resolver
	Store    DocumentStore

	// PostProcessor is optional. When set, documents are saved as processing and
	// only become generated once it succeeds.
	PostProcessor PostProcessor

	// Breakers is optional and guards the document store.
	Breakers *pkg.CircuitBreakerManager

	Metrics *Metrics
	Config  Config

	// Now is the generation clock. Defaults to time.Now.
	Now func() time.Time
}

// NewGenerator returns a generator with noop metrics and the given pacing.
func NewGenerator(resolver Resolver, store DocumentStore, cfg Config) *Generator {
	return &Generator{
		Resolver: resolver,
		Store:    store,
		Metrics:  NoopMetrics(),
		Config:   cfg,
		Now:      time.Now,
	}
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}

	return g.Now()
}

func (g *Generator) metrics() *Metrics {
	if g.Metrics == nil {
		return NoopMetrics()
	}

	return g.Metrics
}

// RunBatch generates one document per subject, in order, one subject at a time.
// A failing subject is recorded in the report and never stops the run. When ctx is
// cancelled the subjects not yet started are recorded as failed with
// constant.ErrBatchCancelled. The returned error is reserved for a batch that cannot
// start at all.
func (g *Generator) RunBatch(ctx context.Context, template *model.DocumentTemplate, subjects []model.Subject, opts Options) (*Report, error) {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "batch.run_batch")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.batch.id", opts.BatchID.String()),
		attribute.Int("app.batch.total", len(subjects)),
	)

	if template == nil {
		err := fmt.Errorf("batch template must not be nil: %w", constant.ErrMissingRequiredFields)
		libOtel.HandleSpanError(&span, "Invalid batch", err)

		return nil, err
	}

	if !template.IsActive {
		err := pkg.ValidateBusinessError(constant.ErrTemplateInactive, "DocumentTemplate", template.ID.String())
		libOtel.HandleSpanError(&span, "Inactive template", err)

		return nil, err
	}

	report := &Report{
		Succeeded: make([]*model.GeneratedDocument, 0, len(subjects)),
		Failed:    make([]Failure, 0),
	}

	total := len(subjects)
	if total == 0 {
		return report, nil
	}

	m := g.metrics()
	batchAttr := metric.WithAttributes(attribute.String("document_type", template.DocumentType))

	m.BatchesActive.Add(ctx, 1, batchAttr)
	defer m.BatchesActive.Add(ctx, -1, batchAttr)

	limiter := g.Config.limiter()
	processed := 0

	for _, subject := range subjects {
		if err := g.wait(ctx, limiter); err != nil {
			report.Failed = append(report.Failed, Failure{Subject: subject, Err: err})
			m.DocumentsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("code", constant.ErrBatchCancelled.Error())))
		} else if doc, err := g.generate(ctx, template, subject, opts); err != nil {
			logger.Warnf("Batch %s: subject %s failed: %v", opts.BatchID, subject.MemberID, err)

			failure := Failure{Subject: subject, Err: err}
			report.Failed = append(report.Failed, failure)
			m.DocumentsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("code", failure.Code())))
		} else {
			report.Succeeded = append(report.Succeeded, doc)
			m.DocumentsGenerated.Add(ctx, 1, batchAttr)
		}

		processed++

		if opts.OnProgress != nil {
			opts.OnProgress(processed, total)
		}
	}

	span.SetAttributes(
		attribute.Int("app.batch.succeeded", len(report.Succeeded)),
		attribute.Int("app.batch.failed", len(report.Failed)),
	)

	logger.Infof("Batch %s finished: %d generated, %d failed", opts.BatchID, len(report.Succeeded), len(report.Failed))

	return report, nil
}

// wait blocks until the limiter admits the next subject. It fails with
// constant.ErrBatchCancelled only once ctx is done; a slot past the ctx
// deadline is waited for until the deadline actually expires.
func (g *Generator) wait(ctx context.Context, limiter *rate.Limiter) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", constant.ErrBatchCancelled, ctx.Err())
	}

	reservation := limiter.Reserve()

	delay := reservation.Delay()
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		reservation.Cancel()

		return fmt.Errorf("%w: %w", constant.ErrBatchCancelled, ctx.Err())
	}
}

// generate resolves, renders and persists the document of one subject.
func (g *Generator) generate(ctx context.Context, template *model.DocumentTemplate, subject model.Subject, opts Options) (*model.GeneratedDocument, error) {
	vars, err := g.Resolver.Resolve(ctx, template.DocumentType, subject)
	if err != nil {
		return nil, err
	}

	values := vars.Values()
	content := templating.Render(template.Content, values)

	status := constant.DocumentStatusGenerated
	if g.PostProcessor != nil {
		status = constant.DocumentStatusProcessing
	}

	memberName := values["memberName"]

	title := opts.Title
	if title == "" {
		title = template.Name
	}

	if memberName != "" {
		title = title + " - " + memberName
	}

	doc, err := model.NewGeneratedDocument(template, template.BuildingID, title, content, status, model.DocumentMetadata{
		MemberID:         subject.MemberID,
		MemberName:       memberName,
		MemberEmail:      values["memberEmail"],
		BatchID:          opts.BatchID,
		BatchTitle:       opts.Title,
		SendMethod:       opts.SendMethod,
		GeneratedAt:      g.now(),
		Variables:        values,
		TemplateVersion:  template.Version,
		TemplateSnapshot: template.Content,
	})
	if err != nil {
		return nil, err
	}

	if err := g.save(ctx, doc); err != nil {
		return nil, pkg.PersistenceError{Operation: "save", Err: err}
	}

	if g.PostProcessor == nil {
		return doc, nil
	}

	return g.postProcess(ctx, doc)
}

func (g *Generator) save(ctx context.Context, doc *model.GeneratedDocument) error {
	if g.Breakers == nil {
		return g.Store.Save(ctx, doc)
	}

	_, err := g.Breakers.Execute(constant.BreakerDocumentStore, func() (any, error) {
		return nil, g.Store.Save(ctx, doc)
	})

	return err
}

func (g *Generator) updateStatus(ctx context.Context, id uuid.UUID, update model.StatusUpdate) error {
	if g.Breakers == nil {
		return g.Store.UpdateStatus(ctx, id, update)
	}

	_, err := g.Breakers.Execute(constant.BreakerDocumentStore, func() (any, error) {
		return nil, g.Store.UpdateStatus(ctx, id, update)
	})

	return err
}

// postProcess moves a processing document to generated, or to failed when the
// post processor fails.
func (g *Generator) postProcess(ctx context.Context, doc *model.GeneratedDocument) (*model.GeneratedDocument, error) {
	logger := pkg.NewLoggerFromContext(ctx)

	pdfURL, err := g.PostProcessor.Process(ctx, doc)
	if err != nil {
		reason := err.Error()

		if updateErr := g.updateStatus(ctx, doc.ID, model.StatusUpdate{
			Status:        constant.DocumentStatusFailed,
			FailureReason: reason,
		}); updateErr != nil {
			logger.Errorf("Failed to mark document %s as failed: %v", doc.ID, updateErr)
		}

		return nil, fmt.Errorf("post-process document %s: %w", doc.ID, err)
	}

	update := model.StatusUpdate{Status: constant.DocumentStatusGenerated, PdfURL: pdfURL}
	if err := g.updateStatus(ctx, doc.ID, update); err != nil {
		return nil, pkg.PersistenceError{Operation: "update status", Err: err}
	}

	doc.Status = update.Status
	doc.PdfURL = pdfURL

	return doc, nil
}
