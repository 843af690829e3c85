package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/edu-licensing/licensing/internal/errs"
	"github.com/Astemirdum/edu-licensing/licensing/internal/events"
	"github.com/Astemirdum/edu-licensing/licensing/internal/model"
	"github.com/Astemirdum/edu-licensing/licensing/internal/repository"
)

type License struct {
	repo      repository.LicenseRepository
	publisher events.Publisher
	codes     *CodeGenerator
	now       func() time.Time
	log       *zap.Logger
}

func NewLicense(repo repository.LicenseRepository, publisher events.Publisher, log *zap.Logger) *License {
	return &License{
		repo:      repo,
		publisher: publisher,
		codes:     NewCodeGenerator(),
		now:       time.Now,
		log:       log.Named("license"),
	}
}

// CreateBatch validates the request, resolves the customer and stores the batch with quantity generated keys.
func (s *License) CreateBatch(ctx context.Context, req model.CreateBatchRequest) (model.CreatedBatch, error) {
	if req.BookID <= 0 {
		return model.CreatedBatch{}, errs.Validation("book_id is required")
	}
	if req.Quantity <= 0 {
		return model.CreatedBatch{}, errs.Validation("quantity must be a positive integer")
	}
	if req.Quantity > model.MaxBatchQuantity {
		return model.CreatedBatch{}, errs.Validation("quantity must not exceed %d", model.MaxBatchQuantity)
	}
	if (req.SecretaryID == nil) == (req.SchoolID == nil) {
		return model.CreatedBatch{}, errs.Validation("exactly one of secretary_id or school_id must be provided")
	}

	customer, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return model.CreatedBatch{}, err
	}

	prefix := Prefix(customer.Name, s.now().Year())
	created, err := s.repo.CreateBatch(ctx, model.NewBatch{
		BookID:       req.BookID,
		Quantity:     req.Quantity,
		CustomerType: customer.Type,
		SecretaryID:  req.SecretaryID,
		SchoolID:     req.SchoolID,
		Codes:        s.codes.Generate(prefix, req.Quantity),
	})
	if err != nil {
		return model.CreatedBatch{}, err
	}
	s.log.Info("license batch created",
		zap.Int("batch_id", created.ID),
		zap.Int("book_id", created.BookID),
		zap.String("customer_type", string(customer.Type)),
		zap.Int("customer_id", customer.ID),
		zap.Int("keys", created.KeysGenerated))

	s.publish(ctx, model.EventBatchCreated, created.LicenseBatch)
	return created, nil
}

func (s *License) resolveCustomer(ctx context.Context, req model.CreateBatchRequest) (model.Customer, error) {
	if req.SecretaryID != nil {
		sec, err := s.repo.GetSecretary(ctx, *req.SecretaryID)
		if err != nil {
			return model.Customer{}, err
		}
		return model.Customer{Type: model.CustomerSecretary, ID: sec.ID, Name: sec.Name}, nil
	}
	school, err := s.repo.GetSchool(ctx, *req.SchoolID)
	if err != nil {
		return model.Customer{}, err
	}
	if !school.IsPrivate {
		return model.Customer{}, errs.Validation("batch issuance restricted to private schools")
	}
	return model.Customer{Type: model.CustomerSchool, ID: school.ID, Name: school.Name}, nil
}

func (s *License) ListBatches(ctx context.Context) ([]model.BatchSummary, error) {
	return s.repo.ListBatches(ctx)
}

func (s *License) GetBatch(ctx context.Context, id int) (model.BatchDetail, error) {
	return s.repo.GetBatch(ctx, id)
}

// ListSecretaryBatches returns only the batches already handed over to the secretariat.
func (s *License) ListSecretaryBatches(ctx context.Context, secretaryID int) ([]model.BatchSummary, error) {
	return s.repo.ListBatchesBySecretary(ctx, secretaryID, model.VisibleToSecretary)
}

func (s *License) UpdateBatchStatus(ctx context.Context, id int, status model.BatchStatus) (model.LicenseBatch, error) {
	if status != model.BatchSent {
		return model.LicenseBatch{}, errs.Validation("invalid status, only %s is accepted", model.BatchSent)
	}
	batch, err := s.repo.UpdateBatchStatus(ctx, id, status, s.now().UTC())
	if err != nil {
		return model.LicenseBatch{}, err
	}
	s.log.Info("license batch sent", zap.Int("batch_id", id))

	s.publish(ctx, model.EventBatchSent, batch)
	return batch, nil
}

// publish never fails the caller; the batch is already committed.
func (s *License) publish(ctx context.Context, typ string, b model.LicenseBatch) {
	ev := model.BatchEvent{
		Type:      typ,
		BatchID:   b.ID,
		BookID:    b.BookID,
		Quantity:  b.Quantity,
		Customer:  b.CustomerType,
		Status:    b.Status,
		Timestamp: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.log.Warn("publish batch event", zap.String("type", typ), zap.Int("batch_id", b.ID), zap.Error(err))
	}
}
