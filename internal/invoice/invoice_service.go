package invoice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ipriyanshu25/office.enoylity/internal/events"
	invoiceerrors "github.com/ipriyanshu25/office.enoylity/internal/invoice/errors"
	"github.com/ipriyanshu25/office.enoylity/internal/messaging/kafka"
	"github.com/ipriyanshu25/office.enoylity/internal/settings"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/contextutil"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/counter"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/listquery"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/pdfwriter"
)

const dateLayout = "2006-01-02"

// The dashboard's forms historically posted DD-MM-YYYY as well.
var acceptedDateLayouts = []string{dateLayout, "02-01-2006"}

// ProfileSource hands the generator the company/bank/paypal blocks the
// settings screen maintains. settings.Service satisfies it.
type ProfileSource interface {
	InvoiceProfileForEntity(ctx context.Context, entityKey string) (settings.EditableFields, error)
}

//go:generate mockgen -source=invoice_service.go -destination=mock/invoice_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, entity BusinessEntity, req GenerateInvoiceRequest) (GeneratedDocument, error)
	GetList(ctx context.Context, entity BusinessEntity, req GetListRequest) (ListResponse, error)
	GetInvoice(ctx context.Context, entity BusinessEntity, id string) (InvoiceResponse, error)
	Delete(ctx context.Context, entity BusinessEntity, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	outbox   kafka.OutboxRepository
	profiles ProfileSource
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	profiles ProfileSource,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("invoice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invoice.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counterRepo,
		outbox:   outboxRepo,
		profiles: profiles,
		logger:   l,
	}
}

func parseDate(v string) (time.Time, error) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invoiceerrors.ErrInvalidDate
}

func (s *service) Generate(ctx context.Context, entity BusinessEntity, req GenerateInvoiceRequest) (GeneratedDocument, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate invoice requested",
		zap.String("request_id", rid),
		zap.String("entity", entity.Key),
		zap.String("bill_to", req.BillToName),
	)

	if len(req.Items) == 0 {
		return GeneratedDocument{}, invoiceerrors.ErrNoLineItems
	}

	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		return GeneratedDocument{}, err
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return GeneratedDocument{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate invoice begin tx failed", zap.Error(err))
		return GeneratedDocument{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, entity.Key, "invoice_number")
	if err != nil {
		s.logger.Error("generate invoice number failed", zap.Error(err))
		return GeneratedDocument{}, err
	}
	invoiceNumber := fmt.Sprintf("%s-%04d", entity.NumberPrefix, nextVal)

	inv := &Invoice{
		ID:            uuid.New(),
		EntityKey:     entity.Key,
		InvoiceNumber: invoiceNumber,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		BillToName:    req.BillToName,
		BillToAddress: req.BillToAddress,
		BillToEmail:   req.BillToEmail,
		BillToPhone:   req.BillToPhone,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
	}
	if req.PaymentMethod == PaymentBankTransfer {
		inv.BankNote = req.BankNote
	}

	// Total is never trusted from the client.
	var total float64
	for _, item := range req.Items {
		inv.Items = append(inv.Items, InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   inv.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
		total += float64(item.Quantity) * item.Price
	}
	inv.Total = total

	if err := qtx.Create(ctx, inv); err != nil {
		s.logger.Error("generate invoice persist failed", zap.Error(err))
		return GeneratedDocument{}, mapRepositoryError(err)
	}

	fileName := fmt.Sprintf("invoice_%s.pdf", req.BillToName)

	if s.outbox != nil {
		event := events.DocumentGeneratedEvent{
			EventType:   "document_generated",
			RequestID:   rid,
			Kind:        "invoice",
			DocumentID:  inv.ID.String(),
			EntityKey:   entity.Key,
			FileName:    fileName,
			GeneratedBy: contextutil.GetActorID(ctx),
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return GeneratedDocument{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "invoice",
			AggregateID:   inv.ID.String(),
			EventType:     event.EventType,
			Topic:         events.DocumentGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("generate invoice outbox persist failed", zap.Error(err))
			return GeneratedDocument{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate invoice commit failed", zap.Error(err))
		return GeneratedDocument{}, err
	}

	resp := mapToResponse(*inv)

	var profile settings.EditableFields
	if s.profiles != nil {
		profile, err = s.profiles.InvoiceProfileForEntity(ctx, entity.Key)
		if err != nil {
			// The document is already committed; render without the profile
			// rather than failing the download.
			s.logger.Warn("invoice profile lookup failed", zap.String("entity", entity.Key), zap.Error(err))
			profile = settings.EditableFields{}
		}
	}

	pdf, err := pdfwriter.Build(buildDocumentLines(entity, profile, resp))
	if err != nil {
		s.logger.Error("generate invoice pdf build failed", zap.Error(err))
		return GeneratedDocument{}, err
	}

	s.logger.Info("generate invoice success",
		zap.String("request_id", rid),
		zap.String("entity", entity.Key),
		zap.String("invoice_number", invoiceNumber),
	)

	return GeneratedDocument{Invoice: resp, FileName: fileName, PDF: pdf}, nil
}

func (s *service) GetList(ctx context.Context, entity BusinessEntity, req GetListRequest) (ListResponse, error) {
	params := listquery.Params{
		Search:    req.Search,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	params.Normalize(5, "invoice_date")

	invs, err := s.repo.FindAllByEntity(ctx, entity.Key)
	if err != nil {
		s.logger.Error("get invoice list failed", zap.String("entity", entity.Key), zap.Error(err))
		return ListResponse{}, mapRepositoryError(err)
	}

	rows := make([]InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		resp := mapToResponse(inv)
		if listquery.Matches(params.Search, resp.InvoiceNumber, resp.BillTo.Name, resp.BillTo.Email) {
			rows = append(rows, resp)
		}
	}

	listquery.SortBy(rows, sortKey(params.SortBy), params.Desc())
	window, totalPages := listquery.Paginate(rows, params.Page, params.PageSize)

	return ListResponse{Invoices: window, TotalPages: totalPages}, nil
}

func sortKey(field string) func(InvoiceResponse) string {
	switch field {
	case "invoice_number":
		return func(i InvoiceResponse) string { return i.InvoiceNumber }
	case "due_date":
		return func(i InvoiceResponse) string { return i.DueDate }
	case "bill_to_name":
		return func(i InvoiceResponse) string { return i.BillTo.Name }
	case "total":
		// zero-padded so lexicographic order matches numeric order
		return func(i InvoiceResponse) string { return fmt.Sprintf("%014.2f", i.Total) }
	default:
		return func(i InvoiceResponse) string { return i.InvoiceDate }
	}
}

func (s *service) GetInvoice(ctx context.Context, entity BusinessEntity, id string) (InvoiceResponse, error) {
	inv, err := s.repo.FindByID(ctx, entity.Key, id)
	if err != nil {
		s.logger.Error("get invoice failed",
			zap.String("entity", entity.Key),
			zap.String("invoice_id", id),
			zap.Error(err),
		)
		return InvoiceResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*inv), nil
}

func (s *service) Delete(ctx context.Context, entity BusinessEntity, id string) error {
	if _, err := s.repo.FindByID(ctx, entity.Key, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, entity.Key, id); err != nil {
		s.logger.Error("delete invoice failed",
			zap.String("entity", entity.Key),
			zap.String("invoice_id", id),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete invoice success",
		zap.String("entity", entity.Key),
		zap.String("invoice_id", id),
	)
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invoiceerrors.ErrInvoiceNotFound
	}
	return err
}

func mapToResponse(inv Invoice) InvoiceResponse {
	items := make([]ItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = ItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	return InvoiceResponse{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate.Format(dateLayout),
		DueDate:       inv.DueDate.Format(dateLayout),
		BillTo: BillToResponse{
			Name:    inv.BillToName,
			Address: inv.BillToAddress,
			Email:   inv.BillToEmail,
			Phone:   inv.BillToPhone,
		},
		Items:         items,
		PaymentMethod: inv.PaymentMethod,
		Note:          inv.Note,
		BankNote:      inv.BankNote,
		Total:         inv.Total,
	}
}
