package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	settingserrors "github.com/ipriyanshu25/office.enoylity/internal/settings/errors"
)

// InvoiceTypeSeed declares one invoice type the settings screen manages. The
// app seeds one per business entity so the screen always has a row to edit.
type InvoiceTypeSeed struct {
	EntityKey   string
	InvoiceType string
}

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	GetList(ctx context.Context) ([]InvoiceSettingsResponse, error)
	GetInvoice(ctx context.Context, settingsID string) (InvoiceSettingsResponse, error)
	UpdateInvoice(ctx context.Context, req UpdateInvoiceSettingsRequest) (InvoiceSettingsResponse, error)
	GetSalary(ctx context.Context) (SalarySettingsResponse, error)
	UpdateSalary(ctx context.Context, req UpdateSalarySettingsRequest) (SalarySettingsResponse, error)

	// InvoiceProfileForEntity feeds the invoice PDF header. A missing row is
	// not an error; it renders as an empty profile.
	InvoiceProfileForEntity(ctx context.Context, entityKey string) (EditableFields, error)
}

type service struct {
	repo   Repository
	seeds  []InvoiceTypeSeed
	logger *zap.Logger
}

func NewService(repo Repository, seeds []InvoiceTypeSeed, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{repo: repo, seeds: seeds, logger: l}
}

func (s *service) ensureInvoiceSeeded(ctx context.Context) error {
	for _, seed := range s.seeds {
		_, err := s.repo.FindInvoiceByType(ctx, seed.InvoiceType)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		row := &InvoiceSettings{
			ID:          uuid.New(),
			SettingsID:  uuid.NewString(),
			InvoiceType: seed.InvoiceType,
			EntityKey:   seed.EntityKey,
		}
		if err := s.repo.SaveInvoice(ctx, row); err != nil {
			return err
		}
		s.logger.Info("seeded invoice settings", zap.String("invoice_type", seed.InvoiceType))
	}
	return nil
}

func (s *service) GetList(ctx context.Context) ([]InvoiceSettingsResponse, error) {
	if err := s.ensureInvoiceSeeded(ctx); err != nil {
		s.logger.Error("seed invoice settings failed", zap.Error(err))
		return nil, err
	}

	rows, err := s.repo.ListInvoice(ctx)
	if err != nil {
		s.logger.Error("list invoice settings failed", zap.Error(err))
		return nil, err
	}

	out := make([]InvoiceSettingsResponse, len(rows))
	for i, row := range rows {
		out[i] = mapInvoiceSettings(row)
	}
	return out, nil
}

func (s *service) GetInvoice(ctx context.Context, settingsID string) (InvoiceSettingsResponse, error) {
	row, err := s.repo.FindInvoiceBySettingsID(ctx, settingsID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceSettingsResponse{}, settingserrors.ErrSettingsNotFound
		}
		s.logger.Error("get invoice settings failed", zap.String("settings_id", settingsID), zap.Error(err))
		return InvoiceSettingsResponse{}, err
	}
	return mapInvoiceSettings(*row), nil
}

func (s *service) UpdateInvoice(ctx context.Context, req UpdateInvoiceSettingsRequest) (InvoiceSettingsResponse, error) {
	if err := s.ensureInvoiceSeeded(ctx); err != nil {
		return InvoiceSettingsResponse{}, err
	}

	row, err := s.repo.FindInvoiceByType(ctx, req.InvoiceType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceSettingsResponse{}, settingserrors.ErrUnknownInvoiceType
		}
		return InvoiceSettingsResponse{}, err
	}

	// Sections absent from the payload keep their stored values.
	if req.CompanyInfo != nil {
		row.CompanyInfo = mustJSON(req.CompanyInfo)
	}
	if req.BankDetails != nil {
		row.BankDetails = mustJSON(req.BankDetails)
	}
	if req.PayPalDetails != nil {
		row.PayPalDetails = mustJSON(req.PayPalDetails)
	}

	if err := s.repo.SaveInvoice(ctx, row); err != nil {
		s.logger.Error("update invoice settings failed", zap.String("invoice_type", req.InvoiceType), zap.Error(err))
		return InvoiceSettingsResponse{}, err
	}

	s.logger.Info("invoice settings updated", zap.String("invoice_type", req.InvoiceType))
	return mapInvoiceSettings(*row), nil
}

func (s *service) GetSalary(ctx context.Context) (SalarySettingsResponse, error) {
	row, err := s.repo.FindSalary(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("get salary settings failed", zap.Error(err))
			return SalarySettingsResponse{}, err
		}
		row = &SalarySettings{ID: uuid.New(), SettingsID: uuid.NewString()}
		if err := s.repo.SaveSalary(ctx, row); err != nil {
			return SalarySettingsResponse{}, err
		}
	}
	return mapSalarySettings(*row), nil
}

func (s *service) UpdateSalary(ctx context.Context, req UpdateSalarySettingsRequest) (SalarySettingsResponse, error) {
	row, err := s.repo.FindSalary(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SalarySettingsResponse{}, err
		}
		row = &SalarySettings{ID: uuid.New(), SettingsID: uuid.NewString()}
	}

	row.CompanyTitle = req.CompanyInfo.CompanyTitle
	row.CompanyName = req.CompanyInfo.CompanyName
	row.AddressLine1 = req.CompanyInfo.AddressLine1
	row.AddressLine2 = req.CompanyInfo.AddressLine2

	if err := s.repo.SaveSalary(ctx, row); err != nil {
		s.logger.Error("update salary settings failed", zap.Error(err))
		return SalarySettingsResponse{}, err
	}

	s.logger.Info("salary settings updated")
	return mapSalarySettings(*row), nil
}

func (s *service) InvoiceProfileForEntity(ctx context.Context, entityKey string) (EditableFields, error) {
	row, err := s.repo.FindInvoiceByEntityKey(ctx, entityKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EditableFields{}, nil
		}
		return EditableFields{}, err
	}
	return mapInvoiceSettings(*row).EditableFields, nil
}

func mapInvoiceSettings(row InvoiceSettings) InvoiceSettingsResponse {
	return InvoiceSettingsResponse{
		SettingsID:  row.SettingsID,
		InvoiceType: row.InvoiceType,
		EditableFields: EditableFields{
			CompanyInfo:   decodeSection(row.CompanyInfo),
			BankDetails:   decodeSection(row.BankDetails),
			PayPalDetails: decodeSection(row.PayPalDetails),
		},
	}
}

func mapSalarySettings(row SalarySettings) SalarySettingsResponse {
	return SalarySettingsResponse{
		SettingsID: row.SettingsID,
		CompanyInfo: SalaryCompanyInfo{
			CompanyTitle: row.CompanyTitle,
			CompanyName:  row.CompanyName,
			AddressLine1: row.AddressLine1,
			AddressLine2: row.AddressLine2,
		},
	}
}

func decodeSection(raw []byte) map[string]string {
	if len(raw) == 0 {
		return map[string]string{}
	}
	out := map[string]string{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]string{}
	}
	return out
}

func mustJSON(m map[string]string) []byte {
	raw, err := json.Marshal(m)
	if err != nil {
		return []byte("{}")
	}
	return raw
}
