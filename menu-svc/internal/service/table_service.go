package service

import (
	"context"
	"strings"

	"qrdine/apperr"
	"qrdine/menu-svc/internal/domain"
	"qrdine/tenant"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type TableService struct {
	repo TableRepository
	qr   QRGenerator
}

func NewTableService(repo TableRepository, qr QRGenerator) *TableService {
	return &TableService{repo: repo, qr: qr}
}

// TableSlug derives the globally unique guest-facing slug of a table. It is
// stable for stable input so provisioning can be re-run.
func TableSlug(hotelSlug, tableName string) string {
	return slug.Make(hotelSlug + "-" + tableName)
}

func (s *TableService) List(ctx context.Context, hotelID string) ([]domain.Table, error) {
	tables, err := s.repo.ListTables(ctx, hotelID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return tables, nil
}

func (s *TableService) Create(ctx context.Context, hotel *tenant.Hotel, in domain.TableInput) (*domain.Table, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("table name is required")
	}

	table := &domain.Table{
		ID:      uuid.NewString(),
		HotelID: hotel.ID,
		Name:    name,
		QRSlug:  TableSlug(hotel.Slug, name),
	}
	if err := s.repo.CreateTable(ctx, table); err != nil {
		return nil, apperr.FromPostgres(err, "table already exists")
	}
	return table, nil
}

// Rename changes a table's display name and therefore its slug; QR codes
// printed for the old name stop resolving.
func (s *TableService) Rename(ctx context.Context, hotel *tenant.Hotel, patch domain.TablePatch) (*domain.Table, error) {
	name := strings.TrimSpace(patch.Name)
	if name == "" {
		return nil, apperr.Validation("table name is required")
	}
	if _, err := uuid.Parse(patch.ID); patch.ID != "" && err != nil {
		return nil, apperr.Validation("table id is malformed")
	}
	table, err := s.ownTable(ctx, hotel.ID, patch.ID)
	if err != nil {
		return nil, err
	}

	table.Name = name
	table.QRSlug = TableSlug(hotel.Slug, name)
	if err := s.repo.UpdateTable(ctx, table); err != nil {
		return nil, apperr.FromPostgres(err, "table already exists")
	}
	return table, nil
}

func (s *TableService) QRCode(ctx context.Context, hotel *tenant.Hotel, tableID string) ([]byte, error) {
	table, err := s.ownTable(ctx, hotel.ID, tableID)
	if err != nil {
		return nil, err
	}
	png, err := s.qr.Generate(hotel.Slug, table.QRSlug)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return png, nil
}

func (s *TableService) ownTable(ctx context.Context, hotelID, tableID string) (*domain.Table, error) {
	if tableID == "" {
		return nil, apperr.Validation("table id is required")
	}
	if _, err := uuid.Parse(tableID); err != nil {
		return nil, apperr.NotFound("table not found")
	}
	table, err := s.repo.GetTable(ctx, tableID)
	if err != nil {
		return nil, apperr.FromPostgres(err, "table not found")
	}
	if err := tenant.Authorize(hotelID, table.HotelID); err != nil {
		return nil, err
	}
	return table, nil
}
