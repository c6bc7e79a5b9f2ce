package tests

import (
	"context"
	"errors"
	"testing"

	"qrdine/apperr"
	"qrdine/menu-svc/internal/domain"
	"qrdine/menu-svc/internal/mocks"
	"qrdine/menu-svc/internal/service"
	"qrdine/tenant"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var ctx = context.Background()

const (
	itemID            = "7d3c9a10-5b2e-4f61-8c1a-2b9e4d0a0001"
	foreignItemID     = "7d3c9a10-5b2e-4f61-8c1a-2b9e4d0a0002"
	categoryID        = "7d3c9a10-5b2e-4f61-8c1a-2b9e4d0a0101"
	foreignCategoryID = "7d3c9a10-5b2e-4f61-8c1a-2b9e4d0a0102"
	missingCategoryID = "7d3c9a10-5b2e-4f61-8c1a-2b9e4d0a0103"
	tableID           = "7d3c9a10-5b2e-4f61-8c1a-2b9e4d0a0201"
	foreignTableID    = "7d3c9a10-5b2e-4f61-8c1a-2b9e4d0a0202"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestHotelService_GetMenu(t *testing.T) {
	hotels := mocks.NewHotelRepository(t)
	menu := mocks.NewMenuRepository(t)
	tables := mocks.NewTableRepository(t)
	svc := service.NewHotelService(hotels, menu, tables, nil, nil)

	hotels.On("GetHotelBySlug", ctx, "aurora-grand").Return(&domain.Hotel{ID: "h-a", Slug: "aurora-grand"}, nil).Once()
	menu.On("ListCategories", ctx, "h-a").Return([]domain.MenuCategory{
		{ID: "c-breakfast", HotelID: "h-a", Name: "Breakfast"},
		{ID: "c-desserts", HotelID: "h-a", Name: "Desserts"},
	}, nil).Once()
	menu.On("ListMenuItems", ctx, "h-a", true).Return([]domain.MenuItem{
		{ID: "i-1", CategoryID: "c-breakfast", Name: "Eggs Benedict", Available: true},
		{ID: "i-2", CategoryID: "c-breakfast", Name: "Fruit Bowl", Available: true},
	}, nil).Once()
	tables.On("ListTables", ctx, "h-a").Return(nil, nil).Once()

	result, err := svc.GetMenu(ctx, "aurora-grand")

	require.NoError(t, err)
	require.Len(t, result.Categories, 2)
	assert.Len(t, result.Categories[0].Items, 2)
	assert.NotNil(t, result.Categories[1].Items)
	assert.Empty(t, result.Categories[1].Items)
	assert.NotNil(t, result.Tables)
}

func TestHotelService_GetMenuUnknownHotel(t *testing.T) {
	hotels := mocks.NewHotelRepository(t)
	svc := service.NewHotelService(hotels, nil, nil, nil, nil)

	hotels.On("GetHotelBySlug", ctx, "nowhere").Return(nil, sqlNoRows()).Once()

	_, err := svc.GetMenu(ctx, "nowhere")

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestHotelService_GetTableIsTenantScoped(t *testing.T) {
	store := mocks.NewTenantStore(t)
	svc := service.NewHotelService(nil, nil, nil, tenant.NewResolver(store), nil)

	store.On("HotelBySlug", ctx, "aurora-grand").Return(&tenant.Hotel{ID: "h-a", Slug: "aurora-grand"}, nil)
	store.On("TableBySlug", ctx, "coastal-breeze-beach-cabana-1").
		Return(&tenant.Table{ID: "t-b", HotelID: "h-b", QRSlug: "coastal-breeze-beach-cabana-1"}, nil).Once()
	store.On("TableBySlug", ctx, "aurora-grand-table-1").
		Return(&tenant.Table{ID: "t-a", HotelID: "h-a", QRSlug: "aurora-grand-table-1"}, nil).Once()

	_, table, err := svc.GetTable(ctx, "aurora-grand", "coastal-breeze-beach-cabana-1")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Nil(t, table)

	_, table, err = svc.GetTable(ctx, "aurora-grand", "aurora-grand-table-1")
	require.NoError(t, err)
	assert.Equal(t, "t-a", table.ID)
}

func TestHotelService_Authenticate(t *testing.T) {
	tests := []struct {
		name      string
		creds     domain.Credentials
		setupMock func(*mocks.HotelRepository, *mocks.PinHasher)
		wantKind  apperr.Kind
	}{
		{
			name:      "missing pin",
			creds:     domain.Credentials{Slug: "aurora-grand"},
			setupMock: func(*mocks.HotelRepository, *mocks.PinHasher) {},
			wantKind:  apperr.KindValidation,
		},
		{
			name:  "unknown hotel",
			creds: domain.Credentials{Slug: "nowhere", PIN: "1234"},
			setupMock: func(h *mocks.HotelRepository, _ *mocks.PinHasher) {
				h.On("GetHotelBySlug", ctx, "nowhere").Return(nil, sqlNoRows()).Once()
			},
			wantKind: apperr.KindUnauthorized,
		},
		{
			name:  "wrong pin",
			creds: domain.Credentials{Slug: "aurora-grand", PIN: "0000"},
			setupMock: func(h *mocks.HotelRepository, p *mocks.PinHasher) {
				h.On("GetHotelBySlug", ctx, "aurora-grand").Return(&domain.Hotel{ID: "h-a", PinHash: "hash"}, nil).Once()
				p.On("Compare", "hash", "0000").Return(bcrypt.ErrMismatchedHashAndPassword).Once()
			},
			wantKind: apperr.KindUnauthorized,
		},
		{
			name:  "database down",
			creds: domain.Credentials{Slug: "aurora-grand", PIN: "4821"},
			setupMock: func(h *mocks.HotelRepository, _ *mocks.PinHasher) {
				h.On("GetHotelBySlug", ctx, "aurora-grand").Return(nil, errors.New("connection refused")).Once()
			},
			wantKind: apperr.KindInternal,
		},
		{
			name:  "correct pin",
			creds: domain.Credentials{Slug: " aurora-grand ", PIN: "4821"},
			setupMock: func(h *mocks.HotelRepository, p *mocks.PinHasher) {
				h.On("GetHotelBySlug", ctx, "aurora-grand").Return(&domain.Hotel{ID: "h-a", PinHash: "hash"}, nil).Once()
				p.On("Compare", "hash", "4821").Return(nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			hotels := mocks.NewHotelRepository(t)
			hasher := mocks.NewPinHasher(t)
			testCase.setupMock(hotels, hasher)
			svc := service.NewHotelService(hotels, nil, nil, nil, hasher)

			hotel, err := svc.Authenticate(ctx, testCase.creds)

			if testCase.wantKind != "" {
				assert.Equal(t, testCase.wantKind, apperr.KindOf(err))
				assert.Nil(t, hotel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "h-a", hotel.ID)
		})
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := service.BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := hasher.Hash("4821")

	require.NoError(t, err)
	assert.NotEqual(t, "4821", hash)
	assert.NoError(t, hasher.Compare(hash, "4821"))
	assert.Error(t, hasher.Compare(hash, "4822"))
}

func TestMenuService_CreateItem(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.MenuItemInput
		setupMock func(*mocks.MenuRepository)
		wantKind  apperr.Kind
	}{
		{
			name:      "missing name",
			input:     domain.MenuItemInput{CategoryID: categoryID, Price: price("4.00")},
			setupMock: func(*mocks.MenuRepository) {},
			wantKind:  apperr.KindValidation,
		},
		{
			name:      "missing price",
			input:     domain.MenuItemInput{CategoryID: categoryID, Name: "Tea"},
			setupMock: func(*mocks.MenuRepository) {},
			wantKind:  apperr.KindValidation,
		},
		{
			name:      "negative price",
			input:     domain.MenuItemInput{CategoryID: categoryID, Name: "Tea", Price: price("-1")},
			setupMock: func(*mocks.MenuRepository) {},
			wantKind:  apperr.KindValidation,
		},
		{
			name:      "sub-cent price",
			input:     domain.MenuItemInput{CategoryID: categoryID, Name: "Tea", Price: price("1.005")},
			setupMock: func(*mocks.MenuRepository) {},
			wantKind:  apperr.KindValidation,
		},
		{
			name:  "category of another hotel",
			input: domain.MenuItemInput{CategoryID: foreignCategoryID, Name: "Tea", Price: price("3.00")},
			setupMock: func(m *mocks.MenuRepository) {
				m.On("GetCategory", ctx, foreignCategoryID).Return(&domain.MenuCategory{ID: foreignCategoryID, HotelID: "h-b"}, nil).Once()
			},
			wantKind: apperr.KindForbidden,
		},
		{
			name:  "unknown category",
			input: domain.MenuItemInput{CategoryID: missingCategoryID, Name: "Tea", Price: price("3.00")},
			setupMock: func(m *mocks.MenuRepository) {
				m.On("GetCategory", ctx, missingCategoryID).Return(nil, sqlNoRows()).Once()
			},
			wantKind: apperr.KindNotFound,
		},
		{
			name:  "duplicate name",
			input: domain.MenuItemInput{CategoryID: categoryID, Name: "Tea", Price: price("3.00")},
			setupMock: func(m *mocks.MenuRepository) {
				m.On("GetCategory", ctx, categoryID).Return(&domain.MenuCategory{ID: categoryID, HotelID: "h-a"}, nil).Once()
				m.On("CreateMenuItem", ctx, mock.AnythingOfType("*domain.MenuItem")).Return(&pq.Error{Code: "23505"}).Once()
			},
			wantKind: apperr.KindConflict,
		},
		{
			name:  "valid item defaults to available",
			input: domain.MenuItemInput{CategoryID: categoryID, Name: " Tea ", Price: price("3.50")},
			setupMock: func(m *mocks.MenuRepository) {
				m.On("GetCategory", ctx, categoryID).Return(&domain.MenuCategory{ID: categoryID, HotelID: "h-a"}, nil).Once()
				m.On("CreateMenuItem", ctx, mock.MatchedBy(func(item *domain.MenuItem) bool {
					return item.Name == "Tea" && item.HotelID == "h-a" && item.Available && item.ID != ""
				})).Return(nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			testCase.setupMock(repo)

			item, err := service.NewMenuService(repo).CreateItem(ctx, "h-a", testCase.input)

			if testCase.wantKind != "" {
				assert.Equal(t, testCase.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "3.5", item.Price.String())
		})
	}
}

func TestMenuService_UpdateItem(t *testing.T) {
	existing := func() *domain.MenuItem {
		return &domain.MenuItem{ID: itemID, HotelID: "h-a", CategoryID: categoryID, Name: "Tea", Price: decimal.RequireFromString("3.00"), Available: true}
	}

	t.Run("applies only provided fields", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		repo.On("GetMenuItem", ctx, itemID).Return(existing(), nil).Once()
		repo.On("UpdateMenuItem", ctx, mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()

		item, err := service.NewMenuService(repo).UpdateItem(ctx, "h-a", domain.MenuItemPatch{
			ID:        itemID,
			Price:     price("3.25"),
			Available: boolPtr(false),
		})

		require.NoError(t, err)
		assert.Equal(t, "Tea", item.Name)
		assert.Equal(t, "3.25", item.Price.String())
		assert.False(t, item.Available)
	})

	t.Run("item of another hotel", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		repo.On("GetMenuItem", ctx, itemID).Return(existing(), nil).Once()

		_, err := service.NewMenuService(repo).UpdateItem(ctx, "h-b", domain.MenuItemPatch{ID: itemID, Name: strPtr("Coffee")})

		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("blank name", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		repo.On("GetMenuItem", ctx, itemID).Return(existing(), nil).Once()

		_, err := service.NewMenuService(repo).UpdateItem(ctx, "h-a", domain.MenuItemPatch{ID: itemID, Name: strPtr("  ")})

		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("move to a foreign category", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		repo.On("GetMenuItem", ctx, itemID).Return(existing(), nil).Once()
		repo.On("GetCategory", ctx, foreignCategoryID).Return(&domain.MenuCategory{ID: foreignCategoryID, HotelID: "h-b"}, nil).Once()

		_, err := service.NewMenuService(repo).UpdateItem(ctx, "h-a", domain.MenuItemPatch{ID: itemID, CategoryID: strPtr(foreignCategoryID)})

		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})
}

func TestMenuService_DeleteItem(t *testing.T) {
	tests := []struct {
		name     string
		rows     int64
		dbErr    error
		wantKind apperr.Kind
	}{
		{name: "deleted", rows: 1},
		{name: "already gone", rows: 0, wantKind: apperr.KindNotFound},
		{name: "referenced by orders", dbErr: &pq.Error{Code: "23503"}, wantKind: apperr.KindValidation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			repo.On("GetMenuItem", ctx, itemID).Return(&domain.MenuItem{ID: itemID, HotelID: "h-a"}, nil).Once()
			repo.On("DeleteMenuItem", ctx, "h-a", itemID).Return(testCase.rows, testCase.dbErr).Once()

			err := service.NewMenuService(repo).DeleteItem(ctx, "h-a", itemID)

			if testCase.wantKind != "" {
				assert.Equal(t, testCase.wantKind, apperr.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

// Malformed ids never reach Postgres, where they would fail as internal errors.
func TestMenuService_MalformedIDs(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	err := svc.DeleteItem(ctx, "h-a", "not-a-uuid")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.GetItem(ctx, "h-a", "not-a-uuid")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = svc.SetItemImage(ctx, "h-a", "not-a-uuid", "/uploads/x.png")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.UpdateItem(ctx, "h-a", domain.MenuItemPatch{ID: "not-a-uuid", Name: strPtr("Tea")})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.CreateItem(ctx, "h-a", domain.MenuItemInput{CategoryID: "not-a-uuid", Name: "Tea", Price: price("3.00")})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	repo.On("GetMenuItem", ctx, itemID).Return(&domain.MenuItem{ID: itemID, HotelID: "h-a", CategoryID: categoryID}, nil).Once()
	_, err = svc.UpdateItem(ctx, "h-a", domain.MenuItemPatch{ID: itemID, CategoryID: strPtr("not-a-uuid")})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestMenuService_CreateCategory(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	_, err := svc.CreateCategory(ctx, "h-a", domain.CategoryInput{Name: " "})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	repo.On("CreateCategory", ctx, mock.AnythingOfType("*domain.MenuCategory")).Return(&pq.Error{Code: "23505"}).Once()
	_, err = svc.CreateCategory(ctx, "h-a", domain.CategoryInput{Name: "Drinks"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestTableSlug(t *testing.T) {
	tests := []struct {
		hotelSlug string
		tableName string
		want      string
	}{
		{hotelSlug: "aurora-grand", tableName: "Table 1", want: "aurora-grand-table-1"},
		{hotelSlug: "coastal-breeze", tableName: "Beach Cabana #1", want: "coastal-breeze-beach-cabana-1"},
		{hotelSlug: "aurora-grand", tableName: "  Pool   Bar!  ", want: "aurora-grand-pool-bar"},
	}

	for _, testCase := range tests {
		t.Run(testCase.want, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.TableSlug(testCase.hotelSlug, testCase.tableName))
			assert.Equal(t, service.TableSlug(testCase.hotelSlug, testCase.tableName), service.TableSlug(testCase.hotelSlug, testCase.tableName))
		})
	}
}

func TestTableService_Create(t *testing.T) {
	hotel := &tenant.Hotel{ID: "h-a", Slug: "aurora-grand"}

	t.Run("derives slug", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		repo.On("CreateTable", ctx, mock.MatchedBy(func(table *domain.Table) bool {
			return table.QRSlug == "aurora-grand-table-7" && table.HotelID == "h-a"
		})).Return(nil).Once()

		table, err := service.NewTableService(repo, nil).Create(ctx, hotel, domain.TableInput{Name: "Table 7"})

		require.NoError(t, err)
		assert.Equal(t, "Table 7", table.Name)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		repo.On("CreateTable", ctx, mock.Anything).Return(&pq.Error{Code: "23505"}).Once()

		_, err := service.NewTableService(repo, nil).Create(ctx, hotel, domain.TableInput{Name: "Table 7"})

		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})
}

func TestTableService_QRCode(t *testing.T) {
	hotel := &tenant.Hotel{ID: "h-a", Slug: "aurora-grand"}

	t.Run("own table", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		qr := mocks.NewQRGenerator(t)
		repo.On("GetTable", ctx, tableID).Return(&domain.Table{ID: tableID, HotelID: "h-a", QRSlug: "aurora-grand-table-1"}, nil).Once()
		qr.On("Generate", "aurora-grand", "aurora-grand-table-1").Return([]byte("png"), nil).Once()

		png, err := service.NewTableService(repo, qr).QRCode(ctx, hotel, tableID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("table of another hotel", func(t *testing.T) {
		repo := mocks.NewTableRepository(t)
		repo.On("GetTable", ctx, foreignTableID).Return(&domain.Table{ID: foreignTableID, HotelID: "h-b"}, nil).Once()

		_, err := service.NewTableService(repo, mocks.NewQRGenerator(t)).QRCode(ctx, hotel, foreignTableID)

		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})
}

func TestTableService_MalformedIDs(t *testing.T) {
	hotel := &tenant.Hotel{ID: "h-a", Slug: "aurora-grand"}
	svc := service.NewTableService(mocks.NewTableRepository(t), mocks.NewQRGenerator(t))

	_, err := svc.QRCode(ctx, hotel, "not-a-uuid")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Rename(ctx, hotel, domain.TablePatch{ID: "not-a-uuid", Name: "Table 9"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "https://dine.example.com/"}

	assert.Equal(t, "https://dine.example.com/order/aurora-grand/aurora-grand-table-1", gen.URL("aurora-grand", "aurora-grand-table-1"))

	png, err := gen.Generate("aurora-grand", "aurora-grand-table-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestProvisionService_Plan(t *testing.T) {
	tests := []struct {
		name     string
		seed     domain.HotelSeed
		wantKind apperr.Kind
	}{
		{name: "missing name", seed: domain.HotelSeed{PIN: "1"}, wantKind: apperr.KindValidation},
		{name: "missing pin", seed: domain.HotelSeed{Name: "Aurora Grand"}, wantKind: apperr.KindValidation},
		{
			name: "bad price",
			seed: domain.HotelSeed{Name: "Aurora Grand", PIN: "1", Categories: []domain.CategorySeed{
				{Name: "Mains", Items: []domain.ItemSeed{{Name: "Soup", Price: "twelve"}}},
			}},
			wantKind: apperr.KindValidation,
		},
		{
			name: "duplicate item across categories",
			seed: domain.HotelSeed{Name: "Aurora Grand", PIN: "1", Categories: []domain.CategorySeed{
				{Name: "Mains", Items: []domain.ItemSeed{{Name: "Soup", Price: "5"}}},
				{Name: "Starters", Items: []domain.ItemSeed{{Name: "Soup", Price: "4"}}},
			}},
			wantKind: apperr.KindValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			hasher := mocks.NewPinHasher(t)
			hasher.On("Hash", mock.Anything).Return("hash", nil).Maybe()

			_, err := service.NewProvisionService(nil, nil, hasher).Plan(testCase.seed)

			assert.Equal(t, testCase.wantKind, apperr.KindOf(err))
		})
	}
}

func TestProvisionService_PlanResolvesSlugsAndPrices(t *testing.T) {
	hasher := mocks.NewPinHasher(t)
	hasher.On("Hash", "1937").Return("hash", nil).Once()

	plan, err := service.NewProvisionService(nil, nil, hasher).Plan(domain.HotelSeed{
		Name: "Coastal Breeze",
		PIN:  "1937",
		Categories: []domain.CategorySeed{{Name: "Drinks", Items: []domain.ItemSeed{
			{Name: "Iced Coffee", Price: "5.25"},
			{Name: "Hot Toddy", Price: "7", Available: boolPtr(false)},
		}}},
		Tables: []string{"Beach Cabana 1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "coastal-breeze", plan.Hotel.Slug)
	assert.Equal(t, "hash", plan.Hotel.PinHash)
	require.Len(t, plan.Categories, 1)
	items := plan.Categories[0].Items
	require.Len(t, items, 2)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("5.25")))
	assert.False(t, items[1].Available)
	assert.Equal(t, plan.Categories[0].Category.ID, items[0].CategoryID)
	require.Len(t, plan.Tables, 1)
	assert.Equal(t, "coastal-breeze-beach-cabana-1", plan.Tables[0].QRSlug)
}

func TestProvisionService_Seed(t *testing.T) {
	repo := mocks.NewProvisionRepository(t)
	hasher := mocks.NewPinHasher(t)
	hasher.On("Hash", mock.Anything).Return("hash", nil)
	repo.On("ApplyPlan", ctx, mock.MatchedBy(func(p *domain.ProvisionPlan) bool { return p.Hotel.Slug == "aurora-grand" })).Return(nil).Once()
	repo.On("ApplyPlan", ctx, mock.MatchedBy(func(p *domain.ProvisionPlan) bool { return p.Hotel.Slug == "coastal-breeze" })).
		Return(&pq.Error{Code: "23505"}).Once()

	_, err := service.NewProvisionService(repo, nil, hasher).Seed(ctx, domain.SeedFile{Hotels: []domain.HotelSeed{
		{Name: "Aurora Grand", PIN: "4821"},
		{Name: "Coastal Breeze", PIN: "1937"},
	}})

	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestProvisionService_SeedRejectsInvalidFileBeforeWriting(t *testing.T) {
	repo := mocks.NewProvisionRepository(t)
	hasher := mocks.NewPinHasher(t)
	hasher.On("Hash", mock.Anything).Return("hash", nil)

	_, err := service.NewProvisionService(repo, nil, hasher).Seed(ctx, domain.SeedFile{Hotels: []domain.HotelSeed{
		{Name: "Aurora Grand", PIN: "4821"},
		{Name: "Coastal Breeze"},
	}})

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	repo.AssertNotCalled(t, "ApplyPlan", mock.Anything, mock.Anything)
}

func TestProvisionService_AddTable(t *testing.T) {
	repo := mocks.NewProvisionRepository(t)
	hotels := mocks.NewHotelRepository(t)
	svc := service.NewProvisionService(repo, hotels, nil)

	hotels.On("GetHotelBySlug", ctx, "nowhere").Return(nil, sqlNoRows()).Once()
	_, err := svc.AddTable(ctx, "nowhere", "Table 1")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	hotels.On("GetHotelBySlug", ctx, "aurora-grand").Return(&domain.Hotel{ID: "h-a", Slug: "aurora-grand"}, nil).Once()
	repo.On("UpsertTable", ctx, mock.MatchedBy(func(table *domain.Table) bool {
		return table.QRSlug == "aurora-grand-table-9"
	})).Return(nil).Once()

	table, err := svc.AddTable(ctx, "aurora-grand", "Table 9")
	require.NoError(t, err)
	assert.Equal(t, "h-a", table.HotelID)
}
