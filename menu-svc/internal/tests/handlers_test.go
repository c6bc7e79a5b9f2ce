package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	httpapi "qrdine/menu-svc/internal/api/http"
	"qrdine/menu-svc/internal/domain"
	"qrdine/menu-svc/internal/mocks"
	"qrdine/menu-svc/internal/service"
	"qrdine/session"
	"qrdine/tenant"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	hotels   *mocks.HotelRepository
	menu     *mocks.MenuRepository
	tables   *mocks.TableRepository
	store    *mocks.TenantStore
	hasher   *mocks.PinHasher
	qr       *mocks.QRGenerator
	sessions  *session.Manager
	uploadDir string
	router    *mux.Router
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		hotels:   mocks.NewHotelRepository(t),
		menu:     mocks.NewMenuRepository(t),
		tables:   mocks.NewTableRepository(t),
		store:    mocks.NewTenantStore(t),
		hasher:   mocks.NewPinHasher(t),
		qr:       mocks.NewQRGenerator(t),
		sessions:  session.NewManager("test-secret", time.Hour, false, nil),
		uploadDir: t.TempDir(),
	}
	resolver := tenant.NewResolver(f.store)
	handler := httpapi.NewHandler(
		service.NewHotelService(f.hotels, f.menu, f.tables, resolver, f.hasher),
		service.NewMenuService(f.menu),
		service.NewTableService(f.tables, f.qr),
		f.sessions,
		resolver,
		f.uploadDir,
		zap.NewNop(),
	)
	f.router = mux.NewRouter()
	handler.RegisterRoutes(f.router)
	return f
}

func (f *fixture) serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) asAdmin(t *testing.T, req *http.Request, hotelID string) *http.Request {
	t.Helper()
	token, err := f.sessions.Issue(hotelID)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	return req
}

func (f *fixture) knowsHotels() {
	f.store.On("HotelBySlug", mock.Anything, "aurora-grand").Return(&tenant.Hotel{ID: "h-a", Slug: "aurora-grand"}, nil).Maybe()
	f.store.On("HotelBySlug", mock.Anything, "coastal-breeze").Return(&tenant.Hotel{ID: "h-b", Slug: "coastal-breeze"}, nil).Maybe()
}

func TestGetHotelMenuHandler(t *testing.T) {
	tests := []struct {
		name      string
		slug      string
		setupMock func(*fixture)
		wantCode  int
	}{
		{
			name: "found",
			slug: "aurora-grand",
			setupMock: func(f *fixture) {
				f.hotels.On("GetHotelBySlug", mock.Anything, "aurora-grand").Return(&domain.Hotel{ID: "h-a", Slug: "aurora-grand"}, nil).Once()
				f.menu.On("ListCategories", mock.Anything, "h-a").Return([]domain.MenuCategory{{ID: categoryID, Name: "Breakfast"}}, nil).Once()
				f.menu.On("ListMenuItems", mock.Anything, "h-a", true).Return([]domain.MenuItem{{ID: itemID, CategoryID: categoryID}}, nil).Once()
				f.tables.On("ListTables", mock.Anything, "h-a").Return([]domain.Table{}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "unknown hotel",
			slug: "nowhere",
			setupMock: func(f *fixture) {
				f.hotels.On("GetHotelBySlug", mock.Anything, "nowhere").Return(nil, sqlNoRows()).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f)

			w := f.serve(t, httptest.NewRequest("GET", "/api/hotels/"+testCase.slug, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetTableHandler_CrossTenantSlugIsNotFound(t *testing.T) {
	f := newFixture(t)
	f.knowsHotels()
	f.store.On("TableBySlug", mock.Anything, "coastal-breeze-beach-cabana-1").
		Return(&tenant.Table{ID: "t-b", HotelID: "h-b"}, nil).Once()

	w := f.serve(t, httptest.NewRequest("GET", "/api/hotels/aurora-grand/tables/coastal-breeze-beach-cabana-1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "t-b")
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*fixture)
		wantCode   int
		wantCookie bool
	}{
		{
			name: "valid pin",
			body: `{"slug":"aurora-grand","pin":"4821"}`,
			setupMock: func(f *fixture) {
				f.hotels.On("GetHotelBySlug", mock.Anything, "aurora-grand").Return(&domain.Hotel{ID: "h-a", Slug: "aurora-grand", PinHash: "hash"}, nil).Once()
				f.hasher.On("Compare", "hash", "4821").Return(nil).Once()
			},
			wantCode:   http.StatusOK,
			wantCookie: true,
		},
		{
			name: "wrong pin",
			body: `{"slug":"aurora-grand","pin":"0000"}`,
			setupMock: func(f *fixture) {
				f.hotels.On("GetHotelBySlug", mock.Anything, "aurora-grand").Return(&domain.Hotel{ID: "h-a", PinHash: "hash"}, nil).Once()
				f.hasher.On("Compare", "hash", "0000").Return(assert.AnError).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "missing fields",
			body:      `{"slug":"aurora-grand"}`,
			setupMock: func(*fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(*fixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f)

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := f.serve(t, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			var found bool
			for _, c := range w.Result().Cookies() {
				if c.Name == session.CookieName && c.Value != "" {
					found = true
					assert.True(t, c.HttpOnly)
				}
			}
			assert.Equal(t, testCase.wantCookie, found)
		})
	}
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	f := newFixture(t)
	req := f.asAdmin(t, httptest.NewRequest("POST", "/api/auth/logout", nil), "h-a")

	w := f.serve(t, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestDashboardAuthorization(t *testing.T) {
	tests := []struct {
		name     string
		hotelID  string
		slug     string
		wantCode int
	}{
		{name: "no session", slug: "aurora-grand", wantCode: http.StatusUnauthorized},
		{name: "other hotel's dashboard", hotelID: "h-a", slug: "coastal-breeze", wantCode: http.StatusForbidden},
		{name: "own dashboard", hotelID: "h-a", slug: "aurora-grand", wantCode: http.StatusOK},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.knowsHotels()
			f.tables.On("ListTables", mock.Anything, "h-a").Return([]domain.Table{}, nil).Maybe()

			req := httptest.NewRequest("GET", "/api/dashboard/"+testCase.slug+"/tables", nil)
			if testCase.hotelID != "" {
				req = f.asAdmin(t, req, testCase.hotelID)
			}
			w := f.serve(t, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestCreateMenuItemHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*fixture)
		wantCode  int
	}{
		{
			name: "valid item",
			body: `{"categoryId":"` + categoryID + `","name":"Tea","price":"3.50"}`,
			setupMock: func(f *fixture) {
				f.menu.On("GetCategory", mock.Anything, categoryID).Return(&domain.MenuCategory{ID: categoryID, HotelID: "h-a"}, nil).Once()
				f.menu.On("CreateMenuItem", mock.Anything, mock.AnythingOfType("*domain.MenuItem")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "numeric price with too many decimals",
			body:      `{"categoryId":"` + categoryID + `","name":"Tea","price":3.505}`,
			setupMock: func(*fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "non-numeric price",
			body:      `{"categoryId":"` + categoryID + `","name":"Tea","price":"cheap"}`,
			setupMock: func(*fixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.knowsHotels()
			testCase.setupMock(f)

			req := httptest.NewRequest("POST", "/api/dashboard/aurora-grand/menu", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := f.serve(t, f.asAdmin(t, req, "h-a"))

			assert.Equal(t, testCase.wantCode, w.Code)
			if w.Code == http.StatusCreated {
				var item domain.MenuItem
				require.NoError(t, json.NewDecoder(w.Body).Decode(&item))
				assert.Equal(t, "3.5", item.Price.String())
			}
		})
	}
}

func TestDeleteMenuItemHandler_ForeignItemForbidden(t *testing.T) {
	f := newFixture(t)
	f.knowsHotels()
	f.menu.On("GetMenuItem", mock.Anything, foreignItemID).Return(&domain.MenuItem{ID: foreignItemID, HotelID: "h-b"}, nil).Once()

	req := httptest.NewRequest("DELETE", "/api/dashboard/aurora-grand/menu/"+foreignItemID, nil)
	w := f.serve(t, f.asAdmin(t, req, "h-a"))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func imageUpload(t *testing.T, contentType string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="tea.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadMenuItemImageHandler(t *testing.T) {
	imagePath := func(f *fixture) string {
		return filepath.Join(f.uploadDir, "menu_aurora-grand_"+itemID+".png")
	}

	tests := []struct {
		name        string
		contentType string
		setupMock   func(*fixture)
		wantCode    int
		wantImage   string
	}{
		{
			name:        "png accepted",
			contentType: "image/png",
			setupMock: func(f *fixture) {
				f.menu.On("GetMenuItem", mock.Anything, itemID).Return(&domain.MenuItem{ID: itemID, HotelID: "h-a"}, nil).Twice()
				f.menu.On("UpdateMenuItemImage", mock.Anything, "h-a", itemID, "/uploads/menu_aurora-grand_"+itemID+".png").Return(nil).Once()
			},
			wantCode:  http.StatusOK,
			wantImage: "\x89PNG fake",
		},
		{
			name:        "pdf rejected",
			contentType: "application/pdf",
			setupMock: func(f *fixture) {
				f.menu.On("GetMenuItem", mock.Anything, itemID).Return(&domain.MenuItem{ID: itemID, HotelID: "h-a"}, nil).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:        "item of another hotel writes nothing",
			contentType: "image/png",
			setupMock: func(f *fixture) {
				f.menu.On("GetMenuItem", mock.Anything, itemID).Return(&domain.MenuItem{ID: itemID, HotelID: "h-b"}, nil).Once()
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:        "failed update keeps the current image",
			contentType: "image/png",
			setupMock: func(f *fixture) {
				current := "/uploads/menu_aurora-grand_" + itemID + ".png"
				require.NoError(t, os.WriteFile(imagePath(f), []byte("old"), 0644))
				f.menu.On("GetMenuItem", mock.Anything, itemID).Return(&domain.MenuItem{ID: itemID, HotelID: "h-a", ImageURL: current}, nil).Twice()
				f.menu.On("UpdateMenuItemImage", mock.Anything, "h-a", itemID, current).Return(errors.New("connection reset")).Once()
			},
			wantCode:  http.StatusInternalServerError,
			wantImage: "\x89PNG fake",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.knowsHotels()
			testCase.setupMock(f)

			body, contentType := imageUpload(t, testCase.contentType)
			req := httptest.NewRequest("POST", "/api/dashboard/aurora-grand/menu/"+itemID+"/image", body)
			req.Header.Set("Content-Type", contentType)
			w := f.serve(t, f.asAdmin(t, req, "h-a"))

			assert.Equal(t, testCase.wantCode, w.Code)
			content, err := os.ReadFile(imagePath(f))
			if testCase.wantImage == "" {
				assert.True(t, os.IsNotExist(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantImage, string(content))
		})
	}
}

func TestMenuItemHandlers_MalformedIDs(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
	}{
		{name: "delete item", method: "DELETE", target: "/api/dashboard/aurora-grand/menu/abc", wantCode: http.StatusNotFound},
		{name: "upload image", method: "POST", target: "/api/dashboard/aurora-grand/menu/abc/image", wantCode: http.StatusNotFound},
		{name: "table qr code", method: "GET", target: "/api/dashboard/aurora-grand/tables/abc/qrcode", wantCode: http.StatusNotFound},
		{name: "patch item", method: "PATCH", target: "/api/dashboard/aurora-grand/menu", body: `{"id":"abc","name":"Tea"}`, wantCode: http.StatusBadRequest},
		{name: "patch table", method: "PATCH", target: "/api/dashboard/aurora-grand/tables", body: `{"id":"abc","name":"Table 9"}`, wantCode: http.StatusBadRequest},
		{name: "create item", method: "POST", target: "/api/dashboard/aurora-grand/menu", body: `{"categoryId":"abc","name":"Tea","price":"3.50"}`, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.knowsHotels()

			req := httptest.NewRequest(testCase.method, testCase.target, bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := f.serve(t, f.asAdmin(t, req, "h-a"))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestTableQRCodeHandler(t *testing.T) {
	f := newFixture(t)
	f.knowsHotels()
	f.tables.On("GetTable", mock.Anything, tableID).Return(&domain.Table{ID: tableID, HotelID: "h-a", QRSlug: "aurora-grand-table-1"}, nil).Once()
	f.qr.On("Generate", "aurora-grand", "aurora-grand-table-1").Return([]byte("\x89PNG"), nil).Once()

	req := httptest.NewRequest("GET", "/api/dashboard/aurora-grand/tables/"+tableID+"/qrcode", nil)
	w := f.serve(t, f.asAdmin(t, req, "h-a"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", w.Body.String())
}
