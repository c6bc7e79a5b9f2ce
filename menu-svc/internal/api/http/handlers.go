package httpapi

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"qrdine/apperr"
	"qrdine/httpx"
	"qrdine/menu-svc/internal/domain"
	"qrdine/menu-svc/internal/service"
	"qrdine/session"
	"qrdine/tenant"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const maxImageSize = 10 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Handler struct {
	Hotels    service.HotelServiceInterface
	Menu      service.MenuServiceInterface
	Tables    service.TableServiceInterface
	Sessions  *session.Manager
	Resolver  *tenant.Resolver
	UploadDir string
	Logger    *zap.Logger
}

func NewHandler(hotels service.HotelServiceInterface, menu service.MenuServiceInterface, tables service.TableServiceInterface,
	sessions *session.Manager, resolver *tenant.Resolver, uploadDir string, logger *zap.Logger) *Handler {
	return &Handler{
		Hotels:    hotels,
		Menu:      menu,
		Tables:    tables,
		Sessions:  sessions,
		Resolver:  resolver,
		UploadDir: uploadDir,
		Logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpx.Health("menu-svc")).Methods("GET")

	r.HandleFunc("/api/hotels/{slug}", h.getHotelMenu).Methods("GET")
	r.HandleFunc("/api/hotels/{slug}/tables/{tableSlug}", h.getTable).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")

	admin := r.PathPrefix("/api/dashboard/{slug}").Subrouter()
	admin.Use(h.Sessions.Require)
	admin.HandleFunc("/categories", h.listCategories).Methods("GET")
	admin.HandleFunc("/categories", h.createCategory).Methods("POST")
	admin.HandleFunc("/menu", h.listMenuItems).Methods("GET")
	admin.HandleFunc("/menu", h.createMenuItem).Methods("POST")
	admin.HandleFunc("/menu", h.updateMenuItem).Methods("PATCH")
	admin.HandleFunc("/menu/{itemId}", h.deleteMenuItem).Methods("DELETE")
	admin.HandleFunc("/menu/{itemId}/image", h.uploadMenuItemImage).Methods("POST")
	admin.HandleFunc("/tables", h.listTables).Methods("GET")
	admin.HandleFunc("/tables", h.createTable).Methods("POST")
	admin.HandleFunc("/tables", h.renameTable).Methods("PATCH")
	admin.HandleFunc("/tables/{tableId}/qrcode", h.getTableQRCode).Methods("GET")

	if h.UploadDir != "" {
		r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir))))
	}
}

// adminHotel resolves the hotel named in the URL and checks that the session
// belongs to it.
func (h *Handler) adminHotel(r *http.Request) (*tenant.Hotel, error) {
	sessionHotelID, err := session.HotelIDFromContext(r.Context())
	if err != nil {
		return nil, err
	}
	return h.Resolver.AuthorizeHotel(r.Context(), sessionHotelID, mux.Vars(r)["slug"])
}

func (h *Handler) getHotelMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Hotels.GetMenu(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, menu)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotel, table, err := h.Hotels.GetTable(r.Context(), vars["slug"], vars["tableSlug"])
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"hotel": hotel, "table": table})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := httpx.DecodeJSON(r, &creds); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}

	hotel, err := h.Hotels.Authenticate(r.Context(), creds)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	if err := h.Sessions.Login(w, hotel.ID); err != nil {
		httpx.WriteError(w, h.Logger, apperr.Internal(err))
		return
	}

	h.Logger.Info("admin signed in", zap.String("hotel", hotel.Slug))
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"slug": hotel.Slug, "name": hotel.Name})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(w, r); err != nil {
		h.Logger.Warn("failed to revoke session", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	categories, err := h.Menu.ListCategories(r.Context(), hotel.ID)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	var in domain.CategoryInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	category, err := h.Menu.CreateCategory(r.Context(), hotel.ID, in)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, category)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	items, err := h.Menu.ListItems(r.Context(), hotel.ID)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	var in domain.MenuItemInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	item, err := h.Menu.CreateItem(r.Context(), hotel.ID, in)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	var patch domain.MenuItemPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	item, err := h.Menu.UpdateItem(r.Context(), hotel.ID, patch)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	if err := h.Menu.DeleteItem(r.Context(), hotel.ID, mux.Vars(r)["itemId"]); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	item, err := h.Menu.GetItem(r.Context(), hotel.ID, mux.Vars(r)["itemId"])
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		httpx.WriteError(w, h.Logger, apperr.Validation("file too large"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.WriteError(w, h.Logger, apperr.Validation("error retrieving the file"))
		return
	}
	defer file.Close()

	ext, ok := allowedImageTypes[header.Header.Get("Content-Type")]
	if !ok {
		httpx.WriteError(w, h.Logger, apperr.Validation("invalid file type, only JPEG, PNG, GIF, WebP allowed"))
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		httpx.WriteError(w, h.Logger, apperr.Internal(err))
		return
	}

	filename := "menu_" + hotel.Slug + "_" + item.ID + ext
	path := filepath.Join(h.UploadDir, filename)
	if err := writeUpload(path, file); err != nil {
		httpx.WriteError(w, h.Logger, apperr.Internal(err))
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.Menu.SetItemImage(r.Context(), hotel.ID, item.ID, imageURL); err != nil {
		// The current image shares this name when the extension is unchanged.
		if imageURL != item.ImageURL {
			_ = os.Remove(path)
		}
		httpx.WriteError(w, h.Logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"message":  "Image uploaded successfully",
		"imageUrl": imageURL,
	})
}

// writeUpload copies src next to path and renames it into place, so a failed
// copy never truncates an existing image.
func writeUpload(path string, src io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	tables, err := h.Tables.List(r.Context(), hotel.ID)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tables)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	var in domain.TableInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	table, err := h.Tables.Create(r.Context(), hotel, in)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, table)
}

func (h *Handler) renameTable(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	var patch domain.TablePatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	table, err := h.Tables.Rename(r.Context(), hotel, patch)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, table)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.adminHotel(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	png, err := h.Tables.QRCode(r.Context(), hotel, mux.Vars(r)["tableId"])
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Header().Set("Content-Disposition", `inline; filename="`+hotel.Slug+`-qr.png"`)
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
