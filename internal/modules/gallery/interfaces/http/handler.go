package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/saransh1220/gallery-backend/internal/gateway/middleware"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/application"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/domain"
	"github.com/saransh1220/gallery-backend/internal/shared/utils"
)

type GalleryHandler struct {
	service application.GalleryService
}

func NewGalleryHandler(service application.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// List handles GET /api/gallery
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	gallery, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Printf("[GalleryHandler.List] request=%s error: %v", reqID, err)
		utils.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	log.Printf("[GalleryHandler.List] request=%s total=%d folders=%v", reqID, gallery.Total, gallery.FolderNames)
	utils.WriteJSON(w, http.StatusOK, ToGalleryResponse(gallery))
}

// GetFolder handles GET /api/gallery/{folder}
func (h *GalleryHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	folder := r.PathValue("folder")

	listing, err := h.service.ListByFolder(r.Context(), folder)
	if err != nil {
		h.writeFolderError(w, reqID, err)
		return
	}

	log.Printf("[GalleryHandler.GetFolder] request=%s folder=%q total=%d", reqID, folder, listing.Total)
	utils.WriteJSON(w, http.StatusOK, ToFolderResponse(listing))
}

func (h *GalleryHandler) writeFolderError(w http.ResponseWriter, reqID string, err error) {
	var invalid *domain.InvalidFolderError
	var notFound *domain.NotFoundError

	switch {
	case errors.As(err, &invalid):
		log.Printf("[GalleryHandler.GetFolder] request=%s rejected folder %q", reqID, invalid.Folder)
		utils.WriteJSON(w, http.StatusBadRequest, newInvalidFolderResponse(invalid))
	case errors.As(err, &notFound):
		log.Printf("[GalleryHandler.GetFolder] request=%s folder %q is empty, available=%v", reqID, notFound.Folder, notFound.Available)
		utils.WriteJSON(w, http.StatusNotFound, newNotFoundResponse(notFound))
	default:
		log.Printf("[GalleryHandler.GetFolder] request=%s error: %v", reqID, err)
		utils.WriteError(w, http.StatusInternalServerError, err)
	}
}

// Index handles GET / and lists the available routes
func (h *GalleryHandler) Index(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string]string{
		"gallery":        "GET /api/gallery",
		"gallery_folder": "GET /api/gallery/{folder}",
	}
	for _, folder := range h.service.AllowedFolders() {
		endpoints["folder_"+folder] = "GET /api/gallery/" + folder
	}

	utils.WriteJSON(w, http.StatusOK, IndexResponse{
		Message:   "Gallery backend is running",
		Endpoints: endpoints,
	})
}
