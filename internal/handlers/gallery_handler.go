package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/middleware"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
	"github.com/BellaSalonPL/salon-scheduler/internal/storage"
)

// uploads above this size are rejected before decoding
const maxUploadBytes = 15 << 20

type GalleryHandler struct {
	db    *gorm.DB
	store *storage.GalleryStore
}

func NewGalleryHandler(db *gorm.DB, store *storage.GalleryStore) *GalleryHandler {
	return &GalleryHandler{db: db, store: store}
}

func (h *GalleryHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var images []models.GalleryImage
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("position ASC, id ASC").
		Find(&images).Error; err != nil {

		httperr.Internal(c, "failed_to_list_gallery", "Nie udało się pobrać galerii.")
		return
	}

	c.JSON(http.StatusOK, images)
}

// Upload accepts a multipart "image" field, converts it to WebP in object
// storage and records the public URL.
func (h *GalleryHandler) Upload(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Plik obrazu jest wymagany.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Plik obrazu jest za duży.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Nie udało się odczytać pliku.")
		return
	}
	defer file.Close()

	key, url, err := h.store.Upload(c.Request.Context(), salonID, file)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Nie udało się zapisać obrazu.")
		return
	}

	var position int
	h.db.Model(&models.GalleryImage{}).
		Where("salon_id = ?", salonID).
		Select("COALESCE(MAX(position), -1) + 1").
		Scan(&position)

	image := models.GalleryImage{
		SalonID:   salonID,
		ObjectKey: key,
		URL:       url,
		Caption:   c.PostForm("caption"),
		Position:  position,
	}

	if err := h.db.Create(&image).Error; err != nil {
		httperr.Internal(c, "upload_failed", "Nie udało się zapisać obrazu.")
		return
	}

	c.JSON(http.StatusCreated, image)
}

type UpdateGalleryImageRequest struct {
	Caption  *string `json:"caption"`
	Position *int    `json:"position"`
}

func (h *GalleryHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	imageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_image_id", "Nieprawidłowy identyfikator obrazu.")
		return
	}

	var image models.GalleryImage
	if err := h.db.
		Where("id = ? AND salon_id = ?", imageID, salonID).
		First(&image).Error; err != nil {

		httperr.NotFound(c, "image_not_found", "Nie znaleziono obrazu.")
		return
	}

	var req UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nieprawidłowe dane.")
		return
	}

	if req.Caption != nil {
		image.Caption = *req.Caption
	}
	if req.Position != nil {
		image.Position = *req.Position
	}

	if err := h.db.Save(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_update_image", "Nie udało się zapisać zmian.")
		return
	}

	c.JSON(http.StatusOK, image)
}

// Delete removes the DB row first; a failed object delete afterwards only
// leaves an orphan in the bucket, never a broken row on the page.
func (h *GalleryHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	imageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_image_id", "Nieprawidłowy identyfikator obrazu.")
		return
	}

	var image models.GalleryImage
	if err := h.db.
		Where("id = ? AND salon_id = ?", imageID, salonID).
		First(&image).Error; err != nil {

		httperr.NotFound(c, "image_not_found", "Nie znaleziono obrazu.")
		return
	}

	if err := h.db.Delete(&image).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Nie udało się usunąć obrazu.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), image.ObjectKey); err != nil {
		// Row is gone already; an orphaned object is harmless.
		log.Println("gallery object delete failed:", err)
	}

	c.Status(http.StatusNoContent)
}
