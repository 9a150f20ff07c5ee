package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BellaSalonPL/salon-scheduler/internal/httperr"
	"github.com/BellaSalonPL/salon-scheduler/internal/models"
)

// PublicHandler serves the unauthenticated salon page: profile, service
// catalog and portfolio gallery, all addressed by slug. There is no public
// booking; clients call or DM and the owner enters the appointment herself.
type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

func (h *PublicHandler) findSalon(c *gin.Context) (*models.Salon, bool) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Nie znaleziono salonu.")
		return nil, false
	}
	return &salon, true
}

// Profile returns the salon card plus its active services and gallery in one
// response, which is everything the landing page needs.
func (h *PublicHandler) Profile(c *gin.Context) {
	salon, ok := h.findSalon(c)
	if !ok {
		return
	}

	var services []models.Service
	h.db.
		Where("salon_id = ? AND active = true", salon.ID).
		Order("category ASC, id ASC").
		Find(&services)

	var gallery []models.GalleryImage
	h.db.
		Where("salon_id = ?", salon.ID).
		Order("position ASC, id ASC").
		Find(&gallery)

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
		"gallery":  gallery,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	salon, ok := h.findSalon(c)
	if !ok {
		return
	}

	q := h.db.Where("salon_id = ? AND active = true", salon.ID)

	if category := strings.TrimSpace(strings.ToLower(c.Query("category"))); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query := strings.TrimSpace(strings.ToLower(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("category ASC, id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Nie udało się pobrać usług.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

func (h *PublicHandler) ListGallery(c *gin.Context) {
	salon, ok := h.findSalon(c)
	if !ok {
		return
	}

	var gallery []models.GalleryImage
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("position ASC, id ASC").
		Find(&gallery).Error; err != nil {

		httperr.Internal(c, "failed_to_list_gallery", "Nie udało się pobrać galerii.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":   salon,
		"gallery": gallery,
	})
}
