package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"roomsign/internal/models"
	"roomsign/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidResourceID = "invalid resource id"
	errResourceNotFound  = "resource not found"
	errInvalidBodyPref   = "invalid body: "
)

// resourceRequest is the admin-facing DTO for create/update. The id always
// comes from the URL, never the body.
type resourceRequest struct {
	Name               string `json:"name"`
	ICSURL             string `json:"ics_url"`
	QRURL              string `json:"qr_url"`
	Timezone           string `json:"timezone"`
	Template           string `json:"template"`
	RefreshIntervalSec int    `json:"refresh_interval_sec"`
	NightModeFrom      string `json:"night_mode_from"`
	NightModeTo        string `json:"night_mode_to"`
	DebugDisplay       bool   `json:"debug_display"`
	WifiSSID           string `json:"wifi_ssid"`
	WifiPass           string `json:"wifi_pass"`
}

func (r resourceRequest) toModel(id int) models.Resource {
	return models.Resource{
		ID:                 id,
		Name:               r.Name,
		ICSURL:             r.ICSURL,
		QRURL:              r.QRURL,
		Timezone:           r.Timezone,
		Template:           r.Template,
		RefreshIntervalSec: r.RefreshIntervalSec,
		NightModeFrom:      r.NightModeFrom,
		NightModeTo:        r.NightModeTo,
		DebugDisplay:       r.DebugDisplay,
		WifiSSID:           r.WifiSSID,
		WifiPass:           r.WifiPass,
	}
}

func resourceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidResourceID})
		return 0, false
	}
	return id, true
}

// @Summary      List resources
// @Tags         admin
// @Produce      json
// @Success      200  {array}   models.Resource
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/admin/resources [get]
// @Security     BearerAuth
func (h *Handler) listResources(c *gin.Context) {
	resources, err := h.services.Resources.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list resources", "admin_resources_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(resources), "resources": resources})
}

// @Summary      Get resource
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "Resource id"
// @Success      200  {object}  models.Resource
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/admin/resources/{id} [get]
// @Security     BearerAuth
func (h *Handler) getResource(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	r, err := h.services.Resources.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errResourceNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load resource", "admin_resource_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary      Create resource
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  resourceRequest  true  "Resource payload"
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/admin/resources [post]
// @Security     BearerAuth
func (h *Handler) createResource(c *gin.Context) {
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	id, err := h.services.Resources.Create(c.Request.Context(), req.toModel(0))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Update resource
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "Resource id"
// @Param        body  body  resourceRequest  true  "Resource payload"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/admin/resources/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateResource(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Resources.Update(c.Request.Context(), req.toModel(id)); err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errResourceNotFound})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// @Summary      Delete resource
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "Resource id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/admin/resources/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteResource(c *gin.Context) {
	id, ok := resourceID(c)
	if !ok {
		return
	}
	if err := h.services.Resources.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errResourceNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete resource", "admin_resource_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
