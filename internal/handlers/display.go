package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"roomsign/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errNoResource = "no resource for device_id"
	errGetDisplay = "failed to build display data"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Display payload for a sign
// @Description  Full render payload for one device. Unknown device_id falls back to the first configured resource; 404 only when none exist. Optional date (YYYY-MM-DD) previews another day.
// @Tags         display
// @Produce      json
// @Param        device_id  query  int     false  "Device id"  default(0)
// @Param        date       query  string  false  "Display date (YYYY-MM-DD)"  example(2026-01-29)
// @Success      200  {object}  models.DisplayPayload
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/display [get]
func (h *Handler) getDisplay(c *gin.Context) {
	deviceID, _ := strconv.Atoi(c.DefaultQuery("device_id", "0"))
	onDate := c.Query("date")

	payload, err := h.services.Display.GetDisplayData(c.Request.Context(), deviceID, onDate)
	if err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNoResource})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetDisplay, "display_failed", err, "device_id", deviceID)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// publicResource is the credential-free listing entry firmware provisioning
// tools use to discover device ids.
type publicResource struct {
	DeviceID int    `json:"device_id"`
	RoomName string `json:"room_name"`
	ICSURL   string `json:"ics_url"`
	QRURL    string `json:"qr_url"`
}

// @Summary      List resources (public)
// @Description  Minimal listing without night-mode, refresh or Wi-Fi fields.
// @Tags         display
// @Produce      json
// @Success      200  {array}   publicResource
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/resources [get]
func (h *Handler) listPublicResources(c *gin.Context) {
	resources, err := h.services.Resources.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list resources", "resources_list_failed", err)
		return
	}
	out := make([]publicResource, 0, len(resources))
	for _, r := range resources {
		out = append(out, publicResource{
			DeviceID: r.ID,
			RoomName: r.Name,
			ICSURL:   r.ICSURL,
			QRURL:    r.QRURL,
		})
	}
	c.JSON(http.StatusOK, out)
}
