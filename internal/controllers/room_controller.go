package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tostOS27/indoor-system/internal/models"
	"github.com/tostOS27/indoor-system/internal/ws"
)

type RoomController struct {
	DB  *gorm.DB
	Hub *ws.PositionHub
}

// Integer fields are pointers so that zero values still satisfy the
// required binding.
type createRoomRequest struct {
	RoomNumber     string   `json:"room_number" binding:"required"`
	RoomCategoryID *int     `json:"room_category_id" binding:"required"`
	FloorID        *int     `json:"floor_id" binding:"required"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

// Every field is optional; nil means "leave unchanged". There is no
// clear-to-null: an explicit null behaves like an absent field.
type updateRoomRequest struct {
	RoomNumber     *string  `json:"room_number"`
	RoomCategoryID *int     `json:"room_category_id"`
	FloorID        *int     `json:"floor_id"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

type updatePositionRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

func parseRoomID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room := models.Room{
		RoomNumber:     req.RoomNumber,
		RoomCategoryID: *req.RoomCategoryID,
		FloorID:        *req.FloorID,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	}
	if err := rc.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) ListRooms(c *gin.Context) {
	rooms := make([]models.Room, 0)
	if err := rc.DB.Find(&rooms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.RoomCategoryID != nil {
		room.RoomCategoryID = *req.RoomCategoryID
	}
	if req.FloorID != nil {
		room.FloorID = *req.FloorID
	}
	if req.Latitude != nil {
		room.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		room.Longitude = req.Longitude
	}
	if err := rc.DB.Save(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := rc.DB.Delete(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

// UpdatePosition always writes both coordinates together, unlike the
// generic update. The broadcast happens only after the commit, so no
// subscriber ever sees a position that was not durably stored.
func (rc *RoomController) UpdatePosition(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}
	var room models.Room
	if err := rc.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req updatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room.Latitude = req.Latitude
	room.Longitude = req.Longitude
	if err := rc.DB.Save(&room).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	broadcastRoomPosition(rc.Hub, &room)

	c.JSON(http.StatusOK, gin.H{"status": "position updated"})
}
