package controllers

import (
	"github.com/tostOS27/indoor-system/internal/models"
	"github.com/tostOS27/indoor-system/internal/ws"
)

// broadcastRoomPosition hands the committed room state to the hub.
// Subscriber failures are the hub's problem; the triggering request
// already succeeded.
func broadcastRoomPosition(hub *ws.PositionHub, room *models.Room) {
	if hub == nil {
		return
	}
	payload := ws.PositionPayload{
		ID:             room.ID,
		RoomNumber:     room.RoomNumber,
		RoomCategoryID: room.RoomCategoryID,
		FloorID:        room.FloorID,
	}
	if room.Latitude != nil {
		payload.Lat = *room.Latitude
	}
	if room.Longitude != nil {
		payload.Lon = *room.Longitude
	}
	hub.Broadcast(payload)
}
