package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tostOS27/indoor-system/internal/controllers"
	"github.com/tostOS27/indoor-system/internal/ws"
)

const banner = `Room database
operations:
   post /rooms
   get /rooms
   get /rooms/:id
   put /rooms/:id
   delete /rooms/:id
   put /rooms/:id/position
   ws /ws/positions
`

func Register(r *gin.Engine, db *gorm.DB, hub *ws.PositionHub) {
	roomCtrl := &controllers.RoomController{DB: db, Hub: hub}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, banner)
	})

	rooms := r.Group("/rooms")
	{
		rooms.POST("", roomCtrl.CreateRoom)
		rooms.GET("", roomCtrl.ListRooms)
		rooms.GET("/:id", roomCtrl.GetRoom)
		rooms.PUT("/:id", roomCtrl.UpdateRoom)
		rooms.DELETE("/:id", roomCtrl.DeleteRoom)
		rooms.PUT("/:id/position", roomCtrl.UpdatePosition)
	}

	r.GET("/ws/positions", ws.PositionsHandler(hub))
}
