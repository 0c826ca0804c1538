package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-admin/controllers"
	"hotel-booking-admin/middleware"
	"hotel-booking-admin/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

type Controllers struct {
	Auth         *controllers.AuthController
	Admin        *controllers.AdminController
	Role         *controllers.RoleController
	Hotel        *controllers.HotelController
	RoomType     *controllers.RoomTypeController
	Room         *controllers.RoomController
	Block        *controllers.BlockController
	Booking      *controllers.BookingController
	Availability *controllers.AvailabilityController
}

func SetupRouter(ctrls Controllers, policy *services.PolicyService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrls.Auth.Login)
	}

	// Everything below requires a valid bearer token.
	authed := api.Group("")
	authed.Use(middleware.RequireAuth())

	hotels := authed.Group("/hotels")
	{
		hotels.GET("", middleware.RequirePermission(policy, services.PermCatalogView), ctrls.Hotel.GetHotels)
		hotels.POST("", middleware.RequirePermission(policy, services.PermCatalogCreate), ctrls.Hotel.CreateHotel)
		hotels.PUT("/:id", middleware.RequirePermission(policy, services.PermCatalogEdit), ctrls.Hotel.UpdateHotel)
		hotels.DELETE("/:id", middleware.RequirePermission(policy, services.PermCatalogDelete), ctrls.Hotel.DeleteHotel)
	}

	roomTypes := authed.Group("/room-types")
	{
		roomTypes.GET("", middleware.RequirePermission(policy, services.PermCatalogView), ctrls.RoomType.GetRoomTypes)
		roomTypes.POST("", middleware.RequirePermission(policy, services.PermCatalogCreate), ctrls.RoomType.CreateRoomType)
		roomTypes.PUT("/:id", middleware.RequirePermission(policy, services.PermCatalogEdit), ctrls.RoomType.UpdateRoomType)
		roomTypes.DELETE("/:id", middleware.RequirePermission(policy, services.PermCatalogDelete), ctrls.RoomType.DeleteRoomType)
	}

	rooms := authed.Group("/rooms")
	{
		rooms.GET("", middleware.RequirePermission(policy, services.PermRoomView), ctrls.Room.GetRooms)
		rooms.POST("", middleware.RequirePermission(policy, services.PermRoomCreate), ctrls.Room.CreateRoom)
		rooms.PUT("/:id", middleware.RequirePermission(policy, services.PermRoomEdit), ctrls.Room.UpdateRoom)
		rooms.PATCH("/:id/status", middleware.RequirePermission(policy, services.PermRoomEditStatus), ctrls.Room.UpdateRoomStatus)
		rooms.DELETE("/:id", middleware.RequirePermission(policy, services.PermRoomDelete), ctrls.Room.DeleteRoom)
	}

	blocks := authed.Group("/room-blocks")
	{
		blocks.GET("", middleware.RequirePermission(policy, services.PermRoomView), ctrls.Block.GetBlocks)
		blocks.POST("/toggle", middleware.RequirePermission(policy, services.PermRoomEditStatus), ctrls.Block.ToggleBlock)
		blocks.DELETE("/:id", middleware.RequirePermission(policy, services.PermRoomEditStatus), ctrls.Block.DeleteBlock)
	}

	authed.GET("/calendar", middleware.RequirePermission(policy, services.PermRoomView), ctrls.Block.GetCalendar)
	authed.GET("/availability", middleware.RequirePermission(policy, services.PermBookingView), ctrls.Availability.GetAvailability)

	bookings := authed.Group("/bookings")
	{
		bookings.GET("", middleware.RequirePermission(policy, services.PermBookingView), ctrls.Booking.GetBookings)
		bookings.GET("/:id", middleware.RequirePermission(policy, services.PermBookingView), ctrls.Booking.GetBookingDetails)
		bookings.POST("", middleware.RequirePermission(policy, services.PermBookingCreate), ctrls.Booking.CreateBooking)
		bookings.PUT("/:id", middleware.RequirePermission(policy, services.PermBookingEdit), ctrls.Booking.UpdateBooking)
		bookings.POST("/:id/cancel", middleware.RequirePermission(policy, services.PermBookingEdit), ctrls.Booking.CancelBooking)
		bookings.DELETE("/:id", middleware.RequirePermission(policy, services.PermBookingDelete), ctrls.Booking.DeleteBooking)
	}

	admins := authed.Group("/admins")
	{
		admins.GET("", middleware.RequirePermission(policy, services.PermUserView), ctrls.Admin.GetAdmins)
		admins.POST("", middleware.RequirePermission(policy, services.PermUserCreate), ctrls.Admin.CreateAdmin)
		admins.POST("/:id/roles", middleware.RequirePermission(policy, services.PermUserEdit), ctrls.Admin.AssignRole)
		admins.DELETE("/:id", middleware.RequirePermission(policy, services.PermUserDelete), ctrls.Admin.DeleteAdmin)
	}

	roles := authed.Group("/roles")
	{
		roles.GET("", middleware.RequirePermission(policy, services.PermRolesView), ctrls.Role.GetRoles)
		roles.PUT("/:id/permissions", middleware.RequirePermission(policy, services.PermRolesEdit), ctrls.Role.UpdateRolePermissions)
	}

	return r
}
