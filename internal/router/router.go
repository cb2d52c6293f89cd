package router

import (
	"time"

	"deptdash/internal/config"
	"deptdash/internal/handler"
	"deptdash/internal/middleware"
	"deptdash/internal/repository"
	"deptdash/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers onto a gin engine.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	userRepo := repository.NewUserRepository(db)
	keyRepo := repository.NewKeyRepository(db)
	lockerRepo := repository.NewLockerRepository(db)
	deskRepo := repository.NewDeskRepository(db)

	users := handler.NewUsersHandler(service.NewUserService(userRepo))
	keys := handler.NewKeysHandler(service.NewKeyService(keyRepo))
	lockers := handler.NewLockersHandler(service.NewLockerService(lockerRepo))
	desks := handler.NewDesksHandler(service.NewDeskService(deskRepo))
	positions := handler.NewPositionsHandler(repository.NewPositionRepository(db))
	statuses := handler.NewStatusesHandler(repository.NewStatusRepository(db))
	rooms := handler.NewRoomsHandler(repository.NewRoomRepository(db))
	codes := handler.NewCodesHandler(repository.NewCodeRepository(db))
	dates := handler.NewDatesHandler(repository.NewDateRepository(db))

	r.GET("/health", handler.Health(db))

	api := r.Group("/api")

	user := api.Group("/user")
	{
		user.POST("", users.Create)
		user.GET("", users.List)
		user.GET("/search", users.Search)
		user.DELETE("/bulk-delete", users.BulkDelete)
		user.GET("/:id/delete-check", users.DeleteCheck)
		user.GET("/:id/rooms", users.Rooms)
		user.PUT("/:id/rooms", users.ReplaceRooms)
		user.PUT("/:id", users.Update)
		user.DELETE("/:id", users.Delete)
	}

	key := api.Group("/key")
	{
		key.POST("", keys.Create)
		key.GET("", keys.List)
		key.GET("/:number", keys.GetByNumber)
		key.PUT("/:number", keys.Update)
		key.DELETE("/:number", keys.Delete)
	}

	locker := api.Group("/locker")
	{
		locker.POST("", lockers.Create)
		locker.GET("", lockers.List)
		locker.PUT("/:number", lockers.Update)
		locker.DELETE("/:number", lockers.Delete)
	}

	desk := api.Group("/desk")
	{
		desk.POST("", desks.Create)
		desk.GET("", desks.List)
		desk.PUT("/:number", desks.Update)
		desk.DELETE("/:number", desks.Delete)
	}

	position := api.Group("/position")
	{
		position.POST("", positions.Create)
		position.GET("", positions.List)
		position.PUT("/:id", positions.Update)
		position.DELETE("/:id", positions.Delete)
	}

	status := api.Group("/status")
	{
		status.POST("", statuses.Create)
		status.GET("", statuses.List)
		status.PUT("/:id", statuses.Update)
		status.DELETE("/:id", statuses.Delete)
	}

	room := api.Group("/room")
	{
		room.POST("", rooms.Create)
		room.GET("", rooms.List)
		room.PUT("/:id", rooms.Update)
		room.DELETE("/:id", rooms.Delete)
	}

	code := api.Group("/code")
	{
		code.POST("", codes.Create)
		code.GET("", codes.List)
		code.PUT("/:id", codes.Update)
		code.DELETE("/:id", codes.Delete)
	}

	date := api.Group("/date")
	{
		date.POST("", dates.Create)
		date.GET("", dates.List)
		date.PUT("/:id", dates.Update)
		date.DELETE("/:id", dates.Delete)
	}

	return r
}
