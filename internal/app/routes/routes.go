package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duhai-alshukaili/cems/internal/app/controllers"
	"github.com/duhai-alshukaili/cems/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	departmentController *controllers.DepartmentController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	roomController *controllers.RoomController,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.POST("", departmentController.CreateDepartment)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	users := v1.Group("/users")
	{
		users.GET("", userController.ListUsers)
		users.GET("/:username", userController.GetUserByUsername)
		users.GET("/:username/display-name", userController.GetDisplayName)
		users.POST("", userController.CreateUser)
		users.PUT("/:username", userController.UpdateUser)
		users.POST("/:username/reset-password", userController.ResetPassword)
		users.DELETE("/:username", userController.DeleteUser)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.GET("/:id/sections", courseController.GetCourseSections)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	sections := v1.Group("/sections")
	{
		sections.POST("", courseController.CreateSection)
		sections.PUT("/:id/lecturer", courseController.AssignLecturer)
		sections.DELETE("/:id", courseController.DeleteSection)
	}

	rooms := v1.Group("/rooms")
	{
		rooms.GET("", roomController.ListRooms)
		rooms.GET("/:id", roomController.GetRoomByID)
		rooms.POST("", roomController.CreateRoom)
		rooms.PUT("/:id", roomController.UpdateRoom)
		rooms.DELETE("/:id", roomController.DeleteRoom)
	}
}
