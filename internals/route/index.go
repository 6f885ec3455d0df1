package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ams_backend/internals/constants"
	academicRoute "ams_backend/internals/features/academics/route"
	attendanceRoute "ams_backend/internals/features/attendance/route"
	enrollmentRoute "ams_backend/internals/features/enrollments/route"
	timetableRoute "ams_backend/internals/features/timetable/route"
	authRoute "ams_backend/internals/features/users/auth/route"
	userRoute "ams_backend/internals/features/users/user/route"
	authMiddleware "ams_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes mounts every endpoint group. Each role group carries the auth
// middleware plus a single-role gate, so handlers never re-check roles.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up auth routes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up admin routes...")
	admin := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("the admin panel"), constants.RoleAdmin),
	)
	userRoute.AdminUserRoutes(admin, db)
	academicRoute.AdminAcademicRoutes(admin, db)
	enrollmentRoute.AdminEnrollmentRoutes(admin, db)
	timetableRoute.AdminTimetableRoutes(admin, db)

	log.Println("[INFO] Setting up teacher routes...")
	teacher := app.Group("/api/teacher",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("the teacher panel"), constants.RoleTeacher),
	)
	enrollmentRoute.TeacherEnrollmentRoutes(teacher, db)
	timetableRoute.TeacherTimetableRoutes(teacher, db)
	attendanceRoute.TeacherAttendanceRoutes(teacher, db)

	log.Println("[INFO] Setting up student routes...")
	student := app.Group("/api/student",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("the student panel"), constants.RoleStudent),
	)
	enrollmentRoute.StudentEnrollmentRoutes(student, db)
	attendanceRoute.StudentAttendanceRoutes(student, db)
}
