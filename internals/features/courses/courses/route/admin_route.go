package route

import (
	ccontroller "kursusku_backend/internals/features/courses/courses/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	courseCtrl := ccontroller.NewCourseController(db)
	moduleCtrl := ccontroller.NewModuleController(db)
	lessonCtrl := ccontroller.NewLessonController(db)
	quizCtrl := ccontroller.NewQuizController(db)

	// =========================
	// 📚 COURSE (ADMIN AREA)
	// =========================

	// Prefix: /courses → /api/a/courses/...
	courses := admin.Group("/courses")

	courses.Post("/", courseCtrl.Create)
	courses.Get("/", courseCtrl.List)
	courses.Get("/:id", courseCtrl.GetByID)
	courses.Patch("/:id", courseCtrl.Patch)
	courses.Delete("/:id", courseCtrl.Delete)

	// Modules di bawah course
	courses.Post("/:course_id/modules", moduleCtrl.Create)
	courses.Get("/:course_id/modules", moduleCtrl.List)

	// =========================
	// 🧩 MODULE / LESSON / QUIZ
	// =========================

	modules := admin.Group("/modules")
	modules.Patch("/:id", moduleCtrl.Patch)
	modules.Delete("/:id", moduleCtrl.Delete)
	modules.Post("/:module_id/lessons", lessonCtrl.Create)
	modules.Post("/:module_id/quizzes", quizCtrl.Create)

	lessons := admin.Group("/lessons")
	lessons.Patch("/:id", lessonCtrl.Patch)
	lessons.Delete("/:id", lessonCtrl.Delete)
	lessons.Put("/:id/content", lessonCtrl.PutContent)
	lessons.Delete("/:id/content", lessonCtrl.DeleteContent)

	quizzes := admin.Group("/quizzes")
	quizzes.Patch("/:id", quizCtrl.Patch)
	quizzes.Delete("/:id", quizCtrl.Delete)
	quizzes.Post("/:quiz_id/questions", quizCtrl.CreateQuestion)

	questions := admin.Group("/questions")
	questions.Patch("/:id", quizCtrl.PatchQuestion)
	questions.Delete("/:id", quizCtrl.DeleteQuestion)
	questions.Post("/:question_id/options", quizCtrl.CreateOption)

	options := admin.Group("/options")
	options.Patch("/:id", quizCtrl.PatchOption)
	options.Delete("/:id", quizCtrl.DeleteOption)
}
