// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labrecord_backend/internals/constants"
	assignmentRoute "labrecord_backend/internals/features/assignments/route"
	enrollmentRoute "labrecord_backend/internals/features/enrollments/route"
	evaluationRoute "labrecord_backend/internals/features/evaluations/route"
	executorRoute "labrecord_backend/internals/features/executor/route"
	experimentRoute "labrecord_backend/internals/features/experiments/route"
	principalRoute "labrecord_backend/internals/features/principals/route"
	subjectRoute "labrecord_backend/internals/features/subjects/route"
	submissionRoute "labrecord_backend/internals/features/submissions/route"
	"labrecord_backend/internals/middlewares"
	authMiddleware "labrecord_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the three surfaces:
//
//	/api/u        authenticated principals; per-row checks in controllers
//	/api/a        admin-only gate in front, controllers still authorize
//	/api/webhooks shared-secret header, no JWT
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	/* =========================
	   User surface
	========================= */
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))

	principalRoute.PrincipalUserRoutes(user, db)
	subjectRoute.SubjectUserRoutes(user, db)
	experimentRoute.ExperimentUserRoutes(user, db)
	enrollmentRoute.EnrollmentUserRoutes(user, db)
	assignmentRoute.AssignmentUserRoutes(user, db)
	submissionRoute.SubmissionUserRoutes(user, db)
	evaluationRoute.EvaluationUserRoutes(user, db)
	executorRoute.ExecutorRoutes(user)

	/* =========================
	   Admin surface
	========================= */
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("the admin API"), constants.AdminOnly...),
	)

	principalRoute.PrincipalAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	experimentRoute.ExperimentAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
	assignmentRoute.AssignmentAdminRoutes(admin, db)
	submissionRoute.SubmissionAdminRoutes(admin, db)
	evaluationRoute.EvaluationAdminRoutes(admin, db)

	/* =========================
	   Webhook surface
	========================= */
	hooks := api.Group("/webhooks",
		middlewares.WebhookRateLimiter(),
		middlewares.WebhookAuth(),
	)

	principalRoute.ProvisioningWebhookRoutes(hooks, db)
}
