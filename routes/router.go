// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/derrick-nuby/talent-vortex-be/controllers"
	"github.com/derrick-nuby/talent-vortex-be/middlewares"
	"github.com/derrick-nuby/talent-vortex-be/models"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", controllers.Register)
			authRoutes.POST("/login", controllers.Login)
			authRoutes.POST("/verify-email", controllers.VerifyEmail)
			authRoutes.POST("/create-password", controllers.CreatePassword)
		}

		userRoutes := apiV1.Group("/users")
		userRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			userRoutes.GET("/:id", controllers.GetUserDetail)
			userRoutes.PUT("/:id", controllers.UpdateUser)
		}

		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/users", controllers.GetUserList)
			adminRoutes.POST("/users/invite", controllers.InviteUser)
			adminRoutes.DELETE("/users/:id", middlewares.RoleAuthMiddleware(models.RoleSuperAdmin), controllers.DeleteUser)
			adminRoutes.GET("/submissions", controllers.GetAllSubmissions)
		}

		categoryRoutes := apiV1.Group("/categories")
		{
			categoryRoutes.GET("", controllers.GetCategoryList)
			categoryRoutes.GET("/:id", controllers.GetCategoryDetail)
			categoryRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateCategory)
			categoryRoutes.PUT("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateCategory)
			categoryRoutes.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteCategory)
		}

		challengeRoutes := apiV1.Group("/challenges")
		{
			challengeRoutes.GET("", controllers.ListChallenges)
			challengeRoutes.GET("/:identifier", controllers.GetChallengeDetail)
			challengeRoutes.GET("/:identifier/participants", controllers.GetChallengeParticipants)

			challengeRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateChallenge)
			challengeRoutes.PUT("/:identifier", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateChallenge)
			challengeRoutes.DELETE("/:identifier", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteChallenge)

			challengeRoutes.POST("/:identifier/apply", middlewares.JWTAuthMiddleware(), controllers.ApplyToChallenge)
		}

		invitationRoutes := apiV1.Group("/team-invitations")
		{
			invitationRoutes.POST("/:token/accept", controllers.AcceptInvitation)
			invitationRoutes.POST("/:token/reject", controllers.RejectInvitation)
		}

		submissionRoutes := apiV1.Group("/submissions")
		submissionRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			submissionRoutes.POST("", controllers.CreateSubmission)
			submissionRoutes.GET("/mine", controllers.GetMySubmissions)
			submissionRoutes.POST("/:id/feedback", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.AddSubmissionFeedback)
			submissionRoutes.PUT("/:id/status", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateSubmissionStatus)
		}

		analyticsRoutes := apiV1.Group("/analytics/challenges")
		analyticsRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			analyticsRoutes.GET("/total", controllers.GetTotalChallengeAnalytics)
			analyticsRoutes.GET("/open", controllers.GetOpenChallengeAnalytics)
			analyticsRoutes.GET("/ongoing", controllers.GetOngoingChallengeAnalytics)
			analyticsRoutes.GET("/completed", controllers.GetCompletedChallengeAnalytics)
			analyticsRoutes.GET("/overview", controllers.GetChallengeStatusOverview)
		}

		formRoutes := apiV1.Group("/forms")
		{
			formRoutes.GET("", controllers.GetFormList)
			formRoutes.GET("/:id", controllers.GetFormDetail)
			formRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateForm)
			formRoutes.PUT("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateForm)
			formRoutes.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteForm)
		}
	}

	return r
}
