package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasantha-kumar-s/career-bot/internal/api/handlers"
	"github.com/vasantha-kumar-s/career-bot/internal/api/middleware"
)

type Deps struct {
	User           *handlers.UserHandler
	Chat           *handlers.ChatHandler
	Quiz           *handlers.QuizHandler
	Recommendation *handlers.RecommendationHandler
	Mentor         *handlers.MentorHandler
	Job            *handlers.JobHandler
	Resume         *handlers.ResumeHandler
	WS             *handlers.WSHandler

	// MentorJWTSecret enables bearer tokens on mentor triage routes.
	MentorJWTSecret string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	api.POST("/user", d.User.Create)
	api.POST("/signup", d.User.Create)
	api.GET("/user/:user_id", d.User.Get)
	api.PUT("/user/:user_id/demographics", d.User.UpdateDemographics)
	api.GET("/demo-users", d.User.Demo)

	api.POST("/chat", d.Chat.Send)
	api.GET("/chat/history", d.Chat.History)
	api.POST("/chat/voice", d.Chat.Voice)

	api.POST("/quiz", d.Quiz.Save)

	api.GET("/recommendations", d.Recommendation.Get)
	api.POST("/recommendations/regenerate", d.Recommendation.Regenerate)

	api.GET("/mentors", d.Mentor.List)
	api.POST("/mentor-connection", d.Mentor.Connect)

	triage := api.Group("/")
	if d.MentorJWTSecret != "" {
		triage.Use(middleware.MentorAuth(d.MentorJWTSecret), middleware.RequireMentor())
	}
	triage.POST("/mentor-accept", d.Mentor.Accept)
	triage.POST("/mentor-reject", d.Mentor.Reject)

	api.GET("/jobs", d.Job.List)

	api.POST("/resume", d.Resume.Upload)
	api.GET("/resume", d.Resume.Latest)

	r.GET("/ws/chat", d.WS.Chat)
}
