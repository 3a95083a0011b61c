package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasantha-kumar-s/career-bot/internal/services"
	"github.com/vasantha-kumar-s/career-bot/internal/utils"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type CreateUserRequest struct {
	Name         string         `json:"name" binding:"required"`
	Email        string         `json:"email" binding:"required,email"`
	Password     string         `json:"password"`
	Demographics map[string]any `json:"demographics"`
}

type UpdateDemographicsRequest struct {
	Demographics map[string]any `json:"demographics" binding:"required"`
}

type demoUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, "UserHandler.Create", &req) {
		return
	}

	u, err := h.svc.Create(c.Request.Context(), services.CreateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Demographics: req.Demographics,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	ok(c, http.StatusCreated, gin.H{"user_id": u.ID, "user": u})
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) UpdateDemographics(c *gin.Context) {
	var req UpdateDemographicsRequest
	if !bindJSON(c, "UserHandler.UpdateDemographics", &req) {
		return
	}

	u, err := h.svc.UpdateDemographics(c.Request.Context(), c.Param("user_id"), req.Demographics)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) Demo(c *gin.Context) {
	rows, err := h.svc.ListDemo(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	users := make([]demoUser, 0, len(rows))
	for _, u := range rows {
		users = append(users, demoUser{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	ok(c, http.StatusOK, gin.H{"users": users})
}

// currentUserID reads user_id from the query string, falling back to the form body.
func currentUserID(c *gin.Context, op string) (string, bool) {
	if v := c.Query("user_id"); v != "" {
		return v, true
	}
	if v := c.PostForm("user_id"); v != "" {
		return v, true
	}
	writeError(c, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil))
	return "", false
}
