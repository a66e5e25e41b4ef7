package handlers

import (
	"voyago/internal/middleware"
	"voyago/internal/models"
	"voyago/internal/services"
	"voyago/internal/utils"
	"voyago/internal/validators"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type signupRequest struct {
	Name         string           `json:"name"`
	Phone        string           `json:"phone"`
	Password     string           `json:"password"`
	TwoWheelers  []models.Vehicle `json:"twoWheelers"`
	FourWheelers []models.Vehicle `json:"fourWheelers"`
}

// Signup creates an account, including any vehicles supplied up front.
func (h *AuthHandler) Signup(c *gin.Context) {
	var request signupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	registerReq := &services.RegisterRequest{
		Name:     request.Name,
		Phone:    request.Phone,
		Password: request.Password,
	}
	if errs := validators.ValidateSignup(registerReq); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}
	if errs := validators.ValidateVehicleLists(request.TwoWheelers, request.FourWheelers); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	response, err := h.authService.Register(c.Request.Context(), registerReq)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if len(request.TwoWheelers) > 0 || len(request.FourWheelers) > 0 {
		user, err := h.authService.ReplaceVehicles(c.Request.Context(), response.User.ID, request.TwoWheelers, request.FourWheelers)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		response.User = user
	}

	utils.CreatedResponse(c, "Account created successfully", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request services.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateLogin(&request); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Logged in successfully", response)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var request struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.RefreshToken == "" {
		utils.BadRequestResponse(c, "refresh_token is required")
		return
	}

	tokens, err := h.authService.RefreshToken(c.Request.Context(), request.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Token refreshed", tokens)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile fetched", user)
}

type replaceVehiclesRequest struct {
	TwoWheelers  []models.Vehicle `json:"twoWheelers"`
	FourWheelers []models.Vehicle `json:"fourWheelers"`
}

// ReplaceVehicles overwrites both vehicle collections at once.
func (h *AuthHandler) ReplaceVehicles(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request replaceVehiclesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateVehicleLists(request.TwoWheelers, request.FourWheelers); errs.HasErrors() {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	user, err := h.authService.ReplaceVehicles(c.Request.Context(), userID, request.TwoWheelers, request.FourWheelers)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicles updated", user)
}

type addVehicleRequest struct {
	Category services.VehicleCategory `json:"category"`
	Vehicle  models.Vehicle           `json:"vehicle"`
}

func (h *AuthHandler) AddVehicle(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request addVehicleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if !request.Category.IsValid() {
		utils.BadRequestResponse(c, "category must be two_wheeler or four_wheeler")
		return
	}

	user, err := h.authService.AddVehicle(c.Request.Context(), userID, request.Category, request.Vehicle)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle added", user)
}

func (h *AuthHandler) RemoveVehicle(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	category := services.VehicleCategory(c.Query("category"))
	if !category.IsValid() {
		utils.BadRequestResponse(c, "category must be two_wheeler or four_wheeler")
		return
	}

	user, err := h.authService.RemoveVehicle(c.Request.Context(), userID, category, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle removed", user)
}
