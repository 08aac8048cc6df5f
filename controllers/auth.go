package controllers

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"community-hub-api/config"
	"community-hub-api/middleware"
	"community-hub-api/models"
	"community-hub-api/services"
	"community-hub-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type AdminRegisterRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=8"`
	AdminRole     string  `json:"adminRole" binding:"required"`
	Country       *string `json:"country"`
	AccountStatus *string `json:"accountStatus"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser creates a volunteer account.
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(utils.SanitizeInput(req.Email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	user := models.User{
		Name:     utils.SanitizeInput(req.Name),
		Email:    email,
		Password: hashed,
		CreateAt: time.Now(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

// LoginUser authenticates a volunteer and issues a session token.
func LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := generateToken(user.Email, middleware.ActorUser, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
		"message": "Login successful",
	})
}

// RegisterAdmin creates an administrator account. New accounts start
// as pending unless the request says otherwise.
func RegisterAdmin(c *gin.Context) {
	var req AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidAdminRole(req.AdminRole) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "adminRole must be super_admin or validator_admin"})
		return
	}

	status := models.AccountStatusPending
	if req.AccountStatus != nil {
		if !models.IsValidAccountStatus(*req.AccountStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "accountStatus must be active, pending or suspended"})
			return
		}
		status = *req.AccountStatus
	}

	email := strings.ToLower(utils.SanitizeInput(req.Email))

	var existing models.Admin
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An admin with this email already exists"})
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	admin := models.Admin{
		Name:          utils.SanitizeInput(req.Name),
		Email:         email,
		Password:      hashed,
		AdminRole:     req.AdminRole,
		Country:       req.Country,
		AccountStatus: status,
		CreateAt:      time.Now(),
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An admin with this email already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "admin": admin})
}

// LoginAdmin authenticates an administrator. Accounts that are not
// active cannot log in.
func LoginAdmin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", strings.ToLower(req.Email)).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin account not found"})
		return
	}

	if !CheckPasswordHash(req.Password, admin.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if admin.AccountStatus != models.AccountStatusActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin account is " + admin.AccountStatus})
		return
	}

	token, err := generateToken(admin.Email, middleware.ActorAdmin, admin.AdminRole)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin":   admin,
		"message": "Login successful",
	})
}

// UpdateAdminAccountStatus lets a super admin activate or suspend
// another admin account.
func UpdateAdminAccountStatus(c *gin.Context) {
	email := strings.ToLower(c.Param("email"))

	var req struct {
		AccountStatus string `json:"accountStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !models.IsValidAccountStatus(req.AccountStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountStatus must be active, pending or suspended"})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin account not found"})
		return
	}

	now := time.Now()
	admin.AccountStatus = req.AccountStatus
	admin.UpdateAt = &now
	if err := config.DB.Save(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account status"})
		return
	}

	actor, _ := c.Get("email")
	ua := c.Request.UserAgent()
	services.RecordAdminAction(config.DB, actor.(string), "account_status_change", "admin", &email,
		"status set to "+req.AccountStatus, c.ClientIP(), &ua)

	c.JSON(http.StatusOK, gin.H{"success": true, "admin": admin})
}

// GetProfile returns the account behind the current session token.
func GetProfile(c *gin.Context) {
	email, _ := c.Get("email")
	actorType, _ := c.Get("actorType")

	if actorType == middleware.ActorAdmin {
		var admin models.Admin
		if err := config.DB.Where("email = ?", email).First(&admin).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin": admin})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ChangePassword handles password change for the logged-in account.
func ChangePassword(c *gin.Context) {
	type PasswordChangeRequest struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}

	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if ok, msg := utils.ValidatePassword(req.NewPassword); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	email, _ := c.Get("email")
	actorType, _ := c.Get("actorType")
	now := time.Now()

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	if actorType == middleware.ActorAdmin {
		var admin models.Admin
		if err := config.DB.Where("email = ?", email).First(&admin).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		if !CheckPasswordHash(req.CurrentPassword, admin.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
			return
		}
		admin.Password = hashed
		admin.UpdateAt = &now
		if err := config.DB.Save(&admin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}
	user.Password = hashed
	user.UpdateAt = &now
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// generateToken creates a signed session token for either actor type.
func generateToken(email, actorType, adminRole string) (string, error) {
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		expireHours = 24
	}

	claims := middleware.Claims{
		Email:     email,
		ActorType: actorType,
		AdminRole: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
