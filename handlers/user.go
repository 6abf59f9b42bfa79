package handlers

import (
	"net/http"
	"regexp"

	"github.com/MaTrix986/inspiration-collector/config"
	"github.com/MaTrix986/inspiration-collector/models"
	"github.com/MaTrix986/inspiration-collector/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register 用户注册
// 路由: POST /user/register
func Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "请求体不合法"})
		return
	}

	// 1. 基本校验
	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "所有字段都是必填的"})
		return
	}
	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "邮箱格式不正确"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "密码长度至少为6位"})
		return
	}

	// 2. 密码加密
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	// 3. 写库，email 有唯一索引，撞了就是重复注册
	user := models.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "用户已存在"})
		return
	}

	token, _ := service.GenerateToken(user.ID)
	c.JSON(http.StatusOK, gin.H{
		"status_code": 0,
		"user":        user,
		"token":       token,
	})
}

// Login 用户登录
// 路由: POST /user/login
func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status_code": 1, "status_msg": "请求体不合法"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"status_code": 1, "status_msg": "用户不存在"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusOK, gin.H{"status_code": 1, "status_msg": "密码错误"})
		return
	}

	token, _ := service.GenerateToken(user.ID)
	c.JSON(http.StatusOK, gin.H{
		"status_code": 0,
		"user_id":     user.ID,
		"token":       token,
	})
}

// GetUserInfo 当前登录用户的基本信息
// 路由: GET /user/info
func GetUserInfo(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"status_code": 1, "status_msg": "找不到该用户"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": 0,
		"user":        user,
	})
}
