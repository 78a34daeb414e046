package handlers

import (
	"wms/internal/middleware"
	"wms/internal/services"
	"wms/pkg/logger"
	"wms/pkg/response"
	"wms/pkg/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	userService *services.UserService
	roleService *services.RoleService
	menuService *services.MenuService
	sessions    *session.Manager
}

func NewAuthHandler(db *gorm.DB, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		userService: services.NewUserService(db),
		roleService: services.NewRoleService(db),
		menuService: services.NewMenuService(db),
		sessions:    sessions,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string   `json:"token"`
	RoleCodes []string `json:"role_codes"`
	Nickname  string   `json:"nickname"`
}

// Login 用户登录。用户不存在、密码错误、账号未启用
// 对外返回同一条消息，避免用户名枚举；具体原因只记日志。
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindError(err))
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		logger.GetLogger().WithField("username", req.Username).Warnf("登录失败: %v", err)
		response.Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := h.sessions.Issue(c.Request.Context(), user.ID, user.Username)
	if err != nil {
		logger.GetLogger().WithError(err).Error("签发会话失败")
		response.ServerError(c, "登录失败，请稍后重试")
		return
	}

	roles, err := h.roleService.GetByUserID(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, LoginResponse{
		Token:     token,
		RoleCodes: services.CodesOf(roles),
		Nickname:  user.Nickname,
	})
}

// Logout 用户登出，幂等：无论令牌是否有效都返回成功
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenString := middleware.BearerToken(c)
	if tokenString != "" {
		if err := h.sessions.Invalidate(c.Request.Context(), tokenString); err != nil {
			logger.GetLogger().WithError(err).Warn("注销会话失败")
		}
	}
	response.SuccessWithMessage(c, "登出成功", nil)
}

type ProfileResponse struct {
	ID              uint     `json:"id"`
	Username        string   `json:"username"`
	Nickname        string   `json:"nickname"`
	RoleCodes       []string `json:"role_codes"`
	PermissionCodes []string `json:"permission_codes"`
}

// Profile 当前登录用户的身份、角色与权限
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "请先登录")
		return
	}

	user, err := h.userService.GetByID(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	roles, err := h.roleService.GetByUserID(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	permissions, err := h.menuService.PermissionsOf(services.IDsOf(roles))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, ProfileResponse{
		ID:              user.ID,
		Username:        user.Username,
		Nickname:        user.Nickname,
		RoleCodes:       services.CodesOf(roles),
		PermissionCodes: permissions,
	})
}

// Menus 当前用户角色可达的层级菜单
func (h *AuthHandler) Menus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "请先登录")
		return
	}

	roles, err := h.roleService.GetByUserID(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	menus, err := h.menuService.GetByRoleIDs(services.IDsOf(roles))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, services.BuildMenuTree(menus))
}
