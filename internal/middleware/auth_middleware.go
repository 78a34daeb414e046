package middleware

import (
	"strings"

	"wms/internal/authctx"
	"wms/internal/services"
	"wms/pkg/logger"
	"wms/pkg/response"
	"wms/pkg/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware 鉴权中间件。除放行名单外的所有请求
// 必须携带有效会话令牌，解析出的身份写入请求context供审计使用。
type AuthMiddleware struct {
	sessions    *session.Manager
	userService *services.UserService
	roleService *services.RoleService
	menuService *services.MenuService
}

func NewAuthMiddleware(db *gorm.DB, sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:    sessions,
		userService: services.NewUserService(db),
		roleService: services.NewRoleService(db),
		menuService: services.NewMenuService(db),
	}
}

// BearerToken 从Authorization头提取令牌，没有或格式错误返回空串
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return authHeader[7:]
}

// RequireLogin 要求有效会话
func (m *AuthMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		userID, err := m.sessions.Resolve(c.Request.Context(), tokenString)
		if err != nil {
			response.Unauthorized(c, "会话无效或已过期")
			c.Abort()
			return
		}

		user, err := m.userService.GetByID(userID)
		if err != nil {
			response.Unauthorized(c, "会话无效或已过期")
			c.Abort()
			return
		}
		if !user.IsEnabled() {
			response.Unauthorized(c, "账号未启用")
			c.Abort()
			return
		}

		// 身份信息保存到上下文，审计落款用用户名
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set("token", tokenString)
		c.Request = c.Request.WithContext(authctx.WithActor(c.Request.Context(), user.Username))

		c.Next()
	}
}

// RequirePermission 要求当前用户的角色可达指定权限码
func (m *AuthMiddleware) RequirePermission(permissionCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		hasPermission, err := m.hasPermission(userID.(uint), permissionCode)
		if err != nil {
			logger.GetLogger().WithError(err).Error("权限检查失败")
			response.ServerError(c, "权限检查失败")
			c.Abort()
			return
		}
		if !hasPermission {
			response.Forbidden(c, "权限不足：需要 "+permissionCode+" 权限")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) hasPermission(userID uint, permissionCode string) (bool, error) {
	roles, err := m.roleService.GetByUserID(userID)
	if err != nil {
		return false, err
	}
	permissions, err := m.menuService.PermissionsOf(services.IDsOf(roles))
	if err != nil {
		return false, err
	}
	for _, code := range permissions {
		if code == permissionCode {
			return true, nil
		}
	}
	return false, nil
}
