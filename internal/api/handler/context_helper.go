package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 正常情况下由 RequireLogin 保证已注入；缺失时重定向到登录页并返回 false。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.Redirect(http.StatusSeeOther, "/login")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		return "", false
	}
	return s, true
}

// SessionToken 从 Gin 上下文中提取会话 Token（可能为空）
func SessionToken(c *gin.Context) string {
	v, exists := c.Get("session_token")
	if !exists {
		return ""
	}
	s, _ := v.(string)
	return s
}
