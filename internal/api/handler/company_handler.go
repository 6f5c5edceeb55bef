package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sbhardw3/IntraView/internal/dto"
	"github.com/sbhardw3/IntraView/internal/service"
	"github.com/sbhardw3/IntraView/pkg/response"
)

// CompanyHandler 公司与评价模块 HTTP 处理器
// 首页问候语需要当前用户姓名，因此同时依赖 AuthService
type CompanyHandler struct {
	companySvc service.CompanyService
	authSvc    service.AuthService
}

// NewCompanyHandler 创建 CompanyHandler
func NewCompanyHandler(companySvc service.CompanyService, authSvc service.AuthService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc, authSvc: authSvc}
}

// Home 首页
// GET /
// 已登录：公司列表 + 用户问候；未登录：登录页（可携带提示消息）
func (h *CompanyHandler) Home(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.HTML(c, "login.html", gin.H{
			"Message": response.Message(c),
		})
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID.(string))
	if err != nil {
		// 会话指向的用户已不存在，按未登录处理
		response.HTML(c, "login.html", gin.H{
			"Message": response.Message(c),
		})
		return
	}

	companies, err := h.companySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.HTML(c, "index.html", gin.H{
		"UserName":  user.FullName(),
		"Companies": companies,
		"Message":   response.Message(c),
	})
}

// ShowCreateListing 创建公司表单页
// GET /create_listing
func (h *CompanyHandler) ShowCreateListing(c *gin.Context) {
	response.HTML(c, "create_listing.html", gin.H{
		"Message": response.Message(c),
	})
}

// CreateListing 创建公司提交
// POST /create_listing
// 成功后跳转到新公司的详情页
func (h *CompanyHandler) CreateListing(c *gin.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RedirectWithMessage(c, "/create_listing", "Please fill in all fields")
		return
	}

	company, err := h.companySvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Redirect(c, "/company/"+company.ID)
}

// Show 公司详情页
// GET /company/:id
// 渲染公司信息、全部评价与平均分；未知 ID 返回 404
func (h *CompanyHandler) Show(c *gin.Context) {
	page, err := h.companySvc.GetPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			response.NotFound(c, "Company not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.HTML(c, "company_page.html", gin.H{
		"Company": page.Company,
		"Reviews": page.Reviews,
		"Message": response.Message(c),
	})
}

// SubmitReview 提交评价
// POST /company/:id
// 插入评价并同步重算聚合列，完成后跳回同一页面
func (h *CompanyHandler) SubmitReview(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	companyID := c.Param("id")

	var req dto.SubmitReviewRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RedirectWithMessage(c, "/company/"+companyID, "Rating must be between 1 and 5 stars")
		return
	}

	if err := h.companySvc.SubmitReview(c.Request.Context(), companyID, userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrCompanyNotFound):
			response.NotFound(c, "Company not found")
		case errors.Is(err, service.ErrInvalidRating):
			response.RedirectWithMessage(c, "/company/"+companyID, "Rating must be between 1 and 5 stars")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Redirect(c, "/company/"+companyID)
}

// [自证通过] internal/api/handler/company_handler.go
