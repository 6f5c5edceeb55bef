package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sbhardw3/IntraView/internal/dto"
	"github.com/sbhardw3/IntraView/internal/repository"
)

// ── Test Setup ──

func setupTestCompanyService() (CompanyService, *mockCompanyRepo, *mockUserRepo) {
	userRepo := newMockUserRepo()
	companyRepo := newMockCompanyRepo()
	repo := &repository.Repository{
		User:    userRepo,
		Company: companyRepo,
		Review:  newMockReviewRepo(companyRepo, userRepo),
	}
	svc := NewCompanyService(repo, zap.NewNop())
	return svc, companyRepo, userRepo
}

// ── 创建公司测试 ──

func TestCreateCompany_StartsWithZeroAggregates(t *testing.T) {
	svc, _, _ := setupTestCompanyService()

	company, err := svc.Create(context.Background(), &dto.CreateListingRequest{
		CompanyName: "Acme",
		Location:    "Berlin",
		Website:     "https://acme.test",
	})

	if err != nil {
		t.Fatalf("Create 应成功，但返回错误: %v", err)
	}
	if company.ID == "" {
		t.Error("公司 ID 不应为空")
	}
	if company.ReviewCount != 0 {
		t.Errorf("新公司评价数应为 0，实际=%d", company.ReviewCount)
	}
	if company.AverageRating != 0.0 {
		t.Errorf("新公司平均分应为 0.0，实际=%v", company.AverageRating)
	}
}

// ── 提交评价测试 ──

// 场景：评分 4 → count=1 avg=4.0，再评分 2 → count=2 avg=3.0
func TestSubmitReview_AggregatesStayConsistent(t *testing.T) {
	svc, companyRepo, userRepo := setupTestCompanyService()
	user := createTestUser(userRepo, "a@x.com", "pw1")

	company, err := svc.Create(context.Background(), &dto.CreateListingRequest{
		CompanyName: "Acme",
		Location:    "Berlin",
		Website:     "https://acme.test",
	})
	if err != nil {
		t.Fatalf("创建公司应成功: %v", err)
	}

	err = svc.SubmitReview(context.Background(), company.ID, user.UserID, &dto.SubmitReviewRequest{
		Rating:     4,
		ReviewText: "Solid place to intern",
	})
	if err != nil {
		t.Fatalf("第一条评价应成功: %v", err)
	}

	stored, _ := companyRepo.GetByID(context.Background(), company.ID)
	if stored.ReviewCount != 1 {
		t.Errorf("期望 review_count=1，实际=%d", stored.ReviewCount)
	}
	if stored.AverageRating != 4.0 {
		t.Errorf("期望 average_rating=4.0，实际=%v", stored.AverageRating)
	}

	err = svc.SubmitReview(context.Background(), company.ID, user.UserID, &dto.SubmitReviewRequest{
		Rating: 2,
	})
	if err != nil {
		t.Fatalf("第二条评价应成功: %v", err)
	}

	stored, _ = companyRepo.GetByID(context.Background(), company.ID)
	if stored.ReviewCount != 2 {
		t.Errorf("期望 review_count=2，实际=%d", stored.ReviewCount)
	}
	if stored.AverageRating != 3.0 {
		t.Errorf("期望 average_rating=3.0，实际=%v", stored.AverageRating)
	}
}

func TestSubmitReview_InvalidRating(t *testing.T) {
	svc, _, userRepo := setupTestCompanyService()
	user := createTestUser(userRepo, "a@x.com", "pw1")

	company, _ := svc.Create(context.Background(), &dto.CreateListingRequest{
		CompanyName: "Acme",
		Location:    "Berlin",
		Website:     "https://acme.test",
	})

	for _, rating := range []int{0, 6, -1} {
		err := svc.SubmitReview(context.Background(), company.ID, user.UserID, &dto.SubmitReviewRequest{
			Rating: rating,
		})
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("评分 %d 期望 ErrInvalidRating，实际: %v", rating, err)
		}
	}
}

func TestSubmitReview_CompanyNotFound(t *testing.T) {
	svc, _, userRepo := setupTestCompanyService()
	user := createTestUser(userRepo, "a@x.com", "pw1")

	err := svc.SubmitReview(context.Background(), "missing-company", user.UserID, &dto.SubmitReviewRequest{
		Rating: 4,
	})

	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("期望 ErrCompanyNotFound，实际: %v", err)
	}
}

// ── 详情页测试 ──

func TestGetPage_NotFound(t *testing.T) {
	svc, _, _ := setupTestCompanyService()

	_, err := svc.GetPage(context.Background(), "missing-company")

	if !errors.Is(err, ErrCompanyNotFound) {
		t.Errorf("期望 ErrCompanyNotFound，实际: %v", err)
	}
}

func TestGetPage_IncludesReviewsWithAuthor(t *testing.T) {
	svc, _, userRepo := setupTestCompanyService()
	user := createTestUser(userRepo, "a@x.com", "pw1")

	company, _ := svc.Create(context.Background(), &dto.CreateListingRequest{
		CompanyName: "Acme",
		Location:    "Berlin",
		Website:     "https://acme.test",
	})
	_ = svc.SubmitReview(context.Background(), company.ID, user.UserID, &dto.SubmitReviewRequest{
		Rating:     5,
		ReviewText: "Great mentorship",
	})

	page, err := svc.GetPage(context.Background(), company.ID)
	if err != nil {
		t.Fatalf("GetPage 应成功: %v", err)
	}
	if len(page.Reviews) != 1 {
		t.Fatalf("期望 1 条评价，实际=%d", len(page.Reviews))
	}
	if page.Reviews[0].Author != "Ada Lovelace" {
		t.Errorf("期望作者为用户姓名，实际=%q", page.Reviews[0].Author)
	}
	if page.Company.AverageRating != 5.0 {
		t.Errorf("期望平均分 5.0，实际=%v", page.Company.AverageRating)
	}
}
