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

func setupTestProfileService() (ProfileService, *mockUserRepo, *mockUserDetailsRepo) {
	userRepo := newMockUserRepo()
	detailsRepo := newMockUserDetailsRepo()
	repo := &repository.Repository{
		User:        userRepo,
		UserDetails: detailsRepo,
	}
	svc := NewProfileService(repo, zap.NewNop())
	return svc, userRepo, detailsRepo
}

// ── Upsert 测试 ──

func TestProfileUpdate_CreatesOnFirstSave(t *testing.T) {
	svc, userRepo, detailsRepo := setupTestProfileService()
	user := createTestUser(userRepo, "a@x.com", "pw1")

	err := svc.Update(context.Background(), user.UserID, &dto.UpdateProfileRequest{
		Location:           "Munich",
		DegreeType:         "MSc",
		School:             "TUM",
		ExpectedGraduation: "2027",
	})

	if err != nil {
		t.Fatalf("首次保存应成功: %v", err)
	}
	details, err := detailsRepo.GetByUserID(context.Background(), user.UserID)
	if err != nil {
		t.Fatalf("首次保存后资料应存在: %v", err)
	}
	if details.School != "TUM" {
		t.Errorf("期望 School=TUM，实际=%s", details.School)
	}
}

func TestProfileUpdate_MutatesInPlace(t *testing.T) {
	svc, userRepo, detailsRepo := setupTestProfileService()
	user := createTestUser(userRepo, "a@x.com", "pw1")

	_ = svc.Update(context.Background(), user.UserID, &dto.UpdateProfileRequest{
		Location: "Munich",
		School:   "TUM",
	})
	first, _ := detailsRepo.GetByUserID(context.Background(), user.UserID)
	firstID := first.UserDetailsID

	err := svc.Update(context.Background(), user.UserID, &dto.UpdateProfileRequest{
		Location: "Berlin",
		School:   "HU Berlin",
	})

	if err != nil {
		t.Fatalf("二次保存应成功: %v", err)
	}
	second, _ := detailsRepo.GetByUserID(context.Background(), user.UserID)
	if second.UserDetailsID != firstID {
		t.Error("二次保存应原地更新同一条资料，而非新建")
	}
	if second.Location != "Berlin" {
		t.Errorf("期望 Location=Berlin，实际=%s", second.Location)
	}
}

// ── 查询测试 ──

func TestProfileGet_WithoutDetails(t *testing.T) {
	svc, userRepo, _ := setupTestProfileService()
	user := createTestUser(userRepo, "a@x.com", "pw1")

	view, err := svc.Get(context.Background(), user.UserID)

	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if view.FirstName != "Ada" || view.Email != "a@x.com" {
		t.Errorf("基础信息不符: %+v", view)
	}
	if view.Location != "" || view.School != "" {
		t.Error("未填写资料时各字段应为空")
	}
}

func TestProfileGet_UserNotFound(t *testing.T) {
	svc, _, _ := setupTestProfileService()

	_, err := svc.Get(context.Background(), "missing-user")

	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}
