package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sbhardw3/IntraView/internal/dto"
	"github.com/sbhardw3/IntraView/internal/repository"
)

// ── Test Setup ──

func setupTestExportService() (ExportService, CompanyService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	companyRepo := newMockCompanyRepo()
	repo := &repository.Repository{
		User:    userRepo,
		Company: companyRepo,
		Review:  newMockReviewRepo(companyRepo, userRepo),
	}
	return NewExportService(repo, zap.NewNop()), NewCompanyService(repo, zap.NewNop()), userRepo
}

func TestExportCompanies_Empty(t *testing.T) {
	svc, _, _ := setupTestExportService()

	_, _, err := svc.ExportCompanies(context.Background())

	if !errors.Is(err, ErrExportNoCompanies) {
		t.Errorf("期望 ErrExportNoCompanies，实际: %v", err)
	}
}

func TestExportCompanies_ContainsAggregates(t *testing.T) {
	exportSvc, companySvc, userRepo := setupTestExportService()
	user := createTestUser(userRepo, "a@x.com", "pw1")

	company, _ := companySvc.Create(context.Background(), &dto.CreateListingRequest{
		CompanyName: "Acme",
		Location:    "Berlin",
		Website:     "https://acme.test",
	})
	_ = companySvc.SubmitReview(context.Background(), company.ID, user.UserID, &dto.SubmitReviewRequest{Rating: 4})
	_ = companySvc.SubmitReview(context.Background(), company.ID, user.UserID, &dto.SubmitReviewRequest{Rating: 2})

	buf, filename, err := exportSvc.ExportCompanies(context.Background())
	if err != nil {
		t.Fatalf("ExportCompanies 应成功: %v", err)
	}
	if !strings.HasPrefix(filename, "companies_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名格式不符: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 xlsx: %v", err)
	}
	defer f.Close()

	name, _ := f.GetCellValue("Companies", "A2")
	if name != "Acme" {
		t.Errorf("期望 A2=Acme，实际=%s", name)
	}
	count, _ := f.GetCellValue("Companies", "D2")
	if count != "2" {
		t.Errorf("期望 D2=2，实际=%s", count)
	}
	avg, _ := f.GetCellValue("Companies", "E2")
	if avg != "3" {
		t.Errorf("期望 E2=3，实际=%s", avg)
	}
}
