package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sbhardw3/IntraView/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id 与 "email:"+email 双索引
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	// 模拟 users.email 唯一索引
	if _, ok := m.users["email:"+user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if user.UserID == "" {
		user.UserID = "test-user-" + user.Email
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	m.users["email:"+user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// countUsersByEmail 统计某邮箱对应的用户数（测试断言用）
func (m *mockUserRepo) countUsersByEmail(email string) int {
	count := 0
	for key, u := range m.users {
		if key == "email:"+u.Email {
			continue
		}
		if u.Email == email {
			count++
		}
	}
	return count
}

// ── Mock UserDetailsRepository ──

type mockUserDetailsRepo struct {
	details map[string]*model.UserDetails // key: user_id
}

func newMockUserDetailsRepo() *mockUserDetailsRepo {
	return &mockUserDetailsRepo{details: make(map[string]*model.UserDetails)}
}

func (m *mockUserDetailsRepo) GetByUserID(_ context.Context, userID string) (*model.UserDetails, error) {
	if d, ok := m.details[userID]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserDetailsRepo) Create(_ context.Context, details *model.UserDetails) error {
	if details.UserDetailsID == "" {
		details.UserDetailsID = "details-" + details.UserID
	}
	m.details[details.UserID] = details
	return nil
}

func (m *mockUserDetailsRepo) Update(_ context.Context, details *model.UserDetails) error {
	m.details[details.UserID] = details
	return nil
}

// ── Mock CompanyRepository ──

type mockCompanyRepo struct {
	companies map[string]*model.Company
	seq       int
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: make(map[string]*model.Company)}
}

func (m *mockCompanyRepo) Create(_ context.Context, company *model.Company) error {
	if company.CompanyID == "" {
		m.seq++
		company.CompanyID = fmt.Sprintf("company-%d", m.seq)
	}
	company.CreatedAt = time.Now()
	m.companies[company.CompanyID] = company
	return nil
}

func (m *mockCompanyRepo) GetByID(_ context.Context, id string) (*model.Company, error) {
	if c, ok := m.companies[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompanyRepo) List(_ context.Context) ([]model.Company, error) {
	var result []model.Company
	for _, c := range m.companies {
		result = append(result, *c)
	}
	return result, nil
}

// ── Mock ReviewRepository ──
//
// Create 同步更新所属公司的聚合字段，与真实实现的事务内重算语义一致

type mockReviewRepo struct {
	reviews   []*model.Review
	companies *mockCompanyRepo
	users     *mockUserRepo
	seq       int
}

func newMockReviewRepo(companies *mockCompanyRepo, users *mockUserRepo) *mockReviewRepo {
	return &mockReviewRepo{companies: companies, users: users}
}

func (m *mockReviewRepo) Create(_ context.Context, review *model.Review) error {
	company, ok := m.companies.companies[review.CompanyID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	if review.ReviewID == "" {
		m.seq++
		review.ReviewID = fmt.Sprintf("review-%d", m.seq)
	}
	review.CreatedAt = time.Now()
	m.reviews = append(m.reviews, review)

	// 重算聚合
	count := 0
	total := 0
	for _, r := range m.reviews {
		if r.CompanyID == review.CompanyID {
			count++
			total += r.Rating
		}
	}
	company.ReviewCount = count
	company.AverageRating = float64(total) / float64(count)

	return nil
}

func (m *mockReviewRepo) ListByCompany(_ context.Context, companyID string) ([]model.Review, error) {
	var result []model.Review
	for _, r := range m.reviews {
		if r.CompanyID == companyID {
			review := *r
			if u, ok := m.users.users[r.UserID]; ok {
				review.User = u
			}
			result = append(result, review)
		}
	}
	return result, nil
}

// ── Mock SessionStore ──

type mockSessionStore struct {
	sessions map[string]string // token → user_id
	seq      int
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]string)}
}

func (m *mockSessionStore) CreateSession(_ context.Context, userID string, _ time.Duration) (string, error) {
	m.seq++
	token := fmt.Sprintf("session-token-%d", m.seq)
	m.sessions[token] = userID
	return token, nil
}

func (m *mockSessionStore) DeleteSession(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}
