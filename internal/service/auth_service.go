package service

import (
	"context"
	"errors"
	"strings"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/errs"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/domain"
	"github.com/XYFORA-Dev/XYFORA-APIs/pkg/utils"
)

// TokenIssuer 签发访问令牌
type TokenIssuer interface {
	Issue(uid string) (string, error)
}

type RegisterInput struct {
	Fullname string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult 注册/登录结果：用户 + 新令牌
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	Profile(ctx context.Context, uid string) (*domain.User, error)
}

type authService struct {
	users  domain.UserRepository
	tokens TokenIssuer
}

func NewAuthService(users domain.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, errs.Internal("internal error", err)
	}
	if existing != nil {
		return nil, errs.Conflict("email already registered")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Fullname:     strings.TrimSpace(in.Fullname),
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
	}
	if err := s.users.Create(ctx, u); err != nil {
		// 并发注册撞唯一索引，按已注册处理
		if errors.Is(err, domain.ErrDuplicateKey) {
			return nil, errs.Conflict("email already registered")
		}
		return nil, errs.Internal("internal error", err)
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, errs.Internal("internal error", err)
	}
	return &AuthResult{User: u, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, errs.Internal("internal error", err)
	}
	// 不区分「邮箱不存在」与「密码错误」
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		return nil, errs.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, errs.Internal("internal error", err)
	}
	return &AuthResult{User: u, Token: token}, nil
}

func (s *authService) Profile(ctx context.Context, uid string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, errs.Internal("internal error", err)
	}
	if u == nil {
		// 令牌有效但用户已不存在
		return nil, errs.Unauthorized("invalid credentials")
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
