package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/errs"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/domain"
	"github.com/XYFORA-Dev/XYFORA-APIs/pkg/utils"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User

	createErr    error
	findEmailErr error
	findIDErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*domain.User{},
		byID:    map[string]*domain.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateKey
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if f.findIDErr != nil {
		return nil, f.findIDErr
	}
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.findEmailErr != nil {
		return nil, f.findEmailErr
	}
	return f.byEmail[email], nil
}

type fakeIssuer struct {
	err error
}

func (f *fakeIssuer) Issue(uid string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "tok-" + uid, nil
}

func TestRegisterCreatesUserAndIssuesToken(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeIssuer{})

	res, err := svc.Register(context.Background(), RegisterInput{
		Fullname: "Ada",
		Email:    "  Ada@X.com ",
		Password: "passw0rd",
	})
	require.NoError(t, err)
	require.NotNil(t, res.User)

	assert.Equal(t, "ada@x.com", res.User.Email) // 邮箱归一化
	assert.Len(t, res.User.ID, 24)
	assert.Equal(t, "tok-"+res.User.ID, res.Token) // 令牌签给新建用户
	assert.NotEqual(t, "passw0rd", res.User.PasswordHash)
	assert.True(t, utils.CheckPassword("passw0rd", res.User.PasswordHash))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeIssuer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Fullname: "A", Email: "a@x.com", Password: "passw0rd"})
	require.NoError(t, err)

	// 大小写不同也算同一邮箱
	_, err = svc.Register(ctx, RegisterInput{Fullname: "B", Email: "A@X.com", Password: "passw0rd"})
	require.Error(t, err)
	assert.Equal(t, 400, errs.CodeOf(err))
	assert.EqualError(t, err, "email already registered")
}

func TestRegisterDuplicateRaceOnInsert(t *testing.T) {
	// 预查没撞、插入时撞唯一索引：对外同一个结果
	repo := newFakeUserRepo()
	repo.createErr = domain.ErrDuplicateKey
	svc := NewAuthService(repo, &fakeIssuer{})

	_, err := svc.Register(context.Background(), RegisterInput{Fullname: "A", Email: "a@x.com", Password: "passw0rd"})
	require.Error(t, err)
	assert.Equal(t, 400, errs.CodeOf(err))
	assert.EqualError(t, err, "email already registered")
}

func TestRegisterIssuerFailureIs500(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeIssuer{err: errors.New("hsm down")})

	_, err := svc.Register(context.Background(), RegisterInput{Fullname: "A", Email: "a@x.com", Password: "passw0rd"})
	require.Error(t, err)
	assert.Equal(t, 500, errs.CodeOf(err))
	assert.EqualError(t, err, "internal error")
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeIssuer{})
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Fullname: "A", Email: "a@x.com", Password: "passw0rd"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, LoginInput{Email: "A@x.com", Password: "passw0rd"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, res.User.ID)
	assert.NotEmpty(t, res.Token)
}

func TestLoginWrongPasswordIs401Never500(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeIssuer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Fullname: "A", Email: "a@x.com", Password: "passw0rd"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, 401, errs.CodeOf(err))
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeIssuer{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "none@x.com", Password: "passw0rd"})
	require.Error(t, err)
	// 不区分「邮箱不存在」与「密码错误」
	assert.Equal(t, 401, errs.CodeOf(err))
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginStoreFailureIs500Masked(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findEmailErr = errors.New("dial tcp: connection refused")
	svc := NewAuthService(repo, &fakeIssuer{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "passw0rd"})
	require.Error(t, err)
	assert.Equal(t, 500, errs.CodeOf(err))
	assert.EqualError(t, err, "internal error") // 内部细节不外泄
}

func TestProfile(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeIssuer{})
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Fullname: "A", Email: "a@x.com", Password: "passw0rd"})
	require.NoError(t, err)

	u, err := svc.Profile(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
}

func TestProfileVanishedUserIs401(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeIssuer{})

	_, err := svc.Profile(context.Background(), "68a1f2c3d4e5f6a7b8c9d0e1")
	require.Error(t, err)
	assert.Equal(t, 401, errs.CodeOf(err))
}
