package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 散列；密码明文只在这里短暂经过，绝不落库
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword 校验失败一律返回 false，不区分原因
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
