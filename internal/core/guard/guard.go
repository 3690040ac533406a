// Package guard 是授权核心：从请求头提取身份凭证、清洗与校验资源 ID、
// 判定资源归属。全部为纯函数，不做任何 I/O。
package guard

import (
	"regexp"
	"strings"
)

const bearerPrefix = "Bearer "

// 存储层不透明 ID 的固定形态：24 位十六进制
var idShape = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// BearerToken 从 Authorization 头取出凭证。头缺失或无 Bearer 前缀
// 视为"未携带身份"，永不报错；调用方负责把 false 映射成 401
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if tok == "" {
		return "", false
	}
	return tok, true
}

// CleanID 清洗路径里的资源 ID：去首尾空白、去引号（客户端复制粘贴常见杂质）
func CleanID(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// ValidID 形态校验必须发生在任何存储查询之前：
// 不合形态走 400，与"查无此记录"的 404 严格区分
func ValidID(id string) bool {
	return idShape.MatchString(id)
}

// Owns 系统里唯一的授权规则：操作者与资源 Owner 逐字节一致（区分大小写）。
// 只能在确认资源存在之后调用，404 与 403 不可混为一谈
func Owns(userID, ownerID string) bool {
	return userID != "" && userID == ownerID
}
