package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// NewID 生成 24 位十六进制记录主键：4 字节 unix 秒 + 8 字节随机，
// 按创建时间大致可排序，形态与存储层的不透明 ID 校验一致
func NewID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	_, _ = rand.Read(b[4:])
	return hex.EncodeToString(b[:])
}
