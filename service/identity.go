package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NormalizeID 把用户标识统一成一种写法。
// 老数据里 owner_id 有裸 UUID、大写、带花括号、urn:uuid: 前缀等多种存法，
// 不归一化直接比对会查不到自己的记录。所有涉及 owner 的比较必须先过这里。
func NormalizeID(id interface{}) string {
	var s string
	switch v := id.(type) {
	case string:
		s = v
	case uuid.UUID:
		return v.String()
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}

	s = strings.TrimSpace(s)
	// 能解析成 UUID 的一律转成标准小写带连字符形式
	if u, err := uuid.Parse(s); err == nil {
		return u.String()
	}
	// 不是 UUID 的当作不透明 token 原样返回
	return s
}
