package service

import (
	"errors"
	"fmt"
)

// 核心层统一的错误种类，路由层只根据这几个哨兵翻译状态码
var (
	// ErrInvalid 参数校验失败（标题为空、分页参数非法等），直接返回给调用方
	ErrInvalid = errors.New("参数校验失败")
	// ErrNotFound 记录不存在；改删别人的记录也报这个，不暴露记录是否存在
	ErrNotFound = errors.New("记录不存在")
	// ErrForbidden 读私有记录但不是主人
	ErrForbidden = errors.New("无权限访问")
	// ErrStorage 底层存储故障，细节只进日志，不给调用方
	ErrStorage = errors.New("存储操作失败")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, args...)...)
}

func storagef(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
