// Package domain 定义了日志登记簿的核心领域模型。
package domain

import "errors"

// 领域错误定义
// 这些错误在工厂、登记簿与命令行之间传递，调用方使用 errors.Is 判断。

var (
	// ErrInvalidCategory 表示日志类别标签不在已识别的词汇表中
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidVocabulary 表示类别词汇表配置无效
	ErrInvalidVocabulary = errors.New("invalid vocabulary")
	// ErrRegistryReleased 表示登记簿已被销毁，旧句柄不可再使用
	ErrRegistryReleased = errors.New("registry released")
	// ErrInvalidScript 表示脚本文件格式无效
	ErrInvalidScript = errors.New("invalid script")
)
