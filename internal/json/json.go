// Package json 对 json-iterator 进行简单封装，以标准库兼容的配置导出常用的
// JSON 序列化/反序列化函数，提供统一的 JSON 处理入口，便于后续在不修改调用
// 代码的情况下替换序列化实现。

package json

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// RawMessage 等价于标准库的 json.RawMessage，用于表示未解析的 JSON 原始字节数据。
type RawMessage = json.RawMessage

var std = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// Marshal 将 Go 数据结构序列化为 JSON 字节流。
	Marshal = std.Marshal

	// Unmarshal 将 JSON 字节流反序列化为 Go 数据结构。
	Unmarshal = std.Unmarshal

	// MarshalIndent 生成带缩进的格式化 JSON。
	MarshalIndent = std.MarshalIndent

	// NewDecoder 创建从输入流读取并解析 JSON 的解码器。
	NewDecoder = std.NewDecoder

	// NewEncoder 创建向输出流写入 JSON 的编码器。
	NewEncoder = std.NewEncoder
)
