// Copyright 2026 Stephan Poetschner. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.
// ctxstack:reserved.go
// 保留字键的净化器。日志后端会在每条记录上注入一批自有字段（级别、时间、
// 消息等），用户上下文如果使用同名键，轻则被后端覆盖，重则直接让后端报错。
// 净化器在任何写入发生之前把保留字键重命名为带前缀的形式（默认 ctx_<key>），
// 非保留字键原样通过，输入 map 永远不会被修改。

package ctxstack

import (
	"github.com/stephanpoetschner/ctx-stack/internal/sets"
)

// DefaultReservedPrefix is the prefix prepended to reserved keys found in
// caller-supplied context.
const DefaultReservedPrefix = "ctx_"

// defaultReservedKeys 是标准日志记录自带的属性名。
// 这份清单对应 Python logging.LogRecord 的字段集合；如果嵌入方的后端保留了
// 其他字段名，通过 Options.ReservedKeys 追加即可，不需要改这里。
var defaultReservedKeys = []string{
	"args", "asctime", "created", "exc_info", "exc_text", "filename",
	"funcName", "levelname", "levelno", "lineno", "message", "module",
	"msecs", "msg", "name", "pathname", "process", "processName",
	"relativeCreated", "stack_info", "thread", "threadName",
}

// ReservedKeys returns the built-in reserved key names, sorted.
func ReservedKeys() []string {
	return sets.NewString(defaultReservedKeys...).List()
}

// Sanitizer renames reserved keys in caller-supplied field maps so user
// context can never collide with fields the logging backend owns.
type Sanitizer struct {
	reserved sets.String
	prefix   string
}

// NewSanitizer builds a Sanitizer with the given prefix and any extra
// backend-specific reserved keys on top of the built-in set. An empty prefix
// falls back to DefaultReservedPrefix.
func NewSanitizer(prefix string, extra ...string) *Sanitizer {
	if prefix == "" {
		prefix = DefaultReservedPrefix
	}
	reserved := sets.NewString(defaultReservedKeys...)
	reserved.Insert(extra...)
	return &Sanitizer{
		reserved: reserved,
		prefix:   prefix,
	}
}

// Sanitize returns a new map in which every reserved key of vals has been
// renamed to prefix+key. Non-reserved keys pass through unchanged. The input
// map is never mutated; a nil input yields an empty map.
func (s *Sanitizer) Sanitize(vals Fields) Fields {
	out := make(Fields, len(vals))
	for key, value := range vals {
		if s.reserved.Has(key) {
			out[s.prefix+key] = value
			continue
		}
		out[key] = value
	}
	return out
}
