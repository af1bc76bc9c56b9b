// Copyright 2026 Stephan Poetschner. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.
// zapctx:fields.go
// zap 读路径适配：把当前生效的上下文转换成 []zap.Field，直接挂到一条日志
// 记录上。键按字典序排序，保证同一上下文在不同时刻输出的字段顺序稳定。
//
//	logger.Info("订单创建成功", zapctx.FromContext(ctx, nil)...)

package zapctx

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/stephanpoetschner/ctx-stack/ctxstack"
)

// Fields returns the stack's current context merged with extra as zap fields,
// sorted by key.
func Fields(s *ctxstack.ContextStack, extra ctxstack.Fields) []zap.Field {
	merged := s.Dumps(extra)

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, zap.Any(key, merged[key]))
	}
	return fields
}

// FromContext resolves the stack bound to ctx (package default when none)
// and returns its merged context as zap fields.
func FromContext(ctx context.Context, extra ctxstack.Fields) []zap.Field {
	return Fields(ctxstack.FromContext(ctx), extra)
}
