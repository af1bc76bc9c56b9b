// Copyright 2026 Stephan Poetschner. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.
// ctxstack:context.go
// 提供基于 context.Context 的栈实例传递功能：把某个逻辑工作单元（一次请求、
// 一个任务）专属的上下文栈存入 context，在调用链深处再取出来。这是并发隔离
// 的推荐方式——每个工作单元一个栈实例，而不是所有 goroutine 共享全局栈。

package ctxstack

import (
	"context"
)

type key int

const (
	stackContextKey key = iota
)

// WithContext returns a copy of ctx in which the stack value is set.
func (s *ContextStack) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, stackContextKey, s)
}

// StackFromContext returns the stack stored in ctx and whether one was
// stored at all. Callers that provide their own fallback use this form;
// everyone else uses FromContext.
func StackFromContext(ctx context.Context) (*ContextStack, bool) {
	if ctx != nil {
		if s, ok := ctx.Value(stackContextKey).(*ContextStack); ok {
			return s, true
		}
	}
	return nil, false
}

// FromContext returns the stack stored in ctx, falling back to the package
// default stack when ctx carries none.
func FromContext(ctx context.Context) *ContextStack {
	if s, ok := StackFromContext(ctx); ok {
		return s
	}
	return Default()
}
