// Copyright 2026 Stephan Poetschner. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package ctxstack

import (
	"context"
	"testing"
)

// 测试栈实例在 context 中的存取
func TestWithContextFromContext(t *testing.T) {
	s := New(NewOptions())
	ctx := s.WithContext(context.Background())

	if got := FromContext(ctx); got != s {
		t.Errorf("FromContext 未返回绑定的栈实例")
	}

	if got := FromContext(context.Background()); got != Default() {
		t.Errorf("未绑定栈的 context 应回落到包级默认栈")
	}

	if got := FromContext(nil); got != Default() { //nolint:staticcheck // 回落行为本身是被测对象
		t.Errorf("nil context 应回落到包级默认栈")
	}
}

// 测试带 ok 标志的存取能区分"未绑定"与"显式绑定了默认栈"
func TestStackFromContext(t *testing.T) {
	if got, ok := StackFromContext(context.Background()); ok || got != nil {
		t.Errorf("未绑定栈的 context 应返回 (nil, false)，实际 (%v, %v)", got, ok)
	}

	if got, ok := StackFromContext(nil); ok || got != nil { //nolint:staticcheck // nil 行为本身是被测对象
		t.Errorf("nil context 应返回 (nil, false)，实际 (%v, %v)", got, ok)
	}

	ctx := Default().WithContext(context.Background())
	if got, ok := StackFromContext(ctx); !ok || got != Default() {
		t.Errorf("显式绑定默认栈后应返回 (默认栈, true)，实际 (%v, %v)", got, ok)
	}
}

// 测试每任务独立栈实例之间互不干扰
func TestPerTaskIsolation(t *testing.T) {
	taskA := New(NewOptions())
	taskB := New(NewOptions())

	ctxA := taskA.WithContext(context.Background())
	ctxB := taskB.WithContext(context.Background())

	_, doneA := FromContext(ctxA).Update(Fields{"request_id": "req-A"})
	defer doneA()

	if _, ok := FromContext(ctxB).Dumps(nil)["request_id"]; ok {
		t.Errorf("任务A的上下文泄漏进了任务B的栈")
	}

	_, doneB := FromContext(ctxB).Update(Fields{"request_id": "req-B"})
	defer doneB()

	if got := FromContext(ctxA).Dumps(nil)["request_id"]; got != "req-A" {
		t.Errorf("任务B的更新污染了任务A的栈，实际 %v", got)
	}
}
