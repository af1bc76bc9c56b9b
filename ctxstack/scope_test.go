// Copyright 2026 Stephan Poetschner. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package ctxstack

import (
	"reflect"
	"testing"
)

// 场景1：端到端——嵌套作用域的继承与逐层退出
func TestUpdateNested(t *testing.T) {
	s := New(NewOptions())
	s.Reset()

	outer, outerDone := s.Update(Fields{"request_id": "abc"})
	if !reflect.DeepEqual(outer, Fields{"request_id": "abc"}) {
		t.Fatalf("外层作用域生效上下文错误，实际 %v", outer)
	}

	got := s.Dumps(Fields{"user_id": "u1"})
	if !reflect.DeepEqual(got, Fields{"request_id": "abc", "user_id": "u1"}) {
		t.Errorf("外层 Dumps 结果错误，实际 %v", got)
	}

	inner, innerDone := s.Update(Fields{"step": "validate"})
	if !reflect.DeepEqual(inner, Fields{"request_id": "abc", "step": "validate"}) {
		t.Errorf("内层作用域应继承外层上下文，实际 %v", inner)
	}

	innerDone()
	if got := s.Dumps(nil); !reflect.DeepEqual(got, Fields{"request_id": "abc"}) {
		t.Errorf("内层退出后应回到外层上下文，实际 %v", got)
	}

	outerDone()
	if got := s.Dumps(nil); !reflect.DeepEqual(got, Fields{}) {
		t.Errorf("外层退出后应回到空基础上下文，实际 %v", got)
	}
}

// 场景2：保留字键在进入作用域前被重命名
func TestUpdateReservedKeyRemap(t *testing.T) {
	s := New(NewOptions())

	_, done := s.Update(Fields{"asctime": "x"})
	defer done()

	got := s.Dumps(nil)
	if v, ok := got["ctx_asctime"]; !ok || v != "x" {
		t.Errorf("保留字键应被重命名为 ctx_asctime，实际 %v", got)
	}
	if _, ok := got["asctime"]; ok {
		t.Errorf("裸保留字键 asctime 不应出现在上下文中，实际 %v", got)
	}
}

// 场景3：异常安全——panic 穿过作用域时 defer 的释放函数仍然弹栈
func TestUpdatePanicSafety(t *testing.T) {
	s := New(NewOptions())
	before := s.Len()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("预期捕获 panic")
			}
		}()
		_, done := s.Update(Fields{"k": "v"})
		defer done()
		panic("simulated error")
	}()

	if s.Len() != before {
		t.Errorf("panic 捕获后栈长度应还原为 %d，实际 %d", before, s.Len())
	}
	if _, ok := s.Dumps(nil)["k"]; ok {
		t.Errorf("panic 捕获后作用域字段 k 不应残留，实际 %v", s.Dumps(nil))
	}
}

// 场景4：释放函数幂等——重复调用不会多弹一帧
func TestReleaseIdempotent(t *testing.T) {
	s := New(NewOptions())

	_, outerDone := s.Update(Fields{"request_id": "abc"})
	_, innerDone := s.Update(Fields{"step": "validate"})

	innerDone()
	innerDone() // 第二次调用必须是空操作

	if got := s.Dumps(nil); !reflect.DeepEqual(got, Fields{"request_id": "abc"}) {
		t.Errorf("重复释放破坏了外层作用域，实际 %v", got)
	}

	outerDone()
	if s.Len() != 1 {
		t.Errorf("全部释放后栈长度应为1，实际 %d", s.Len())
	}
}
