// Copyright 2026 Stephan Poetschner. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.
// ctxstack:scope.go
// 作用域式的获取/释放封装：进入作用域时净化并压入一帧，返回此刻生效的合并
// 上下文和一个释放函数；调用方用 defer 保证无论正常返回、提前返回还是 panic
// 展开，释放函数都恰好弹栈一次。释放函数除弹栈外没有任何副作用，既不吞掉
// 也不改写正在传播的失败。

package ctxstack

import "sync"

// ReleaseFunc pops the frame its Update call pushed. It is safe to call more
// than once; only the first call pops.
type ReleaseFunc func()

// Update sanitizes vals, pushes the merged frame and returns the context now
// in effect together with the release func. Typical use:
//
//	ctx, done := stack.Update(ctxstack.Fields{"request_id": "req-123"})
//	defer done()
//
// The deferred release fires on every exit path, including a panic unwinding
// through the caller.
func (s *ContextStack) Update(vals Fields) (Fields, ReleaseFunc) {
	frame := s.Push(s.sanitizer.Sanitize(vals))
	var once sync.Once
	release := func() {
		once.Do(func() {
			s.Pop()
		})
	}
	return frame, release
}
