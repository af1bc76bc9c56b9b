// Copyright 2026 Stephan Poetschner. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.
// ctxstack:stack.go
// 上下文栈本体。栈是一列不可变的上下文帧，最底部的基础帧永远存在；每个更高
// 的帧都是下一层帧与一组覆盖键值对的扁平合并结果（覆盖方胜出）。所有写入都
// 走深拷贝，帧之间、帧与调用方之间不共享任何可变结构。
//
// 并发说明：互斥锁只保证单个操作不产生数据竞争，并不提供逻辑单元之间的隔离。
// 并发任务共用同一个栈实例时，各自的 push/pop 会任意交错；需要隔离时应当为
// 每个逻辑单元绑定独立的栈实例（见 context.go）。

package ctxstack

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/stephanpoetschner/ctx-stack/internal/json"
)

// ErrInvalidSnapshot is returned by Restore when the snapshot holds no
// frames. Every other operation depends on the base frame always being
// present, so an empty snapshot must never replace the live sequence.
var ErrInvalidSnapshot = errors.New("ctxstack: snapshot must contain at least one frame")

// Snapshot is an independent deep copy of a stack's full frame sequence,
// used to transport context across an execution-unit boundary.
type Snapshot []Fields

// ContextStack is an ordered sequence of context frames, bottom frame always
// present. It is mutated exclusively through Push/Pop/Reset/Restore.
type ContextStack struct {
	mu        sync.Mutex
	frames    []Fields
	seed      Fields
	reseed    bool
	sanitizer *Sanitizer
	logger    *zap.Logger
}

// New creates a ContextStack configured by opts. A nil opts is equivalent to
// NewOptions(). The base frame is seeded from opts.BaseFields.
func New(opts *Options) *ContextStack {
	if opts == nil {
		opts = NewOptions()
	}
	seed := make(Fields, len(opts.BaseFields))
	for key, value := range opts.BaseFields {
		seed[key] = value
	}
	s := &ContextStack{
		seed:      seed,
		reseed:    opts.ReseedOnReset,
		sanitizer: NewSanitizer(opts.ReservedPrefix, opts.ReservedKeys...),
	}
	s.frames = []Fields{s.baseFrame()}
	return s
}

// SetLogger replaces the diagnostic logger used for the guarded-pop warning.
// By default the zap global logger is used.
func (s *ContextStack) SetLogger(l *zap.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = l
}

// baseFrame 构造一帧新的基础上下文：开启 reseed 时带上配置的静态默认值
// （如服务名、版本号），否则为空帧。
func (s *ContextStack) baseFrame() Fields {
	if s.reseed {
		return s.seed.Clone()
	}
	return Fields{}
}

func (s *ContextStack) diag() *zap.Logger {
	if s.logger != nil {
		return s.logger
	}
	return zap.L()
}

// Push merges the current top frame with vals (vals win on collision),
// appends the merged frame and returns a copy of it. An empty or nil vals
// duplicates the top frame.
func (s *ContextStack) Push(vals Fields) Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := s.top().merge(vals)
	s.frames = append(s.frames, frame)
	return frame.Clone()
}

// Pop removes and returns the top frame. Popping with only the base frame
// left is a guarded no-op: the base frame is returned unchanged and a single
// warning is emitted, because destroying the base context would silently
// drop default fields from every subsequent log line.
func (s *ContextStack) Pop() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) <= 1 {
		s.diag().Warn("attempt to pop base context prevented; retaining base context")
		return s.frames[0].Clone()
	}
	frame := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return frame
}

// Current returns a copy of the top frame.
func (s *ContextStack) Current() Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.top().Clone()
}

// Dumps returns a new map equal to the current frame merged with extra
// (extra wins on collision). Reserved keys in extra are renamed the same way
// Update renames them. Neither the stack nor extra is mutated.
func (s *ContextStack) Dumps(extra Fields) Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.top().merge(s.sanitizer.Sanitize(extra))
}

// Len returns the number of frames on the stack, always >= 1.
func (s *ContextStack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

// Reset replaces the stack with a single fresh base frame. It reclaims a
// stack that accumulated unexpected frames, and starts a logical unit of
// work that must not inherit caller context.
func (s *ContextStack) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = []Fields{s.baseFrame()}
}

// Snapshot deep-copies the full frame sequence. Later mutation of the live
// stack does not alter the snapshot, nor the other way around.
func (s *ContextStack) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make(Snapshot, len(s.frames))
	for i, frame := range s.frames {
		snap[i] = frame.Clone()
	}
	return snap
}

// Restore replaces the frame sequence with a deep copy of snap. An empty
// snapshot is rejected with ErrInvalidSnapshot and leaves the stack
// untouched.
func (s *ContextStack) Restore(snap Snapshot) error {
	if len(snap) == 0 {
		return ErrInvalidSnapshot
	}
	frames := make([]Fields, len(snap))
	for i, frame := range snap {
		frames[i] = frame.Clone()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = frames
	return nil
}

// String renders the frame sequence as JSON, for diagnostics only.
func (s *ContextStack) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(s.frames)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// top 返回当前栈顶帧。调用方必须已持有 s.mu。
func (s *ContextStack) top() Fields {
	return s.frames[len(s.frames)-1]
}
