/*
// Copyright 2026 Stephan Poetschner. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.
ctxstack:ctxstack.go
结构化日志的上下文传播库。调用方把键值元数据（request_id、user_id、操作名
等）挂到一个逻辑执行作用域上，嵌套作用域自动继承外层元数据，在打日志的时刻
取出合并后的全部字段交给日志后端。

使用方式（包级默认栈）：

	ctx, done := ctxstack.Update(ctxstack.Fields{"request_id": "req-123"})
	defer done()
	logger.Info("收到请求", zapctx.Fields(ctxstack.Default(), nil)...)
	// 或直接取合并结果：
	fields := ctxstack.Dumps(ctxstack.Fields{"user_id": "u1"})

跨执行单元交接（请求上下文移交给后台任务）：

	snap := ctxstack.Save()       // 发起方保存
	// ……后台任务内：
	ctxstack.Reset()              // 不继承任务自身的环境上下文
	_ = ctxstack.Restore(snap)    // 换成移交过来的上下文
	defer ctxstack.Reset()        // 结束时清场，避免污染后续工作

并发任务需要隔离时，为每个工作单元创建独立实例并通过 context 传递：

	stack := ctxstack.New(ctxstack.NewOptions())
	ctx = stack.WithContext(ctx)
	// 调用链深处：
	ctxstack.FromContext(ctx).Update(...)
*/
package ctxstack

var (
	std     *ContextStack
	options *Options
)

// nolint: gochecknoinits // need to init a default context stack
func init() {
	Init(NewOptions())
}

// Init replaces the package default stack with a fresh one built from opts.
// 进程启动时调用一次即可；之后所有包级函数都作用于这个默认栈。
func Init(opts *Options) {
	if opts == nil {
		opts = NewOptions()
	}
	options = opts
	std = New(opts)
}

// Default returns the package default stack.
func Default() *ContextStack {
	return std
}

// GetOptions returns the options the default stack was built from.
func GetOptions() *Options {
	return options
}

// Update pushes sanitized vals onto the default stack. See ContextStack.Update.
func Update(vals Fields) (Fields, ReleaseFunc) {
	return std.Update(vals)
}

// Dumps returns the default stack's current context merged with extra.
func Dumps(extra Fields) Fields {
	return std.Dumps(extra)
}

// Push appends a merged frame to the default stack. See ContextStack.Push.
func Push(vals Fields) Fields {
	return std.Push(vals)
}

// Pop removes the default stack's top frame. See ContextStack.Pop.
func Pop() Fields {
	return std.Pop()
}

// Current returns a copy of the default stack's top frame.
func Current() Fields {
	return std.Current()
}

// Len returns the default stack's frame count.
func Len() int {
	return std.Len()
}

// Reset replaces the default stack's frames with a single fresh base frame.
func Reset() {
	std.Reset()
}

// Save deep-copies the default stack's frame sequence for later restoration.
func Save() Snapshot {
	return std.Snapshot()
}

// Restore replaces the default stack's frames with a deep copy of snap.
func Restore(snap Snapshot) error {
	return std.Restore(snap)
}
