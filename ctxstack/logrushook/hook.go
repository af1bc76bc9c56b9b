/*
logrushook:hook.go
logrus 集成层。注册为 logrus.Hook 之后，每条日志在写出前会自动带上当前生效
的上下文字段：优先使用 entry.Context 上绑定的栈实例（WithContext 传递的
每任务栈），否则退回构造时配置的栈。条目上已显式写入的字段（WithField /
WithFields）永远不会被上下文覆盖。

	logger := logrus.New()
	logger.AddHook(logrushook.New(nil)) // nil 时使用包级默认栈
*/

package logrushook

import (
	"github.com/sirupsen/logrus"

	"github.com/stephanpoetschner/ctx-stack/ctxstack"
)

// Hook injects context-stack fields into every logrus entry.
type Hook struct {
	stack  *ctxstack.ContextStack
	levels []logrus.Level
}

// New creates a Hook backed by stack. A nil stack means the package default
// stack of ctxstack.
func New(stack *ctxstack.ContextStack) *Hook {
	return &Hook{
		stack:  stack,
		levels: logrus.AllLevels,
	}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook. It merges the current context into the entry
// data without clobbering fields the caller set explicitly.
func (h *Hook) Fire(entry *logrus.Entry) error {
	// 条目 ctx 上绑定的每任务栈优先，包括显式绑定了默认栈的情形；完全
	// 没有绑定时才改用 Hook 自己配置的栈，最后退回包级默认栈。
	stack, ok := ctxstack.StackFromContext(entry.Context)
	if !ok {
		if h.stack != nil {
			stack = h.stack
		} else {
			stack = ctxstack.Default()
		}
	}
	for key, value := range stack.Current() {
		if _, exists := entry.Data[key]; exists {
			continue
		}
		entry.Data[key] = value
	}
	return nil
}
