// package klogbridge
// logger.go
// 提供 klog 与上下文栈的集成：把 klog 各严重级别（INFO、WARNING、ERROR、
// FATAL）的输出重定向到 zap 实例，并在转发每一行时附带当前生效的上下文字段。
// 适用于嵌入了 k8s.io/klog 组件的项目——第三方组件打出的日志也会带上本请求
// 的 request_id 等环境上下文，而不是游离在结构化日志之外。
package klogbridge

import (
	"flag"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"k8s.io/klog"

	"github.com/stephanpoetschner/ctx-stack/ctxstack"
	"github.com/stephanpoetschner/ctx-stack/ctxstack/zapctx"
)

// Init redirects klog output to zapLogger, enriched with the fields of stack.
// A nil stack means the package default stack of ctxstack.
func Init(zapLogger *zap.Logger, stack *ctxstack.ContextStack) {
	if stack == nil {
		stack = ctxstack.Default()
	}
	fs := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(fs)
	defer klog.Flush()
	klog.SetOutputBySeverity("INFO", &severityWriter{logger: zapLogger, stack: stack, level: zapcore.InfoLevel})
	klog.SetOutputBySeverity("WARNING", &severityWriter{logger: zapLogger, stack: stack, level: zapcore.WarnLevel})
	klog.SetOutputBySeverity("ERROR", &severityWriter{logger: zapLogger, stack: stack, level: zapcore.ErrorLevel})
	klog.SetOutputBySeverity("FATAL", &severityWriter{logger: zapLogger, stack: stack, level: zapcore.FatalLevel})
	_ = fs.Set("skip_headers", "true")
	_ = fs.Set("logtostderr", "false")
}

// severityWriter 实现 io.Writer，把 klog 写出的一行日志转成对应级别的 zap
// 记录，并挂上栈的当前上下文字段。
type severityWriter struct {
	logger *zap.Logger
	stack  *ctxstack.ContextStack
	level  zapcore.Level
}

func (w *severityWriter) Write(p []byte) (n int, err error) {
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	if ce := w.logger.Check(w.level, msg); ce != nil {
		ce.Write(zapctx.Fields(w.stack, nil)...)
	}
	return len(p), nil
}
