/*
package ctxstack
options.go
核心定位
作为上下文栈的"配置中枢"：集中定义可配置项（基础帧静态字段、保留字前缀、
追加的保留字键、Reset 是否重新播种），提供默认值、合法性校验和命令行绑定，
为 New/Init 创建栈实例提供标准化参数。
设计思路与 log 库的 Options 一致：结构化封装 + NewOptions 默认值 +
Validate 校验 + AddFlags 绑定 pflag + String 序列化输出。
*/

package ctxstack

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/stephanpoetschner/ctx-stack/internal/json"
)

const (
	flagBaseFields     = "ctx.base-fields"     // 基础帧静态字段参数名
	flagReservedPrefix = "ctx.reserved-prefix" // 保留字键重命名前缀参数名
	flagReservedKeys   = "ctx.reserved-keys"   // 追加保留字键参数名
	flagReseedOnReset  = "ctx.reseed-on-reset" // Reset 时是否重新播种基础字段
)

// Options contains the configuration items of a context stack.
type Options struct {
	// BaseFields 是基础帧携带的进程级静态字段（如服务名、版本号），
	// 对栈上所有后续帧可见，Reset 后（默认）仍然保留。
	BaseFields map[string]string `json:"base-fields" mapstructure:"base-fields"`
	// ReservedPrefix 是保留字键被重命名时使用的前缀。
	ReservedPrefix string `json:"reserved-prefix" mapstructure:"reserved-prefix"`
	// ReservedKeys 在内置保留字集合之外追加后端自有的字段名。
	ReservedKeys []string `json:"reserved-keys" mapstructure:"reserved-keys"`
	// ReseedOnReset 控制 Reset 之后的基础帧：true 时重新带上 BaseFields，
	// false 时为空帧。
	ReseedOnReset bool `json:"reseed-on-reset" mapstructure:"reseed-on-reset"`
}

// NewOptions creates an Options object with default parameters.
func NewOptions() *Options {
	return &Options{
		BaseFields:     nil,
		ReservedPrefix: DefaultReservedPrefix,
		ReservedKeys:   nil,
		ReseedOnReset:  true,
	}
}

// Validate validates the options fields.
func (o *Options) Validate() []error {
	var errs []error

	if o.ReservedPrefix == "" {
		errs = append(errs, fmt.Errorf("reserved prefix must not be empty"))
	} else if strings.ContainsAny(o.ReservedPrefix, " =") {
		errs = append(errs, fmt.Errorf("not a valid reserved prefix: %q", o.ReservedPrefix))
	}

	for _, key := range o.ReservedKeys {
		if key == "" {
			errs = append(errs, fmt.Errorf("reserved keys must not contain empty names"))
			break
		}
	}

	return errs
}

// AddFlags adds flags for context stack to the specified FlagSet object.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringToStringVar(&o.BaseFields, flagBaseFields, o.BaseFields,
		"Static key=value fields seeded into the base context frame.")
	fs.StringVar(&o.ReservedPrefix, flagReservedPrefix, o.ReservedPrefix,
		"Prefix used to rename context keys that collide with reserved log record fields.")
	fs.StringSliceVar(&o.ReservedKeys, flagReservedKeys, o.ReservedKeys,
		"Additional reserved field names of the embedding log backend.")
	fs.BoolVar(&o.ReseedOnReset, flagReseedOnReset, o.ReseedOnReset,
		"Re-seed the base frame with the configured base fields on reset.")
}

// String 将 Options 序列化为 JSON 字符串，便于打印当前配置。
func (o *Options) String() string {
	data, _ := json.Marshal(o)
	return string(data)
}
