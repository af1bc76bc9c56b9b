// Copyright 2026 Stephan Poetschner. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.
// ctxstack:frame.go
// 定义上下文帧的数据类型 Fields 及其深拷贝实现。
// 栈中的每一帧都必须是完全独立的副本：调用方在 Push 之后继续修改自己传入的
// map（或修改 Dumps 返回的结果），都不允许影响栈内已有的任何一帧。
// 这里通过结构化的递归克隆（而非引用复制）来保证这种值语义。

package ctxstack

import "reflect"

// Fields is a mapping from string keys to loggable values. It is the shape of
// everything this package consumes and produces: override sets passed to Push
// and Update, frames held by the stack, and the merged result of Dumps.
type Fields map[string]interface{}

// Clone returns a deep copy of f. Nested maps, slices and pointers are
// cloned structurally; scalar values are copied by value.
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	out := make(Fields, len(f))
	for key, value := range f {
		out[key] = deepCopyValue(value)
	}
	return out
}

// merge returns a new Fields equal to f overlaid with vals (vals win on key
// collision). Both inputs are left untouched; the result shares no mutable
// substructure with either of them.
//
// 合并是扁平的“后写覆盖”：值被整体替换，不做嵌套结构的递归合并。
func (f Fields) merge(vals Fields) Fields {
	out := f.Clone()
	for key, value := range vals {
		out[key] = deepCopyValue(value)
	}
	return out
}

// deepCopyValue 对任意日志值做结构化克隆。
// 标量（字符串、数字、布尔）在 Go 里本身就是值拷贝，直接返回即可；
// map/slice/数组/指针则逐层递归复制，切断与原值的所有共享。
func deepCopyValue(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	cloned := deepCopyReflect(reflect.ValueOf(value))
	if !cloned.IsValid() {
		return nil
	}
	return cloned.Interface()
}

func deepCopyReflect(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		clone := reflect.New(v.Type().Elem())
		clone.Elem().Set(deepCopyReflect(v.Elem()))
		return clone
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		elem := deepCopyReflect(v.Elem())
		if !elem.IsValid() {
			return reflect.Zero(v.Type())
		}
		return elem.Convert(v.Type())
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		clone := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			clone.SetMapIndex(iter.Key(), deepCopyReflect(iter.Value()))
		}
		return clone
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		clone := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			clone.Index(i).Set(deepCopyReflect(v.Index(i)))
		}
		return clone
	case reflect.Array:
		clone := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			clone.Index(i).Set(deepCopyReflect(v.Index(i)))
		}
		return clone
	default:
		// 结构体和标量直接按值返回：经过 interface{} 传进来的结构体本身就
		// 已经是一份值拷贝，逐字段重建反而会把无法 Set 的未导出字段清零
		// （典型如 time.Time）。
		return v
	}
}
