/*
sets.String 是一个基于 map[string]struct{} 的字符串集合，只保留了本库需要的
少量操作：构造、插入、成员检测和有序遍历。保留字键的查找发生在每一次写路径
（Update/Dumps）上，用 map 做成员检测比遍历切片便宜得多。
*/

package sets

import "sort"

// Empty is the value type of the set map; an empty struct occupies no memory.
type Empty struct{}

// String is a set of strings, implemented via map[string]struct{} for minimal
// memory consumption.
type String map[string]Empty

// NewString creates a String from a list of values.
func NewString(items ...string) String {
	ss := String{}
	ss.Insert(items...)
	return ss
}

// Insert adds items to the set.
func (s String) Insert(items ...string) String {
	for _, item := range items {
		s[item] = Empty{}
	}
	return s
}

// Has returns true if and only if item is contained in the set.
func (s String) Has(item string) bool {
	_, contained := s[item]
	return contained
}

// List returns the contents as a sorted string slice.
func (s String) List() []string {
	res := make([]string, 0, len(s))
	for key := range s {
		res = append(res, key)
	}
	sort.Strings(res)
	return res
}

// Len returns the size of the set.
func (s String) Len() int {
	return len(s)
}
