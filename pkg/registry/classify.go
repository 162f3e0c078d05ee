package registry

import "reflect"

// UnknownType 是无法推断运行时类型名时的默认标签
const UnknownType = "Unknown"

// Classifier 根据实例推断类型标签
type Classifier func(instance any) string

// TypeNameClassifier 返回按运行时类型名推断标签的分类器。
// 指针会解引用到元素类型；nil、未命名的复合类型以及 int、string 等预声明类型返回 fallback。
func TypeNameClassifier(fallback string) Classifier {
	return func(instance any) string {
		t := reflect.TypeOf(instance)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Name() == "" || t.PkgPath() == "" {
			return fallback
		}
		return t.Name()
	}
}
