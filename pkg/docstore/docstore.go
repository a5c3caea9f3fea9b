package docstore

import "errors"

// ErrNotFound 按ID寻址的文档不存在
var ErrNotFound = errors.New("document not found")

// Document 文档存储中的一条记录，读取时会带上 "id" 字段
type Document map[string]any

// Store 集合级文档存储契约。Query 只支持等值过滤（AND 组合），
// Update 是部分合并更新而非整体覆盖。
type Store interface {
	Get(collection, id string) (Document, error)
	Query(collection string, filter map[string]any) ([]Document, error)
	QueryOrdered(collection string, filter map[string]any, orderField string) ([]Document, error)
	Create(collection string, fields Document) (string, error)
	Update(collection, id string, partial Document) error
	Delete(collection, id string) error
}

// String 读取字符串字段，缺失或类型不符时返回空串
func (d Document) String(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Int 读取整数字段。JSON反序列化会把数字还原成float64，这里统一转换
func (d Document) Int(key string) int {
	switch v := d[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Bool 读取布尔字段，缺失时返回 false
func (d Document) Bool(key string) bool {
	if v, ok := d[key].(bool); ok {
		return v
	}
	return false
}

// Has 字段是否存在
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Clone 浅拷贝，避免调用方和存储共享同一个map
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
