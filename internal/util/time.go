package util

import "time"

// NowISO UTC时间戳，带Z后缀，与文档存储中的时间字段格式一致
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
