package usecase

import "time"

// テストで固定できるように時刻は注入する。
type Clock interface {
	Now() time.Time
}

// 注文番号の生成。実体はmainでuuidを注入する。
type IDGenerator interface {
	NewID() string
}
