package db_models

// QuotaCounter is the server-owned daily generation counter, keyed by
// identity and UTC calendar day. The quota repository is the only writer;
// rows for past days are simply never read again.
type QuotaCounter struct {
	UserID    string `gorm:"primaryKey"`
	Day       string `gorm:"primaryKey;size:10"` // YYYY-MM-DD, UTC
	Used      int
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}
