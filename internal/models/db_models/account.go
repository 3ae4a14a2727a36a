package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string
	// ProExpiresAt is the unix second until which the account holds a paid
	// day pass. Zero means never purchased.
	ProExpiresAt int64
	Transactions []Transaction
}
