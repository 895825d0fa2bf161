package model

import "time"

// Card — платёжная карта. CardNumber и CVV хранятся как записи fieldcrypt
// ("hex(iv):hex(ct)"), никогда открытым текстом.
type Card struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CardHolderName string  `gorm:"not null" json:"card_holder_name"`
	CardNumber     string  `gorm:"not null" json:"-"`
	ExpiryDate     string  `gorm:"not null" json:"expiry_date"`
	CVV            string  `gorm:"column:cvv;not null" json:"-"`
	CardType       string  `gorm:"not null" json:"card_type"`
	BankName       *string `json:"bank_name,omitempty"`
	CardColor      string  `json:"card_color"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
