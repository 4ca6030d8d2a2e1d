// Package models holds the gorm row types backing the domain entities.
// Schema is owned by the goose migrations; these structs only describe the
// columns for query building.
package models

// UserModel is one row per verified member.
type UserModel struct {
	DiscordID     string `gorm:"column:discord_id;primaryKey"`
	Username      string `gorm:"column:username;not null"`
	Discriminator string `gorm:"column:discriminator;not null"`
}

func (UserModel) TableName() string { return "users" }

// TicketModel is the persisted routing metadata of an open ticket. The unique
// index on user_id enforces at-most-one open ticket per user at the storage
// layer.
type TicketModel struct {
	UUID      string `gorm:"column:uuid;primaryKey"`
	UserID    string `gorm:"column:user_id;not null;uniqueIndex:idx_tickets_user_id"`
	Category  string `gorm:"column:category;not null"`
	ChannelID string `gorm:"column:channel_id;not null"`
	GuildID   string `gorm:"column:guild_id;not null"`
}

func (TicketModel) TableName() string { return "tickets" }

// CheckoutModel is a recorded leave-of-absence. Duration is the verbatim
// dd/mm/yyyy string the member submitted.
type CheckoutModel struct {
	UserID   string `gorm:"column:user_id;primaryKey"`
	Reason   string `gorm:"column:reason;not null"`
	Duration string `gorm:"column:duration;not null"`
}

func (CheckoutModel) TableName() string { return "checkouts" }
