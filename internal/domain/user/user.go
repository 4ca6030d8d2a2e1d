// Package user contains the verified member record and its storage contract.
package user

import "fmt"

// User is one row per verified member. Created on successful verification,
// deleted when the member leaves the guild.
type User struct {
	discordID     string
	username      string
	discriminator string
}

func NewUser(discordID, username, discriminator string) (*User, error) {
	if discordID == "" {
		return nil, fmt.Errorf("discord id is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if discriminator == "" {
		// Migrated accounts carry the zero discriminator.
		discriminator = "0"
	}

	return &User{
		discordID:     discordID,
		username:      username,
		discriminator: discriminator,
	}, nil
}

func (u *User) DiscordID() string     { return u.discordID }
func (u *User) Username() string      { return u.username }
func (u *User) Discriminator() string { return u.discriminator }
