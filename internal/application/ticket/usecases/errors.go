package usecases

import "errors"

// Sentinel errors the interaction layer maps to user-facing replies.
var (
	// ErrStaffMember rejects ticket creation by members of the staff team.
	ErrStaffMember = errors.New("staff members cannot open tickets")
	// ErrNotStaff rejects control-panel actions from non-staff members.
	ErrNotStaff = errors.New("action requires the staff role")
	// ErrInvalidUserID covers both non-numeric input and ids that resolve to
	// no guild member.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrBotAccount rejects forwarding a ticket to a bot.
	ErrBotAccount = errors.New("cannot forward to a bot account")
	// ErrMemberOffline rejects forwarding a ticket to an offline member.
	ErrMemberOffline = errors.New("member is offline")
	// ErrAlreadyStaff rejects forwarding a ticket to a staff member.
	ErrAlreadyStaff = errors.New("member already holds the staff role")
	// ErrInvalidCategory rejects selection values outside the fixed set.
	ErrInvalidCategory = errors.New("invalid ticket category")
	// ErrNameTooLong rejects rename input over the channel name limit.
	ErrNameTooLong = errors.New("channel name too long")
)
