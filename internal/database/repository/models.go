package repository

// DefaultBanReason is stored when a ban is created without a reason.
const DefaultBanReason = "No reason provided"

// Player represents a players row.
type Player struct {
	ID        int64
	Username  string
	IPAddress string
	CreatedAt string
	Online    bool
}

// Status is the display form of Online.
func (p Player) Status() string {
	if p.Online {
		return "Online"
	}
	return "Offline"
}

// Ban represents a bans row.
type Ban struct {
	ID        int64
	IPAddress string
	BannedAt  string
	Reason    string
}

// Score represents a scores row joined with its owning player.
type Score struct {
	ID         int64
	PlayerID   int64
	PlayerName string
	Score      int64
}
