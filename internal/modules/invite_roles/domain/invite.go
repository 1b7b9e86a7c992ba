package domain

import "github.com/disgoorg/snowflake/v2"

// Invite is an active invite link of a guild with its cumulative use count.
type Invite struct {
	Code    string
	Uses    int
	GuildID snowflake.ID
}

// Snapshot is the complete set of a guild's active invites at one point in time.
// A Snapshot is immutable once created and keeps the order the invites were fetched in.
type Snapshot struct {
	guildID snowflake.ID
	invites []Invite
	byCode  map[string]int
}

// NewSnapshot creates a Snapshot for the given guild.
// If a code appears more than once, the first occurrence wins.
func NewSnapshot(guildID snowflake.ID, invites ...Invite) Snapshot {
	s := Snapshot{
		guildID: guildID,
		invites: make([]Invite, 0, len(invites)),
		byCode:  make(map[string]int, len(invites)),
	}

	for _, inv := range invites {
		if _, dup := s.byCode[inv.Code]; dup {
			continue
		}
		inv.GuildID = guildID
		s.byCode[inv.Code] = len(s.invites)
		s.invites = append(s.invites, inv)
	}

	return s
}

// GuildID returns the guild this snapshot belongs to.
func (s Snapshot) GuildID() snowflake.ID {
	return s.guildID
}

// Len returns the number of invites in the snapshot.
func (s Snapshot) Len() int {
	return len(s.invites)
}

// Get returns the invite with the given code.
func (s Snapshot) Get(code string) (Invite, bool) {
	i, ok := s.byCode[code]
	if !ok {
		return Invite{}, false
	}
	return s.invites[i], true
}

// Uses returns the use count of the given code, or 0 if the code is not in the snapshot.
func (s Snapshot) Uses(code string) int {
	inv, ok := s.Get(code)
	if !ok {
		return 0
	}
	return inv.Uses
}

// Invites returns a copy of the invites in fetch order.
func (s Snapshot) Invites() []Invite {
	result := make([]Invite, len(s.invites))
	copy(result, s.invites)
	return result
}

// Equal reports whether both snapshots hold the same invites for the same guild.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.guildID != other.guildID || len(s.invites) != len(other.invites) {
		return false
	}
	for i, inv := range s.invites {
		if other.invites[i] != inv {
			return false
		}
	}
	return true
}

// FindUsedInvite returns the invite in current whose use count is strictly greater than
// its use count in previous. A nil previous, or a code missing from it, counts as 0 uses.
//
// When several invites increased (concurrent joins between two fetches) the first one in
// fetch order is returned. Snapshots of different guilds are never compared.
func FindUsedInvite(previous *Snapshot, current Snapshot) (Invite, bool) {
	if previous != nil && previous.guildID != current.guildID {
		return Invite{}, false
	}

	for _, inv := range current.invites {
		baseline := 0
		if previous != nil {
			baseline = previous.Uses(inv.Code)
		}
		if inv.Uses > baseline {
			return inv, true
		}
	}

	return Invite{}, false
}
