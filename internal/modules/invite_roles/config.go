package invite_roles

import "github.com/disgoorg/snowflake/v2"

// Config holds the invite roles module configuration.
type Config struct {
	GuildID        snowflake.ID `env:"DISCORD_GUILD_ID,notEmpty"`
	DatabaseURL    string       `env:"DATABASE_URL,notEmpty"`
	RoleStoreTable string       `env:"ROLE_STORE_TABLE" envDefault:"discord_invites"`
}
