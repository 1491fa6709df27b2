package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Responder turns an authenticated interaction into the platform response
// Command failures are rendered into the response; Respond never returns nil
type Responder interface {
	Respond(ctx context.Context, in Interaction) *discordgo.InteractionResponse
}

// Catalog is the timezone identifier set the responder resolves and suggests from
type Catalog interface {
	Lookup(name string) (*time.Location, bool)
	Names() []string
}
