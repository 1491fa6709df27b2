// Package service dispatches authenticated interactions to command handlers
package service

import (
	"context"

	"chrozone/internal/platform/logger"
	"chrozone/internal/services/interactions/domain"

	"github.com/bwmarrin/discordgo"
)

// Service is the public service port
type Service interface{ domain.Responder }

// Options control service behavior
type Options struct {
	// Catalog is required
	Catalog domain.Catalog

	// Limit caps autocomplete suggestions; 0 or anything above MaxChoices means MaxChoices
	Limit int
}

type handler func(*Svc, context.Context, *domain.Invocation) (*discordgo.InteractionResponse, error)

var commands = map[string]handler{
	"epoch": (*Svc).epoch,
	"help":  (*Svc).help,
	"info":  (*Svc).info,
}

// Svc implements the service port
type Svc struct {
	catalog domain.Catalog
	limit   int
}

// New constructs the service
func New(opt Options) *Svc {
	if opt.Catalog == nil {
		panic("interactions.Service requires a non nil Catalog")
	}
	limit := opt.Limit
	if limit <= 0 || limit > MaxChoices {
		limit = MaxChoices
	}
	return &Svc{catalog: opt.Catalog, limit: limit}
}

// Respond never fails; command errors become an ephemeral message
func (s *Svc) Respond(ctx context.Context, in domain.Interaction) *discordgo.InteractionResponse {
	name := ""
	if in.Command != nil {
		name = in.Command.Name
	}
	ctx = logger.WithInteraction(ctx, in.ID, name)

	resp, err := s.respond(ctx, in)
	if err != nil {
		kind := domain.KindOf(err)
		ev := logger.C(ctx).Warn()
		if kind == domain.Fatal {
			ev = logger.C(ctx).Error()
		}
		ev.Err(err).Uint8("type", uint8(in.Type)).Msg("interaction failed")
		return ephemeral(kind.Error())
	}
	return resp
}

func (s *Svc) respond(ctx context.Context, in domain.Interaction) (*discordgo.InteractionResponse, error) {
	switch in.Type {
	case domain.TypePing:
		logger.C(ctx).Info().Msg("received ping")
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}, nil
	case domain.TypeCommand:
		if in.Command == nil {
			return nil, domain.MissingPayload
		}
		h, ok := commands[in.Command.Name]
		if !ok {
			return nil, domain.UnknownCommand
		}
		logger.C(ctx).Info().Int("options", len(in.Command.Options)).Msg("received command")
		return h(s, ctx, in.Command)
	case domain.TypeAutocomplete:
		if in.Command == nil {
			return nil, domain.MissingPayload
		}
		return s.autocomplete(ctx, in.Command)
	default:
		return nil, domain.UnsupportedInteractionType
	}
}
