package service

import (
	"context"

	"chrozone/internal/core/rank"
	"chrozone/internal/platform/logger"
	pstrings "chrozone/internal/platform/strings"
	"chrozone/internal/services/interactions/domain"

	"github.com/bwmarrin/discordgo"
)

// MaxChoices is the platform cap on autocomplete suggestions
const MaxChoices = 25

// focusedTimezone returns the partially typed timezone, if that is the option being edited
func focusedTimezone(opts []domain.Option) (string, bool) {
	for _, o := range opts {
		if o.Name == "timezone" && o.Value.Tag == domain.TagFocusedString {
			return o.Value.Str, true
		}
	}
	return "", false
}

// Suggest ranks catalog names against query and returns at most limit choices
func Suggest(cat domain.Catalog, query string, limit int) []*discordgo.ApplicationCommandOptionChoice {
	names := cat.Names()
	k := min(limit, MaxChoices, len(names))
	if k <= 0 {
		return []*discordgo.ApplicationCommandOptionChoice{}
	}
	var top []rank.Scored
	if k < len(names) {
		top = rank.Rank(query, names, k)
	} else {
		top = rank.Sorted(query, names)
	}
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(top))
	for _, m := range top {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{
			Name:  pstrings.Humanize(m.Text),
			Value: m.Text,
		})
	}
	return out
}

func (s *Svc) autocomplete(ctx context.Context, inv *domain.Invocation) (*discordgo.InteractionResponse, error) {
	if inv.Name != "epoch" {
		return nil, domain.UnknownCommand
	}
	choices := []*discordgo.ApplicationCommandOptionChoice{}
	if query, ok := focusedTimezone(inv.Options); ok {
		choices = Suggest(s.catalog, query, s.limit)
	}
	logger.C(ctx).Info().Int("choices", len(choices)).Msg("generated autocompletions")
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}, nil
}
