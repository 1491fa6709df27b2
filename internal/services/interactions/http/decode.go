package http

import (
	"encoding/json"
	"math"

	perr "chrozone/internal/platform/errors"
	"chrozone/internal/platform/net/http/bind"
	"chrozone/internal/services/interactions/domain"

	"github.com/bwmarrin/discordgo"
)

// envelope is read first so a command without data reaches the responder instead of failing to decode
type envelope struct {
	ID   string                    `json:"id"`
	Type discordgo.InteractionType `json:"type"`
	Data json.RawMessage           `json:"data"`
}

// Decode converts a verified body into a domain interaction
func Decode(body []byte) (domain.Interaction, error) {
	env, err := bind.DecodeJSON[envelope](body)
	if err != nil {
		return domain.Interaction{}, err
	}
	in := domain.Interaction{ID: env.ID, Type: domain.InteractionType(env.Type)}

	switch env.Type {
	case discordgo.InteractionApplicationCommand, discordgo.InteractionApplicationCommandAutocomplete:
	default:
		return in, nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return in, nil
	}

	full, err := bind.DecodeJSON[discordgo.Interaction](body)
	if err != nil {
		return domain.Interaction{}, err
	}
	data, ok := full.Data.(discordgo.ApplicationCommandInteractionData)
	if !ok {
		return domain.Interaction{}, perr.JSONErrf("unexpected interaction data %T", full.Data)
	}
	opts, err := convertOptions(data.Options)
	if err != nil {
		return domain.Interaction{}, err
	}
	in.Command = &domain.Invocation{Name: data.Name, Options: opts}
	return in, nil
}

func convertOptions(src []*discordgo.ApplicationCommandInteractionDataOption) ([]domain.Option, error) {
	out := make([]domain.Option, 0, len(src))
	for _, o := range src {
		if o == nil {
			continue
		}
		v, err := convertValue(o)
		if err != nil {
			return nil, perr.WithField(err, o.Name)
		}
		out = append(out, domain.Option{Name: o.Name, Value: v})
	}
	return out, nil
}

// convertValue maps the wire value; kinds no command declares keep the zero tag
// and fail any argument table
func convertValue(o *discordgo.ApplicationCommandInteractionDataOption) (domain.OptionValue, error) {
	if o.Focused {
		s, ok := o.Value.(string)
		if !ok {
			return domain.OptionValue{}, perr.JSONErrf("focused option %s is not a string", o.Name)
		}
		return domain.Focused(s), nil
	}

	switch o.Type {
	case discordgo.ApplicationCommandOptionString:
		s, ok := o.Value.(string)
		if !ok {
			return domain.OptionValue{}, perr.JSONErrf("option %s is not a string", o.Name)
		}
		return domain.String(s), nil
	case discordgo.ApplicationCommandOptionInteger:
		f, ok := o.Value.(float64)
		if !ok || f != math.Trunc(f) {
			return domain.OptionValue{}, perr.JSONErrf("option %s is not an integer", o.Name)
		}
		return domain.Integer(saturate(f)), nil
	case discordgo.ApplicationCommandOptionBoolean:
		b, ok := o.Value.(bool)
		if !ok {
			return domain.OptionValue{}, perr.JSONErrf("option %s is not a boolean", o.Name)
		}
		return domain.Boolean(b), nil
	default:
		return domain.OptionValue{}, nil
	}
}

// saturate clamps to int64; every integer argument is narrower, so a clamped value is still out of range
func saturate(f float64) int64 {
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
