package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"chrozone/internal/core/tzdb"
	"chrozone/internal/platform/logger"
	"chrozone/internal/platform/net/http/bind"
	"chrozone/internal/services/interactions/domain"

	"github.com/bwmarrin/discordgo"
)

// epochInput tracks which required options were seen
type epochInput struct {
	cat     domain.Catalog
	args    domain.EpochArgs
	loc     *time.Location
	hasYear bool
}

var (
	yearField   = intField(func(in *epochInput) *int32 { return &in.args.Year })
	secondField = intField(func(in *epochInput) *int8 { return &in.args.Second })
)

var epochTable = argTable[epochInput]{
	"timezone": {tag: domain.TagString, set: func(in *epochInput, v domain.OptionValue) error {
		loc, ok := in.cat.Lookup(v.Str)
		if !ok {
			return domain.UnknownTimezone
		}
		in.args.Timezone, in.loc = v.Str, loc
		return nil
	}},
	"year": {tag: domain.TagInteger, set: func(in *epochInput, v domain.OptionValue) error {
		if err := yearField.set(in, v); err != nil {
			return err
		}
		in.hasYear = true
		return nil
	}},
	"month":   intField(func(in *epochInput) *int8 { return &in.args.Month }),
	"day":     intField(func(in *epochInput) *int8 { return &in.args.Day }),
	"hour":    intField(func(in *epochInput) *int8 { return &in.args.Hour }),
	"minute":  intField(func(in *epochInput) *int8 { return &in.args.Minute }),
	"second":  secondField,
	"secs":    secondField,
	"preview": boolField(func(in *epochInput) *bool { return &in.args.Preview }),
}

// ResolveEpoch binds options into EpochArgs and the timezone they name
func ResolveEpoch(cat domain.Catalog, opts []domain.Option) (domain.EpochArgs, *time.Location, error) {
	in := epochInput{cat: cat, args: domain.DefaultEpochArgs()}
	if err := epochTable.apply(&in, opts); err != nil {
		return domain.EpochArgs{}, nil, err
	}
	if in.loc == nil || !in.hasYear {
		return domain.EpochArgs{}, nil, domain.MissingRequired
	}
	if err := bind.Validate(in.args); err != nil {
		return domain.EpochArgs{}, nil, fmt.Errorf("%w: %w", domain.InvalidArgs, err)
	}
	return in.args, in.loc, nil
}

// Timestamp converts resolved arguments to unix seconds
func Timestamp(loc *time.Location, a domain.EpochArgs) (int64, error) {
	ts, err := tzdb.Resolve(loc, tzdb.Civil{
		Year:   int(a.Year),
		Month:  int(a.Month),
		Day:    int(a.Day),
		Hour:   int(a.Hour),
		Minute: int(a.Minute),
		Second: int(a.Second),
	})
	switch {
	case err == nil:
		return ts, nil
	case errors.Is(err, tzdb.ErrAmbiguous):
		return 0, fmt.Errorf("%w: %w", domain.AmbiguousTime, err)
	default:
		return 0, fmt.Errorf("%w: %w", domain.InvalidArgs, err)
	}
}

var previewStyles = []struct {
	label string
	style byte
}{
	{"Short Time", 't'},
	{"Long Time", 'T'},
	{"Short Date", 'd'},
	{"Long Date", 'D'},
	{"Short Full Date + Time", 'f'},
	{"Long Full Date + Time", 'F'},
	{"Relative", 'R'},
}

func (s *Svc) epoch(ctx context.Context, inv *domain.Invocation) (*discordgo.InteractionResponse, error) {
	args, loc, err := ResolveEpoch(s.catalog, inv.Options)
	if err != nil {
		return nil, err
	}
	ts, err := Timestamp(loc, args)
	if err != nil {
		return nil, err
	}
	logger.C(ctx).Debug().Str("timezone", args.Timezone).Int64("timestamp", ts).Msg("epoch resolved")

	if !args.Preview {
		return message(&discordgo.InteractionResponseData{
			Content: strconv.FormatInt(ts, 10),
			Flags:   discordgo.MessageFlagsEphemeral,
		}), nil
	}

	e := baseEmbed()
	e.Title = "Timestamp Preview"
	e.Description = "Here are the possible ways to format your timestamp."
	for _, p := range previewStyles {
		format := fmt.Sprintf("<t:%d:%c>", ts, p.style)
		e.Fields = append(e.Fields, embedField(
			fmt.Sprintf("%s (%s)", p.label, format),
			"```"+format+"```",
		))
	}
	return message(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{e},
		Flags:  discordgo.MessageFlagsEphemeral,
	}), nil
}
