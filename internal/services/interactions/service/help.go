package service

import (
	"context"

	"chrozone/internal/services/interactions/domain"

	"github.com/bwmarrin/discordgo"
)

type helpInput struct{ topic string }

var helpTable = argTable[helpInput]{
	"command": stringField(func(in *helpInput) *string { return &in.topic }),
}

var helpTopics = map[string]func() *discordgo.MessageEmbed{
	"":      helpDefault,
	"epoch": helpEpoch,
	"help":  helpHelp,
}

func (s *Svc) help(_ context.Context, inv *domain.Invocation) (*discordgo.InteractionResponse, error) {
	var in helpInput
	if err := helpTable.apply(&in, inv.Options); err != nil {
		return nil, err
	}
	topic, ok := helpTopics[in.topic]
	if !ok {
		return nil, domain.UnknownCommand
	}
	return message(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{topic()},
		Flags:  discordgo.MessageFlagsEphemeral,
	}), nil
}

func helpDefault() *discordgo.MessageEmbed {
	e := baseEmbed()
	e.Title = "Chrozone Help"
	e.Description = "List of supported commands and their arguments."
	e.Fields = []*discordgo.MessageEmbedField{
		embedField("`/help`", "Summon this help menu."),
		embedField("`/info`", "Show project details and useful links."),
		embedField(
			"`/epoch timezone year [month] [day] [hour] [minute] [second] [preview]`",
			"Get the ISO-8601 timestamp (in seconds) for some date and timezone.",
		),
	}
	return e
}

func helpEpoch() *discordgo.MessageEmbed {
	e := baseEmbed()
	e.Title = "`/epoch` Command"
	e.Description = "Generates the ISO-8601 timestamp at a given date and timezone."
	e.Fields = []*discordgo.MessageEmbedField{
		embedField("`timezone`", "Required. Must be an officially registered timezone from the IANA Time Zone Database. For convenience, dynamic autocompletions are enabled."),
		embedField("`year`", "Required. Must be a reasonably valid year."),
		embedField("`month`", "Must be a value from `1` (default) to `12`, where `1` is January and `12` is December."),
		embedField("`day`", "Must be a value from `1` (default) to `31`. Note that the days `29` to `31` are only invalid for certain months."),
		embedField("`hour`", "Must be a value from `0` (default) to `23` (i.e. 24-hour format), where `0` is `12am` and `23` is `11pm`."),
		embedField("`minute`", "Must be a value from `0` (default) to `59`."),
		embedField("`second`", "Must be a value from `0` (default) to `60`. The 60th second accounts for possible leap seconds."),
		embedField("`preview`", "Enables preview mode for all timestamp formatting options. Defaults to `true`."),
	}
	return e
}

func helpHelp() *discordgo.MessageEmbed {
	e := baseEmbed()
	e.Title = "`/help` Command"
	e.Description = "Provides extra details for specific commands."
	e.Fields = []*discordgo.MessageEmbedField{
		embedField("`/epoch`", "Shows extra information for each argument of the `/epoch` command."),
		embedField("`/help`", "Provides extra details on how to use the `/help` command."),
	}
	return e
}
