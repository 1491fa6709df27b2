package service

import (
	"testing"

	"chrozone/internal/services/interactions/domain"

	"github.com/bwmarrin/discordgo"
)

var optionTags = map[discordgo.ApplicationCommandOptionType]domain.Tag{
	discordgo.ApplicationCommandOptionString:  domain.TagString,
	discordgo.ApplicationCommandOptionInteger: domain.TagInteger,
	discordgo.ApplicationCommandOptionBoolean: domain.TagBoolean,
}

// every registered option must be accepted by the table that parses it
func TestCommands_MatchArgumentTables(t *testing.T) {
	tables := map[string]map[string]domain.Tag{
		"epoch": {},
		"help":  {},
		"info":  {},
	}
	for name, f := range epochTable {
		tables["epoch"][name] = f.tag
	}
	for name, f := range helpTable {
		tables["help"][name] = f.tag
	}

	cmds := Commands()
	if len(cmds) != len(commands) {
		t.Fatalf("%d definitions for %d handlers", len(cmds), len(commands))
	}
	for _, c := range cmds {
		if _, ok := commands[c.Name]; !ok {
			t.Fatalf("definition %q has no handler", c.Name)
		}
		table := tables[c.Name]
		for _, o := range c.Options {
			tag, ok := table[o.Name]
			if !ok {
				t.Fatalf("/%s option %q is not parsed", c.Name, o.Name)
			}
			if optionTags[o.Type] != tag {
				t.Fatalf("/%s option %q type %v vs tag %v", c.Name, o.Name, o.Type, tag)
			}
		}
	}
}

func TestCommands_EpochShape(t *testing.T) {
	epoch := Commands()[0]
	if epoch.Name != "epoch" || len(epoch.Options) != 8 {
		t.Fatalf("epoch = %+v", epoch)
	}
	tz, year, month := epoch.Options[0], epoch.Options[1], epoch.Options[2]
	if !tz.Required || !tz.Autocomplete || !year.Required {
		t.Fatalf("required/autocomplete flags wrong")
	}
	if len(month.Choices) != 12 || month.Choices[11].Value != 12 || *month.MinValue != 1 || month.MaxValue != 12 {
		t.Fatalf("month = %+v", month)
	}
	if sec := epoch.Options[6]; sec.Name != "second" || sec.MaxValue != 60 {
		t.Fatalf("second = %+v", sec)
	}
}
