package service

import "github.com/bwmarrin/discordgo"

func bound(v float64) *float64 { return &v }

func intOption(name, desc string, lo, hi float64) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: desc,
		MinValue:    bound(lo),
		MaxValue:    hi,
	}
}

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Commands returns the slash command definitions this service answers
func Commands() []*discordgo.ApplicationCommand {
	month := intOption("month", "The month of the year.", 1, 12)
	for i, name := range months {
		month.Choices = append(month.Choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: i + 1})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "epoch",
			Description: "Get the ISO-8601 timestamp (in seconds) for some date and timezone.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "timezone",
					Description:  "The timezone from the IANA Time Zone Database.",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "year",
					Description: "The year of the date.",
					Required:    true,
				},
				month,
				intOption("day", "The day of the month.", 1, 31),
				intOption("hour", "The hour of the day (24-hour format).", 0, 23),
				intOption("minute", "The minute of the hour.", 0, 59),
				intOption("second", "The second of the minute.", 0, 60),
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "preview",
					Description: "Enables preview mode for all timestamp formatting options. Enabled by default.",
				},
			},
		},
		{
			Name:        "help",
			Description: "Summon the help menu.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "command",
					Description: "Get help for a specific command.",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "/epoch", Value: "epoch"},
						{Name: "/help", Value: "help"},
					},
				},
			},
		},
		{
			Name:        "info",
			Description: "Show project details and useful links.",
		},
	}
}
