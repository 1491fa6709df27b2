package service

import (
	"context"

	"chrozone/internal/services/interactions/domain"

	"github.com/bwmarrin/discordgo"
)

const (
	installURL = "https://discord.com/oauth2/authorize?client_id=1008989318901137459"
	issuesURL  = "https://github.com/BastiDood/chrozone/issues/new"
	forkURL    = "https://github.com/BastiDood/chrozone/fork"
)

func linkButton(emoji, label, url string) discordgo.Button {
	return discordgo.Button{
		Style: discordgo.LinkButton,
		Emoji: &discordgo.ComponentEmoji{Name: emoji},
		Label: label,
		URL:   url,
	}
}

// info is public, unlike the other command replies
func (s *Svc) info(_ context.Context, _ *domain.Invocation) (*discordgo.InteractionResponse, error) {
	e := baseEmbed()
	e.Description = "Chrozone is an [open-source](https://github.com/BastiDood/chrozone) bot written in [Go](https://go.dev/) by [`@BastiDood`](https://github.com/BastiDood) for time zone utilities and timestamp formatting."
	return message(&discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{e},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				linkButton("🤖", "Install App", installURL),
				linkButton("🐛", "Report a Bug", issuesURL),
				linkButton("💻", "Fork the Code", forkURL),
			}},
		},
	}), nil
}
