package service

import "github.com/bwmarrin/discordgo"

const embedColor = 0xE5AE16

// baseEmbed is the shared look; callers fill title, description and fields
func baseEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{Type: discordgo.EmbedTypeRich, Color: embedColor}
}

func embedField(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value}
}

func message(data *discordgo.InteractionResponseData) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// ephemeral renders text visible only to the invoking user
func ephemeral(content string) *discordgo.InteractionResponse {
	return message(&discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}
