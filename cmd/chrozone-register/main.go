// Command chrozone-register prints or uploads the slash command definitions
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"chrozone/internal/platform/config"
	"chrozone/internal/platform/logger"
	"chrozone/internal/services/interactions/service"

	"github.com/bwmarrin/discordgo"
)

// overwriter is the slice of the REST session used here
type overwriter interface {
	ApplicationCommandBulkOverwrite(appID, guildID string, cmds []*discordgo.ApplicationCommand, opts ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

var newSession = func(token string) (overwriter, error) {
	return discordgo.New("Bot " + token)
}

func main() {
	dry := flag.Bool("print", false, "print the definitions instead of uploading them")
	flag.Parse()

	if err := run(config.New().Prefix("CHROZONE_"), *dry, os.Stdout); err != nil {
		logger.Get().Fatal().Err(err).Msg("register failed")
	}
}

// run uploads when APP_ID and TOKEN are both set, otherwise prints the JSON payload
func run(cfg config.Conf, dry bool, out io.Writer) error {
	cmds := service.Commands()
	appID := cfg.MayString("APP_ID", "")
	token := cfg.MayString("TOKEN", "")

	if dry || appID == "" || token == "" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cmds)
	}

	s, err := newSession(token)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	guild := cfg.MayString("GUILD_ID", "")
	created, err := s.ApplicationCommandBulkOverwrite(appID, guild, cmds)
	if err != nil {
		return fmt.Errorf("bulk overwrite: %w", err)
	}
	logger.Named("register").Info().
		Str("app_id", appID).
		Str("guild_id", guild).
		Int("commands", len(created)).
		Msg("commands registered")
	return nil
}
