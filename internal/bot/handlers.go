package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	defaultLeaderLimit = 10
	defaultPickLimit   = 10
)

type Pool interface {
	Refresh(ctx context.Context) error
	GetStandings() (string, error)
	GetLeaderboard(limit int) (string, error)
	GetTeamRoster(teamName string) (string, error)
	WhoHas(playerName string) (string, error)
	GetMostPicked(limit int) (string, error)
	GetUniquePicks() (string, error)
	GetStandingsChart() ([]byte, error)
}

type Handler struct {
	pool Pool
}

func NewHandler(pool Pool) *Handler {
	return &Handler{pool: pool}
}

// HandleCommand answers one command. Most replies are Markdown text; /chart
// replies with a photo.
func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.Chattable {
	chatID := update.Message.Chat.ID
	msg := tgbotapi.NewMessage(chatID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to the playoff pool! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/standings - Pool standings\n/leaders [n] - Top scoring players\n/team <team> - View a team's roster and points\n/whohas <player> - See which teams picked a player\n/popular - Most picked players\n/unique - Players only one team picked\n/chart - Standings chart\n/refresh - Pull the latest stats"
	case "standings":
		h.reply(&msg, "fetching standings", h.pool.GetStandings)
	case "leaders":
		limit := parseLimit(args, defaultLeaderLimit)
		h.reply(&msg, "fetching leaders", func() (string, error) { return h.pool.GetLeaderboard(limit) })
	case "team":
		if args == "" {
			msg.Text = "Please provide a team name. Usage: /team <team name>"
			break
		}
		h.reply(&msg, "getting team roster", func() (string, error) { return h.pool.GetTeamRoster(args) })
	case "whohas":
		if args == "" {
			msg.Text = "Please provide a player name. Usage: /whohas <player name>"
			break
		}
		h.reply(&msg, "checking who has player", func() (string, error) { return h.pool.WhoHas(args) })
	case "popular":
		h.reply(&msg, "fetching most picked players", func() (string, error) { return h.pool.GetMostPicked(defaultPickLimit) })
	case "unique":
		h.reply(&msg, "fetching unique picks", h.pool.GetUniquePicks)
	case "chart":
		return h.handleChart(chatID, &msg)
	case "refresh":
		if err := h.pool.Refresh(ctx); err != nil {
			msg.Text = fmt.Sprintf("Error refreshing stats: %v", err)
		} else {
			h.reply(&msg, "fetching standings", h.pool.GetStandings)
		}
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) reply(msg *tgbotapi.MessageConfig, action string, fn func() (string, error)) {
	text, err := fn()
	if err != nil {
		msg.Text = fmt.Sprintf("Error %s: %v", action, err)
		return
	}
	msg.Text = text
}

func (h *Handler) handleChart(chatID int64, msg *tgbotapi.MessageConfig) tgbotapi.Chattable {
	data, err := h.pool.GetStandingsChart()
	if err != nil {
		msg.Text = fmt.Sprintf("Error rendering chart: %v", err)
		return *msg
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "standings.png", Bytes: data})
	photo.Caption = "Playoff pool standings"
	return photo
}

func parseLimit(args string, fallback int) int {
	n, err := strconv.Atoi(args)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
