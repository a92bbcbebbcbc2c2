package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Hetgajjar1/MEP-Flow-Designer/internal/auth"
	"github.com/Hetgajjar1/MEP-Flow-Designer/internal/repo"
)

// Admin bot: grants and revokes premium by login.
//   /grant <login>
//   /revoke <login>

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

func main() {
	token := os.Getenv("TOKEN_BOT")
	peerStr := os.Getenv("ADMIN_PEER_ID")
	if token == "" || peerStr == "" {
		log.Fatal("TOKEN_BOT or ADMIN_PEER_ID missing")
	}
	adminID, _ := strconv.ParseInt(peerStr, 10, 64)

	db := auth.InitDB()
	defer db.Close()
	users := repo.NewPostgresUserDB(db)

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message != nil {
				handleMessage(token, adminID, users, u.Message)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

func handleMessage(token string, adminID int64, users *repo.PostgresUserRepository, msg *Message) {
	if msg.Chat.ID != adminID {
		sendMessage(token, msg.Chat.ID, "Not allowed")
		return
	}
	parts := strings.Fields(msg.Text)
	if len(parts) != 2 {
		sendMessage(token, msg.Chat.ID, "Usage: /grant <login> or /revoke <login>")
		return
	}
	command, login := parts[0], parts[1]

	userID, _, err := users.GetBylogin(context.Background(), login)
	if err != nil || userID == 0 {
		sendMessage(token, msg.Chat.ID, fmt.Sprintf("User %q not found", login))
		return
	}

	switch command {
	case "/grant":
		until := time.Now().Add(30 * 24 * time.Hour)
		if err := users.SetPremium(context.Background(), userID, until); err != nil {
			sendMessage(token, msg.Chat.ID, "DB error")
			return
		}
		sendMessage(token, msg.Chat.ID, fmt.Sprintf("✅ Premium for %s until %s", login, until.Format("2006-01-02")))
	case "/revoke":
		if err := users.ClearPremium(context.Background(), userID); err != nil {
			sendMessage(token, msg.Chat.ID, "DB error")
			return
		}
		sendMessage(token, msg.Chat.ID, fmt.Sprintf("❌ Premium revoked for %s", login))
	default:
		sendMessage(token, msg.Chat.ID, "Unknown command")
	}
}

func getUpdates(token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=20&offset=%d", token, offset)
	res, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

func sendMessage(token string, chatID int64, text string) {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token)
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	b, _ := json.Marshal(payload)
	_, _ = http.Post(url, "application/json", strings.NewReader(string(b)))
}
