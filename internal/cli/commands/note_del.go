package commands

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"NotesBro/internal/cli/api"
	"NotesBro/internal/cli/auth"
	"NotesBro/internal/config"
)

type noteDelCmd struct{}

func (noteDelCmd) Name() string { return "note-del" }
func (noteDelCmd) Description() string {
	return "Удалить запись навсегда (требуется admin)"
}
func (noteDelCmd) Usage() string { return "note-del <id>" }

func (noteDelCmd) Run(cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	id := args[0]

	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		return errors.New("не выполнен login")
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes/" + url.PathEscape(id)
	resp, body, err := api.Delete(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Deleted: %s\n", id)
		return nil
	case http.StatusNotFound:
		return errors.New("note not found")
	case http.StatusUnauthorized:
		return errors.New("токен отсутствует или истёк: выполните login")
	case http.StatusForbidden:
		return errors.New("недостаточно прав: нужна роль admin")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(noteDelCmd{}) }
