package commands

import (
	"fmt"
	"strings"

	"NotesBro/internal/cli/api"
	"NotesBro/internal/cli/auth"
	"NotesBro/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Drop the stored token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	// серверу сообщаем для симметрии; токен инвалидируется только локально
	if token, err := auth.LoadToken(cfg.TokenFile); err == nil {
		endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/auth/logout"
		if resp, _, err := api.PostJSON(endpoint, struct{}{}, token); err == nil {
			resp.Body.Close()
		}
	}
	if err := auth.DropToken(cfg.TokenFile); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
