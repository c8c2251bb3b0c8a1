package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"NotesBro/internal/cli/api"
	"NotesBro/internal/cli/auth"
	"NotesBro/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the current principal" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/auth/me"
	token, _ := auth.LoadToken(cfg.TokenFile)
	resp, body, err := api.PostJSON(endpoint, struct{}{}, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var dr struct {
		Result string `json:"result"`
		User   *struct {
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &dr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if dr.User == nil {
		fmt.Fprintln(Out, "Status: anonymous")
		return nil
	}
	fmt.Fprintf(Out, "Status: %s as %s (%s)\n", dr.Result, dr.User.Username, dr.User.Role)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
