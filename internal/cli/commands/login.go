package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"NotesBro/internal/cli/api"
	"NotesBro/internal/cli/auth"
	"NotesBro/internal/config"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
	Token string `json:"token"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the bearer token" }
func (loginCmd) Usage() string       { return "login <username> <password>" }

func (loginCmd) Run(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	username := args[0]
	password := args[1]
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/auth/login"
	resp, body, err := api.PostJSON(endpoint, loginRequest{Username: username, Password: password}, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid username or password")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if lr.Token == "" {
		return errors.New("no token in response")
	}
	if err := auth.SaveToken(cfg.TokenFile, lr.Token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s (%s)\n", lr.User.Username, lr.User.Role)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
