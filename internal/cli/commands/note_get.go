package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"NotesBro/internal/cli/api"
	"NotesBro/internal/config"
	"NotesBro/internal/model"
)

type noteGetCmd struct{}

func (noteGetCmd) Name() string        { return "note-get" }
func (noteGetCmd) Description() string { return "Показать одну запись по id" }
func (noteGetCmd) Usage() string       { return "note-get <id>" }

func (noteGetCmd) Run(cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	id := args[0]
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes/" + url.PathEscape(id)
	resp, body, err := api.GetJSON(endpoint, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return errors.New("note not found")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var n model.Note
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "id:        %s\n", n.ID)
	fmt.Fprintf(Out, "title:     %s\n", n.Title)
	if n.Description != "" {
		fmt.Fprintf(Out, "desc:      %s\n", n.Description)
	}
	fmt.Fprintf(Out, "class:     %s\n", n.Class)
	fmt.Fprintf(Out, "subject:   %s\n", n.Subject)
	fmt.Fprintf(Out, "type:      %s\n", n.NoteType)
	fmt.Fprintf(Out, "drive:     %s\n", n.DriveLink)
	fmt.Fprintf(Out, "created:   %s\n", n.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func init() { RegisterCmd(noteGetCmd{}) }
