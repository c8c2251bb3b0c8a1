package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"strings"

	"NotesBro/internal/cli/api"
	"NotesBro/internal/cli/auth"
	"NotesBro/internal/config"
	"NotesBro/internal/model"
)

type noteAddCmd struct{}

func (noteAddCmd) Name() string { return "note-add" }
func (noteAddCmd) Description() string {
	return "Добавить запись в каталог (требуется admin)"
}
func (noteAddCmd) Usage() string {
	return "note-add --title <t> --class <c> --subject <s> --type <t> --link <url> [--desc <d>]"
}

func (noteAddCmd) Run(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("note-add", flag.ContinueOnError)
	fs.SetOutput(Out)
	title := fs.String("title", "", "заголовок")
	desc := fs.String("desc", "", "описание (необязательно)")
	class := fs.String("class", "", "класс, например Class 9")
	subject := fs.String("subject", "", "предмет")
	noteType := fs.String("type", "", "тип: premium, one_pager, animated, typed")
	link := fs.String("link", "", "ссылка на drive")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if *title == "" || *class == "" || *subject == "" || *noteType == "" || *link == "" {
		return ErrUsage
	}

	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		return errors.New("не выполнен login")
	}

	payload := map[string]string{
		"title":       *title,
		"description": *desc,
		"class":       *class,
		"subject":     *subject,
		"noteType":    *noteType,
		"driveLink":   *link,
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes"
	resp, body, err := api.PostJSON(endpoint, payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusUnauthorized:
		return errors.New("токен отсутствует или истёк: выполните login")
	case http.StatusForbidden:
		return errors.New("недостаточно прав: нужна роль admin")
	case http.StatusBadRequest:
		return fmt.Errorf("запись отклонена: %s", strings.TrimSpace(string(body)))
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var n model.Note
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:    %s\n", n.ID)
	fmt.Fprintf(Out, "  title: %s\n", n.Title)
	return nil
}

func init() { RegisterCmd(noteAddCmd{}) }
