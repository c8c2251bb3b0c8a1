package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"NotesBro/internal/cli/api"
	"NotesBro/internal/config"
	"NotesBro/internal/model"
)

type notesCmd struct{}

func (notesCmd) Name() string { return "notes" }
func (notesCmd) Description() string {
	return "Показать записи каталога (с необязательными фильтрами)"
}
func (notesCmd) Usage() string {
	return "notes [--search <text>] [--class <c>] [--subject <s>] [--type <t>]"
}

func (notesCmd) Run(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.SetOutput(Out)
	search := fs.String("search", "", "подстрока в title/description")
	class := fs.String("class", "", "точное совпадение class")
	subject := fs.String("subject", "", "точное совпадение subject")
	noteType := fs.String("type", "", "точное совпадение noteType")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 {
		return ErrUsage
	}

	q := url.Values{}
	if *search != "" {
		q.Set("search", *search)
	}
	if *class != "" {
		q.Set("class", *class)
	}
	if *subject != "" {
		q.Set("subject", *subject)
	}
	if *noteType != "" {
		q.Set("noteType", *noteType)
	}

	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/notes"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	resp, body, err := api.GetJSON(endpoint, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var notes []model.Note
	if err := json.Unmarshal(body, &notes); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(notes) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintf(Out, "- %s  [%s/%s/%s]  %s\n", n.ID, n.Class, n.Subject, n.NoteType, n.Title)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(notes))
	return nil
}

func init() { RegisterCmd(notesCmd{}) }
