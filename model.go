package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jask/quire/internal/command"
	"github.com/jask/quire/internal/config"
	"github.com/jask/quire/internal/keyseq"
)

type model struct {
	cfg      config.Config
	dispatch *command.Dispatcher
	matcher  *keyseq.Matcher
	session  *session

	width  int
	height int

	status    string
	statusErr bool
	lastKey   time.Time

	cmdline    textinput.Model
	cmdOpen    bool
	cmdHistory []string
	cmdCursor  int
	cmdDraft   string
}

func newModel(cfg config.Config, d *command.Dispatcher, m *keyseq.Matcher, sess *session) model {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.CharLimit = 512
	return model{
		cfg:      cfg,
		dispatch: d,
		matcher:  m,
		session:  sess,
		cmdline:  ti,
	}
}
