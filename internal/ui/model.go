package ui

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"prettybytes/internal/logger"
	"prettybytes/internal/prettybytes"
	"prettybytes/internal/units"
	"prettybytes/internal/util/format"
	"prettybytes/internal/util/numeric"
	"prettybytes/internal/util/sizearg"
)

// maxHistory bounds the kept results shown under the input.
const maxHistory = 10

// Model is an interactive converter: type a size, see it converted live,
// press enter to keep the result.
type Model struct {
	input    textinput.Model
	settings prettybytes.Settings
	cfg      prettybytes.Config

	current *format.Row
	err     error
	history []format.Row

	styles Styles
}

// NewModel starts from the given conversion settings. Settings that fail to
// build fall back to the defaults.
func NewModel(settings prettybytes.Settings) Model {
	cfg, err := settings.Build()
	if err != nil {
		logger.Log.Warn("invalid settings, using defaults", zap.Error(err))
		settings = prettybytes.DefaultSettings()
		cfg = prettybytes.DefaultConfig()
	}
	settings = cfg.Settings()

	in := textinput.New()
	in.Placeholder = "1536, 1.5GiB, -4096 ..."
	in.Prompt = "size> "
	in.CharLimit = 64
	in.Focus()

	return Model{
		input:    in,
		settings: settings,
		cfg:      cfg,
		styles:   defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.cfg.System() == units.Decimal {
				m.settings.System = units.Binary.String()
			} else {
				m.settings.System = units.Decimal.String()
			}
			// A unit band names units of one ladder only; drop it when switching.
			m.settings.MinUnit, m.settings.MaxUnit = "", ""
			m.rebuild()
			return m, nil
		case "up", "down":
			step := 1
			if msg.String() == "down" {
				step = -1
			}
			m.settings.Precision = numeric.Clamp(m.settings.Precision+step, 0, prettybytes.MaxPrecision)
			m.rebuild()
			return m, nil
		case "ctrl+s":
			m.settings.Signed = !m.settings.Signed
			m.rebuild()
			return m, nil
		case "enter":
			if m.current != nil {
				m.history = append([]format.Row{*m.current}, m.history...)
				if len(m.history) > maxHistory {
					m.history = m.history[:maxHistory]
				}
				m.input.Reset()
				m.current, m.err = nil, nil
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.input.Width = numeric.Clamp(msg.Width-len(m.input.Prompt)-4, 10, 80)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.evaluate()
	return m, cmd
}

// rebuild applies m.settings and re-evaluates the current input.
func (m *Model) rebuild() {
	cfg, err := m.settings.Build()
	if err != nil {
		// Only reachable through a bug in the key handling above; keep the last good config.
		logger.Log.Error("rebuild settings", zap.Error(err))
		m.settings = m.cfg.Settings()
		return
	}
	m.cfg = cfg
	m.evaluate()
}

// evaluate converts the current input, if any.
func (m *Model) evaluate() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		m.current, m.err = nil, nil
		return
	}
	size, err := sizearg.Parse(text)
	if err != nil {
		m.current, m.err = nil, err
		return
	}
	var row format.Row
	if size.Negative {
		row = format.DeltaRow(text, m.cfg, prettybytes.ConvertDelta(size.Delta(), m.cfg))
	} else {
		row = format.BytesRow(text, m.cfg, prettybytes.Convert(size.Bytes, m.cfg))
	}
	m.current, m.err = &row, nil
}

// record renders the serialized form of r for display.
func record(r format.Row) string {
	b, err := json.Marshal(r.Record)
	if err != nil {
		return err.Error()
	}
	return string(b)
}
