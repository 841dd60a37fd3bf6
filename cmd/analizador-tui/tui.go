package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"analizador/internal/core"
	"analizador/pkg"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

type mode int

const (
	modeMenu mode = iota
	modeInput
	modeProcessing
)

// operation menu entries, keyed "1" through "6"
var operations = []struct {
	key  string
	name string
}{
	{"1", core.OpNormalizador},
	{"2", core.OpPatrones},
	{"3", core.OpResumen},
	{"4", core.OpEntidades},
	{"5", core.OpPalabras},
	{"6", core.OpSentimiento},
}

// Messages for Bubble Tea
type (
	resultMsg string
	errorMsg  error
)

// model follows Bubble Tea's Elm architecture.
type model struct {
	toolkit   *core.Toolkit
	viewport  viewport.Model
	textarea  textarea.Model
	messages  []string
	mode      mode
	operation string
	width     int
	height    int
	ready     bool
}

func newModel(toolkit *core.Toolkit) model {
	ta := textarea.New()
	ta.Placeholder = "Escribe el texto y pulsa Enter..."
	ta.CharLimit = 4000
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)

	welcome := []string{
		titleStyle.Render("analizador - utilidades de texto en español"),
		dimStyle.Render(fmt.Sprintf("Sesión: %s", toolkit.SessionID())),
		"",
	}
	welcome = append(welcome, menuLines()...)

	return model{
		toolkit:  toolkit,
		textarea: ta,
		viewport: vp,
		messages: welcome,
		mode:     modeMenu,
	}
}

func menuLines() []string {
	lines := []string{titleStyle.Render("Selecciona una operación:")}
	for _, op := range operations {
		lines = append(lines, fmt.Sprintf("  %s) %s", op.key, op.name))
	}
	lines = append(lines, dimStyle.Render("  0) Salir"), "")
	return lines
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	m.viewport, vpCmd = m.viewport.Update(msg)
	if m.mode == modeInput {
		m.textarea, tiCmd = m.textarea.Update(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEsc:
			if m.mode == modeInput {
				m.mode = modeMenu
				m.textarea.Blur()
				m.messages = append(m.messages, menuLines()...)
				m.updateViewport()
			}

		case tea.KeyEnter:
			if m.mode == modeInput && m.textarea.Value() != "" {
				input := strings.TrimSpace(m.textarea.Value())
				m.textarea.Reset()
				m.textarea.Blur()
				m.mode = modeProcessing

				m.messages = append(m.messages, "", fmt.Sprintf("> %s", input), "")
				m.updateViewport()
				return m, m.runOperation(input)
			}

		default:
			if m.mode == modeMenu {
				return m.handleMenuKey(msg.String())
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 4
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.textarea.SetWidth(msg.Width - 4)
		m.ready = true
		m.updateViewport()

	case resultMsg:
		m.mode = modeMenu
		m.messages = append(m.messages, resultStyle.Render(string(msg)), "")
		m.messages = append(m.messages, menuLines()...)
		m.updateViewport()

	case errorMsg:
		m.mode = modeMenu
		m.messages = append(m.messages, fmt.Sprintf("Error: %v", msg), "")
		m.messages = append(m.messages, menuLines()...)
		m.updateViewport()
	}

	return m, tea.Batch(tiCmd, vpCmd)
}

func (m model) handleMenuKey(key string) (tea.Model, tea.Cmd) {
	if key == "0" {
		return m, tea.Quit
	}
	for _, op := range operations {
		if key == op.key {
			m.mode = modeInput
			m.operation = op.key
			m.messages = append(m.messages, titleStyle.Render(op.name))
			m.textarea.Focus()
			m.updateViewport()
			return m, textarea.Blink
		}
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "Inicializando..."
	}

	var status string
	switch m.mode {
	case modeProcessing:
		status = statusStyle.Render("⚡ Analizando... | Ctrl+C para salir")
	case modeInput:
		status = statusStyle.Render("Escribe el texto, Enter para analizar, Esc para volver | Ctrl+C para salir")
	default:
		status = statusStyle.Render("Pulsa 1-6 para elegir, 0 para salir")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		strings.Repeat("─", m.width),
		inputStyle.Render(m.textarea.View()),
		status,
	)
}

func (m *model) updateViewport() {
	m.viewport.SetContent(strings.Join(m.messages, "\n"))
	m.viewport.GotoBottom()
}

// runOperation executes the selected analysis off the update loop.
func (m model) runOperation(input string) tea.Cmd {
	operation := m.operation
	toolkit := m.toolkit
	return func() tea.Msg {
		ctx := context.Background()
		out, err := execute(ctx, toolkit, operation, input)
		if err != nil {
			return errorMsg(err)
		}
		return resultMsg(out)
	}
}

func execute(ctx context.Context, toolkit *core.Toolkit, operation, input string) (string, error) {
	switch operation {
	case "1":
		result := toolkit.Normalize(ctx, input)
		if result == nil {
			return "", fmt.Errorf("texto vacío")
		}
		return strings.Join([]string{
			"Original: " + result.Original,
			"Lematizado: " + result.Lematizado,
			"Sin repeticiones: " + result.SinRepeticiones,
			"Corregido: " + result.Corregido,
		}, "\n"), nil

	case "2":
		result := toolkit.FindPatterns(ctx, input)
		return strings.Join([]string{
			"Fechas: " + joinOr(result.Fechas, "Ninguna"),
			"Dinero: " + joinOr(result.Dinero, "Ninguno"),
			"Correos: " + joinOr(result.Correos, "Ninguno"),
		}, "\n"), nil

	case "3":
		if strings.TrimSpace(input) == "" {
			return "", fmt.Errorf("texto vacío")
		}
		summary, err := toolkit.Summarize(ctx, input)
		if err != nil {
			return "", err
		}
		return "Resumen:\n" + summary, nil

	case "4":
		groups, err := toolkit.Entities(ctx, input)
		if err != nil {
			return "", err
		}
		lines := make([]string, 0, len(pkg.BucketOrder))
		for _, bucket := range pkg.BucketOrder {
			lines = append(lines, fmt.Sprintf("%s: %s", bucket, joinOr(groups[bucket], "Ninguno detectado")))
		}
		return strings.Join(lines, "\n"), nil

	case "5":
		result, err := toolkit.Keywords(ctx, input)
		if err != nil {
			return "", err
		}
		if result == nil {
			return "", fmt.Errorf("texto vacío")
		}
		var lines []string
		for _, category := range pkg.CategoryOrder {
			lines = append(lines, category+":")
			if len(result[category]) == 0 {
				lines = append(lines, "  (ninguno)")
				continue
			}
			for i, term := range result[category] {
				lines = append(lines, fmt.Sprintf("  %d. %s: score=%g", i+1, term.Text, term.Score))
			}
		}
		return strings.Join(lines, "\n"), nil

	case "6":
		if strings.TrimSpace(input) == "" {
			return "", fmt.Errorf("texto vacío")
		}
		result, err := toolkit.Sentiment(ctx, input)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Resultado: %s (Confianza: %.4f) Estrellas: %s",
			result.Sentimiento, result.Confianza, result.Etiqueta), nil
	}
	return "", fmt.Errorf("operación desconocida: %s", operation)
}

func joinOr(items []string, none string) string {
	if len(items) == 0 {
		return none
	}
	return strings.Join(items, ", ")
}
