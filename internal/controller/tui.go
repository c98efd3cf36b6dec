package controller

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	m "gooze.dev/pkg/calculo/internal/model"
)

var operandNames = [4]string{"a", "b", "c", "d"}

// Evaluator computes an evaluation from inputs.
type Evaluator func(in m.Inputs) m.Evaluation

// TUI runs the interactive calculator with Bubble Tea.
type TUI struct {
	input    io.Reader
	output   io.Writer
	evaluate Evaluator
}

// NewTUI creates a new TUI reading keys from input and drawing to output.
func NewTUI(input io.Reader, output io.Writer, evaluate Evaluator) *TUI {
	return &TUI{input: input, output: output, evaluate: evaluate}
}

// Run blocks until the user quits or ctx is cancelled. It returns the last
// complete evaluation, if any.
func (t *TUI) Run(ctx context.Context, initial m.Inputs) (*m.Evaluation, error) {
	program := tea.NewProgram(
		newCalculatorModel(initial, t.evaluate),
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("interactive calculator: %w", err)
	}

	model, ok := final.(calculatorModel)
	if !ok {
		return nil, nil
	}

	return model.evaluation(), nil
}

// calculatorModel is the Bubble Tea model of the interactive calculator.
type calculatorModel struct {
	inputs   [4]textinput.Model
	focus    int
	quitting bool
	evaluate Evaluator
}

func newCalculatorModel(initial m.Inputs, evaluate Evaluator) calculatorModel {
	values := [4]float64{initial.A, initial.B, initial.C, initial.D}

	cm := calculatorModel{evaluate: evaluate}

	for i := range cm.inputs {
		ti := textinput.New()
		ti.Prompt = operandNames[i] + ": "
		ti.Placeholder = "0"
		ti.CharLimit = 32
		ti.Width = 16
		ti.SetValue(strconv.FormatFloat(values[i], 'g', -1, 64))
		cm.inputs[i] = ti
	}

	cm.inputs[0].Focus()

	return cm
}

func (cm calculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (cm calculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // other keys are forwarded to the focused field
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			cm.quitting = true
			return cm, tea.Quit
		case tea.KeyTab, tea.KeyDown, tea.KeyEnter:
			return cm.moveFocus(1), nil
		case tea.KeyShiftTab, tea.KeyUp:
			return cm.moveFocus(-1), nil
		}
	}

	var cmd tea.Cmd
	cm.inputs[cm.focus], cmd = cm.inputs[cm.focus].Update(msg)

	return cm, cmd
}

func (cm calculatorModel) moveFocus(delta int) calculatorModel {
	cm.inputs[cm.focus].Blur()
	cm.focus = (cm.focus + delta + len(cm.inputs)) % len(cm.inputs)
	cm.inputs[cm.focus].Focus()

	return cm
}

// evaluation returns nil while any field does not hold a number.
func (cm calculatorModel) evaluation() *m.Evaluation {
	var values [4]float64

	for i, ti := range cm.inputs {
		v, err := strconv.ParseFloat(strings.TrimSpace(ti.Value()), 64)
		if err != nil {
			return nil
		}

		values[i] = v
	}

	e := cm.evaluate(m.Inputs{A: values[0], B: values[1], C: values[2], D: values[3]})

	return &e
}

func (cm calculatorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("calculo"))
	b.WriteString("\n\n")

	for _, ti := range cm.inputs {
		b.WriteString(ti.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")

	e := cm.evaluation()
	if e == nil {
		b.WriteString(labelStyle.Render("x = ?  y = ?  result = ?"))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "%s\n%s\n",
			labelStyle.Render(fmt.Sprintf("x = %s  y = %s  result = %s",
				formatNumber(e.X), formatNumber(e.Y), formatNumber(e.Result))),
			styledMessage(e.Verdict, true))
	}

	if !cm.quitting {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("tab/shift+tab: move  esc: quit"))
		b.WriteString("\n")
	}

	return b.String()
}
