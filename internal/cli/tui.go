package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/pipeline"
	"github.com/matzehuels/fundomain/pkg/render"
	"github.com/matzehuels/fundomain/pkg/sl2z"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

func (c *CLI) exploreCommand() *cobra.Command {
	var flags domainFlags

	cmd := &cobra.Command{
		Use:   "explore [group]",
		Short: "Browse the coset graph interactively",
		Long: `Enumerate the representatives and browse them in the terminal. Besides
moving up and down the list, t, T and s follow the T, T⁻¹ and S links of the
selected representative, and b steps back.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args)
			if err != nil {
				return err
			}
			return runExplore(cmd.Context(), opts)
		},
	}
	flags.register(cmd)
	return cmd
}

func runExplore(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	d, err := pipeline.NewRunner(logger).Enumerate(ctx, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(NewExplorerModel(d), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// ExplorerModel - coset graph browser
// =============================================================================

// ExplorerModel is the bubbletea model behind "explore".
type ExplorerModel struct {
	Domain  *domain.Domain
	Cursor  int
	Height  int
	Offset  int
	history []int
}

// NewExplorerModel creates a browser positioned on the identity.
func NewExplorerModel(d *domain.Domain) ExplorerModel {
	return ExplorerModel{Domain: d, Height: 15}
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.moveTo(m.Cursor - 1)
			}
		case "down", "j":
			if m.Cursor < m.Domain.Len()-1 {
				m.moveTo(m.Cursor + 1)
			}
		case "t":
			m.follow(sl2z.GenT)
		case "T":
			m.follow(sl2z.GenTInv)
		case "s":
			m.follow(sl2z.GenS)
		case "b", "backspace":
			if n := len(m.history); n > 0 {
				m.moveTo(m.history[n-1])
				m.history = m.history[:n-1]
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-14, 5)
		m.moveTo(m.Cursor)
	}
	return m, nil
}

// follow jumps along the g link of the selected representative and records
// the jump for "b".
func (m *ExplorerModel) follow(g sl2z.Generator) {
	target := m.Domain.Reps[m.Cursor].Link(g)
	if target == domain.NoLink {
		return
	}
	m.history = append(m.history, m.Cursor)
	m.moveTo(int(target))
}

// moveTo selects i and scrolls it into view.
func (m *ExplorerModel) moveTo(i int) {
	m.Cursor = i
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m ExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Domain.Group.String()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  t T s follow T, T⁻¹, S  b back  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.Domain.Len())
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		rep := m.Domain.Reps[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(i),
			wordLabel(rep),
			strconv.Itoa(int(rep.T)),
			strconv.Itoa(int(rep.TInv)),
			strconv.Itoa(int(rep.S)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Word", "T", "T⁻¹", "S").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	rep := m.Domain.Reps[m.Cursor]
	tri := rep.Triangle()
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleValue.Render(wordLabel(rep)), listDimStyle.Render(rep.Matrix.String())))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  vertices %s, %s, %s", tri.A, tri.B, tri.C)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Domain.Len())))

	return b.String()
}

func wordLabel(rep domain.Representative) string {
	if label := rep.Label(); label != "" {
		return label
	}
	return render.IdentityLabel
}
