package intake

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gcloudgt/contacto/internal/catalog"
	"github.com/gosimple/slug"
)

const (
	indexMarker = "<!-- INQUIRIES -->"
	indexHeader = "| Nombre | Proyecto | Presupuesto | Fecha |"
	indexSep    = "|--------|----------|-------------|-------|"
)

// Exporter writes inquiries as markdown files plus a README.md index.
type Exporter struct {
	dir string
}

// NewExporter returns an exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Write renders inq to <slug(name)>-<id prefix>.md, records it in the index,
// and returns the file path.
func (e *Exporter) Write(inq *Inquiry) (string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	filename := exportFilename(inq)
	path := filepath.Join(e.dir, filename)
	if err := os.WriteFile(path, []byte(Markdown(inq)), 0644); err != nil {
		return "", fmt.Errorf("writing inquiry file: %w", err)
	}

	if err := e.updateIndex(filename, inq); err != nil {
		return "", fmt.Errorf("updating index: %w", err)
	}
	log.Debug("exported inquiry %s to %s", inq.ID, path)
	return path, nil
}

func exportFilename(inq *Inquiry) string {
	name := slug.Make(inq.Name)
	if name == "" {
		name = "sin-nombre"
	}
	id := inq.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s-%s.md", name, id)
}

// Markdown renders a single inquiry as a markdown document.
func Markdown(inq *Inquiry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", inq.Name)
	fmt.Fprintf(&b, "- **Email:** %s\n", inq.Email)
	fmt.Fprintf(&b, "- **Proyecto:** %s\n", optionLabel(catalog.ProjectType, inq.ProjectType))
	fmt.Fprintf(&b, "- **Presupuesto:** %s\n", optionLabel(catalog.Budget, inq.Budget))
	fmt.Fprintf(&b, "- **Recibido:** %s\n", inq.CreatedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "- **ID:** `%s`\n\n", inq.ID)
	b.WriteString("## Mensaje\n\n")
	b.WriteString(inq.Message)
	b.WriteString("\n")
	return b.String()
}

// MarkdownList renders inquiries as a single document with a summary table
// followed by one section per inquiry.
func MarkdownList(inquiries []*Inquiry) string {
	if len(inquiries) == 0 {
		return "# Consultas\n\nTodavía no hay consultas.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Consultas (%d)\n\n", len(inquiries))
	b.WriteString(indexHeader + "\n" + indexSep + "\n")
	for _, inq := range inquiries {
		b.WriteString(indexRow(inq, "") + "\n")
	}
	for _, inq := range inquiries {
		b.WriteString("\n---\n\n")
		// Demote the per-inquiry title one level under the list heading.
		b.WriteString("#" + Markdown(inq))
	}
	return b.String()
}

func optionLabel(lookup func(string) (catalog.Entry, bool), id string) string {
	if e, ok := lookup(id); ok {
		return e.Label
	}
	return id
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

// indexRow renders one table row; the name links to filename when set.
func indexRow(inq *Inquiry, filename string) string {
	name := escapeCell(inq.Name)
	if filename != "" {
		name = fmt.Sprintf("[%s](%s)", name, filename)
	}
	return fmt.Sprintf("| %s | %s | %s | %s |",
		name,
		escapeCell(optionLabel(catalog.ProjectType, inq.ProjectType)),
		escapeCell(optionLabel(catalog.Budget, inq.Budget)),
		inq.CreatedAt.Format("2006-01-02"),
	)
}

// updateIndex inserts a row for filename right under the index table header,
// creating README.md or the marker and table when they are missing.
func (e *Exporter) updateIndex(filename string, inq *Inquiry) error {
	readmePath := filepath.Join(e.dir, "README.md")
	row := indexRow(inq, filename)

	existing, err := os.ReadFile(readmePath)
	var content string
	switch {
	case os.IsNotExist(err):
		content = fmt.Sprintf("# Consultas\n\nConsultas recibidas por el formulario de contacto.\n\n%s\n\n%s\n%s\n%s\n",
			indexMarker, indexHeader, indexSep, row)
	case err != nil:
		return fmt.Errorf("reading README: %w", err)
	default:
		content = insertIndexRow(string(existing), row)
	}

	return os.WriteFile(readmePath, []byte(content), 0644)
}

// insertIndexRow places row as the newest entry after the marker's table
// header. Without a marker, marker and table are appended at the end.
func insertIndexRow(content, row string) string {
	lines := strings.Split(content, "\n")

	markerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == indexMarker {
			markerIdx = i
			break
		}
	}

	if markerIdx == -1 {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if strings.TrimSpace(content) != "" {
			content += "\n"
		}
		return content + indexMarker + "\n\n" + indexHeader + "\n" + indexSep + "\n" + row + "\n"
	}

	header := markerIdx + 1
	for header < len(lines) && strings.TrimSpace(lines[header]) == "" {
		header++
	}

	at := markerIdx + 1
	insert := []string{"", indexHeader, indexSep, row}
	if header < len(lines) && strings.TrimSpace(lines[header]) == indexHeader {
		at = header + 1
		if at < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[at]), "|--") {
			at++
		}
		insert = []string{row}
	}

	out := make([]string, 0, len(lines)+len(insert))
	out = append(out, lines[:at]...)
	out = append(out, insert...)
	out = append(out, lines[at:]...)
	return strings.Join(out, "\n")
}
