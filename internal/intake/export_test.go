package intake

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleInquiry(id, name string) *Inquiry {
	inq := &Inquiry{
		ID:        id,
		FormData:  sampleForm(),
		CreatedAt: time.Date(2026, 10, 19, 15, 4, 0, 0, time.UTC),
	}
	if name != "" {
		inq.Name = name
	}
	return inq
}

func TestExportFilename(t *testing.T) {
	t.Parallel()

	inq := sampleInquiry("0123456789abcdef", "")
	inq.Name = "José Pérez | Diseño"
	require.Equal(t, "jose-perez-diseno-01234567.md", exportFilename(inq))

	inq.Name = "!!!"
	require.Equal(t, "sin-nombre-01234567.md", exportFilename(inq))
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	md := Markdown(sampleInquiry("abc", "Ana"))

	require.True(t, strings.HasPrefix(md, "# Ana\n"))
	require.Contains(t, md, "- **Proyecto:** Página Web")
	require.Contains(t, md, "- **Presupuesto:** Q15,000 - Q40,000")
	require.Contains(t, md, "- **Recibido:** 2026-10-19 15:04 UTC")
	require.Contains(t, md, "## Mensaje\n\nNecesito un sitio\n")
}

func TestMarkdownList(t *testing.T) {
	t.Parallel()

	require.Contains(t, MarkdownList(nil), "Todavía no hay consultas")

	md := MarkdownList([]*Inquiry{sampleInquiry("a", "Ana"), sampleInquiry("b", "Ana")})
	require.Contains(t, md, "# Consultas (2)")
	require.Contains(t, md, indexHeader)
	require.Equal(t, 2, strings.Count(md, "\n## Ana\n"))
}

func TestExporter_CreatesAndUpdatesIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e := NewExporter(dir)

	first := sampleInquiry("11111111-aaaa", "Ana")
	path, err := e.Write(first)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "ana-11111111.md"), path)

	second := sampleInquiry("22222222-bbbb", "Luis")
	_, err = e.Write(second)
	require.NoError(t, err)

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	content := string(readme)

	require.Equal(t, 1, strings.Count(content, indexHeader))
	luis := strings.Index(content, "[Luis](luis-22222222.md)")
	ana := strings.Index(content, "[Ana](ana-11111111.md)")
	require.NotEqual(t, -1, luis)
	require.NotEqual(t, -1, ana)
	require.Less(t, luis, ana, "newest entry first")
}

func TestInsertIndexRow(t *testing.T) {
	t.Parallel()

	row := "| x | y | z | 2026-01-01 |"

	t.Run("no marker appends table", func(t *testing.T) {
		got := insertIndexRow("# Notes\nsome text", row)
		require.True(t, strings.HasSuffix(got, indexMarker+"\n\n"+indexHeader+"\n"+indexSep+"\n"+row+"\n"))
	})

	t.Run("marker without table adds header", func(t *testing.T) {
		got := insertIndexRow("# Notes\n\n"+indexMarker+"\n", row)
		require.Contains(t, got, indexMarker+"\n\n"+indexHeader+"\n"+indexSep+"\n"+row)
	})

	t.Run("escapes pipes in cells", func(t *testing.T) {
		inq := sampleInquiry("id", "")
		inq.Name = "a|b"
		require.Contains(t, indexRow(inq, ""), `a\|b`)
	})
}
