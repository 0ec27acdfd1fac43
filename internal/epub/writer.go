// Package epub assembles a minimal EPUB 3 container from generated prose.
// The output targets reader compatibility, not typographic ambition: one
// XHTML document per chapter, a flat spine, no cover image.
package epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/fileutil"
	"inkwell/internal/services"
)

// FallbackTitle is used when no title artifact is available.
const FallbackTitle = "Untitled"

// Book carries everything the writer needs.
type Book struct {
	Title    string
	Author   string
	Language string
	// Prose is the full story text; chapters split on Markdown H1/H2
	// headings, falling back to one chapter for unheaded text.
	Prose string
}

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/package.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

type chapter struct {
	Title string
	Body  []string
}

// Write renders the book and writes it atomically to path.
func Write(path string, book Book) error {
	book.Title = strings.TrimSpace(book.Title)
	if book.Title == "" {
		book.Title = FallbackTitle
	}
	if strings.TrimSpace(book.Language) == "" {
		book.Language = "en"
	}
	if strings.TrimSpace(book.Prose) == "" {
		return services.Wrap(services.ErrFormatting, "epub", "write", "prose content is empty", nil)
	}

	var buf bytes.Buffer
	if err := render(&buf, book); err != nil {
		return services.Wrap(services.ErrFormatting, "epub", "write", "assemble container", err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write epub: %w", err)
	}
	return nil
}

func render(buf *bytes.Buffer, book Book) error {
	zw := zip.NewWriter(buf)

	// The mimetype entry must come first and be stored uncompressed.
	mimetype, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err := mimetype.Write([]byte("application/epub+zip")); err != nil {
		return err
	}

	files := map[string]string{
		"META-INF/container.xml": containerXML,
	}

	chapters := splitChapters(book.Prose)
	var manifest, spine strings.Builder
	for i, ch := range chapters {
		name := fmt.Sprintf("OEBPS/chapter%03d.xhtml", i+1)
		id := fmt.Sprintf("chapter%03d", i+1)
		files[name] = chapterXHTML(ch, book.Language)
		fmt.Fprintf(&manifest, `    <item id="%s" href="chapter%03d.xhtml" media-type="application/xhtml+xml"/>`+"\n", id, i+1)
		fmt.Fprintf(&spine, `    <itemref idref="%s"/>`+"\n", id)
	}
	files["OEBPS/nav.xhtml"] = navXHTML(book, chapters)
	files["OEBPS/package.opf"] = packageOPF(book, manifest.String(), spine.String())

	// Deterministic member order keeps diffs between exports readable.
	names := []string{"META-INF/container.xml", "OEBPS/package.opf", "OEBPS/nav.xhtml"}
	for i := range chapters {
		names = append(names, fmt.Sprintf("OEBPS/chapter%03d.xhtml", i+1))
	}
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte(files[name])); err != nil {
			return err
		}
	}
	return zw.Close()
}

// splitChapters breaks prose on Markdown H1/H2 headings. Text before the
// first heading, or prose with no headings at all, becomes a single chapter.
func splitChapters(prose string) []chapter {
	var chapters []chapter
	current := chapter{}
	flush := func() {
		if current.Title != "" || len(current.Body) > 0 {
			chapters = append(chapters, current)
		}
		current = chapter{}
	}

	for line := range strings.Lines(prose) {
		trimmed := strings.TrimSpace(line)
		if heading, ok := strings.CutPrefix(trimmed, "# "); ok {
			flush()
			current.Title = strings.TrimSpace(heading)
			continue
		}
		if heading, ok := strings.CutPrefix(trimmed, "## "); ok {
			flush()
			current.Title = strings.TrimSpace(heading)
			continue
		}
		if trimmed != "" {
			current.Body = append(current.Body, trimmed)
		}
	}
	flush()

	if len(chapters) == 0 {
		chapters = append(chapters, chapter{Body: []string{""}})
	}
	for i := range chapters {
		if chapters[i].Title == "" {
			chapters[i].Title = fmt.Sprintf("Chapter %d", i+1)
		}
	}
	return chapters
}

func chapterXHTML(ch chapter, language string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="%s">`+"\n", html.EscapeString(language))
	fmt.Fprintf(&b, "<head><title>%s</title></head>\n<body>\n", html.EscapeString(ch.Title))
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(ch.Title))
	for _, para := range ch.Body {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(para))
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func navXHTML(book Book, chapters []chapter) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">` + "\n")
	fmt.Fprintf(&b, "<head><title>%s</title></head>\n<body>\n", html.EscapeString(book.Title))
	b.WriteString(`<nav epub:type="toc"><ol>` + "\n")
	for i, ch := range chapters {
		fmt.Fprintf(&b, `<li><a href="chapter%03d.xhtml">%s</a></li>`+"\n", i+1, html.EscapeString(ch.Title))
	}
	b.WriteString("</ol></nav>\n</body>\n</html>\n")
	return b.String()
}

func packageOPF(book Book, manifest, spine string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="bookid">` + "\n")
	b.WriteString(`  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">` + "\n")
	fmt.Fprintf(&b, "    <dc:identifier id=\"bookid\">urn:uuid:%s</dc:identifier>\n", uuid.NewString())
	fmt.Fprintf(&b, "    <dc:title>%s</dc:title>\n", html.EscapeString(book.Title))
	fmt.Fprintf(&b, "    <dc:creator>%s</dc:creator>\n", html.EscapeString(book.Author))
	fmt.Fprintf(&b, "    <dc:language>%s</dc:language>\n", html.EscapeString(book.Language))
	fmt.Fprintf(&b, "    <meta property=\"dcterms:modified\">%s</meta>\n", time.Now().UTC().Format("2006-01-02T15:04:05Z"))
	b.WriteString("  </metadata>\n  <manifest>\n")
	b.WriteString(`    <item id="nav" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>` + "\n")
	b.WriteString(manifest)
	b.WriteString("  </manifest>\n  <spine>\n")
	b.WriteString(spine)
	b.WriteString("  </spine>\n</package>\n")
	return b.String()
}
