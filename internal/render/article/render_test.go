package article

import (
	"regexp"
	"strings"
	"testing"
)

var stripANSIForTest = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plainLines(lines []string) string {
	return stripANSIForTest.ReplaceAllString(strings.Join(lines, "\n"), "")
}

func TestContentLines_EmptyDescription(t *testing.T) {
	if got := ContentLines("   ", 80); got != nil {
		t.Fatalf("expected nil lines for blank description, got %+v", got)
	}
}

func TestContentLines_RendersCommonElements(t *testing.T) {
	description := `<h1>Morning pages</h1>
		<h2>Gratitude</h2>
		<p>Coffee with a <a href="https://example.com/cafe">friend</a>.</p>
		<ul><li>First point</li><li>Second point</li></ul>
		<ol><li>Step one</li><li>Step two</li></ol>
		<blockquote><p>Quoted claim</p><cite>Jane Doe</cite></blockquote>
		<table>
			<tr><th>Mood</th><th>Score</th></tr>
			<tr><td>Calm</td><td>8</td></tr>
		</table>`

	got := plainLines(ContentLines(description, 80))
	for _, want := range []string{
		"▌ Morning pages",
		"▌ Gratitude",
		"friend (https://example.com/cafe)",
		"• First point",
		"1. Step one",
		"│ Quoted claim",
		"Jane Doe",
		"Mood │ Score",
		"─────┼──────",
		"Calm │ 8",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in rendered output, got %q", want, got)
		}
	}
}

func TestContentLines_DropsActiveContent(t *testing.T) {
	description := `<p>Visible</p><script>alert("x")</script><style>p{color:red}</style><iframe src="https://evil.example">frame text</iframe><object>obj</object>`

	got := plainLines(ContentLines(description, 80))
	if !strings.Contains(got, "Visible") {
		t.Fatalf("expected visible text, got %q", got)
	}
	for _, banned := range []string{"alert", "color:red", "frame text", "obj"} {
		if strings.Contains(got, banned) {
			t.Fatalf("expected %q to be dropped, got %q", banned, got)
		}
	}
}

func TestContentLines_StripsControlSequences(t *testing.T) {
	description := "<p>before\x1b[2Jafter &#x1b;]0;title\x07 done</p><pre>code\x1b[31m red</pre>"

	lines := ContentLinesWithOptions(description, 80, PlainOptions)
	joined := strings.Join(lines, "\n")
	if strings.ContainsRune(joined, '\x1b') || strings.ContainsRune(joined, '\x07') {
		t.Fatalf("expected control characters removed, got %q", joined)
	}
	if !strings.Contains(joined, "before[2Jafter") {
		t.Fatalf("expected surrounding text kept, got %q", joined)
	}
}

func TestContentLines_DoubleEscapedEntitiesStayLiteral(t *testing.T) {
	got := plainLines(ContentLinesWithOptions("<p>&amp;#27;[31m &amp;lt;b&amp;gt;</p>", 80, PlainOptions))
	if got != "&#27;[31m &lt;b&gt;" {
		t.Fatalf("unexpected text for escaped entities: %q", got)
	}
}

func TestContentLines_HidesScriptHref(t *testing.T) {
	got := plainLines(ContentLines(`<p><a href="javascript:alert(1)">click</a></p>`, 80))
	if got != "click" {
		t.Fatalf("expected link text only, got %q", got)
	}
}

func TestContentLines_WrapsToWidth(t *testing.T) {
	description := "<p>" + strings.Repeat("word ", 40) + "</p>"
	for _, line := range ContentLinesWithOptions(description, 20, PlainOptions) {
		if n := visibleLen(line); n > 20 {
			t.Fatalf("line exceeds width (%d): %q", n, line)
		}
	}
}

func TestContentLines_WrapsMultibyteByRunes(t *testing.T) {
	lines := ContentLinesWithOptions("<p>"+strings.Repeat("é", 25)+"</p>", 10, PlainOptions)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d (%q)", len(lines), lines)
	}
	if lines[0] != strings.Repeat("é", 10) {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
}

func TestWrapText_SplitsStyledWords(t *testing.T) {
	word := "\x1b[1m" + strings.Repeat("a", 25) + "\x1b[0m"
	lines := wrapText("x "+word, 10)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d (%q)", len(lines), lines)
	}
	for _, line := range lines[1:] {
		if n := visibleLen(line); n > 10 {
			t.Fatalf("line exceeds width (%d): %q", n, line)
		}
		if !strings.HasPrefix(line, "\x1b[1m") || !strings.HasSuffix(line, "\x1b[0m") {
			t.Fatalf("expected style reopened and closed on every piece, got %q", line)
		}
	}
	if got := stripANSI(strings.Join(lines[1:], "")); got != strings.Repeat("a", 25) {
		t.Fatalf("text lost while splitting: %q", got)
	}
}

func TestContentLines_PlainTextDescription(t *testing.T) {
	got := plainLines(ContentLines("Just a plain line of text", 80))
	if got != "Just a plain line of text" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestContentLines_InlineEmphasisKeepsText(t *testing.T) {
	got := plainLines(ContentLines("<p>A <strong>big</strong> and <em>quiet</em> <del>bad</del> day.</p>", 80))
	if got != "A big and quiet bad day." {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestContentLines_ImageLabel(t *testing.T) {
	description := `<p>Before</p><img src="https://example.com/a.jpg" alt="Sunset"><p>After</p>`

	withLabel := plainLines(ContentLinesWithOptions(description, 80, DefaultOptions))
	if !strings.Contains(withLabel, "Image Sunset") {
		t.Fatalf("expected image label, got %q", withLabel)
	}
	if strings.Index(withLabel, "Before") > strings.Index(withLabel, "Image Sunset") {
		t.Fatalf("expected image label after leading paragraph, got %q", withLabel)
	}

	plain := plainLines(ContentLinesWithOptions(description, 80, PlainOptions))
	if !strings.Contains(plain, "Image Sunset") {
		t.Fatalf("expected image label in plain output, got %q", plain)
	}
}

func TestContentLines_TableFitsWidth(t *testing.T) {
	description := `<table><tr><td>` + strings.Repeat("long ", 20) + `</td><td>short</td></tr></table>`
	lines := ContentLinesWithOptions(description, 40, PlainOptions)
	if len(lines) != 1 {
		t.Fatalf("expected a single row, got %q", lines)
	}
	got := plainLines(lines)
	if n := visibleLen(got); n > 40 {
		t.Fatalf("row exceeds width (%d): %q", n, got)
	}
	if !strings.Contains(got, "…") || !strings.HasSuffix(got, "short") {
		t.Fatalf("expected widest cell cut, got %q", got)
	}
}

func TestContentLines_TaskList(t *testing.T) {
	description := `<ul><li><input type="checkbox" checked> Water plants</li><li><input type="checkbox"> Call mom</li><li>Plain</li></ul>`
	got := plainLines(ContentLines(description, 80))
	for _, want := range []string{"[x] Water plants", "[ ] Call mom", "• Plain"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestContentLines_DetailsAndRule(t *testing.T) {
	got := plainLines(ContentLines(`<details><summary>Dream log</summary><p>Flying again</p></details><hr><p>End</p>`, 80))
	if !strings.Contains(got, "▸ Dream log\n\nFlying again") {
		t.Fatalf("expected summary above content, got %q", got)
	}
	if !strings.Contains(got, "────") {
		t.Fatalf("expected horizontal rule, got %q", got)
	}
}

func TestContentLines_PreformattedHardWraps(t *testing.T) {
	lines := ContentLinesWithOptions("<pre>"+strings.Repeat("x", 30)+"\n  y</pre>", 14, PlainOptions)
	want := []string{"    xxxxxxxxxx", "    xxxxxxxxxx", "    xxxxxxxxxx", "      y"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected preformatted lines: %q", lines)
	}
}

func TestText_Unstyled(t *testing.T) {
	got := Text(`<h3>Title</h3><p>Body with <a href="https://example.com">link</a></p>`)
	if strings.ContainsRune(got, '\x1b') {
		t.Fatalf("expected no escape sequences, got %q", got)
	}
	if !strings.Contains(got, "Title") || !strings.Contains(got, "link (https://example.com)") {
		t.Fatalf("unexpected plain text: %q", got)
	}
}
