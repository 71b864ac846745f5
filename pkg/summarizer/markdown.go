package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Bouncer Summary"))

	fmt.Fprintf(&b, "## %s\n\n", t("Background"))
	row(&b, t("Label"), t("Value"))
	b.WriteString("|---|---|\n")
	row(&b, t("File"), code(s.Input.Path))
	row(&b, t("Size"), fmt.Sprintf("%d x %d", s.Input.Width, s.Input.Height))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	row(&b, t("Label"), t("Value"))
	b.WriteString("|---|---|\n")
	row(&b, t("Format"), s.Settings.Format)
	row(&b, t("Disc Radius"), fmt.Sprintf("%d px (%.2f)", s.Settings.Radius, s.Settings.RadiusRatio))
	row(&b, t("Motion Steps"), fmt.Sprintf("%d", s.Settings.MotionSteps))
	row(&b, t("Workers"), fmt.Sprintf("%d", s.Settings.Workers))
	row(&b, t("Continue on Error"), yesNo(t, s.Settings.ContinueOnError))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Frames"))
	row(&b, t("Label"), t("Value"))
	b.WriteString("|---|---|\n")
	row(&b, t("Written"), fmt.Sprintf("%d / %d", s.Frames.Written, s.Frames.Requested))
	if len(s.Frames.Failed) > 0 {
		row(&b, t("Failed"), formatIndices(s.Frames.Failed))
	}
	if s.Frames.OutputDir != "" {
		row(&b, t("Output Directory"), code(s.Frames.OutputDir))
	}
	if s.Frames.FirstFile != "" {
		row(&b, t("Files"), code(s.Frames.FirstFile)+" … "+code(s.Frames.LastFile))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Timing"))
	row(&b, t("Label"), t("Value"))
	b.WriteString("|---|---|\n")
	row(&b, t("Decode"), fmt.Sprintf("%d ms", s.Timing.DecodeMs))
	row(&b, t("Render and Encode"), fmt.Sprintf("%d ms", s.Timing.RenderMs))
	if s.Frames.Written > 0 && s.Timing.RenderMs > 0 {
		row(&b, t("Per Frame"), fmt.Sprintf("%.1f ms", float64(s.Timing.RenderMs)/float64(s.Frames.Written)))
	}
	row(&b, t("Total"), fmt.Sprintf("%d ms", s.Timing.TotalMs))
	b.WriteString("\n")

	if v := s.Video; v != nil {
		fmt.Fprintf(&b, "## %s\n\n", t("Preview Video"))
		row(&b, t("Label"), t("Value"))
		b.WriteString("|---|---|\n")
		row(&b, t("File"), code(v.Path))
		if v.Codec != "" {
			row(&b, t("Codec"), v.Codec)
			row(&b, t("Size"), fmt.Sprintf("%d x %d", v.Width, v.Height))
			row(&b, t("Samples"), fmt.Sprintf("%d", v.SampleCount))
			row(&b, t("Duration"), fmt.Sprintf("%d ms", v.DurationMs))
		}
		row(&b, t("File Size"), formatBytes(v.FileSize))
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		footer += fmt.Sprintf(" · bouncer %s", f.version)
	}
	b.WriteString(footer + "\n")

	return b.String()
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", label, value)
}

func code(s string) string {
	return "`" + s + "`"
}

func yesNo(t func(string) string, v bool) string {
	if v {
		return t("Yes")
	}
	return t("No")
}

// formatIndices lists frame indices, abbreviating long lists.
func formatIndices(indices []int) string {
	const maxShown = 10
	parts := make([]string, 0, min(len(indices), maxShown))
	for i, idx := range indices {
		if i == maxShown {
			break
		}
		parts = append(parts, fmt.Sprintf("%d", idx))
	}
	out := strings.Join(parts, ", ")
	if len(indices) > maxShown {
		out += fmt.Sprintf(", … (%d)", len(indices))
	}
	return out
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
