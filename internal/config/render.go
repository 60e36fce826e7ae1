package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const outdatedMarker = "# OUTDATED: option removed from config schema"

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# linemark configuration (TOML)\n")

	top, sections, order := groupOptions(GetConfigOptions())
	for _, o := range top {
		b.WriteString("\n")
		writeOption(&b, o)
	}
	for _, name := range order {
		b.WriteString("\n[" + name + "]\n")
		for i, o := range sections[name] {
			if i > 0 {
				b.WriteString("\n")
			}
			writeOption(&b, o)
		}
	}
	return b.String()
}

// UpdateTOML merges missing defaults into an existing config and comments out
// keys the schema no longer knows. Missing keys of a section already in the
// file are inserted at the end of that section.
func UpdateTOML(existing string) (string, bool) {
	known := make(map[string]bool)
	for _, o := range GetConfigOptions() {
		known[o.Key] = true
	}

	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines)+16)
	present := make(map[string]bool)
	sectionEnd := map[string]int{"": -1}
	current := ""
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		switch {
		case trim == "" || strings.HasPrefix(trim, "#"):
			out = append(out, line)
			continue
		case strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]"):
			current = strings.TrimSpace(strings.Trim(trim, "[]"))
			out = append(out, line)
			sectionEnd[current] = len(out) - 1
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		full := key
		if current != "" {
			full = current + "." + key
		}
		if !known[full] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+outdatedMarker, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		present[full] = true
		out = append(out, line)
		sectionEnd[current] = len(out) - 1
	}

	top, sections, order := groupOptions(GetConfigOptions())
	inserts := make(map[int][]string)
	var appended []string

	if missing := missingOptions(top, "", present); len(missing) > 0 {
		inserts[sectionEnd[""]] = append(inserts[sectionEnd[""]], missing...)
	}
	for _, name := range order {
		missing := missingOptions(sections[name], name, present)
		if len(missing) == 0 {
			continue
		}
		if at, ok := sectionEnd[name]; ok {
			inserts[at] = append(inserts[at], missing...)
			continue
		}
		appended = append(appended, "", "["+name+"]")
		appended = append(appended, missing...)
	}

	if len(inserts) > 0 {
		positions := make([]int, 0, len(inserts))
		for at := range inserts {
			positions = append(positions, at)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(positions)))
		for _, at := range positions {
			out = insertAfter(out, at, inserts[at])
		}
		changed = true
	}
	if len(appended) > 0 {
		for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
			out = out[:len(out)-1]
		}
		out = append(out, "", "# Added by config update")
		out = append(out, appended...)
		out = append(out, "")
		changed = true
	}
	return strings.Join(out, "\n"), changed
}

// ValidateTOML parses content and reports the first syntax error, with the
// offending line when the decoder knows it.
func ValidateTOML(content string) error {
	var out map[string]any
	if _, err := toml.Decode(content, &out); err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return fmt.Errorf("invalid TOML at line %d: %s", perr.Position.Line, perr.Message)
		}
		return fmt.Errorf("invalid TOML: %w", err)
	}
	return nil
}

// groupOptions splits dotted keys into sections, keeping declaration order.
// Options inside a section carry the key relative to it.
func groupOptions(opts []ConfigOption) (top []ConfigOption, sections map[string][]ConfigOption, order []string) {
	sections = make(map[string][]ConfigOption)
	for _, o := range opts {
		section, key, ok := strings.Cut(o.Key, ".")
		if !ok {
			top = append(top, o)
			continue
		}
		if _, seen := sections[section]; !seen {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	return top, sections, order
}

func missingOptions(opts []ConfigOption, section string, present map[string]bool) []string {
	var lines []string
	for _, o := range opts {
		full := o.Key
		if section != "" {
			full = section + "." + o.Key
		}
		if present[full] {
			continue
		}
		if o.Comment != "" {
			lines = append(lines, "# "+o.Comment)
		}
		lines = append(lines, o.Key+" = "+tomlValue(o.Default))
	}
	return lines
}

func insertAfter(lines []string, at int, add []string) []string {
	out := make([]string, 0, len(lines)+len(add))
	out = append(out, lines[:at+1]...)
	out = append(out, add...)
	return append(out, lines[at+1:]...)
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func writeOption(b *strings.Builder, o ConfigOption) {
	if o.Comment != "" {
		b.WriteString("# " + o.Comment + "\n")
	}
	b.WriteString(o.Key + " = " + tomlValue(o.Default) + "\n")
}

func tomlValue(value any) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}
