package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Pattern is one named classification rule from the patterns file.
type Pattern struct {
	Name   string
	Regexp *regexp.Regexp
}

// Set is an ordered list of patterns. Order follows the patterns file and is
// preserved through every report.
type Set []Pattern

// keywordRe extracts candidate keywords (Latin, Cyrillic or digits, three
// characters or longer) when bootstrapping a patterns file from event text.
var keywordRe = regexp.MustCompile(`[A-Za-zА-Яа-я0-9]{3,}`)

// Load reads a patterns file. Each non-empty line has the form "name:regex",
// split on the first colon with both sides trimmed; lines without a colon are
// skipped. Every regex matches case-insensitively.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var set Set
	index := make(map[string]int)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || !strings.Contains(line, ":") {
			continue
		}

		name, expr, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		expr = strings.TrimSpace(expr)

		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", name, err)
		}

		// Re-defined name: the last regex wins, the first position is kept.
		if i, ok := index[name]; ok {
			set[i].Regexp = re
			continue
		}
		index[name] = len(set)
		set = append(set, Pattern{Name: name, Regexp: re})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("%s: no patterns defined", path)
	}
	return set, nil
}

// Names returns the pattern names in file order.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = p.Name
	}
	return names
}

// Match returns the names of every pattern matching text. An event may match
// several patterns; its time then counts under each of them.
func (s Set) Match(text string) []string {
	var names []string
	for _, p := range s {
		if p.Regexp.MatchString(text) {
			names = append(names, p.Name)
		}
	}
	return names
}

// Generate writes a starter patterns file to path: one case-insensitive
// keyword rule per distinct word found in the given event texts, lowercased
// and sorted. It returns the number of rules written.
func Generate(path string, texts []string) (int, error) {
	keywords := make(map[string]struct{})
	for _, text := range texts {
		for _, w := range keywordRe.FindAllString(text, -1) {
			keywords[strings.ToLower(w)] = struct{}{}
		}
	}
	if len(keywords) == 0 {
		return 0, errors.New("no keywords found in event text")
	}

	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}
	sort.Strings(words)

	var b strings.Builder
	for _, w := range words {
		fmt.Fprintf(&b, "%s:(?i)%s\n", w, w)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return 0, err
	}
	return len(words), nil
}
