package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvenet/core"
)

var verbose = regexp.MustCompile(`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.*)$`)

// Lines parses the line format from r.
func Lines(r io.Reader, opts ...Option) (*core.Graph, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b := newBuilder(o.strict)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		id, value, nbrs, err := parseLine(text)
		if err != nil {
			return nil, &MalformedInputError{Line: line, Text: text, Reason: err.Error()}
		}
		if b.AddSite(id, value, nbrs...); b.Err() != nil {
			return nil, &MalformedInputError{Line: line, Text: text, Reason: b.Err().Error(), Err: b.Err()}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}

	return build(b)
}

// YAML parses a sites document from r.
func YAML(r io.Reader) (*core.Graph, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &MalformedInputError{Reason: "yaml: " + err.Error(), Err: err}
	}

	b := newBuilder(false)
	for i, s := range doc.Sites {
		if b.AddSite(s.ID, s.Value, s.Neighbors...); b.Err() != nil {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("sites[%d]: %v", i, b.Err()), Err: b.Err()}
		}
	}

	return build(b)
}

// File opens path and parses it as YAML (.yaml, .yml) or lines.
func File(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML(f)
	default:
		return Lines(f, opts...)
	}
}

func newBuilder(strict bool) *core.Builder {
	if strict {
		return core.NewBuilder()
	}

	return core.NewBuilder(core.WithUndirected())
}

func build(b *core.Builder) (*core.Graph, error) {
	g, err := b.Build()
	if err != nil {
		return nil, &MalformedInputError{Reason: err.Error(), Err: err}
	}

	return g, nil
}

// parseLine accepts either the verbose or the compact form.
func parseLine(text string) (string, int, []string, error) {
	if strings.HasPrefix(text, "Valve ") {
		m := verbose.FindStringSubmatch(text)
		if m == nil {
			return "", 0, nil, errors.New("unrecognized valve line")
		}
		v, err := strconv.Atoi(m[2])
		if err != nil {
			return "", 0, nil, fmt.Errorf("flow rate: %w", err)
		}

		return m[1], v, splitList(m[3]), nil
	}

	f := strings.Fields(text)
	if len(f) < 2 {
		return "", 0, nil, errors.New("want ID VALUE [NEIGHBORS]")
	}
	v, err := strconv.Atoi(f[1])
	if err != nil {
		return "", 0, nil, fmt.Errorf("value: %w", err)
	}

	return f[0], v, splitList(strings.Join(f[2:], ",")), nil
}

// splitList splits "A, B,C" into [A B C], dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
