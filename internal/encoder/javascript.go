// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-bundle-config/models"
)

const jsIndent = "  "

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsWriter renders values as JavaScript source. Objects are written one key
// per line, scalar arrays inline.
type jsWriter struct {
	buf   bytes.Buffer
	depth int
	err   error
}

// encodeJS renders cfg as a CommonJS module: one require per imported
// plugin binding followed by the exported configuration object.
func encodeJS(cfg models.BundlerConfiguration) ([]byte, error) {
	w := &jsWriter{}

	for _, imp := range imports(cfg) {
		fmt.Fprintf(&w.buf, "const %s = require(%s)\n", imp.binding, quote(imp.module))
	}
	w.buf.WriteString("\nmodule.exports = ")
	w.configuration(cfg)
	w.buf.WriteString("\n")

	if w.err != nil {
		return nil, fmt.Errorf("error encoding js: %w", w.err)
	}

	return w.buf.Bytes(), nil
}

type jsImport struct {
	binding string
	module  string
}

// imports lists every plugin binding in first use order, stylus chain
// included. Each binding is required once.
func imports(cfg models.BundlerConfiguration) []jsImport {
	seen := make(map[string]bool)
	var out []jsImport

	collect := func(p models.PluginSpec) {
		binding := p.Binding()
		if binding == "" || seen[binding] {
			return
		}
		seen[binding] = true
		out = append(out, jsImport{binding: binding, module: p.Module})
	}

	cfg.Plugins.Walk(collect)
	cfg.Stylus.Use.Walk(collect)
	return out
}

func (w *jsWriter) configuration(cfg models.BundlerConfiguration) {
	w.object(func(field func(key string, value func())) {
		field("target", func() { w.scalar(cfg.Target) })
		field("devtool", func() { w.scalar(cfg.Devtool) })
		field("node", func() { w.options(models.Opts("fs", cfg.Node.FS)) })
		field("cache", func() { w.scalar(cfg.Cache) })
		field("resolve", func() {
			w.options(models.Opts(
				"extensions", cfg.Resolve.Extensions,
				"modulesDirectories", cfg.Resolve.ModulesDirectories,
			))
		})
		field("entry", func() { w.entries(cfg.Entry) })
		field("output", func() { w.output(cfg.Output) })
		field("module", func() {
			w.object(func(field func(string, func())) {
				field("loaders", func() { w.rules(cfg.Module.Loaders) })
			})
		})
		field("stylus", func() {
			w.object(func(field func(string, func())) {
				field("use", func() { w.plugins(cfg.Stylus.Use) })
			})
		})
		field("plugins", func() { w.plugins(cfg.Plugins) })
	})
}

func (w *jsWriter) entries(entries models.EntryMap) {
	w.object(func(field func(string, func())) {
		for _, entry := range entries {
			field(entry.Name, func() { w.scalar(entry.Modules) })
		}
	})
}

func (w *jsWriter) output(out models.OutputSpec) {
	opts := models.Opts(
		"path", out.Path,
		"filename", out.Filename,
	)
	if out.ChunkFilename != "" {
		opts = opts.Set("chunkFilename", out.ChunkFilename)
	}
	w.options(opts.Set("publicPath", out.PublicPath))
}

func (w *jsWriter) rules(rules []models.TransformRule) {
	w.list(len(rules), func(i int) {
		rule := rules[i]
		w.object(func(field func(string, func())) {
			field("test", func() { w.regexp(rule.Test) })
			if rule.Include != "" {
				field("include", func() { w.scalar(rule.Include) })
			}
			field("loaders", func() {
				loaders := make([]string, len(rule.Loaders))
				for i, l := range rule.Loaders {
					loaders[i] = l.String()
				}
				w.scalar(loaders)
			})
		})
	})
}

func (w *jsWriter) plugins(plugins models.Plugins) {
	w.list(len(plugins), func(i int) { w.plugin(plugins[i]) })
}

// plugin writes p as a constructor call, a factory call or a bare
// reference, depending on its kind.
func (w *jsWriter) plugin(p models.PluginSpec) {
	switch p.Kind {
	case models.PluginReference:
		w.buf.WriteString(p.Name)
		return
	case models.PluginConstructor:
		w.buf.WriteString("new ")
	case models.PluginFactory:
	default:
		w.fail(fmt.Errorf("plugin %s: unknown kind %q", p.Name, p.Kind))
		return
	}

	w.buf.WriteString(p.Name)
	w.buf.WriteByte('(')
	switch {
	case len(p.Args) > 0:
		w.plugins(p.Args)
	case len(p.Options) > 0:
		w.options(p.Options)
	}
	w.buf.WriteByte(')')
}

func (w *jsWriter) options(opts models.Options) {
	w.object(func(field func(string, func())) {
		for _, opt := range opts {
			field(opt.Key, func() { w.value(opt.Value) })
		}
	})
}

func (w *jsWriter) value(v any) {
	switch value := v.(type) {
	case models.Options:
		w.options(value)
	case []any:
		w.list(len(value), func(i int) { w.value(value[i]) })
	default:
		w.scalar(v)
	}
}

// scalar writes v in its JSON form, which is also valid JavaScript.
// Slices of strings are written inline.
func (w *jsWriter) scalar(v any) {
	data, err := marshalJS(v)
	if err != nil {
		w.fail(err)
		return
	}
	if bytes.HasPrefix(data, []byte("[")) {
		data = bytes.ReplaceAll(data, []byte(`","`), []byte(`", "`))
	}
	w.buf.Write(data)
}

// regexp writes source as a regular expression literal.
func (w *jsWriter) regexp(source string) {
	w.buf.WriteByte('/')
	w.buf.WriteString(escapeRegexpLiteral(source))
	w.buf.WriteByte('/')
}

func (w *jsWriter) object(fields func(field func(key string, value func()))) {
	n := 0
	w.buf.WriteByte('{')
	w.depth++
	fields(func(key string, value func()) {
		if n > 0 {
			w.buf.WriteByte(',')
		}
		n++
		w.newline()
		w.buf.WriteString(objectKey(key))
		w.buf.WriteString(": ")
		value()
	})
	w.depth--
	if n > 0 {
		w.newline()
	}
	w.buf.WriteByte('}')
}

func (w *jsWriter) list(n int, item func(i int)) {
	w.buf.WriteByte('[')
	w.depth++
	for i := range n {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		w.newline()
		item(i)
	}
	w.depth--
	if n > 0 {
		w.newline()
	}
	w.buf.WriteByte(']')
}

func (w *jsWriter) newline() {
	w.buf.WriteByte('\n')
	w.buf.WriteString(strings.Repeat(jsIndent, w.depth))
}

func (w *jsWriter) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func objectKey(key string) string {
	if identifierRe.MatchString(key) {
		return key
	}

	return quote(key)
}

func quote(s string) string {
	data, _ := marshalJS(s)
	return string(data)
}

func marshalJS(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// escapeRegexpLiteral escapes unescaped forward slashes so source can be
// embedded between slashes.
func escapeRegexpLiteral(source string) string {
	var b strings.Builder
	escaped := false
	for _, r := range source {
		if r == '/' && !escaped {
			b.WriteByte('\\')
		}
		escaped = r == '\\' && !escaped
		b.WriteRune(r)
	}

	return b.String()
}
