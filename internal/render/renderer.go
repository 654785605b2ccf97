// Package render turns a TableSchema into the PL/SQL package specification
// and package body implementing its CRUD procedures.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/eleven-am/crudgen/internal/logger"
	"github.com/eleven-am/crudgen/internal/schema"
)

// Options configures procedure and parameter naming
type Options struct {
	PackageSuffix string // appended to the table name to name the package
	CreatePrefix  string
	UpdatePrefix  string
	DeletePrefix  string
	GetByIDPrefix string
}

// DefaultOptions returns the standard naming scheme.
func DefaultOptions() Options {
	return Options{
		PackageSuffix: "_package",
		CreatePrefix:  "c_",
		UpdatePrefix:  "u_",
		DeletePrefix:  "d_",
		GetByIDPrefix: "gid_",
	}
}

// withDefaults fills empty fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PackageSuffix == "" {
		o.PackageSuffix = def.PackageSuffix
	}
	if o.CreatePrefix == "" {
		o.CreatePrefix = def.CreatePrefix
	}
	if o.UpdatePrefix == "" {
		o.UpdatePrefix = def.UpdatePrefix
	}
	if o.DeletePrefix == "" {
		o.DeletePrefix = def.DeletePrefix
	}
	if o.GetByIDPrefix == "" {
		o.GetByIDPrefix = def.GetByIDPrefix
	}
	return o
}

// Output holds the two generated blocks.
type Output struct {
	Declarations string
	Definitions  string
}

// Expand appends the generated blocks to the selected text, separated by blank lines.
func (o *Output) Expand(selected string) string {
	return selected + "\n\n" + o.Declarations + "\n\n" + o.Definitions
}

// Param is a procedure parameter anchored to a table column type
type Param struct {
	Name string // e.g. c_TOTAL
	Type string // e.g. ORDERS.TOTAL%TYPE
}

// Renderer renders procedure source for a table
type Renderer struct {
	opts      Options
	templates map[string]*template.Template
}

// New creates a Renderer with the built-in templates.
func New(opts Options) (*Renderer, error) {
	r := &Renderer{
		opts:      opts.withDefaults(),
		templates: make(map[string]*template.Template),
	}

	if err := r.loadTemplates(); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return r, nil
}

// Options returns the effective naming options.
func (r *Renderer) Options() Options {
	return r.opts
}

func (r *Renderer) loadTemplates() error {
	funcMap := template.FuncMap{
		"join":   strings.Join,
		"params": paramBlock,
		"names":  paramNames,
	}

	sources := map[string]string{
		"declarations": declarationsTemplate,
		"definitions":  definitionsTemplate,
	}

	for name, src := range sources {
		tmpl, err := template.New(name).Funcs(funcMap).Option("missingkey=error").Parse(src)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return nil
}

// procedureData is the template input for one table.
type procedureData struct {
	Package string
	Table   string
	Key     string

	Create  []Param
	Update  []Param
	Delete  []Param
	GetByID []Param

	InsertColumns []string
	Assignments   []string

	UpdateKey  string
	DeleteKey  string
	GetByIDKey string
}

func (r *Renderer) buildData(t *schema.TableSchema) procedureData {
	data := procedureData{
		Package:    t.Name + r.opts.PackageSuffix,
		Table:      t.Name,
		Key:        t.PrimaryKey,
		UpdateKey:  r.opts.UpdatePrefix + t.PrimaryKey,
		DeleteKey:  r.opts.DeletePrefix + t.PrimaryKey,
		GetByIDKey: r.opts.GetByIDPrefix + t.PrimaryKey,
	}

	dataCols := t.DataColumns()

	data.Create = r.params(t.Name, r.opts.CreatePrefix, dataCols)
	data.Update = append(r.params(t.Name, r.opts.UpdatePrefix, []schema.Column{{Name: t.PrimaryKey}}),
		r.params(t.Name, r.opts.UpdatePrefix, dataCols)...)
	data.Delete = r.params(t.Name, r.opts.DeletePrefix, []schema.Column{{Name: t.PrimaryKey}})
	data.GetByID = r.params(t.Name, r.opts.GetByIDPrefix, []schema.Column{{Name: t.PrimaryKey}})

	data.InsertColumns = schema.ColumnNames(dataCols)
	data.Assignments = make([]string, len(dataCols))
	for i, col := range dataCols {
		data.Assignments[i] = fmt.Sprintf("%s = %s%s", col.Name, r.opts.UpdatePrefix, col.Name)
	}

	return data
}

func (r *Renderer) params(table, prefix string, cols []schema.Column) []Param {
	params := make([]Param, len(cols))
	for i, col := range cols {
		params[i] = Param{
			Name: prefix + col.Name,
			Type: fmt.Sprintf("%s.%s%%TYPE", table, col.Name),
		}
	}
	return params
}

// Render produces the package specification and body for t. It does not
// validate t; an empty primary key is rendered as is.
func (r *Renderer) Render(t *schema.TableSchema) (*Output, error) {
	data := r.buildData(t)

	declarations, err := r.execute("declarations", data)
	if err != nil {
		return nil, err
	}

	definitions, err := r.execute("definitions", data)
	if err != nil {
		return nil, err
	}

	logger.Render().WithField("package", data.Package).Debugf("rendered %d data columns", len(data.InsertColumns))

	return &Output{Declarations: declarations, Definitions: definitions}, nil
}

func (r *Renderer) execute(name string, data procedureData) (string, error) {
	tmpl, exists := r.templates[name]
	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// paramBlock renders a parenthesised parameter list, one parameter per line.
// An empty list renders as nothing so the procedure takes no arguments.
func paramBlock(params []Param) string {
	if len(params) == 0 {
		return ""
	}

	lines := make([]string, len(params))
	for i, p := range params {
		lines[i] = fmt.Sprintf("    %s IN %s", p.Name, p.Type)
	}

	return "(\n" + strings.Join(lines, ",\n") + "\n  )"
}

func paramNames(params []Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}
