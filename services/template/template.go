package template

import (
	"html/template"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	templatesPathFlag = "templates-path"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   templatesPathFlag,
			Usage:  "templates path",
			Value:  "templates",
			EnvVar: "TEMPLATES_PATH",
		},
	)
}

// WebContext is what a view is rendered with. It carries the gin
// context so the builder can write the response.
type WebContext interface {
	GetGinContext() *gin.Context
}

type viewSet struct {
	pattern string
	layout  string
}

// Manager registers view sets against a multitemplate renderer and
// composes them with their layout on Init.
type Manager[C WebContext] struct {
	re    multitemplate.Renderer
	path  string
	funcs template.FuncMap
	sets  []*viewSet
}

func NewManager[C WebContext](c *cli.Context, re multitemplate.Renderer) *Manager[C] {
	return &Manager[C]{
		re:   re,
		path: c.String(templatesPathFlag),
		funcs: template.FuncMap{
			"derefFloat": func(v *float64) float64 {
				if v == nil {
					return 0
				}
				return *v
			},
			"derefInt": func(v *int) int {
				if v == nil {
					return 0
				}
				return *v
			},
			"derefString": func(v *string) string {
				if v == nil {
					return ""
				}
				return *v
			},
		},
	}
}

// MustRegisterViews registers every template matching pattern
// (relative to the templates path, without the .html suffix).
func (s *Manager[C]) MustRegisterViews(pattern string) *Builder[C] {
	vs := &viewSet{pattern: pattern}
	s.sets = append(s.sets, vs)
	return &Builder[C]{vs: vs}
}

// Init globs the registered view sets and loads them into the
// renderer. Must be called after all handlers registered their views.
func (s *Manager[C]) Init() error {
	for _, vs := range s.sets {
		files, err := filepath.Glob(filepath.Join(s.path, vs.pattern+".html"))
		if err != nil {
			return errors.Wrapf(err, "failed to glob views %v", vs.pattern)
		}
		for _, f := range files {
			rel, err := filepath.Rel(s.path, f)
			if err != nil {
				return errors.Wrapf(err, "failed to resolve view path %v", f)
			}
			name := strings.TrimSuffix(filepath.ToSlash(rel), ".html")
			fs := []string{f}
			if vs.layout != "" {
				layout := filepath.Join(s.path, "layouts", vs.layout+".html")
				fs = []string{layout, f}
			}
			s.re.AddFromFilesFuncs(name, s.funcs, fs...)
		}
	}
	return nil
}

type Builder[C WebContext] struct {
	vs *viewSet
}

func (s *Builder[C]) WithLayout(name string) *Builder[C] {
	s.vs.layout = name
	return s
}

func (s *Builder[C]) Build(name string) *View[C] {
	return &View[C]{name: name}
}

type View[C WebContext] struct {
	name string
}

func (s *View[C]) HTML(code int, ctx C) {
	ctx.GetGinContext().HTML(code, s.name, ctx)
}
