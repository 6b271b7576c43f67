// Command sermons-render renders a stored sermon template against a YAML data
// fixture, either once to a file/stdout or continuously over HTTP with live
// template reloading.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sermons/internal/filestore"
	"github.com/goliatone/go-sermons/internal/scripture"
	"github.com/goliatone/go-sermons/pkg/engine"
	"github.com/goliatone/go-sermons/pkg/model"
	"github.com/goliatone/go-sermons/pkg/render"
)

func main() {
	templatesDir := flag.String("templates", "templates", "directory holding the template files")
	mode := flag.String("mode", "search", "render mode: search or single")
	dataPath := flag.String("data", "", "YAML render context fixture")
	configPath := flag.String("config", "", "YAML site configuration")
	output := flag.String("output", "", "output file (stdout if empty)")
	serve := flag.String("serve", "", "serve renders over HTTP on this address instead of rendering once")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	data, err := loadContext(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load data fixture: %v", err)
	}

	fs, err := filestore.New(*templatesDir)
	if err != nil {
		log.Fatalf("Failed to open template store: %v", err)
	}

	eng := engine.New(fs, engine.WithRenderer(render.New(cfg.rendererOptions()...)))

	if *serve != "" {
		if err := serveRenders(fs, eng, *serve, model.Mode(*mode), data); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	html, err := eng.Render(context.Background(), model.Mode(*mode), data)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Rendered page written to %s\n", *output)
	} else {
		fmt.Println(html)
	}
}

// config is the YAML site configuration consumed by the renderer.
type config struct {
	BaseURL   string `json:"baseUrl" yaml:"baseUrl"`
	AdminURL  string `json:"adminUrl" yaml:"adminUrl"`
	MediaURL  string `json:"mediaUrl" yaml:"mediaUrl"`
	Podcast   string `json:"podcast" yaml:"podcast"`
	Markdown  bool   `json:"markdown" yaml:"markdown"`
	Scripture struct {
		URL string `json:"url" yaml:"url"`
		Key string `json:"key" yaml:"key"`
	} `json:"scripture" yaml:"scripture"`
}

func (c config) rendererOptions() []render.Option {
	options := []render.Option{
		render.WithLinks(render.Links{
			Base:      c.BaseURL,
			Admin:     c.AdminURL,
			MediaBase: c.MediaURL,
			Podcast:   c.Podcast,
		}),
	}
	if c.Markdown {
		options = append(options, render.WithMarkdownDescriptions())
	}
	if c.Scripture.URL != "" {
		fetcher := scripture.New(c.Scripture.URL, scripture.WithAPIKey(c.Scripture.Key))
		options = append(options, render.WithScriptureFetcher(fetcher))
	}
	return options
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func loadContext(path string) (*model.Context, error) {
	if path == "" {
		return &model.Context{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data model.Context
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &data, nil
}

// serveRenders exposes the rendered page over HTTP and watches the template
// directory, dropping cached renders when a template file is edited.
func serveRenders(fs *filestore.Store, eng *engine.Engine, addr string, mode model.Mode, data *model.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		err := fs.Watch(ctx, func(name string) {
			log.Printf("template %s changed, cache cleared", name)
			eng.ClearCache()
		}, func(err error) {
			log.Printf("watch error: %v", err)
		})
		if err != nil && ctx.Err() == nil {
			log.Printf("watcher stopped: %v", err)
		}
	}()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := mode
		if q := r.URL.Query().Get("mode"); q != "" {
			m = model.Mode(q)
		}
		html, err := eng.Render(r.Context(), m, data)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, html)
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("Serving rendered templates at http://%s/", addr)
	return srv.ListenAndServe()
}
